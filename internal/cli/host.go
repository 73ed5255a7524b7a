package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/pkg/backend"
	"github.com/Davincible/guff/pkg/field"
)

var hostWidths = []int{4, 8, 16, 32}

func NewHostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Show the processor and the backend plan tuned for it",
		Long: `Prints the processor features and cache sizes relevant to table
arithmetic, and for common field widths the order in which backends are
tried once kinds whose tables overflow the L2 cache are moved last.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			h := backend.DetectHost()
			report := HostReport{Host: h}
			for _, w := range hostWidths {
				p := WidthPlan{Width: w}
				for _, k := range h.Plan(w) {
					p.Kinds = append(p.Kinds, PlannedKind{Kind: k, Footprint: backend.Footprint(k, w)})
				}
				report.Plans = append(report.Plans, p)
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printHost(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// HostReport is the detected host and its per-width plans.
type HostReport struct {
	Host  backend.Host `json:"host"`
	Plans []WidthPlan  `json:"plans"`
}

type WidthPlan struct {
	Width int           `json:"width"`
	Kinds []PlannedKind `json:"kinds"`
}

type PlannedKind struct {
	Kind      field.Kind `json:"kind"`
	Footprint uint64     `json:"footprint_bytes"`
}

func printHost(w io.Writer, r HostReport) {
	cyan := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	h := r.Host
	brand := h.Brand
	if brand == "" {
		brand = "unknown processor"
	}
	cyan.Fprintln(w, brand)
	fmt.Fprintf(w, "Vendor:    %s\n", h.Vendor)
	fmt.Fprintf(w, "Cores:     %d\n", h.Cores)
	fmt.Fprintf(w, "L1 data:   %s\n", cacheSize(h.L1D))
	fmt.Fprintf(w, "L2:        %s\n", cacheSize(h.L2))
	features := "none detected"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, " ")
	}
	fmt.Fprintf(w, "Features:  %s\n\n", features)

	for _, p := range r.Plans {
		fmt.Fprintf(w, "GF(2^%d)\n", p.Width)
		for i, k := range p.Kinds {
			fmt.Fprintf(w, "  %d. %-15s ", i+1, k.Kind)
			dim.Fprintf(w, "%s\n", humanize.IBytes(k.Footprint))
		}
	}
}

func cacheSize(n int) string {
	if n <= 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}
