package cli

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/internal/tablefile"
	"github.com/Davincible/guff/pkg/tables"
)

func NewShowCommand() *cobra.Command {
	var entries int

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Verify and print a table file",
		Long: `Loads a table file written by "gftables generate --format bin", checks
its digest and prints the header followed by the first entries as a
hex grid sized to the terminal.`,
		Example: `  gftables show out/gf2e8x11bLogExp.tbl
  gftables show --entries 0 mull4.tbl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}
			if entries < 0 {
				return fmt.Errorf("entries must not be negative (got %d)", entries)
			}

			t, hdr, err := tablefile.New(args[0]).Load()
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", args[0], err)
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), TableInfo{
					Path:      args[0],
					Meta:      hdr.Meta,
					Digest:    hdr.Digest,
					Footprint: tables.Footprint(t),
				})
			}

			w := cmd.OutOrStdout()
			printHeader(w, args[0], t)
			n := t.Len()
			if entries > 0 {
				n = min(n, entries)
			}
			printGrid(w, t, n, terminalWidth(w))
			if n < t.Len() {
				color.New(color.Faint).Fprintf(w, "... %s more\n", humanize.Comma(int64(t.Len()-n)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&entries, "entries", "n", 256, "Entries to print (0 for all)")

	return cmd
}

// TableInfo is the machine readable form of a verified table file.
type TableInfo struct {
	Path      string      `json:"path"`
	Meta      tables.Meta `json:"meta"`
	Digest    string      `json:"digest"`
	Footprint uint64      `json:"footprint_bytes"`
}

func printHeader(w io.Writer, path string, t tables.Table) {
	m := t.Meta()
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	cyan.Fprintf(w, "%s\n", path)
	fmt.Fprintln(w, strings.Repeat("=", len(path)))
	fmt.Fprintf(w, "Kind:       %s\n", m.Kind)
	if m.Width != 0 {
		fmt.Fprintf(w, "Field:      GF(2^%d) mod %#x\n", m.Width, m.Poly)
	}
	if m.Bits != 0 {
		fmt.Fprintf(w, "Fragment:   %d bits\n", m.Bits)
	}
	if m.Kind == tables.KindLogExp {
		fmt.Fprintf(w, "Generator:  %#x\n", m.Generator)
	}
	fmt.Fprintf(w, "Entries:    %s x %d bits (%s)\n", humanize.Comma(int64(m.Entries)), m.ElemBits, humanize.IBytes(tables.Footprint(t)))
	fmt.Fprintf(w, "Digest:     %s ", t.Digest())
	green.Fprintln(w, "✓")
	fmt.Fprintln(w)
}

// printGrid prints the first n entries in rows of a power of two cells,
// as many as fit in cols.
func printGrid(w io.Writer, t tables.Table, n, cols int) {
	digits := t.Meta().ElemBits / 4
	indexDigits := max(4, (bits.Len(uint(t.Len()))+3)/4)
	perRow := (cols - indexDigits - 2) / (digits + 1)
	if perRow < 1 {
		perRow = 1
	}
	perRow = 1 << (bits.Len(uint(perRow)) - 1)

	dim := color.New(color.Faint)
	var sb strings.Builder
	for i := 0; i < n; i += perRow {
		sb.Reset()
		for j := i; j < min(i+perRow, n); j++ {
			fmt.Fprintf(&sb, " %0*x", digits, t.At(j))
		}
		dim.Fprintf(w, "%0*x:", indexDigits, i)
		fmt.Fprintln(w, sb.String())
	}
}
