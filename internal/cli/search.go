package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/internal/validation"
	"github.com/Davincible/guff/pkg/field"
)

func NewSearchCommand() *cobra.Command {
	var (
		width     int
		primitive bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List irreducible or primitive polynomials of a width",
		Long: `Walks the polynomials of degree n in increasing order and lists those
that are irreducible, or primitive with --primitive. The search stops
after --limit results.`,
		Example: `  # Every primitive polynomial of degree 8
  gftables search --width 8 --primitive --limit 0

  # The first few irreducible polynomials of degree 32
  gftables search --width 32 --limit 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := validation.ValidateWidth(width); err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("limit must not be negative (got %d)", limit)
			}

			lo, hi := uint64(1)<<width, uint64(1)<<(width+1)
			step := uint64(1)
			if width > 1 {
				// Polynomials without a constant term are divisible by x.
				lo, step = lo|1, 2
			}

			bar := newProgress(cmd, cfg, int64((hi-lo+step-1)/step), fmt.Sprintf("degree %d", width))
			var found []PolyReport
			for p := lo; p < hi && (limit == 0 || len(found) < limit); p += step {
				_ = bar.Add(1)
				d := field.MustDescriptor(width, p)
				if !d.IsIrreducible() || (primitive && !d.IsPrimitive()) {
					continue
				}
				found = append(found, analyze(d))
			}
			_ = bar.Finish()

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), found)
			}

			w := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			yellow := color.New(color.FgYellow)
			for _, r := range found {
				fmt.Fprintf(w, "%-*s  ", width/4+3, r.Poly)
				if r.Primitive {
					green.Fprint(w, "primitive  ")
				} else {
					yellow.Fprint(w, "irreducible")
				}
				fmt.Fprintf(w, "  g=%-6s %s\n", r.Generator, r.Terms)
			}
			fmt.Fprintf(w, "\n%d polynomial(s) found\n", len(found))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 8, "Degree of the polynomials")
	cmd.Flags().BoolVar(&primitive, "primitive", false, "Only list primitive polynomials")
	cmd.Flags().IntVar(&limit, "limit", 16, "Stop after this many results (0 for no limit)")

	return cmd
}
