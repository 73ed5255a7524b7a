package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/internal/validation"
	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

// NewCheckCommand creates a command to analyze field polynomials
func NewCheckCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "check POLY...",
		Short: "Check whether polynomials define fields",
		Long: `Analyzes field polynomials: irreducibility, primitivity, the smallest
generator of the multiplicative group, the order of x and the
factorisation of the group order 2^n-1.`,
		Example: `  # The AES polynomial is irreducible but x does not generate
  gftables check 0x11b

  # Several polynomials, any notation
  gftables check 0x11d x^4+x+1 0b10101`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			reports := make([]PolyReport, 0, len(args))
			for _, arg := range args {
				d, err := validation.ParseDescriptor(width, arg)
				if err != nil {
					return fmt.Errorf("invalid polynomial %q: %w", arg, err)
				}
				reports = append(reports, analyze(d))
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			for _, r := range reports {
				printReport(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Field width (default: degree of each polynomial)")

	return cmd
}

// PolyReport is the result of analyzing one field polynomial.
type PolyReport struct {
	Field       string   `json:"field"`
	Width       int      `json:"width"`
	Poly        string   `json:"poly"`
	Terms       string   `json:"terms"`
	Irreducible bool     `json:"irreducible"`
	Primitive   bool     `json:"primitive"`
	Generator   string   `json:"generator,omitempty"`
	OrderOfX    uint64   `json:"order_of_x,omitempty"`
	GroupOrder  uint64   `json:"group_order"`
	Factors     []uint64 `json:"group_order_factors"`
}

func analyze(d field.Descriptor) PolyReport {
	r := PolyReport{
		Field:       d.String(),
		Width:       d.Width(),
		Poly:        fmt.Sprintf("%#x", d.FullPoly()),
		Terms:       validation.FormatPoly(d.FullPoly()),
		Irreducible: d.IsIrreducible(),
		GroupOrder:  d.GroupOrder(),
		Factors:     gf2.Factor(d.GroupOrder()),
	}
	if !r.Irreducible {
		return r
	}
	r.Primitive = d.IsPrimitive()
	if g, err := d.FindGenerator(); err == nil {
		r.Generator = fmt.Sprintf("%#x", g)
	}
	r.OrderOfX = d.ElementOrder(gf2.Reduce(2, d.FullPoly()))
	return r
}

func printReport(w io.Writer, r PolyReport) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	cyan.Fprintf(w, "%s\n", r.Field)
	fmt.Fprintln(w, strings.Repeat("=", len(r.Field)))
	fmt.Fprintf(w, "Polynomial:   %s\n", r.Terms)

	switch {
	case !r.Irreducible:
		red.Fprintln(w, "✗ Reducible, does not define a field")
	case r.Primitive:
		green.Fprintln(w, "✓ Irreducible and primitive")
	default:
		yellow.Fprintln(w, "⚠ Irreducible, not primitive")
	}

	if r.Irreducible {
		fmt.Fprintf(w, "Generator:    %s (smallest)\n", r.Generator)
		fmt.Fprintf(w, "Order of x:   %d of %d\n", r.OrderOfX, r.GroupOrder)
	}
	fmt.Fprintf(w, "Group order:  %d (prime factors: %s)\n\n", r.GroupOrder, formatFactors(r.Factors))
}

func formatFactors(primes []uint64) string {
	if len(primes) == 0 {
		return "none"
	}
	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ", ")
}
