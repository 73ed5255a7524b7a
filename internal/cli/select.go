package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/pkg/backend"
	"github.com/Davincible/guff/pkg/field"
)

func NewSelectCommand() *cobra.Command {
	var (
		ff      fieldFlags
		verify  bool
		samples int
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Show which backend the library picks for a field",
		Long: `Runs the backend switchboard for a field with the configured options
and reports the chosen backend, where its tables came from and why
earlier candidates were rejected. With --verify the chosen backend is
compared against the reference arithmetic.`,
		Example: `  # The AES field uses compiled-in log/exp tables
  gftables select --poly 0x11b

  # Force generation and check the result exhaustively
  gftables select --poly 0x11d --no-embedded --verify --samples 65536`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			d, err := ff.descriptor()
			if err != nil {
				return err
			}
			opts, err := backendOptions(cmd, cfg)
			if err != nil {
				return err
			}

			var report SelectReport
			switch elementBits(d.Width()) {
			case 8:
				report, err = selectBackend[uint8](d, opts, verify, samples)
			case 16:
				report, err = selectBackend[uint16](d, opts, verify, samples)
			default:
				report, err = selectBackend[uint32](d, opts, verify, samples)
			}
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printSelect(cmd, report)
			if report.Verified != nil && !*report.Verified {
				return fmt.Errorf("backend disagrees with the reference: %s", report.VerifyError)
			}
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().String("kinds", "", "Comma separated backend kinds to try, most preferred first")
	cmd.Flags().Bool("no-embedded", false, "Ignore compiled-in tables")
	cmd.Flags().BoolVar(&verify, "verify", false, "Compare the chosen backend with the reference")
	cmd.Flags().IntVar(&samples, "samples", 1<<16, "Pairs compared by --verify; exhaustive when the field is small enough")

	return cmd
}

// SelectReport describes a switchboard decision.
type SelectReport struct {
	Field       string          `json:"field"`
	Kind        field.Kind      `json:"kind"`
	Source      backend.Source  `json:"source"`
	Attempts    []AttemptReport `json:"attempts,omitempty"`
	Verified    *bool           `json:"verified,omitempty"`
	VerifyError string          `json:"verify_error,omitempty"`
	Elapsed     time.Duration   `json:"elapsed_ns"`
}

// AttemptReport is a rejected candidate.
type AttemptReport struct {
	Kind   field.Kind     `json:"kind"`
	Source backend.Source `json:"source"`
	Error  string         `json:"error"`
}

func selectBackend[E field.Element](d field.Descriptor, opts []backend.Option, verify bool, samples int) (SelectReport, error) {
	if err := field.CheckElement[E](d); err != nil {
		return SelectReport{}, err
	}

	start := time.Now()
	f, sel := backend.Select[E](d, opts...)
	r := SelectReport{
		Field:   d.String(),
		Kind:    sel.Kind,
		Source:  sel.Source,
		Elapsed: time.Since(start),
	}
	for _, a := range sel.Attempts {
		r.Attempts = append(r.Attempts, AttemptReport{Kind: a.Kind, Source: a.Source, Error: a.Err.Error()})
	}

	if verify {
		ref, err := field.NewReference[E](d)
		if err != nil {
			return r, err
		}
		ok := true
		if err := backend.Validate[E](f, ref, samples); err != nil {
			ok, r.VerifyError = false, err.Error()
		}
		r.Verified = &ok
	}
	return r, nil
}

func printSelect(cmd *cobra.Command, r SelectReport) {
	w := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	cyan.Fprintf(w, "%s\n", r.Field)
	fmt.Fprintf(w, "Backend:  %s\n", r.Kind)
	fmt.Fprintf(w, "Tables:   %s\n", r.Source)
	fmt.Fprintf(w, "Took:     %s\n", r.Elapsed.Round(time.Microsecond))

	if len(r.Attempts) > 0 {
		fmt.Fprintln(w, "\nRejected:")
		for _, a := range r.Attempts {
			dim.Fprintf(w, "  %-15s %-10s %s\n", a.Kind, a.Source, a.Error)
		}
	}

	switch {
	case r.Verified == nil:
	case *r.Verified:
		green.Fprintln(w, "\n✓ Agrees with the reference")
	default:
		red.Fprintf(w, "\n✗ %s\n", r.VerifyError)
	}
}
