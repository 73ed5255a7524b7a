// Package cli implements the gftables command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/internal/validation"
	"github.com/Davincible/guff/pkg/backend"
	"github.com/Davincible/guff/pkg/config"
	"github.com/Davincible/guff/pkg/field"
)

// NewRootCommand assembles every gftables subcommand. When level is not
// nil, --verbose lowers it to debug.
func NewRootCommand(version string, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gftables",
		Short: "Binary field arithmetic tables for GF(2^n), n up to 32",
		Long: `gftables inspects binary fields GF(2^n) and produces the lookup tables
the guff arithmetic backends run on.

It checks field polynomials, searches for irreducible and primitive ones,
generates log/exp, full multiplication, fragment product and reduction
tables as Go source or compressed table files, and shows which backend
the library would pick for a field on this machine.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level != nil {
				level.Set(slog.LevelDebug)
			}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.AddCommand(
		NewCheckCommand(),
		NewSearchCommand(),
		NewGenerateCommand(),
		NewSelectCommand(),
		NewEvalCommand(),
		NewShowCommand(),
		NewHostCommand(),
		NewCatalogCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/gftables/config.yaml)")

	return rootCmd
}

// loadConfig reads the file named by --config and applies its UI settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.UI.UseColor {
		color.NoColor = true
	}
	return cfg, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// fieldFlags are the --width and --poly flags shared by most commands.
type fieldFlags struct {
	width int
	poly  string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "w", 0, "Field width n of GF(2^n) (default: degree of --poly)")
	cmd.Flags().StringVarP(&f.poly, "poly", "p", "", "Field polynomial, e.g. 0x11b or x^8+x^4+x^3+x+1")
}

func (f *fieldFlags) descriptor() (field.Descriptor, error) {
	if f.poly == "" {
		return field.Descriptor{}, fmt.Errorf("--poly is required")
	}
	return validation.ParseDescriptor(f.width, f.poly)
}

// backendOptions combines the config file with per-command overrides.
func backendOptions(cmd *cobra.Command, cfg *config.Config) ([]backend.Option, error) {
	opts, err := cfg.BackendOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid backend config: %w", err)
	}
	if cmd.Flags().Changed("kinds") {
		s, _ := cmd.Flags().GetString("kinds")
		kinds, err := validation.ParseKinds(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, backend.WithKinds(kinds...))
	}
	if noEmbedded, _ := cmd.Flags().GetBool("no-embedded"); noEmbedded {
		opts = append(opts, backend.WithoutEmbedded())
	}
	return append(opts, backend.WithLogger(slog.Default())), nil
}

func hexWidth(d field.Descriptor) int {
	return (d.Width() + 3) / 4
}
