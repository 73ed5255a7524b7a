package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Davincible/guff/internal/codegen"
	"github.com/Davincible/guff/internal/tablefile"
	"github.com/Davincible/guff/internal/validation"
	"github.com/Davincible/guff/pkg/backend"
	"github.com/Davincible/guff/pkg/config"
	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
	"github.com/Davincible/guff/pkg/tables"
)

func NewGenerateCommand() *cobra.Command {
	var (
		ff           fieldFlags
		format       string
		pkg          string
		kinds        string
		generator    string
		fragBits     int
		output       string
		maxTableBits int
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate lookup tables as Go source or table files",
		Long: `Builds the requested tables concurrently and writes them either as a
gofmt-formatted Go file (--format go) or as snappy-compressed table
files with an integrity digest (--format bin).

Table kinds: log-exp, full-mul, full-inv, mull, reduction. Mull tables
do not depend on the field and need only --bits.`,
		Example: `  # Log/exp tables for the AES field, generated by 3
  gftables generate --width 8 --poly 0x11b --kinds log-exp --generator 3 --output gf2e8x11b.go

  # Fragment products for 4-bit fragments
  gftables generate --kinds mull --bits 4 --output mull4.go

  # Every table for GF(2^16) as table files in ./out
  gftables generate --poly 0x1002d --kinds log-exp,reduction --format bin --output out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("package") {
				pkg = cfg.Output.Package
			}
			if !cmd.Flags().Changed("max-table-bits") {
				maxTableBits = cfg.Backend.MaxTableBits
			}
			if format != "go" && format != "bin" {
				return fmt.Errorf("format must be go or bin (got %q)", format)
			}
			if maxTableBits < 0 || maxTableBits > tables.MaxIndexBits {
				return fmt.Errorf("max-table-bits must be in 0..%d (got %d)", tables.MaxIndexBits, maxTableBits)
			}

			kindList, err := validation.ParseTableKinds(kinds)
			if err != nil {
				return err
			}
			plans, err := planTables(ff, kindList, generator, fragBits)
			if err != nil {
				return err
			}

			built, err := buildAll(cmd, cfg, plans, tables.Limits{MaxTableBits: maxTableBits})
			if err != nil {
				return err
			}

			if format == "go" {
				return writeSource(cmd, pkg, output, cfg.Output.Directory, built)
			}
			return writeTableFiles(cmd, output, cfg.Output.Directory, built, force)
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "go", "Output format: go or bin")
	cmd.Flags().StringVar(&pkg, "package", "tables", "Package name of generated Go source")
	cmd.Flags().StringVarP(&kinds, "kinds", "k", "log-exp", "Comma separated table kinds")
	cmd.Flags().StringVarP(&generator, "generator", "g", "", "Generator for log/exp tables (default: x if primitive, else the smallest)")
	cmd.Flags().IntVarP(&fragBits, "bits", "b", 0, "Fragment width for mull and reduction tables (default: largest divisor of the width up to 8)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, directory for several table files, or - for stdout")
	cmd.Flags().IntVar(&maxTableBits, "max-table-bits", tables.DefaultLimits.MaxTableBits, "Refuse tables needing more index bits")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing table files")

	return cmd
}

// tablePlan describes one table to build.
type tablePlan struct {
	kind tables.Kind
	desc field.Descriptor
	bits int
	gen  uint64
}

func planTables(ff fieldFlags, kinds []tables.Kind, generator string, fragBits int) ([]tablePlan, error) {
	needField := false
	for _, k := range kinds {
		needField = needField || k != tables.KindMull
	}

	var d field.Descriptor
	if needField || ff.poly != "" {
		var err error
		if d, err = ff.descriptor(); err != nil {
			return nil, err
		}
	}

	if fragBits == 0 {
		fragBits = tables.MaxMullBits
		if !d.IsZero() {
			fragBits = backend.FragmentBits(d.Width())
		}
	}

	plans := make([]tablePlan, 0, len(kinds))
	for _, k := range kinds {
		s := tablePlan{kind: k, desc: d, bits: fragBits}
		if k == tables.KindLogExp {
			g, err := pickGenerator(d, generator)
			if err != nil {
				return nil, err
			}
			s.gen = g
		}
		plans = append(plans, s)
	}
	return plans, nil
}

func pickGenerator(d field.Descriptor, input string) (uint64, error) {
	if input != "" {
		g, err := validation.ParseElement(d, input)
		if err != nil {
			return 0, fmt.Errorf("invalid generator: %w", err)
		}
		return g, nil
	}
	if d.IsPrimitive() {
		return gf2.Reduce(2, d.FullPoly()), nil
	}
	g, err := d.FindGenerator()
	if err != nil {
		return 0, fmt.Errorf("no log/exp tables for %s: %w", d, err)
	}
	slog.Info("x does not generate the field, using the smallest generator", "field", d.String(), "generator", g)
	return g, nil
}

// buildAll builds the tables in parallel and returns them in plan order.
func buildAll(cmd *cobra.Command, cfg *config.Config, plans []tablePlan, lim tables.Limits) ([]tables.Table, error) {
	built := make([]tables.Table, len(plans))
	bar := newProgress(cmd, cfg, int64(len(plans)), "building tables")

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range plans {
		g.Go(func() error {
			t, err := buildTable(s, lim)
			if err != nil {
				return fmt.Errorf("failed to build %s table: %w", s.kind, err)
			}
			built[i] = t
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	_ = bar.Finish()
	return built, nil
}

func buildTable(s tablePlan, lim tables.Limits) (tables.Table, error) {
	if s.kind == tables.KindMull {
		return table(tables.BuildMull(s.bits, lim))
	}
	switch elementBits(s.desc.Width()) {
	case 8:
		return buildFor[uint8](s, lim)
	case 16:
		return buildFor[uint16](s, lim)
	}
	return buildFor[uint32](s, lim)
}

func buildFor[E field.Element](s tablePlan, lim tables.Limits) (tables.Table, error) {
	switch s.kind {
	case tables.KindLogExp:
		return table(tables.BuildLogExpWithGenerator[E](s.desc, E(s.gen), lim))
	case tables.KindFullMul:
		return table(tables.BuildFullMul[E](s.desc, lim))
	case tables.KindFullInv:
		return table(tables.BuildFullInv[E](s.desc, lim))
	case tables.KindReduction:
		return table(tables.BuildReduction[E](s.desc, s.bits, lim))
	}
	return nil, fmt.Errorf("unknown table kind %q", s.kind)
}

// table drops the concrete type without turning a nil pointer into a
// non-nil interface.
func table[T tables.Table](t T, err error) (tables.Table, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func writeSource(cmd *cobra.Command, pkg, output, dir string, built []tables.Table) error {
	decls := make([]codegen.Decl, len(built))
	for i, t := range built {
		decls[i] = codegen.Decl{Name: codegen.VarName(t), Table: t}
	}
	src, err := codegen.Source(pkg, decls)
	if err != nil {
		return fmt.Errorf("failed to render source: %w", err)
	}

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if output == "" {
		output = filepath.Join(dir, codegen.FileName(built[0]))
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return summarize(cmd, built, []string{output})
}

func writeTableFiles(cmd *cobra.Command, output, dir string, built []tables.Table, force bool) error {
	files := make([]*tablefile.File, len(built))
	paths := make([]string, len(built))
	for i, t := range built {
		switch {
		case output != "" && len(built) == 1:
			paths[i] = output
		case output != "":
			paths[i] = filepath.Join(output, codegen.VarName(t)+".tbl")
		default:
			paths[i] = filepath.Join(dir, codegen.VarName(t)+".tbl")
		}
		files[i] = tablefile.New(paths[i])
		if files[i].Exists() && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", paths[i])
		}
	}

	for i, f := range files {
		if err := f.Save(built[i]); err != nil {
			return fmt.Errorf("failed to save %s: %w", f.Path(), err)
		}
	}
	return summarize(cmd, built, paths)
}

// GeneratedTable describes one written table.
type GeneratedTable struct {
	Name      string      `json:"name"`
	Meta      tables.Meta `json:"meta"`
	Digest    string      `json:"digest"`
	Footprint uint64      `json:"footprint_bytes"`
	Path      string      `json:"path"`
}

func summarize(cmd *cobra.Command, built []tables.Table, paths []string) error {
	out := make([]GeneratedTable, len(built))
	for i, t := range built {
		out[i] = GeneratedTable{
			Name:      codegen.VarName(t),
			Meta:      t.Meta(),
			Digest:    t.Digest().String(),
			Footprint: tables.Footprint(t),
			Path:      paths[min(i, len(paths)-1)],
		}
	}
	if jsonOutput(cmd) {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)
	for _, g := range out {
		green.Fprint(w, "✓ ")
		printGenerated(w, g)
	}
	return nil
}

func printGenerated(w io.Writer, g GeneratedTable) {
	fmt.Fprintf(w, "%-28s %9s entries %10s  %s  %s\n",
		g.Name, humanize.Comma(int64(g.Meta.Entries)), humanize.IBytes(g.Footprint), g.Digest[:16], g.Path)
}
