package cli

import (
	"github.com/spf13/cobra"

	"github.com/Davincible/guff/internal/codegen"
	"github.com/Davincible/guff/pkg/tables"
	"github.com/Davincible/guff/pkg/tables/embedded"
)

func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the tables compiled into the library",
		Long: `Lists every compiled-in table with its size and digest. Fields with
compiled-in tables need no generation at construction time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			var out []GeneratedTable
			for _, e := range embedded.Catalog() {
				out = append(out, GeneratedTable{
					Name:      codegen.VarName(e.Table),
					Meta:      e.Table.Meta(),
					Digest:    e.Table.Digest().String(),
					Footprint: tables.Footprint(e.Table),
					Path:      codegen.FileName(e.Table),
				})
			}

			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			for _, g := range out {
				printGenerated(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}
