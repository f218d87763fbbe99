package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/localnerve/supportdash/internal/output"
	"github.com/localnerve/supportdash/internal/taxonomy"
)

func newTaxonomyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the status groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := taxonomy.Groups()
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"version": taxonomy.Version,
					"groups":  groups,
				})
			}

			p := s.printer
			p.Header("Status Taxonomy " + taxonomy.Version)
			table := output.NewTable(p.Out(), []string{"GROUP", "NAME", "VARIANT", "STATUSES"})
			for _, g := range groups {
				table.AddRow(string(g.Category), p.Bold(g.DisplayName), string(g.Variant), strings.Join(g.Statuses, ", "))
			}
			return table.Render()
		},
	}
}
