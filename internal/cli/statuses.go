package cli

import (
	"github.com/spf13/cobra"

	"github.com/localnerve/supportdash/internal/output"
	"github.com/localnerve/supportdash/internal/taxonomy"
)

type statusRow struct {
	Status   string            `json:"status"`
	Label    string            `json:"label"`
	Category taxonomy.Category `json:"category"`
	Known    bool              `json:"known"`
}

func newStatusesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List the statuses present in the logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := s.services.Trends.UniqueStatuses(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]statusRow, 0, len(statuses))
			for _, st := range statuses {
				rows = append(rows, statusRow{
					Status:   st,
					Label:    taxonomy.FormatStatus(st),
					Category: taxonomy.CategoryOf(st),
					Known:    taxonomy.IsKnown(st),
				})
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			p := s.printer
			p.Header("Statuses")
			table := output.NewTable(p.Out(), []string{"STATUS", "LABEL", "GROUP"})
			for _, r := range rows {
				table.AddRow(r.Status, p.StatusBadge(r.Status), string(r.Category))
			}
			if err := table.Render(); err != nil {
				return err
			}
			for _, r := range rows {
				if !r.Known {
					p.Warning("status %q is not in the taxonomy", r.Status)
				}
			}
			return nil
		},
	}
}
