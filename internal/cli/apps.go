package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/output"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/taxonomy"
)

func newAppsCmd(s *session) *cobra.Command {
	var q services.AppQuery

	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"ls"},
		Short:   "List apps with their owners",
		Long: `List apps joined to their owners, most recently active first.

With --user the list is narrowed to one owner and may be searched, filtered
by status and sorted.

Examples:
  supportctl apps                                  # Every app
  supportctl apps --user 2 --search budget         # User 2's apps matching "budget"
  supportctl apps --user 2 --status angry,stuck    # User 2's apps in those statuses
  supportctl apps --user 2 --sort AppName --order asc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				apps []models.AppWithUser
				err  error
			)
			if cmd.Flags().Changed("user") {
				apps, err = s.services.Query.AppsForUser(cmd.Context(), q)
			} else {
				apps, err = s.services.Query.AppsWithUsers(cmd.Context())
			}
			if err != nil {
				return err
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), apps)
			}
			return printApps(s.printer, apps)
		},
	}

	cmd.Flags().IntVar(&q.UserID, "user", 0, "only this user's apps")
	cmd.Flags().StringVar(&q.Search, "search", "", "case-insensitive match on app name or category (with --user)")
	cmd.Flags().StringSliceVar(&q.Statuses, "status", nil, "only these statuses (with --user)")
	cmd.Flags().StringVar(&q.SortBy, "sort", services.SortByLastMessageAt, "sort field (with --user)")
	cmd.Flags().StringVar(&q.Order, "order", services.OrderDesc, "asc or desc (with --user)")
	return cmd
}

func printApps(p *output.Printer, apps []models.AppWithUser) error {
	p.Header("Apps")
	if len(apps) == 0 {
		p.Info("No apps found.")
		return nil
	}

	table := output.NewTable(p.Out(), []string{"ID", "APP", "CATEGORY", "OWNER", "STATUS", "GROUP", "MESSAGES", "LAST MESSAGE"})
	for _, a := range apps {
		table.AddRow(
			strconv.Itoa(a.ID),
			p.Bold(a.AppName),
			a.AppCategory,
			a.User.Name,
			p.StatusBadge(a.LastChatAnalysisStatus),
			string(taxonomy.CategoryOf(a.LastChatAnalysisStatus)),
			strconv.Itoa(a.TotalMessages),
			a.LastMessageAt,
		)
	}
	return table.Render()
}
