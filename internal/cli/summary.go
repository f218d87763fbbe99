package cli

import (
	"cmp"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localnerve/supportdash/internal/output"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/taxonomy"
)

func newSummaryCmd(s *session) *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count apps by status",
		Long: `Count apps by their last chat analysis status, with critical, struggling and
healthy totals. With --user the counts cover one user's apps and add that user's
message and sentiment totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("user") {
				return runUserSummary(cmd, s, userID)
			}
			sum, err := s.services.Query.StatusSummary(cmd.Context())
			if err != nil {
				return err
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), sum)
			}
			return printSummary(s.printer, sum)
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "summarise one user's apps")
	return cmd
}

type userSummary struct {
	User   string                `json:"user"`
	Stats  services.UserStats    `json:"stats"`
	Counts services.StatusCounts `json:"counts"`
}

func runUserSummary(cmd *cobra.Command, s *session, userID int) error {
	user, err := s.services.Query.UserByID(cmd.Context(), userID)
	if err != nil {
		return err
	}
	stats, err := s.services.Query.UserStats(cmd.Context(), userID)
	if err != nil {
		return err
	}
	counts, err := s.services.Query.StatusCounts(cmd.Context(), userID)
	if err != nil {
		return err
	}
	out := userSummary{User: user.Name, Stats: stats, Counts: counts}
	if s.jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	p := s.printer
	p.Header(user.Name)
	p.Info("Apps:          %d (%d with a database)", stats.TotalApps, stats.ConnectedApps)
	p.Info("Messages:      %d", stats.TotalMessages)
	p.Info("Avg sentiment: %.2f", stats.AvgSentiment)
	return printCounts(p, counts.Statuses)
}

func printSummary(p *output.Printer, sum services.StatusSummary) error {
	p.Header("Status Summary")
	p.Info("Apps:       %d", sum.TotalApps)
	p.Info("Critical:   %d", sum.CriticalCount)
	p.Info("Struggling: %d", sum.StruggleCount)
	p.Info("Healthy:    %d", sum.HealthyCount)
	return printCounts(p, sum.StatusCounts)
}

// printCounts renders status counts, largest first.
func printCounts(p *output.Printer, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}
	statuses := slices.SortedFunc(maps.Keys(counts), func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	table := output.NewTable(p.Out(), []string{"STATUS", "GROUP", "COUNT"})
	for _, status := range statuses {
		table.AddRow(
			p.StatusBadge(status),
			string(taxonomy.CategoryOf(status)),
			strconv.Itoa(counts[status]),
		)
	}
	return table.Render()
}
