package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/localnerve/supportdash/internal/output"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/trends"
)

func newTrendsCmd(s *session) *cobra.Command {
	var req services.TrendsRequest

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show sentiment and frustration trends",
		Long: `Aggregate chat analysis logs into date buckets and an overall summary.

Examples:
  supportctl trends                                         # Last 30 days by day
  supportctl trends --range 90d --group-by month            # Monthly for 90 days
  supportctl trends --range custom --start 2026-09-01 --end 2026-09-30
  supportctl trends --status angry,giving_up --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := s.services.Trends.Report(cmd.Context(), req)
			if err != nil {
				return err
			}
			if s.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printReport(s.printer, report)
		},
	}

	cmd.Flags().StringVar(&req.Range, "range", trends.DefaultRangeKey, "7d, 30d, 90d or custom")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "start bound for --range custom")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "end bound for --range custom")
	cmd.Flags().StringSliceVar(&req.Statuses, "status", nil, "only these statuses")
	cmd.Flags().StringVar(&req.GroupBy, "group-by", string(trends.GroupByDay), "day, week or month")
	return cmd
}

func printReport(p *output.Printer, r services.TrendsReport) error {
	p.Header(fmt.Sprintf("Trends by %s (%s)", r.GroupBy, describeRange(r.Range)))
	if r.Quality.Unparsable > 0 {
		p.Warning("%d logs skipped: unreadable timestamps %v", r.Quality.Unparsable, r.Quality.LogIDs)
	}

	if len(r.Buckets) == 0 {
		p.Info("No interactions in range.")
	} else {
		table := output.NewTable(p.Out(), []string{"DATE", "COUNT", "AVG SENTIMENT", "AVG FRUSTRATION"})
		for _, b := range r.Buckets {
			table.AddRow(
				b.Date,
				strconv.Itoa(b.Count),
				p.Sentiment(b.AvgSentiment),
				strconv.FormatFloat(b.AvgFrustration, 'f', 2, 64),
			)
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	p.Header("Summary")
	p.Info("Interactions:    %d", r.Summary.TotalInteractions)
	p.Info("Avg sentiment:   %.2f", r.Summary.AvgSentiment)
	p.Info("Avg frustration: %.2f", r.Summary.AvgFrustration)
	return printCounts(p, r.Summary.StatusDistribution)
}

func describeRange(r trends.DateRange) string {
	const layout = "2006-01-02"
	start, end := "…", "…"
	if r.Start != nil {
		start = r.Start.Format(layout)
	}
	if r.End != nil {
		end = r.End.Format(layout)
	}
	return start + " to " + end
}
