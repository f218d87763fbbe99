package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/trends"
)

// TrendsRequest is the filter state a trends view sends. Range is a preset key or
// "custom"; StartDate and EndDate only apply to "custom".
type TrendsRequest struct {
	Range     string
	StartDate string
	EndDate   string
	Statuses  []string
	GroupBy   string
}

// TrendsData is the filtered raw logs of a request.
type TrendsData struct {
	Range   trends.DateRange  `json:"range"`
	Logs    []models.AppAILog `json:"logs"`
	Quality trends.Quality    `json:"quality"`
}

// TrendsSummary is the whole-set aggregate of a request.
type TrendsSummary struct {
	Range trends.DateRange `json:"range"`
	trends.Summary
	Quality trends.Quality `json:"quality"`
}

// TrendsSeries is the bucketed aggregate of a request.
type TrendsSeries struct {
	Range   trends.DateRange `json:"range"`
	GroupBy trends.GroupBy   `json:"groupBy"`
	Buckets []trends.Bucket  `json:"buckets"`
	Quality trends.Quality   `json:"quality"`
}

// TrendsReport is everything a trends dashboard renders from one request.
type TrendsReport struct {
	Range   trends.DateRange `json:"range"`
	GroupBy trends.GroupBy   `json:"groupBy"`
	Buckets []trends.Bucket  `json:"buckets"`
	Summary trends.Summary   `json:"summary"`
	Quality trends.Quality   `json:"quality"`
}

// ReportCache stores computed reports. Implementations must tolerate concurrent use.
type ReportCache interface {
	Get(ctx context.Context, key string) (TrendsReport, bool, error)
	Set(ctx context.Context, key string, report TrendsReport) error
}

// TrendsService runs the aggregation pipeline over the query service's snapshot.
type TrendsService struct {
	query    *QueryService
	pipeline *trends.Pipeline
	cache    ReportCache
	log      *logger.Logger
}

// NewTrendsService creates a trends service. cache may be nil.
func NewTrendsService(query *QueryService, pipeline *trends.Pipeline, cache ReportCache, log *logger.Logger) *TrendsService {
	if log == nil {
		log = logger.Nop()
	}
	return &TrendsService{query: query, pipeline: pipeline, cache: cache, log: log}
}

func (s *TrendsService) now() time.Time {
	return s.query.now().In(s.pipeline.Location())
}

// Resolve turns a request into the pipeline's filter and grouping.
func (s *TrendsService) Resolve(req TrendsRequest) (trends.Filter, trends.GroupBy, error) {
	r, err := trends.ResolveRange(req.Range, req.StartDate, req.EndDate, s.now())
	if err != nil {
		return trends.Filter{}, "", err
	}
	groupBy, err := trends.ParseGroupBy(req.GroupBy)
	if err != nil {
		return trends.Filter{}, "", err
	}
	return trends.Filter{Range: r, Statuses: req.Statuses}, groupBy, nil
}

// Ranges lists the date presets resolved against the current day.
func (s *TrendsService) Ranges() map[string]trends.RangeOption {
	return trends.DateRangeOptions(s.now())
}

// Data returns the logs matching the request, newest first.
func (s *TrendsService) Data(ctx context.Context, req TrendsRequest) (TrendsData, error) {
	f, _, err := s.Resolve(req)
	if err != nil {
		return TrendsData{}, err
	}
	return run(ctx, s.query, func() (TrendsData, error) {
		return s.data(f), nil
	})
}

func (s *TrendsService) data(f trends.Filter) TrendsData {
	logs, q := s.pipeline.Filter(s.query.snap.Logs(), f)
	sortDesc(logs, logCreatedAt, s.pipeline.Location())
	return TrendsData{Range: f.Range, Logs: logs, Quality: q}
}

// Summary aggregates every log matching the request.
func (s *TrendsService) Summary(ctx context.Context, req TrendsRequest) (TrendsSummary, error) {
	f, _, err := s.Resolve(req)
	if err != nil {
		return TrendsSummary{}, err
	}
	return run(ctx, s.query, func() (TrendsSummary, error) {
		return s.summary(f), nil
	})
}

func (s *TrendsService) summary(f trends.Filter) TrendsSummary {
	logs, q := s.pipeline.Filter(s.query.snap.Logs(), f)
	return TrendsSummary{Range: f.Range, Summary: s.pipeline.Summarize(logs), Quality: q}
}

// Aggregate buckets every log matching the request by its groupBy.
func (s *TrendsService) Aggregate(ctx context.Context, req TrendsRequest) (TrendsSeries, error) {
	f, groupBy, err := s.Resolve(req)
	if err != nil {
		return TrendsSeries{}, err
	}
	return run(ctx, s.query, func() (TrendsSeries, error) {
		logs, q := s.pipeline.Filter(s.query.snap.Logs(), f)
		buckets, _ := s.pipeline.Aggregate(logs, groupBy)
		return TrendsSeries{Range: f.Range, GroupBy: groupBy, Buckets: buckets, Quality: q}, nil
	})
}

// Report filters the logs once, then buckets and summarises them concurrently.
// Reports are cached when a cache is configured.
func (s *TrendsService) Report(ctx context.Context, req TrendsRequest) (TrendsReport, error) {
	f, groupBy, err := s.Resolve(req)
	if err != nil {
		return TrendsReport{}, err
	}

	key := s.cacheKey(f, groupBy)
	if s.cache != nil {
		report, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("trends cache read failed", "key", key, "error", err)
		} else if ok {
			return report, nil
		}
	}

	report, err := run(ctx, s.query, func() (TrendsReport, error) {
		// One filter pass feeds both halves, so excluded logs are reported once.
		logs, q := s.pipeline.Filter(s.query.snap.Logs(), f)

		var buckets []trends.Bucket
		var summary trends.Summary
		var g errgroup.Group
		g.Go(func() error {
			buckets, _ = s.pipeline.Aggregate(logs, groupBy)
			return nil
		})
		g.Go(func() error {
			summary = s.pipeline.Summarize(logs)
			return nil
		})
		if err := g.Wait(); err != nil {
			return TrendsReport{}, err
		}
		return TrendsReport{
			Range:   f.Range,
			GroupBy: groupBy,
			Buckets: buckets,
			Summary: summary,
			Quality: q,
		}, nil
	})
	if err != nil {
		return TrendsReport{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report); err != nil {
			s.log.Warn("trends cache write failed", "key", key, "error", err)
		}
	}
	return report, nil
}

// UniqueStatuses lists every status code present in the logs.
func (s *TrendsService) UniqueStatuses(ctx context.Context) ([]string, error) {
	return run(ctx, s.query, func() ([]string, error) {
		return trends.UniqueStatuses(s.query.snap.Logs()), nil
	})
}

// cacheKey identifies a report by snapshot and resolved filter, so preset ranges
// roll over to a new key at midnight.
func (s *TrendsService) cacheKey(f trends.Filter, groupBy trends.GroupBy) string {
	bound := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.UTC().Format(time.RFC3339Nano)
	}
	snap := s.query.snap
	statuses := slices.Sorted(slices.Values(f.Statuses))
	return strings.Join([]string{
		snap.Source(),
		snap.LoadedAt().UTC().Format(time.RFC3339Nano),
		bound(f.Range.Start),
		bound(f.Range.End),
		string(groupBy),
		strings.Join(statuses, ","),
	}, "|")
}
