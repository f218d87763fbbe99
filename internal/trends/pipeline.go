// pipeline.go
//
// Support analytics data service for app chat analysis logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of supportdash.
// supportdash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// supportdash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with supportdash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package trends filters interaction logs by date range and status, buckets them by
// day, week or month and computes per-bucket and overall sentiment and frustration.
package trends

import (
	"sort"
	"time"

	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/types"
)

// GroupBy selects the bucket width.
type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

// ParseGroupBy accepts day, week or month; blank means day.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case "", GroupByDay:
		return GroupByDay, nil
	case GroupByWeek, GroupByMonth:
		return GroupBy(s), nil
	}
	return "", types.Invalid("unknown groupBy %q", s)
}

// Filter is the explicit filter state of one trends query.
type Filter struct {
	Range DateRange
	// Statuses restricts logs to these status codes. Empty lets every status through.
	Statuses []string
}

// Quality reports logs dropped because their timestamp could not be read.
type Quality struct {
	Unparsable int   `json:"unparsable"`
	LogIDs     []int `json:"logIds,omitempty"`
}

func (q *Quality) add(id int) {
	q.Unparsable++
	q.LogIDs = append(q.LogIDs, id)
}

// Bucket is the aggregate of every log sharing a bucket key.
type Bucket struct {
	Date           string         `json:"date"`
	AvgSentiment   float64        `json:"avgSentiment"`
	AvgFrustration float64        `json:"avgFrustration"`
	Count          int            `json:"count"`
	Statuses       map[string]int `json:"statuses"`
}

// Summary is the aggregate over a whole filtered set.
type Summary struct {
	TotalInteractions  int            `json:"totalInteractions"`
	AvgSentiment       float64        `json:"avgSentiment"`
	AvgFrustration     float64        `json:"avgFrustration"`
	StatusDistribution map[string]int `json:"statusDistribution"`
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLocation sets the location naive timestamps are read in and buckets are cut in.
func WithLocation(loc *time.Location) Option {
	return func(p *Pipeline) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithLogger sets the logger data-quality warnings go to.
func WithLogger(l *logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithUnparsableHook registers a callback receiving the number of logs dropped per pass.
func WithUnparsableHook(fn func(n int)) Option {
	return func(p *Pipeline) {
		p.onUnparsable = fn
	}
}

// Pipeline holds no query state; every call takes its filter and grouping explicitly.
type Pipeline struct {
	loc          *time.Location
	log          *logger.Logger
	onUnparsable func(n int)
}

// New returns a pipeline bucketing in the local time zone unless told otherwise.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{loc: time.Local, log: logger.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location is the time zone buckets are cut in.
func (p *Pipeline) Location() *time.Location {
	return p.loc
}

// Filter returns the logs inside f.Range whose status is in f.Statuses. Logs with an
// unreadable timestamp never match and are reported in Quality.
func (p *Pipeline) Filter(logs []models.AppAILog, f Filter) ([]models.AppAILog, Quality) {
	var q Quality
	if f.Range.Inverted() {
		return []models.AppAILog{}, q
	}

	wanted := make(map[string]struct{}, len(f.Statuses))
	for _, s := range f.Statuses {
		wanted[s] = struct{}{}
	}

	out := make([]models.AppAILog, 0, len(logs))
	for _, l := range logs {
		at, err := ParseTimestamp(l.CreatedAt, p.loc)
		if err != nil {
			q.add(l.ID)
			continue
		}
		if !f.Range.Contains(at) {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[l.ChatAnalysisStatus]; !ok {
				continue
			}
		}
		out = append(out, l)
	}
	p.report("filter", q)
	return out, q
}

type accumulator struct {
	sentiment   stat
	frustration stat
	statuses    map[string]int
}

// Aggregate buckets logs by groupBy and returns the buckets in chronological order.
// Only keys that occur in logs get a bucket.
func (p *Pipeline) Aggregate(logs []models.AppAILog, groupBy GroupBy) ([]Bucket, Quality) {
	var q Quality
	groups := make(map[string]*accumulator)
	for _, l := range logs {
		at, err := ParseTimestamp(l.CreatedAt, p.loc)
		if err != nil {
			q.add(l.ID)
			continue
		}
		key := BucketKey(at.In(p.loc), groupBy)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{statuses: make(map[string]int)}
			groups[key] = acc
		}
		acc.sentiment.add(l.SentimentScore)
		acc.frustration.add(float64(l.FrustrationLevel))
		acc.statuses[l.ChatAnalysisStatus]++
	}
	p.report("aggregate", q)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		acc := groups[k]
		buckets = append(buckets, Bucket{
			Date:           k,
			AvgSentiment:   acc.sentiment.mean(),
			AvgFrustration: acc.frustration.mean(),
			Count:          acc.sentiment.n,
			Statuses:       acc.statuses,
		})
	}
	return buckets, q
}

// Summarize aggregates the whole set. An empty set yields zeros and an empty
// distribution.
func (p *Pipeline) Summarize(logs []models.AppAILog) Summary {
	var sentiment, frustration stat
	dist := make(map[string]int)
	for _, l := range logs {
		sentiment.add(l.SentimentScore)
		frustration.add(float64(l.FrustrationLevel))
		dist[l.ChatAnalysisStatus]++
	}
	return Summary{
		TotalInteractions:  len(logs),
		AvgSentiment:       sentiment.mean(),
		AvgFrustration:     frustration.mean(),
		StatusDistribution: dist,
	}
}

func (p *Pipeline) report(stage string, q Quality) {
	if q.Unparsable == 0 {
		return
	}
	p.log.Warn("excluded logs with unparsable timestamps",
		"stage", stage,
		"count", q.Unparsable,
		"logIds", q.LogIDs,
	)
	if p.onUnparsable != nil {
		p.onUnparsable(q.Unparsable)
	}
}

// BucketKey returns the bucket t falls in: YYYY-MM-DD for day, the date of the
// preceding (or same) Sunday for week, YYYY-MM for month. t is used in its own location.
func BucketKey(t time.Time, groupBy GroupBy) string {
	switch groupBy {
	case GroupByWeek:
		day := startOfDay(t)
		return day.AddDate(0, 0, -int(day.Weekday())).Format("2006-01-02")
	case GroupByMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// UniqueStatuses returns the distinct status codes of logs, sorted.
func UniqueStatuses(logs []models.AppAILog) []string {
	seen := make(map[string]struct{})
	for _, l := range logs {
		seen[l.ChatAnalysisStatus] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
