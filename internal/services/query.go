package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/store"
	"github.com/localnerve/supportdash/internal/taxonomy"
	"github.com/localnerve/supportdash/internal/trends"
	"github.com/localnerve/supportdash/internal/types"
)

// QueryService answers every read against a snapshot. Results are always fresh copies.
type QueryService struct {
	snap    *store.Snapshot
	latency time.Duration
	loc     *time.Location
	now     func() time.Time
}

// QueryOption configures a QueryService.
type QueryOption func(*QueryService)

// WithLatency delays every query by d, the way a remote backend would.
func WithLatency(d time.Duration) QueryOption {
	return func(s *QueryService) {
		s.latency = d
	}
}

// WithQueryLocation sets the zone naive timestamps are read in when ordering.
func WithQueryLocation(loc *time.Location) QueryOption {
	return func(s *QueryService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now, which stamps the unknown user sentinel.
func WithClock(now func() time.Time) QueryOption {
	return func(s *QueryService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewQueryService creates a query service over snap.
func NewQueryService(snap *store.Snapshot, opts ...QueryOption) *QueryService {
	s := &QueryService{snap: snap, loc: time.Local, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot exposes the underlying records, for the trends service and health checks.
func (s *QueryService) Snapshot() *store.Snapshot {
	return s.snap
}

// StatusSummary is the app count per last status, with critical and struggle totals.
type StatusSummary struct {
	TotalApps     int            `json:"totalApps"`
	StatusCounts  map[string]int `json:"statusCounts"`
	CriticalCount int            `json:"criticalCount"`
	StruggleCount int            `json:"struggleCount"`
	HealthyCount  int            `json:"healthyCount"`
}

// UserStats summarises one user's apps.
type UserStats struct {
	TotalApps     int     `json:"totalApps"`
	ConnectedApps int     `json:"connectedApps"`
	TotalMessages int     `json:"totalMessages"`
	AvgSentiment  float64 `json:"avgSentiment"`
}

// StatusCounts are a user's app counts per status and per category.
type StatusCounts struct {
	Statuses   map[string]int            `json:"statuses"`
	Categories map[taxonomy.Category]int `json:"categories"`
}

// simulateLatency waits out the configured delay unless ctx ends first.
func (s *QueryService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// run applies the latency and turns a panic inside fn into ErrDataLoad.
func run[T any](ctx context.Context, s *QueryService, fn func() (T, error)) (result T, err error) {
	if err = s.simulateLatency(ctx); err != nil {
		return result, err
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %v", types.ErrDataLoad, r)
		}
	}()
	return fn()
}

// AppsWithUsers returns every app joined to its owner, most recent message first.
func (s *QueryService) AppsWithUsers(ctx context.Context) ([]models.AppWithUser, error) {
	return run(ctx, s, func() ([]models.AppWithUser, error) {
		return s.appsWithUsers(), nil
	})
}

func (s *QueryService) appsWithUsers() []models.AppWithUser {
	apps := s.snap.Apps()
	out := make([]models.AppWithUser, 0, len(apps))
	for _, a := range apps {
		out = append(out, s.join(a))
	}
	sortDesc(out, func(a models.AppWithUser) string { return a.LastMessageAt }, s.loc)
	return out
}

func (s *QueryService) join(a models.App) models.AppWithUser {
	u, ok := s.snap.User(a.UserID)
	if !ok {
		u = models.UnknownUser(s.now())
	}
	return models.AppWithUser{App: a, User: u}
}

// Logs returns every log, newest first.
func (s *QueryService) Logs(ctx context.Context) ([]models.AppAILog, error) {
	return run(ctx, s, func() ([]models.AppAILog, error) {
		logs := s.snap.Logs()
		sortDesc(logs, logCreatedAt, s.loc)
		return logs, nil
	})
}

// LogsByAppID returns the logs of one app, newest first. An unknown app has no logs.
func (s *QueryService) LogsByAppID(ctx context.Context, appID int) ([]models.AppAILog, error) {
	return run(ctx, s, func() ([]models.AppAILog, error) {
		return s.logsFor(func(id int) bool { return id == appID }), nil
	})
}

func (s *QueryService) logsFor(match func(appID int) bool) []models.AppAILog {
	out := []models.AppAILog{}
	for _, l := range s.snap.Logs() {
		if match(l.AppID) {
			out = append(out, l)
		}
	}
	sortDesc(out, logCreatedAt, s.loc)
	return out
}

// LatestLog returns the newest log of an app, or nil when it has none.
func (s *QueryService) LatestLog(ctx context.Context, appID int) (*models.AppAILog, error) {
	return run(ctx, s, func() (*models.AppAILog, error) {
		return s.latestLog(appID), nil
	})
}

func (s *QueryService) latestLog(appID int) *models.AppAILog {
	logs := s.logsFor(func(id int) bool { return id == appID })
	if len(logs) == 0 {
		return nil
	}
	return &logs[0]
}

// UserByID looks up a user.
func (s *QueryService) UserByID(ctx context.Context, id int) (models.User, error) {
	return run(ctx, s, func() (models.User, error) {
		u, ok := s.snap.User(id)
		if !ok {
			return models.User{}, fmt.Errorf("user %d: %w", id, types.ErrNotFound)
		}
		return u, nil
	})
}

// AppByID looks up an app with its owner and its latest log.
func (s *QueryService) AppByID(ctx context.Context, id int) (models.AppDetail, error) {
	return run(ctx, s, func() (models.AppDetail, error) {
		a, ok := s.snap.App(id)
		if !ok {
			return models.AppDetail{}, fmt.Errorf("app %d: %w", id, types.ErrNotFound)
		}
		return models.AppDetail{AppWithUser: s.join(a), LatestLog: s.latestLog(id)}, nil
	})
}

// StatusSummary counts apps by their last analysis status.
func (s *QueryService) StatusSummary(ctx context.Context) (StatusSummary, error) {
	return run(ctx, s, func() (StatusSummary, error) {
		apps := s.snap.Apps()
		sum := StatusSummary{TotalApps: len(apps), StatusCounts: make(map[string]int)}
		for _, a := range apps {
			sum.StatusCounts[a.LastChatAnalysisStatus]++
			switch taxonomy.CategoryOf(a.LastChatAnalysisStatus) {
			case taxonomy.CategoryCritical:
				sum.CriticalCount++
			case taxonomy.CategoryStruggle:
				sum.StruggleCount++
			}
		}
		sum.HealthyCount = sum.TotalApps - sum.CriticalCount - sum.StruggleCount
		return sum, nil
	})
}

// UniqueUsers returns each app owner once, in the order AppsWithUsers first yields them.
// Apps without a known owner contribute the unknown user sentinel.
func (s *QueryService) UniqueUsers(ctx context.Context) ([]models.User, error) {
	return run(ctx, s, func() ([]models.User, error) {
		seen := make(map[int]bool)
		out := []models.User{}
		for _, a := range s.appsWithUsers() {
			if seen[a.User.ID] {
				continue
			}
			seen[a.User.ID] = true
			out = append(out, a.User)
		}
		return out, nil
	})
}

// AppsForUser lists a user's apps filtered and ordered by q.
func (s *QueryService) AppsForUser(ctx context.Context, q AppQuery) ([]models.AppWithUser, error) {
	return run(ctx, s, func() ([]models.AppWithUser, error) {
		if err := q.normalize(); err != nil {
			return nil, err
		}
		out := []models.AppWithUser{}
		for _, a := range s.userApps(q.UserID) {
			if q.matches(a) {
				out = append(out, s.join(a))
			}
		}
		q.sort(out, s.loc)
		return out, nil
	})
}

func (s *QueryService) userApps(userID int) []models.App {
	var out []models.App
	for _, a := range s.snap.Apps() {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// UserStats totals a user's apps and averages the sentiment of their logs.
func (s *QueryService) UserStats(ctx context.Context, userID int) (UserStats, error) {
	return run(ctx, s, func() (UserStats, error) {
		apps := s.userApps(userID)
		stats := UserStats{TotalApps: len(apps)}
		if len(apps) == 0 {
			return stats, nil
		}
		ids := make(map[int]bool, len(apps))
		for _, a := range apps {
			ids[a.ID] = true
			stats.TotalMessages += a.TotalMessages
			if a.IsDbConnected {
				stats.ConnectedApps++
			}
		}
		var total float64
		var n int
		for _, l := range s.snap.Logs() {
			if ids[l.AppID] {
				total += l.SentimentScore
				n++
			}
		}
		if n > 0 {
			stats.AvgSentiment = total / float64(n)
		}
		return stats, nil
	})
}

// StatusCounts counts a user's apps per last status and per status category.
func (s *QueryService) StatusCounts(ctx context.Context, userID int) (StatusCounts, error) {
	return run(ctx, s, func() (StatusCounts, error) {
		counts := StatusCounts{
			Statuses:   make(map[string]int),
			Categories: make(map[taxonomy.Category]int),
		}
		for _, a := range s.userApps(userID) {
			counts.Statuses[a.LastChatAnalysisStatus]++
			counts.Categories[taxonomy.CategoryOf(a.LastChatAnalysisStatus)]++
		}
		return counts, nil
	})
}

func logCreatedAt(l models.AppAILog) string {
	return l.CreatedAt
}

// sortDesc orders items newest first by the timestamp key returns. Items whose
// timestamp does not parse keep their relative order after all the others.
func sortDesc[T any](items []T, key func(T) string, loc *time.Location) {
	type keyed struct {
		t  time.Time
		ok bool
	}
	keys := make([]keyed, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		t, err := trends.ParseTimestamp(key(it), loc)
		keys[i] = keyed{t: t, ok: err == nil}
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		switch {
		case ka.ok && !kb.ok:
			return -1
		case !ka.ok && kb.ok:
			return 1
		case !ka.ok && !kb.ok:
			return 0
		}
		return kb.t.Compare(ka.t)
	})
	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
