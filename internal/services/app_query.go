package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/trends"
	"github.com/localnerve/supportdash/internal/types"
)

// Sort fields accepted by AppQuery.
const (
	SortByAppName       = "AppName"
	SortByStatus        = "LastChatAnalysisStatus"
	SortByTotalMessages = "TotalMessages"
	SortByLastMessageAt = "LastMessageAt"
	SortByCreatedAt     = "CreatedAt"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// AppQuery selects and orders one user's apps. Zero values mean no search, no status
// filter, and the default LastMessageAt descending order.
type AppQuery struct {
	UserID   int
	Search   string
	Statuses []string
	SortBy   string
	Order    string
}

func (q *AppQuery) normalize() error {
	if q.SortBy == "" {
		q.SortBy = SortByLastMessageAt
	}
	switch q.SortBy {
	case SortByAppName, SortByStatus, SortByTotalMessages, SortByLastMessageAt, SortByCreatedAt:
	default:
		return types.Invalid("unknown sort field %q", q.SortBy)
	}

	q.Order = strings.ToLower(q.Order)
	if q.Order == "" {
		q.Order = OrderDesc
	}
	if q.Order != OrderAsc && q.Order != OrderDesc {
		return types.Invalid("order must be %q or %q", OrderAsc, OrderDesc)
	}

	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	return nil
}

func (q AppQuery) matches(a models.App) bool {
	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, a.LastChatAnalysisStatus) {
		return false
	}
	if q.Search == "" {
		return true
	}
	return containsFold(a.AppName, q.Search) || containsFold(a.AppCategory, q.Search)
}

func (q AppQuery) sort(apps []models.AppWithUser, loc *time.Location) {
	switch q.SortBy {
	case SortByLastMessageAt, SortByCreatedAt:
		key := func(a models.AppWithUser) string { return a.LastMessageAt }
		if q.SortBy == SortByCreatedAt {
			key = func(a models.AppWithUser) string { return a.CreatedAt }
		}
		sortDesc(apps, key, loc)
		if q.Order == OrderAsc {
			reverseParsed(apps, key, loc)
		}
		return
	}

	compare := func(a, b models.AppWithUser) int {
		switch q.SortBy {
		case SortByAppName:
			return strings.Compare(a.AppName, b.AppName)
		case SortByStatus:
			return strings.Compare(a.LastChatAnalysisStatus, b.LastChatAnalysisStatus)
		}
		return cmp.Compare(a.TotalMessages, b.TotalMessages)
	}
	slices.SortStableFunc(apps, func(a, b models.AppWithUser) int {
		if q.Order == OrderDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// reverseParsed flips the parsed prefix of a sortDesc result so it runs oldest
// first, leaving unparsable entries at the end.
func reverseParsed[T any](items []T, key func(T) string, loc *time.Location) {
	n := 0
	for _, it := range items {
		if _, err := trends.ParseTimestamp(key(it), loc); err != nil {
			break
		}
		n++
	}
	slices.Reverse(items[:n])
}
