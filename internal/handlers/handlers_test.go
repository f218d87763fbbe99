// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localnerve/supportdash/internal/handlers"
	"github.com/localnerve/supportdash/internal/models"
	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/store"
	"github.com/localnerve/supportdash/internal/trends"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func testSnapshot() *store.Snapshot {
	users := []models.User{
		{ID: 1, Name: "Ada", Email: "ada@example.com", ExternalID: "usr_1"},
		{ID: 2, Name: "Grace", Email: "grace@example.com", ExternalID: "usr_2"},
	}
	apps := []models.App{
		{ID: 10, UserID: 1, AppName: "Budget Buddy", AppCategory: "Finance", TotalMessages: 40,
			LastMessageAt: "2024-01-05T10:00:00Z", LastChatAnalysisStatus: "stuck", IsDbConnected: true},
		{ID: 11, UserID: 1, AppName: "Recipe Box", AppCategory: "Food", TotalMessages: 5,
			LastMessageAt: "2024-01-07T10:00:00Z", LastChatAnalysisStatus: "smooth_progress"},
		{ID: 12, UserID: 2, AppName: "Fleet Tracker", AppCategory: "Logistics", TotalMessages: 12,
			LastMessageAt: "2024-01-06T10:00:00Z", LastChatAnalysisStatus: "angry"},
	}
	logs := []models.AppAILog{
		{ID: 1, AppID: 10, CreatedAt: "2024-01-01T10:00:00Z", ChatAnalysisStatus: "stuck", SentimentScore: 0.2, FrustrationLevel: 4},
		{ID: 2, AppID: 10, CreatedAt: "2024-01-01T15:00:00Z", ChatAnalysisStatus: "smooth_progress", SentimentScore: 0.6, FrustrationLevel: 2},
		{ID: 3, AppID: 11, CreatedAt: "2024-01-02T09:00:00Z", ChatAnalysisStatus: "smooth_progress", SentimentScore: 0.9, FrustrationLevel: 1},
		{ID: 4, AppID: 12, CreatedAt: "2024-01-09T09:00:00Z", ChatAnalysisStatus: "angry", SentimentScore: -0.8, FrustrationLevel: 5},
		{ID: 5, AppID: 12, CreatedAt: "sometime", ChatAnalysisStatus: "angry", SentimentScore: -0.5, FrustrationLevel: 5},
	}
	return store.New(store.SourceEmbedded, users, apps, logs)
}

type testEnv struct {
	app     *fiber.App
	metrics *observability.Metrics
}

// setupApp wires the API routes over snap the way the server does.
func setupApp(t *testing.T, snap *store.Snapshot, latency time.Duration) testEnv {
	t.Helper()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	query := services.NewQueryService(snap,
		services.WithLatency(latency),
		services.WithQueryLocation(time.UTC),
		services.WithClock(func() time.Time { return fixedNow }),
	)
	pipeline := trends.New(trends.WithLocation(time.UTC), trends.WithUnparsableHook(metrics.CountUnparsable))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handlers.RegisterRoutes(app.Group("/api"), handlers.Deps{
		Query:     query,
		Trends:    services.NewTrendsService(query, pipeline, nil, nil),
		Sequencer: services.NewSequencer(),
		Metrics:   metrics,
	})
	app.Use(handlers.NotFound)
	return testEnv{app: app, metrics: metrics}
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out interface{}) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp
}

func TestListAppsEmbeddedFixtures(t *testing.T) {
	snap, err := store.LoadEmbedded()
	require.NoError(t, err)
	env := setupApp(t, snap, 0)

	var apps []models.AppWithUser
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/apps", nil), &apps)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, apps, 14)
	assert.Equal(t, "Budget Buddy", apps[0].AppName)

	var orphan *models.AppWithUser
	for i := range apps {
		if apps[i].ID == 14 {
			orphan = &apps[i]
		}
	}
	require.NotNil(t, orphan)
	assert.Equal(t, "Unknown User", orphan.User.Name)
	assert.Equal(t, "unknown", orphan.User.ExternalID)
}

func TestGetApp(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var detail models.AppDetail
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/apps/10", nil), &detail)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Budget Buddy", detail.AppName)
	assert.Equal(t, "Ada", detail.User.Name)
	require.NotNil(t, detail.LatestLog)
	assert.Equal(t, 2, detail.LatestLog.ID)
}

func TestGetAppNotFound(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var body map[string]interface{}
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/apps/999", nil), &body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "notFound", body["type"])
	assert.Equal(t, "/api/apps/999", body["url"])
}

func TestBadID(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var body map[string]interface{}
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/abc", nil), &body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalidArgument", body["type"])
}

func TestListAppLogsAndLogs(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var logs []models.AppAILog
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/apps/10/logs", nil), &logs)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, logs, 2)
	assert.Equal(t, 2, logs[0].ID)

	var none []models.AppAILog
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/apps/5000/logs", nil), &none)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	var all []models.AppAILog
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/logs", nil), &all)
	require.Len(t, all, 5)
	assert.Equal(t, 4, all[0].ID)
	assert.Equal(t, 5, all[4].ID)
}

func TestStatusSummary(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var sum services.StatusSummary
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/status/summary", nil), &sum)
	assert.Equal(t, 3, sum.TotalApps)
	assert.Equal(t, 1, sum.CriticalCount)
	assert.Equal(t, 1, sum.StruggleCount)
	assert.Equal(t, 1, sum.HealthyCount)
}

func TestUserRoutes(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var users []models.User
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users", nil), &users)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)

	var user models.User
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/2", nil), &user)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "usr_2", user.ExternalID)

	var apps []models.AppWithUser
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/apps?sortBy=TotalMessages&order=desc", nil), &apps)
	require.Len(t, apps, 2)
	assert.Equal(t, 10, apps[0].ID)

	apps = nil
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/apps?statuses=stuck&statuses=angry", nil), &apps)
	require.Len(t, apps, 1)
	assert.Equal(t, 10, apps[0].ID)

	apps = nil
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/apps?search=recipe", nil), &apps)
	require.Len(t, apps, 1)
	assert.Equal(t, 11, apps[0].ID)

	var body map[string]interface{}
	resp = doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/apps?sortBy=Color", nil), &body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var stats services.UserStats
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/stats", nil), &stats)
	assert.Equal(t, 2, stats.TotalApps)
	assert.Equal(t, 1, stats.ConnectedApps)
	assert.Equal(t, 45, stats.TotalMessages)
	assert.InDelta(t, (0.2+0.6+0.9)/3, stats.AvgSentiment, 1e-9)

	var counts map[string]map[string]int
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/users/1/status-counts", nil), &counts)
	assert.Equal(t, map[string]int{"stuck": 1, "smooth_progress": 1}, counts["statuses"])
	assert.Equal(t, map[string]int{"struggle": 1, "positive": 1}, counts["categories"])
}

func TestTrendsAggregate(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var series services.TrendsSeries
	resp := doJSON(t, env.app, httptest.NewRequest("GET",
		"/api/trends?range=custom&startDate=2024-01-01&endDate=2024-01-05&groupBy=day", nil), &series)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, series.Buckets, 2)
	assert.Equal(t, "2024-01-01", series.Buckets[0].Date)
	assert.InDelta(t, 0.4, series.Buckets[0].AvgSentiment, 1e-9)
	assert.InDelta(t, 3.0, series.Buckets[0].AvgFrustration, 1e-9)
	assert.Equal(t, 2, series.Buckets[0].Count)
	assert.Equal(t, "2024-01-02", series.Buckets[1].Date)
	assert.InDelta(t, 0.9, series.Buckets[1].AvgSentiment, 1e-9)
	assert.Equal(t, 1, series.Quality.Unparsable)
}

func TestTrendsDataAndSummary(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var data services.TrendsData
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/trends/data?range=7d&statuses=angry,stuck", nil), &data)
	require.Len(t, data.Logs, 1)
	assert.Equal(t, 4, data.Logs[0].ID)

	var sum services.TrendsSummary
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/trends/summary?range=30d", nil), &sum)
	assert.Equal(t, 4, sum.TotalInteractions)
	assert.Equal(t, map[string]int{"stuck": 1, "smooth_progress": 2, "angry": 1}, sum.StatusDistribution)

	var body map[string]interface{}
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/trends/summary?range=3w", nil), &body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTrendsQueryBody(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	payload := []byte(`{"range":"custom","startDate":"2024-01-01","endDate":"2024-01-31","statuses":"smooth_progress","groupBy":"month","requestToken":"3"}`)
	req := httptest.NewRequest("POST", "/api/trends/query", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.ClientIDHeader, "client-1")

	var report services.TrendsReport
	resp := doJSON(t, env.app, req, &report)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "3", resp.Header.Get(handlers.RequestTokenHeader))
	require.Len(t, report.Buckets, 1)
	assert.Equal(t, "2024-01", report.Buckets[0].Date)
	assert.Equal(t, 2, report.Summary.TotalInteractions)
}

func TestRequestTokenOutOfRange(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	req := httptest.NewRequest("GET", "/api/trends/summary?range=7d", nil)
	req.Header.Set(handlers.ClientIDHeader, "client-1")
	req.Header.Set(handlers.RequestTokenHeader, "18446744073709551615")
	var body map[string]interface{}
	resp := doJSON(t, env.app, req, &body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload := []byte(`{"range":"7d","requestToken":"9007199254740992"}`)
	req = httptest.NewRequest("POST", "/api/trends/query", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.ClientIDHeader, "client-1")
	resp = doJSON(t, env.app, req, &body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// the largest accepted token still leaves the client sequenced
	req = httptest.NewRequest("GET", "/api/trends/summary?range=7d", nil)
	req.Header.Set(handlers.ClientIDHeader, "client-1")
	req.Header.Set(handlers.RequestTokenHeader, "9007199254740991")
	resp = doJSON(t, env.app, req, &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTrendsRangesStatusesTaxonomy(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var ranges map[string]trends.RangeOption
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/trends/ranges", nil), &ranges)
	require.Contains(t, ranges, "7d")
	assert.True(t, ranges["7d"].StartDate.Equal(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)))

	var statuses []string
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/trends/statuses", nil), &statuses)
	assert.Equal(t, []string{"angry", "smooth_progress", "stuck"}, statuses)

	var tax handlers.TaxonomyResponse
	doJSON(t, env.app, httptest.NewRequest("GET", "/api/taxonomy", nil), &tax)
	assert.Len(t, tax.Groups, 7)
	assert.Equal(t, "Going In Circles", tax.DisplayNames["going_in_circles"])
	assert.Equal(t, "30d", tax.DefaultRange)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	env := setupApp(t, testSnapshot(), 300*time.Millisecond)

	request := func(token string) *http.Request {
		req := httptest.NewRequest("GET", "/api/trends/summary?range=30d", nil)
		req.Header.Set(handlers.ClientIDHeader, "client-7")
		req.Header.Set(handlers.RequestTokenHeader, token)
		return req
	}

	type result struct {
		status int
		body   map[string]interface{}
	}
	older := make(chan result, 1)
	go func() {
		var body map[string]interface{}
		resp := doJSON(t, env.app, request("1"), &body)
		older <- result{resp.StatusCode, body}
	}()

	time.Sleep(100 * time.Millisecond)
	var newer services.TrendsSummary
	resp := doJSON(t, env.app, request("2"), &newer)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, newer.TotalInteractions)

	got := <-older
	assert.Equal(t, fiber.StatusConflict, got.status)
	assert.Equal(t, true, got.body["staleResponse"])
	assert.Equal(t, "stale", got.body["type"])
}

func TestUnknownRoute(t *testing.T) {
	env := setupApp(t, testSnapshot(), 0)

	var body map[string]interface{}
	resp := doJSON(t, env.app, httptest.NewRequest("GET", "/api/nope", nil), &body)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "[404] Resource Not Found", body["message"])
}
