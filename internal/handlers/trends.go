// trends.go
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

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/observability"
	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/types"
	"github.com/localnerve/supportdash/internal/utils"
)

// Request sequencing headers. A client that sends X-Client-Id has its trends
// responses checked against its newest request token for the same view.
const (
	ClientIDHeader     = "X-Client-Id"
	RequestTokenHeader = "X-Request-Token"
)

// Views sequenced independently of each other.
const (
	viewData      = "data"
	viewSummary   = "summary"
	viewAggregate = "aggregate"
	viewReport    = "report"
)

// TrendsHandler handles the trends routes
type TrendsHandler struct {
	Trends    *services.TrendsService
	Sequencer *services.Sequencer
	Metrics   *observability.Metrics
}

// TrendsQueryBody is the JSON body of POST /api/trends/query
type TrendsQueryBody struct {
	Range        string                 `json:"range"`
	StartDate    string                 `json:"startDate"`
	EndDate      string                 `json:"endDate"`
	Statuses     types.FlexList[string] `json:"statuses" swaggertype:"array,string"`
	GroupBy      string                 `json:"groupBy"`
	RequestToken types.FlexUint64       `json:"requestToken" swaggertype:"integer"`
}

type ticket struct {
	client string
	view   string
	token  uint64
}

// begin records the request's token for its client and view. Requests without a
// client id are not sequenced.
func (h *TrendsHandler) begin(c *fiber.Ctx, view string, bodyToken uint64) (ticket, error) {
	t := ticket{client: c.Get(ClientIDHeader), view: view}
	if t.client == "" || h.Sequencer == nil {
		return t, nil
	}

	if raw := c.Get(RequestTokenHeader); raw != "" {
		token, err := types.ParseUint64(raw)
		if err != nil {
			return t, types.Invalid("%s: %v", RequestTokenHeader, err)
		}
		t.token = token
	} else {
		t.token = bodyToken
	}
	if t.token > services.MaxRequestToken {
		return t, types.Invalid("request token must not exceed %d", services.MaxRequestToken)
	}

	if t.token == 0 {
		t.token = h.Sequencer.Next(t.client, view)
	} else {
		h.Sequencer.Observe(t.client, view, t.token)
	}
	c.Set(RequestTokenHeader, strconv.FormatUint(t.token, 10))
	return t, nil
}

// stale reports whether a newer request of the same client and view arrived while
// this one was running.
func (h *TrendsHandler) stale(t ticket) bool {
	if t.client == "" || h.Sequencer == nil {
		return false
	}
	if h.Sequencer.Current(t.client, t.view, t.token) {
		return false
	}
	h.Metrics.CountStale(t.view)
	return true
}

func trendsRequest(c *fiber.Ctx) services.TrendsRequest {
	return services.TrendsRequest{
		Range:     c.Query("range"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Statuses:  parseStatuses(c),
		GroupBy:   c.Query("groupBy"),
	}
}

// respond sends result unless a newer request superseded this one.
func (h *TrendsHandler) respond(c *fiber.Ctx, t ticket, result interface{}, err error, errorType string) error {
	if h.stale(t) {
		return utils.StaleResponse(c, t.token)
	}
	if err != nil {
		return respondError(c, err, errorType)
	}
	return utils.SuccessResponse(c, result, fiber.StatusOK)
}

// GetData handles GET /api/trends/data
// @Summary Filtered trend logs
// @Description Logs inside the date range and status filter, newest first, with a count of logs skipped for unreadable timestamps
// @Tags Trends
// @Produce json
// @Param range query string false "7d, 30d, 90d or custom" default(30d)
// @Param startDate query string false "Custom range start"
// @Param endDate query string false "Custom range end"
// @Param statuses query []string false "Status codes, repeated or comma-separated" collectionFormat(multi)
// @Param X-Client-Id header string false "Client id for request sequencing"
// @Param X-Request-Token header integer false "Monotonic request token"
// @Success 200 {object} services.TrendsData
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trends/data [get]
func (h *TrendsHandler) GetData(c *fiber.Ctx) error {
	t, err := h.begin(c, viewData, 0)
	if err != nil {
		return respondError(c, err, "trendsData")
	}
	data, err := h.Trends.Data(c.UserContext(), trendsRequest(c))
	return h.respond(c, t, data, err, "trendsData")
}

// GetSummary handles GET /api/trends/summary
// @Summary Trend summary
// @Description Totals and averages over the filtered logs
// @Tags Trends
// @Produce json
// @Param range query string false "7d, 30d, 90d or custom" default(30d)
// @Param startDate query string false "Custom range start"
// @Param endDate query string false "Custom range end"
// @Param statuses query []string false "Status codes, repeated or comma-separated" collectionFormat(multi)
// @Param X-Client-Id header string false "Client id for request sequencing"
// @Param X-Request-Token header integer false "Monotonic request token"
// @Success 200 {object} services.TrendsSummary
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trends/summary [get]
func (h *TrendsHandler) GetSummary(c *fiber.Ctx) error {
	t, err := h.begin(c, viewSummary, 0)
	if err != nil {
		return respondError(c, err, "trendsSummary")
	}
	summary, err := h.Trends.Summary(c.UserContext(), trendsRequest(c))
	return h.respond(c, t, summary, err, "trendsSummary")
}

// GetAggregate handles GET /api/trends
// @Summary Bucketed trends
// @Description Per day, week or month averages of the filtered logs, oldest bucket first
// @Tags Trends
// @Produce json
// @Param range query string false "7d, 30d, 90d or custom" default(30d)
// @Param startDate query string false "Custom range start"
// @Param endDate query string false "Custom range end"
// @Param statuses query []string false "Status codes, repeated or comma-separated" collectionFormat(multi)
// @Param groupBy query string false "day, week or month" default(day)
// @Param X-Client-Id header string false "Client id for request sequencing"
// @Param X-Request-Token header integer false "Monotonic request token"
// @Success 200 {object} services.TrendsSeries
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trends [get]
func (h *TrendsHandler) GetAggregate(c *fiber.Ctx) error {
	t, err := h.begin(c, viewAggregate, 0)
	if err != nil {
		return respondError(c, err, "trendsAggregate")
	}
	series, err := h.Trends.Aggregate(c.UserContext(), trendsRequest(c))
	return h.respond(c, t, series, err, "trendsAggregate")
}

// PostQuery handles POST /api/trends/query
// @Summary Trends report
// @Description Buckets and summary for one filter state, computed together
// @Tags Trends
// @Accept json
// @Produce json
// @Param query body TrendsQueryBody true "Filter state"
// @Param X-Client-Id header string false "Client id for request sequencing"
// @Success 200 {object} services.TrendsReport
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trends/query [post]
func (h *TrendsHandler) PostQuery(c *fiber.Ctx) error {
	var body TrendsQueryBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, types.Invalid("request body: %v", err), "trendsQuery")
	}

	t, err := h.begin(c, viewReport, body.RequestToken.Uint64())
	if err != nil {
		return respondError(c, err, "trendsQuery")
	}
	report, err := h.Trends.Report(c.UserContext(), services.TrendsRequest{
		Range:     body.Range,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
		Statuses:  types.SplitStrings(body.Statuses.Slice()),
		GroupBy:   body.GroupBy,
	})
	return h.respond(c, t, report, err, "trendsQuery")
}

// GetRanges handles GET /api/trends/ranges
// @Summary Date range presets
// @Description Every preset resolved against today
// @Tags Trends
// @Produce json
// @Success 200 {object} map[string]trends.RangeOption
// @Router /trends/ranges [get]
func (h *TrendsHandler) GetRanges(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, h.Trends.Ranges(), fiber.StatusOK)
}

// GetStatuses handles GET /api/trends/statuses
// @Summary Statuses in use
// @Description Distinct status codes present in the logs, sorted
// @Tags Trends
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trends/statuses [get]
func (h *TrendsHandler) GetStatuses(c *fiber.Ctx) error {
	statuses, err := h.Trends.UniqueStatuses(c.UserContext())
	if err != nil {
		return respondError(c, err, "trendsStatuses")
	}
	return utils.SuccessResponse(c, statuses, fiber.StatusOK)
}
