// apps.go
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
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/utils"
)

// AppsHandler handles app, log and status summary routes
type AppsHandler struct {
	Query *services.QueryService
}

// ListApps handles GET /api/apps
// @Summary List apps
// @Description Every app joined to its owner, most recent message first. Apps whose owner is missing carry the Unknown User.
// @Tags Apps
// @Produce json
// @Success 200 {array} models.AppWithUser
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /apps [get]
func (h *AppsHandler) ListApps(c *fiber.Ctx) error {
	apps, err := h.Query.AppsWithUsers(c.UserContext())
	if err != nil {
		return respondError(c, err, "listApps")
	}
	return utils.SuccessResponse(c, apps, fiber.StatusOK)
}

// GetApp handles GET /api/apps/:id
// @Summary Get an app
// @Description An app with its owner and its most recent log
// @Tags Apps
// @Produce json
// @Param id path int true "App Id"
// @Success 200 {object} models.AppDetail
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /apps/{id} [get]
func (h *AppsHandler) GetApp(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "getApp")
	}
	app, err := h.Query.AppByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "getApp")
	}
	return utils.SuccessResponse(c, app, fiber.StatusOK)
}

// ListAppLogs handles GET /api/apps/:id/logs
// @Summary List an app's logs
// @Description Logs of one app, newest first. An unknown app yields an empty list.
// @Tags Apps
// @Produce json
// @Param id path int true "App Id"
// @Success 200 {array} models.AppAILog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /apps/{id}/logs [get]
func (h *AppsHandler) ListAppLogs(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "listAppLogs")
	}
	logs, err := h.Query.LogsByAppID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "listAppLogs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// ListLogs handles GET /api/logs
// @Summary List logs
// @Description Every log, newest first
// @Tags Logs
// @Produce json
// @Success 200 {array} models.AppAILog
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /logs [get]
func (h *AppsHandler) ListLogs(c *fiber.Ctx) error {
	logs, err := h.Query.Logs(c.UserContext())
	if err != nil {
		return respondError(c, err, "listLogs")
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// StatusSummary handles GET /api/status/summary
// @Summary Status summary
// @Description App counts per last analysis status with critical, struggle and healthy totals
// @Tags Status
// @Produce json
// @Success 200 {object} services.StatusSummary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /status/summary [get]
func (h *AppsHandler) StatusSummary(c *fiber.Ctx) error {
	summary, err := h.Query.StatusSummary(c.UserContext())
	if err != nil {
		return respondError(c, err, "statusSummary")
	}
	return utils.SuccessResponse(c, summary, fiber.StatusOK)
}
