package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/services"
	"github.com/localnerve/supportdash/internal/utils"
)

// UsersHandler handles the per-user dashboard routes
type UsersHandler struct {
	Query *services.QueryService
}

// ListUsers handles GET /api/users
// @Summary List app owners
// @Description Each app owner once, in app order
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Query.UniqueUsers(c.UserContext())
	if err != nil {
		return respondError(c, err, "listUsers")
	}
	return utils.SuccessResponse(c, users, fiber.StatusOK)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User Id"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "getUser")
	}
	user, err := h.Query.UserByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "getUser")
	}
	return utils.SuccessResponse(c, user, fiber.StatusOK)
}

// ListUserApps handles GET /api/users/:id/apps
// @Summary List a user's apps
// @Description A user's apps, searched by name or category, filtered by status and sorted
// @Tags Users
// @Produce json
// @Param id path int true "User Id"
// @Param search query string false "Case-insensitive match on AppName or AppCategory"
// @Param statuses query []string false "Status codes, repeated or comma-separated" collectionFormat(multi)
// @Param sortBy query string false "AppName, LastChatAnalysisStatus, TotalMessages, LastMessageAt or CreatedAt" default(LastMessageAt)
// @Param order query string false "asc or desc" default(desc)
// @Success 200 {array} models.AppWithUser
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/apps [get]
func (h *UsersHandler) ListUserApps(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "listUserApps")
	}
	apps, err := h.Query.AppsForUser(c.UserContext(), services.AppQuery{
		UserID:   id,
		Search:   c.Query("search"),
		Statuses: parseStatuses(c),
		SortBy:   c.Query("sortBy"),
		Order:    c.Query("order"),
	})
	if err != nil {
		return respondError(c, err, "listUserApps")
	}
	return utils.SuccessResponse(c, apps, fiber.StatusOK)
}

// UserStats handles GET /api/users/:id/stats
// @Summary User stats
// @Description App, connection and message totals plus average log sentiment for one user
// @Tags Users
// @Produce json
// @Param id path int true "User Id"
// @Success 200 {object} services.UserStats
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/stats [get]
func (h *UsersHandler) UserStats(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "userStats")
	}
	stats, err := h.Query.UserStats(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "userStats")
	}
	return utils.SuccessResponse(c, stats, fiber.StatusOK)
}

// UserStatusCounts handles GET /api/users/:id/status-counts
// @Summary User status counts
// @Description A user's app counts per status and per status category
// @Tags Users
// @Produce json
// @Param id path int true "User Id"
// @Success 200 {object} services.StatusCounts
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/status-counts [get]
func (h *UsersHandler) UserStatusCounts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "userStatusCounts")
	}
	counts, err := h.Query.StatusCounts(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "userStatusCounts")
	}
	return utils.SuccessResponse(c, counts, fiber.StatusOK)
}
