// common.go
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
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/types"
	"github.com/localnerve/supportdash/internal/utils"
)

// parseStatuses extracts status codes from query parameters,
// supporting both multiple 'statuses' keys and comma-separated values.
func parseStatuses(c *fiber.Ctx) []string {
	var values []string

	// Visit all query arguments to collect multiple 'statuses' parameters
	args := c.Context().QueryArgs()
	for key, value := range args.All() {
		if string(key) == "statuses" {
			values = append(values, string(value))
		}
	}

	return types.SplitStrings(values)
}

// parseID reads a non-negative integer path parameter.
func parseID(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, types.Invalid("%s must be a non-negative integer, got %q", name, raw)
	}
	return id, nil
}

// respondError maps err onto the error envelope. errorType names the failing
// operation when err carries no type of its own.
func respondError(c *fiber.Ctx, err error, errorType string) error {
	ce := types.FromError(err, errorType)
	if errors.Is(err, types.ErrNotFound) {
		return utils.NotFoundResponse(c, ce.Message)
	}
	return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
}

// ErrorHandler renders errors that escape a handler or middleware in the error
// envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return utils.NotFoundResponse(c, fe.Message)
		}
		return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
	}
	return respondError(c, err, "unknown")
}

// NotFound answers every request no route matched.
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
