package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// StaleResponse sends a conflict (409) telling the client a newer request of theirs
// superseded this one, so the result was dropped.
func StaleResponse(c *fiber.Ctx, token uint64) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"status":        fiber.StatusConflict,
		"message":       "E_STALE - A newer request from this client superseded this one.",
		"ok":            false,
		"staleResponse": true,
		"requestToken":  token,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"url":           c.OriginalURL(),
		"type":          "stale",
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "notFound",
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status        int    `json:"status"`
	Message       string `json:"message"`
	Ok            bool   `json:"ok"`
	Timestamp     string `json:"timestamp"`
	URL           string `json:"url"`
	Type          string `json:"type,omitempty"`
	StaleResponse bool   `json:"staleResponse,omitempty"`
	RequestToken  uint64 `json:"requestToken,omitempty"`
}
