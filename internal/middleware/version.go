package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/taxonomy"
	"github.com/localnerve/supportdash/internal/trends"
)

// APIVersion is the only API version served.
const APIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header and stores it in context. Every
// response advertises the API version and the revisions of the status table and
// date presets, so clients can tell when their cached copies are out of date.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", APIVersion)

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = APIVersion
		}
		if version != APIVersion {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "unsupported X-Api-Version " + version,
			}
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", APIVersion)
		c.Set("X-Taxonomy-Version", taxonomy.Version)
		c.Set("X-Presets-Version", trends.PresetsVersion)

		return c.Next()
	}
}
