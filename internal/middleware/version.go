package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/salesdb/internal/types"
)

var supportedAPIVersions = map[string]bool{
	"1.0.0": true,
}

// VersionMiddleware parses the X-Api-Version and X-App-Version headers and
// stores them in context. The mobile app reports its build number so request
// logs can be correlated with app releases. Unsupported api versions are
// rejected before they reach a handler.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Support version aliases
		if version == "1.0" {
			version = "1.0.0"
		}

		if !supportedAPIVersions[version] {
			return &types.CustomError{
				Code:    fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unsupported api version %q", version),
				Type:    "version.unsupported",
			}
		}

		c.Locals("apiVersion", version)
		c.Locals("appVersion", c.Get("X-App-Version", "unknown"))

		return c.Next()
	}
}
