package info

import (
	"github.com/example/gke-demo/internal/version"

	"github.com/gofiber/fiber/v2"
)

// InfoHandler handles application-info requests. It assembles the report from
// build-time constants plus the runtime version, building a fresh response per
// request.
func InfoHandler(c *fiber.Ctx) error {
	response := InfoResponse{
		Application:      version.AppName,
		Version:          version.GetShortVersion(),
		RuntimeVersion:   version.GetRuntimeVersion(),
		FrameworkVersion: fiber.Version,
	}

	return c.JSON(response)
}
