package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
)

// NewHealthCheck creates a Fiber healthcheck middleware with
// Kubernetes-style endpoints.
//
// Endpoints:
//   - GET /livez  - Liveness probe (app is running)
//   - GET /readyz - Readiness probe (authored content is readable)
//
// The remote CMS is deliberately excluded from readiness: the service
// degrades to local-only catalogs when the CMS is down, so a dead CMS
// must not take the site out of rotation.
func NewHealthCheck(reviewsDir string) fiber.Handler {
	return healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/livez",
		LivenessProbe: func(_ *fiber.Ctx) bool {
			return true
		},

		ReadinessEndpoint: "/readyz",
		ReadinessProbe: func(_ *fiber.Ctx) bool {
			info, err := os.Stat(reviewsDir)

			return err == nil && info.IsDir()
		},
	})
}
