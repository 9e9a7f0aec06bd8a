package handlers

import (
	"github.com/gcgpws/backend-portal/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports process liveness and database reachability
func HandleCheckHealth(store *database.GORMStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if err := store.HealthCheck(); err != nil {
			dbStatus = "unavailable"
		}

		status := fiber.StatusOK
		if dbStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
		})
	}
}
