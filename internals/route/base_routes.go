package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"halaqat_backend/internals/configs"
	database "halaqat_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, st *database.Storage, cfg configs.AppConfig) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := st.Ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"backend":        string(st.Backend()),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    cfg.Environment,
		})
	})
}
