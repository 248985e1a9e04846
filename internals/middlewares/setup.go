package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hostel_admin_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
