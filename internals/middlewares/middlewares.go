package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"learnify_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain: recovery first, then
// CORS, request logging, and the global rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
