package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quizengine_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters: recovery
// first so a panic inside the logger still produces a 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
}
