package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"quizengine_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware. Origins come from the
// CORS_ORIGINS env (comma separated); default is permissive for local dev.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: configs.GetEnv("CORS_ORIGINS", "*"),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
