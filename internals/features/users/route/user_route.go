package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "quizengine_backend/internals/features/users/controller"
	"quizengine_backend/internals/middlewares"
)

// UserRoutes mounts the public registration endpoint under /api.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
}
