package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizRoute "quizengine_backend/internals/features/quizzes/route"
	systemController "quizengine_backend/internals/features/system/controller"
	userRoute "quizengine_backend/internals/features/users/route"

	"quizengine_backend/internals/constants"
	authMiddleware "quizengine_backend/internals/middlewares/auth"
)

// SetupRoutes registers the whole HTTP surface: public registration, the
// basic-auth protected quiz API, and the admin-only actuator group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up PUBLIC routes...")
	api := app.Group("/api")
	userRoute.UserRoutes(api, db)

	// BasicAuth is mounted on the /api/quizzes prefix only, so the public
	// register endpoint above stays reachable without credentials.
	log.Println("[INFO] Setting up QUIZ routes...")
	authed := app.Group("/api/quizzes", authMiddleware.BasicAuth(db))
	quizRoute.QuizRoutes(authed, db)

	log.Println("[INFO] Setting up ACTUATOR routes...")
	actuatorCtrl := systemController.NewActuatorController(db)
	actuator := app.Group("/actuator",
		authMiddleware.BasicAuth(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.RoleAdmin),
	)
	actuator.Get("/health", actuatorCtrl.Health)
	actuator.Get("/info", actuatorCtrl.Info)
	actuator.Get("/dbstats", actuatorCtrl.DBStats)
}
