package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "quizengine_backend/internals/features/quizzes/controller"
)

// QuizRoutes mounts the quiz endpoints on the authenticated /quizzes group.
// "/completed" must be registered before "/:id" so it is not swallowed by the
// param route.
func QuizRoutes(authed fiber.Router, db *gorm.DB) {
	quizCtrl := quizController.NewQuizController(db)
	completionCtrl := quizController.NewQuizCompletionController(db)

	authed.Get("/completed", completionCtrl.ListCompleted)

	authed.Post("/", quizCtrl.CreateQuiz)
	authed.Get("/", quizCtrl.ListQuizzes)
	authed.Get("/:id", quizCtrl.GetQuizByID)
	authed.Post("/:id/solve", quizCtrl.SolveQuiz)
	authed.Delete("/:id", quizCtrl.DeleteQuiz)
}
