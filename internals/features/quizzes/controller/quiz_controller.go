package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizengine_backend/internals/features/quizzes/dto"
	"quizengine_backend/internals/features/quizzes/model"
	"quizengine_backend/internals/features/quizzes/service"
	helper "quizengine_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Quiz
// =============================
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ownerID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	quiz := body.ToModel(ownerID)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToQuizResponse(quiz))
}

// =============================
// 🔍 Get Quiz By ID
// =============================
func (ctrl *QuizController) GetQuizByID(c *fiber.Ctx) error {
	quiz, res := ctrl.findQuiz(c)
	if quiz == nil {
		return res
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToQuizResponse(*quiz))
}

// =============================
// 📄 List Quizzes (paged)
// =============================
func (ctrl *QuizController) ListQuizzes(c *fiber.Ctx) error {
	page := helper.ResolvePage(c)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list quizzes")
	}

	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("quiz_id ASC").
		Limit(helper.PageSize).
		Offset(helper.Offset(page)).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list quizzes")
	}

	result := make([]dto.QuizResponse, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, dto.ToQuizResponse(q))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPagination(total, page, len(result)))
}

// =============================
// ✅ Solve Quiz
// =============================
func (ctrl *QuizController) SolveQuiz(c *fiber.Ctx) error {
	quiz, res := ctrl.findQuiz(c)
	if quiz == nil {
		return res
	}

	var body dto.SolveRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if !service.AnswerIsCorrect(quiz.Answer, body.Answer) {
		return c.Status(fiber.StatusOK).JSON(dto.SolveResponse{
			Success:  false,
			Feedback: service.FeedbackWrong,
		})
	}

	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if err := service.RecordCompletion(c.UserContext(), ctrl.DB, quiz.ID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record completion")
	}

	return c.Status(fiber.StatusOK).JSON(dto.SolveResponse{
		Success:  true,
		Feedback: service.FeedbackCorrect,
	})
}

// =============================
// 🗑️ Delete Quiz (owner only)
// =============================
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	quiz, res := ctrl.findQuiz(c)
	if quiz == nil {
		return res
	}

	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if quiz.OwnerID != userID {
		// no body on forbidden, nothing was mutated
		return c.SendStatus(fiber.StatusForbidden)
	}

	if err := service.DeleteQuiz(c.UserContext(), ctrl.DB, quiz); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// findQuiz loads the quiz addressed by the :id param. On failure the error
// response has already been written; callers just return the second value.
func (ctrl *QuizController) findQuiz(c *fiber.Ctx) (*model.QuizModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&quiz, "quiz_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Quiz not found.")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get quiz")
	}
	return &quiz, nil
}
