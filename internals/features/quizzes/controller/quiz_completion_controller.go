package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizengine_backend/internals/features/quizzes/dto"
	"quizengine_backend/internals/features/quizzes/model"
	helper "quizengine_backend/internals/helpers"
)

type QuizCompletionController struct {
	DB *gorm.DB
}

func NewQuizCompletionController(db *gorm.DB) *QuizCompletionController {
	return &QuizCompletionController{DB: db}
}

// =============================
// 🏁 List own completions (paged)
// =============================
// Most recent first; row id breaks ties when two completions share a
// timestamp, so the order stays stable across requests.
func (ctrl *QuizCompletionController) ListCompleted(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	page := helper.ResolvePage(c)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizCompletionModel{}).
		Where("quiz_completion_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list completions")
	}

	var completions []model.QuizCompletionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("quiz_completion_user_id = ?", userID).
		Order("quiz_completion_completed_at DESC, quiz_completion_id DESC").
		Limit(helper.PageSize).
		Offset(helper.Offset(page)).
		Find(&completions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list completions")
	}

	result := make([]dto.CompletionResponse, 0, len(completions))
	for _, completion := range completions {
		result = append(result, dto.ToCompletionResponse(completion))
	}
	return helper.JsonList(c, "OK", result, helper.BuildPagination(total, page, len(result)))
}
