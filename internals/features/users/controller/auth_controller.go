package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizengine_backend/internals/features/users/dto"
	"quizengine_backend/internals/features/users/service"
	helper "quizengine_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// =============================
// 📝 Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if _, err := service.Register(c.UserContext(), ctrl.DB, body.Email, body.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("User %s is already registered.", body.Email))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonOK(c, "User registered successfully", nil)
}
