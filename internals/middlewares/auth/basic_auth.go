package auth

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userService "quizengine_backend/internals/features/users/service"
	helper "quizengine_backend/internals/helpers"
)

const basicPrefix = "Basic "

// BasicAuth validates the Authorization header against the stored bcrypt hash
// on every request. No session is kept between requests; each request
// re-resolves the user. On success the user's id, email and role land in
// c.Locals for the handlers downstream.
func BasicAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, password, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "Missing or malformed credentials")
		}

		user, err := userService.FindByEmail(c.UserContext(), db, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "Unknown user")
			}
			log.Printf("[ERROR] basic auth lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		if err := userService.CheckPassword(user.Password, password); err != nil {
			return unauthorized(c, "Invalid credentials")
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)
		c.Locals("user_role", user.Role)
		return c.Next()
	}
}

func parseBasicAuth(header string) (email, password string, ok bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(basicPrefix):])
	if err != nil {
		return "", "", false
	}
	creds := strings.SplitN(string(raw), ":", 2)
	if len(creds) != 2 || creds[0] == "" {
		return "", "", false
	}
	return creds[0], creds[1], true
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="quizengine"`)
	return helper.JsonError(c, fiber.StatusUnauthorized, message)
}
