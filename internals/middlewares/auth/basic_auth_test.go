package auth

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"quizengine_backend/internals/constants"
)

func basicHeader(creds string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

func TestParseBasicAuth(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		email    string
		password string
		ok       bool
	}{
		{"valid", basicHeader("alice@example.com:secret"), "alice@example.com", "secret", true},
		{"password with colon", basicHeader("alice@example.com:se:cret"), "alice@example.com", "se:cret", true},
		{"empty password", basicHeader("alice@example.com:"), "alice@example.com", "", true},
		{"missing header", "", "", "", false},
		{"wrong scheme", "Bearer abc", "", "", false},
		{"bad base64", "Basic !!!", "", "", false},
		{"no colon", basicHeader("alice@example.com"), "", "", false},
		{"empty user", basicHeader(":secret"), "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, password, ok := parseBasicAuth(tc.header)
			if ok != tc.ok || email != tc.email || password != tc.password {
				t.Fatalf("parseBasicAuth(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.header, email, password, ok, tc.email, tc.password, tc.ok)
			}
		})
	}
}

func TestOnlyRoles(t *testing.T) {
	newApp := func(role string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("user_role", role)
			}
			return c.Next()
		})
		app.Get("/t", OnlyRoles("", constants.RoleAdmin), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleUser, fiber.StatusForbidden},
		{"", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		resp, err := newApp(tc.role).Test(httptest.NewRequest("GET", "/t", nil))
		if err != nil {
			t.Fatalf("test request: %v", err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("role %q: status %d, want %d", tc.role, resp.StatusCode, tc.want)
		}
	}
}
