package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"childminder-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func withClaims(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": "u1", "name": "Olivia Grant", "role": string(role)}})
		return ctx.Next()
	}
}

func TestRoleRequired(t *testing.T) {
	for _, tc := range []struct {
		role   models.UserRole
		status int
	}{
		{models.UserRoleAdmin, fiber.StatusOK},
		{models.UserRoleSupervisor, fiber.StatusOK},
		{models.UserRoleOfficer, fiber.StatusForbidden},
		{"", fiber.StatusForbidden},
	} {
		app := fiber.New()
		app.Use(withClaims(tc.role))
		app.Get("/", RoleRequired(models.UserRoleAdmin, models.UserRoleSupervisor), func(ctx *fiber.Ctx) error {
			require.Equal(t, "u1", GetUserID(ctx))
			require.Equal(t, "Olivia Grant", GetUserName(ctx))
			return ctx.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, string(tc.role))
	}
}

func TestClaimsMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		require.Empty(t, GetUserID(ctx))
		require.Empty(t, GetUserRole(ctx))
		return ctx.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(4))
	app.Post("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"a":"long"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
