package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"childminder-backend/config"
	authutils "childminder-backend/lib/utils/auth-utils"
	"childminder-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationRequired(t *testing.T) {
	if config.Conf == nil {
		config.Conf = &config.Configuration{}
	}
	config.Conf.Auth.JWTSecret = "test-secret"
	token, _, err := authutils.GetToken("test-secret", time.Hour, "u1", "Olivia Grant", models.UserRoleOfficer)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", AuthorizationRequired(), func(ctx *fiber.Ctx) error {
		require.Equal(t, "u1", GetUserID(ctx))
		return ctx.SendStatus(fiber.StatusOK)
	})

	for _, tc := range []struct {
		name   string
		target string
		header string
		status int
	}{
		{`bearer header`, "/", "Bearer " + token, fiber.StatusOK},
		{`lower case scheme`, "/", "bearer " + token, fiber.StatusOK},
		{`query token`, "/?token=" + token, "", fiber.StatusOK},
		{`raw token in header`, "/", token, fiber.StatusUnauthorized},
		{`no token`, "/", "", fiber.StatusUnauthorized},
		{`foreign signature`, "/", "Bearer " + token + "x", fiber.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
