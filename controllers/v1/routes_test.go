package apiv1

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"childminder-backend/config"
	adminpanelauthhandler "childminder-backend/lib/admin-panel/auth"
	enforcementhandler "childminder-backend/lib/enforcement"
	authutils "childminder-backend/lib/utils/auth-utils"
	"childminder-backend/middleware"
	"childminder-backend/models"
	authapimodels "childminder-backend/models/api/auth"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeAuth struct{}

func (fakeAuth) Login(email, password string) (authapimodels.JWTResponse, error) {
	if password != "right" {
		return authapimodels.JWTResponse{}, adminpanelauthhandler.ErrBadCredentials
	}
	return authapimodels.JWTResponse{Token: "token"}, nil
}

type fakeEnforcement struct {
	enforcementhandler.Provider
}

func (fakeEnforcement) GetCase(id string) (enforcementapimodels.CaseView, error) {
	if id != "case-1" {
		return enforcementapimodels.CaseView{}, models.NotFound("case")
	}
	return enforcementapimodels.CaseView{ID: id}, nil
}

func newTestApp() *fiber.App {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = testSecret
	adminpanelauthhandler.Instance = fakeAuth{}
	enforcementhandler.Instance = fakeEnforcement{}

	app := fiber.New()
	InitAuthApiRouters(app)
	office := app.Group("", middleware.AuthorizationRequired())
	InitCaseApiRouters(office)
	return app
}

func TestRoutes(t *testing.T) {
	app := newTestApp()
	token, _, err := authutils.GetToken(testSecret, time.Hour, "user-1", "Jane Officer", models.UserRoleOfficer)
	require.NoError(t, err)

	t.Run(`login is public`, func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"jane@agency.gov.uk","password":"right"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
	t.Run(`wrong password`, func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"jane@agency.gov.uk","password":"wrong"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
	t.Run(`case needs a token`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/cases/case-1", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
	t.Run(`case with token`, func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cases/case-1", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
	t.Run(`token in query`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/cases/case-1?token="+token, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
	t.Run(`unknown case`, func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cases/other", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
