package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"childminder-backend/models"
	apimodels "childminder-backend/models/api"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	verr := &models.ValidationError{}
	verr.Add("concern", "describe the concern")
	verr.Add("risk_categories", "select at least one category")

	for _, tc := range []struct {
		name   string
		err    error
		status int
	}{
		{`field errors`, verr, fiber.StatusBadRequest},
		{`wrapped validation`, errors.Wrap(models.ErrValidation, "wrong case type"), fiber.StatusBadRequest},
		{`not found`, models.NotFound("case"), fiber.StatusNotFound},
		{`conflict`, errors.Wrap(models.ErrConflict, "version"), fiber.StatusConflict},
		{`other`, errors.New("db down"), fiber.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := BaseAPIController{}
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error { return c.SendError(ctx, tc.err) })
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out apimodels.Response
			require.NoError(t, json.Unmarshal(body, &out))
			require.Equal(t, "fail", out.Status)
			require.NotEmpty(t, out.Message)
		})
	}

	t.Run(`field errors are returned as data`, func(t *testing.T) {
		c := BaseAPIController{}
		app := fiber.New()
		app.Get("/", func(ctx *fiber.Ctx) error { return c.SendError(ctx, verr) })
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		var out struct {
			Data []models.FieldError `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out.Data, 2)
		require.Equal(t, "concern", out.Data[0].Field)
	})
}
