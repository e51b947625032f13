package apiv1

import (
	"childminder-backend/controllers"
	"childminder-backend/db"
	apimodels "childminder-backend/models/api"
	"github.com/gofiber/fiber/v2"
)

type healthApiController struct {
	controllers.BaseAPIController
}

func InitHealthApiRouters(app fiber.Router) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Health check
// @Tags Health
// @Description Service and database availability
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("database ping failed")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database unavailable"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
