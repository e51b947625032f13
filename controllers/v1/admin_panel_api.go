package apiv1

import (
	"childminder-backend/controllers"
	adminpanelhandler "childminder-backend/lib/admin-panel"
	"childminder-backend/middleware"
	"childminder-backend/models"
	apimodels "childminder-backend/models/api"
	adminpanelapimodels "childminder-backend/models/api/admin-panel"
	"github.com/gofiber/fiber/v2"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app fiber.Router) {
	controller := adminApiController{}

	// any signed in staff member
	app.Get("supervisors/list", controller.supervisorList)

	user := fiber.New()
	app.Mount("/user", user)
	user.Use(middleware.RoleRequired(models.UserRoleAdmin))
	user.Get("get/:id", controller.userGet)
	user.Post("create", controller.userCreate)
	user.Put("update/:id", controller.userUpdate)
	user.Post("list", controller.userList)
}

// @Summary Create staff account
// @Tags Admin panel. Users
// @Description Create staff account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminpanelapimodels.User	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/create [post]
func (c *adminApiController) userCreate(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.User
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := adminpanelhandler.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update staff account
// @Tags Admin panel. Users
// @Description Update staff account, deactivate with is_active=false
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Param	body body	 adminpanelapimodels.UserUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/update/{id} [put]
func (c *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminpanelapimodels.UserUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = adminpanelhandler.Instance.UpdateUser(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get staff account
// @Tags Admin panel. Users
// @Description Get staff account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/get/{id} [get]
func (c *adminApiController) userGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminpanelhandler.Instance.GetUser(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Staff accounts
// @Tags Admin panel. Users
// @Description Staff accounts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/user/list [post]
func (c *adminApiController) userList(ctx *fiber.Ctx) error {
	resp, err := adminpanelhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Supervisors
// @Tags Admin panel. Users
// @Description Active accounts that can approve an enforcement action
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.SupervisorView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/supervisors/list [get]
func (c *adminApiController) supervisorList(ctx *fiber.Ctx) error {
	resp, err := adminpanelhandler.Instance.ListSupervisors()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
