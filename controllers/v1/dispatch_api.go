package apiv1

import (
	"childminder-backend/controllers"
	dispatchhandler "childminder-backend/lib/dispatch"
	"childminder-backend/middleware"
	apimodels "childminder-backend/models/api"
	dispatchapimodels "childminder-backend/models/api/dispatch"
	"github.com/gofiber/fiber/v2"
)

type dispatchApiController struct {
	controllers.BaseAPIController
}

func InitDispatchApiRouters(app fiber.Router) {
	controller := dispatchApiController{}
	app.Route("dispatch", func(router fiber.Router) {
		router.Post("open/:case_id", controller.open)
		router.Get(":id", controller.get)
		router.Put(":id/recipient/:recipient_id/email", controller.updateEmail)
		router.Post(":id/recipient", controller.addCustom)
		router.Post(":id/recipient/:recipient_id/send", controller.send)
		router.Post(":id/send_all", controller.sendAll)
		router.Post(":id/close", controller.close)
	})
}

// @Summary Open agency notifications
// @Tags Agency notifications
// @Description Open a notification session for the case, one recipient per external agency
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   case_id        		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/open/{case_id} [post]
func (c *dispatchApiController) open(ctx *fiber.Ctx) error {
	caseID, err := c.GetIDByKey(ctx, "case_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.Open(middleware.GetUserID(ctx), caseID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get agency notifications
// @Tags Agency notifications
// @Description Current state of the notification session
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id} [get]
func (c *dispatchApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.Get(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change recipient email
// @Tags Agency notifications
// @Description Change the address of a recipient not yet notified
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Param   recipient_id   		path    string  				    	true         "recipient ID"
// @Param	body body	 dispatchapimodels.EmailUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id}/recipient/{recipient_id}/email [put]
func (c *dispatchApiController) updateEmail(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recipientID, err := c.GetIDByKey(ctx, "recipient_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dispatchapimodels.EmailUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.UpdateEmail(middleware.GetUserID(ctx), id, recipientID, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Add recipient
// @Tags Agency notifications
// @Description Add a custom recipient to the session
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Param	body body	 dispatchapimodels.CustomRecipient	true	"request body"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id}/recipient [post]
func (c *dispatchApiController) addCustom(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dispatchapimodels.CustomRecipient
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.AddCustom(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Notify recipient
// @Tags Agency notifications
// @Description Send the notification to one recipient
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Param   recipient_id   		path    string  				    	true         "recipient ID"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id}/recipient/{recipient_id}/send [post]
func (c *dispatchApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recipientID, err := c.GetIDByKey(ctx, "recipient_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.Send(ctx.UserContext(), middleware.GetUserID(ctx), id, recipientID, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Notify all recipients
// @Tags Agency notifications
// @Description Send to every recipient not yet notified, progress is pushed over the websocket
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.SessionView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id}/send_all [post]
func (c *dispatchApiController) sendAll(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.SendAll(ctx.UserContext(), middleware.GetUserID(ctx), id, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Close agency notifications
// @Tags Agency notifications
// @Description Close the session and record the outcome on the case timeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "session ID"
// @Param	body body	 dispatchapimodels.CloseRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=dispatchapimodels.CloseResult}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dispatch/{id}/close [post]
func (c *dispatchApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dispatchapimodels.CloseRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := dispatchhandler.Instance.Close(middleware.GetUserID(ctx), id, payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
