package apiv1

import (
	"childminder-backend/controllers"
	draftshandler "childminder-backend/lib/enforcement/drafts"
	"childminder-backend/middleware"
	apimodels "childminder-backend/models/api"
	draftapimodels "childminder-backend/models/api/draft"
	"github.com/gofiber/fiber/v2"
)

type draftApiController struct {
	controllers.BaseAPIController
}

func InitDraftApiRouters(app fiber.Router) {
	controller := draftApiController{}
	app.Route("drafts", func(router fiber.Router) {
		router.Post("", controller.start)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Post(":id/next", controller.next)
		router.Post(":id/back", controller.back)
		router.Get(":id/preview", controller.preview)
		router.Post(":id/commit", controller.commit)
		router.Delete(":id", controller.discard)
	})
}

// @Summary Start workflow
// @Tags Workflow drafts
// @Description Start a step by step enforcement workflow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 draftapimodels.StartRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts [post]
func (c *draftApiController) start(ctx *fiber.Ctx) error {
	var payload draftapimodels.StartRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Start(middleware.GetUserID(ctx), draftshandler.Kind(payload.Kind), payload.TargetID())
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get workflow
// @Tags Workflow drafts
// @Description Get workflow draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id} [get]
func (c *draftApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Get(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update workflow
// @Tags Workflow drafts
// @Description Merge form fields into the workflow input
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Param	body body	 object	true	"workflow input fields"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id} [put]
func (c *draftApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := append([]byte(nil), ctx.Body()...)
	resp, err := draftshandler.Instance.Update(middleware.GetUserID(ctx), id, body)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Next step
// @Tags Workflow drafts
// @Description Move to the next step when the current one is complete
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id}/next [post]
func (c *draftApiController) next(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Next(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Previous step
// @Tags Workflow drafts
// @Description Move back one step, entered data is kept
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id}/back [post]
func (c *draftApiController) back(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Back(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview workflow notice
// @Tags Workflow drafts
// @Description Render the notice for the draft as it stands
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.NoticePreview}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id}/preview [get]
func (c *draftApiController) preview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Preview(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Commit workflow
// @Tags Workflow drafts
// @Description Issue the action described by the draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response{data=draftshandler.DraftView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id}/commit [post]
func (c *draftApiController) commit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := draftshandler.Instance.Commit(middleware.GetUserID(ctx), id, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Discard workflow
// @Tags Workflow drafts
// @Description Drop the draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "draft ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/drafts/{id} [delete]
func (c *draftApiController) discard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = draftshandler.Instance.Discard(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
