package apiv1

import (
	"childminder-backend/controllers"
	enforcementhandler "childminder-backend/lib/enforcement"
	apimodels "childminder-backend/models/api"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/gofiber/fiber/v2"
)

type caseApiController struct {
	controllers.BaseAPIController
}

func InitCaseApiRouters(app fiber.Router) {
	controller := caseApiController{}
	app.Route("cases", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Get(":id/timeline", controller.timeline)
		router.Post(":id/timeline", controller.addNote)
		router.Get(":id/notifications", controller.notifications)
		router.Get(":id/stages", controller.stages)
		router.Post(":id/close_warning", controller.closeWarning)
		router.Post(":id/representations", controller.representations)
	})
	app.Route("actions", func(router fiber.Router) {
		router.Post("suspension_warning/preview", controller.previewSuspensionWarning)
		router.Post("suspension_warning/issue", controller.issueSuspensionWarning)
		router.Post("cancellation/preview", controller.previewCancellation)
		router.Post("cancellation/issue", controller.issueCancellation)
		router.Post("review/preview", controller.previewReview)
		router.Post("review/issue", controller.issueReview)
		router.Post("decision/preview", controller.previewDecision)
		router.Post("decision/issue", controller.issueDecision)
	})
}

// @Summary Case list
// @Tags Enforcement cases
// @Description Paged enforcement case list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.CaseFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/list [post]
func (c *caseApiController) list(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.CaseFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := enforcementhandler.Instance.ListCases(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get case
// @Tags Enforcement cases
// @Description Get case
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id} [get]
func (c *caseApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.GetCase(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Case timeline
// @Tags Enforcement cases
// @Description Case timeline, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=[]enforcementapimodels.TimelineView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/timeline [get]
func (c *caseApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Add timeline note
// @Tags Enforcement cases
// @Description Append an operator note to the case timeline
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Param	body body	 enforcementapimodels.TimelineNote	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.TimelineView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/timeline [post]
func (c *caseApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload enforcementapimodels.TimelineNote
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.AddTimelineNote(id, payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Case notifications
// @Tags Enforcement cases
// @Description External agency notifications sent for the case
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=[]enforcementapimodels.NotificationView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/notifications [get]
func (c *caseApiController) notifications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.Notifications(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Case stages
// @Tags Enforcement cases
// @Description Recorded workflow stages of the case
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=[]enforcementapimodels.StageView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/stages [get]
func (c *caseApiController) stages(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.Stages(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Close warning
// @Tags Enforcement cases
// @Description Close a warning case once compliance is confirmed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Param	body body	 enforcementapimodels.WarningCloseInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/close_warning [post]
func (c *caseApiController) closeWarning(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload enforcementapimodels.WarningCloseInput
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.CloseWarning(id, payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Record representations
// @Tags Enforcement cases
// @Description Log written representations received against a notice of intention to cancel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Param	body body	 enforcementapimodels.RepresentationsInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/representations [post]
func (c *caseApiController) representations(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload enforcementapimodels.RepresentationsInput
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.RecordRepresentations(id, payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview suspension or warning
// @Tags Enforcement actions
// @Description Render the notice without saving
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.SuspensionWarningInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.NoticePreview}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/suspension_warning/preview [post]
func (c *caseApiController) previewSuspensionWarning(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.SuspensionWarningInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.PreviewSuspensionOrWarning(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Issue suspension or warning
// @Tags Enforcement actions
// @Description Open a suspension or warning case for the provider
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.SuspensionWarningInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/suspension_warning/issue [post]
func (c *caseApiController) issueSuspensionWarning(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.SuspensionWarningInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.IssueSuspensionOrWarning(payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview cancellation
// @Tags Enforcement actions
// @Description Render the notice of intention to cancel without saving
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.CancellationInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.NoticePreview}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/cancellation/preview [post]
func (c *caseApiController) previewCancellation(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.CancellationInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.PreviewCancellation(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Issue cancellation
// @Tags Enforcement actions
// @Description Issue a notice of intention to cancel registration
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.CancellationInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/cancellation/issue [post]
func (c *caseApiController) issueCancellation(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.CancellationInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.IssueCancellationNotice(payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview suspension review
// @Tags Enforcement actions
// @Description Render the review outcome notice without saving
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.ReviewInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.NoticePreview}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/review/preview [post]
func (c *caseApiController) previewReview(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.ReviewInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.PreviewReview(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Review suspension
// @Tags Enforcement actions
// @Description Lift or extend an active suspension
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.ReviewInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/review/issue [post]
func (c *caseApiController) issueReview(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.ReviewInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.ReviewSuspension(payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Preview decision
// @Tags Enforcement actions
// @Description Render the notice of decision without saving
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.DecisionInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.NoticePreview}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/decision/preview [post]
func (c *caseApiController) previewDecision(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.DecisionInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.PreviewDecision(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Record decision
// @Tags Enforcement actions
// @Description Record the decision after the representations period
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 enforcementapimodels.DecisionInput	true	"request body"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.CaseView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/decision/issue [post]
func (c *caseApiController) issueDecision(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.DecisionInput
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := enforcementhandler.Instance.RecordDecision(payload, c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
