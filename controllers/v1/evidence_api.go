package apiv1

import (
	"bytes"
	"io"

	"childminder-backend/controllers"
	evidencehandler "childminder-backend/lib/enforcement/evidence"
	apimodels "childminder-backend/models/api"
	"github.com/gofiber/fiber/v2"
)

type evidenceApiController struct {
	controllers.BaseAPIController
}

func InitEvidenceApiRouters(app fiber.Router) {
	controller := evidenceApiController{}
	app.Route("cases/:id/evidence", func(router fiber.Router) {
		router.Post("", controller.upload)
		router.Get("list", controller.list)
		router.Get(":file_id", controller.download)
	})
}

// @Summary Upload evidence
// @Tags Case evidence
// @Description Attach a supporting document to the case
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Param   file				formData	file 	true 	"document"
// @Success 200 {object} apimodels.Response{data=enforcementapimodels.EvidenceView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/evidence [post]
func (c *evidenceApiController) upload(ctx *fiber.Ctx) error {
	caseID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("evidence file open failed")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("evidence file read failed")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := evidencehandler.Instance.Upload(ctx.UserContext(), caseID, fileBody, file.Filename,
		file.Header.Get(fiber.HeaderContentType), c.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Evidence list
// @Tags Case evidence
// @Description Documents attached to the case
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Success 200 {object} apimodels.Response{data=[]enforcementapimodels.EvidenceView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/evidence/list [get]
func (c *evidenceApiController) list(ctx *fiber.Ctx) error {
	caseID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := evidencehandler.Instance.List(caseID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download evidence
// @Tags Case evidence
// @Description Download an attached document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "case ID"
// @Param   file_id        		path    string  				    	true         "document ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/cases/{id}/evidence/{file_id} [get]
func (c *evidenceApiController) download(ctx *fiber.Ctx) error {
	caseID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, data, err := evidencehandler.Instance.Download(ctx.UserContext(), caseID, fileID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, view.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+view.FileName+`"`)
	return ctx.SendStream(bytes.NewReader(data), len(data))
}
