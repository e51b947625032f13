package apiv1

import (
	"fmt"
	"time"

	"childminder-backend/controllers"
	enforcementhandler "childminder-backend/lib/enforcement"
	xlsexport "childminder-backend/lib/export/xls"
	apimodels "childminder-backend/models/api"
	enforcementapimodels "childminder-backend/models/api/enforcement"
	"github.com/gofiber/fiber/v2"
)

const exportLimit = 5000

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app fiber.Router) {
	controller := exportApiController{}
	app.Put("export/cases", controller.casesExport)
}

// @Summary Case register export
// @Tags Export
// @Description Cases matching the filter as an Excel workbook
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	enforcementapimodels.CaseFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/cases [put]
func (c *exportApiController) casesExport(ctx *fiber.Ctx) error {
	var payload enforcementapimodels.CaseFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}

	payload.Page = 1
	payload.Limit = exportLimit
	list, _, err := enforcementhandler.Instance.ListCases(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	data, err := xlsexport.Instance.ExportCaseRegister(list)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("case-register-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
