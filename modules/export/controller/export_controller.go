package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/controller"
	"github.com/sarigr/uni-schedule/modules/export/service"
)

// ExportController serves the schedule export artifacts
type ExportController struct {
	controller.BaseController
	ExportService service.ExportServiceInterface
}

// NewExportController creates a new controller
func NewExportController(svc service.ExportServiceInterface) *ExportController {
	return &ExportController{
		BaseController: controller.NewBaseController(),
		ExportService:  svc,
	}
}

// ViewHTML handles GET /export/html. It renders the document inline so the
// browser can open it in a new tab.
func (c *ExportController) ViewHTML(ctx echo.Context) error {
	theme := c.ExportService.ResolveTheme(ctx.Request().Context(), ctx.QueryParam("theme"))
	doc := c.ExportService.RenderHTML(ctx.Request().Context(), theme)
	return ctx.HTML(http.StatusOK, doc)
}

// DownloadHTML handles GET /export/download: the same document, offered as a file.
func (c *ExportController) DownloadHTML(ctx echo.Context) error {
	theme := c.ExportService.ResolveTheme(ctx.Request().Context(), ctx.QueryParam("theme"))
	doc := c.ExportService.RenderHTML(ctx.Request().Context(), theme)

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", c.ExportService.Filename("html")))
	return ctx.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, []byte(doc))
}

// DownloadXLSX handles GET /export/xlsx
func (c *ExportController) DownloadXLSX(ctx echo.Context) error {
	data, appErr := c.ExportService.RenderXLSX()
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", c.ExportService.Filename("xlsx")))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
