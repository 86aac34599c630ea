package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/middleware"
	"github.com/sarigr/uni-schedule/modules/export/controller"
)

// ExportRouter handles export routes
type ExportRouter struct {
	ExportController *controller.ExportController
}

// NewExportRouter creates a new router
func NewExportRouter(exportController *controller.ExportController) *ExportRouter {
	return &ExportRouter{
		ExportController: exportController,
	}
}

// Setup registers export routes. The artifacts live outside /api/v1 since
// they are documents, not JSON resources.
func (r *ExportRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	exportRoutes := e.Group("/export")
	exportRoutes.GET("/html", r.ExportController.ViewHTML)
	exportRoutes.GET("/download", r.ExportController.DownloadHTML)
	exportRoutes.GET("/xlsx", r.ExportController.DownloadXLSX)
}
