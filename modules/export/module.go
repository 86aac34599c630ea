package export

import (
	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/middleware"
	"github.com/sarigr/uni-schedule/modules/export/controller"
	"github.com/sarigr/uni-schedule/modules/export/router"
	"github.com/sarigr/uni-schedule/modules/export/service"
	scheduleService "github.com/sarigr/uni-schedule/modules/schedule/service"
)

// Init initializes the export module over the shared schedule service.
func Init(e *echo.Echo, scheduleSvc scheduleService.ScheduleServiceInterface, mw *middleware.Middleware) {
	svc := service.NewExportService(scheduleSvc)
	ctrl := controller.NewExportController(svc)
	rtr := router.NewExportRouter(ctrl)

	rtr.Setup(e, mw)
}
