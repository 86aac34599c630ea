package schedule

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/middleware"
	"github.com/sarigr/uni-schedule/core/storage"
	"github.com/sarigr/uni-schedule/modules/schedule/controller"
	"github.com/sarigr/uni-schedule/modules/schedule/repository"
	"github.com/sarigr/uni-schedule/modules/schedule/router"
	"github.com/sarigr/uni-schedule/modules/schedule/service"
)

// Init initializes the schedule module, loads (and if needed migrates) the
// persisted schedule, registers routes and returns the owning service so
// other modules can project the schedule.
func Init(e *echo.Echo, store storage.Store, locale string, mw *middleware.Middleware) service.ScheduleServiceInterface {
	repo := repository.NewScheduleRepository(store)
	svc := service.NewScheduleService(context.Background(), repo, locale)
	ctrl := controller.NewScheduleController(svc)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
