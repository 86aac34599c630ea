package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/middleware"
	"github.com/sarigr/uni-schedule/modules/schedule/controller"
)

// ScheduleRouter handles schedule routes
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

// NewScheduleRouter creates a new router
func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers schedule routes
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	scheduleRoutes := v1.Group("/schedule")
	scheduleRoutes.GET("", r.ScheduleController.GetSchedule)
	scheduleRoutes.GET("/grouped", r.ScheduleController.GetGrouped)
	scheduleRoutes.GET("/theme", r.ScheduleController.GetTheme)
	scheduleRoutes.PUT("/theme", r.ScheduleController.SetTheme)

	slotRoutes := v1.Group("/slots")
	slotRoutes.POST("", r.ScheduleController.CreateSlot)
	slotRoutes.POST("/reset", r.ScheduleController.ResetSlots)
	slotRoutes.PUT("/:id", r.ScheduleController.UpdateSlot)
	slotRoutes.POST("/:id/move", r.ScheduleController.MoveSlot)
	slotRoutes.DELETE("/:id", r.ScheduleController.DeleteSlot)

	courseRoutes := v1.Group("/courses")
	courseRoutes.POST("", r.ScheduleController.CreateCourse)
	courseRoutes.PUT("/:id", r.ScheduleController.UpdateCourse)
	courseRoutes.DELETE("/:id", r.ScheduleController.DeleteCourse)

	assignmentRoutes := v1.Group("/assignments")
	assignmentRoutes.POST("", r.ScheduleController.PlaceAssignment)
	assignmentRoutes.PUT("/:id", r.ScheduleController.UpdateAssignment)
	assignmentRoutes.DELETE("/:id", r.ScheduleController.RemoveAssignment)
}
