package controller

import (
	"github.com/labstack/echo/v4"

	"github.com/sarigr/uni-schedule/core/controller"
	"github.com/sarigr/uni-schedule/core/errors"
	"github.com/sarigr/uni-schedule/modules/schedule/dto"
	"github.com/sarigr/uni-schedule/modules/schedule/service"
)

// ScheduleController handles schedule HTTP requests
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

// NewScheduleController creates a new controller
func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

func confirmed(ctx echo.Context) bool {
	return ctx.QueryParam("confirm") == "true"
}

// GetSchedule handles GET /schedule
func (c *ScheduleController) GetSchedule(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.ScheduleService.GetSchedule(), "Success")
}

// GetGrouped handles GET /schedule/grouped
func (c *ScheduleController) GetGrouped(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.ScheduleService.GetGrouped(), "Success")
}

// GetTheme handles GET /schedule/theme
func (c *ScheduleController) GetTheme(ctx echo.Context) error {
	return c.SuccessResponse(ctx, c.ScheduleService.GetTheme(ctx.Request().Context()), "Success")
}

// SetTheme handles PUT /schedule/theme
func (c *ScheduleController) SetTheme(ctx echo.Context) error {
	var req dto.ThemeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.SetTheme(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Theme updated successfully")
}

// CreateSlot handles POST /slots
func (c *ScheduleController) CreateSlot(ctx echo.Context) error {
	var req dto.SlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.AddSlot(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slot created successfully")
}

// UpdateSlot handles PUT /slots/:id
func (c *ScheduleController) UpdateSlot(ctx echo.Context) error {
	var req dto.SlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.UpdateSlot(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Slot updated successfully")
}

// MoveSlot handles POST /slots/:id/move
func (c *ScheduleController) MoveSlot(ctx echo.Context) error {
	var req dto.MoveSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.ScheduleService.MoveSlot(ctx.Request().Context(), ctx.Param("id"), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Slot moved successfully")
}

// DeleteSlot handles DELETE /slots/:id
func (c *ScheduleController) DeleteSlot(ctx echo.Context) error {
	if appErr := c.ScheduleService.DeleteSlot(ctx.Request().Context(), ctx.Param("id"), confirmed(ctx)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Slot deleted successfully")
}

// ResetSlots handles POST /slots/reset
func (c *ScheduleController) ResetSlots(ctx echo.Context) error {
	if appErr := c.ScheduleService.ResetSlots(ctx.Request().Context(), confirmed(ctx)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Slots reset to defaults")
}

// CreateCourse handles POST /courses
func (c *ScheduleController) CreateCourse(ctx echo.Context) error {
	var req dto.CourseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.AddCourse(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Course created successfully")
}

// UpdateCourse handles PUT /courses/:id
func (c *ScheduleController) UpdateCourse(ctx echo.Context) error {
	var req dto.CourseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.UpdateCourse(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Course updated successfully")
}

// DeleteCourse handles DELETE /courses/:id
func (c *ScheduleController) DeleteCourse(ctx echo.Context) error {
	if appErr := c.ScheduleService.DeleteCourse(ctx.Request().Context(), ctx.Param("id"), confirmed(ctx)); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Course deleted successfully")
}

// PlaceAssignment handles POST /assignments
func (c *ScheduleController) PlaceAssignment(ctx echo.Context) error {
	var req dto.PlaceAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.PlaceAssignment(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Assignment placed successfully")
}

// RemoveAssignment handles DELETE /assignments/:id
func (c *ScheduleController) RemoveAssignment(ctx echo.Context) error {
	if appErr := c.ScheduleService.RemoveAssignment(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Assignment removed successfully")
}

// UpdateAssignment handles PUT /assignments/:id
func (c *ScheduleController) UpdateAssignment(ctx echo.Context) error {
	var req dto.UpdateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ScheduleService.UpdateAssignmentFields(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Assignment updated successfully")
}
