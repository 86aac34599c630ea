package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sarigr/uni-schedule/core/errors"
	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// RenderXLSX builds a spreadsheet with the day×slot grid and the course
// catalog, one sheet each.
func (s *ExportService) RenderXLSX() ([]byte, *errors.AppError) {
	state, groups := s.schedule.SnapshotWithGroups()

	f := excelize.NewFile()
	defer f.Close()

	const gridSheet = "Schedule"
	f.SetSheetName("Sheet1", gridSheet)

	header := []any{"Time"}
	for _, day := range entity.Weekdays {
		header = append(header, dayNames[day])
	}
	if err := f.SetSheetRow(gridSheet, "A1", &header); err != nil {
		logger.Error("ExportService:RenderXLSX", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build spreadsheet", err)
	}

	for i, slot := range state.Slots {
		row := []any{slot.Label}
		for _, day := range entity.Weekdays {
			row = append(row, cellText(state, day, slot.ID))
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(gridSheet, cell, &row); err != nil {
			logger.Error("ExportService:RenderXLSX", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build spreadsheet", err)
		}
	}

	const courseSheet = "Courses"
	if _, err := f.NewSheet(courseSheet); err != nil {
		logger.Error("ExportService:RenderXLSX", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build spreadsheet", err)
	}
	courseHeader := []any{"Title", "Professors", "URL", "Sessions"}
	if err := f.SetSheetRow(courseSheet, "A1", &courseHeader); err != nil {
		logger.Error("ExportService:RenderXLSX", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build spreadsheet", err)
	}
	for i, group := range groups {
		row := []any{
			group.Course.Title,
			group.Course.DefaultProfessors,
			group.Course.CourseURL,
			len(group.Sessions),
		}
		if err := f.SetSheetRow(courseSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			logger.Error("ExportService:RenderXLSX", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to build spreadsheet", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("ExportService:RenderXLSX", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to serialize spreadsheet", err)
	}
	return buf.Bytes(), nil
}

// cellText flattens one grid cell into spreadsheet text.
func cellText(state *entity.ScheduleState, day entity.Day, slotID string) string {
	assignment := state.AssignmentAt(day, slotID)
	if assignment == nil {
		return ""
	}
	title := ""
	if course := state.CourseByID(assignment.CourseID); course != nil {
		title = course.Title
	}
	text := fmt.Sprintf("%s (%s)", title, badge(assignment.ClassType))
	if assignment.Room != "" {
		text += " " + assignment.Room
	}
	return text
}
