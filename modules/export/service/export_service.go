package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"

	"github.com/sarigr/uni-schedule/core/errors"
	scheduleService "github.com/sarigr/uni-schedule/modules/schedule/service"
)

// ExportService projects the current schedule into portable artifacts. It has
// no storage of its own; the schedule service is its single source of truth.
type ExportService struct {
	schedule scheduleService.ScheduleServiceInterface
}

// ExportServiceInterface defines the service contract
type ExportServiceInterface interface {
	RenderHTML(ctx context.Context, theme string) string
	RenderXLSX() ([]byte, *errors.AppError)
	ResolveTheme(ctx context.Context, requested string) string
	Filename(ext string) string
}

// NewExportService creates a new export service
func NewExportService(schedule scheduleService.ScheduleServiceInterface) ExportServiceInterface {
	return &ExportService{schedule: schedule}
}

// RenderHTML builds the self-contained export document for the given theme.
func (s *ExportService) RenderHTML(_ context.Context, theme string) string {
	state, groups := s.schedule.SnapshotWithGroups()
	return renderScheduleDocument(state, groups, theme)
}

// ResolveTheme uses the requested theme when valid, otherwise the persisted
// preference.
func (s *ExportService) ResolveTheme(ctx context.Context, requested string) string {
	if requested == "light" || requested == "dark" {
		return requested
	}
	return s.schedule.GetTheme(ctx).Theme
}

// Filename derives the download name for an export artifact.
func (s *ExportService) Filename(ext string) string {
	name := slug.Make(fmt.Sprintf("weekly schedule %s", time.Now().Format("2006-01-02")))
	return name + "." + ext
}
