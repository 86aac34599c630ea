package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"

	"github.com/sarigr/uni-schedule/core/errors"
	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/core/utils"
	"github.com/sarigr/uni-schedule/modules/schedule/dto"
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
	"github.com/sarigr/uni-schedule/modules/schedule/repository"
)

// ScheduleService owns the in-memory schedule for the process lifetime.
// Every mutation runs under one lock and re-persists the affected collections
// before returning; persistence failures are logged, never fatal, so the
// session keeps working on the in-memory state.
type ScheduleService struct {
	mu       sync.Mutex
	repo     repository.ScheduleRepositoryInterface
	state    *entity.ScheduleState
	collator *collate.Collator
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	GetSchedule() *dto.ScheduleResponse
	GetGrouped() []dto.CourseGroupResponse
	SnapshotWithGroups() (*entity.ScheduleState, []CourseGroup)

	GetTheme(ctx context.Context) *dto.ThemeResponse
	SetTheme(ctx context.Context, req *dto.ThemeRequest) (*dto.ThemeResponse, *errors.AppError)

	AddSlot(ctx context.Context, req *dto.SlotRequest) (*dto.SlotResponse, *errors.AppError)
	UpdateSlot(ctx context.Context, id string, req *dto.SlotRequest) (*dto.SlotResponse, *errors.AppError)
	MoveSlot(ctx context.Context, id string, req *dto.MoveSlotRequest) *errors.AppError
	DeleteSlot(ctx context.Context, id string, confirm bool) *errors.AppError
	ResetSlots(ctx context.Context, confirm bool) *errors.AppError

	AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError)
	UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError)
	DeleteCourse(ctx context.Context, id string, confirm bool) *errors.AppError

	PlaceAssignment(ctx context.Context, req *dto.PlaceAssignmentRequest) (*dto.AssignmentResponse, *errors.AppError)
	RemoveAssignment(ctx context.Context, id string) *errors.AppError
	UpdateAssignmentFields(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, *errors.AppError)
}

// NewScheduleService loads the persisted schedule (migrating legacy formats
// when present) and returns the owning service instance.
func NewScheduleService(ctx context.Context, repo repository.ScheduleRepositoryInterface, locale string) ScheduleServiceInterface {
	return &ScheduleService{
		repo:     repo,
		state:    repo.Load(ctx),
		collator: NewCollator(locale),
	}
}

// ===================== Read =====================

// GetSchedule returns the full editor state.
func (s *ScheduleService) GetSchedule() *dto.ScheduleResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.ToScheduleResponse(s.state)
}

// GetGrouped returns the grouping-engine projection.
func (s *ScheduleService) GetGrouped() []dto.CourseGroupResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := GroupByCourse(s.state, s.collator)
	resp := make([]dto.CourseGroupResponse, 0, len(groups))
	for i := range groups {
		sessions := make([]dto.AssignmentResponse, 0, len(groups[i].Sessions))
		for j := range groups[i].Sessions {
			sessions = append(sessions, *dto.ToAssignmentResponse(&groups[i].Sessions[j]))
		}
		resp = append(resp, dto.CourseGroupResponse{
			Course:   *dto.ToCourseResponse(&groups[i].Course),
			Sessions: sessions,
		})
	}
	return resp
}

// SnapshotWithGroups returns a copy of the current state together with its
// grouping, both taken under the same lock acquisition so the exporter always
// renders a projection of one state.
func (s *ScheduleService) SnapshotWithGroups() (*entity.ScheduleState, []CourseGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := &entity.ScheduleState{
		Slots:       append([]entity.SlotDefinition{}, s.state.Slots...),
		Courses:     append([]entity.Course{}, s.state.Courses...),
		Assignments: append([]entity.Assignment{}, s.state.Assignments...),
	}
	return snapshot, GroupByCourse(snapshot, s.collator)
}

// ===================== Theme =====================

func (s *ScheduleService) GetTheme(ctx context.Context) *dto.ThemeResponse {
	return &dto.ThemeResponse{Theme: s.repo.GetTheme(ctx)}
}

func (s *ScheduleService) SetTheme(ctx context.Context, req *dto.ThemeRequest) (*dto.ThemeResponse, *errors.AppError) {
	if req.Theme != "light" && req.Theme != "dark" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Theme must be light or dark", nil)
	}
	if err := s.repo.SaveTheme(ctx, req.Theme); err != nil {
		logger.Warn("ScheduleService:SetTheme: persist failed", "error", err)
	}
	return &dto.ThemeResponse{Theme: req.Theme}, nil
}

// ===================== Slots =====================

func (s *ScheduleService) AddSlot(ctx context.Context, req *dto.SlotRequest) (*dto.SlotResponse, *errors.AppError) {
	if !repository.IsValidTime(req.Start) || !repository.IsValidTime(req.End) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Times must use the HH:MM 24-hour format", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot := entity.SlotDefinition{
		ID:    utils.GenerateID(),
		Start: req.Start,
		End:   req.End,
		Label: req.Label,
	}
	if strings.TrimSpace(slot.Label) == "" {
		slot.Label = slot.Start + "–" + slot.End
	}
	s.state.Slots = append(s.state.Slots, slot)
	s.persistSlots(ctx)

	return dto.ToSlotResponse(&slot, len(s.state.Slots)-1), nil
}

func (s *ScheduleService) UpdateSlot(ctx context.Context, id string, req *dto.SlotRequest) (*dto.SlotResponse, *errors.AppError) {
	if !repository.IsValidTime(req.Start) || !repository.IsValidTime(req.End) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Times must use the HH:MM 24-hour format", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot := s.state.SlotByID(id)
	if slot == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
	}

	slot.Start = req.Start
	slot.End = req.End
	slot.Label = req.Label
	if strings.TrimSpace(slot.Label) == "" {
		slot.Label = slot.Start + "–" + slot.End
	}
	s.persistSlots(ctx)

	return dto.ToSlotResponse(slot, s.state.SlotIndex(id)), nil
}

// MoveSlot swaps the slot with its immediate neighbor; a move past either end
// of the registry is a no-op.
func (s *ScheduleService) MoveSlot(ctx context.Context, id string, req *dto.MoveSlotRequest) *errors.AppError {
	if req.Direction != "up" && req.Direction != "down" {
		return errors.NewAppError(errors.ErrInvalidInput, "Direction must be up or down", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.SlotIndex(id)
	if idx < 0 {
		return errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
	}

	target := idx - 1
	if req.Direction == "down" {
		target = idx + 1
	}
	if target < 0 || target >= len(s.state.Slots) {
		return nil
	}

	s.state.Slots[idx], s.state.Slots[target] = s.state.Slots[target], s.state.Slots[idx]
	s.persistSlots(ctx)
	return nil
}

// DeleteSlot removes a slot and cascades to every assignment referencing it.
// When dependents exist the call must carry the confirm flag.
func (s *ScheduleService) DeleteSlot(ctx context.Context, id string, confirm bool) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SlotByID(id) == nil {
		return errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
	}

	dependents := 0
	for _, a := range s.state.Assignments {
		if a.SlotID == id {
			dependents++
		}
	}
	if dependents > 0 && !confirm {
		return errors.NewAppError(errors.ErrConfirmationRequired,
			"Deleting this slot removes its assignments; repeat with confirm=true", nil).
			WithDetails(dto.CascadeDetails{Assignments: dependents})
	}

	slots := make([]entity.SlotDefinition, 0, len(s.state.Slots)-1)
	for _, slot := range s.state.Slots {
		if slot.ID != id {
			slots = append(slots, slot)
		}
	}
	s.state.Slots = slots
	s.dropAssignments(func(a entity.Assignment) bool { return a.SlotID == id })

	s.persistSlots(ctx)
	s.persistAssignments(ctx)
	return nil
}

// ResetSlots replaces the registry with the bootstrap defaults. Assignments
// referencing slot ids absent from the default set are deleted, which is why
// the whole operation requires confirmation.
func (s *ScheduleService) ResetSlots(ctx context.Context, confirm bool) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := entity.DefaultSlots()
	keep := make(map[string]bool, len(defaults))
	for _, slot := range defaults {
		keep[slot.ID] = true
	}
	orphaned := 0
	for _, a := range s.state.Assignments {
		if !keep[a.SlotID] {
			orphaned++
		}
	}

	if !confirm {
		return errors.NewAppError(errors.ErrConfirmationRequired,
			"Resetting slots to defaults is destructive; repeat with confirm=true", nil).
			WithDetails(dto.CascadeDetails{Assignments: orphaned})
	}

	s.state.Slots = defaults
	s.dropAssignments(func(a entity.Assignment) bool { return !keep[a.SlotID] })

	s.persistSlots(ctx)
	s.persistAssignments(ctx)
	return nil
}

// ===================== Courses =====================

func (s *ScheduleService) AddCourse(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Course title is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.titleTaken(title, "") {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A course with this title already exists", nil)
	}

	course := entity.Course{
		ID:                utils.GenerateUUID(),
		Title:             title,
		DefaultProfessors: strings.TrimSpace(req.DefaultProfessors),
		CourseURL:         strings.TrimSpace(req.CourseURL),
		CreatedAt:         time.Now().UnixMilli(),
	}
	s.state.Courses = append(s.state.Courses, course)
	s.persistCourses(ctx)

	return dto.ToCourseResponse(&course), nil
}

func (s *ScheduleService) UpdateCourse(ctx context.Context, id string, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Course title is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.state.CourseByID(id)
	if course == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Course not found", nil)
	}
	if s.titleTaken(title, id) {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A course with this title already exists", nil)
	}

	course.Title = title
	course.DefaultProfessors = strings.TrimSpace(req.DefaultProfessors)
	course.CourseURL = strings.TrimSpace(req.CourseURL)
	s.persistCourses(ctx)

	return dto.ToCourseResponse(course), nil
}

// DeleteCourse removes a course and cascades to its assignments; confirmation
// is required when assignments exist.
func (s *ScheduleService) DeleteCourse(ctx context.Context, id string, confirm bool) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CourseByID(id) == nil {
		return errors.NewAppError(errors.ErrNotFound, "Course not found", nil)
	}

	dependents := 0
	for _, a := range s.state.Assignments {
		if a.CourseID == id {
			dependents++
		}
	}
	if dependents > 0 && !confirm {
		return errors.NewAppError(errors.ErrConfirmationRequired,
			"Deleting this course removes its assignments; repeat with confirm=true", nil).
			WithDetails(dto.CascadeDetails{Assignments: dependents})
	}

	courses := make([]entity.Course, 0, len(s.state.Courses)-1)
	for _, course := range s.state.Courses {
		if course.ID != id {
			courses = append(courses, course)
		}
	}
	s.state.Courses = courses
	s.dropAssignments(func(a entity.Assignment) bool { return a.CourseID == id })

	s.persistCourses(ctx)
	s.persistAssignments(ctx)
	return nil
}

// titleTaken reports whether another course already uses the title,
// case-insensitively, excluding the course being edited.
func (s *ScheduleService) titleTaken(title, excludeID string) bool {
	for _, course := range s.state.Courses {
		if course.ID == excludeID {
			continue
		}
		if strings.EqualFold(course.Title, title) {
			return true
		}
	}
	return false
}

// ===================== Assignments =====================

// PlaceAssignment fills a cell with a course. An occupied cell is a conflict:
// the confirmed retry swaps only the course reference and keeps the cell's
// room, class type and professors, so retargeting a slot never resets what
// the user typed into it.
func (s *ScheduleService) PlaceAssignment(ctx context.Context, req *dto.PlaceAssignmentRequest) (*dto.AssignmentResponse, *errors.AppError) {
	day, ok := repository.ParseDay(req.Day)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Day must be one of Mon, Tue, Wed, Thu, Fri", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SlotByID(req.SlotID) == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
	}
	course := s.state.CourseByID(req.CourseID)
	if course == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Course not found", nil)
	}

	if existing := s.state.AssignmentAt(day, req.SlotID); existing != nil {
		if existing.CourseID == course.ID {
			return dto.ToAssignmentResponse(existing), nil
		}
		if !req.Confirm {
			details := dto.ConflictDetails{
				Day:      string(day),
				SlotID:   req.SlotID,
				CourseID: existing.CourseID,
			}
			if occupant := s.state.CourseByID(existing.CourseID); occupant != nil {
				details.CourseTitle = occupant.Title
			}
			return nil, errors.NewAppError(errors.ErrConfirmationRequired,
				"Cell is occupied; repeat with confirm=true to replace the course", nil).
				WithDetails(details)
		}
		existing.CourseID = course.ID
		s.persistAssignments(ctx)
		return dto.ToAssignmentResponse(existing), nil
	}

	assignment := entity.Assignment{
		ID:         utils.GenerateUUID(),
		CourseID:   course.ID,
		Day:        day,
		SlotID:     req.SlotID,
		ClassType:  entity.ClassTypeTheory,
		Room:       "",
		Professors: course.DefaultProfessors,
		CreatedAt:  time.Now().UnixMilli(),
	}
	s.state.Assignments = append(s.state.Assignments, assignment)
	s.persistAssignments(ctx)

	return dto.ToAssignmentResponse(&assignment), nil
}

func (s *ScheduleService) RemoveAssignment(ctx context.Context, id string) *errors.AppError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.AssignmentByID(id) == nil {
		return errors.NewAppError(errors.ErrNotFound, "Assignment not found", nil)
	}
	s.dropAssignments(func(a entity.Assignment) bool { return a.ID == id })
	s.persistAssignments(ctx)
	return nil
}

// UpdateAssignmentFields edits the per-cell override fields only; day, slot
// and course identity never change through this path.
func (s *ScheduleService) UpdateAssignmentFields(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, *errors.AppError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := s.state.AssignmentByID(id)
	if assignment == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Assignment not found", nil)
	}

	if req.ClassType != nil {
		classType := entity.ClassType(*req.ClassType)
		if classType != entity.ClassTypeTheory && classType != entity.ClassTypeLab {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Class type must be THEORY or LAB", nil)
		}
		assignment.ClassType = classType
	}
	if req.Room != nil {
		assignment.Room = strings.TrimSpace(*req.Room)
	}
	if req.Professors != nil {
		assignment.Professors = strings.TrimSpace(*req.Professors)
	}
	s.persistAssignments(ctx)

	return dto.ToAssignmentResponse(assignment), nil
}

// ===================== Persistence helpers =====================

// Writes are fire-and-forget: a storage failure is logged and the in-memory
// state stays authoritative for the rest of the session.

func (s *ScheduleService) persistSlots(ctx context.Context) {
	if err := s.repo.SaveSlots(ctx, s.state.Slots); err != nil {
		logger.Warn("ScheduleService: failed to persist slots", "error", err)
	}
}

func (s *ScheduleService) persistCourses(ctx context.Context) {
	if err := s.repo.SaveCourses(ctx, s.state.Courses); err != nil {
		logger.Warn("ScheduleService: failed to persist courses", "error", err)
	}
}

func (s *ScheduleService) persistAssignments(ctx context.Context) {
	if err := s.repo.SaveAssignments(ctx, s.state.Assignments); err != nil {
		logger.Warn("ScheduleService: failed to persist assignments", "error", err)
	}
}

func (s *ScheduleService) dropAssignments(match func(entity.Assignment) bool) {
	kept := make([]entity.Assignment, 0, len(s.state.Assignments))
	for _, a := range s.state.Assignments {
		if !match(a) {
			kept = append(kept, a)
		}
	}
	s.state.Assignments = kept
}
