package dto

import (
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// ===================== Request DTOs =====================

// SlotRequest creates or updates a slot definition
type SlotRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Label string `json:"label"`
}

// MoveSlotRequest swaps a slot with its neighbor
type MoveSlotRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// CourseRequest creates or updates a catalog course
type CourseRequest struct {
	Title             string `json:"title" validate:"required"`
	DefaultProfessors string `json:"default_professors"`
	CourseURL         string `json:"course_url"`
}

// PlaceAssignmentRequest places a course into a (day, slot) cell. Confirm
// acknowledges overwriting an occupied cell.
type PlaceAssignmentRequest struct {
	Day      string `json:"day" validate:"required"`
	SlotID   string `json:"slot_id" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
	Confirm  bool   `json:"confirm"`
}

// UpdateAssignmentRequest edits the per-cell override fields. Nil means
// leave untouched; identity fields (day, slot, course) are not editable here.
type UpdateAssignmentRequest struct {
	ClassType  *string `json:"class_type"`
	Room       *string `json:"room"`
	Professors *string `json:"professors"`
}

// ThemeRequest sets the export theme preference
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ===================== Response DTOs =====================

// SlotResponse for a slot definition; position is the registry display order
type SlotResponse struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// CourseResponse for a catalog course
type CourseResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	DefaultProfessors string `json:"default_professors,omitempty"`
	CourseURL         string `json:"course_url,omitempty"`
	CreatedAt         int64  `json:"created_at"`
}

// AssignmentResponse for a placed session
type AssignmentResponse struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	Day        string `json:"day"`
	SlotID     string `json:"slot_id"`
	ClassType  string `json:"class_type"`
	Room       string `json:"room,omitempty"`
	Professors string `json:"professors,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// ScheduleResponse is the full editor state
type ScheduleResponse struct {
	Slots       []SlotResponse       `json:"slots"`
	Courses     []CourseResponse     `json:"courses"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// CourseGroupResponse is one grouping-engine entry
type CourseGroupResponse struct {
	Course   CourseResponse       `json:"course"`
	Sessions []AssignmentResponse `json:"sessions"`
}

// ThemeResponse for the persisted theme preference
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ConflictDetails describes the occupant of a contested cell
type ConflictDetails struct {
	Day         string `json:"day"`
	SlotID      string `json:"slot_id"`
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title,omitempty"`
}

// CascadeDetails reports what a destructive operation would delete
type CascadeDetails struct {
	Assignments int `json:"assignments"`
}

// ===================== Mappers =====================

func ToSlotResponse(slot *entity.SlotDefinition, position int) *SlotResponse {
	return &SlotResponse{
		ID:       slot.ID,
		Start:    slot.Start,
		End:      slot.End,
		Label:    slot.Label,
		Position: position,
	}
}

func ToCourseResponse(course *entity.Course) *CourseResponse {
	return &CourseResponse{
		ID:                course.ID,
		Title:             course.Title,
		DefaultProfessors: course.DefaultProfessors,
		CourseURL:         course.CourseURL,
		CreatedAt:         course.CreatedAt,
	}
}

func ToAssignmentResponse(a *entity.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		CourseID:   a.CourseID,
		Day:        string(a.Day),
		SlotID:     a.SlotID,
		ClassType:  string(a.ClassType),
		Room:       a.Room,
		Professors: a.Professors,
		CreatedAt:  a.CreatedAt,
	}
}

func ToScheduleResponse(state *entity.ScheduleState) *ScheduleResponse {
	resp := &ScheduleResponse{
		Slots:       make([]SlotResponse, 0, len(state.Slots)),
		Courses:     make([]CourseResponse, 0, len(state.Courses)),
		Assignments: make([]AssignmentResponse, 0, len(state.Assignments)),
	}
	for i := range state.Slots {
		resp.Slots = append(resp.Slots, *ToSlotResponse(&state.Slots[i], i))
	}
	for i := range state.Courses {
		resp.Courses = append(resp.Courses, *ToCourseResponse(&state.Courses[i]))
	}
	for i := range state.Assignments {
		resp.Assignments = append(resp.Assignments, *ToAssignmentResponse(&state.Assignments[i]))
	}
	return resp
}
