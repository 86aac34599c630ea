package repository

import (
	"regexp"
	"strings"

	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// timePattern pins the accepted 24-hour clock format; "9:00" shorthand is not valid.
var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidTime reports whether s is a well-formed HH:MM clock value.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// The parse functions below coerce untrusted persisted JSON into typed
// records. Malformed values are dropped, never surfaced: a bad element must
// not abort loading the rest of the schedule.

// ParseSlotDefinition validates one decoded slot object.
func ParseSlotDefinition(raw any) (entity.SlotDefinition, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return entity.SlotDefinition{}, false
	}

	id, ok := stringField(obj, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return entity.SlotDefinition{}, false
	}
	start, ok := stringField(obj, "start")
	if !ok || !timePattern.MatchString(start) {
		return entity.SlotDefinition{}, false
	}
	end, ok := stringField(obj, "end")
	if !ok || !timePattern.MatchString(end) {
		return entity.SlotDefinition{}, false
	}

	label, ok := stringField(obj, "label")
	if !ok || label == "" {
		label = start + "–" + end
	}

	return entity.SlotDefinition{ID: id, Start: start, End: end, Label: label}, true
}

// ParseSlotDefinitions validates a decoded slot array, dropping malformed
// elements and duplicate ids. Non-array input yields an empty registry.
func ParseSlotDefinitions(raw any) []entity.SlotDefinition {
	items, ok := raw.([]any)
	if !ok {
		return []entity.SlotDefinition{}
	}

	slots := make([]entity.SlotDefinition, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		slot, ok := ParseSlotDefinition(item)
		if !ok || seen[slot.ID] {
			continue
		}
		seen[slot.ID] = true
		slots = append(slots, slot)
	}
	return slots
}

// ParseDay accepts exactly the five weekday keys.
func ParseDay(raw any) (entity.Day, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	day := entity.Day(s)
	if day.Index() < 0 {
		return "", false
	}
	return day, true
}

// ParseClassType coerces unknown or missing values to theory. That default is
// part of the storage contract, not an error.
func ParseClassType(raw any) entity.ClassType {
	if s, ok := raw.(string); ok && entity.ClassType(s) == entity.ClassTypeLab {
		return entity.ClassTypeLab
	}
	return entity.ClassTypeTheory
}

// ParseCourses validates a decoded course array from the normalized key.
func ParseCourses(raw any) []entity.Course {
	items, ok := raw.([]any)
	if !ok {
		return []entity.Course{}
	}

	courses := make([]entity.Course, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := stringField(obj, "id")
		if !ok || id == "" {
			continue
		}
		title, ok := stringField(obj, "title")
		if !ok || strings.TrimSpace(title) == "" {
			continue
		}
		professors, _ := stringField(obj, "defaultProfessors")
		courseURL, _ := stringField(obj, "courseUrl")
		courses = append(courses, entity.Course{
			ID:                id,
			Title:             strings.TrimSpace(title),
			DefaultProfessors: professors,
			CourseURL:         courseURL,
			CreatedAt:         intField(obj, "createdAt"),
		})
	}
	return courses
}

// ParseAssignments validates a decoded assignment array from the normalized key.
func ParseAssignments(raw any) []entity.Assignment {
	items, ok := raw.([]any)
	if !ok {
		return []entity.Assignment{}
	}

	assignments := make([]entity.Assignment, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := stringField(obj, "id")
		if !ok || id == "" {
			continue
		}
		courseID, ok := stringField(obj, "courseId")
		if !ok || courseID == "" {
			continue
		}
		day, ok := ParseDay(obj["day"])
		if !ok {
			continue
		}
		slotID, ok := stringField(obj, "slotId")
		if !ok || slotID == "" {
			continue
		}
		room, _ := stringField(obj, "room")
		professors, _ := stringField(obj, "professors")
		assignments = append(assignments, entity.Assignment{
			ID:         id,
			CourseID:   courseID,
			Day:        day,
			SlotID:     slotID,
			ClassType:  ParseClassType(obj["classType"]),
			Room:       room,
			Professors: professors,
			CreatedAt:  intField(obj, "createdAt"),
		})
	}
	return assignments
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

func intField(obj map[string]any, key string) int64 {
	// encoding/json decodes numbers into float64
	if f, ok := obj[key].(float64); ok {
		return int64(f)
	}
	return 0
}
