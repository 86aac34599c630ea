package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/core/utils"
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// migrateLegacy scans the legacy storage generations, newest first, and
// projects the first reconstructable one into the normalized state. Legacy
// keys are read-only; the caller persists the normalized result once.
func (r *ScheduleRepository) migrateLegacy(ctx context.Context, state *entity.ScheduleState) bool {
	for _, key := range legacyKeys {
		decoded, found := r.read(ctx, key)
		if !found {
			continue
		}
		items, ok := decoded.([]any)
		if !ok {
			continue
		}

		courses, assignments, dropped := reconstruct(items, state.Slots)
		if len(courses) == 0 && len(assignments) == 0 {
			continue
		}

		if dropped > 0 {
			// Entries referencing a slot no longer in the registry are lost
			// with the slot itself.
			logger.Warn("Migration dropped entries with unknown slot ids",
				"key", key,
				"dropped", dropped,
			)
		}
		logger.Info("Reconstructed schedule from legacy key", "key", key)

		state.Courses = courses
		state.Assignments = assignments
		return true
	}
	return false
}

// reconstruct turns flattened legacy entries into the normalized course
// catalog and assignment list. The catalog is built first so that assignments
// inherit the finished course defaults.
func reconstruct(items []any, slots []entity.SlotDefinition) ([]entity.Course, []entity.Assignment, int) {
	courses := make([]entity.Course, 0)
	courseIndex := make(map[string]int) // lowercased trimmed title -> index

	// Pass 1: group entries by trimmed title; first non-empty professors/URL
	// seen for a title wins as the course default.
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rawTitle, _ := stringField(obj, "title")
		title := strings.TrimSpace(rawTitle)
		if title == "" {
			continue
		}

		key := strings.ToLower(title)
		idx, known := courseIndex[key]
		if !known {
			createdAt := intField(obj, "createdAt")
			if createdAt == 0 {
				createdAt = time.Now().UnixMilli()
			}
			idx = len(courses)
			courseIndex[key] = idx
			courses = append(courses, entity.Course{
				ID:        utils.GenerateUUID(),
				Title:     title,
				CreatedAt: createdAt,
			})
		}
		if professors, _ := stringField(obj, "professors"); professors != "" && courses[idx].DefaultProfessors == "" {
			courses[idx].DefaultProfessors = professors
		}
		if courseURL, _ := stringField(obj, "courseUrl"); courseURL != "" && courses[idx].CourseURL == "" {
			courses[idx].CourseURL = courseURL
		}
	}

	slotIDs := make(map[string]bool, len(slots))
	for _, s := range slots {
		slotIDs[s.ID] = true
	}

	type cell struct {
		day    entity.Day
		slotID string
	}
	assignments := make([]entity.Assignment, 0)
	occupied := make(map[cell]bool)
	dropped := 0

	// Pass 2: one assignment per entry with a valid title, day and a slot id
	// still present in the registry.
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rawTitle, _ := stringField(obj, "title")
		title := strings.TrimSpace(rawTitle)
		if title == "" {
			continue
		}
		day, ok := ParseDay(obj["day"])
		if !ok {
			continue
		}
		slotID := legacySlotID(obj)
		if slotID == "" {
			continue
		}
		if !slotIDs[slotID] {
			dropped++
			continue
		}
		if occupied[cell{day, slotID}] {
			continue
		}
		occupied[cell{day, slotID}] = true

		course := courses[courseIndex[strings.ToLower(title)]]

		// Legacy quirk, preserved for compatibility: a blank per-entry
		// professors field inherits the synthesized course default instead of
		// staying blank.
		professors, _ := stringField(obj, "professors")
		if professors == "" {
			professors = course.DefaultProfessors
		}

		id, _ := stringField(obj, "id")
		if id == "" {
			id = utils.GenerateUUID()
		}
		room, _ := stringField(obj, "room")
		createdAt := intField(obj, "createdAt")
		if createdAt == 0 {
			createdAt = time.Now().UnixMilli()
		}

		assignments = append(assignments, entity.Assignment{
			ID:         id,
			CourseID:   course.ID,
			Day:        day,
			SlotID:     slotID,
			ClassType:  ParseClassType(obj["classType"]),
			Room:       room,
			Professors: professors,
			CreatedAt:  createdAt,
		})
	}

	return courses, assignments, dropped
}

// legacySlotID reads the slot reference from either generation: the dynamic
// "slotId" field or the older fixed "slot" field.
func legacySlotID(obj map[string]any) string {
	if id, ok := stringField(obj, "slotId"); ok && id != "" {
		return id
	}
	if id, ok := stringField(obj, "slot"); ok && id != "" {
		return id
	}
	return ""
}
