package repository

import (
	"context"
	"encoding/json"

	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/core/storage"
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// Storage keys. The legacy keys are read-only input to the migrator and are
// never written or deleted.
const (
	KeySlots       = "schedule:slots"
	KeyCourses     = "schedule:courses"
	KeyAssignments = "schedule:assignments"
	KeyTheme       = "schedule:theme"

	KeyLegacyEntriesV2 = "schedule:entries:v2" // flat entries, dynamic slot ids
	KeyLegacyEntriesV1 = "schedule:entries"    // flat entries, fixed slot ids
)

// legacyKeys in descending recency order; the first key that parses as an
// array wins the migration scan.
var legacyKeys = []string{KeyLegacyEntriesV2, KeyLegacyEntriesV1}

// ScheduleRepository loads and persists the schedule collections through the
// key-value store.
type ScheduleRepository struct {
	store storage.Store
}

// ScheduleRepositoryInterface defines the repository contract
type ScheduleRepositoryInterface interface {
	Load(ctx context.Context) *entity.ScheduleState
	SaveSlots(ctx context.Context, slots []entity.SlotDefinition) error
	SaveCourses(ctx context.Context, courses []entity.Course) error
	SaveAssignments(ctx context.Context, assignments []entity.Assignment) error
	GetTheme(ctx context.Context) string
	SaveTheme(ctx context.Context, theme string) error
}

// NewScheduleRepository creates a new repository instance
func NewScheduleRepository(store storage.Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// Load reads the persisted schedule, running the legacy migration when the
// normalized keys are not all present. It never fails: a storage outage or
// malformed data degrades to the bootstrap defaults so the session stays
// usable.
func (r *ScheduleRepository) Load(ctx context.Context) *entity.ScheduleState {
	slots, slotsPresent := r.loadSlots(ctx)

	state := &entity.ScheduleState{
		Slots:       slots,
		Courses:     []entity.Course{},
		Assignments: []entity.Assignment{},
	}

	courses, coursesPresent := r.loadCollection(ctx, KeyCourses)
	assignments, assignmentsPresent := r.loadCollection(ctx, KeyAssignments)

	if slotsPresent && coursesPresent && assignmentsPresent {
		state.Courses = ParseCourses(courses)
		state.Assignments = dedupeCells(ParseAssignments(assignments))
		return state
	}

	// Normalized shape incomplete: scan the legacy generations once.
	migrated := r.migrateLegacy(ctx, state)

	if !slotsPresent {
		if err := r.SaveSlots(ctx, state.Slots); err != nil {
			logger.Warn("ScheduleRepository:Load: failed to persist default slots", "error", err)
		}
	}
	if migrated {
		if err := r.SaveCourses(ctx, state.Courses); err != nil {
			logger.Warn("ScheduleRepository:Load: failed to persist migrated courses", "error", err)
		}
		if err := r.SaveAssignments(ctx, state.Assignments); err != nil {
			logger.Warn("ScheduleRepository:Load: failed to persist migrated assignments", "error", err)
		}
		logger.Info("Legacy schedule migrated",
			"courses", len(state.Courses),
			"assignments", len(state.Assignments),
		)
	}

	return state
}

func (r *ScheduleRepository) loadSlots(ctx context.Context) ([]entity.SlotDefinition, bool) {
	raw, found := r.read(ctx, KeySlots)
	if !found {
		return entity.DefaultSlots(), false
	}
	slots := ParseSlotDefinitions(raw)
	if len(slots) == 0 {
		return entity.DefaultSlots(), false
	}
	return slots, true
}

// loadCollection reads and decodes one key; the bool reports whether the key
// held a JSON array, the only shape the normalized collections use.
func (r *ScheduleRepository) loadCollection(ctx context.Context, key string) (any, bool) {
	decoded, found := r.read(ctx, key)
	if !found {
		return nil, false
	}
	if _, ok := decoded.([]any); !ok {
		return nil, false
	}
	return decoded, true
}

func (r *ScheduleRepository) read(ctx context.Context, key string) (any, bool) {
	value, found, err := r.store.Get(ctx, key)
	if err != nil {
		logger.Error("ScheduleRepository:read", "key", key, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		logger.Warn("ScheduleRepository:read: malformed JSON ignored", "key", key)
		return nil, false
	}
	return decoded, true
}

func (r *ScheduleRepository) SaveSlots(ctx context.Context, slots []entity.SlotDefinition) error {
	return r.write(ctx, KeySlots, slots)
}

func (r *ScheduleRepository) SaveCourses(ctx context.Context, courses []entity.Course) error {
	return r.write(ctx, KeyCourses, courses)
}

func (r *ScheduleRepository) SaveAssignments(ctx context.Context, assignments []entity.Assignment) error {
	return r.write(ctx, KeyAssignments, assignments)
}

func (r *ScheduleRepository) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("ScheduleRepository:write", "key", key, "error", err)
		return err
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		logger.Error("ScheduleRepository:write", "key", key, "error", err)
		return err
	}
	return nil
}

// GetTheme returns the persisted theme preference, defaulting to light. The
// value is stored JSON-serialized like every other key.
func (r *ScheduleRepository) GetTheme(ctx context.Context) string {
	decoded, found := r.read(ctx, KeyTheme)
	if !found {
		return "light"
	}
	if theme, ok := decoded.(string); ok && theme == "dark" {
		return "dark"
	}
	return "light"
}

func (r *ScheduleRepository) SaveTheme(ctx context.Context, theme string) error {
	return r.write(ctx, KeyTheme, theme)
}

// dedupeCells keeps the first assignment seen per (day, slot) cell, so a
// corrupted persisted list cannot violate the one-per-cell invariant.
func dedupeCells(assignments []entity.Assignment) []entity.Assignment {
	type cell struct {
		day    entity.Day
		slotID string
	}
	seen := make(map[cell]bool, len(assignments))
	out := make([]entity.Assignment, 0, len(assignments))
	for _, a := range assignments {
		c := cell{a.Day, a.SlotID}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, a)
	}
	return out
}
