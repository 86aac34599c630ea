package service

import (
	"reflect"
	"testing"

	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

func groupingState() *entity.ScheduleState {
	return &entity.ScheduleState{
		Slots: entity.DefaultSlots(),
		Courses: []entity.Course{
			{ID: "c-unsch", Title: "Zeta Seminar"},
			{ID: "c-b", Title: "Bases of Data"},
			{ID: "c-a", Title: "Algorithms"},
		},
		Assignments: []entity.Assignment{
			{ID: "a3", CourseID: "c-a", Day: entity.DayWed, SlotID: "09-11"},
			{ID: "a1", CourseID: "c-a", Day: entity.DayMon, SlotID: "14-16"},
			{ID: "a2", CourseID: "c-a", Day: entity.DayMon, SlotID: "09-11"},
			{ID: "a4", CourseID: "c-b", Day: entity.DayFri, SlotID: "16-18"},
			{ID: "a5", CourseID: "c-a", Day: entity.DayTue, SlotID: "gone-slot"},
		},
	}
}

func TestGroupByCourse_Ordering(t *testing.T) {
	col := NewCollator("en")
	groups := GroupByCourse(groupingState(), col)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	// Scheduled courses first, alphabetically; unscheduled appended.
	if groups[0].Course.ID != "c-a" || groups[1].Course.ID != "c-b" || groups[2].Course.ID != "c-unsch" {
		t.Fatalf("group order wrong: %s %s %s",
			groups[0].Course.ID, groups[1].Course.ID, groups[2].Course.ID)
	}
	if len(groups[2].Sessions) != 0 {
		t.Fatalf("unscheduled course must carry zero sessions")
	}

	// Within a group: day order, then slot registry order, unknown slots last.
	var ids []string
	for _, session := range groups[0].Sessions {
		ids = append(ids, session.ID)
	}
	want := []string{"a2", "a1", "a5", "a3"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("session order: got %v want %v", ids, want)
	}
}

func TestGroupByCourse_Deterministic(t *testing.T) {
	col := NewCollator("en")
	first := GroupByCourse(groupingState(), col)
	second := GroupByCourse(groupingState(), col)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grouping must be deterministic")
	}
}

func TestGroupByCourse_DoesNotMutateState(t *testing.T) {
	state := groupingState()
	before := append([]entity.Assignment{}, state.Assignments...)
	GroupByCourse(state, NewCollator("en"))
	if !reflect.DeepEqual(before, state.Assignments) {
		t.Fatalf("grouping must not reorder the state's assignment list")
	}
}

func TestNewCollator_UnknownLocaleFallsBack(t *testing.T) {
	col := NewCollator("zz-not-a-locale")
	if col == nil {
		t.Fatalf("collator must always be constructed")
	}
	if col.CompareString("alpha", "beta") >= 0 {
		t.Fatalf("fallback collation should still order alphabetically")
	}
}
