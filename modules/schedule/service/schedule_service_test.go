package service

import (
	"context"
	"testing"

	"github.com/sarigr/uni-schedule/core/errors"
	"github.com/sarigr/uni-schedule/core/storage"
	"github.com/sarigr/uni-schedule/modules/schedule/dto"
	"github.com/sarigr/uni-schedule/modules/schedule/entity"
	"github.com/sarigr/uni-schedule/modules/schedule/repository"
)

func newTestService(t *testing.T) ScheduleServiceInterface {
	t.Helper()
	repo := repository.NewScheduleRepository(storage.NewMemoryStore())
	return NewScheduleService(context.Background(), repo, "en")
}

func mustAddCourse(t *testing.T, svc ScheduleServiceInterface, title, professors string) *dto.CourseResponse {
	t.Helper()
	course, appErr := svc.AddCourse(context.Background(), &dto.CourseRequest{
		Title:             title,
		DefaultProfessors: professors,
	})
	if appErr != nil {
		t.Fatalf("AddCourse(%q): %v", title, appErr)
	}
	return course
}

func mustPlace(t *testing.T, svc ScheduleServiceInterface, day, slotID, courseID string) *dto.AssignmentResponse {
	t.Helper()
	a, appErr := svc.PlaceAssignment(context.Background(), &dto.PlaceAssignmentRequest{
		Day:      day,
		SlotID:   slotID,
		CourseID: courseID,
	})
	if appErr != nil {
		t.Fatalf("PlaceAssignment(%s/%s): %v", day, slotID, appErr)
	}
	return a
}

func TestFreshLoadBootstrapsDefaults(t *testing.T) {
	svc := newTestService(t)
	state := svc.GetSchedule()

	if len(state.Slots) != 4 {
		t.Fatalf("expected 4 default slots, got %d", len(state.Slots))
	}
	if state.Slots[0].ID != "09-11" || state.Slots[3].ID != "16-18" {
		t.Fatalf("unexpected default ids: %+v", state.Slots)
	}
	if len(state.Courses) != 0 || len(state.Assignments) != 0 {
		t.Fatalf("expected empty catalog on fresh load")
	}
}

func TestAddCourse_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, appErr := svc.AddCourse(ctx, &dto.CourseRequest{Title: "   "}); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("blank title: expected ErrInvalidInput, got %v", appErr)
	}

	mustAddCourse(t, svc, "Algorithms", "Smith")
	if _, appErr := svc.AddCourse(ctx, &dto.CourseRequest{Title: " ALGORITHMS "}); appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("case-insensitive duplicate: expected ErrAlreadyExists, got %v", appErr)
	}
}

func TestUpdateCourse_DuplicateExcludesSelf(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a := mustAddCourse(t, svc, "Algorithms", "")
	mustAddCourse(t, svc, "Databases", "")

	// Renaming a course to its own title is fine.
	if _, appErr := svc.UpdateCourse(ctx, a.ID, &dto.CourseRequest{Title: "algorithms"}); appErr != nil {
		t.Fatalf("self rename: %v", appErr)
	}
	// Renaming onto another course is not.
	if _, appErr := svc.UpdateCourse(ctx, a.ID, &dto.CourseRequest{Title: "databases"}); appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", appErr)
	}
}

func TestPlaceAssignment_DefaultsAndInheritance(t *testing.T) {
	svc := newTestService(t)
	course := mustAddCourse(t, svc, "Algorithms", "Smith")

	a := mustPlace(t, svc, "Mon", "09-11", course.ID)
	if a.ClassType != string(entity.ClassTypeTheory) {
		t.Errorf("new assignment should default to theory, got %q", a.ClassType)
	}
	if a.Room != "" {
		t.Errorf("new assignment should start with empty room, got %q", a.Room)
	}
	if a.Professors != "Smith" {
		t.Errorf("professors should seed from course default, got %q", a.Professors)
	}
}

func TestPlaceAssignment_ConflictRequiresConfirm(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	courseA := mustAddCourse(t, svc, "Course A", "Smith")
	courseB := mustAddCourse(t, svc, "Course B", "Jones")

	placed := mustPlace(t, svc, "Mon", "09-11", courseA.ID)

	// Give the cell user-edited fields before the swap.
	lab := string(entity.ClassTypeLab)
	room := "A1"
	if _, appErr := svc.UpdateAssignmentFields(ctx, placed.ID, &dto.UpdateAssignmentRequest{
		ClassType: &lab,
		Room:      &room,
	}); appErr != nil {
		t.Fatalf("UpdateAssignmentFields: %v", appErr)
	}

	// Unconfirmed placement into the occupied cell is refused.
	_, appErr := svc.PlaceAssignment(ctx, &dto.PlaceAssignmentRequest{
		Day: "Mon", SlotID: "09-11", CourseID: courseB.ID,
	})
	if appErr == nil || appErr.Code != errors.ErrConfirmationRequired {
		t.Fatalf("expected ErrConfirmationRequired, got %v", appErr)
	}
	details, ok := appErr.Details.(dto.ConflictDetails)
	if !ok || details.CourseID != courseA.ID || details.CourseTitle != "Course A" {
		t.Fatalf("conflict details should name the occupant, got %+v", appErr.Details)
	}

	// Confirmed placement swaps only the course reference.
	swapped, appErr := svc.PlaceAssignment(ctx, &dto.PlaceAssignmentRequest{
		Day: "Mon", SlotID: "09-11", CourseID: courseB.ID, Confirm: true,
	})
	if appErr != nil {
		t.Fatalf("confirmed placement: %v", appErr)
	}
	if swapped.ID != placed.ID {
		t.Errorf("swap must retarget the existing assignment, got new id")
	}
	if swapped.CourseID != courseB.ID {
		t.Errorf("course reference not swapped: %+v", swapped)
	}
	if swapped.ClassType != lab || swapped.Room != "A1" || swapped.Professors != "Smith" {
		t.Errorf("per-cell fields must survive the swap, got %+v", swapped)
	}
}

func TestCellUniquenessInvariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	courseA := mustAddCourse(t, svc, "Course A", "")
	courseB := mustAddCourse(t, svc, "Course B", "")

	mustPlace(t, svc, "Mon", "09-11", courseA.ID)
	mustPlace(t, svc, "Mon", "11-13", courseA.ID)
	if _, appErr := svc.PlaceAssignment(ctx, &dto.PlaceAssignmentRequest{
		Day: "Mon", SlotID: "09-11", CourseID: courseB.ID, Confirm: true,
	}); appErr != nil {
		t.Fatalf("confirmed replace: %v", appErr)
	}

	seen := map[string]bool{}
	for _, a := range svc.GetSchedule().Assignments {
		key := a.Day + "/" + a.SlotID
		if seen[key] {
			t.Fatalf("two assignments share cell %s", key)
		}
		seen[key] = true
	}
}

func TestDeleteSlot_CascadeWithConfirmation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	course := mustAddCourse(t, svc, "Algorithms", "")

	mustPlace(t, svc, "Mon", "09-11", course.ID)
	mustPlace(t, svc, "Tue", "09-11", course.ID)
	keep := mustPlace(t, svc, "Wed", "11-13", course.ID)

	appErr := svc.DeleteSlot(ctx, "09-11", false)
	if appErr == nil || appErr.Code != errors.ErrConfirmationRequired {
		t.Fatalf("expected confirmation gate, got %v", appErr)
	}
	if details, ok := appErr.Details.(dto.CascadeDetails); !ok || details.Assignments != 2 {
		t.Fatalf("cascade details should count 2 dependents, got %+v", appErr.Details)
	}

	if appErr := svc.DeleteSlot(ctx, "09-11", true); appErr != nil {
		t.Fatalf("confirmed delete: %v", appErr)
	}

	state := svc.GetSchedule()
	if len(state.Slots) != 3 {
		t.Fatalf("slot not removed: %+v", state.Slots)
	}
	if len(state.Assignments) != 1 || state.Assignments[0].ID != keep.ID {
		t.Fatalf("cascade should remove exactly the two referencing assignments, got %+v", state.Assignments)
	}
}

func TestDeleteCourse_Cascades(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	course := mustAddCourse(t, svc, "Algorithms", "")
	other := mustAddCourse(t, svc, "Databases", "")

	mustPlace(t, svc, "Mon", "09-11", course.ID)
	mustPlace(t, svc, "Tue", "09-11", other.ID)

	if appErr := svc.DeleteCourse(ctx, course.ID, false); appErr == nil || appErr.Code != errors.ErrConfirmationRequired {
		t.Fatalf("expected confirmation gate, got %v", appErr)
	}
	if appErr := svc.DeleteCourse(ctx, course.ID, true); appErr != nil {
		t.Fatalf("confirmed delete: %v", appErr)
	}

	state := svc.GetSchedule()
	if len(state.Courses) != 1 || len(state.Assignments) != 1 {
		t.Fatalf("cascade mismatch: %d courses %d assignments", len(state.Courses), len(state.Assignments))
	}
	if state.Assignments[0].CourseID != other.ID {
		t.Fatalf("wrong assignment survived: %+v", state.Assignments[0])
	}
}

func TestMoveSlot_NoOpAtBoundaries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if appErr := svc.MoveSlot(ctx, "09-11", &dto.MoveSlotRequest{Direction: "up"}); appErr != nil {
		t.Fatalf("boundary move should be a no-op, got %v", appErr)
	}
	if got := svc.GetSchedule().Slots[0].ID; got != "09-11" {
		t.Fatalf("first slot moved unexpectedly: %s", got)
	}

	if appErr := svc.MoveSlot(ctx, "09-11", &dto.MoveSlotRequest{Direction: "down"}); appErr != nil {
		t.Fatalf("move down: %v", appErr)
	}
	slots := svc.GetSchedule().Slots
	if slots[0].ID != "11-13" || slots[1].ID != "09-11" {
		t.Fatalf("neighbor swap failed: %+v", slots)
	}
}

func TestResetSlots_DropsOrphanedAssignments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	course := mustAddCourse(t, svc, "Algorithms", "")

	custom, appErr := svc.AddSlot(ctx, &dto.SlotRequest{Start: "18:00", End: "20:00"})
	if appErr != nil {
		t.Fatalf("AddSlot: %v", appErr)
	}
	mustPlace(t, svc, "Mon", custom.ID, course.ID)
	kept := mustPlace(t, svc, "Mon", "09-11", course.ID)

	if appErr := svc.ResetSlots(ctx, false); appErr == nil || appErr.Code != errors.ErrConfirmationRequired {
		t.Fatalf("reset must be confirmed, got %v", appErr)
	}
	if appErr := svc.ResetSlots(ctx, true); appErr != nil {
		t.Fatalf("confirmed reset: %v", appErr)
	}

	state := svc.GetSchedule()
	if len(state.Slots) != 4 {
		t.Fatalf("expected default registry after reset, got %+v", state.Slots)
	}
	if len(state.Assignments) != 1 || state.Assignments[0].ID != kept.ID {
		t.Fatalf("assignments on default slots must survive the reset, got %+v", state.Assignments)
	}
}

func TestAddSlot_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, appErr := svc.AddSlot(ctx, &dto.SlotRequest{Start: "9:00", End: "11:00"}); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected time format rejection, got %v", appErr)
	}

	slot, appErr := svc.AddSlot(ctx, &dto.SlotRequest{Start: "18:00", End: "20:00"})
	if appErr != nil {
		t.Fatalf("AddSlot: %v", appErr)
	}
	if slot.Label != "18:00–20:00" {
		t.Fatalf("label default: got %q", slot.Label)
	}
	if slot.Position != 4 {
		t.Fatalf("new slot should append, got position %d", slot.Position)
	}
}

func TestSnapshotWithGroups_ConsistentAndIsolated(t *testing.T) {
	svc := newTestService(t)
	course := mustAddCourse(t, svc, "Algorithms", "")
	mustPlace(t, svc, "Mon", "09-11", course.ID)

	state, groups := svc.SnapshotWithGroups()

	// The grouping must be a projection of the snapshot it came with.
	for _, group := range groups {
		if state.CourseByID(group.Course.ID) == nil {
			t.Fatalf("group course %q missing from snapshot", group.Course.Title)
		}
		for _, session := range group.Sessions {
			if state.AssignmentByID(session.ID) == nil {
				t.Fatalf("group session %s missing from snapshot", session.ID)
			}
		}
	}

	// Mutations after the read must not show up in the returned copies.
	mustAddCourse(t, svc, "Databases", "")
	if len(state.Courses) != 1 || len(groups) != 1 {
		t.Fatalf("snapshot mutated by a later write: %d courses, %d groups",
			len(state.Courses), len(groups))
	}
}

func TestUpdateAssignmentFields_LeavesIdentityAlone(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	course := mustAddCourse(t, svc, "Algorithms", "Smith")
	placed := mustPlace(t, svc, "Mon", "09-11", course.ID)

	blank := ""
	updated, appErr := svc.UpdateAssignmentFields(ctx, placed.ID, &dto.UpdateAssignmentRequest{
		Professors: &blank,
	})
	if appErr != nil {
		t.Fatalf("UpdateAssignmentFields: %v", appErr)
	}
	if updated.Professors != "" {
		t.Errorf("explicit blank must clear the override, got %q", updated.Professors)
	}
	if updated.Day != "Mon" || updated.SlotID != "09-11" || updated.CourseID != course.ID {
		t.Errorf("identity fields must not change: %+v", updated)
	}

	bad := "SEMINAR"
	if _, appErr := svc.UpdateAssignmentFields(ctx, placed.ID, &dto.UpdateAssignmentRequest{ClassType: &bad}); appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("unknown class type must be rejected, got %v", appErr)
	}
}
