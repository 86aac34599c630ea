package entity

// ScheduleState is the owned in-memory representation of the whole schedule.
// It is constructed once at load and mutated only through the schedule service.
type ScheduleState struct {
	Slots       []SlotDefinition `json:"slots"`
	Courses     []Course         `json:"courses"`
	Assignments []Assignment     `json:"assignments"`
}

// CourseByID returns the course with the given id, or nil.
func (s *ScheduleState) CourseByID(id string) *Course {
	for i := range s.Courses {
		if s.Courses[i].ID == id {
			return &s.Courses[i]
		}
	}
	return nil
}

// SlotByID returns the slot with the given id, or nil.
func (s *ScheduleState) SlotByID(id string) *SlotDefinition {
	for i := range s.Slots {
		if s.Slots[i].ID == id {
			return &s.Slots[i]
		}
	}
	return nil
}

// SlotIndex returns the display position of a slot id, or -1 when the id is
// no longer in the registry.
func (s *ScheduleState) SlotIndex(id string) int {
	for i := range s.Slots {
		if s.Slots[i].ID == id {
			return i
		}
	}
	return -1
}

// AssignmentAt returns the assignment occupying the given cell, or nil. The
// registry guarantees at most one per (day, slot) pair.
func (s *ScheduleState) AssignmentAt(day Day, slotID string) *Assignment {
	for i := range s.Assignments {
		if s.Assignments[i].Day == day && s.Assignments[i].SlotID == slotID {
			return &s.Assignments[i]
		}
	}
	return nil
}

// AssignmentByID returns the assignment with the given id, or nil.
func (s *ScheduleState) AssignmentByID(id string) *Assignment {
	for i := range s.Assignments {
		if s.Assignments[i].ID == id {
			return &s.Assignments[i]
		}
	}
	return nil
}
