package entity

// Day is a weekday key of the Monday–Friday grid.
type Day string

const (
	DayMon Day = "Mon"
	DayTue Day = "Tue"
	DayWed Day = "Wed"
	DayThu Day = "Thu"
	DayFri Day = "Fri"
)

// Weekdays lists the grid columns in display order.
var Weekdays = []Day{DayMon, DayTue, DayWed, DayThu, DayFri}

// Index returns the position of the day in the weekly grid, or -1.
func (d Day) Index() int {
	for i, wd := range Weekdays {
		if wd == d {
			return i
		}
	}
	return -1
}

// ClassType distinguishes theory sessions from lab sessions.
type ClassType string

const (
	ClassTypeTheory ClassType = "THEORY"
	ClassTypeLab    ClassType = "LAB"
)

// SlotDefinition is a user-defined time interval of the weekly grid. Display
// order is the slot's index in the registry sequence, not a stored field.
// JSON tags follow the persisted storage schema.
type SlotDefinition struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Course is a catalog entry, independent of where or whether it is scheduled.
type Course struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	DefaultProfessors string `json:"defaultProfessors"`
	CourseURL         string `json:"courseUrl"`
	CreatedAt         int64  `json:"createdAt"` // unix millis
}

// Assignment places one course into one (day, slot) cell. Room, class type
// and professors are per-cell overrides of the course defaults.
type Assignment struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"courseId"`
	Day        Day       `json:"day"`
	SlotID     string    `json:"slotId"`
	ClassType  ClassType `json:"classType"`
	Room       string    `json:"room"`
	Professors string    `json:"professors"`
	CreatedAt  int64     `json:"createdAt"` // unix millis
}

// DefaultSlots returns the bootstrap registry. The ids are stable so that
// historical data referencing them keeps resolving after a reset to defaults.
func DefaultSlots() []SlotDefinition {
	return []SlotDefinition{
		{ID: "09-11", Start: "09:00", End: "11:00", Label: "09:00–11:00"},
		{ID: "11-13", Start: "11:00", End: "13:00", Label: "11:00–13:00"},
		{ID: "14-16", Start: "14:00", End: "16:00", Label: "14:00–16:00"},
		{ID: "16-18", Start: "16:00", End: "18:00", Label: "16:00–18:00"},
	}
}
