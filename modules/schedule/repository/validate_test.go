package repository

import (
	"encoding/json"
	"testing"

	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return v
}

func TestParseSlotDefinition_RoundTrip(t *testing.T) {
	slot := entity.SlotDefinition{ID: "09-11", Start: "09:00", End: "11:00", Label: "morning"}
	data, err := json.Marshal(slot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, ok := ParseSlotDefinition(decode(t, string(data)))
	if !ok {
		t.Fatalf("expected slot to parse")
	}
	if parsed != slot {
		t.Fatalf("round trip mismatch: got %+v want %+v", parsed, slot)
	}
}

func TestParseSlotDefinition_LabelDefault(t *testing.T) {
	raw := decode(t, `{"id":"x","start":"09:00","end":"11:00"}`)
	parsed, ok := ParseSlotDefinition(raw)
	if !ok {
		t.Fatalf("expected slot to parse")
	}
	if parsed.Label != "09:00–11:00" {
		t.Fatalf("label default: got %q", parsed.Label)
	}

	raw = decode(t, `{"id":"x","start":"09:00","end":"11:00","label":7}`)
	parsed, ok = ParseSlotDefinition(raw)
	if !ok || parsed.Label != "09:00–11:00" {
		t.Fatalf("non-string label should fall back to default, got %+v ok=%v", parsed, ok)
	}
}

func TestParseSlotDefinition_RejectsMalformed(t *testing.T) {
	cases := []string{
		`{"id":"","start":"09:00","end":"11:00"}`,
		`{"id":"x","start":"9:00","end":"11:00"}`,
		`{"id":"x","start":"09:00","end":"24:00"}`,
		`{"id":"x","start":"09:60","end":"11:00"}`,
		`{"id":"x","end":"11:00"}`,
		`{"id":5,"start":"09:00","end":"11:00"}`,
		`"not an object"`,
		`42`,
	}
	for _, raw := range cases {
		if _, ok := ParseSlotDefinition(decode(t, raw)); ok {
			t.Errorf("expected %s to be rejected", raw)
		}
	}
}

func TestParseSlotDefinitions_DropsBadAndDuplicates(t *testing.T) {
	raw := decode(t, `[
		{"id":"a","start":"09:00","end":"11:00"},
		{"id":"a","start":"12:00","end":"13:00"},
		{"bad":true},
		{"id":"b","start":"14:00","end":"16:00"}
	]`)
	slots := ParseSlotDefinitions(raw)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].ID != "a" || slots[0].Start != "09:00" || slots[1].ID != "b" {
		t.Fatalf("unexpected slots: %+v", slots)
	}

	if got := ParseSlotDefinitions(decode(t, `{"not":"an array"}`)); len(got) != 0 {
		t.Fatalf("non-array should yield empty, got %+v", got)
	}
}

func TestParseDay(t *testing.T) {
	for _, valid := range []string{"Mon", "Tue", "Wed", "Thu", "Fri"} {
		if _, ok := ParseDay(valid); !ok {
			t.Errorf("expected %q to be a valid day", valid)
		}
	}
	for _, invalid := range []any{"Sat", "monday", "MON", "", 3, nil} {
		if _, ok := ParseDay(invalid); ok {
			t.Errorf("expected %v to be rejected", invalid)
		}
	}
}

func TestParseClassType_DefaultsToTheory(t *testing.T) {
	if got := ParseClassType("LAB"); got != entity.ClassTypeLab {
		t.Fatalf("LAB: got %q", got)
	}
	for _, raw := range []any{"THEORY", "lab", "weird", nil, 1} {
		if got := ParseClassType(raw); got != entity.ClassTypeTheory {
			t.Errorf("%v: expected theory default, got %q", raw, got)
		}
	}
}

func TestParseAssignments_DropsMalformed(t *testing.T) {
	raw := decode(t, `[
		{"id":"a1","courseId":"c1","day":"Mon","slotId":"09-11","classType":"LAB","room":"B2","createdAt":5},
		{"id":"a2","courseId":"c1","day":"Sat","slotId":"09-11"},
		{"id":"","courseId":"c1","day":"Mon","slotId":"09-11"},
		{"id":"a3","courseId":"","day":"Mon","slotId":"09-11"},
		{"id":"a4","courseId":"c1","day":"Tue","slotId":""}
	]`)
	assignments := ParseAssignments(raw)
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d: %+v", len(assignments), assignments)
	}
	a := assignments[0]
	if a.ID != "a1" || a.Day != entity.DayMon || a.ClassType != entity.ClassTypeLab || a.Room != "B2" || a.CreatedAt != 5 {
		t.Fatalf("unexpected assignment: %+v", a)
	}
}

func TestIsValidTime(t *testing.T) {
	for _, valid := range []string{"00:00", "09:59", "19:00", "23:59"} {
		if !IsValidTime(valid) {
			t.Errorf("expected %q valid", valid)
		}
	}
	for _, invalid := range []string{"24:00", "9:00", "09:5", "09:60", "0900", ""} {
		if IsValidTime(invalid) {
			t.Errorf("expected %q invalid", invalid)
		}
	}
}
