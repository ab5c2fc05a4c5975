package schedule

import "testing"

func TestValidateEntry(t *testing.T) {
	good := Entry{Weekday: 1, StartMin: 8 * 60, EndMin: 9 * 60, Label: "Algebra"}
	if err := Validate(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, bad := range []Entry{
		{Weekday: 7, StartMin: 0, EndMin: 60, Label: "x"},
		{Weekday: 1, StartMin: 60, EndMin: 60, Label: "x"},
		{Weekday: 1, StartMin: 120, EndMin: 60, Label: "x"},
		{Weekday: 1, StartMin: 0, EndMin: 25 * 60, Label: "x"},
		{Weekday: 1, StartMin: 0, EndMin: 60},
	} {
		if err := Validate(bad); err == nil {
			t.Fatalf("expected rejection for %+v", bad)
		}
	}
}

func TestFindConflict(t *testing.T) {
	existing := []Entry{
		{ID: "1", Weekday: 1, StartMin: 8 * 60, EndMin: 9 * 60, Label: "Algebra"},
		{ID: "2", Weekday: 2, StartMin: 8 * 60, EndMin: 9 * 60, Label: "Geometry"},
	}

	overlapping := Entry{Weekday: 1, StartMin: 8*60 + 30, EndMin: 9*60 + 30, Label: "Duty"}
	if conflict := FindConflict(existing, overlapping, ""); conflict == nil || conflict.ID != "1" {
		t.Fatalf("expected conflict with entry 1, got %+v", conflict)
	}

	// Same time window on another weekday is fine.
	otherDay := Entry{Weekday: 3, StartMin: 8 * 60, EndMin: 9 * 60, Label: "Duty"}
	if conflict := FindConflict(existing, otherDay, ""); conflict != nil {
		t.Fatalf("unexpected conflict: %+v", conflict)
	}

	// Back-to-back slots do not conflict.
	adjacent := Entry{Weekday: 1, StartMin: 9 * 60, EndMin: 10 * 60, Label: "Duty"}
	if conflict := FindConflict(existing, adjacent, ""); conflict != nil {
		t.Fatalf("adjacent slots must not conflict: %+v", conflict)
	}

	// Editing an entry must not conflict with itself.
	edited := Entry{ID: "1", Weekday: 1, StartMin: 8 * 60, EndMin: 9*60 + 30, Label: "Algebra"}
	if conflict := FindConflict(existing, edited, "1"); conflict != nil {
		t.Fatalf("self-conflict on edit: %+v", conflict)
	}
}
