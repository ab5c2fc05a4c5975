package schedule

import (
	"errors"
	"fmt"
)

const minutesPerDay = 24 * 60

// Validate bounds-checks a schedule entry.
func Validate(entry Entry) error {
	if entry.Weekday < 0 || entry.Weekday > 6 {
		return fmt.Errorf("weekday %d out of range", entry.Weekday)
	}
	if entry.StartMin < 0 || entry.EndMin > minutesPerDay {
		return errors.New("times must fall within one day")
	}
	if entry.EndMin <= entry.StartMin {
		return errors.New("end must be after start")
	}
	if entry.Label == "" {
		return errors.New("label is required")
	}
	return nil
}

// FindConflict returns the first existing entry that overlaps candidate
// on the same weekday, or nil. excludeID skips the entry being edited.
// Slots touching end-to-start do not conflict.
func FindConflict(existing []Entry, candidate Entry, excludeID string) *Entry {
	for i := range existing {
		entry := existing[i]
		if excludeID != "" && entry.ID == excludeID {
			continue
		}
		if entry.Weekday != candidate.Weekday {
			continue
		}
		if candidate.StartMin < entry.EndMin && entry.StartMin < candidate.EndMin {
			return &entry
		}
	}
	return nil
}
