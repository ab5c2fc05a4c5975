package directory

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTenureBoundaries(t *testing.T) {
	now := date(2025, 6, 15)

	hire := date(2024, 6, 15)
	if got := Tenure(&hire, now); got != "1 year" {
		t.Fatalf("exactly 12 months: expected %q, got %q", "1 year", got)
	}

	hire = date(2024, 7, 15)
	if got := Tenure(&hire, now); got != "11 months" {
		t.Fatalf("11 months before: got %q", got)
	}

	hire = date(2025, 6, 15)
	if got := Tenure(&hire, now); got != "less than a month" {
		t.Fatalf("same day: got %q", got)
	}
}

func TestTenureAnniversaryDayNotReached(t *testing.T) {
	now := date(2025, 6, 14)
	hire := date(2024, 6, 15)
	// One day short of the anniversary is still 11 months.
	if got := Tenure(&hire, now); got != "11 months" {
		t.Fatalf("got %q", got)
	}
}

func TestTenureCompound(t *testing.T) {
	now := date(2025, 6, 15)

	hire := date(2023, 3, 15)
	if got := Tenure(&hire, now); got != "2 years, 3 months" {
		t.Fatalf("got %q", got)
	}

	hire = date(2024, 5, 15)
	if got := Tenure(&hire, now); got != "1 year, 1 month" {
		t.Fatalf("got %q", got)
	}
}

func TestTenurePlaceholder(t *testing.T) {
	now := date(2025, 6, 15)
	if got := Tenure(nil, now); got != TenurePlaceholder {
		t.Fatalf("nil hire date: got %q", got)
	}
	future := date(2026, 1, 1)
	if got := Tenure(&future, now); got != TenurePlaceholder {
		t.Fatalf("future hire date: got %q", got)
	}
	// Placeholder is a space, not an empty string; layout depends on it.
	if TenurePlaceholder == "" {
		t.Fatal("placeholder must not be empty")
	}
}

func TestTenureMonotonicity(t *testing.T) {
	now := date(2025, 6, 15)
	prev := -1
	// Walking the hire date backwards must never shrink the month count.
	for offset := 0; offset < 600; offset += 7 {
		hire := now.AddDate(0, 0, -offset)
		months := TenureMonths(hire, now)
		if months < prev {
			t.Fatalf("months decreased from %d to %d at offset %d", prev, months, offset)
		}
		if months > prev {
			prev = months
		}
	}
}

func TestTenureYears(t *testing.T) {
	now := date(2025, 6, 15)
	if got := TenureYears(nil, now); got != -1 {
		t.Fatalf("nil hire: got %d", got)
	}
	hire := date(2020, 6, 16)
	if got := TenureYears(&hire, now); got != 4 {
		t.Fatalf("day before fifth anniversary: got %d", got)
	}
	hire = date(2020, 6, 15)
	if got := TenureYears(&hire, now); got != 5 {
		t.Fatalf("fifth anniversary: got %d", got)
	}
}
