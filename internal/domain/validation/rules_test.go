package validation

import (
	"strings"
	"testing"
	"time"
)

func TestRequired(t *testing.T) {
	if v := Required("First Name", "   "); v.Valid {
		t.Fatal("expected rejection for blank value")
	} else if v.Reason != "First Name is required." {
		t.Fatalf("unexpected reason: %q", v.Reason)
	}

	if v := Required("First Name", " Ana "); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
}

func TestPersonName(t *testing.T) {
	for _, value := range []string{"Maria Clara", "José Rizal", "St. John-Baptiste"} {
		if v := PersonName("Name", value); !v.Valid {
			t.Fatalf("expected %q to be accepted, got %q", value, v.Reason)
		}
	}
	for _, value := range []string{"", "Juan2", "D@ny", "O'Brien"} {
		if v := PersonName("Name", value); v.Valid {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestNotOwnName(t *testing.T) {
	if v := NotOwnName("Contact Name", "juan  DELA cruz", "Juan Dela Cruz"); v.Valid {
		t.Fatal("expected rejection for owner's own name")
	}
	if v := NotOwnName("Contact Name", "Pedro Dela Cruz", "Juan Dela Cruz"); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"+63 917 123 4567", "0917-123-4567", "(0917) 1234567", "", "abc"}
	for _, input := range inputs {
		once := NormalizePhone(input)
		if twice := NormalizePhone(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestPhilippineMobile(t *testing.T) {
	for _, value := range []string{"09171234567", "0917-123-4567", "+639171234567", "+63 917 123 4567"} {
		if v := PhilippineMobile("Contact Number", value); !v.Valid {
			t.Fatalf("expected %q accepted, got %q", value, v.Reason)
		}
	}
	for _, value := range []string{"9171234567", "091712345678", "+638171234567", "12345", ""} {
		if v := PhilippineMobile("Contact Number", value); v.Valid {
			t.Fatalf("expected %q rejected", value)
		}
	}
}

func TestEmail(t *testing.T) {
	if v := Email("Email", "a@b.c"); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
	for _, value := range []string{"", "plain", "a@b", "a b@c.d", "@b.c"} {
		if v := Email("Email", value); v.Valid {
			t.Fatalf("expected %q rejected", value)
		}
	}
}

func TestOptionalURL(t *testing.T) {
	if v := OptionalURL("FB Link", ""); !v.Valid {
		t.Fatal("empty optional URL must be accepted")
	}
	if v := OptionalURL("FB Link", "https://facebook.com/someone"); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
	for _, value := range []string{"facebook.com/x", "ftp://a.b", "https://nodot"} {
		if v := OptionalURL("FB Link", value); v.Valid {
			t.Fatalf("expected %q rejected", value)
		}
	}
}

func TestDateOfBirth(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	if v := DateOfBirth("Date of Birth", "1990-03-20", now); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
	if v := DateOfBirth("Date of Birth", "not-a-date", now); v.Valid {
		t.Fatal("expected rejection for unparsable date")
	}
	if v := DateOfBirth("Date of Birth", "2030-01-01", now); v.Valid {
		t.Fatal("expected rejection for future date")
	}
	// Turns 15 the next day: still 14 years old.
	if v := DateOfBirth("Date of Birth", "2010-06-16", now); v.Valid {
		t.Fatal("expected rejection for age below minimum")
	}
	// 15th birthday exactly today.
	if v := DateOfBirth("Date of Birth", "2010-06-15", now); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
	if v := DateOfBirth("Date of Birth", "1920-01-01", now); v.Valid {
		t.Fatal("expected rejection for age above maximum")
	}
}

func TestAddress(t *testing.T) {
	if v := Address("Address", "Manila"); v.Valid {
		t.Fatal("expected rejection for one-word placeholder")
	}
	if v := Address("Address", "123 Rizal Ave, Manila"); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
}

func TestAnyOf(t *testing.T) {
	v := AnyOf("government IDs", map[string]string{"SSS": "", "TIN": " ", "PhilHealth": ""})
	if v.Valid {
		t.Fatal("expected rejection when entire group is empty")
	}
	if !strings.Contains(v.Reason, "PhilHealth, SSS, TIN") {
		t.Fatalf("reason must list the group: %q", v.Reason)
	}

	v = AnyOf("government IDs", map[string]string{"SSS": "", "TIN": "123-456"})
	if !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
}

func TestEnum(t *testing.T) {
	allowed := []string{"Spouse", "Child", "Parent", "Sibling", "Other"}
	if v := Enum("Type", "spouse", allowed, ""); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
	if v := Enum("Type", "Cousin", allowed, ""); v.Valid {
		t.Fatal("expected rejection for value outside enum")
	}
	if v := Enum("Type", "Other", allowed, ""); v.Valid {
		t.Fatal("expected rejection for Other without qualifier")
	}
	if v := Enum("Type", "Other", allowed, "Guardian"); !v.Valid {
		t.Fatalf("unexpected rejection: %q", v.Reason)
	}
}
