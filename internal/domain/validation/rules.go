package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Verdict is the outcome of a single field check. Rules never panic and
// never return errors; a failed check carries a human-readable reason.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func ok() Verdict {
	return Verdict{Valid: true}
}

func reject(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ .\-]+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

const (
	MinAddressLength = 10
	MinAgeYears      = 15
	MaxAgeYears      = 100
)

// Required rejects values that are empty after trimming.
func Required(field, value string) Verdict {
	if strings.TrimSpace(value) == "" {
		return reject(field + " is required.")
	}
	return ok()
}

// PersonName accepts letters (including extended Latin accents), spaces,
// periods and hyphens.
func PersonName(field, value string) Verdict {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !namePattern.MatchString(trimmed) {
		return reject(field + " must contain letters only (no numbers or special characters)")
	}
	return ok()
}

// NotOwnName rejects a contact name that case-insensitively equals the
// owning employee's own full name. Used for emergency and next-of-kin
// contacts, which must name a different person.
func NotOwnName(field, value, ownerName string) Verdict {
	candidate := strings.ToLower(strings.Join(strings.Fields(value), " "))
	owner := strings.ToLower(strings.Join(strings.Fields(ownerName), " "))
	if candidate != "" && candidate == owner {
		return reject(field + " cannot be the same as your own name")
	}
	return ok()
}

// NormalizePhone strips every non-digit character. Idempotent.
func NormalizePhone(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// PhilippineMobile accepts a local 11-digit number starting with 09, or the
// international +63 form which normalizes to 12 digits starting with 639.
func PhilippineMobile(field, value string) Verdict {
	digits := NormalizePhone(value)
	if len(digits) == 11 && strings.HasPrefix(digits, "09") {
		return ok()
	}
	if len(digits) == 12 && strings.HasPrefix(digits, "639") {
		return ok()
	}
	return reject(field + " must be a valid mobile number (09XXXXXXXXX or +639XXXXXXXXX)")
}

// Email checks the local@domain.tld shape only; deliverability is not our
// problem here.
func Email(field, value string) Verdict {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		return reject(field + " must be a valid email address")
	}
	return ok()
}

// OptionalURL accepts empty values. Non-empty values must carry an http(s)
// scheme and at least one dot after it.
func OptionalURL(field, value string) Verdict {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ok()
	}
	rest := ""
	switch {
	case strings.HasPrefix(trimmed, "https://"):
		rest = strings.TrimPrefix(trimmed, "https://")
	case strings.HasPrefix(trimmed, "http://"):
		rest = strings.TrimPrefix(trimmed, "http://")
	default:
		return reject(field + " must start with http:// or https://")
	}
	if !strings.Contains(rest, ".") {
		return reject(field + " must be a valid link")
	}
	return ok()
}

// DateOfBirth parses YYYY-MM-DD, rejects future dates and ages outside
// [MinAgeYears, MaxAgeYears] as of now.
func DateOfBirth(field, value string, now time.Time) Verdict {
	trimmed := strings.TrimSpace(value)
	dob, err := time.Parse("2006-01-02", trimmed)
	if err != nil {
		return reject(field + " must be a valid date in YYYY-MM-DD format")
	}
	if dob.After(now) {
		return reject(field + " cannot be in the future")
	}
	age := wholeYears(dob, now)
	if age < MinAgeYears {
		return reject(fmt.Sprintf("%s implies an age below %d years", field, MinAgeYears))
	}
	if age > MaxAgeYears {
		return reject(fmt.Sprintf("%s implies an age above %d years", field, MaxAgeYears))
	}
	return ok()
}

// Address rejects one-word placeholder input by requiring a minimum length.
func Address(field, value string) Verdict {
	if len(strings.TrimSpace(value)) < MinAddressLength {
		return reject(fmt.Sprintf("%s must be at least %d characters", field, MinAddressLength))
	}
	return ok()
}

// AnyOf requires at least one non-empty value in an identifier group, e.g.
// government ID numbers where any one of the set suffices.
func AnyOf(groupLabel string, values map[string]string) Verdict {
	fields := make([]string, 0, len(values))
	for field, value := range values {
		if strings.TrimSpace(value) != "" {
			return ok()
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return reject("at least one of " + strings.Join(fields, ", ") + " is required for " + groupLabel)
}

// Enum requires membership in allowed. When the sentinel "Other" is chosen,
// the free-text qualifier must be present.
func Enum(field, value string, allowed []string, otherQualifier string) Verdict {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if strings.EqualFold(trimmed, candidate) {
			if strings.EqualFold(trimmed, "Other") && strings.TrimSpace(otherQualifier) == "" {
				return reject(field + " requires a description when Other is selected")
			}
			return ok()
		}
	}
	return reject(field + " must be one of " + strings.Join(allowed, ", "))
}

func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := time.Date(to.Year(), from.Month(), from.Day(), 0, 0, 0, 0, to.Location())
	if to.Before(anniversary) {
		years--
	}
	return years
}
