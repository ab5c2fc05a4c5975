package directory

import (
	"fmt"
	"time"
)

// TenurePlaceholder keeps table layouts stable when no duration can be
// shown; it is a display convention, not a semantic zero.
const TenurePlaceholder = " "

// TenureMonths returns elapsed whole months between hire and now. The
// month delta is decremented when the anniversary day has not yet occurred
// in the current month, which differs from naive year subtraction near
// anniversary boundaries.
func TenureMonths(hire, now time.Time) int {
	months := (now.Year()-hire.Year())*12 + int(now.Month()) - int(hire.Month())
	if now.Day() < hire.Day() {
		months--
	}
	return months
}

// Tenure formats the service duration since hire as of now. A nil or
// future hire date yields the placeholder.
func Tenure(hire *time.Time, now time.Time) string {
	if hire == nil || hire.IsZero() {
		return TenurePlaceholder
	}

	months := TenureMonths(*hire, now)
	switch {
	case months < 0:
		return TenurePlaceholder
	case months == 0:
		return "less than a month"
	case months < 12:
		return pluralize(months, "month")
	}

	years := months / 12
	rem := months % 12
	if rem == 0 {
		return pluralize(years, "year")
	}
	return pluralize(years, "year") + ", " + pluralize(rem, "month")
}

// TenureYears returns completed years of service, or -1 when the hire date
// is absent or in the future. Used for bucket filtering.
func TenureYears(hire *time.Time, now time.Time) int {
	if hire == nil || hire.IsZero() {
		return -1
	}
	months := TenureMonths(*hire, now)
	if months < 0 {
		return -1
	}
	return months / 12
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
