package directory

import (
	"strings"
	"time"
)

// TenureBuckets are the fixed years-of-service ranges offered as filter
// choices. Each bucket is [Min, Max); the last is open-ended.
var TenureBuckets = []string{"0-5", "5-10", "10-15", "15-20", "20+"}

// Criteria is one search view's active filter selections. A zero-value
// field means that criterion is unset and matches every record.
type Criteria struct {
	Name         string `json:"name,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	TenureBucket string `json:"tenureBucket,omitempty"`
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Name == "" && c.Department == "" && c.Position == "" && c.TenureBucket == ""
}

// Matches applies every set criterion, ANDed. It is total: records with
// missing or malformed date data fail date-derived criteria instead of
// erroring.
func (c Criteria) Matches(emp Employee, now time.Time) bool {
	if c.Name != "" {
		haystack := strings.ToLower(emp.FirstName + " " + emp.LastName)
		if !strings.Contains(haystack, strings.ToLower(c.Name)) {
			return false
		}
	}
	if c.Department != "" && emp.Department != c.Department {
		return false
	}
	if c.Position != "" && emp.Position != c.Position {
		return false
	}
	if c.TenureBucket != "" {
		years := TenureYears(emp.HireDate, now)
		if years < 0 || !bucketContains(c.TenureBucket, years) {
			return false
		}
	}
	return true
}

func bucketContains(bucket string, years int) bool {
	switch bucket {
	case "0-5":
		return years >= 0 && years < 5
	case "5-10":
		return years >= 5 && years < 10
	case "10-15":
		return years >= 10 && years < 15
	case "15-20":
		return years >= 15 && years < 20
	case "20+":
		return years >= 20
	}
	return false
}
