package schedule

import "time"

// Entry is one recurring weekly slot on a faculty member's schedule:
// a class, a duty assignment, or a consultation block.
type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Weekday    int       `json:"weekday"` // 0=Sunday .. 6=Saturday
	StartMin   int       `json:"startMinute"`
	EndMin     int       `json:"endMinute"`
	Label      string    `json:"label"`
	Room       string    `json:"room,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
