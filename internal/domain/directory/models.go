package directory

import "time"

const (
	StatusRegular      = "Regular"
	StatusProbationary = "Probationary"
	StatusResigned     = "Resigned"
	StatusRetired      = "Retired"
)

// EmploymentStatuses is the closed set accepted by status-change actions.
var EmploymentStatuses = []string{StatusRegular, StatusProbationary, StatusResigned, StatusRetired}

// Employee is the directory record for one faculty or staff member.
type Employee struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	FirstName      string     `json:"firstName"`
	MiddleName     string     `json:"middleName,omitempty"`
	LastName       string     `json:"lastName"`
	Suffix         string     `json:"suffix,omitempty"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	MessengerName  string     `json:"messengerName,omitempty"`
	FBLink         string     `json:"fbLink,omitempty"`
	Address        string     `json:"address,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	SSSNumber      string     `json:"sssNumber,omitempty"`
	TINNumber      string     `json:"tinNumber,omitempty"`
	PhilHealthID   string     `json:"philHealthId,omitempty"`
	Status         string     `json:"status"`
	HireDate       *time.Time `json:"hireDate,omitempty"`
	SeparationDate *time.Time `json:"separationDate,omitempty"`
	AccountActive  bool       `json:"accountActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// FilterOptions lists the distinct department and position labels present
// in the directory, for populating search dropdowns.
type FilterOptions struct {
	Departments []string `json:"departments"`
	Positions   []string `json:"positions"`
}

// StatusChange is the body of the admin PUT /directory action.
type StatusChange struct {
	EmployeeID string `json:"employeeId"`
	Action     string `json:"action"`
	NewStatus  string `json:"newStatus,omitempty"`
}

const (
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
	ActionSetStatus  = "set-status"
)
