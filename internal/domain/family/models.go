package family

import "time"

const (
	TypeSpouse  = "Spouse"
	TypeChild   = "Child"
	TypeParent  = "Parent"
	TypeSibling = "Sibling"
	TypeOther   = "Other"
)

// MemberTypes is the closed relationship set.
var MemberTypes = []string{TypeSpouse, TypeChild, TypeParent, TypeSibling, TypeOther}

const (
	MaxSpouses = 1
	MaxParents = 2
)

// Member is one dependent or relative owned by exactly one employee.
type Member struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Occupation    string     `json:"occupation,omitempty"`
	Relationship  string     `json:"relationship,omitempty"`
	ContactNumber string     `json:"contactNumber,omitempty"`
	Address       string     `json:"address,omitempty"`
	IsDependent   bool       `json:"isDependent"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
