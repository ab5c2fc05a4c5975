package directory

import (
	"time"

	"schoolhr/internal/domain/validation"
)

// Issue pairs a field with the reason it was rejected.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateEmployee checks a full profile payload. Every failing field is
// reported, not just the first.
func ValidateEmployee(emp Employee, now time.Time) []Issue {
	var issues []Issue
	add := func(field string, v validation.Verdict) {
		if !v.Valid {
			issues = append(issues, Issue{Field: field, Reason: v.Reason})
		}
	}

	add("firstName", validation.Required("First Name", emp.FirstName))
	add("lastName", validation.Required("Last Name", emp.LastName))
	if emp.FirstName != "" {
		add("firstName", validation.PersonName("First Name", emp.FirstName))
	}
	if emp.MiddleName != "" {
		add("middleName", validation.PersonName("Middle Name", emp.MiddleName))
	}
	if emp.LastName != "" {
		add("lastName", validation.PersonName("Last Name", emp.LastName))
	}

	add("email", validation.Email("Email", emp.Email))
	if emp.Phone != "" {
		add("phone", validation.PhilippineMobile("Phone", emp.Phone))
	}
	add("fbLink", validation.OptionalURL("FB Link", emp.FBLink))

	if emp.DateOfBirth != nil {
		add("dateOfBirth", validation.DateOfBirth("Date of Birth", emp.DateOfBirth.Format("2006-01-02"), now))
	}
	if emp.Address != "" {
		add("address", validation.Address("Address", emp.Address))
	}

	add("governmentIds", validation.AnyOf("government IDs", map[string]string{
		"SSS Number":    emp.SSSNumber,
		"TIN Number":    emp.TINNumber,
		"PhilHealth ID": emp.PhilHealthID,
	}))

	if emp.Status != "" {
		add("status", validation.Enum("Employment Status", emp.Status, EmploymentStatuses, ""))
	}

	if emp.HireDate != nil && emp.SeparationDate != nil && emp.SeparationDate.Before(*emp.HireDate) {
		issues = append(issues, Issue{Field: "separationDate", Reason: "Separation Date must be on or after Hire Date"})
	}

	return issues
}
