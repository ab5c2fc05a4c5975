package directory

import (
	"schoolhr/internal/domain/auth"
	"schoolhr/internal/domain/validation"
)

// FilterEmployeeFields redacts sensitive fields according to who is
// looking. Admin and HR see everything; an employee viewing their own
// record sees masked government IDs; anyone else sees none of the
// sensitive fields.
func FilterEmployeeFields(emp *Employee, role string, isSelf bool) {
	if role == auth.RoleAdmin || role == auth.RoleHR {
		return
	}

	if isSelf {
		emp.SSSNumber = validation.MaskID(emp.SSSNumber)
		emp.TINNumber = validation.MaskID(emp.TINNumber)
		emp.PhilHealthID = validation.MaskID(emp.PhilHealthID)
		return
	}

	emp.SSSNumber = ""
	emp.TINNumber = ""
	emp.PhilHealthID = ""
	emp.Address = ""
	emp.DateOfBirth = nil
}
