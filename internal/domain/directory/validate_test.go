package directory

import (
	"testing"
)

func TestValidateEmployeeReportsAllIssues(t *testing.T) {
	now := date(2025, 6, 15)
	issues := ValidateEmployee(Employee{Email: "bad", Phone: "123"}, now)

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{"firstName", "lastName", "email", "phone", "governmentIds"} {
		if !fields[want] {
			t.Fatalf("expected issue on %s, got %+v", want, issues)
		}
	}
}

func TestValidateEmployeeGovernmentIDGroup(t *testing.T) {
	now := date(2025, 6, 15)
	emp := Employee{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@school.edu.ph",
	}

	issues := ValidateEmployee(emp, now)
	found := false
	for _, issue := range issues {
		if issue.Field == "governmentIds" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected governmentIds issue when all IDs are empty, got %+v", issues)
	}

	emp.TINNumber = "123-456-789-000"
	for _, issue := range ValidateEmployee(emp, now) {
		if issue.Field == "governmentIds" {
			t.Fatalf("one ID should satisfy the group, got %+v", issue)
		}
	}
}

func TestValidateEmployeeDateOrder(t *testing.T) {
	now := date(2025, 6, 15)
	hire := date(2020, 1, 1)
	sep := date(2019, 1, 1)
	emp := Employee{
		FirstName:      "Ana",
		LastName:       "Reyes",
		Email:          "ana@school.edu.ph",
		SSSNumber:      "34-1234567-8",
		HireDate:       &hire,
		SeparationDate: &sep,
	}

	issues := ValidateEmployee(emp, now)
	if len(issues) != 1 || issues[0].Field != "separationDate" {
		t.Fatalf("expected single separationDate issue, got %+v", issues)
	}
}

func TestValidateEmployeeClean(t *testing.T) {
	now := date(2025, 6, 15)
	hire := date(2020, 1, 1)
	emp := Employee{
		FirstName:  "Ana",
		LastName:   "Reyes",
		Email:      "ana@school.edu.ph",
		Phone:      "+639171234567",
		FBLink:     "https://facebook.com/ana",
		SSSNumber:  "34-1234567-8",
		Status:     StatusRegular,
		HireDate:   &hire,
		Department: "Mathematics",
		Position:   "Teacher III",
	}
	if issues := ValidateEmployee(emp, now); len(issues) != 0 {
		t.Fatalf("expected clean validation, got %+v", issues)
	}
}
