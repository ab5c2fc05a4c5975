package family

import (
	"testing"
	"time"
)

func now() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func TestValidateMemberContactNumber(t *testing.T) {
	member := Member{Type: TypeSibling, Name: "Ana Reyes", ContactNumber: "12345"}
	issues := ValidateMember(member, now())
	if len(issues) != 1 || issues[0].Field != "contactNumber" {
		t.Fatalf("expected contactNumber issue, got %+v", issues)
	}

	member.ContactNumber = "09171234567"
	if issues := ValidateMember(member, now()); len(issues) != 0 {
		t.Fatalf("expected clean validation, got %+v", issues)
	}
}

func TestValidateMemberOtherNeedsQualifier(t *testing.T) {
	member := Member{Type: TypeOther, Name: "Ana Reyes"}
	issues := ValidateMember(member, now())
	if len(issues) != 1 || issues[0].Field != "type" {
		t.Fatalf("expected type issue for Other without qualifier, got %+v", issues)
	}

	member.Relationship = "Guardian"
	if issues := ValidateMember(member, now()); len(issues) != 0 {
		t.Fatalf("expected clean validation, got %+v", issues)
	}
}

func TestValidateMemberChildAnyAge(t *testing.T) {
	dob := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	member := Member{Type: TypeChild, Name: "Bea Reyes", DateOfBirth: &dob}
	if issues := ValidateMember(member, now()); len(issues) != 0 {
		t.Fatalf("a toddler child must validate, got %+v", issues)
	}

	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	member.DateOfBirth = &future
	issues := ValidateMember(member, now())
	if len(issues) != 1 || issues[0].Field != "dateOfBirth" {
		t.Fatalf("expected future DOB rejection, got %+v", issues)
	}
}
