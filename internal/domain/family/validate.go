package family

import (
	"time"

	"schoolhr/internal/domain/validation"
)

// Issue pairs a field with the reason it was rejected.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateMember runs every field rule and reports all failures at once,
// so a form can light up each offending field in a single pass.
func ValidateMember(member Member, now time.Time) []Issue {
	var issues []Issue
	add := func(field string, v validation.Verdict) {
		if !v.Valid {
			issues = append(issues, Issue{Field: field, Reason: v.Reason})
		}
	}

	add("name", validation.Required("Name", member.Name))
	if member.Name != "" {
		add("name", validation.PersonName("Name", member.Name))
	}

	add("type", validation.Required("Type", member.Type))
	if member.Type != "" {
		add("type", validation.Enum("Type", member.Type, MemberTypes, member.Relationship))
	}

	if member.ContactNumber != "" {
		add("contactNumber", validation.PhilippineMobile("Contact Number", member.ContactNumber))
	}
	if member.DateOfBirth != nil {
		dob := member.DateOfBirth.Format("2006-01-02")
		if member.DateOfBirth.After(now) {
			issues = append(issues, Issue{Field: "dateOfBirth", Reason: "Date of Birth cannot be in the future"})
		} else if member.Type != TypeChild {
			// Children may be any age; adult relatives go through the
			// standard age window.
			add("dateOfBirth", validation.DateOfBirth("Date of Birth", dob, now))
		}
	}
	if member.Address != "" {
		add("address", validation.Address("Address", member.Address))
	}

	return issues
}

// CheckCaps enforces the collection limits for one employee's family:
// at most one spouse and at most two parents. excludeID skips the member
// being updated so an in-place edit does not count against itself.
func CheckCaps(existing []Member, candidate Member, excludeID string) *Issue {
	spouses, parents := 0, 0
	for _, member := range existing {
		if excludeID != "" && member.ID == excludeID {
			continue
		}
		switch member.Type {
		case TypeSpouse:
			spouses++
		case TypeParent:
			parents++
		}
	}

	switch candidate.Type {
	case TypeSpouse:
		if spouses >= MaxSpouses {
			return &Issue{Field: "type", Reason: "Only one spouse can be added."}
		}
	case TypeParent:
		if parents >= MaxParents {
			return &Issue{Field: "type", Reason: "Only two parents can be added."}
		}
	}
	return nil
}
