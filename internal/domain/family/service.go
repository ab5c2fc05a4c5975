package family

import (
	"context"
	"strings"
	"time"

	"schoolhr/internal/domain/validation"
)

type memberStore interface {
	OwnerName(ctx context.Context, employeeID string) (string, error)
	ListMembers(ctx context.Context, employeeID string) ([]Member, error)
	AddMember(ctx context.Context, employeeID string, member Member) (string, error)
	UpdateMember(ctx context.Context, employeeID, memberID string, member Member) error
	DeleteMember(ctx context.Context, employeeID, memberID string) error
}

// Service validates and persists family members. The collection caps are
// checked here, against the stored collection inside the write path, not
// against whatever copy a client happens to hold.
type Service struct {
	store memberStore
	now   func() time.Time
}

func NewService(store memberStore) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context, employeeID string) ([]Member, error) {
	return s.store.ListMembers(ctx, employeeID)
}

// Add returns the new member ID, or the validation issues that blocked it.
// No write is issued when issues are returned.
func (s *Service) Add(ctx context.Context, employeeID string, member Member) (string, []Issue, error) {
	issues := ValidateMember(member, s.now())
	nameIssues, err := s.ownNameIssues(ctx, employeeID, member)
	if err != nil {
		return "", nil, err
	}
	issues = append(issues, nameIssues...)
	if len(issues) > 0 {
		return "", issues, nil
	}

	existing, err := s.store.ListMembers(ctx, employeeID)
	if err != nil {
		return "", nil, err
	}
	if capIssue := CheckCaps(existing, member, ""); capIssue != nil {
		return "", []Issue{*capIssue}, nil
	}

	id, err := s.store.AddMember(ctx, employeeID, member)
	if err != nil {
		return "", nil, err
	}
	return id, nil, nil
}

// Update fully replaces the non-key fields of memberID.
func (s *Service) Update(ctx context.Context, employeeID, memberID string, member Member) ([]Issue, error) {
	issues := ValidateMember(member, s.now())
	nameIssues, err := s.ownNameIssues(ctx, employeeID, member)
	if err != nil {
		return nil, err
	}
	issues = append(issues, nameIssues...)
	if len(issues) > 0 {
		return issues, nil
	}

	existing, err := s.store.ListMembers(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if capIssue := CheckCaps(existing, member, memberID); capIssue != nil {
		return []Issue{*capIssue}, nil
	}

	return nil, s.store.UpdateMember(ctx, employeeID, memberID, member)
}

func (s *Service) Delete(ctx context.Context, employeeID, memberID string) error {
	return s.store.DeleteMember(ctx, employeeID, memberID)
}

// ownNameIssues rejects a member named exactly after the owning employee.
// A family record must name a different person.
func (s *Service) ownNameIssues(ctx context.Context, employeeID string, member Member) ([]Issue, error) {
	if strings.TrimSpace(member.Name) == "" {
		return nil, nil
	}
	owner, err := s.store.OwnerName(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if v := validation.NotOwnName("Name", member.Name, owner); !v.Valid {
		return []Issue{{Field: "name", Reason: v.Reason}}, nil
	}
	return nil, nil
}
