package reports

import (
	"context"
	"time"

	"schoolhr/internal/domain/directory"
)

type Service struct {
	Store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{Store: store, now: time.Now}
}

func (s *Service) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	total, active, byStatus, err := s.Store.EmployeeCounts(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.Store.DepartmentCounts(ctx)
	if err != nil {
		return nil, err
	}
	hireDates, err := s.Store.HireDates(ctx)
	if err != nil {
		return nil, err
	}
	pendingLeave, err := s.Store.PendingLeaveCount(ctx)
	if err != nil {
		return nil, err
	}
	openPostings, err := s.Store.OpenPostingCount(ctx)
	if err != nil {
		return nil, err
	}
	activeCycles, err := s.Store.ActiveCycleCount(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		TotalEmployees:     total,
		ActiveEmployees:    active,
		StatusCounts:       byStatus,
		DepartmentCounts:   departments,
		PendingLeave:       pendingLeave,
		OpenPostings:       openPostings,
		ActiveCycles:       activeCycles,
		TenureDistribution: tenureDistribution(hireDates, s.now()),
	}, nil
}

func (s *Service) FacultyDashboard(ctx context.Context, employeeID, userID string) (*FacultyDashboard, error) {
	balance, err := s.Store.LeaveBalance(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	pending, err := s.Store.PendingLeaveForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	family, err := s.Store.FamilyMemberCount(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	unread, err := s.Store.UnreadNoticeCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	docs, err := s.Store.DocumentCount(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &FacultyDashboard{
		LeaveBalance:  balance,
		PendingLeave:  pending,
		FamilyMembers: family,
		UnreadNotices: unread,
		DocumentCount: docs,
	}, nil
}

// tenureDistribution buckets hire dates into the same year ranges the
// directory filter uses.
func tenureDistribution(hireDates []time.Time, now time.Time) map[string]int {
	dist := make(map[string]int, len(directory.TenureBuckets))
	for _, b := range directory.TenureBuckets {
		dist[b] = 0
	}
	for _, hired := range hireDates {
		d := hired
		years := directory.TenureYears(&d, now)
		if years < 0 {
			continue
		}
		switch {
		case years < 5:
			dist["0-5"]++
		case years < 10:
			dist["5-10"]++
		case years < 15:
			dist["10-15"]++
		case years < 20:
			dist["15-20"]++
		default:
			dist["20+"]++
		}
	}
	return dist
}
