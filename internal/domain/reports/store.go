package reports

import (
	"context"
	"time"

	"schoolhr/internal/domain/leave"
	"schoolhr/internal/domain/performance"
	"schoolhr/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) EmployeeCounts(ctx context.Context) (total, active int, byStatus map[string]int, err error) {
	rows, err := s.DB.Query(ctx,
		"SELECT employment_status, account_active, COUNT(1) FROM employees GROUP BY employment_status, account_active")
	if err != nil {
		return 0, 0, nil, err
	}
	defer rows.Close()

	byStatus = map[string]int{}
	for rows.Next() {
		var status string
		var isActive bool
		var count int
		if err := rows.Scan(&status, &isActive, &count); err != nil {
			return 0, 0, nil, err
		}
		total += count
		if isActive {
			active += count
		}
		byStatus[status] += count
	}
	return total, active, byStatus, rows.Err()
}

func (s *Store) DepartmentCounts(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(department, ''), COUNT(1)
    FROM employees
    GROUP BY department
    ORDER BY COUNT(1) DESC, department
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DepartmentCount
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// HireDates returns the hire date of every employee that has one.
func (s *Store) HireDates(ctx context.Context) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, "SELECT hire_date FROM employees WHERE hire_date IS NOT NULL")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) PendingLeaveCount(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM leave_requests WHERE status = $1", leave.StatusPending).Scan(&n)
	return n, err
}

func (s *Store) OpenPostingCount(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM job_postings WHERE open = TRUE").Scan(&n)
	return n, err
}

func (s *Store) ActiveCycleCount(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM review_cycles WHERE status = $1", performance.CycleActive).Scan(&n)
	return n, err
}

func (s *Store) LeaveBalance(ctx context.Context, employeeID string) (float64, error) {
	var balance float64
	err := s.DB.QueryRow(ctx,
		"SELECT COALESCE(SUM(balance),0) FROM leave_balances WHERE employee_id = $1", employeeID).Scan(&balance)
	return balance, err
}

func (s *Store) PendingLeaveForEmployee(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM leave_requests WHERE employee_id = $1 AND status = $2",
		employeeID, leave.StatusPending).Scan(&n)
	return n, err
}

func (s *Store) FamilyMemberCount(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM family_members WHERE employee_id = $1", employeeID).Scan(&n)
	return n, err
}

func (s *Store) UnreadNoticeCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM notifications WHERE user_id = $1 AND read_at IS NULL", userID).Scan(&n)
	return n, err
}

func (s *Store) DocumentCount(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := s.DB.QueryRow(ctx,
		"SELECT COUNT(1) FROM documents WHERE employee_id = $1", employeeID).Scan(&n)
	return n, err
}
