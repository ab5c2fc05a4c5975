package leave

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("leave request not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

// InitBalances creates a balance row per leave type for a new employee,
// starting at the type's annual credit. Existing rows are left alone.
func (s *Store) InitBalances(ctx context.Context, employeeID string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO leave_balances (employee_id, leave_type_id, balance)
    SELECT $1, id, annual_credit FROM leave_types
    ON CONFLICT (employee_id, leave_type_id) DO NOTHING
  `, employeeID)
	return err
}

func (s *Store) ListTypes(ctx context.Context) ([]LeaveType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, annual_credit, accrual_per_month, created_at
    FROM leave_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveType
	for rows.Next() {
		var lt LeaveType
		if err := rows.Scan(&lt.ID, &lt.Name, &lt.AnnualCredit, &lt.AccrualPerMonth, &lt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}

func (s *Store) Balance(ctx context.Context, employeeID, leaveTypeID string) (float64, error) {
	var balance float64
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(balance), 0)
    FROM leave_balances
    WHERE employee_id = $1 AND leave_type_id = $2
  `, employeeID, leaveTypeID).Scan(&balance)
	return balance, err
}

func (s *Store) ListRequests(ctx context.Context, employeeID, status string) ([]Request, error) {
	query := `
    SELECT id, employee_id, leave_type_id, start_date, end_date, start_half, end_half,
           days, COALESCE(reason, ''), status, COALESCE(decided_by::text, ''), decided_at, created_at
    FROM leave_requests
    WHERE 1=1`
	args := []any{}
	if employeeID != "" {
		args = append(args, employeeID)
		query += ` AND employee_id = $1`
	}
	if status != "" {
		args = append(args, status)
		if len(args) == 1 {
			query += ` AND status = $1`
		} else {
			query += ` AND status = $2`
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
			&req.StartHalf, &req.EndHalf, &req.Days, &req.Reason, &req.Status,
			&req.DecidedBy, &req.DecidedAt, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *Store) GetRequest(ctx context.Context, requestID string) (*Request, error) {
	var req Request
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, leave_type_id, start_date, end_date, start_half, end_half,
           days, COALESCE(reason, ''), status, COALESCE(decided_by::text, ''), decided_at, created_at
    FROM leave_requests
    WHERE id = $1
  `, requestID).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
		&req.StartHalf, &req.EndHalf, &req.Days, &req.Reason, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Store) CreateRequest(ctx context.Context, req Request) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type_id, start_date, end_date, start_half, end_half, days, reason, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, req.EmployeeID, req.LeaveTypeID, req.StartDate, req.EndDate, req.StartHalf, req.EndHalf,
		req.Days, req.Reason, StatusPending,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// DecideRequest moves a pending request to a final status and, on
// approval, deducts the day count from the balance in one transaction.
func (s *Store) DecideRequest(ctx context.Context, requestID, newStatus, deciderUserID string) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var employeeID, leaveTypeID string
	var days float64
	err = tx.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $1, decided_by = $2, decided_at = now()
    WHERE id = $3 AND status = $4
    RETURNING employee_id, leave_type_id, days
  `, newStatus, deciderUserID, requestID, StatusPending).Scan(&employeeID, &leaveTypeID, &days)
	if err != nil {
		return ErrNotFound
	}

	if newStatus == StatusApproved {
		if _, err := tx.Exec(ctx, `
      UPDATE leave_balances
      SET balance = balance - $1
      WHERE employee_id = $2 AND leave_type_id = $3
    `, days, employeeID, leaveTypeID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
