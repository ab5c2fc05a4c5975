package performance

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("review cycle not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListCycles(ctx context.Context) ([]Cycle, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, start_date, end_date, status, created_at
    FROM review_cycles
    ORDER BY start_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Cycle
	for rows.Next() {
		var cycle Cycle
		if err := rows.Scan(&cycle.ID, &cycle.Name, &cycle.StartDate, &cycle.EndDate, &cycle.Status, &cycle.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cycle)
	}
	return out, rows.Err()
}

func (s *Store) CreateCycle(ctx context.Context, cycle Cycle) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO review_cycles (name, start_date, end_date, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, cycle.Name, cycle.StartDate, cycle.EndDate, CycleDraft).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) SetCycleStatus(ctx context.Context, cycleID, status string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE review_cycles SET status = $1 WHERE id = $2
  `, status, cycleID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListReviews(ctx context.Context, cycleID, employeeID string) ([]Review, error) {
	query := `
    SELECT id, cycle_id, employee_id, reviewer_id, rating,
           COALESCE(strengths, ''), COALESCE(areas_for_growth, ''), finalized, created_at, updated_at
    FROM reviews
    WHERE cycle_id = $1`
	args := []any{cycleID}
	if employeeID != "" {
		query += ` AND employee_id = $2`
		args = append(args, employeeID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var review Review
		if err := rows.Scan(&review.ID, &review.CycleID, &review.EmployeeID, &review.ReviewerID,
			&review.Rating, &review.Strengths, &review.Areas, &review.Finalized,
			&review.CreatedAt, &review.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

func (s *Store) UpsertReview(ctx context.Context, review Review) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO reviews (cycle_id, employee_id, reviewer_id, rating, strengths, areas_for_growth, finalized)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (cycle_id, employee_id, reviewer_id)
    DO UPDATE SET rating = EXCLUDED.rating,
                  strengths = EXCLUDED.strengths,
                  areas_for_growth = EXCLUDED.areas_for_growth,
                  finalized = EXCLUDED.finalized,
                  updated_at = now()
    RETURNING id
  `, review.CycleID, review.EmployeeID, review.ReviewerID, review.Rating,
		review.Strengths, review.Areas, review.Finalized,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}
