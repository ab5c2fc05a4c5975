package recruitment

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("applicant not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListPostings(ctx context.Context, openOnly bool) ([]JobPosting, error) {
	query := `
    SELECT id, title, department, COALESCE(description, ''), open, posted_at, closed_at
    FROM job_postings`
	if openOnly {
		query += ` WHERE open`
	}
	query += ` ORDER BY posted_at DESC`

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobPosting
	for rows.Next() {
		var posting JobPosting
		if err := rows.Scan(&posting.ID, &posting.Title, &posting.Department, &posting.Description,
			&posting.Open, &posting.PostedAt, &posting.ClosedAt); err != nil {
			return nil, err
		}
		out = append(out, posting)
	}
	return out, rows.Err()
}

func (s *Store) CreatePosting(ctx context.Context, posting JobPosting) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO job_postings (title, department, description, open)
    VALUES ($1, $2, $3, true)
    RETURNING id
  `, posting.Title, posting.Department, posting.Description).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ClosePosting(ctx context.Context, postingID string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE job_postings
    SET open = false, closed_at = now()
    WHERE id = $1 AND open
  `, postingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("posting not found or already closed")
	}
	return nil
}

func (s *Store) ListApplicants(ctx context.Context, postingID, stage string) ([]Applicant, error) {
	query := `
    SELECT id, posting_id, first_name, last_name, email, COALESCE(phone, ''), stage, COALESCE(notes, ''), created_at, updated_at
    FROM applicants
    WHERE posting_id = $1`
	args := []any{postingID}
	if stage != "" {
		query += ` AND stage = $2`
		args = append(args, stage)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Applicant
	for rows.Next() {
		var applicant Applicant
		if err := rows.Scan(&applicant.ID, &applicant.PostingID, &applicant.FirstName, &applicant.LastName,
			&applicant.Email, &applicant.Phone, &applicant.Stage, &applicant.Notes,
			&applicant.CreatedAt, &applicant.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, applicant)
	}
	return out, rows.Err()
}

func (s *Store) CreateApplicant(ctx context.Context, applicant Applicant) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO applicants (posting_id, first_name, last_name, email, phone, stage, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, applicant.PostingID, applicant.FirstName, applicant.LastName, applicant.Email,
		nullIfEmpty(applicant.Phone), StageApplied, nullIfEmpty(applicant.Notes),
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ApplicantStage(ctx context.Context, applicantID string) (string, error) {
	var stage string
	err := s.DB.QueryRow(ctx, `
    SELECT stage FROM applicants WHERE id = $1
  `, applicantID).Scan(&stage)
	return stage, err
}

func (s *Store) SetApplicantStage(ctx context.Context, applicantID, stage string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE applicants
    SET stage = $1, updated_at = now()
    WHERE id = $2
  `, stage, applicantID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
