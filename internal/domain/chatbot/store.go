package chatbot

import (
	"context"
	"errors"
	"fmt"

	"schoolhr/internal/platform/db"
)

// ErrNotFound is returned when a knowledge-base entry does not exist.
var ErrNotFound = errors.New("chatbot: entry not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListEntries(ctx context.Context, activeOnly bool) ([]Entry, error) {
	query := `SELECT id, question, answer, keywords, active, created_at, updated_at
		FROM kb_entries`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list kb entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Keywords, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kb entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) CreateEntry(ctx context.Context, e *Entry) error {
	err := s.DB.QueryRow(ctx, `INSERT INTO kb_entries (question, answer, keywords, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		e.Question, e.Answer, e.Keywords, e.Active,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create kb entry: %w", err)
	}
	return nil
}

func (s *Store) UpdateEntry(ctx context.Context, e *Entry) error {
	tag, err := s.DB.Exec(ctx, `UPDATE kb_entries
		SET question = $2, answer = $3, keywords = $4, active = $5, updated_at = NOW()
		WHERE id = $1`,
		e.ID, e.Question, e.Answer, e.Keywords, e.Active)
	if err != nil {
		return fmt.Errorf("update kb entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM kb_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kb entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
