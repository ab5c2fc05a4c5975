package schedule

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("schedule entry not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListEntries(ctx context.Context, employeeID string) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, weekday, start_minute, end_minute, label, COALESCE(room, ''), created_at
    FROM schedule_entries
    WHERE employee_id = $1
    ORDER BY weekday, start_minute
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.Weekday, &entry.StartMin,
			&entry.EndMin, &entry.Label, &entry.Room, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) CreateEntry(ctx context.Context, entry Entry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO schedule_entries (employee_id, weekday, start_minute, end_minute, label, room)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, entry.EmployeeID, entry.Weekday, entry.StartMin, entry.EndMin, entry.Label, nullIfEmpty(entry.Room)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEntry(ctx context.Context, entryID string, entry Entry) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE schedule_entries
    SET weekday = $1, start_minute = $2, end_minute = $3, label = $4, room = $5
    WHERE id = $6
  `, entry.Weekday, entry.StartMin, entry.EndMin, entry.Label, nullIfEmpty(entry.Room), entryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, entryID string) error {
	cmd, err := s.DB.Exec(ctx, `
    DELETE FROM schedule_entries WHERE id = $1
  `, entryID)
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
