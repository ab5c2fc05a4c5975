package documents

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("document not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListDocuments(ctx context.Context, employeeID string) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, kind, file_name, content_type, file_size, storage_key,
           COALESCE(uploaded_by::text, ''), created_at
    FROM documents
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.EmployeeID, &doc.Kind, &doc.FileName, &doc.ContentType,
			&doc.FileSize, &doc.StorageKey, &doc.UploadedBy, &doc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// CreateDocument registers metadata and assigns the object-storage key.
func (s *Store) CreateDocument(ctx context.Context, doc Document) (Document, error) {
	doc.StorageKey = uuid.NewString()
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, kind, file_name, content_type, file_size, storage_key, uploaded_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id, created_at
  `, doc.EmployeeID, doc.Kind, doc.FileName, doc.ContentType, doc.FileSize, doc.StorageKey,
		nullIfEmpty(doc.UploadedBy),
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (s *Store) DeleteDocument(ctx context.Context, employeeID, documentID string) error {
	cmd, err := s.DB.Exec(ctx, `
    DELETE FROM documents WHERE employee_id = $1 AND id = $2
  `, employeeID, documentID)
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
