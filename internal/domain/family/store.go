package family

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

var ErrNotFound = errors.New("family member not found")

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const memberColumns = `
    id,
    employee_id,
    member_type,
    full_name,
    date_of_birth,
    COALESCE(occupation, ''),
    COALESCE(relationship, ''),
    COALESCE(contact_number, ''),
    COALESCE(address, ''),
    is_dependent,
    created_at,
    updated_at`

// OwnerName returns the owning employee's full name, for the rule that a
// family member cannot be named after the employee themself.
func (s *Store) OwnerName(ctx context.Context, employeeID string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, `
    SELECT first_name || ' ' || last_name
    FROM employees
    WHERE id = $1
  `, employeeID).Scan(&name)
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) ListMembers(ctx context.Context, employeeID string) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+memberColumns+`
    FROM family_members
    WHERE employee_id = $1
    ORDER BY created_at ASC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var member Member
		if err := rows.Scan(
			&member.ID, &member.EmployeeID, &member.Type, &member.Name, &member.DateOfBirth,
			&member.Occupation, &member.Relationship, &member.ContactNumber, &member.Address,
			&member.IsDependent, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, rows.Err()
}

func (s *Store) AddMember(ctx context.Context, employeeID string, member Member) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO family_members
      (employee_id, member_type, full_name, date_of_birth, occupation, relationship, contact_number, address, is_dependent)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, employeeID, member.Type, member.Name, member.DateOfBirth, nullIfEmpty(member.Occupation),
		nullIfEmpty(member.Relationship), nullIfEmpty(member.ContactNumber), nullIfEmpty(member.Address),
		member.IsDependent,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateMember fully replaces the non-key fields of one member.
func (s *Store) UpdateMember(ctx context.Context, employeeID, memberID string, member Member) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE family_members
    SET member_type = $1,
        full_name = $2,
        date_of_birth = $3,
        occupation = $4,
        relationship = $5,
        contact_number = $6,
        address = $7,
        is_dependent = $8,
        updated_at = now()
    WHERE employee_id = $9 AND id = $10
  `, member.Type, member.Name, member.DateOfBirth, nullIfEmpty(member.Occupation),
		nullIfEmpty(member.Relationship), nullIfEmpty(member.ContactNumber), nullIfEmpty(member.Address),
		member.IsDependent, employeeID, memberID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMember(ctx context.Context, employeeID, memberID string) error {
	cmd, err := s.DB.Exec(ctx, `
    DELETE FROM family_members
    WHERE employee_id = $1 AND id = $2
  `, employeeID, memberID)
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
