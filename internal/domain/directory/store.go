package directory

import (
	"context"
	"errors"

	"schoolhr/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const employeeColumns = `
    id,
    COALESCE(user_id::text, ''),
    first_name,
    COALESCE(middle_name, ''),
    last_name,
    COALESCE(suffix, ''),
    COALESCE(department, ''),
    COALESCE(position, ''),
    email,
    COALESCE(phone, ''),
    COALESCE(messenger_name, ''),
    COALESCE(fb_link, ''),
    COALESCE(address, ''),
    date_of_birth,
    COALESCE(sss_number, ''),
    COALESCE(tin_number, ''),
    COALESCE(philhealth_id, ''),
    status,
    hire_date,
    separation_date,
    account_active,
    created_at,
    updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.FirstName, &emp.MiddleName, &emp.LastName, &emp.Suffix,
		&emp.Department, &emp.Position, &emp.Email, &emp.Phone, &emp.MessengerName, &emp.FBLink,
		&emp.Address, &emp.DateOfBirth, &emp.SSSNumber, &emp.TINNumber, &emp.PhilHealthID,
		&emp.Status, &emp.HireDate, &emp.SeparationDate, &emp.AccountActive,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    ORDER BY last_name, first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	emp, err := scanEmployee(row)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) GetEmployeeByUserID(ctx context.Context, userID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE user_id = $1
  `, userID)
	emp, err := scanEmployee(row)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// FilterOptions returns the distinct department and position labels used
// to populate the directory search dropdowns.
func (s *Store) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var opts FilterOptions

	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT department FROM employees
    WHERE department IS NOT NULL AND department <> ''
    ORDER BY department
  `)
	if err != nil {
		return opts, err
	}
	defer rows.Close()
	for rows.Next() {
		var dep string
		if err := rows.Scan(&dep); err != nil {
			return opts, err
		}
		opts.Departments = append(opts.Departments, dep)
	}
	if err := rows.Err(); err != nil {
		return opts, err
	}

	posRows, err := s.DB.Query(ctx, `
    SELECT DISTINCT position FROM employees
    WHERE position IS NOT NULL AND position <> ''
    ORDER BY position
  `)
	if err != nil {
		return opts, err
	}
	defer posRows.Close()
	for posRows.Next() {
		var pos string
		if err := posRows.Scan(&pos); err != nil {
			return opts, err
		}
		opts.Positions = append(opts.Positions, pos)
	}
	return opts, posRows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (user_id, first_name, middle_name, last_name, suffix, department, position,
      email, phone, messenger_name, fb_link, address, date_of_birth, sss_number, tin_number,
      philhealth_id, status, hire_date, separation_date, account_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
    RETURNING id
  `,
		nullIfEmpty(emp.UserID), emp.FirstName, nullIfEmpty(emp.MiddleName), emp.LastName, nullIfEmpty(emp.Suffix),
		emp.Department, emp.Position, emp.Email, emp.Phone, nullIfEmpty(emp.MessengerName), nullIfEmpty(emp.FBLink),
		nullIfEmpty(emp.Address), emp.DateOfBirth, nullIfEmpty(emp.SSSNumber), nullIfEmpty(emp.TINNumber),
		nullIfEmpty(emp.PhilHealthID), emp.Status, emp.HireDate, emp.SeparationDate, emp.AccountActive,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1,
        middle_name = $2,
        last_name = $3,
        suffix = $4,
        department = $5,
        position = $6,
        email = $7,
        phone = $8,
        messenger_name = $9,
        fb_link = $10,
        address = $11,
        date_of_birth = $12,
        sss_number = $13,
        tin_number = $14,
        philhealth_id = $15,
        status = $16,
        hire_date = $17,
        separation_date = $18,
        updated_at = now()
    WHERE id = $19
  `,
		emp.FirstName, nullIfEmpty(emp.MiddleName), emp.LastName, nullIfEmpty(emp.Suffix),
		emp.Department, emp.Position, emp.Email, emp.Phone, nullIfEmpty(emp.MessengerName),
		nullIfEmpty(emp.FBLink), nullIfEmpty(emp.Address), emp.DateOfBirth, nullIfEmpty(emp.SSSNumber),
		nullIfEmpty(emp.TINNumber), nullIfEmpty(emp.PhilHealthID), emp.Status, emp.HireDate, emp.SeparationDate,
		employeeID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("employee not found")
	}
	return nil
}

func (s *Store) SetAccountActive(ctx context.Context, employeeID string, active bool) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET account_active = $1, updated_at = now()
    WHERE id = $2
  `, active, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("employee not found")
	}
	return nil
}

// SetEmploymentStatus updates the status enum. Moving into a separated
// status stamps the separation date once; moving back clears it.
func (s *Store) SetEmploymentStatus(ctx context.Context, employeeID, status string) error {
	separated := status == StatusResigned || status == StatusRetired
	var cmdSQL string
	if separated {
		cmdSQL = `
    UPDATE employees
    SET status = $1,
        separation_date = COALESCE(separation_date, CURRENT_DATE),
        updated_at = now()
    WHERE id = $2
  `
	} else {
		cmdSQL = `
    UPDATE employees
    SET status = $1,
        separation_date = NULL,
        updated_at = now()
    WHERE id = $2
  `
	}
	cmd, err := s.DB.Exec(ctx, cmdSQL, status, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("employee not found")
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
