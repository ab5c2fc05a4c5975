package db

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"schoolhr/internal/platform/config"
)

// Seed ensures the baseline rows a fresh install needs: the default
// leave types and, when configured, an initial admin account. Safe to
// run on every boot.
func Seed(ctx context.Context, q Querier, cfg config.Config) error {
	if err := ensureLeaveTypes(ctx, q); err != nil {
		return err
	}
	return ensureAdminUser(ctx, q, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

var defaultLeaveTypes = []struct {
	Name            string
	AnnualCredit    float64
	AccrualPerMonth float64
}{
	{"Vacation Leave", 15, 1.25},
	{"Sick Leave", 15, 1.25},
	{"Emergency Leave", 5, 0},
	{"Maternity Leave", 105, 0},
	{"Paternity Leave", 7, 0},
}

func ensureLeaveTypes(ctx context.Context, q Querier) error {
	for _, lt := range defaultLeaveTypes {
		_, err := q.Exec(ctx, `
      INSERT INTO leave_types (name, annual_credit, accrual_per_month)
      VALUES ($1, $2, $3)
      ON CONFLICT (name) DO NOTHING
    `, lt.Name, lt.AnnualCredit, lt.AccrualPerMonth)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, q Querier, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := q.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&id)
	if err == nil {
		return nil
	}

	// Inlined bcrypt hashing (same as auth.HashPassword): importing
	// domain/auth here would create an import cycle through db.Querier.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashed)

	return q.QueryRow(ctx, `
    INSERT INTO users (email, password_hash, role_name, active)
    VALUES ($1, $2, $3, TRUE)
    RETURNING id
  `, email, hash, "Admin").Scan(&id)
}
