package auth

import (
	"context"
	"time"

	"schoolhr/internal/platform/crypto"
	"schoolhr/internal/platform/db"
)

// AuthUser is the credential row loaded at login time.
type AuthUser struct {
	ID           string
	Email        string
	PasswordHash string
	RoleName     string
	EmployeeID   string
	Active       bool
	MFAEnabled   bool
}

type Store struct {
	DB     db.Querier
	Sealer *crypto.Sealer
}

func NewStore(q db.Querier, sealer *crypto.Sealer) *Store {
	return &Store{DB: q, Sealer: sealer}
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var user AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role_name,
           COALESCE(employee_id::text, ''), active, mfa_enabled
    FROM users
    WHERE lower(email) = lower($1)
  `, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.RoleName, &user.EmployeeID, &user.Active, &user.MFAEnabled)
	return user, err
}

func (s *Store) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM users WHERE id = $1
  `, userID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE users SET last_login_at = now() WHERE id = $1
  `, userID)
	return err
}

func (s *Store) CreateSession(ctx context.Context, userID, refreshTokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (user_id, refresh_token_hash, expires_at)
    VALUES ($1, $2, $3)
  `, userID, refreshTokenHash, expires)
	return err
}

func (s *Store) RevokeSession(ctx context.Context, userID, refreshTokenHash string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE sessions
    SET revoked_at = now()
    WHERE user_id = $1 AND refresh_token_hash = $2 AND revoked_at IS NULL
  `, userID, refreshTokenHash)
	return err
}

func (s *Store) SessionValid(ctx context.Context, userID, refreshTokenHash string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM sessions
    WHERE user_id = $1 AND refresh_token_hash = $2 AND revoked_at IS NULL AND expires_at > now()
  `, userID, refreshTokenHash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreatePasswordReset(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO password_resets (user_id, token_hash, expires_at)
    VALUES ($1, $2, $3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) PasswordResetUserID(ctx context.Context, tokenHash string) (string, error) {
	var userID string
	err := s.DB.QueryRow(ctx, `
    SELECT user_id
    FROM password_resets
    WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()
  `, tokenHash).Scan(&userID)
	return userID, err
}

func (s *Store) MarkPasswordResetUsed(ctx context.Context, tokenHash string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE password_resets SET used_at = now() WHERE token_hash = $1
  `, tokenHash)
	return err
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID, hash string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
  `, hash, userID)
	return err
}

// UpdateMFASecret stores the TOTP seed sealed at rest.
func (s *Store) UpdateMFASecret(ctx context.Context, userID, secret string) error {
	sealed, err := s.Sealer.Seal(secret)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    UPDATE users SET mfa_secret = $1, updated_at = now() WHERE id = $2
  `, sealed, userID)
	return err
}

func (s *Store) GetMFASecret(ctx context.Context, userID string) (string, error) {
	var sealed string
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(mfa_secret, '') FROM users WHERE id = $1
  `, userID).Scan(&sealed)
	if err != nil {
		return "", err
	}
	return s.Sealer.Open(sealed)
}

func (s *Store) SetMFAEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE users SET mfa_enabled = $1, updated_at = now() WHERE id = $2
  `, enabled, userID)
	return err
}

// HasPermission consults the role matrix. Kept as a store method so the
// RequirePermission middleware depends on one small interface.
func (s *Store) HasPermission(ctx context.Context, roleName, permission string) (bool, error) {
	return RoleHasPermission(roleName, permission), nil
}
