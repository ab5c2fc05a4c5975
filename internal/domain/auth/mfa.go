package auth

import (
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "SchoolHR"

// GenerateMFASecret creates a new TOTP secret for the account. The
// returned URL is the otpauth:// provisioning URI for authenticator apps.
func GenerateMFASecret(accountEmail string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: accountEmail,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// ValidateMFACode checks a 6-digit TOTP code against the stored secret.
func ValidateMFACode(secret, code string) bool {
	return totp.Validate(code, secret)
}
