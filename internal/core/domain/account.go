package domain

import (
	"strings"
	"time"
)

// Account is a tenant identified by a unique, case-normalised email. It owns
// zero or more campaigns.
type Account struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	// Placeholder marks accounts provisioned by an import rather than by
	// registration. Their owners are expected to reset the password.
	Placeholder bool
	CreatedAt   time.Time
}

// NormalizeEmail trims and lower-cases an email so it can be used as the
// account lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UsernameFromEmail derives a username from the local part of an email.
func UsernameFromEmail(email string) string {
	email = NormalizeEmail(email)
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
