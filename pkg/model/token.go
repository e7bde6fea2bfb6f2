package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TokenPurpose is the closed set of flows an email token can belong to.
type TokenPurpose string

const (
	PurposeMagicLink     TokenPurpose = "magic_link"
	PurposePasswordReset TokenPurpose = "password_reset"
	PurposeEmailVerify   TokenPurpose = "email_verify"
)

// IsValid reports whether p is a known token purpose.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case PurposeMagicLink, PurposePasswordReset, PurposeEmailVerify:
		return true
	}
	return false
}

// RegistrationProfile carries the user data collected at registration time.
// It is only present on email-verify tokens; the account is created from it
// once the password has been chosen.
type RegistrationProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EmailToken is a single pending email-mediated operation. The record is
// immutable once stored; the only mutations are consumption (delete) and
// time-based expiry.
type EmailToken struct {
	Token     string               `json:"token"`
	Email     string               `json:"email"`
	Purpose   TokenPurpose         `json:"purpose"`
	CreatedAt time.Time            `json:"created_at"`
	Profile   *RegistrationProfile `json:"profile,omitempty"`
}

func (t EmailToken) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}

// Age returns how long ago the token was created.
func (t *EmailToken) Age(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// RefreshToken is a persisted refresh-token hash bound to a user session.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Value     string    `json:"value" db:"value"` // sha256 hex of the issued token
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
