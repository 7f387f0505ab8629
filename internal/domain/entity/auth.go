package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail is the only credential provider: email and password.
const ProviderEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID           uuid.UUID // The unique ID for this authentication record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Provider     string    // Credential provider, currently always "email".
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // When the credential was created.
}
