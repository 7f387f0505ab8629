// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash validates password strength and then generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength requires at least eight characters with a letter and a digit.
// bcrypt ignores input past 72 bytes, so longer passwords are rejected outright.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return domainerrors.ErrPasswordTooWeak.WithDetails("must be at least 8 characters long")
	case len(password) > 72:
		return domainerrors.ErrPasswordTooWeak.WithDetails("must be at most 72 bytes long")
	case strings.TrimSpace(password) == "":
		return domainerrors.ErrPasswordTooWeak.WithDetails("must not be blank")
	case !containsAny(password, unicode.IsLetter):
		return domainerrors.ErrPasswordTooWeak.WithDetails("must contain at least one letter")
	case !containsAny(password, unicode.IsDigit):
		return domainerrors.ErrPasswordTooWeak.WithDetails("must contain at least one number")
	}

	return nil
}

func containsAny(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
