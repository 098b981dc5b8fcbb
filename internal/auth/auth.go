// Package auth abstracts how account and admin passwords are stored and
// checked. The plain scheme keeps the historical plaintext data files
// readable; bcrypt is the salted-hash option for new deployments.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported scheme names, as they appear in the config file.
const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// Verifier turns a password into its stored form and checks a candidate
// password against a stored form.
type Verifier interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// ForScheme returns the Verifier for a config scheme name.
func ForScheme(scheme string) (Verifier, error) {
	switch scheme {
	case SchemePlain, "":
		return Plain{}, nil
	case SchemeBcrypt:
		return NewBcrypt(), nil
	default:
		return nil, fmt.Errorf("unknown auth scheme %q", scheme)
	}
}

// Plain stores passwords verbatim and compares with string equality. This
// matches the legacy data files; it offers no protection if the admins or
// accounts document leaks.
type Plain struct{}

// Hash returns the password unchanged.
func (Plain) Hash(password string) (string, error) { return password, nil }

// Verify compares with exact string equality.
func (Plain) Verify(password, stored string) bool { return password == stored }

// Bcrypt stores salted bcrypt hashes.
type Bcrypt struct {
	Cost int
}

// NewBcrypt returns a Bcrypt verifier at cost 14.
func NewBcrypt() Bcrypt { return Bcrypt{Cost: 14} }

// Hash generates a salted hash of the password.
func (b Bcrypt) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(out), nil
}

// Verify compares a candidate password against a stored hash.
func (b Bcrypt) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
