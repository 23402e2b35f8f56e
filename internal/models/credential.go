// Package models defines the credential and message records kept on disk.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/cryptox"
)

// Credential is a single user record. Only the digest of the password is kept.
type Credential struct {
	Name           string
	Login          string
	PasswordDigest string
}

// NewCredential derives the password digest with h and returns the record.
// The plaintext password is not retained.
func NewCredential(name, login, password string, h cryptox.Hasher) (Credential, error) {
	digest, err := h.Hash(password)
	if err != nil {
		return Credential{}, fmt.Errorf("hash password: %w", err)
	}
	return Credential{Name: name, Login: login, PasswordDigest: digest}, nil
}

// Validate checks that every field can be stored as one whitespace-free token.
func (c Credential) Validate() error {
	fields := []struct{ name, value string }{
		{"name", c.Name},
		{"login", c.Login},
		{"password digest", c.PasswordDigest},
	}
	for _, f := range fields {
		if err := validateToken(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// String renders the record for display. Only a short digest preview is shown.
func (c Credential) String() string {
	return fmt.Sprintf("%s %s [password hash: %s]", c.Name, c.Login, cryptox.DigestPreview(c.PasswordDigest))
}

func validateToken(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is empty", common.ErrInvalidRecord, field)
	}
	if strings.ContainsFunc(v, isSpace) {
		return fmt.Errorf("%w: %s %q contains whitespace", common.ErrInvalidRecord, field, v)
	}
	return nil
}
