// Package cryptox derives the password digests stored in credential records.
//
// Two Hasher implementations are provided:
//
//   - LegacyHasher: a fast, unsalted FNV-1a 64-bit digest rendered as a decimal
//     string. It is deterministic and cheap to brute force; it exists to keep
//     the on-disk users file format and must not be mistaken for protection.
//   - Argon2Hasher: a salted argon2id digest in the usual
//     $argon2id$v=19$m=...,t=...,p=...$salt$key encoding.
//
// Both produce a single whitespace-free token so they fit the users file.
package cryptox

import (
	"fmt"
	"strings"
)

// Hasher derives and checks password digests.
type Hasher interface {
	// Hash derives a digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password produces digest.
	Verify(password, digest string) (bool, error)
}

// Known hasher names, as used in configuration.
const (
	HasherLegacy   = "legacy"
	HasherArgon2id = "argon2id"
)

// NewHasher returns the Hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case HasherLegacy:
		return LegacyHasher{}, nil
	case HasherArgon2id:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}

// PreviewLen is how many leading digest characters DigestPreview keeps.
const PreviewLen = 8

// DigestPreview returns the first PreviewLen characters of digest followed by
// "...". Shorter digests are kept whole.
func DigestPreview(digest string) string {
	if r := []rune(digest); len(r) > PreviewLen {
		digest = string(r[:PreviewLen])
	}
	return digest + "..."
}
