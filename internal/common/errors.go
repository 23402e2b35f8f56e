// Package common defines sentinel errors shared by the record stores, the
// services on top of them and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// File-level errors.
	ErrOpenFile   = errors.New("could not open file")
	ErrPermission = errors.New("could not set permissions")

	// Record-level errors.
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidRecord   = errors.New("invalid record")
)
