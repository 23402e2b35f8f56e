// Package users persists the single user credential.
//
// # File format
//
// One line holding three space-separated tokens:
//
//	name login password_digest
//
// The digest is whatever cryptox.Hasher produced when the credential was
// built; the plaintext password is never written. Saving truncates the file,
// so the store never holds more than one record.
//
// # Load results
//
//   - no tokens at all          → ok == false, err == nil
//   - exactly three tokens      → the record
//   - any other token count     → common.ErrMalformedRecord
//   - file cannot be created or opened → common.ErrOpenFile
package users
