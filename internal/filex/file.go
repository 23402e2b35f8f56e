// Package filex holds the small filesystem helpers the record stores rely on:
// data directory creation, owner-only file hardening and permission reporting.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir resolves dir against the current working directory (unless it
// is already absolute), creates it with owner-only access if it is missing and
// returns the absolute path.
func EnsureDataDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
