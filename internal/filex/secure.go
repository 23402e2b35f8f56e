package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
)

// SecureFileMode is owner read/write only.
const SecureFileMode os.FileMode = 0o600

// chmod is replaced in tests to simulate filesystems that reject it.
var chmod = os.Chmod

// Sentinel values returned by PermissionSummary instead of a mode string.
const (
	SummaryNotFound = "not found"
	SummaryUnknown  = "unknown"
)

// EnsureSecureFile creates an empty file at path if nothing exists there yet and
// restricts it to SecureFileMode. An existing file is left as it is, so calling
// it twice is a no-op the second time.
//
// created reports whether the file was created by this call. A returned error
// wrapping common.ErrPermission is advisory: the file exists and may be used,
// only the chmod failed. Any other error wraps common.ErrOpenFile.
func EnsureSecureFile(path string) (created bool, err error) {
	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w: %w", path, common.ErrOpenFile, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, SecureFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create %s: %w: %w", path, common.ErrOpenFile, err)
	}
	if err := f.Close(); err != nil {
		return true, fmt.Errorf("close %s: %w: %w", path, common.ErrOpenFile, err)
	}

	return true, SetSecurePermissions(path)
}

// SetSecurePermissions replaces the permission bits of path with
// SecureFileMode, dropping any group and other access. On platforms without an
// owner/group/other model the chmod may fail or be partial; the error then
// wraps common.ErrPermission and callers are expected to warn and carry on.
func SetSecurePermissions(path string) error {
	if err := chmod(path, SecureFileMode); err != nil {
		return fmt.Errorf("chmod %s: %w: %w", path, common.ErrPermission, err)
	}
	return nil
}

// PermissionSummary renders the permission bits of path as a 9-character
// rwxrwxrwx string (owner, group, other). It returns SummaryNotFound when
// nothing exists at path and SummaryUnknown when the bits cannot be queried.
func PermissionSummary(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return SummaryNotFound
		}
		return SummaryUnknown
	}

	// FileMode.String prefixes the type letter, e.g. "-rw-------".
	s := fi.Mode().Perm().String()
	return s[len(s)-9:]
}
