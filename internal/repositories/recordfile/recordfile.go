// Package recordfile holds the open/rewrite plumbing shared by the
// single-record file repositories. Every file it touches is first made to
// exist with owner-only permissions via filex.
package recordfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/filex"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// Swapped in tests to simulate filesystems that reject chmod.
var (
	ensureSecureFile     = filex.EnsureSecureFile
	setSecurePermissions = filex.SetSecurePermissions
)

// Ensure makes sure path exists with secure permissions. Permission failures
// are logged and swallowed; only failures that leave no usable file are
// returned.
func Ensure(ctx context.Context, log logging.Logger, path string) error {
	created, err := ensureSecureFile(path)
	if created {
		log.Info(ctx, "created secure file", "path", path)
	}
	if err != nil {
		if errors.Is(err, common.ErrPermission) {
			log.Warn(ctx, "could not set permissions", "path", path, "err", err)
			return nil
		}
		return err
	}
	return nil
}

// Read ensures path and hands an open reader to decode. The file is closed
// before Read returns.
func Read[T any](ctx context.Context, log logging.Logger, path string, decode func(io.Reader) (T, bool, error)) (T, bool, error) {
	var zero T

	if err := Ensure(ctx, log, path); err != nil {
		return zero, false, err
	}

	f, err := os.Open(path)
	if err != nil {
		return zero, false, fmt.Errorf("open %s: %w: %w", path, common.ErrOpenFile, err)
	}
	defer f.Close()

	v, ok, err := decode(f)
	if err != nil {
		return zero, false, fmt.Errorf("%s: %w", path, err)
	}
	return v, ok, nil
}

// Rewrite ensures path, truncates it, lets encode write the new contents and
// re-applies secure permissions afterwards.
func Rewrite(ctx context.Context, log logging.Logger, path string, encode func(io.Writer) error) error {
	if err := Ensure(ctx, log, path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filex.SecureFileMode)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w: %w", path, common.ErrOpenFile, err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := setSecurePermissions(path); err != nil {
		log.Warn(ctx, "could not set permissions", "path", path, "err", err)
	}
	return nil
}
