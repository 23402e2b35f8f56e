package recordfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

func bufLogger() (logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return logging.NewSlogLogger(slog.New(h)), &buf
}

func TestEnsure_LogsCreationOnce(t *testing.T) {
	log, buf := bufLogger()
	path := filepath.Join(t.TempDir(), "users.txt")
	ctx := context.Background()

	require.NoError(t, Ensure(ctx, log, path))
	require.NoError(t, Ensure(ctx, log, path))

	assert.Equal(t, 1, strings.Count(buf.String(), "created secure file"))
}

func TestEnsure_OpenErrorReturned(t *testing.T) {
	log, _ := bufLogger()
	err := Ensure(context.Background(), log, filepath.Join(t.TempDir(), "a", "b.txt"))
	assert.ErrorIs(t, err, common.ErrOpenFile)
}

func TestRead_DecodeErrorCarriesPath(t *testing.T) {
	log, _ := bufLogger()
	path := filepath.Join(t.TempDir(), "users.txt")

	_, ok, err := Read(context.Background(), log, path, func(io.Reader) (int, bool, error) {
		return 0, false, common.ErrMalformedRecord
	})
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, common.ErrMalformedRecord)
	assert.Contains(t, err.Error(), path)
}

func TestRewrite_Truncates(t *testing.T) {
	log, _ := bufLogger()
	path := filepath.Join(t.TempDir(), "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte("a rather long previous content\n"), 0o600))

	err := Rewrite(context.Background(), log, path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new\n")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(b))
}

func TestRewrite_EncodeErrorReturned(t *testing.T) {
	log, _ := bufLogger()
	path := filepath.Join(t.TempDir(), "messages.txt")
	boom := errors.New("boom")

	err := Rewrite(context.Background(), log, path, func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func failingChmod(t *testing.T) {
	t.Helper()
	origEnsure, origSet := ensureSecureFile, setSecurePermissions
	t.Cleanup(func() {
		ensureSecureFile, setSecurePermissions = origEnsure, origSet
	})

	chmodErr := fmt.Errorf("chmod: %w: %w", common.ErrPermission, os.ErrPermission)
	ensureSecureFile = func(path string) (bool, error) {
		created, err := origEnsure(path)
		if err != nil {
			return created, err
		}
		return created, chmodErr
	}
	setSecurePermissions = func(string) error { return chmodErr }
}

func TestEnsure_PermissionFailureIsWarning(t *testing.T) {
	failingChmod(t)
	log, buf := bufLogger()
	path := filepath.Join(t.TempDir(), "users.txt")

	require.NoError(t, Ensure(context.Background(), log, path))

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "could not set permissions")
}

func TestRewrite_PermissionFailureStillWrites(t *testing.T) {
	failingChmod(t)
	log, buf := bufLogger()
	path := filepath.Join(t.TempDir(), "messages.txt")

	err := Rewrite(context.Background(), log, path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hi\na b\n")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\na b\n", string(b))
	// once from Ensure, once after the write
	assert.Equal(t, 2, strings.Count(buf.String(), "could not set permissions"))
}
