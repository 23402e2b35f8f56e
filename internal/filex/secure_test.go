package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("owner/group/other permission bits are not supported on windows")
	}
}

func TestEnsureSecureFile_CreatesOwnerOnlyFile(t *testing.T) {
	skipOnWindows(t)
	path := filepath.Join(t.TempDir(), "users.txt")

	created, err := EnsureSecureFile(path)
	require.NoError(t, err)
	assert.True(t, created)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fi.Size())
	assert.Equal(t, SecureFileMode, fi.Mode().Perm())
}

func TestEnsureSecureFile_SecondCallIsNoop(t *testing.T) {
	skipOnWindows(t)
	path := filepath.Join(t.TempDir(), "users.txt")

	_, err := EnsureSecureFile(path)
	require.NoError(t, err)
	first := PermissionSummary(path)

	created, err := EnsureSecureFile(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, PermissionSummary(path))
	assert.Equal(t, "rw-------", first)
}

func TestEnsureSecureFile_LeavesExistingContentAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nIvan Maria\n"), 0o600))

	created, err := EnsureSecureFile(path)
	require.NoError(t, err)
	assert.False(t, created)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nIvan Maria\n", string(b))
}

func TestEnsureSecureFile_MissingParentIsOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "users.txt")

	created, err := EnsureSecureFile(path)
	require.Error(t, err)
	assert.False(t, created)
	assert.ErrorIs(t, err, common.ErrOpenFile)
	assert.NotErrorIs(t, err, common.ErrPermission)
}

func TestSetSecurePermissions_TightensLooseFile(t *testing.T) {
	skipOnWindows(t)
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, os.Chmod(path, 0o677))

	require.NoError(t, SetSecurePermissions(path))
	assert.Equal(t, "rw-------", PermissionSummary(path))
}

func TestSetSecurePermissions_MissingFileIsPermissionError(t *testing.T) {
	err := SetSecurePermissions(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrPermission)
}

func TestPermissionSummary(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		mode os.FileMode
		want string
	}{
		{name: "owner only", mode: 0o600, want: "rw-------"},
		{name: "world readable", mode: 0o644, want: "rw-r--r--"},
		{name: "everything", mode: 0o777, want: "rwxrwxrwx"},
		{name: "nothing", mode: 0o000, want: "---------"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, nil, 0o600))
			require.NoError(t, os.Chmod(path, tt.mode))

			got := PermissionSummary(path)
			assert.Len(t, got, 9)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermissionSummary_NotFound(t *testing.T) {
	assert.Equal(t, SummaryNotFound, PermissionSummary(filepath.Join(t.TempDir(), "absent.txt")))
}

func TestEnsureSecureFile_ChmodFailureKeepsFile(t *testing.T) {
	orig := chmod
	t.Cleanup(func() { chmod = orig })
	chmod = func(string, os.FileMode) error { return os.ErrPermission }

	path := filepath.Join(t.TempDir(), "users.txt")
	created, err := EnsureSecureFile(path)
	assert.True(t, created)
	require.ErrorIs(t, err, common.ErrPermission)
	assert.NotErrorIs(t, err, common.ErrOpenFile)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	assert.ErrorIs(t, SetSecurePermissions(path), common.ErrPermission)
}
