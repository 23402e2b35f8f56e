package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		DataDir:      ".",
		UsersFile:    "users.txt",
		MessagesFile: "messages.txt",
		Hasher:       "legacy",
		LogLevel:     "info",
	}
	assert.Empty(t, cmp.Diff(want, c))
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_NoArgsUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(t))
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"data_dir":  "/from/json",
		"hasher":    "argon2id",
		"log_level": "warn",
	})

	t.Run("json over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(newFlagSet(t, "-c", path))
		require.NoError(t, err)

		assert.Equal(t, "/from/json", cfg.DataDir)
		assert.Equal(t, "argon2id", cfg.Hasher)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "users.txt", cfg.UsersFile, "fields absent from JSON keep defaults")
	})

	t.Run("flags over json", func(t *testing.T) {
		cfg, err := LoadConfig(newFlagSet(t, "--config", path, "-d", "/from/flag", "--hasher", "legacy"))
		require.NoError(t, err)

		assert.Equal(t, "/from/flag", cfg.DataDir)
		assert.Equal(t, "legacy", cfg.Hasher)
		assert.Equal(t, "warn", cfg.LogLevel, "flag left at default must not override JSON")
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing json file", args: []string{"-c", filepath.Join(dir, "absent.json")}},
		{name: "invalid json", args: []string{"-c", bad}},
		{name: "unknown hasher", args: []string{"--hasher", "md5"}},
		{name: "unknown log level", args: []string{"--log-level", "loud"}},
		{name: "same file twice", args: []string{"--users-file", "x.txt", "--messages-file", "x.txt"}},
		{name: "empty dir", args: []string{"-d", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(newFlagSet(t, tt.args...))
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_FlagSetWithoutConfigFlag(t *testing.T) {
	_, err := LoadConfig(pflag.NewFlagSet("bare", pflag.ContinueOnError))
	require.Error(t, err)
}
