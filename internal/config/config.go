package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/recordkeeper/internal/cryptox"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/messages"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/users"
)

// Config holds runtime settings for the recordkeeper CLI.
//
// Fields:
//   - DataDir: directory holding the record files, relative to the working
//     directory unless absolute.
//   - UsersFile / MessagesFile: file names inside DataDir.
//   - Hasher: password digest used for new credentials ("legacy" or "argon2id").
//   - LogLevel: slog level name for diagnostics on stderr.
type Config struct {
	DataDir      string
	UsersFile    string
	MessagesFile string
	Hasher       string
	LogLevel     string
}

// LoadDefaults populates c with defaults: users.txt and messages.txt in the
// working directory.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.UsersFile = users.DefaultFileName
	c.MessagesFile = messages.DefaultFileName
	c.Hasher = cryptox.HasherLegacy
	c.LogLevel = "info"
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	if c.UsersFile == "" || c.MessagesFile == "" {
		return fmt.Errorf("record file names must not be empty")
	}
	if c.UsersFile == c.MessagesFile {
		return fmt.Errorf("users and messages files must differ, both are %q", c.UsersFile)
	}
	if _, err := cryptox.NewHasher(c.Hasher); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file named by the config flag (if any) and finally from flags the
// user set explicitly. Later sources take precedence over earlier ones.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
