package config

import "github.com/spf13/pflag"

// Flag names shared by BindFlags and parseFlags.
const (
	FlagConfig       = "config"
	FlagDataDir      = "dir"
	FlagUsersFile    = "users-file"
	FlagMessagesFile = "messages-file"
	FlagHasher       = "hasher"
	FlagLogLevel     = "log-level"
)

// BindFlags defines the configuration flags on fs, using the built-in defaults
// as flag defaults so --help shows them.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.StringP(FlagDataDir, "d", d.DataDir, "directory holding the record files")
	fs.String(FlagUsersFile, d.UsersFile, "credential file name")
	fs.String(FlagMessagesFile, d.MessagesFile, "message file name")
	fs.String(FlagHasher, d.Hasher, "password digest for new credentials: legacy or argon2id")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn or error")
}

// parseFlags copies every flag the user actually set into cfg. Flags left at
// their defaults do not override values loaded from JSON.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	targets := map[string]*string{
		FlagDataDir:      &cfg.DataDir,
		FlagUsersFile:    &cfg.UsersFile,
		FlagMessagesFile: &cfg.MessagesFile,
		FlagHasher:       &cfg.Hasher,
		FlagLogLevel:     &cfg.LogLevel,
	}

	for name, dst := range targets {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}
