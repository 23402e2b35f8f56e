// Package config loads runtime configuration for the recordkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / --config.
//  3. Command-line flags the user set explicitly, which override earlier values.
//
// Supported flags
//
//	-c, --config string          JSON config file
//	-d, --dir string             directory holding the record files (default ".")
//	    --users-file string      credential file name (default "users.txt")
//	    --messages-file string   message file name (default "messages.txt")
//	    --hasher string          legacy | argon2id (default "legacy")
//	    --log-level string       debug | info | warn | error (default "info")
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/ivan/.recordkeeper",
//	  "users_file": "users.txt",
//	  "messages_file": "messages.txt",
//	  "hasher": "argon2id",
//	  "log_level": "warn"
//	}
//
// Note: This package does not read environment variables.
package config
