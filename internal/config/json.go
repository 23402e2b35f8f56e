package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	UsersFile    string `json:"users_file"`
	MessagesFile string `json:"messages_file"`
	Hasher       string `json:"hasher"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file at path. An empty path
// means no file was requested.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.UsersFile, jc.UsersFile)
	overlay(&cfg.MessagesFile, jc.MessagesFile)
	overlay(&cfg.Hasher, jc.Hasher)
	overlay(&cfg.LogLevel, jc.LogLevel)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
