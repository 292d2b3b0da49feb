// Package config loads the run-harness configuration: where to persist run
// history, how to reach Redis for live event fan-out, and where generated
// PDF reports and watched program directories live.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configures the Grin run harness. The core lexer/parser/interpreter
// take no configuration of their own; everything here is ambient to the
// service wrapped around them.
type Config struct {
	RedisAddr      string        `yaml:"redis_addr"`
	ChannelPrefix  string        `yaml:"channel_prefix"`
	SQLitePath     string        `yaml:"sqlite_path"`
	ReportDir      string        `yaml:"report_dir"`
	ListenAddr     string        `yaml:"listen_addr"`
	WatchDir       string        `yaml:"watch_dir"`
	WatchDebounce  time.Duration `yaml:"watch_debounce"`
}

// Default returns the built-in configuration used when no config file is
// present.
func Default() Config {
	return Config{
		RedisAddr:     "localhost:6379",
		ChannelPrefix: "grin:run",
		SQLitePath:    "grin-runs.db",
		ReportDir:     "reports",
		ListenAddr:    ":8089",
		WatchDir:      "programs",
		WatchDebounce: 300 * time.Millisecond,
	}
}

// Load reads YAML configuration from path, overlaying it onto Default().
// A missing file is not an error: Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
