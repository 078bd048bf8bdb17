// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultTaskFile is the well-known snapshot filename, resolved against
// the working directory unless overridden with an absolute path.
const DefaultTaskFile = "tasks.json"

// Config holds the full configuration for the CLI.
type Config struct {
	// TaskFile is the path of the persisted snapshot.
	TaskFile string `toml:"task_file"`

	// Owner is the list owner's display name.
	Owner string `toml:"owner"`

	// Verbose enables debug logging on stderr.
	Verbose bool `toml:"verbose"`
}

// Load builds the configuration by layering, lowest precedence first:
// defaults, the user config file, the project config file, environment
// variables, and CLI flags registered on fs.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	userConfigFile := findUserConfigFile()
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	projectConfigFile := findProjectConfigFile()
	if projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.TaskFile = DefaultTaskFile
	cfg.Owner = defaultOwner()
}

// defaultOwner resolves the invoking user's identity.
func defaultOwner() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "user"
}

// findUserConfigFile looks for a user-level config file under the
// OS-specific config directory.
func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "todo", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	path := ".todo.toml"
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.TaskFile = v
	}
	if v := os.Getenv("TODO_OWNER"); v != "" {
		cfg.Owner = v
	}
	if v := os.Getenv("TODO_VERBOSE"); v == "1" || v == "true" {
		cfg.Verbose = true
	}
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.TaskFile, "file", cfg.TaskFile, "Task snapshot file")
	fs.StringVar(&cfg.Owner, "owner", cfg.Owner, "List owner name")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	return fs.Parse(args)
}
