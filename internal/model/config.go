package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig holds the persistence settings.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file.
	Path string `mapstructure:"path" yaml:"path"`
}

// ReminderConfig holds the reminder policy knobs.
type ReminderConfig struct {
	// RejectPastDue makes creating a reminder with a due time in the past
	// a validation error. When false (the default), past-due reminders are
	// accepted and become due immediately.
	RejectPastDue bool `mapstructure:"reject_past_due" yaml:"reject_past_due"`

	// PruneFired deletes reminders right after they have been reported and
	// marked fired. When false, fired reminders are retained until
	// explicitly removed.
	PruneFired bool `mapstructure:"prune_fired" yaml:"prune_fired"`
}

// HistoryConfig holds the command audit log settings.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Limit   int  `mapstructure:"limit" yaml:"limit"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database  DatabaseConfig `mapstructure:"database" yaml:"database"`
	Reminders ReminderConfig `mapstructure:"reminders" yaml:"reminders"`
	History   HistoryConfig  `mapstructure:"history" yaml:"history"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/aide/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "aide", "config.yaml")
}

// DefaultDatabasePath returns the default location of the SQLite database,
// located at ~/.local/share/aide/aide.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "aide.db")
	}
	return filepath.Join(home, ".local", "share", "aide", "aide.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path: DefaultDatabasePath(),
		},
		Reminders: ReminderConfig{
			RejectPastDue: false,
			PruneFired:    false,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   200,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("reminders.reject_past_due", false)
	v.SetDefault("reminders.prune_fired", false)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.limit", 200)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("reminders", cfg.Reminders)
	v.Set("history", cfg.History)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
