// Package config loads timetrace settings from a TOML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/osutil"
)

const (
	// AppName is the application name used for the config directory
	AppName = "timetrace"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DatabaseFile is the default store file name inside the config directory
	DatabaseFile = "timetrace.db"
	// EnvPrefix prefixes every environment override, e.g. TIMETRACE_DATABASE_PATH
	EnvPrefix = "TIMETRACE"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `toml:"database" mapstructure:"database"`
	Output   OutputConfig   `toml:"output" mapstructure:"output"`
	Query    QueryConfig    `toml:"query" mapstructure:"query"`
	Log      LogConfig      `toml:"log" mapstructure:"log"`
	TUI      TUIConfig      `toml:"tui" mapstructure:"tui"`
}

// DatabaseConfig locates the SQLite store written by the ingestion tool.
type DatabaseConfig struct {
	// Path to the store; empty means <config dir>/timetrace/timetrace.db
	Path string `toml:"path" mapstructure:"path"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Mode is "text" or "semantic_json" ("json" is accepted as an alias)
	Mode string `toml:"mode" mapstructure:"mode"`
}

// QueryConfig holds the fallbacks for query knobs left unset on a request.
type QueryConfig struct {
	ChartLookbackDays   int    `toml:"chart_lookback_days" mapstructure:"chart_lookback_days"`
	RecentDays          int    `toml:"recent_days" mapstructure:"recent_days"`
	SuggestLookbackDays int    `toml:"suggest_lookback_days" mapstructure:"suggest_lookback_days"`
	SuggestTopN         int    `toml:"suggest_top_n" mapstructure:"suggest_top_n"`
	SuggestScoreMode    string `toml:"suggest_score_mode" mapstructure:"suggest_score_mode"`
	TreeMaxDepth        int    `toml:"tree_max_depth" mapstructure:"tree_max_depth"`
	StatsTopN           int    `toml:"stats_top_n" mapstructure:"stats_top_n"`
}

// LogConfig controls the slog level.
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
}

// TUIConfig controls the dashboard.
type TUIConfig struct {
	// Theme is a bubbletint theme id, e.g. "dracula"
	Theme string `toml:"theme" mapstructure:"theme"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Mode: "text"},
		Query: QueryConfig{
			ChartLookbackDays:   7,
			RecentDays:          7,
			SuggestLookbackDays: 10,
			SuggestTopN:         5,
			SuggestScoreMode:    "frequency",
			TreeMaxDepth:        -1,
			StatsTopN:           0,
		},
		Log: LogConfig{Level: "warn"},
		TUI: TUIConfig{Theme: "dracula"},
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// DefaultDatabasePath returns the store path used when none is configured.
func DefaultDatabasePath() (string, error) {
	appDir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, DatabaseFile), nil
}

func appDir() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file is an error; see LoadOrDefault.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadOrDefault loads path if it exists and falls back to the defaults (plus
// environment overrides) otherwise.
func LoadOrDefault(path string) (Config, error) {
	exists, err := osutil.FileExists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to access config file %s: %w", path, err)
	}
	if !exists {
		return finish(DefaultConfig())
	}
	return Load(path)
}

func finish(cfg Config) (Config, error) {
	cfg, err := applyEnv(cfg)
	if err != nil {
		return Config{}, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv layers TIMETRACE_* variables over cfg. Every key is registered as
// a viper default so AutomaticEnv can see it.
func applyEnv(cfg Config) (Config, error) {
	v := viper.New()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	// Database
	v.SetDefault("database.path", cfg.Database.Path)

	// Output
	v.SetDefault("output.mode", cfg.Output.Mode)

	// Query
	v.SetDefault("query.chart_lookback_days", cfg.Query.ChartLookbackDays)
	v.SetDefault("query.recent_days", cfg.Query.RecentDays)
	v.SetDefault("query.suggest_lookback_days", cfg.Query.SuggestLookbackDays)
	v.SetDefault("query.suggest_top_n", cfg.Query.SuggestTopN)
	v.SetDefault("query.suggest_score_mode", cfg.Query.SuggestScoreMode)
	v.SetDefault("query.tree_max_depth", cfg.Query.TreeMaxDepth)
	v.SetDefault("query.stats_top_n", cfg.Query.StatsTopN)

	// Log
	v.SetDefault("log.level", cfg.Log.Level)

	// TUI
	v.SetDefault("tui.theme", cfg.TUI.Theme)
}

// Normalize lower-cases and trims the enumerated string settings.
func (c *Config) Normalize() {
	c.Database.Path = strings.TrimSpace(c.Database.Path)
	c.Output.Mode = strings.ToLower(strings.TrimSpace(c.Output.Mode))
	if c.Output.Mode == "json" {
		c.Output.Mode = "semantic_json"
	}
	c.Query.SuggestScoreMode = strings.ToLower(strings.TrimSpace(c.Query.SuggestScoreMode))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.TUI.Theme = strings.ToLower(strings.TrimSpace(c.TUI.Theme))
}

// Validate checks every setting. Call Normalize first.
func (c Config) Validate() error {
	switch c.Output.Mode {
	case "text", "semantic_json":
	default:
		return apperr.Validationf("invalid output.mode %q: must be 'text' or 'semantic_json'", c.Output.Mode)
	}

	positive := []struct {
		key   string
		value int
	}{
		{"query.chart_lookback_days", c.Query.ChartLookbackDays},
		{"query.recent_days", c.Query.RecentDays},
		{"query.suggest_lookback_days", c.Query.SuggestLookbackDays},
		{"query.suggest_top_n", c.Query.SuggestTopN},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return apperr.Validationf("invalid %s %d: must be positive", p.key, p.value)
		}
	}
	if c.Query.StatsTopN < 0 {
		return apperr.Validationf("invalid query.stats_top_n %d: must be zero or positive", c.Query.StatsTopN)
	}
	if c.Query.TreeMaxDepth < -1 || c.Query.TreeMaxDepth == 0 {
		return apperr.Validationf("invalid query.tree_max_depth %d: use -1 for unlimited or a positive depth", c.Query.TreeMaxDepth)
	}

	switch c.Query.SuggestScoreMode {
	case "frequency", "duration":
	default:
		return apperr.Validationf("invalid query.suggest_score_mode %q: must be 'frequency' or 'duration'", c.Query.SuggestScoreMode)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DatabasePath returns the configured store path or the default one.
func (c Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	return DefaultDatabasePath()
}

// Write saves cfg to path as TOML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(sampleHeader); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

const sampleHeader = `# timetrace configuration file
#
# Every key can be overridden from the environment with the TIMETRACE_ prefix,
# e.g. TIMETRACE_DATABASE_PATH=/data/time.db or TIMETRACE_LOG_LEVEL=debug.
# database.path empty means the default store next to this file.
# output.mode: text | semantic_json
# query.suggest_score_mode: frequency | duration
# query.tree_max_depth: -1 for unlimited
# log.level: debug | info | warn | error

`
