package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/osutil"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for timetrace.

Shows the configuration file location, whether it exists, and all current
settings. Values are merged from the config file, TIMETRACE_* environment
variables and the built-in defaults.

Examples:
  timetrace config                 Show all current settings
  timetrace config init            Write a config file with the defaults
  timetrace config path            Print the config file location

Configuration file location:
  ~/.config/timetrace/config.toml  Linux
  %APPDATA%\timetrace\config.toml  Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runConfigPath(cmd)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runConfigInit(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configInitCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

// resolveConfigPath returns --config or the default location, reporting
// failures itself.
func resolveConfigPath(cmd *cobra.Command) (string, bool) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, true
	}
	p, err := deps.ConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(exitFailure)
		return "", false
	}
	return p, true
}

// showConfig displays the current effective configuration
func showConfig(cmd *cobra.Command) {
	cfg, configPath, ok := loadConfig(cmd)
	if !ok {
		return
	}
	fileExists, _ := osutil.FileExists(configPath)

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for timetrace")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:          %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:               File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:               No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = "(default, next to the config file)"
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Database:             %s\n", dbPath)
	_, _ = fmt.Fprintf(deps.Stdout, "Output Mode:          %s\n", cfg.Output.Mode)
	_, _ = fmt.Fprintf(deps.Stdout, "Log Level:            %s\n", cfg.Log.Level)
	_, _ = fmt.Fprintf(deps.Stdout, "TUI Theme:            %s\n", cfg.TUI.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "Chart Lookback:       %d days\n", cfg.Query.ChartLookbackDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Recent Period:        %d days\n", cfg.Query.RecentDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Suggest Lookback:     %d days\n", cfg.Query.SuggestLookbackDays)
	_, _ = fmt.Fprintf(deps.Stdout, "Suggest Top N:        %d\n", cfg.Query.SuggestTopN)
	_, _ = fmt.Fprintf(deps.Stdout, "Suggest Score Mode:   %s\n", cfg.Query.SuggestScoreMode)
	if cfg.Query.TreeMaxDepth < 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Tree Max Depth:       unlimited")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Tree Max Depth:       %d\n", cfg.Query.TreeMaxDepth)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Stats Top N:          %d\n", cfg.Query.StatsTopN)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'timetrace config init' to write these defaults to the file above.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

func runConfigPath(cmd *cobra.Command) {
	configPath, ok := resolveConfigPath(cmd)
	if !ok {
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, configPath)
}

func runConfigInit(cmd *cobra.Command) {
	configPath, ok := resolveConfigPath(cmd)
	if !ok {
		return
	}

	force, _ := cmd.Flags().GetBool("force")
	exists, err := osutil.FileExists(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to check config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(exitFailure)
		return
	}
	if exists && !force {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists: %s\n", configPath)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --force to overwrite it")
		deps.Exit(exitFailure)
		return
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(exitFailure)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Wrote default configuration to %s\n", configPath)
}
