package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/config"
	"github.com/xolan/timetrace/internal/osutil"
	"github.com/xolan/timetrace/internal/tui"
	"github.com/xolan/timetrace/internal/tui/views"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive dashboard for timetrace.

Views available:
  - Stats: Distribution of daily totals for a period
  - Chart: Daily bar chart, for all roots or one root
  - Tree: Project tree with accumulated durations
  - Suggest: Recently used activities
  - Config: Current settings and theme selection

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-5: Jump to specific view
  - t/w/m/y/e: Day, week, month, year or recent period
  - h/l or arrows: Previous/next period
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// tuiRunner starts the dashboard; tests replace it.
var tuiRunner = tui.Run

// runTUI opens the engine and runs the dashboard
func runTUI(cmd *cobra.Command) {
	s := openSession(cmd)
	if s == nil {
		return
	}
	defer s.close()

	configPath, ok := resolveConfigPath(cmd)
	if !ok {
		return
	}
	exists, _ := osutil.FileExists(configPath)

	opts := tui.Options{
		Config: views.ConfigInfo{Config: s.cfg, Path: configPath, Exists: exists},
		Now:    deps.Now,
		SaveTheme: func(theme string) error {
			cfg := s.cfg
			cfg.TUI.Theme = theme
			return config.Write(configPath, cfg)
		},
	}
	if err := tuiRunner(s.engine, opts); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to run the terminal UI")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(exitFailure)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI(cmd)
		return true
	}
	return false
}
