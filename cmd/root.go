package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timetrace",
	Short: "Query and aggregate a time-tracking store",
	Long: `timetrace answers analytical questions about a time-tracking store:
which days were tracked, how much time went where, how the daily totals are
distributed, and which activities you have favoured recently.

The store is a SQLite database written by the ingestion tool; timetrace only
reads it.

Usage:
  timetrace years                               List tracked years
  timetrace months --year 2026                  List tracked months
  timetrace days --root study --month 2         List days with time on study
  timetrace days-duration --from 202602 --to 202602
  timetrace days-stats --period week --arg 2026-W07
  timetrace search --remark "algebra"           Find records by remark
  timetrace suggest --mode duration             Rank recently used activities
  timetrace chart --root study --lookback 30    Daily series for a root
  timetrace tree --period month --depth 2       Project tree with totals
  timetrace mapping                             Current project paths
  timetrace tui                                 Interactive dashboard

Dates accept YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD. Add --format json to any
query for the semantic JSON envelope.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: user config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite store (overrides [database] path)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text or json (overrides [output] mode)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("text", "json", "semantic_json"))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", fixedCompletion("debug", "info", "warn", "error"))
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timetrace version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
	versionInfo = [3]string{version, commit, date}
}

// Execute runs the root command with args
func Execute(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
