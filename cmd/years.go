package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// yearsCmd represents the years command
var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List years that contain tracked days",
	Long: `List every year that has at least one tracked day matching the filters.

Examples:
  timetrace years
  timetrace years --root study
  timetrace years --remark "algebra" --reverse`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runYears(cmd, args)
	},
}

// monthsCmd represents the months command
var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "List months that contain tracked days",
	Long: `List every year-month that has at least one tracked day matching the
filters, formatted as YYYY-MM.

Examples:
  timetrace months --year 2026
  timetrace months --root work --limit 3 --reverse`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMonths(cmd, args)
	},
}

// daysCmd represents the days command
var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List tracked days",
	Long: `List tracked days (YYYY-MM-DD) matching the filters. Days without any
activity are included unless a record filter such as --root or --remark is
given.

Examples:
  timetrace days --year 2026 --month 2
  timetrace days --from 20260201 --to 20260210
  timetrace days --day-remark "sick" --status 1`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDays(cmd, args)
	},
}

// daysDurationCmd represents the days-duration command
var daysDurationCmd = &cobra.Command{
	Use:     "days-duration",
	Aliases: []string{"dd"},
	Short:   "List tracked days with their total duration",
	Long: `List tracked days with the total time recorded on each, shortest first
(longest first with --reverse).

Examples:
  timetrace days-duration --month 2 --year 2026
  timetrace days-duration --root study --limit 5`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDaysDuration(cmd, args)
	},
}

func init() {
	for _, c := range []*cobra.Command{yearsCmd, monthsCmd, daysCmd, daysDurationCmd} {
		addFilterFlags(c)
		rootCmd.AddCommand(c)
	}
}

func runYears(cmd *cobra.Command, args []string) {
	runQuery(cmd, service.Request{Action: service.ActionYears, Filter: readFilter(cmd)})
}

func runMonths(cmd *cobra.Command, args []string) {
	runQuery(cmd, service.Request{Action: service.ActionMonths, Filter: readFilter(cmd)})
}

func runDays(cmd *cobra.Command, args []string) {
	runQuery(cmd, service.Request{Action: service.ActionDays, Filter: readFilter(cmd)})
}

func runDaysDuration(cmd *cobra.Command, args []string) {
	runQuery(cmd, service.Request{Action: service.ActionDaysDuration, Filter: readFilter(cmd)})
}
