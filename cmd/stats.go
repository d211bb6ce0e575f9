package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// daysStatsCmd represents the days-stats command
var daysStatsCmd = &cobra.Command{
	Use:     "days-stats",
	Aliases: []string{"stats"},
	Short:   "Show statistics over daily totals",
	Long: `Compute descriptive statistics over the per-day totals of every tracked day
in scope: count, total, mean, median, variance, standard deviation, median
absolute deviation, min, max, percentiles and IQR. Days with no matching time
count as zero.

The scope is the filter flags, or a named period when --period is given.
--limit and --reverse are ignored so the population is never truncated.

Examples:
  timetrace days-stats --year 2026
  timetrace days-stats --period week --arg 2026-W07
  timetrace days-stats --period recent --arg 30 --root study --top 5`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDaysStats(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(daysStatsCmd)
	addFilterFlags(daysStatsCmd)
	addPeriodFlags(daysStatsCmd)
	daysStatsCmd.Flags().Int("top", 0, "Also list the N longest days (default from [query] stats_top_n)")
}

func runDaysStats(cmd *cobra.Command, args []string) {
	period, arg := readPeriod(cmd)
	top, _ := cmd.Flags().GetInt("top")
	runQuery(cmd, service.Request{
		Action:    service.ActionDaysStats,
		Filter:    readFilter(cmd),
		Period:    period,
		PeriodArg: arg,
		TopN:      top,
	})
}
