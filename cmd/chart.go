package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Daily time series, optionally for one root project",
	Long: `Produce a gap-free daily series of tracked time. Days with nothing
recorded appear as zero.

The range is picked in this order: --from/--to, --period, --year/--month,
and finally the last --lookback days ending today.

Examples:
  timetrace chart
  timetrace chart --root study --lookback 30
  timetrace chart --period month --arg 202602 --format json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runChart(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addPeriodFlags(chartCmd)
	chartCmd.Flags().StringP("root", "r", "", "Root project to chart (default: all time)")
	_ = chartCmd.RegisterFlagCompletionFunc("root", completeRoots)
	chartCmd.Flags().Int("year", 0, "Chart a calendar year")
	chartCmd.Flags().Int("month", 0, "Chart a month (1-12, with --year)")
	chartCmd.Flags().String("from", "", "Inclusive start date")
	chartCmd.Flags().String("to", "", "Inclusive end date")
	chartCmd.Flags().Int("lookback", 0, "Days to chart when no range is given (default from [query] chart_lookback_days)")
}

func runChart(cmd *cobra.Command, args []string) {
	period, arg := readPeriod(cmd)
	req := service.Request{Action: service.ActionReportChart, Period: period, PeriodArg: arg}
	req.Root, _ = cmd.Flags().GetString("root")
	req.Year, _ = cmd.Flags().GetInt("year")
	req.Month, _ = cmd.Flags().GetInt("month")
	req.From, _ = cmd.Flags().GetString("from")
	req.To, _ = cmd.Flags().GetString("to")
	req.LookbackDays, _ = cmd.Flags().GetInt("lookback")
	runQuery(cmd, req)
}
