package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/filter"
	"github.com/xolan/timetrace/internal/timeutil"
)

// addFilterFlags registers the predicate flags shared by the record queries.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("year", 0, "Restrict to a calendar year")
	cmd.Flags().Int("month", 0, "Restrict to a month (1-12)")
	cmd.Flags().String("from", "", "Inclusive start date (YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Inclusive end date (YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD)")
	cmd.Flags().String("remark", "", "Match activities whose remark contains this text")
	cmd.Flags().String("day-remark", "", "Match days whose remark contains this text")
	cmd.Flags().String("project", "", "Match activities whose current project name contains this text")
	cmd.Flags().StringP("root", "r", "", "Match a root project and everything under it")
	cmd.Flags().Int("exercise", 0, "Match days with this exercise flag")
	cmd.Flags().Int("status", 0, "Match days with this status")
	cmd.Flags().Bool("overnight", false, "Only days with overnight activity")
	cmd.Flags().Bool("reverse", false, "Newest first")
	cmd.Flags().IntP("limit", "n", 0, "Keep at most this many rows")
	_ = cmd.RegisterFlagCompletionFunc("root", completeRoots)
}

// readFilter builds a filter from the flags added by addFilterFlags.
// Exercise and status are only set when their flag was given.
func readFilter(cmd *cobra.Command) filter.Filter {
	var f filter.Filter
	f.Year, _ = cmd.Flags().GetInt("year")
	f.Month, _ = cmd.Flags().GetInt("month")
	f.From, _ = cmd.Flags().GetString("from")
	f.To, _ = cmd.Flags().GetString("to")
	f.Remark, _ = cmd.Flags().GetString("remark")
	f.DayRemark, _ = cmd.Flags().GetString("day-remark")
	f.Project, _ = cmd.Flags().GetString("project")
	f.Root, _ = cmd.Flags().GetString("root")
	f.Overnight, _ = cmd.Flags().GetBool("overnight")
	f.Reverse, _ = cmd.Flags().GetBool("reverse")
	f.Limit, _ = cmd.Flags().GetInt("limit")

	if cmd.Flags().Changed("exercise") {
		v, _ := cmd.Flags().GetInt("exercise")
		f.Exercise = &v
	}
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetInt("status")
		f.Status = &v
	}
	return f
}

// addPeriodFlags registers the named-period flags.
func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().String("period", "", "Named period: day, week, month, year, recent or range")
	cmd.Flags().String("arg", "", "Period argument, e.g. 2026-02-18, 2026-W07, 202602, 2026, 14 or 20260201-20260210")
	_ = cmd.RegisterFlagCompletionFunc("period", fixedCompletion(timeutil.SupportedPeriods...))
}

func readPeriod(cmd *cobra.Command) (period, arg string) {
	period, _ = cmd.Flags().GetString("period")
	arg, _ = cmd.Flags().GetString("arg")
	return period, arg
}
