package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// suggestCmd represents the suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank recently used activities",
	Long: `Rank activity paths by recent use. Each day in the lookback window is
weighted by how recent it is, so yesterday counts more than last week.

Modes:
  frequency   weight times the number of records (default)
  duration    weight times the seconds recorded

The window ends at the latest tracked day, or at the explicit --from/--to
range when given.

Examples:
  timetrace suggest
  timetrace suggest --mode duration --lookback 30 --top 10
  timetrace suggest --prefix study`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSuggest(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().String("from", "", "Inclusive start date of the window")
	suggestCmd.Flags().String("to", "", "Inclusive end date of the window")
	suggestCmd.Flags().Int("lookback", 0, "Window length in days (default from [query] suggest_lookback_days)")
	suggestCmd.Flags().Int("top", 0, "Number of suggestions (default from [query] suggest_top_n)")
	suggestCmd.Flags().String("prefix", "", "Only paths starting with this prefix")
	suggestCmd.Flags().String("mode", "", "Scoring mode: frequency or duration")
	_ = suggestCmd.RegisterFlagCompletionFunc("prefix", completeRoots)
	_ = suggestCmd.RegisterFlagCompletionFunc("mode", fixedCompletion(string(service.ScoreFrequency), string(service.ScoreDuration)))
}

func runSuggest(cmd *cobra.Command, args []string) {
	req := service.Request{Action: service.ActionActivitySuggest}
	req.From, _ = cmd.Flags().GetString("from")
	req.To, _ = cmd.Flags().GetString("to")
	req.LookbackDays, _ = cmd.Flags().GetInt("lookback")
	req.TopN, _ = cmd.Flags().GetInt("top")
	req.ActivityPrefix, _ = cmd.Flags().GetString("prefix")
	mode, _ := cmd.Flags().GetString("mode")
	req.ScoreMode = service.ScoreMode(mode)
	runQuery(cmd, req)
}
