package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search time records by remark or project",
	Long: `Find individual time records. At least one of a keyword, --remark,
--day-remark, --project or --root is required.

The keyword is matched literally as a substring of the activity remark, so
characters such as % and _ have no special meaning.

Examples:
  timetrace search algebra
  timetrace search "100%" --year 2026
  timetrace search --root study --limit 10 --reverse`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addFilterFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	f := readFilter(cmd)
	if len(args) == 1 && f.Remark == "" {
		f.Remark = args[0]
	}
	runQuery(cmd, service.Request{Action: service.ActionSearch, Filter: f})
}
