package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timetrace/internal/service"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the project tree with accumulated durations",
	Long: `Fold the recorded project paths into a tree. Each node's duration
includes everything recorded under it.

Paths are taken from the snapshot stored on each record, so renaming a
project later does not move its history.

Examples:
  timetrace tree
  timetrace tree --period month --depth 2
  timetrace tree --root study --from 2026 --to 2026`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTree(cmd, args)
	},
}

// mappingCmd represents the mapping command
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "List current project names and paths",
	Long: `List every project in the live project table with its current full path.
This reflects renames, unlike the path snapshots used by tree and chart.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMapping(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(mappingCmd)
	addFilterFlags(treeCmd)
	addPeriodFlags(treeCmd)
	treeCmd.Flags().Int("depth", 0, "Maximum depth, -1 for unlimited (default from [query] tree_max_depth)")
}

func runTree(cmd *cobra.Command, args []string) {
	period, arg := readPeriod(cmd)
	depth, _ := cmd.Flags().GetInt("depth")
	runQuery(cmd, service.Request{
		Action:    service.ActionTree,
		Filter:    readFilter(cmd),
		Period:    period,
		PeriodArg: arg,
		MaxDepth:  depth,
	})
}

func runMapping(cmd *cobra.Command, args []string) {
	runQuery(cmd, service.Request{Action: service.ActionMappingNames})
}
