package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionInfo = [3]string{"dev", "none", "unknown"}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(deps.Stdout, "timetrace version %s\ncommit: %s\nbuilt: %s\n",
			versionInfo[0], versionInfo[1], versionInfo[2])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
