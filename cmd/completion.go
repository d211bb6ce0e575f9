package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for timetrace.

Flag values are completed too: --format, --mode and --period offer their
keywords, and --root and --prefix offer the root projects of your store.

Usage:
  timetrace completion bash       Generate bash completion script
  timetrace completion zsh        Generate zsh completion script
  timetrace completion fish       Generate fish completion script
  timetrace completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  source <(timetrace completion bash)
  timetrace completion bash > ~/.local/share/bash-completion/completions/timetrace

Zsh:
  mkdir -p ~/.zsh/completion
  timetrace completion zsh > ~/.zsh/completion/_timetrace

Fish:
  timetrace completion fish > ~/.config/fish/completions/timetrace.fish

PowerShell:
  timetrace completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(deps.Stdout, true)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(exitFailure)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(exitFailure)
		return
	}
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeRoots offers the root project names. Any failure yields no
// candidates; completion must never print errors.
func completeRoots(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, _, ok := quietConfig(cmd)
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		var err error
		if dbPath, err = cfg.DatabasePath(); err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
	engine, release, err := deps.OpenEngine(cfg, dbPath, deps.Now, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer release()

	roots, err := engine.RootNames(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return roots, cobra.ShellCompDirectiveNoFileComp
}
