package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workmon/internal/errors"
)

// Command-specific flags
var (
	watchHeadless bool
)

// watchCmd runs the poll loop until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll and chart work-area usage until interrupted",
	Long: `Poll the database every interval and redraw the pie chart.

The session table is printed after every poll. Connection and authentication
failures stop the loop; any other error is reported and the next poll runs
as scheduled.

Examples:
  workmon watch
  workmon watch --headless
  workmon watch --interval 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchHeadless)
	},
}

// onceCmd runs a single poll
var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Poll once, print the table and chart, and exit",
	Long: `Run a single poll and print the session table and the per-user
breakdown. Exits with status 1 when the poll fails.

Examples:
  workmon once
  workmon once --no-prompt --no-color`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return onceCommand(cmd.OutOrStdout())
	},
}

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration after merging defaults, the config file,
WORKMON_* environment variables and flags. The password is masked.

Examples:
  workmon config
  WORKMON_DATABASE_HOST=db.internal workmon config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(cmd.OutOrStdout())
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for workmon.

Examples:
  # Bash
  workmon completion bash > /etc/bash_completion.d/workmon

  # Zsh
  workmon completion zsh > "${fpath[1]}/_workmon"

  # Fish
  workmon completion fish > ~/.config/fish/completions/workmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchHeadless, "headless", false, "print the chart as text instead of opening the terminal UI")
	rootCmd.Flags().BoolVar(&watchHeadless, "headless", false, "print the chart as text instead of opening the terminal UI")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}
