package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
)

// Global flags
var (
	cfgFile  string
	noColor  bool
	noPrompt bool
	logFile  string
)

// v holds file, env and flag values for the current invocation.
var v = config.NewViper()

// rootCmd runs the monitor when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "workmon",
	Short: "Live pie chart of SAS Work usage by user",
	Long: `workmon polls a PostgreSQL database for active sessions that hold
temporary work space and draws a live pie chart of the usage per user.

Users holding 5% or less of the total are grouped into "Others".

Examples:
  workmon
  workmon --host warehouse.internal --port 5432
  workmon --headless --interval 30s
  workmon once --no-prompt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchHeadless)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.ConfigFileName+" or ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&noPrompt, "no-prompt", false, "don't ask for credentials; use config, env and flags only")
	pf.StringVar(&logFile, "log-file", "", "write debug logs to this file")

	pf.String("host", config.DefaultHost, "database host")
	pf.Int("port", config.DefaultPort, "database port")
	pf.String("dbname", config.DefaultDatabase, "database name")
	pf.String("user", config.DefaultUser, "database user")
	pf.String("sslmode", config.DefaultSSLMode, "sslmode (disable, require, verify-ca, verify-full)")
	pf.Duration("interval", config.DefaultInterval, "wait between polls")

	bindFlags(v, rootCmd)
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"host":     "database.host",
	"port":     "database.port",
	"dbname":   "database.name",
	"user":     "database.user",
	"sslmode":  "database.sslmode",
	"interval": "interval",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flag, key := range flagKeys {
		// Lookup can't fail for flags registered in init.
		_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}

	if isUnknownCommandError(err) {
		err = errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown command '%s'", extractUnknownCommand(err)),
			"Run 'workmon --help' to see the available commands.")
	}

	fmt.Fprint(os.Stderr, err.Error())
	os.Exit(1)
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's error.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
