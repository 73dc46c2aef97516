// Package cli implements the workmon command-line interface.
//
// The package is organized around Cobra commands. Each command resolves the
// configuration, then hands off to the watch, monitor and chart packages.
//
// # Command Structure
//
// The root command is "workmon"; without a subcommand it behaves like watch:
//
//	workmon watch        - Poll and chart until interrupted (default)
//	workmon once         - Poll once, print table and chart, exit
//	workmon config       - Print the resolved configuration
//	workmon version      - Print version information
//	workmon completion   - Generate shell completion scripts
//
// # Configuration
//
// Settings are merged from defaults, the config file, WORKMON_* environment
// variables (a .env file is loaded first) and flags. When stdin is a terminal
// and --no-prompt is not set, watch and once then ask for the five
// connection settings, offering the merged values as placeholders.
//
// # Flag Handling
//
// Global flags (--config, --no-color, --no-prompt, --log-file and the
// database flags) are defined on the root command and available to all
// subcommands.
//
// # Exit Codes
//
// A poll that fails because the database can't be reached has already been
// reported on the console, so the command returns an errors.ExitError and
// Execute exits 1 without printing it again. Other errors are printed in the
// structured format of the errors package.
package cli
