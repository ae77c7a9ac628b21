package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"skill-setup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `skill-setup`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "skill-setup",                                    // The name of the CLI tool
	Short: "Installer for the workflow-analyst agent skill", // Short description shown in help output

	// Errors are printed by Execute; usage is only useful for flag mistakes.
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},
}

// Execute runs the CLI.
// Any error returned by a command is printed and turns into exit status 1.
func Execute() {
	// Interrupting the run also stops a package manager that is still installing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatal("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Register the global --debug flag before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
