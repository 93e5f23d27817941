// Package cmd provides the root command and CLI setup for minigrep.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"minigrep.dev/pkg/minigrep/internal/adapter"
	"minigrep.dev/pkg/minigrep/internal/config"
	"minigrep.dev/pkg/minigrep/internal/controller"
	"minigrep.dev/pkg/minigrep/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter

// lookupEnv is swapped in tests.
var lookupEnv = config.OSEnv

// newUI and newRunner build the per-command collaborators so tests can bind
// them to their own output buffers.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewSimpleUI(cmd)
}

var newRunner = func(ui controller.UI) domain.Runner {
	return domain.NewRunner(fsAdapter, ui)
}

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const rootLongDescription = `minigrep prints every line of a file that contains the query.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value, including an empty one).

Logging is off by default; set log.filename in minigrep.yaml or
MINIGREP_LOG_FILENAME to write a rotating log file.`

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minigrep <query> <source_path>",
		Short: "Print the lines of a file that contain a query",
		Long:  rootLongDescription,
		Args:  cobra.ArbitraryArgs,
		// Every argument is positional; a leading dash belongs to the query.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viperLogPath(), viperLogVerbose())
		},
		RunE: runSearch,
	}
}

// runSearch receives the program name as its first argument; see
// executeCommand.
func runSearch(cmd *cobra.Command, args []string) error {
	settings, err := config.Build(args, lookupEnv)
	if err != nil {
		return err
	}

	return newRunner(newUI(cmd)).Run(commandContext(cmd), settings)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// executeCommand runs cmd with args and returns the process exit status.
// Failures are reported as a single diagnostic line on the command's error
// stream.
//
// The command name is placed in front of args. It is the program name slot
// config.Build expects, and it keeps cobra's command lookup away from the
// query, which would otherwise resolve names like "__complete" to cobra's
// hidden completion command.
func executeCommand(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(append([]string{cmd.Name()}, args...))

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	slog.Error("minigrep failed", "error", err)
	newUI(cmd).DisplayError(commandContext(cmd), err)

	return 1
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if code := executeCommand(rootCmd, os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
