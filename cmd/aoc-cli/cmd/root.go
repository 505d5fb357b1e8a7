package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/adapters/gocode"
	"aocsync/internal/adapters/sqlite"
	"aocsync/internal/adapters/tomlconfig"
	"aocsync/internal/application/commands"
	"aocsync/internal/config"
	"aocsync/internal/logging"
	"aocsync/internal/ports"
)

var (
	workspacePath string
	verbose       bool
	logFile       string

	logger *zap.Logger
	ws     commands.Workspace
)

var rootCmd = &cobra.Command{
	Use:   "aoc-cli",
	Short: "Keep an Advent of Code workspace in sync with its puzzle inputs",
	Long: `aoc-cli maintains a Go workspace of Advent of Code solutions.

It downloads missing puzzle inputs, creates one solution package per day
(once; the file is yours afterwards) and regenerates the dispatch code
that runs every day of every year.

The workspace is the nearest directory holding .aoc.toml, unless
--workspace or AOC_WORKSPACE says otherwise.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		logger, err = logging.New(logging.Options{Verbose: verbose, File: logFile})
		if err != nil {
			return err
		}

		// new creates its own workspace
		if cmd.Name() == "new" {
			return nil
		}

		root := workspacePath
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			root, err = filesystem.FindRoot(cwd)
			if err != nil {
				return fmt.Errorf("%w: run aoc-cli new, or pass --workspace", err)
			}
		}
		ws = newWorkspace(root)
		logger.Debug("using workspace", zap.String("root", root))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspacePath, "workspace", "w", config.WorkspacePath(), "workspace root (default: nearest directory with .aoc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", config.LogFile(), "also write JSON logs to this file")
}

func newWorkspace(root string) commands.Workspace {
	return commands.Workspace{
		Store:    filesystem.NewRepository(root),
		Renderer: gocode.NewRenderer(),
		Log:      logger,
	}
}

// GetWorkspace returns the initialized workspace
func GetWorkspace() commands.Workspace {
	return ws
}

// GetConfigStore returns the config store of the workspace
func GetConfigStore() ports.ConfigStore {
	return tomlconfig.NewStore(ws.Store.Root())
}

// openLedger opens the download ledger. The ledger is optional: a failure
// is logged and nil is returned.
func openLedger() ports.DownloadLedger {
	ledger, err := sqlite.OpenLedger(ws.Store.Root())
	if err != nil {
		logger.Warn("download history unavailable", zap.Error(err))
		return nil
	}
	return ledger
}
