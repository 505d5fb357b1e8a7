package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"aocsync/internal/adapters/editor"
	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/adapters/gocode"
	"aocsync/internal/adapters/sqlite"
	"aocsync/internal/adapters/tomlconfig"
	"aocsync/internal/adapters/tui"
	"aocsync/internal/adapters/web"
	"aocsync/internal/application/commands"
	"aocsync/internal/config"
	"aocsync/internal/logging"
	"aocsync/internal/ports"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The TUI owns the terminal; logs only go to the log file, if any.
	logger, err := logging.New(logging.Options{Quiet: true, File: config.LogFile()})
	if err != nil {
		return err
	}
	defer logger.Sync()

	root := config.WorkspacePath()
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		if root, err = filesystem.FindRoot(cwd); err != nil {
			return fmt.Errorf("%w: run aoc-cli new first", err)
		}
	}

	ws := commands.Workspace{
		Store:    filesystem.NewRepository(root),
		Renderer: gocode.NewRenderer(),
		Log:      logger,
	}

	var ledger ports.DownloadLedger
	if l, err := sqlite.OpenLedger(ws.Store.Root()); err != nil {
		logger.Warn("download history unavailable", zap.Error(err))
	} else {
		defer l.Close()
		ledger = l
	}

	syncer := tui.NewWorkspaceSyncer(ws, tomlconfig.NewStore(ws.Store.Root()), web.NewClient(config.BaseURL()), ledger)
	app := tui.NewApp(ws.Store, syncer, editor.NewOpener(ws.Store.Root()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tui.Run(ctx, app)
}
