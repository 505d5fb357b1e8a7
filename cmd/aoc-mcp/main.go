package main

import (
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"aocsync/internal/adapters/filesystem"
	"aocsync/internal/adapters/gocode"
	mcpadapter "aocsync/internal/adapters/mcp"
	"aocsync/internal/adapters/sqlite"
	"aocsync/internal/adapters/tomlconfig"
	"aocsync/internal/adapters/web"
	"aocsync/internal/application/commands"
	"aocsync/internal/config"
	"aocsync/internal/logging"
	"aocsync/internal/ports"
)

func main() {
	workspaceFlag := flag.String("workspace", config.WorkspacePath(), "workspace root (default: nearest directory with .aoc.toml)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// stdout carries the protocol; the console logger writes to stderr.
	logger, err := logging.New(logging.Options{Verbose: *verbose, File: config.LogFile()})
	if err != nil {
		log.Fatalf("aoc-mcp: %v", err)
	}
	defer logger.Sync()

	root := *workspaceFlag
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("aoc-mcp: %v", err)
		}
		if root, err = filesystem.FindRoot(cwd); err != nil {
			log.Fatalf("aoc-mcp: %v", err)
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

	mcpServer := server.NewMCPServer(
		"aoc-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterReadTools(mcpServer, ws.Store, ledger)
	mcpadapter.RegisterWriteTools(mcpServer, mcpadapter.WriteDeps{
		Workspace: ws,
		Configs:   tomlconfig.NewStore(ws.Store.Root()),
		Fetcher:   web.NewClient(config.BaseURL()),
		Ledger:    ledger,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
