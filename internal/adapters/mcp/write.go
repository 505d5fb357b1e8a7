package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"aocsync/internal/application"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// WriteDeps are the collaborators of the tools that change the workspace
type WriteDeps struct {
	Workspace commands.Workspace
	Configs   ports.ConfigStore
	Fetcher   ports.InputFetcher
	Ledger    ports.DownloadLedger
}

// RegisterWriteTools adds the workspace tools that fetch or generate files to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps WriteDeps) {
	s.AddTool(downloadTool(), downloadHandler(deps))
	s.AddTool(regenerateTool(), regenerateHandler(deps.Workspace))
}

// --- download ---

func downloadTool() mcp.Tool {
	return mcp.NewTool("download",
		mcp.WithDescription("Download the missing puzzle inputs of a year, scaffold a solution package for every downloaded day and regenerate the dispatch files. Days already downloaded are skipped."),
		mcp.WithNumber("year",
			mcp.Description("Event year (e.g. 2022). Omit for the current event."),
		),
		mcp.WithNumber("day",
			mcp.Description("Single day to download (1-25). Omit for every day."),
		),
	)
}

func downloadHandler(deps WriteDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := domain.Year(req.GetInt("year", 0))
		days := domain.AllDays()
		if day := req.GetInt("day", 0); day != 0 {
			if err := application.ValidateDay(domain.Day(day)); err != nil {
				return toolError(err)
			}
			days = domain.SingleDay(domain.Day(day))
		}

		var opts []commands.DownloadOption
		if deps.Ledger != nil {
			opts = append(opts, commands.WithLedger(deps.Ledger))
		}

		var result *commands.DownloadResult
		err := application.WithConfig(deps.Configs, deps.Workspace.Log, func(cfg *domain.Config) error {
			var err error
			result, err = commands.NewDownloadCommand(deps.Workspace, deps.Fetcher, cfg, year, days, opts...).Execute(ctx)
			return err
		})
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- regenerate ---

func regenerateTool() mcp.Tool {
	return mcp.NewTool("regenerate",
		mcp.WithDescription("Regenerate the dispatch files from the solution packages on disk, without network access."),
		mcp.WithNumber("year",
			mcp.Description("Year whose dispatch file to regenerate. Omit to regenerate every year."),
		),
	)
}

func regenerateHandler(ws commands.Workspace) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := domain.Year(req.GetInt("year", 0))

		result, err := commands.NewRegenerateCommand(ws, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
