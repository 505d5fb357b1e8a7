package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
	"aocsync/internal/ports"
)

// RegisterReadTools adds the read-only workspace tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.WorkspaceStore, ledger ports.DownloadLedger) {
	s.AddTool(statusTool(), statusHandler(store))
	if ledger != nil {
		s.AddTool(historyTool(), historyHandler(ledger))
	}
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Show which puzzle days of the workspace have a downloaded input and a solution package."),
		mcp.WithNumber("year",
			mcp.Description("Year to report (e.g. 2022). Omit to report every year in the workspace."),
		),
	)
}

func statusHandler(store ports.WorkspaceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := domain.Year(req.GetInt("year", 0))

		statuses, err := commands.NewStatusCommand(store, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(statuses, formatYearStatus)
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List past input downloads, oldest first."),
		mcp.WithNumber("year",
			mcp.Description("Year to list. Omit to list every year."),
		),
	)
}

func historyHandler(ledger ports.DownloadLedger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := domain.Year(req.GetInt("year", 0))

		records, err := commands.NewHistoryCommand(ledger, year).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(records, formatRecord)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatYearStatus(s domain.YearStatus) string {
	var inputs, scaffolds []domain.Day
	for _, d := range s.Days {
		if d.Input {
			inputs = append(inputs, d.Day)
		}
		if d.Scaffold {
			scaffolds = append(scaffolds, d.Day)
		}
	}
	return fmt.Sprintf("%d  %d/%d ready  inputs: %s  solutions: %s",
		s.Year, s.Complete(), domain.LastDay, formatDays(inputs), formatDays(scaffolds))
}

func formatRecord(r domain.FetchRecord) string {
	flag := ""
	if r.Overwritten {
		flag = "  (overwritten)"
	}
	return fmt.Sprintf("%s  %d day %d  %d bytes  sha256:%.12s  run %s%s",
		r.FetchedAt.Format("2006-01-02 15:04:05"), r.Year, r.Day, r.Bytes, r.SHA256, r.RunID, flag)
}

// formatDays collapses runs of consecutive days (e.g. "days 1-3, day 5")
func formatDays(days []domain.Day) string {
	if len(days) == 0 {
		return "none"
	}

	var parts []string
	start := days[0]
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i] == days[i-1]+1 {
			continue
		}
		end := days[i-1]
		parts = append(parts, domain.DayRange{First: start, Last: end}.String())
		if i < len(days) {
			start = days[i]
		}
	}
	return strings.Join(parts, ", ")
}
