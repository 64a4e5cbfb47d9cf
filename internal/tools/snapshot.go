package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"sysfetch/internal/logger"
	"sysfetch/internal/report"
	"sysfetch/internal/sysinfo"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	SnapshotToolName = "get_system_snapshot"

	FormatText = "text"
	FormatJSON = "json"
)

// SnapshotTool describes the snapshot tool and its optional format argument.
func SnapshotTool() mcp.Tool {
	return mcp.NewTool(SnapshotToolName,
		mcp.WithDescription("Gets a system snapshot: OS, kernel, CPU, memory, swap, uptime, local IP, shell, terminal and desktop"),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' (default) or 'json'"),
			mcp.Enum(FormatText, FormatJSON),
		),
	)
}

// NewSnapshotHandler returns a handler that collects a fresh snapshot per call.
func NewSnapshotHandler(collect func() *sysinfo.Snapshot) server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := request.GetString("format", FormatText)
		toolLogger := logger.GetToolLogger(SnapshotToolName, format)
		toolLogger.Debug().Msg("Getting system snapshot")

		if format != FormatText && format != FormatJSON {
			toolLogger.Warn().Msg("Unsupported format requested")
			return mcp.NewToolResultError(fmt.Sprintf("Unsupported format %q: use %q or %q", format, FormatText, FormatJSON)), nil
		}

		snapshot := collect()

		if format == FormatJSON {
			jsonData, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				toolLogger.Error().Err(err).Msg("Failed to serialize snapshot")
				return mcp.NewToolResultError("Error serializing snapshot: " + err.Error()), nil
			}
			return mcp.NewToolResultText(string(jsonData)), nil
		}

		text := report.Plain(report.Build(snapshot))
		toolLogger.Debug().
			Str("hostname", snapshot.Hostname).
			Int("bytes", len(text)).
			Msg("System snapshot rendered")

		return mcp.NewToolResultText(text), nil
	}
}
