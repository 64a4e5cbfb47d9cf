package main

import (
	"sysfetch/internal/logger"
	"sysfetch/internal/sysinfo"
	"sysfetch/internal/tools"

	"github.com/mark3labs/mcp-go/server"
)

var version = "0.1.0"

func main() {
	logger.InitLogger()

	collector := sysinfo.NewCollector()

	mcpServer := server.NewMCPServer("sysfetch", version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	mcpServer.AddTool(tools.SnapshotTool(), tools.NewSnapshotHandler(collector.Collect))

	logger.MCP.Info().Msg("Starting MCP server in stdio mode")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.MCP.Fatal().
			Err(err).
			Msg("Error starting MCP server in stdio mode")
	}
}
