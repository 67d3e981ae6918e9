package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/andbhavyaa/skeldir/internal/adapters/filesystem"
	mcpadapter "github.com/andbhavyaa/skeldir/internal/adapters/mcp"
	"github.com/andbhavyaa/skeldir/internal/config"
	"github.com/andbhavyaa/skeldir/internal/templates"
)

func main() {
	outputFlag := flag.String("output", config.OutputDir(), "directory projects are created under")
	flag.Parse()

	writer := filesystem.NewMaterializer(false, os.Stdout)
	store := templates.NewRegistry()

	mcpServer := server.NewMCPServer(
		"skeldir-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, writer, store, *outputFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("skeldir-mcp: %v", err)
	}
}
