package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/andbhavyaa/skeldir/internal/parser"
	"github.com/andbhavyaa/skeldir/internal/ports"
)

// RegisterReadTools adds the read-only scaffolding tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.TemplateStore) {
	s.AddTool(listTemplatesTool(), listTemplatesHandler(store))
	s.AddTool(previewTreeTool(), previewTreeHandler())
}

// --- list_templates ---

func listTemplatesTool() mcp.Tool {
	return mcp.NewTool("list_templates",
		mcp.WithDescription("List the built-in project templates with their descriptions."),
	)
}

func listTemplatesHandler(store ports.TemplateStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var b strings.Builder
		for _, name := range store.Names() {
			desc, _ := store.Describe(name)
			fmt.Fprintf(&b, "%s - %s\n", name, desc)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- preview_tree ---

func previewTreeTool() mcp.Tool {
	return mcp.NewTool("preview_tree",
		mcp.WithDescription("Parse tree text and return the hierarchy that would be scaffolded, without touching the filesystem. Useful to check how an ambiguous paste will be interpreted."),
		mcp.WithString("tree",
			mcp.Description("Indented tree text, as produced by tree-like tools. Directories end with '/'."),
			mcp.Required(),
		),
	)
}

func previewTreeHandler() server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tree := req.GetString("tree", "")
		root := parser.ParseText(tree)
		if root.Len() == 0 {
			return mcp.NewToolResultText("(empty hierarchy)"), nil
		}
		return mcp.NewToolResultText(root.Render()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
