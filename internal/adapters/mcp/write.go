package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/andbhavyaa/skeldir/internal/application/commands"
	"github.com/andbhavyaa/skeldir/internal/ports"
)

// RegisterWriteTools adds the scaffolding tools that create files on disk.
func RegisterWriteTools(s *server.MCPServer, writer ports.ScaffoldWriter, store ports.TemplateStore, outputDir string) {
	s.AddTool(scaffoldTemplateTool(), scaffoldTemplateHandler(writer, store, outputDir))
	s.AddTool(scaffoldTreeTool(), scaffoldTreeHandler(writer, outputDir))
}

// --- scaffold_template ---

func scaffoldTemplateTool() mcp.Tool {
	return mcp.NewTool("scaffold_template",
		mcp.WithDescription("Create a new project directory from a built-in template. Fails if the target already exists."),
		mcp.WithString("template",
			mcp.Description("Template name (see list_templates)"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Project name (letters, digits, '-' and '_')"),
			mcp.Required(),
		),
	)
}

func scaffoldTemplateHandler(writer ports.ScaffoldWriter, store ports.TemplateStore, outputDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		template := req.GetString("template", "")
		name := req.GetString("name", "")

		cmd := commands.NewScaffoldTemplateCommand(writer, store, template, name, outputDir)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- scaffold_tree ---

func scaffoldTreeTool() mcp.Tool {
	return mcp.NewTool("scaffold_tree",
		mcp.WithDescription("Create a new project directory from indented tree text. Directories end with '/'; files get placeholder content. Fails if the target already exists; a failure partway leaves the partial tree in place."),
		mcp.WithString("name",
			mcp.Description("Project name (letters, digits, '-' and '_')"),
			mcp.Required(),
		),
		mcp.WithString("tree",
			mcp.Description("Indented tree text, four characters per level"),
			mcp.Required(),
		),
	)
}

func scaffoldTreeHandler(writer ports.ScaffoldWriter, outputDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		tree := req.GetString("tree", "")

		cmd := commands.NewScaffoldTreeCommand(writer, name, outputDir, strings.Split(tree, "\n"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
