package tools

import (
	"context"

	"github.com/archforge/archforge/internal/intake"
	"github.com/mark3labs/mcp-go/mcp"
)

// TemplateTool handles the intake_template MCP tool. It has no
// dependencies: the template is a compiled-in example intake.
type TemplateTool struct{}

// NewTemplateTool creates a TemplateTool.
func NewTemplateTool() *TemplateTool {
	return &TemplateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *TemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("intake_template",
		mcp.WithDescription(
			"Return a complete example intake document as JSON. Every field is populated "+
				"with a valid value, so the output doubles as a schema reference: copy it, "+
				"replace the values with your project's answers, and submit it to "+
				"blueprint_generate. The example describes a small-business ledger product.",
		),
	)
}

// Handle processes the intake_template tool call.
func (t *TemplateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonText(intake.Template())
}
