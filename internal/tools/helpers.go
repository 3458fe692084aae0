// Package tools implements the MCP tool handlers for the blueprint
// pipeline.
//
// Each tool receives its dependencies via its struct (DIP) and exposes
// a handler compatible with mcp-go's CallToolRequest signature. Tools
// depend on the runstore.Store interface, never on a concrete store.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/archforge/archforge/internal/intake"
	"github.com/mark3labs/mcp-go/mcp"
)

// jsonText marshals v with indentation and wraps it in a text result.
func jsonText(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// parseIntake decodes and validates an intake document. On failure it
// returns a tool error result describing every problem found, so the
// caller can fix the whole document in one round trip.
func parseIntake(raw string) (*intake.Intake, *mcp.CallToolResult) {
	if strings.TrimSpace(raw) == "" {
		return nil, mcp.NewToolResultError("'intake' is required: a JSON intake document (see intake_template)")
	}

	var in intake.Intake
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid intake JSON: %v", err))
	}

	violations := intake.Validate(&in)
	if len(violations) == 0 {
		return &in, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "intake rejected: %d validation error(s)\n", len(violations))
	for _, v := range violations {
		fmt.Fprintf(&sb, "  [%s] %s: %s\n", v.RuleID, v.Field, v.Message)
	}
	return nil, mcp.NewToolResultError(sb.String())
}
