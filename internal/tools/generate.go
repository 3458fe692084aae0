package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/archforge/archforge/internal/engine"
	"github.com/archforge/archforge/internal/runstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// GenerateTool handles the blueprint_generate MCP tool. It runs the
// full decision pipeline on a fresh intake and persists the outcome so
// a halted run can be resumed later.
type GenerateTool struct {
	store runstore.Store
}

// NewGenerateTool creates a GenerateTool with the given run store.
func NewGenerateTool(store runstore.Store) *GenerateTool {
	return &GenerateTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("blueprint_generate",
		mcp.WithDescription(
			"Run the architecture decision pipeline on a requirements intake. "+
				"The intake is a JSON document (see intake_template for a complete example). "+
				"Returns a full architecture blueprint, or halts with state HALTED_READINESS "+
				"when the intake has unanswerable gaps, or HALTED_CLARIFICATION with a list "+
				"of questions when the problem statement is too ambiguous. "+
				"Halted runs are persisted; resume them with blueprint_resume.",
		),
		mcp.WithString("intake",
			mcp.Required(),
			mcp.Description("The requirements intake as a JSON document. "+
				"Must pass schema validation: call intake_template for the expected shape."),
		),
	)
}

// Handle processes the blueprint_generate tool call.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("intake", "")

	in, errResult := parseIntake(raw)
	if errResult != nil {
		return errResult, nil
	}

	bp := engine.Run(in, nil)

	if err := saveRun(t.store, bp, raw); err != nil {
		return nil, fmt.Errorf("persisting run %s: %w", bp.RunID, err)
	}

	return jsonText(bp)
}

// saveRun persists a pipeline outcome. The intake travels with the
// record so a resume replays against exactly what was submitted.
func saveRun(store runstore.Store, bp *engine.Blueprint, intakeJSON string) error {
	rec := &runstore.Record{
		ID:         bp.RunID,
		State:      bp.State,
		IntakeJSON: intakeJSON,
	}

	if len(bp.Clarification.Questions) > 0 {
		questions, err := json.Marshal(bp.Clarification.Questions)
		if err != nil {
			return fmt.Errorf("marshaling questions: %w", err)
		}
		rec.QuestionsJSON = string(questions)
	}

	blueprintJSON, err := json.Marshal(bp)
	if err != nil {
		return fmt.Errorf("marshaling blueprint: %w", err)
	}
	rec.BlueprintJSON = string(blueprintJSON)

	return store.Save(rec)
}
