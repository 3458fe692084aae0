package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/archforge/archforge/internal/engine"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/runstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// ResumeTool handles the blueprint_resume MCP tool. It replays the
// pipeline for a halted run with the caller's clarification answers.
// Any non-empty answer set commits the run to completion: the
// ambiguity gate is not re-checked, so a resume can never bounce back
// with more questions.
type ResumeTool struct {
	store runstore.Store
}

// NewResumeTool creates a ResumeTool with the given run store.
func NewResumeTool(store runstore.Store) *ResumeTool {
	return &ResumeTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ResumeTool) Definition() mcp.Tool {
	return mcp.NewTool("blueprint_resume",
		mcp.WithDescription(
			"Resume a halted pipeline run. For HALTED_CLARIFICATION runs, supply answers "+
				"to the questions returned by blueprint_generate; partial answers are accepted "+
				"and the run always completes. For HALTED_READINESS runs, supply a corrected "+
				"intake via the optional 'intake' argument. Returns the completed blueprint.",
		),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("The run identifier returned by blueprint_generate."),
		),
		mcp.WithString("answers",
			mcp.Description("Clarification answers as a JSON object mapping question ID to "+
				"answer text, e.g. {\"Q-audience\": \"small clinics in the EU\"}. "+
				"Unknown question IDs are carried into the blueprint's notes unchanged."),
		),
		mcp.WithString("intake",
			mcp.Description("Optional corrected intake JSON. When present it replaces the "+
				"stored intake for this run; when absent the originally submitted intake is replayed."),
		),
	)
}

// Handle processes the blueprint_resume tool call.
func (t *ResumeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID := req.GetString("run_id", "")
	if runID == "" {
		return mcp.NewToolResultError("'run_id' is required"), nil
	}

	rec, err := t.store.Load(runID)
	if err == runstore.ErrNotFound {
		return mcp.NewToolResultError(fmt.Sprintf("run %q not found", runID)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", runID, err)
	}
	if rec.State == engine.StateComplete {
		return mcp.NewToolResultError(fmt.Sprintf(
			"run %q is already complete; use blueprint_status to retrieve its blueprint", runID)), nil
	}

	intakeJSON := rec.IntakeJSON
	var in *intake.Intake
	if raw := req.GetString("intake", ""); raw != "" {
		corrected, errResult := parseIntake(raw)
		if errResult != nil {
			return errResult, nil
		}
		in = corrected
		intakeJSON = raw
	} else {
		in = new(intake.Intake)
		if err := json.Unmarshal([]byte(rec.IntakeJSON), in); err != nil {
			return nil, fmt.Errorf("stored intake for run %s is corrupt: %w", runID, err)
		}
	}

	answers, errResult := parseAnswers(req.GetString("answers", ""))
	if errResult != nil {
		return errResult, nil
	}
	if rec.State == engine.StateHaltedClarification && len(answers) == 0 {
		return mcp.NewToolResultError(
			"run is halted on clarification: 'answers' must contain at least one answer"), nil
	}

	bp := engine.Run(in, answers)
	// Keep the caller-visible identifier stable across the halt.
	bp.RunID = rec.ID

	if err := saveRun(t.store, bp, intakeJSON); err != nil {
		return nil, fmt.Errorf("persisting run %s: %w", rec.ID, err)
	}

	return jsonText(bp)
}

// parseAnswers decodes the answers argument. Empty input is a valid
// empty map: readiness-halted runs resume without answers.
func parseAnswers(raw string) (map[string]string, *mcp.CallToolResult) {
	if raw == "" {
		return nil, nil
	}
	var answers map[string]string
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf(
			"invalid answers JSON (expected an object of question ID to answer): %v", err))
	}
	return answers, nil
}
