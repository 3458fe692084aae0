package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/archforge/archforge/internal/clarify"
	"github.com/archforge/archforge/internal/engine"
	"github.com/archforge/archforge/internal/runstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatusTool handles the blueprint_status MCP tool. Without a run_id
// it lists every stored run; with one it returns that run's blueprint.
type StatusTool struct {
	store runstore.Store
}

// NewStatusTool creates a StatusTool with the given run store.
func NewStatusTool(store runstore.Store) *StatusTool {
	return &StatusTool{store: store}
}

// runSummary is one row of the run listing.
type runSummary struct {
	RunID            string       `json:"run_id"`
	State            engine.State `json:"state"`
	PendingQuestions int          `json:"pending_questions,omitempty"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("blueprint_status",
		mcp.WithDescription(
			"Inspect stored pipeline runs. Without arguments, lists all runs newest first "+
				"(ID, state, pending question count). With a run_id, returns that run's full "+
				"blueprint, including the audit trail and any unanswered questions.",
		),
		mcp.WithString("run_id",
			mcp.Description("A run identifier from blueprint_generate. Omit to list all runs."),
		),
	)
}

// Handle processes the blueprint_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID := req.GetString("run_id", "")
	if runID == "" {
		return t.list()
	}

	rec, err := t.store.Load(runID)
	if err == runstore.ErrNotFound {
		return mcp.NewToolResultError(fmt.Sprintf("run %q not found", runID)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", runID, err)
	}

	// The stored blueprint is returned verbatim, not re-marshaled.
	if rec.BlueprintJSON != "" {
		return mcp.NewToolResultText(rec.BlueprintJSON), nil
	}
	return jsonText(runSummary{
		RunID:     rec.ID,
		State:     rec.State,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func (t *StatusTool) list() (*mcp.CallToolResult, error) {
	recs, err := t.store.List()
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	summaries := make([]runSummary, 0, len(recs))
	for _, rec := range recs {
		s := runSummary{
			RunID:     rec.ID,
			State:     rec.State,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		}
		if rec.QuestionsJSON != "" && rec.State == engine.StateHaltedClarification {
			var questions []clarify.Question
			if err := json.Unmarshal([]byte(rec.QuestionsJSON), &questions); err == nil {
				s.PendingQuestions = len(questions)
			}
		}
		summaries = append(summaries, s)
	}
	return jsonText(summaries)
}
