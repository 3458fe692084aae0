// Package readiness implements the pre-flight gate: a cheap structural
// check that decides whether an intake is complete and consistent
// enough for analysis to begin at all.
//
// Every check runs unconditionally, nothing short-circuits, so the
// caller sees the full list of problems in one pass. No scoring model
// lives here; the score is only a summary of the issue list.
package readiness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/archforge/archforge/internal/intake"
)

// MinSchemaVersion is the oldest intake schema the pipeline accepts.
const MinSchemaVersion = "1.0.0"

// Severity of a readiness issue. Critical issues block the pipeline;
// warnings only reduce the score.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Check identifiers, stable across releases so callers can branch on
// them.
const (
	CheckStatus       = "CHECK-001"
	CheckProblem      = "CHECK-002"
	CheckSolution     = "CHECK-003"
	CheckProjectName  = "CHECK-004"
	CheckSchema       = "CHECK-005"
	CheckVagueTerms   = "CHECK-006"
	CheckRealtimeDep  = "CHECK-007"
	CheckFinancialDep = "CHECK-008"
)

// Issue is one failed readiness check.
type Issue struct {
	CheckID  string   `json:"check_id"`
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Question string   `json:"question,omitempty"`
}

// Result is the gate's verdict. Passed is true iff no critical issue
// exists; the score summarizes issue weight and is floored at zero.
type Result struct {
	Passed bool    `json:"passed"`
	Score  int     `json:"score"`
	Issues []Issue `json:"issues,omitempty"`
}

// Per-issue score deductions.
const (
	criticalDeduction = 20
	warningDeduction  = 8
)

// vagueTerms is the denylist for the crude ambiguity pre-filter. The
// deeper clarity analysis lives in the clarify package; this only
// catches statements that are obviously placeholder text.
var vagueTerms = []string{
	"something", "stuff", "things", "whatever", "etc", "tbd",
	"somehow", "maybe", "miscellaneous", "various",
}

// Evaluate runs every readiness check against the intake and returns
// the aggregated verdict. Pure function: the intake is never mutated.
func Evaluate(in *intake.Intake) Result {
	var issues []Issue

	if !intake.AcceptedStatuses[in.IntakeStatus] {
		issues = append(issues, Issue{
			CheckID:  CheckStatus,
			Severity: SeverityCritical,
			Field:    "intake_status",
			Message:  fmt.Sprintf("intake status %q is not analyzable; submit the intake first", in.IntakeStatus),
		})
	}

	if cmp, err := compareVersions(in.SchemaVersion, MinSchemaVersion); err != nil || cmp < 0 {
		issues = append(issues, Issue{
			CheckID:  CheckSchema,
			Severity: SeverityCritical,
			Field:    "schema_version",
			Message:  fmt.Sprintf("schema version %q is below the minimum supported %s", in.SchemaVersion, MinSchemaVersion),
		})
	}

	issues = append(issues, checkRequiredText(in)...)
	issues = append(issues, checkVagueness(in)...)
	issues = append(issues, checkDependencies(in)...)

	score := 100
	critical := 0
	for _, is := range issues {
		switch is.Severity {
		case SeverityCritical:
			score -= criticalDeduction
			critical++
		case SeverityWarning:
			score -= warningDeduction
		}
	}
	if score < 0 {
		score = 0
	}

	return Result{Passed: critical == 0, Score: score, Issues: issues}
}

// checkRequiredText verifies the fixed list of mandatory free-text
// fields is non-empty after trimming.
func checkRequiredText(in *intake.Intake) []Issue {
	var issues []Issue

	if strings.TrimSpace(in.ProjectName) == "" {
		issues = append(issues, Issue{
			CheckID:  CheckProjectName,
			Severity: SeverityCritical,
			Field:    "project_name",
			Message:  "project name is required",
			Question: "What should this project be called?",
		})
	}
	if strings.TrimSpace(in.ProblemStatement) == "" {
		issues = append(issues, Issue{
			CheckID:  CheckProblem,
			Severity: SeverityCritical,
			Field:    "problem_statement",
			Message:  "problem statement is required",
			Question: "What specific problem does this project solve, and for whom?",
		})
	}
	if strings.TrimSpace(in.SolutionSummary) == "" {
		issues = append(issues, Issue{
			CheckID:  CheckSolution,
			Severity: SeverityCritical,
			Field:    "solution_summary",
			Message:  "solution summary is required",
			Question: "In one or two sentences, what does the proposed solution do?",
		})
	}

	return issues
}

// checkVagueness flags mandatory free-text fields containing denylisted
// vague terms. Case-insensitive whole-word match.
func checkVagueness(in *intake.Intake) []Issue {
	var issues []Issue

	for _, f := range []struct {
		field string
		text  string
	}{
		{"problem_statement", in.ProblemStatement},
		{"solution_summary", in.SolutionSummary},
	} {
		if term := firstVagueTerm(f.text); term != "" {
			issues = append(issues, Issue{
				CheckID:  CheckVagueTerms,
				Severity: SeverityWarning,
				Field:    f.field,
				Message:  fmt.Sprintf("%s contains the vague term %q", f.field, term),
				Question: fmt.Sprintf("Can you replace %q with a concrete description?", term),
			})
		}
	}

	return issues
}

// firstVagueTerm returns the first denylisted word found in the text,
// or "" if none match.
func firstVagueTerm(text string) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	for _, term := range vagueTerms {
		if seen[term] {
			return term
		}
	}
	return ""
}

// checkDependencies enforces the conditional field requirements the
// gate owns: capability flags whose dependent field must be present,
// plus the one hard incompatibility (financial logic can never accept
// eventual consistency).
func checkDependencies(in *intake.Intake) []Issue {
	var issues []Issue

	if in.RequiresRealtime && in.RealtimeProtocol == "" {
		issues = append(issues, Issue{
			CheckID:  CheckRealtimeDep,
			Severity: SeverityCritical,
			Field:    "realtime_protocol",
			Message:  "realtime is required but no protocol is chosen",
			Question: "Which realtime transport fits: websocket, sse, long_polling, or webrtc?",
		})
	}

	if in.HasFinancialLogic && in.ConsistencyRequirement == intake.ConsistencyEventual {
		issues = append(issues, Issue{
			CheckID:  CheckFinancialDep,
			Severity: SeverityCritical,
			Field:    "consistency_requirement",
			Message:  "financial logic cannot run on eventual consistency",
			Question: "Financial records need strong or causal consistency. Which applies?",
		})
	}

	return issues
}

// compareVersions compares two semantic versions numerically, major
// then minor then patch. Returns -1, 0, or 1.
func compareVersions(a, b string) (int, error) {
	pa, err := parseVersion(a)
	if err != nil {
		return 0, err
	}
	pb, err := parseVersion(b)
	if err != nil {
		return 0, err
	}
	for i := 0; i < 3; i++ {
		if pa[i] < pb[i] {
			return -1, nil
		}
		if pa[i] > pb[i] {
			return 1, nil
		}
	}
	return 0, nil
}

func parseVersion(v string) ([3]int, error) {
	var out [3]int
	parts := strings.SplitN(strings.TrimPrefix(v, "v"), ".", 3)
	if len(parts) != 3 {
		return out, fmt.Errorf("malformed version %q", v)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, fmt.Errorf("malformed version %q: %w", v, err)
		}
		out[i] = n
	}
	return out, nil
}
