// Package engine sequences the full architecture decision pipeline:
// readiness gate, ambiguity gate, the analysis stages, and blueprint
// assembly. The two gates are the only points that can halt a run;
// every analysis stage always completes and at worst annotates the
// blueprint with a degraded status.
//
// The engine is a pure function of (intake, answers) apart from the
// run identifier and timestamps. No state survives between calls; the
// caller owns persisting a halted run until answers arrive.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/blueprint"
	"github.com/archforge/archforge/internal/clarify"
	"github.com/archforge/archforge/internal/conflict"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/pressure"
	"github.com/archforge/archforge/internal/quality"
	"github.com/archforge/archforge/internal/readiness"
	"github.com/archforge/archforge/internal/signals"
	"github.com/archforge/archforge/internal/stability"
)

// State is the terminal state of one pipeline invocation.
type State string

const (
	StateComplete            State = "COMPLETE"
	StateHaltedReadiness     State = "HALTED_READINESS"
	StateHaltedClarification State = "HALTED_CLARIFICATION"
)

// ClarificationStatus reports how the ambiguity gate concluded.
type ClarificationStatus string

const (
	ClarificationNotRequired ClarificationStatus = "not_required"
	ClarificationPending     ClarificationStatus = "pending"
	ClarificationResolved    ClarificationStatus = "resolved"
)

// Clarification is the blueprint's record of the ambiguity gate.
type Clarification struct {
	Status       ClarificationStatus `json:"status"`
	ClarityScore int                 `json:"clarity_score"`
	Questions    []clarify.Question  `json:"questions,omitempty"`
	Answers      map[string]string   `json:"answers,omitempty"`
}

// Blueprint is the terminal output of a pipeline run. Halted runs
// carry only the gate results and their partial audit trail; complete
// runs carry everything.
type Blueprint struct {
	RunID       string    `json:"run_id"`
	State       State     `json:"state"`
	GeneratedAt time.Time `json:"generated_at"`

	Readiness     readiness.Result `json:"readiness"`
	Clarification Clarification    `json:"clarification"`

	Stability *stability.Result   `json:"stability,omitempty"`
	Pressure  *pressure.Result    `json:"pressure,omitempty"`
	Pattern   pressure.Pattern    `json:"pattern,omitempty"`
	Conflicts []conflict.Conflict `json:"conflicts,omitempty"`
	Archetype *archetype.Decision `json:"archetype,omitempty"`

	ProductSpec      *blueprint.ProductSpec `json:"product_spec,omitempty"`
	Quality          *quality.Result        `json:"quality,omitempty"`
	Signals          *signals.Signals       `json:"signals,omitempty"`
	RecommendedStack *blueprint.Stack       `json:"recommended_stack,omitempty"`
	Services         []blueprint.Service    `json:"services,omitempty"`
	ScalingPlan      *blueprint.ScalingPlan `json:"scaling_plan,omitempty"`

	Audit []AuditEntry `json:"audit"`
}

// newRunID generates the run identifier. Package variable so tests can
// pin it.
var newRunID = func() string {
	return fmt.Sprintf("run-%s", uuid.New().String()[:8])
}

// Run executes the pipeline once. A nil or empty answers map means a
// first invocation: either gate may halt. A non-empty answers map is a
// resume: the ambiguity gate is skipped entirely (even partial
// answers commit the run to completion) and readiness issues are
// recorded but no longer halt, so a run can never loop forever on the
// same unresolved critical.
func Run(in *intake.Intake, answers map[string]string) *Blueprint {
	log := auditLog{newID: newRunID, now: timeNow}
	bp := &Blueprint{
		RunID:       newRunID(),
		GeneratedAt: timeNow(),
	}
	resuming := len(answers) > 0

	// --- Readiness gate ---

	start := timeNow()
	bp.Readiness = readiness.Evaluate(in)
	switch {
	case bp.Readiness.Passed:
		log.record(StageReadiness, StagePassed,
			fmt.Sprintf("score %d, %d issue(s)", bp.Readiness.Score, len(bp.Readiness.Issues)), start)
	case resuming:
		log.record(StageReadiness, StageRepaired,
			fmt.Sprintf("score %d, %d issue(s)", bp.Readiness.Score, len(bp.Readiness.Issues)), start,
			"proceeded past readiness criticals: clarification answers were supplied")
	default:
		log.record(StageReadiness, StageFailed,
			fmt.Sprintf("score %d, %d issue(s)", bp.Readiness.Score, len(bp.Readiness.Issues)), start)
		bp.State = StateHaltedReadiness
		bp.Clarification = Clarification{Status: ClarificationNotRequired}
		bp.Audit = log.entries
		return bp
	}

	// --- Ambiguity gate ---

	start = timeNow()
	ctx := clarify.Context{
		ProblemStatement: in.ProblemStatement,
		SolutionSummary:  in.SolutionSummary,
	}
	report := clarify.Detect(ctx)

	if clarify.ShouldHalt(report, answers) {
		questions := clarify.Questions(report)
		log.record(StageAmbiguity, StagePending,
			fmt.Sprintf("clarity %d below threshold %d; %d question(s) issued",
				report.ClarityScore, clarify.HaltThreshold, len(questions)), start)
		bp.State = StateHaltedClarification
		bp.Clarification = Clarification{
			Status:       ClarificationPending,
			ClarityScore: report.ClarityScore,
			Questions:    questions,
		}
		bp.Audit = log.entries
		return bp
	}

	if resuming {
		ctx = clarify.Resolve(ctx, answers)
		log.record(StageAmbiguity, StagePassed,
			fmt.Sprintf("clarity %d; resumed with %d answer(s), clarity check skipped",
				report.ClarityScore, len(answers)), start)
		bp.Clarification = Clarification{
			Status:       ClarificationResolved,
			ClarityScore: report.ClarityScore,
			Answers:      ctx.Notes,
		}
	} else {
		log.record(StageAmbiguity, StagePassed,
			fmt.Sprintf("clarity %d meets threshold %d", report.ClarityScore, clarify.HaltThreshold), start)
		bp.Clarification = Clarification{
			Status:       ClarificationNotRequired,
			ClarityScore: report.ClarityScore,
		}
	}

	// --- Analysis: none of the stages below can halt the run ---

	start = timeNow()
	st := stability.Analyze(in)
	bp.Stability = &st
	log.record(StageStability, StagePassed,
		fmt.Sprintf("score %d, risk %s, %d tension(s)", st.Score, st.RiskLevel, len(st.Tensions)), start)

	start = timeNow()
	pr := pressure.Compute(in)
	bp.Pressure = &pr
	log.record(StagePressure, StagePassed, fmt.Sprintf("weighted %d", pr.Weighted), start)

	start = timeNow()
	bp.Pattern = pressure.PatternFor(pr.Weighted)
	log.record(StagePattern, StagePassed, string(bp.Pattern), start)

	start = timeNow()
	bp.Conflicts = conflict.Detect(in)
	conflictStatus := StagePassed
	if conflict.HasBlocking(bp.Conflicts) {
		conflictStatus = StageFailed
	}
	log.record(StageConflicts, conflictStatus,
		fmt.Sprintf("%d conflict(s)", len(bp.Conflicts)), start)

	start = timeNow()
	dec := archetype.Select(in, st.Score)
	bp.Archetype = &dec
	log.record(StageArchetype, StagePassed,
		fmt.Sprintf("%s (%s)", dec.Archetype, dec.Method), start)

	start = timeNow()
	prd := blueprint.BuildProductSpec(in, dec)
	bp.ProductSpec = &prd
	log.record(StageProductSpec, StagePassed,
		fmt.Sprintf("%d feature(s), %d NFR(s)", len(prd.Features), len(prd.NFRs)), start)

	start = timeNow()
	q := quality.Grade(&prd, in, st, dec)
	bp.Quality = &q
	qualityStatus := StagePassed
	if q.Status != quality.StatusPassed {
		qualityStatus = StageFailed
	}
	log.record(StageQuality, qualityStatus,
		fmt.Sprintf("score %d, status %s", q.Score, q.Status), start)

	start = timeNow()
	sig := signals.Derive(pr, st, bp.Conflicts, in)
	bp.Signals = &sig
	log.record(StageSignals, StagePassed,
		fmt.Sprintf("complexity %d, operational risk %d", sig.Complexity, sig.OperationalRisk), start)

	stack := blueprint.RecommendStack(in, bp.Pattern, dec)
	bp.RecommendedStack = &stack
	bp.Services = blueprint.DecomposeServices(in, dec)
	plan := blueprint.BuildScalingPlan(in, bp.Pattern)
	bp.ScalingPlan = &plan

	bp.State = StateComplete
	bp.Audit = log.entries
	return bp
}
