// Package quality grades a synthesized product spec against a fixed
// rubric of structural checks. Grading never blocks the pipeline: the
// result annotates the blueprint and nothing else.
package quality

import (
	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/blueprint"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/stability"
)

// Status is the quality verdict, derived from score and failure count,
// never set directly.
type Status string

const (
	StatusPassed             Status = "passed"
	StatusFailedSoft         Status = "failed_soft"
	StatusFailedHard         Status = "failed_hard"
	StatusConsistencyFailure Status = "consistency_failure"
)

// FailedCheck records one rubric check that did not hold.
type FailedCheck struct {
	CheckID     string `json:"check_id"`
	Description string `json:"description"`
	Fix         string `json:"fix"`
}

// Result is the gate's output. Score starts at 100 and drops by a
// fixed amount per failed check.
type Result struct {
	Score        int           `json:"score"`
	Status       Status        `json:"status"`
	FailedChecks []FailedCheck `json:"failed_checks,omitempty"`
}

const deductionPerCheck = 3

// Status thresholds. Three or more failed checks signal the document
// is internally inconsistent regardless of score.
const (
	consistencyFailureCount = 3
	hardFailBelow           = 70
	softFailBelow           = 85
)

// highStabilityFloor marks the stability score above which a forced
// archetype looks contradictory.
const highStabilityFloor = 75

// check is one rubric entry. ok returns true when the spec passes.
type check struct {
	id       string
	describe string
	fix      string
	ok       func(*blueprint.ProductSpec, *intake.Intake, stability.Result, archetype.Decision) bool
}

var checks = []check{
	{
		id:       "QC-001",
		describe: "The product spec declares no personas.",
		fix:      "List at least one target persona in the intake.",
		ok: func(p *blueprint.ProductSpec, _ *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return len(p.Personas) > 0
		},
	},
	{
		id:       "QC-002",
		describe: "The product spec has an empty feature list.",
		fix:      "Declare at least one must-have capability.",
		ok: func(p *blueprint.ProductSpec, _ *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return len(p.Features) > 0
		},
	},
	{
		id:       "QC-003",
		describe: "No feature is marked P0; nothing anchors the first release.",
		fix:      "Promote the launch-critical capabilities to must-have.",
		ok: func(p *blueprint.ProductSpec, _ *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			for _, f := range p.Features {
				if f.Priority == blueprint.P0 {
					return true
				}
			}
			return false
		},
	},
	{
		id:       "QC-004",
		describe: "The product spec carries no acceptance criteria.",
		fix:      "Add acceptance notes to the intake or declare P0 features to derive them from.",
		ok: func(p *blueprint.ProductSpec, _ *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return len(p.AcceptanceCriteria) > 0
		},
	},
	{
		id:       "QC-005",
		describe: "Compliance frameworks are declared but no compliance NFR exists.",
		fix:      "Regenerate the spec so each framework yields a compliance NFR.",
		ok: func(p *blueprint.ProductSpec, in *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return len(in.ComplianceFrameworks) == 0 || p.HasNFRCategory(blueprint.NFRCompliance)
		},
	},
	{
		id:       "QC-006",
		describe: "Realtime is required but no concurrency NFR covers it.",
		fix:      "Add a concurrency NFR stating the sustained fanout expectation.",
		ok: func(p *blueprint.ProductSpec, in *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return !in.RequiresRealtime || p.HasNFRCategory(blueprint.NFRConcurrency)
		},
	},
	{
		id:       "QC-007",
		describe: "Background jobs are declared but no retry NFR covers failure handling.",
		fix:      "Add a retry/dead-letter NFR for the job system.",
		ok: func(p *blueprint.ProductSpec, in *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return !in.BackgroundJobs || p.HasNFRCategory(blueprint.NFRRetry)
		},
	},
	{
		id:       "QC-008",
		describe: "Read replicas are declared but the spec never reflects read scaling.",
		fix:      "Add a read-scaling NFR bounding acceptable replication lag.",
		ok: func(p *blueprint.ProductSpec, in *intake.Intake, _ stability.Result, _ archetype.Decision) bool {
			return !in.RequiresReadReplicas || p.HasNFRCategory(blueprint.NFRReadScaling)
		},
	},
	{
		id:       "QC-009",
		describe: "The archetype was forced despite a high stability score; the forcing reasons deserve review.",
		fix:      "Re-check the team and timeline fields; a forced monolith at this stability usually means stale inputs.",
		ok: func(_ *blueprint.ProductSpec, _ *intake.Intake, st stability.Result, dec archetype.Decision) bool {
			return dec.Method != archetype.MethodForced || st.Score < highStabilityFloor
		},
	},
}

// Grade runs every rubric check. Score is monotonically non-increasing
// in the number of failures; status escalates only through the
// documented thresholds.
func Grade(prd *blueprint.ProductSpec, in *intake.Intake, st stability.Result, dec archetype.Decision) Result {
	score := 100
	var failed []FailedCheck

	for _, c := range checks {
		if c.ok(prd, in, st, dec) {
			continue
		}
		score -= deductionPerCheck
		failed = append(failed, FailedCheck{
			CheckID:     c.id,
			Description: c.describe,
			Fix:         c.fix,
		})
	}
	if score < 0 {
		score = 0
	}

	return Result{Score: score, Status: statusFor(score, len(failed)), FailedChecks: failed}
}

func statusFor(score, failCount int) Status {
	switch {
	case failCount >= consistencyFailureCount:
		return StatusConsistencyFailure
	case score < hardFailBelow:
		return StatusFailedHard
	case score < softFailBelow:
		return StatusFailedSoft
	default:
		return StatusPassed
	}
}
