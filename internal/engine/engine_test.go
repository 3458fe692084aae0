package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/archforge/archforge/internal/intake"
)

// pinSeams freezes the clock and the run identifier sequence for one
// test.
func pinSeams(t *testing.T) time.Time {
	t.Helper()
	origNow, origID := timeNow, newRunID

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	n := 0
	newRunID = func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}

	t.Cleanup(func() {
		timeNow = origNow
		newRunID = origID
	})
	return now
}

// unclearIntake returns a structurally sound intake whose descriptive
// text is too vague for the ambiguity gate.
func unclearIntake() *intake.Intake {
	in := intake.Template()
	in.ProblemStatement = "The situation at the organization has become untenable lately."
	in.SolutionSummary = "We intend to make the whole thing considerably better over the coming quarters."
	return in
}

func auditStages(bp *Blueprint) []string {
	var out []string
	for _, e := range bp.Audit {
		out = append(out, e.Stage)
	}
	return out
}

func TestRun_TemplateCompletes(t *testing.T) {
	now := pinSeams(t)

	bp := Run(intake.Template(), nil)

	if bp.State != StateComplete {
		t.Fatalf("state = %s, want %s", bp.State, StateComplete)
	}
	if bp.RunID != "id-0001" {
		t.Errorf("run id = %s, want id-0001", bp.RunID)
	}
	if !bp.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %v, want %v", bp.GeneratedAt, now)
	}
	if !bp.Readiness.Passed || bp.Readiness.Score != 100 {
		t.Errorf("readiness = %+v, want passed with score 100", bp.Readiness)
	}
	if bp.Clarification.Status != ClarificationNotRequired {
		t.Errorf("clarification status = %s, want %s", bp.Clarification.Status, ClarificationNotRequired)
	}
	if bp.Clarification.ClarityScore != 90 {
		t.Errorf("clarity score = %d, want 90", bp.Clarification.ClarityScore)
	}

	if bp.Stability == nil || bp.Pressure == nil || bp.Archetype == nil ||
		bp.ProductSpec == nil || bp.Quality == nil || bp.Signals == nil ||
		bp.RecommendedStack == nil || bp.ScalingPlan == nil {
		t.Fatal("complete blueprint missing analysis artifacts")
	}
	if bp.Pattern == "" || len(bp.Services) == 0 {
		t.Errorf("pattern = %q, services = %v", bp.Pattern, bp.Services)
	}
	if len(bp.Conflicts) != 0 {
		t.Errorf("conflicts = %v, want none for the template", bp.Conflicts)
	}
}

func TestRun_AuditTrailCoversEveryStage(t *testing.T) {
	pinSeams(t)

	bp := Run(intake.Template(), nil)

	want := []string{
		StageReadiness, StageAmbiguity, StageStability, StagePressure,
		StagePattern, StageConflicts, StageArchetype, StageProductSpec,
		StageQuality, StageSignals,
	}
	got := auditStages(bp)
	if len(got) != len(want) {
		t.Fatalf("audit stages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("audit[%d].Stage = %s, want %s", i, got[i], want[i])
		}
	}
	for i, e := range bp.Audit {
		if e.Status != StagePassed {
			t.Errorf("audit[%d] status = %s, want %s", i, e.Status, StagePassed)
		}
		if e.Attempts != 1 {
			t.Errorf("audit[%d] attempts = %d, want 1", i, e.Attempts)
		}
		if e.ID == "" || e.Details == "" {
			t.Errorf("audit[%d] missing id or details: %+v", i, e)
		}
	}
}

func TestRun_HaltsOnReadiness(t *testing.T) {
	pinSeams(t)
	in := intake.Template()
	in.IntakeStatus = intake.StatusDraft

	bp := Run(in, nil)

	if bp.State != StateHaltedReadiness {
		t.Fatalf("state = %s, want %s", bp.State, StateHaltedReadiness)
	}
	if bp.Readiness.Passed {
		t.Error("readiness passed on a draft intake")
	}
	if bp.Clarification.Status != ClarificationNotRequired {
		t.Errorf("clarification status = %s, want %s", bp.Clarification.Status, ClarificationNotRequired)
	}
	if bp.Stability != nil || bp.ProductSpec != nil {
		t.Error("halted run carries analysis artifacts")
	}
	if stages := auditStages(bp); len(stages) != 1 || stages[0] != StageReadiness {
		t.Errorf("audit stages = %v, want [readiness]", stages)
	}
	if bp.Audit[0].Status != StageFailed {
		t.Errorf("readiness audit status = %s, want %s", bp.Audit[0].Status, StageFailed)
	}
}

func TestRun_HaltsOnClarification(t *testing.T) {
	pinSeams(t)

	bp := Run(unclearIntake(), nil)

	if bp.State != StateHaltedClarification {
		t.Fatalf("state = %s, want %s", bp.State, StateHaltedClarification)
	}
	if bp.Clarification.Status != ClarificationPending {
		t.Errorf("clarification status = %s, want %s", bp.Clarification.Status, ClarificationPending)
	}
	if bp.Clarification.ClarityScore != 20 {
		t.Errorf("clarity score = %d, want 20", bp.Clarification.ClarityScore)
	}
	if len(bp.Clarification.Questions) != 5 {
		t.Errorf("questions = %v, want one per dimension", bp.Clarification.Questions)
	}
	if bp.Stability != nil {
		t.Error("halted run carries analysis artifacts")
	}

	stages := auditStages(bp)
	if len(stages) != 2 || stages[0] != StageReadiness || stages[1] != StageAmbiguity {
		t.Fatalf("audit stages = %v, want [readiness ambiguity]", stages)
	}
	if bp.Audit[0].Status != StagePassed {
		t.Errorf("readiness audit status = %s, want %s", bp.Audit[0].Status, StagePassed)
	}
	if bp.Audit[1].Status != StagePending {
		t.Errorf("ambiguity audit status = %s, want %s", bp.Audit[1].Status, StagePending)
	}
}

func TestRun_AnswersResumeToCompletion(t *testing.T) {
	pinSeams(t)
	answers := map[string]string{
		"Q-audience":      "Accounting firm staff and their clients.",
		"Q-core_function": "Reconcile client books automatically.",
	}

	bp := Run(unclearIntake(), answers)

	if bp.State != StateComplete {
		t.Fatalf("state = %s, want %s", bp.State, StateComplete)
	}
	if bp.Clarification.Status != ClarificationResolved {
		t.Errorf("clarification status = %s, want %s", bp.Clarification.Status, ClarificationResolved)
	}
	if len(bp.Clarification.Answers) != 2 {
		t.Errorf("answers = %v, want both retained", bp.Clarification.Answers)
	}
	if bp.Clarification.Answers["Q-audience"] != answers["Q-audience"] {
		t.Errorf("answers = %v", bp.Clarification.Answers)
	}
	// The clarity score is reported as measured; answers bypass the
	// threshold rather than raising the score.
	if bp.Clarification.ClarityScore != 20 {
		t.Errorf("clarity score = %d, want 20", bp.Clarification.ClarityScore)
	}
	if bp.Stability == nil || bp.ProductSpec == nil {
		t.Fatal("resumed run missing analysis artifacts")
	}
}

func TestRun_ResumeNeverHaltsOnReadiness(t *testing.T) {
	pinSeams(t)
	in := unclearIntake()
	in.ProjectName = ""

	first := Run(in, nil)
	if first.State != StateHaltedReadiness {
		t.Fatalf("state = %s, want %s", first.State, StateHaltedReadiness)
	}

	bp := Run(in, map[string]string{"Q-audience": "Operations teams."})

	if bp.State != StateComplete {
		t.Fatalf("state = %s, want %s", bp.State, StateComplete)
	}
	if bp.Readiness.Passed {
		t.Error("readiness unexpectedly passed without a project name")
	}
	if bp.Audit[0].Status != StageRepaired {
		t.Errorf("readiness audit status = %s, want %s", bp.Audit[0].Status, StageRepaired)
	}
	if len(bp.Audit[0].Repairs) != 1 {
		t.Errorf("repairs = %v, want the proceed note", bp.Audit[0].Repairs)
	}
}

func TestRun_DeterministicApartFromSeams(t *testing.T) {
	pinSeams(t)
	a := Run(intake.Template(), nil)

	pinSeams(t)
	b := Run(intake.Template(), nil)

	if a.RunID != b.RunID || a.State != b.State {
		t.Errorf("runs diverged: %s/%s vs %s/%s", a.RunID, a.State, b.RunID, b.State)
	}
	if *a.Pressure != *b.Pressure {
		t.Errorf("pressure diverged: %+v vs %+v", a.Pressure, b.Pressure)
	}
	if *a.Signals != *b.Signals {
		t.Errorf("signals diverged: %+v vs %+v", a.Signals, b.Signals)
	}
}

func TestRun_DurationsUseFrozenClock(t *testing.T) {
	pinSeams(t)

	bp := Run(intake.Template(), nil)
	for i, e := range bp.Audit {
		if e.DurationMs != 0 {
			t.Errorf("audit[%d] duration = %d, want 0 under a frozen clock", i, e.DurationMs)
		}
	}
}
