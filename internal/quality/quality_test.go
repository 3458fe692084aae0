package quality

import (
	"testing"

	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/blueprint"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/stability"
)

func soundSpec() *blueprint.ProductSpec {
	return &blueprint.ProductSpec{
		Personas: []string{"operator"},
		Features: []blueprint.Feature{
			{Name: "Account management", Priority: blueprint.P0},
		},
		AcceptanceCriteria: []string{"Account management works end to end."},
	}
}

func defaultDecision() archetype.Decision {
	return archetype.Decision{Archetype: archetype.ModularMonolith, Method: archetype.MethodDefault}
}

func hasFailedCheck(r Result, id string) bool {
	for _, f := range r.FailedChecks {
		if f.CheckID == id {
			return true
		}
	}
	return false
}

func TestGrade_SoundSpecPasses(t *testing.T) {
	got := Grade(soundSpec(), &intake.Intake{}, stability.Result{Score: 100}, defaultDecision())

	if got.Score != 100 {
		t.Errorf("score = %d, want 100", got.Score)
	}
	if got.Status != StatusPassed {
		t.Errorf("status = %s, want %s", got.Status, StatusPassed)
	}
	if len(got.FailedChecks) != 0 {
		t.Errorf("failed checks = %v, want none", got.FailedChecks)
	}
}

func TestGrade_Checks(t *testing.T) {
	tests := []struct {
		id     string
		spec   func() *blueprint.ProductSpec
		intake intake.Intake
		st     stability.Result
		dec    archetype.Decision
	}{
		{
			id: "QC-001",
			spec: func() *blueprint.ProductSpec {
				p := soundSpec()
				p.Personas = nil
				return p
			},
		},
		{
			id: "QC-002",
			spec: func() *blueprint.ProductSpec {
				p := soundSpec()
				p.Features = nil
				return p
			},
		},
		{
			id: "QC-003",
			spec: func() *blueprint.ProductSpec {
				p := soundSpec()
				p.Features = []blueprint.Feature{{Name: "Search", Priority: blueprint.P1}}
				return p
			},
		},
		{
			id: "QC-004",
			spec: func() *blueprint.ProductSpec {
				p := soundSpec()
				p.AcceptanceCriteria = nil
				return p
			},
		},
		{
			id:     "QC-005",
			spec:   soundSpec,
			intake: intake.Intake{ComplianceFrameworks: []intake.Compliance{intake.ComplianceSOC2}},
		},
		{
			id:     "QC-006",
			spec:   soundSpec,
			intake: intake.Intake{RequiresRealtime: true},
		},
		{
			id:     "QC-007",
			spec:   soundSpec,
			intake: intake.Intake{BackgroundJobs: true},
		},
		{
			id:     "QC-008",
			spec:   soundSpec,
			intake: intake.Intake{RequiresReadReplicas: true},
		},
		{
			id:   "QC-009",
			spec: soundSpec,
			st:   stability.Result{Score: 80},
			dec:  archetype.Decision{Archetype: archetype.Monolith, Method: archetype.MethodForced},
		},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			dec := tt.dec
			if dec.Archetype == "" {
				dec = defaultDecision()
			}
			st := tt.st
			if st.Score == 0 {
				st = stability.Result{Score: 100}
			}

			got := Grade(tt.spec(), &tt.intake, st, dec)

			if !hasFailedCheck(got, tt.id) {
				t.Fatalf("Grade() failed checks = %v, want %s", got.FailedChecks, tt.id)
			}
			if got.Score != 100-deductionPerCheck {
				t.Errorf("score = %d, want %d", got.Score, 100-deductionPerCheck)
			}
			if got.Status != StatusPassed {
				t.Errorf("status = %s, want %s for a single failure", got.Status, StatusPassed)
			}
		})
	}
}

func TestGrade_NFRCategoriesSatisfyChecks(t *testing.T) {
	in := &intake.Intake{
		ComplianceFrameworks: []intake.Compliance{intake.ComplianceHIPAA},
		RequiresRealtime:     true,
		BackgroundJobs:       true,
		RequiresReadReplicas: true,
	}
	p := soundSpec()
	p.NFRs = []blueprint.NFR{
		{ID: "NFR-001", Category: blueprint.NFRCompliance},
		{ID: "NFR-002", Category: blueprint.NFRConcurrency},
		{ID: "NFR-003", Category: blueprint.NFRRetry},
		{ID: "NFR-004", Category: blueprint.NFRReadScaling},
	}

	got := Grade(p, in, stability.Result{Score: 100}, defaultDecision())
	if len(got.FailedChecks) != 0 {
		t.Errorf("failed checks = %v, want none", got.FailedChecks)
	}
}

func TestGrade_ForcedArchetypeAtLowStabilityIsFine(t *testing.T) {
	dec := archetype.Decision{Archetype: archetype.Monolith, Method: archetype.MethodForced}

	got := Grade(soundSpec(), &intake.Intake{}, stability.Result{Score: 40}, dec)
	if hasFailedCheck(got, "QC-009") {
		t.Errorf("QC-009 fired at stability 40: %v", got.FailedChecks)
	}

	got = Grade(soundSpec(), &intake.Intake{}, stability.Result{Score: 75}, dec)
	if !hasFailedCheck(got, "QC-009") {
		t.Errorf("QC-009 did not fire at stability 75: %v", got.FailedChecks)
	}
}

func TestGrade_ThreeFailuresAreConsistencyFailure(t *testing.T) {
	p := soundSpec()
	p.Personas = nil
	in := &intake.Intake{RequiresRealtime: true, BackgroundJobs: true}

	got := Grade(p, in, stability.Result{Score: 100}, defaultDecision())

	if len(got.FailedChecks) != 3 {
		t.Fatalf("failed checks = %v, want 3", got.FailedChecks)
	}
	if got.Score != 91 {
		t.Errorf("score = %d, want 91", got.Score)
	}
	if got.Status != StatusConsistencyFailure {
		t.Errorf("status = %s, want %s", got.Status, StatusConsistencyFailure)
	}
}

func TestGrade_EmptyEverythingFailsAllStructuralChecks(t *testing.T) {
	got := Grade(&blueprint.ProductSpec{}, &intake.Intake{}, stability.Result{Score: 100}, defaultDecision())

	for _, id := range []string{"QC-001", "QC-002", "QC-003", "QC-004"} {
		if !hasFailedCheck(got, id) {
			t.Errorf("missing failed check %s in %v", id, got.FailedChecks)
		}
	}
	if got.Status != StatusConsistencyFailure {
		t.Errorf("status = %s, want %s", got.Status, StatusConsistencyFailure)
	}
	if got.Score != 88 {
		t.Errorf("score = %d, want 88", got.Score)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score     int
		failCount int
		want      Status
	}{
		{100, 0, StatusPassed},
		{85, 2, StatusPassed},
		{84, 2, StatusFailedSoft},
		{70, 1, StatusFailedSoft},
		{69, 1, StatusFailedHard},
		{0, 2, StatusFailedHard},
		{95, 3, StatusConsistencyFailure},
		{50, 4, StatusConsistencyFailure},
	}
	for _, tt := range tests {
		if got := statusFor(tt.score, tt.failCount); got != tt.want {
			t.Errorf("statusFor(%d, %d) = %s, want %s", tt.score, tt.failCount, got, tt.want)
		}
	}
}
