package stability

import (
	"testing"

	"github.com/archforge/archforge/internal/intake"
)

func hasTension(tensions []Tension, id string) bool {
	for _, t := range tensions {
		if t.ID == id {
			return true
		}
	}
	return false
}

// --- Baseline ---

func TestAnalyze_TemplateIsStable(t *testing.T) {
	res := Analyze(intake.Template())
	if len(res.Tensions) != 0 {
		t.Errorf("Tensions = %v, want none", res.Tensions)
	}
	if res.Score != 100 || res.RiskLevel != RiskLow {
		t.Errorf("Score = %d RiskLevel = %s, want 100 Low", res.Score, res.RiskLevel)
	}
}

// --- Rule catalogue ---

func TestAnalyze_RuleCatalogue(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*intake.Intake)
		id       string
		severity Severity
	}{
		{
			name: "hipaa on bootstrap",
			mutate: func(in *intake.Intake) {
				in.ComplianceFrameworks = []intake.Compliance{intake.ComplianceHIPAA}
				in.SensitiveDataClasses = []intake.DataClass{intake.DataPHI}
				in.FundingStage = intake.FundingBootstrapped
			},
			id: "TEN-001", severity: SeverityCrit,
		},
		{
			name: "hypergrowth without funding",
			mutate: func(in *intake.Intake) {
				in.FundingStage = intake.FundingBootstrapped
				in.UsersAt12Months = intake.ScaleOver1M
			},
			id: "TEN-002", severity: SeverityCrit,
		},
		{
			name: "regulated scale on seed",
			mutate: func(in *intake.Intake) {
				in.UsersAt12Months = intake.Scale100KTo1M
			},
			id: "TEN-003", severity: SeverityWarn,
		},
		{
			name: "four nines on seed funding",
			mutate: func(in *intake.Intake) {
				in.AvailabilityTarget = intake.AvailFourNines
			},
			id: "TEN-004", severity: SeverityWarn,
		},
		{
			name: "fedramp small team",
			mutate: func(in *intake.Intake) {
				in.ComplianceFrameworks = []intake.Compliance{intake.ComplianceFedRAMP}
				in.TeamSize = intake.TeamSmall
			},
			id: "TEN-005", severity: SeverityCrit,
		},
		{
			name: "solo on short timeline",
			mutate: func(in *intake.Intake) {
				in.TeamSize = intake.TeamSolo
				in.TimelineDays = 90
			},
			id: "TEN-006", severity: SeverityWarn,
		},
		{
			name: "junior team on rules engine",
			mutate: func(in *intake.Intake) {
				in.SeniorityMix = intake.SeniorityJuniorHeavy
				in.DomainModel = intake.DomainRulesEngine
			},
			id: "TEN-007", severity: SeverityWarn,
		},
		{
			name: "manual devops with four nines",
			mutate: func(in *intake.Intake) {
				in.DevOpsMaturity = intake.DevOpsManual
				in.AvailabilityTarget = intake.AvailFourNines
				in.FundingStage = intake.FundingSeriesA // keep TEN-004 out
			},
			id: "TEN-008", severity: SeverityWarn,
		},
		{
			name: "viral growth on minimal budget",
			mutate: func(in *intake.Intake) {
				in.GrowthPattern = intake.GrowthViralPotential
				in.BudgetTier = intake.BudgetMinimal
			},
			id: "TEN-009", severity: SeverityWarn,
		},
		{
			name: "pci with junior team",
			mutate: func(in *intake.Intake) {
				in.ComplianceFrameworks = []intake.Compliance{intake.CompliancePCIDSS}
				in.SensitiveDataClasses = []intake.DataClass{intake.DataPaymentCard}
				in.SeniorityMix = intake.SeniorityJuniorHeavy
			},
			id: "TEN-010", severity: SeverityCrit,
		},
		{
			name: "compat promise on exploratory roadmap",
			mutate: func(in *intake.Intake) {
				in.RoadmapVolatility = intake.VolatilityExploratory
				in.BackwardCompatRequired = true
			},
			id: "TEN-011", severity: SeverityWarn,
		},
		{
			name: "migration on short timeline",
			mutate: func(in *intake.Intake) {
				in.MigrationRequired = true
				in.TimelineDays = 120
			},
			id: "TEN-012", severity: SeverityWarn,
		},
		{
			name: "event sourcing small team",
			mutate: func(in *intake.Intake) {
				in.EventSourcing = true
				in.TeamMaturity = intake.MaturitySmallTeam
			},
			id: "TEN-013", severity: SeverityInfo,
		},
		{
			name: "offline plus realtime",
			mutate: func(in *intake.Intake) {
				in.OfflineSupport = true
				in.RequiresRealtime = true
				in.RealtimeProtocol = intake.RealtimeWebsocket
			},
			id: "TEN-014", severity: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := intake.Template()
			tt.mutate(in)
			res := Analyze(in)
			if !hasTension(res.Tensions, tt.id) {
				t.Fatalf("missing %s in %v", tt.id, res.Tensions)
			}
			for _, ten := range res.Tensions {
				if ten.ID == tt.id {
					if ten.Severity != tt.severity {
						t.Errorf("%s severity = %s, want %s", tt.id, ten.Severity, tt.severity)
					}
					if ten.Deduction != tt.severity.Deduction() {
						t.Errorf("%s deduction = %d, want %d", tt.id, ten.Deduction, tt.severity.Deduction())
					}
					if ten.Mitigation == "" {
						t.Errorf("%s has no mitigation", tt.id)
					}
				}
			}
		})
	}
}

func TestAnalyze_InfoTensionsDoNotReduceScore(t *testing.T) {
	in := intake.Template()
	in.EventSourcing = true
	in.TeamMaturity = intake.MaturitySmallTeam

	res := Analyze(in)
	if !hasTension(res.Tensions, "TEN-013") {
		t.Fatal("TEN-013 should fire")
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want 100 (INFO deducts nothing)", res.Score)
	}
}

// --- Compound scenario ---

func TestAnalyze_BootstrappedHypergrowthHealthcare(t *testing.T) {
	in := intake.Template()
	in.FundingStage = intake.FundingBootstrapped
	in.UsersAt12Months = intake.ScaleOver1M
	in.ComplianceFrameworks = []intake.Compliance{intake.ComplianceHIPAA}
	in.SensitiveDataClasses = []intake.DataClass{intake.DataPHI}

	res := Analyze(in)
	for _, id := range []string{"TEN-001", "TEN-002", "TEN-003"} {
		if !hasTension(res.Tensions, id) {
			t.Errorf("missing %s in %v", id, res.Tensions)
		}
	}
	// Two criticals and one warning: 100 - 25 - 25 - 10 = 40.
	if res.Score != 40 {
		t.Errorf("Score = %d, want 40", res.Score)
	}
	if res.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel = %s, want High", res.RiskLevel)
	}
}

// --- Amplification ---

func TestAmplification_ThreeCriticalsCompound(t *testing.T) {
	in := intake.Template()
	in.FundingStage = intake.FundingBootstrapped
	in.UsersAt12Months = intake.ScaleOver1M
	in.ComplianceFrameworks = []intake.Compliance{intake.ComplianceHIPAA, intake.ComplianceFedRAMP}
	in.SensitiveDataClasses = []intake.DataClass{intake.DataPHI}
	in.TeamSize = intake.TeamSmall

	res := Analyze(in)
	// TEN-001, TEN-002, TEN-005 critical; TEN-003 warning; +10 amp.
	if res.Amplification != 10 {
		t.Errorf("Amplification = %d, want 10", res.Amplification)
	}
	if res.Score != 100-25-25-25-10-10 {
		t.Errorf("Score = %d, want 5", res.Score)
	}
	if res.RiskLevel != RiskCritical {
		t.Errorf("RiskLevel = %s, want Critical", res.RiskLevel)
	}
}

func TestAmplification_BootstrapShortTimelineBigMarket(t *testing.T) {
	in := intake.Template()
	in.FundingStage = intake.FundingBootstrapped
	in.TimelineDays = 60
	in.UsersAt12Months = intake.Scale100KTo1M
	in.ComplianceFrameworks = nil
	in.SensitiveDataClasses = nil

	res := Analyze(in)
	if res.Amplification != 15 {
		t.Errorf("Amplification = %d, want 15", res.Amplification)
	}
	if len(res.Tensions) != 0 {
		t.Errorf("unexpected tensions %v", res.Tensions)
	}
	if res.Score != 85 {
		t.Errorf("Score = %d, want 85", res.Score)
	}
}

func TestAmplification_ComplianceStackOnSeed(t *testing.T) {
	in := intake.Template()
	in.ComplianceFrameworks = []intake.Compliance{
		intake.ComplianceSOC2, intake.ComplianceISO27001, intake.ComplianceCCPA,
	}

	res := Analyze(in)
	if res.Amplification != 10 {
		t.Errorf("Amplification = %d, want 10", res.Amplification)
	}
}

func TestAmplification_SoloWithRealtime(t *testing.T) {
	in := intake.Template()
	in.TeamSize = intake.TeamSolo
	in.RequiresRealtime = true
	in.RealtimeProtocol = intake.RealtimeSSE

	res := Analyze(in)
	if res.Amplification != 10 {
		t.Errorf("Amplification = %d, want 10", res.Amplification)
	}
}

func TestAmplification_SoloWithRestrictedAIPolicy(t *testing.T) {
	in := intake.Template()
	in.TeamSize = intake.TeamSolo
	in.AIDataPolicy = intake.PolicyNoExternal
	in.AIProvider = intake.ProviderSelfHosted

	res := Analyze(in)
	if res.Amplification != 10 {
		t.Errorf("Amplification = %d, want 10", res.Amplification)
	}
}

func TestAnalyze_ScoreFlooredAtZero(t *testing.T) {
	in := intake.Template()
	in.FundingStage = intake.FundingBootstrapped
	in.UsersAt12Months = intake.ScaleOver1M
	in.ComplianceFrameworks = []intake.Compliance{
		intake.ComplianceHIPAA, intake.ComplianceFedRAMP, intake.CompliancePCIDSS,
	}
	in.SensitiveDataClasses = []intake.DataClass{intake.DataPHI, intake.DataPaymentCard}
	in.TeamSize = intake.TeamSolo
	in.SeniorityMix = intake.SeniorityJuniorHeavy
	in.TimelineDays = 30
	in.DomainModel = intake.DomainRulesEngine
	in.AvailabilityTarget = intake.AvailFourNines
	in.DevOpsMaturity = intake.DevOpsManual

	res := Analyze(in)
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0 (floor)", res.Score)
	}
	if res.RiskLevel != RiskCritical {
		t.Errorf("RiskLevel = %s, want Critical", res.RiskLevel)
	}
}

// --- Risk boundaries ---

func TestRiskFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskCritical},
		{24, RiskCritical},
		{25, RiskHigh},
		{49, RiskHigh},
		{50, RiskMedium},
		{74, RiskMedium},
		{75, RiskLow},
		{100, RiskLow},
	}
	for _, tt := range tests {
		if got := RiskFor(tt.score); got != tt.want {
			t.Errorf("RiskFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSeverityDeduction(t *testing.T) {
	if SeverityCrit.Deduction() != 25 || SeverityWarn.Deduction() != 10 || SeverityInfo.Deduction() != 0 {
		t.Errorf("deductions = %d/%d/%d, want 25/10/0",
			SeverityCrit.Deduction(), SeverityWarn.Deduction(), SeverityInfo.Deduction())
	}
}
