package archetype

import (
	"strings"
	"testing"

	"github.com/archforge/archforge/internal/intake"
)

// capableIntake returns an intake that no forcing rule matches.
func capableIntake() *intake.Intake {
	return &intake.Intake{
		TeamSize:       intake.TeamMedium,
		SeniorityMix:   intake.SeniorityBalanced,
		DevOpsMaturity: intake.DevOpsAutomated,
		TimelineDays:   180,
	}
}

func TestSelect_ForcingChain(t *testing.T) {
	tests := []struct {
		name      string
		stability int
		mutate    func(*intake.Intake)
		reason    string
	}{
		{
			name:      "low stability",
			stability: 49,
			mutate:    func(in *intake.Intake) {},
			reason:    "stability score below 50",
		},
		{
			name:      "solo team",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.TeamSize = intake.TeamSolo },
			reason:    "solo or small team",
		},
		{
			name:      "small team",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.TeamSize = intake.TeamSmall },
			reason:    "solo or small team",
		},
		{
			name:      "junior heavy",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.SeniorityMix = intake.SeniorityJuniorHeavy },
			reason:    "junior-heavy seniority or immature DevOps",
		},
		{
			name:      "manual devops",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.DevOpsMaturity = intake.DevOpsManual },
			reason:    "junior-heavy seniority or immature DevOps",
		},
		{
			name:      "minimal devops",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.DevOpsMaturity = intake.DevOpsMinimal },
			reason:    "junior-heavy seniority or immature DevOps",
		},
		{
			name:      "short timeline",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.TimelineDays = 60 },
			reason:    "timeline of 60 days or less",
		},
		{
			name:      "one day timeline",
			stability: 100,
			mutate:    func(in *intake.Intake) { in.TimelineDays = 1 },
			reason:    "timeline of 60 days or less",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := capableIntake()
			tt.mutate(in)

			got := Select(in, tt.stability)
			if got.Archetype != Monolith {
				t.Errorf("archetype = %s, want %s", got.Archetype, Monolith)
			}
			if got.Method != MethodForced {
				t.Errorf("method = %s, want %s", got.Method, MethodForced)
			}
			if len(got.ForcedReasons) != 1 || !strings.Contains(got.ForcedReasons[0], tt.reason) {
				t.Errorf("forced reasons = %v, want one containing %q", got.ForcedReasons, tt.reason)
			}
		})
	}
}

func TestSelect_TeamSmallnessDominatesScaleSignals(t *testing.T) {
	in := capableIntake()
	in.TeamSize = intake.TeamSmall
	in.FundingStage = intake.FundingSeriesCPlus
	in.UsersAt12Months = intake.ScaleOver1M
	in.TimelineDays = 730

	got := Select(in, 100)
	if got.Archetype != Monolith || got.Method != MethodForced {
		t.Errorf("Select() = %+v, want forced monolith", got)
	}
}

func TestSelect_MicroservicesSuggested(t *testing.T) {
	in := capableIntake()
	in.TeamSize = intake.TeamEnterprise
	in.FundingStage = intake.FundingSeriesCPlus
	in.UsersAt12Months = intake.Scale100KTo1M
	in.TimelineDays = 365

	got := Select(in, 100)
	if got.Archetype != Microservices {
		t.Errorf("archetype = %s, want %s", got.Archetype, Microservices)
	}
	if got.Method != MethodSuggested {
		t.Errorf("method = %s, want %s", got.Method, MethodSuggested)
	}
	if len(got.ForcedReasons) != 0 {
		t.Errorf("forced reasons = %v, want none", got.ForcedReasons)
	}
}

func TestSelect_MicroservicesNeedsEveryScaleSignal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*intake.Intake)
	}{
		{"large but not enterprise team", func(in *intake.Intake) { in.TeamSize = intake.TeamLarge }},
		{"early funding", func(in *intake.Intake) { in.FundingStage = intake.FundingSeed }},
		{"modest user scale", func(in *intake.Intake) { in.UsersAt12Months = intake.Scale10KTo100K }},
		{"timeline under a year", func(in *intake.Intake) { in.TimelineDays = 364 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := capableIntake()
			in.TeamSize = intake.TeamEnterprise
			in.FundingStage = intake.FundingSeriesCPlus
			in.UsersAt12Months = intake.ScaleOver1M
			in.TimelineDays = 400
			tt.mutate(in)

			got := Select(in, 100)
			if got.Archetype != ModularMonolith || got.Method != MethodDefault {
				t.Errorf("Select() = %+v, want default modular monolith", got)
			}
		})
	}
}

func TestSelect_DefaultIsModularMonolith(t *testing.T) {
	got := Select(capableIntake(), 75)
	if got.Archetype != ModularMonolith {
		t.Errorf("archetype = %s, want %s", got.Archetype, ModularMonolith)
	}
	if got.Method != MethodDefault {
		t.Errorf("method = %s, want %s", got.Method, MethodDefault)
	}
}

func TestSelect_StabilityBoundary(t *testing.T) {
	in := capableIntake()
	if got := Select(in, 50); got.Method == MethodForced {
		t.Errorf("Select(_, 50) = %+v, want not forced", got)
	}
	if got := Select(in, 49); got.Method != MethodForced {
		t.Errorf("Select(_, 49) = %+v, want forced", got)
	}
}

func TestSelect_TimelineBoundaries(t *testing.T) {
	in := capableIntake()
	in.TimelineDays = 61
	if got := Select(in, 100); got.Method == MethodForced {
		t.Errorf("Select() with 61 days = %+v, want not forced", got)
	}
	in.TimelineDays = 0
	if got := Select(in, 100); got.Method == MethodForced {
		t.Errorf("Select() with unset timeline = %+v, want not forced", got)
	}
}
