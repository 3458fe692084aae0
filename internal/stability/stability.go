// Package stability detects risky combinations of intake fields,
// called tensions, and converts them into a 0-100 stability score with a
// four-level risk label.
//
// The analysis has two layers. The rule catalogue catches specific
// pairwise or conditional combinations; the amplification step then
// adds deductions for aggregate patterns no single rule can see, such
// as several critical tensions compounding. Funding, team, and
// compliance interact non-linearly, so both layers are needed.
package stability

import (
	"github.com/archforge/archforge/internal/intake"
)

// Severity of a tension. The deduction is derived from severity alone
// and is never set directly.
type Severity string

const (
	SeverityCrit Severity = "CRIT"
	SeverityWarn Severity = "WARN"
	SeverityInfo Severity = "INFO"
)

// Deduction returns the score deduction a severity carries.
func (s Severity) Deduction() int {
	switch s {
	case SeverityCrit:
		return 25
	case SeverityWarn:
		return 10
	default:
		return 0
	}
}

// Tension is one detected risk pattern. Immutable once created.
type Tension struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Deduction   int      `json:"deduction"`
	Mitigation  string   `json:"mitigation"`
}

// RiskLevel is the four-level label derived from the stability score.
type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
)

// Result is the analyzer's full output.
type Result struct {
	Score         int       `json:"score"`
	RiskLevel     RiskLevel `json:"risk_level"`
	Tensions      []Tension `json:"tensions,omitempty"`
	Amplification int       `json:"amplification"`
}

// ShortTimelineDays is the boundary below which a timeline counts as
// short for amplification purposes.
const ShortTimelineDays = 90

// rule is one condition→tension entry in the catalogue. Each rule is
// evaluated exactly once per run and fires at most once.
type rule struct {
	id         string
	severity   Severity
	title      string
	describe   string
	mitigation string
	matches    func(*intake.Intake) bool
}

var rules = []rule{
	{
		id:         "TEN-001",
		severity:   SeverityCrit,
		title:      "Regulated healthcare on bootstrap funding",
		describe:   "HIPAA compliance demands dedicated security and audit investment that bootstrapped budgets rarely sustain.",
		mitigation: "Secure funding earmarked for compliance work, or narrow the first release to non-PHI workflows.",
		matches: func(in *intake.Intake) bool {
			return in.HasCompliance(intake.ComplianceHIPAA) && in.FundingStage == intake.FundingBootstrapped
		},
	},
	{
		id:         "TEN-002",
		severity:   SeverityCrit,
		title:      "Hypergrowth target without funding",
		describe:   "A 12-month target above one million users implies infrastructure and hiring spend a bootstrapped company cannot cover.",
		mitigation: "Re-baseline the 12-month target or plan a funding round before the growth inflection.",
		matches: func(in *intake.Intake) bool {
			return in.FundingStage == intake.FundingBootstrapped && in.UsersAt12Months == intake.ScaleOver1M
		},
	},
	{
		id:         "TEN-003",
		severity:   SeverityWarn,
		title:      "Regulated scale before institutional funding",
		describe:   "Chasing a mid-to-large market under compliance obligations on seed-or-earlier funding stretches both budget and team.",
		mitigation: "Stage compliance scope behind funding milestones.",
		matches: func(in *intake.Intake) bool {
			return len(in.ComplianceFrameworks) > 0 &&
				intake.MidOrLargeMarket(in.UsersAt12Months) &&
				in.SeedOrEarlier()
		},
	},
	{
		id:         "TEN-004",
		severity:   SeverityWarn,
		title:      "Aggressive availability target on early funding",
		describe:   "Four-nines availability requires redundancy and on-call investment beyond a seed-stage budget.",
		mitigation: "Commit to 99.9% for the first year and revisit after funding.",
		matches: func(in *intake.Intake) bool {
			return intake.VeryHighAvailability(in.AvailabilityTarget) && in.SeedOrEarlier()
		},
	},
	{
		id:         "TEN-005",
		severity:   SeverityCrit,
		title:      "FedRAMP with a small team",
		describe:   "FedRAMP authorization is a multi-quarter program; solo and small teams cannot absorb it alongside product work.",
		mitigation: "Partner with an authorized platform or defer government customers.",
		matches: func(in *intake.Intake) bool {
			return in.HasCompliance(intake.ComplianceFedRAMP) && in.SmallTeam()
		},
	},
	{
		id:         "TEN-006",
		severity:   SeverityWarn,
		title:      "Solo build on a short timeline",
		describe:   "A solo developer with under three months of runway has no slack for the unknowns every greenfield build hits.",
		mitigation: "Cut scope to a single core journey or extend the timeline.",
		matches: func(in *intake.Intake) bool {
			return in.TeamSize == intake.TeamSolo &&
				in.TimelineDays >= 1 && in.TimelineDays <= ShortTimelineDays
		},
	},
	{
		id:         "TEN-007",
		severity:   SeverityWarn,
		title:      "Junior-heavy team on complex domain logic",
		describe:   "Rules-engine and algorithmic domains punish teams without senior design experience.",
		mitigation: "Add at least one senior engineer who owns the domain model.",
		matches: func(in *intake.Intake) bool {
			return in.SeniorityMix == intake.SeniorityJuniorHeavy &&
				(in.DomainModel == intake.DomainRulesEngine || in.DomainModel == intake.DomainAlgorithmic)
		},
	},
	{
		id:         "TEN-008",
		severity:   SeverityWarn,
		title:      "High availability without operational maturity",
		describe:   "Manual or minimal DevOps practice cannot meet a four-nines availability target.",
		mitigation: "Invest in automated deploys and alerting before committing to the SLA.",
		matches: func(in *intake.Intake) bool {
			return (in.DevOpsMaturity == intake.DevOpsManual || in.DevOpsMaturity == intake.DevOpsMinimal) &&
				intake.VeryHighAvailability(in.AvailabilityTarget)
		},
	},
	{
		id:         "TEN-009",
		severity:   SeverityWarn,
		title:      "Viral growth ambition on a minimal budget",
		describe:   "Viral traffic spikes require over-provisioning headroom a minimal budget cannot buy.",
		mitigation: "Plan an elastic scaling story and a degradation mode for spike days.",
		matches: func(in *intake.Intake) bool {
			return in.GrowthPattern == intake.GrowthViralPotential && in.BudgetTier == intake.BudgetMinimal
		},
	},
	{
		id:         "TEN-010",
		severity:   SeverityCrit,
		title:      "Card data handled by a junior-heavy team",
		describe:   "PCI-DSS scope with a junior-heavy team invites audit failures and breach liability.",
		mitigation: "Tokenize through a payment provider so card data never touches your systems.",
		matches: func(in *intake.Intake) bool {
			return in.HasCompliance(intake.CompliancePCIDSS) && in.SeniorityMix == intake.SeniorityJuniorHeavy
		},
	},
	{
		id:         "TEN-011",
		severity:   SeverityWarn,
		title:      "Backward compatibility promised on an exploratory roadmap",
		describe:   "An exploratory product direction will break interfaces; promising compatibility now creates contradictory obligations.",
		mitigation: "Mark current APIs experimental until the roadmap stabilizes.",
		matches: func(in *intake.Intake) bool {
			return in.RoadmapVolatility == intake.VolatilityExploratory && in.BackwardCompatRequired
		},
	},
	{
		id:         "TEN-012",
		severity:   SeverityWarn,
		title:      "Data migration squeezed into a short timeline",
		describe:   "Legacy migration always uncovers data-quality surprises; four months is the realistic floor.",
		mitigation: "Run the migration as a parallel track with its own milestone.",
		matches: func(in *intake.Intake) bool {
			return in.MigrationRequired && in.TimelineDays >= 1 && in.TimelineDays <= 120
		},
	},
	{
		id:         "TEN-013",
		severity:   SeverityInfo,
		title:      "Event sourcing with a small team",
		describe:   "Event-sourced systems carry projection and replay machinery that small teams must maintain alongside features.",
		mitigation: "Limit event sourcing to the aggregates that truly need history.",
		matches: func(in *intake.Intake) bool {
			return in.EventSourcing && in.SmallTeam()
		},
	},
	{
		id:         "TEN-014",
		severity:   SeverityInfo,
		title:      "Offline support combined with realtime",
		describe:   "Offline-first and realtime push pull the sync model in opposite directions; reconciliation logic will dominate.",
		mitigation: "Decide which mode is primary and treat the other as best-effort.",
		matches: func(in *intake.Intake) bool {
			return in.OfflineSupport && in.RequiresRealtime
		},
	},
}

// Analyze evaluates every rule, applies amplification, and returns the
// stability result. Pure function of the intake.
func Analyze(in *intake.Intake) Result {
	var tensions []Tension
	for _, r := range rules {
		if r.matches(in) {
			tensions = append(tensions, Tension{
				ID:          r.id,
				Severity:    r.severity,
				Title:       r.title,
				Description: r.describe,
				Deduction:   r.severity.Deduction(),
				Mitigation:  r.mitigation,
			})
		}
	}

	amp := amplification(in, tensions)

	score := 100
	for _, t := range tensions {
		score -= t.Deduction
	}
	score -= amp
	if score < 0 {
		score = 0
	}

	return Result{
		Score:         score,
		RiskLevel:     RiskFor(score),
		Tensions:      tensions,
		Amplification: amp,
	}
}

// amplification adds deductions for aggregate patterns that no single
// pairwise rule captures.
func amplification(in *intake.Intake, tensions []Tension) int {
	amp := 0

	critCount := 0
	for _, t := range tensions {
		if t.Severity == SeverityCrit {
			critCount++
		}
	}
	if critCount >= 3 {
		amp += 10
	}

	shortTimeline := in.TimelineDays >= 1 && in.TimelineDays <= ShortTimelineDays
	if in.FundingStage == intake.FundingBootstrapped && shortTimeline &&
		intake.MidOrLargeMarket(in.UsersAt12Months) {
		amp += 15
	}

	if len(in.ComplianceFrameworks) >= 3 && in.SeedOrEarlier() {
		amp += 10
	}

	if in.TeamSize == intake.TeamSolo &&
		(in.RequiresRealtime || in.AIDataPolicy == intake.PolicyNoExternal) {
		amp += 10
	}

	return amp
}

// RiskFor maps a stability score to its risk label. Boundaries are
// exact: 24 is Critical, 25 is High, 49 is High, 50 is Medium.
func RiskFor(score int) RiskLevel {
	switch {
	case score < 25:
		return RiskCritical
	case score < 50:
		return RiskHigh
	case score < 75:
		return RiskMedium
	default:
		return RiskLow
	}
}
