// Package signals aggregates the upstream analysis artifacts into five
// normalized 0-100 indexes. The indexes are terminal: nothing upstream
// ever reads them back.
package signals

import (
	"math"

	"github.com/archforge/archforge/internal/conflict"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/pressure"
	"github.com/archforge/archforge/internal/stability"
)

// Signals holds the five derived indexes.
type Signals struct {
	Complexity          int `json:"complexity"`
	RegulatoryBurden    int `json:"regulatory_burden"`
	FinancialIntegrity  int `json:"financial_integrity"`
	ScalabilityPressure int `json:"scalability_pressure"`
	OperationalRisk     int `json:"operational_risk"`
}

// Derive computes every index. Each is a documented weighted
// combination, clamped to [0,100].
func Derive(pr pressure.Result, st stability.Result, conflicts []conflict.Conflict, in *intake.Intake) Signals {
	return Signals{
		Complexity:          complexityIndex(pr, st),
		RegulatoryBurden:    regulatoryIndex(pr, in),
		FinancialIntegrity:  financialIndex(pr, conflicts),
		ScalabilityPressure: scalabilityIndex(pr),
		OperationalRisk:     operationalIndex(st, conflicts, in),
	}
}

// complexityIndex blends structural pressure (60%) with instability
// (40%): a tense intake is harder to build even at low pressure.
func complexityIndex(pr pressure.Result, st stability.Result) int {
	return clamp(0.6*float64(pr.Weighted) + 0.4*float64(100-st.Score))
}

// regulatoryIndex scales the regulatory pressure dimension and adds a
// flat increment per declared framework.
func regulatoryIndex(pr pressure.Result, in *intake.Intake) int {
	return clamp(8*pr.Regulatory + 5*float64(len(in.ComplianceFrameworks)))
}

// financialIndex scales the financial pressure dimension; a blocking
// conflict anywhere in the set raises it by a flat 15, since blocking
// conflicts in this catalogue are all financial-consistency hazards.
func financialIndex(pr pressure.Result, conflicts []conflict.Conflict) int {
	base := 10 * pr.Financial
	if conflict.HasBlocking(conflicts) {
		base += 15
	}
	return clamp(base)
}

// scalabilityIndex averages the scale and availability dimensions.
func scalabilityIndex(pr pressure.Result) int {
	return clamp(10 * (pr.Scale + pr.Availability) / 2)
}

// operationalIndex combines instability (half weight), severe-or-worse
// conflicts, and team-capability penalties.
func operationalIndex(st stability.Result, conflicts []conflict.Conflict, in *intake.Intake) int {
	v := 0.5 * float64(100-st.Score)

	for _, c := range conflicts {
		if c.Severity == conflict.SeveritySevere || c.Severity == conflict.SeverityBlocking {
			v += 8
		}
	}

	if in.DevOpsMaturity == intake.DevOpsManual || in.DevOpsMaturity == intake.DevOpsMinimal {
		v += 15
	}
	if in.SeniorityMix == intake.SeniorityJuniorHeavy {
		v += 10
	}
	if in.OnCallCoverage == intake.OnCallNone && in.AvailabilityTarget != intake.AvailTwoNines {
		v += 5
	}

	return clamp(v)
}

func clamp(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}
