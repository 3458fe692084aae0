// Package archetype chooses the deployable shape of the system
// (monolith, modular monolith, or microservices) via an ordered chain
// of forcing rules. The order is the contract: a small team with a
// long timeline and late-stage funding is still forced to a monolith,
// because team smallness dominates every scale signal.
package archetype

import (
	"github.com/archforge/archforge/internal/intake"
)

// Archetype is the high-level structural choice.
type Archetype string

const (
	Monolith        Archetype = "monolith"
	ModularMonolith Archetype = "modular_monolith"
	Microservices   Archetype = "microservices"
)

// Method records how the archetype was chosen. Forced decisions always
// win over suggested and default ones.
type Method string

const (
	MethodForced    Method = "FORCED"
	MethodSuggested Method = "SUGGESTED"
	MethodDefault   Method = "DEFAULT"
)

// Decision is the selector's output. ForcedReasons is non-empty only
// for forced decisions.
type Decision struct {
	Archetype     Archetype `json:"archetype"`
	Method        Method    `json:"method"`
	ForcedReasons []string  `json:"forced_reasons,omitempty"`
}

// Timeline boundaries for the forcing chain.
const (
	shortTimelineDays = 60
	longTimelineDays  = 365
)

// Select walks the forcing chain top to bottom; the first match wins.
func Select(in *intake.Intake, stabilityScore int) Decision {
	if stabilityScore < 50 {
		return forced("stability score below 50: the intake carries too many unresolved tensions for a distributed build")
	}

	if in.SmallTeam() {
		return forced("solo or small team: service boundaries multiply coordination cost the team cannot pay")
	}

	if in.SeniorityMix == intake.SeniorityJuniorHeavy ||
		in.DevOpsMaturity == intake.DevOpsManual ||
		in.DevOpsMaturity == intake.DevOpsMinimal {
		return forced("junior-heavy seniority or immature DevOps practice: operating many deployables is out of reach")
	}

	if in.TimelineDays >= 1 && in.TimelineDays <= shortTimelineDays {
		return forced("timeline of 60 days or less: there is no room for distributed-system plumbing")
	}

	if in.TeamSize == intake.TeamEnterprise &&
		in.LateStageFunding() &&
		(in.UsersAt12Months == intake.Scale100KTo1M || in.UsersAt12Months == intake.ScaleOver1M) &&
		in.TimelineDays >= longTimelineDays {
		return Decision{Archetype: Microservices, Method: MethodSuggested}
	}

	return Decision{Archetype: ModularMonolith, Method: MethodDefault}
}

func forced(reason string) Decision {
	return Decision{
		Archetype:     Monolith,
		Method:        MethodForced,
		ForcedReasons: []string{reason},
	}
}
