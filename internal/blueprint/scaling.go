package blueprint

import (
	"fmt"

	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/pressure"
)

// ScalingPlan restates the load-bearing operational choices in one
// place for the phase-generation collaborator.
type ScalingPlan struct {
	ReadModel    string `json:"read_model"`
	CachePosture string `json:"cache_posture"`
	Concurrency  string `json:"concurrency"`
	Availability string `json:"availability"`
}

// BuildScalingPlan derives the plan from the intake and the pressure
// pattern.
func BuildScalingPlan(in *intake.Intake, pat pressure.Pattern) ScalingPlan {
	p := ScalingPlan{}

	if in.RequiresReadReplicas {
		p.ReadModel = "Primary for writes, read replicas for query traffic."
	} else {
		p.ReadModel = "Single primary serves reads and writes."
	}

	if in.HasCacheLayer {
		p.CachePosture = "Cache tier in front of hot read paths; invalidation on write."
	} else {
		p.CachePosture = "No cache tier; revisit if read latency degrades."
	}

	p.Concurrency = fmt.Sprintf("Provision for the %s peak-concurrency tier with headroom for the %s growth pattern.",
		in.PeakConcurrencyTier, in.GrowthPattern)

	p.Availability = fmt.Sprintf("Target %s%% availability under the %s pattern.", in.AvailabilityTarget, pat)

	return p
}
