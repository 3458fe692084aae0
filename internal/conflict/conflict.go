// Package conflict scans an intake for mutually incompatible technical
// choices. Each rule checks one specific multi-field combination and
// fires at most once per run; rules are independent, so overlapping
// root causes surface as multiple conflicts with additive
// recommendations rather than one deduplicated finding.
package conflict

import "github.com/archforge/archforge/internal/intake"

// Severity orders conflicts from advisory to show-stopping.
type Severity string

const (
	SeveritySoft     Severity = "Soft"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityBlocking Severity = "Blocking"
)

// Conflict is one detected incompatibility. Immutable once created.
type Conflict struct {
	ID             string   `json:"id"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// rule is one entry in the catalogue. severity may be escalated by
// escalate when the base combination worsens under a further condition.
type rule struct {
	id        string
	severity  Severity
	message   string
	recommend string
	matches   func(*intake.Intake) bool
	// escalate, when non-nil and true, raises the conflict to the
	// escalated severity.
	escalate   func(*intake.Intake) bool
	escalateTo Severity
}

var rules = []rule{
	{
		id:       "CON-001",
		severity: SeveritySevere,
		message:  "A document-oriented primary database cannot provide the transactional guarantees financial logic requires.",
		recommend: "Move financial records to a relational or ledger datastore, " +
			"or isolate them behind a transactional service.",
		matches: func(in *intake.Intake) bool {
			transactional := in.ConsistencyRequirement == intake.ConsistencyStrong ||
				in.RequiresDoubleEntryAudit
			return in.PrimaryDatastore == intake.DatastoreDocument &&
				in.HasFinancialLogic && transactional
		},
		escalate: func(in *intake.Intake) bool {
			return in.RequiresDoubleEntryAudit
		},
		escalateTo: SeverityBlocking,
	},
	{
		id:        "CON-002",
		severity:  SeverityBlocking,
		message:   "Double-entry ledger accounting is impossible under eventual consistency.",
		recommend: "Require strong consistency for the ledger, whatever the rest of the system does.",
		matches: func(in *intake.Intake) bool {
			return in.ConsistencyRequirement == intake.ConsistencyEventual &&
				in.RequiresDoubleEntryAudit
		},
	},
	{
		id:        "CON-003",
		severity:  SeverityModerate,
		message:   "Financial or compliance obligations without API versioning make every interface change a breaking one.",
		recommend: "Adopt versioned API paths or headers before the first external consumer.",
		matches: func(in *intake.Intake) bool {
			return !in.APIVersioning &&
				(in.HasFinancialLogic || len(in.ComplianceFrameworks) > 0)
		},
	},
	{
		id:        "CON-004",
		severity:  SeverityModerate,
		message:   "High peak concurrency without a cache layer pushes every read to the primary datastore.",
		recommend: "Introduce a cache tier for hot reads before load testing.",
		matches: func(in *intake.Intake) bool {
			return (in.PeakConcurrencyTier == intake.LoadHigh || in.PeakConcurrencyTier == intake.LoadExtreme) &&
				!in.HasCacheLayer
		},
	},
	{
		id:        "CON-005",
		severity:  SeveritySevere,
		message:   "A four-nines availability target cannot be met on the lowest budget tiers.",
		recommend: "Either fund redundancy and on-call coverage or relax the availability target.",
		matches: func(in *intake.Intake) bool {
			return intake.VeryHighAvailability(in.AvailabilityTarget) &&
				(in.BudgetTier == intake.BudgetMinimal || in.BudgetTier == intake.BudgetLow)
		},
	},
	{
		id:       "CON-006",
		severity: SeveritySevere,
		message: "HIPAA or FedRAMP data sent to an external AI provider with cross-region egress " +
			"allowed violates the declared compliance posture.",
		recommend: "Self-host inference, or disable cross-region egress and verify the provider's regional guarantees.",
		matches: func(in *intake.Intake) bool {
			regulated := in.HasCompliance(intake.ComplianceHIPAA) || in.HasCompliance(intake.ComplianceFedRAMP)
			return regulated &&
				in.AIProvider == intake.ProviderExternalAPI &&
				in.CrossRegionEgressAllowed
		},
	},
	{
		id:        "CON-007",
		severity:  SeveritySevere,
		message:   "Backward compatibility is promised but the API carries no versioning mechanism.",
		recommend: "Version the API now; retrofitting versioning after consumers exist is far harder.",
		matches: func(in *intake.Intake) bool {
			return in.BackwardCompatRequired && !in.APIVersioning
		},
	},
	{
		id:        "CON-008",
		severity:  SeverityModerate,
		message:   "A legacy data migration is planned but the team is too small to run it alongside the build.",
		recommend: "Budget the migration as its own workstream or contract it out.",
		matches: func(in *intake.Intake) bool {
			return in.MigrationRequired && in.SmallTeam()
		},
	},
	{
		id:        "CON-009",
		severity:  SeverityModerate,
		message:   "Cost-first prioritization contradicts a very high availability target.",
		recommend: "Pick one: availability costs money. Decide which number moves.",
		matches: func(in *intake.Intake) bool {
			return in.PriorityFocus == intake.PriorityCostFirst &&
				intake.VeryHighAvailability(in.AvailabilityTarget)
		},
	},
	{
		id:        "CON-010",
		severity:  SeveritySoft,
		message:   "Key-value primary storage with faceted search requirements will need a second search-optimized store.",
		recommend: "Plan a search index alongside the primary store from day one.",
		matches: func(in *intake.Intake) bool {
			return in.PrimaryDatastore == intake.DatastoreKeyValue &&
				in.SearchRequirements == intake.SearchFaceted
		},
	},
	{
		id:        "CON-011",
		severity:  SeveritySoft,
		message:   "WebRTC realtime with single-region geography limits peer connectivity quality.",
		recommend: "Add TURN relays in each user region or accept degraded connections.",
		matches: func(in *intake.Intake) bool {
			return in.RealtimeProtocol == intake.RealtimeWebRTC &&
				in.GeographicSpread == intake.GeoSingleRegion
		},
	},
}

// Detect evaluates every rule against the intake. The result order
// matches the catalogue order.
func Detect(in *intake.Intake) []Conflict {
	var out []Conflict
	for _, r := range rules {
		if !r.matches(in) {
			continue
		}
		sev := r.severity
		if r.escalate != nil && r.escalate(in) {
			sev = r.escalateTo
		}
		out = append(out, Conflict{
			ID:             r.id,
			Severity:       sev,
			Message:        r.message,
			Recommendation: r.recommend,
		})
	}
	return out
}

// HasBlocking reports whether any conflict in the set is Blocking.
func HasBlocking(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}
