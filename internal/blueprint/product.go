// Package blueprint synthesizes the concrete deliverables of a
// completed pipeline run: the product requirements document, the
// recommended technology stack, the service decomposition, and the
// scaling plan. Everything here is deterministic text and table
// synthesis; any LLM rewording of these artifacts is a downstream
// collaborator, never part of this package.
package blueprint

import (
	"fmt"

	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/intake"
)

// Priority ranks a feature. P0 features come from the must-have
// capability set; nice-to-haves land at P1.
type Priority string

const (
	P0 Priority = "P0"
	P1 Priority = "P1"
	P2 Priority = "P2"
)

// Feature is one product feature with its delivery priority.
type Feature struct {
	Name        string   `json:"name"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
}

// NFRCategory tags a non-functional requirement so the quality gate
// can check category coverage.
type NFRCategory string

const (
	NFRCompliance   NFRCategory = "compliance"
	NFRConcurrency  NFRCategory = "concurrency"
	NFRRetry        NFRCategory = "retry"
	NFRReadScaling  NFRCategory = "read_scaling"
	NFRAvailability NFRCategory = "availability"
	NFRSecurity     NFRCategory = "security"
)

// NFR is one non-functional requirement.
type NFR struct {
	ID        string      `json:"id"`
	Category  NFRCategory `json:"category"`
	Statement string      `json:"statement"`
}

// ProductSpec is the product requirements document the quality gate
// grades and the phase-generation collaborator consumes.
type ProductSpec struct {
	Personas           []string  `json:"personas"`
	Features           []Feature `json:"features"`
	CoreJourneys       []string  `json:"core_journeys"`
	AcceptanceCriteria []string  `json:"acceptance_criteria"`
	NFRs               []NFR     `json:"nfrs"`
}

// HasNFRCategory reports whether the spec contains an NFR in the
// given category.
func (p *ProductSpec) HasNFRCategory(c NFRCategory) bool {
	for _, n := range p.NFRs {
		if n.Category == c {
			return true
		}
	}
	return false
}

// capabilityFeatures maps capability flags to feature entries.
var capabilityFeatures = map[intake.Capability]Feature{
	intake.CapAccounts: {
		Name: "Account management", Description: "Sign-up, authentication, and profile management for every persona.",
	},
	intake.CapBilling: {
		Name: "Billing", Description: "Plan selection, payment collection, and invoice history.",
	},
	intake.CapIngestion: {
		Name: "Data ingestion", Description: "Bulk and streaming intake of externally sourced records.",
	},
	intake.CapNotifications: {
		Name: "Notifications", Description: "Event-driven email and in-app notifications with per-user preferences.",
	},
	intake.CapReporting: {
		Name: "Reporting", Description: "Exportable operational and financial reports.",
	},
	intake.CapSearch: {
		Name: "Search", Description: "Indexed search across the primary record types.",
	},
	intake.CapAdminConsole: {
		Name: "Admin console", Description: "Back-office tooling for support and configuration.",
	},
	intake.CapAIAssist: {
		Name: "AI assistance", Description: "Model-backed suggestions embedded in the core journeys.",
	},
}

// BuildProductSpec synthesizes the PRD from the intake and the chosen
// archetype. Deterministic: same inputs, same document.
func BuildProductSpec(in *intake.Intake, dec archetype.Decision) ProductSpec {
	spec := ProductSpec{}

	spec.Personas = append(spec.Personas, in.TargetPersonas...)

	for _, c := range in.MustHaveCapabilities {
		if f, ok := capabilityFeatures[c]; ok {
			f.Priority = P0
			spec.Features = append(spec.Features, f)
		}
	}
	for _, c := range in.NiceToHaveCapabilities {
		if f, ok := capabilityFeatures[c]; ok {
			f.Priority = P1
			spec.Features = append(spec.Features, f)
		}
	}

	spec.CoreJourneys = append(spec.CoreJourneys, in.CoreJourneys...)

	for _, f := range spec.Features {
		if f.Priority == P0 {
			spec.AcceptanceCriteria = append(spec.AcceptanceCriteria,
				fmt.Sprintf("%s works end to end for every declared persona before launch.", f.Name))
		}
	}
	if in.AcceptanceNotes != "" {
		spec.AcceptanceCriteria = append(spec.AcceptanceCriteria, in.AcceptanceNotes)
	}

	spec.NFRs = buildNFRs(in)

	return spec
}

func buildNFRs(in *intake.Intake) []NFR {
	var nfrs []NFR
	add := func(cat NFRCategory, statement string) {
		nfrs = append(nfrs, NFR{
			ID:        fmt.Sprintf("NFR-%03d", len(nfrs)+1),
			Category:  cat,
			Statement: statement,
		})
	}

	for _, c := range in.ComplianceFrameworks {
		add(NFRCompliance, fmt.Sprintf("All in-scope data handling satisfies %s controls, verified before launch.", c))
	}
	if in.RequiresRealtime {
		add(NFRConcurrency, fmt.Sprintf(
			"Realtime delivery over %s sustains the %s peak-concurrency tier without message loss.",
			in.RealtimeProtocol, in.PeakConcurrencyTier))
	}
	if in.BackgroundJobs {
		add(NFRRetry, "Background jobs retry with backoff and land in a dead-letter queue after exhaustion; no silent drops.")
	}
	if in.RequiresReadReplicas {
		add(NFRReadScaling, "Read traffic is served from replicas; replication lag stays within the freshness budget of each read path.")
	}
	if in.AvailabilityTarget != "" {
		add(NFRAvailability, fmt.Sprintf("Monthly availability meets or exceeds %s%%.", in.AvailabilityTarget))
	}
	if len(in.SensitiveDataClasses) > 0 {
		add(NFRSecurity, "Declared sensitive data classes are encrypted at rest and in transit, with access audited.")
	}

	return nfrs
}
