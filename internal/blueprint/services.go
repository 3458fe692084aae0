package blueprint

import (
	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/intake"
)

// Service is one unit of the decomposition. For monolith archetypes a
// "service" is a module inside the single deployable; Kind records
// which.
type Service struct {
	Name           string `json:"name"`
	Kind           string `json:"kind"` // "deployable" or "module"
	Responsibility string `json:"responsibility"`
}

// capabilityServices maps must-have capabilities to decomposition
// units. Only declared capabilities produce entries.
var capabilityServices = []struct {
	cap            intake.Capability
	name           string
	responsibility string
}{
	{intake.CapAccounts, "identity", "Authentication, sessions, and profile data."},
	{intake.CapBilling, "billing", "Plans, payment provider integration, invoices."},
	{intake.CapIngestion, "ingestion", "External data intake, normalization, and validation."},
	{intake.CapNotifications, "notifications", "Outbound email and in-app notification delivery."},
	{intake.CapReporting, "reporting", "Aggregation and export of operational reports."},
	{intake.CapSearch, "search", "Index maintenance and query serving."},
	{intake.CapAdminConsole, "admin", "Back-office configuration and support tooling."},
	{intake.CapAIAssist, "ai-gateway", "Model provider access, prompt assembly, and response guards."},
}

// DecomposeServices derives the service list from the archetype and
// the declared capabilities. The core domain always appears first.
func DecomposeServices(in *intake.Intake, dec archetype.Decision) []Service {
	kind := "module"
	if dec.Archetype == archetype.Microservices {
		kind = "deployable"
	}

	out := []Service{{
		Name:           "core",
		Kind:           kind,
		Responsibility: "The primary domain workflows described in the solution summary.",
	}}

	for _, cs := range capabilityServices {
		if in.HasCapability(cs.cap) {
			out = append(out, Service{Name: cs.name, Kind: kind, Responsibility: cs.responsibility})
		}
	}

	// A plain monolith collapses to one deployable carrying the
	// modules above.
	if dec.Archetype == archetype.Monolith {
		return []Service{{
			Name:           "app",
			Kind:           "deployable",
			Responsibility: "Single deployable containing all modules: " + moduleNames(out),
		}}
	}

	return out
}

func moduleNames(services []Service) string {
	names := ""
	for i, s := range services {
		if i > 0 {
			names += ", "
		}
		names += s.Name
	}
	return names
}
