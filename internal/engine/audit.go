package engine

import "time"

// StageStatus is the outcome recorded for one pipeline stage.
type StageStatus string

const (
	StagePassed   StageStatus = "passed"
	StageRepaired StageStatus = "repaired"
	StageFailed   StageStatus = "failed"
	StagePending  StageStatus = "pending"
)

// Stage identifiers, in pipeline order.
const (
	StageReadiness   = "readiness"
	StageAmbiguity   = "ambiguity"
	StageStability   = "stability"
	StagePressure    = "pressure"
	StagePattern     = "pattern"
	StageConflicts   = "conflicts"
	StageArchetype   = "archetype"
	StageProductSpec = "product_spec"
	StageQuality     = "quality"
	StageSignals     = "signals"
)

// AuditEntry records one stage invocation. Entries are append-only:
// the orchestrator creates each one exactly once and never edits a
// prior entry. "Repaired" is a logging convention: it marks a stage
// that compensated for an earlier problem, not a re-execution.
type AuditEntry struct {
	ID         string      `json:"id"`
	Stage      string      `json:"stage"`
	Status     StageStatus `json:"status"`
	Attempts   int         `json:"attempts"`
	Details    string      `json:"details,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	DurationMs int64       `json:"duration_ms"`
	Repairs    []string    `json:"repairs,omitempty"`
}

// auditLog accumulates entries for one run. It is a plain value owned
// by the run, never shared or global.
type auditLog struct {
	entries []AuditEntry
	newID   func() string
	now     func() time.Time
}

// record appends one entry for a stage whose work ran between start
// and now.
func (a *auditLog) record(stage string, status StageStatus, details string, start time.Time, repairs ...string) {
	now := a.now()
	a.entries = append(a.entries, AuditEntry{
		ID:         a.newID(),
		Stage:      stage,
		Status:     status,
		Attempts:   1,
		Details:    details,
		Timestamp:  now,
		DurationMs: now.Sub(start).Milliseconds(),
		Repairs:    repairs,
	})
}
