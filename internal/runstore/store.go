// Package runstore persists pipeline runs between invocations. The
// decision engine itself is stateless; this store implements the
// caller's side of the halt/resume contract: a halted run's intake
// and questions must survive until answers arrive.
//
// Store is an interface so tools depend on the abstraction; the
// SQLite implementation backs the server, the in-memory one backs
// tests.
package runstore

import (
	"errors"

	"github.com/archforge/archforge/internal/engine"
)

// ErrNotFound is returned when a run ID has no stored record.
var ErrNotFound = errors.New("run not found")

// Record is one persisted pipeline run. JSON payloads are stored
// opaquely: the store never interprets them.
type Record struct {
	ID            string       `json:"id"`
	State         engine.State `json:"state"`
	IntakeJSON    string       `json:"intake_json"`
	QuestionsJSON string       `json:"questions_json,omitempty"`
	BlueprintJSON string       `json:"blueprint_json,omitempty"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

// Store defines run persistence. Save is an upsert keyed by ID.
type Store interface {
	Save(rec *Record) error
	Load(id string) (*Record, error)
	List() ([]Record, error)
	Delete(id string) error
	Close() error
}
