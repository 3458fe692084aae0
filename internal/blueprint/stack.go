package blueprint

import (
	"github.com/archforge/archforge/internal/archetype"
	"github.com/archforge/archforge/internal/intake"
	"github.com/archforge/archforge/internal/pressure"
)

// Stack is the recommended technology selection. Each entry is a
// category recommendation, not a mandate; the phase-generation
// collaborator treats these as defaults.
type Stack struct {
	Runtime       string `json:"runtime"`
	APIStyle      string `json:"api_style"`
	Datastore     string `json:"datastore"`
	Cache         string `json:"cache,omitempty"`
	AsyncBackbone string `json:"async_backbone,omitempty"`
	Realtime      string `json:"realtime,omitempty"`
	Deployment    string `json:"deployment"`
}

var datastoreProducts = map[intake.Datastore]string{
	intake.DatastoreRelational: "PostgreSQL",
	intake.DatastoreDocument:   "MongoDB",
	intake.DatastoreKeyValue:   "Redis (persistent)",
	intake.DatastoreGraph:      "Neo4j",
	intake.DatastoreLedger:     "PostgreSQL with append-only ledger tables",
	intake.DatastoreTimeSeries: "TimescaleDB",
}

var apiStyles = map[intake.APIStyle]string{
	intake.APIStyleREST:    "REST over HTTP/JSON",
	intake.APIStyleGraphQL: "GraphQL",
	intake.APIStyleGRPC:    "gRPC",
	intake.APIStyleMixed:   "REST externally, gRPC between services",
}

var realtimeTransports = map[intake.RealtimeProtocol]string{
	intake.RealtimeWebsocket:   "WebSocket gateway",
	intake.RealtimeSSE:         "Server-sent events",
	intake.RealtimeLongPolling: "Long polling endpoint",
	intake.RealtimeWebRTC:      "WebRTC with TURN relays",
}

// RecommendStack derives the stack from the intake's enumerated
// choices plus the derived pattern and archetype.
func RecommendStack(in *intake.Intake, pat pressure.Pattern, dec archetype.Decision) Stack {
	s := Stack{
		Runtime:   "Go services on Linux containers",
		APIStyle:  apiStyles[in.APIStyle],
		Datastore: datastoreProducts[in.PrimaryDatastore],
	}
	if s.APIStyle == "" {
		s.APIStyle = apiStyles[intake.APIStyleREST]
	}
	if s.Datastore == "" {
		s.Datastore = datastoreProducts[intake.DatastoreRelational]
	}

	if in.HasCacheLayer {
		s.Cache = "Redis cache tier"
	}

	// Event-driven and distributed patterns need a broker; background
	// jobs alone only need a queue.
	switch {
	case pat == pressure.PatternEventDriven || pat == pressure.PatternDistributed:
		s.AsyncBackbone = "NATS JetStream"
	case in.BackgroundJobs || in.ScheduledTasks:
		s.AsyncBackbone = "Database-backed job queue"
	}

	if in.RequiresRealtime {
		s.Realtime = realtimeTransports[in.RealtimeProtocol]
	}

	switch dec.Archetype {
	case archetype.Microservices:
		s.Deployment = "Kubernetes, one deployment per service"
	case archetype.ModularMonolith:
		s.Deployment = "Single container image behind a load balancer"
	default:
		s.Deployment = "Single container image, vertically scaled"
	}

	return s
}
