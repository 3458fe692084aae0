package pressure

// Pattern is the structural architecture pattern derived from the
// weighted pressure score.
type Pattern string

const (
	PatternSimpleMonolith     Pattern = "simple_monolith"
	PatternStructuredMonolith Pattern = "structured_monolith"
	PatternModularMonolith    Pattern = "modular_monolith"
	PatternEventDriven        Pattern = "event_driven"
	PatternDistributed        Pattern = "distributed_service_boundaries"
)

// PatternFor maps a weighted pressure score to its pattern. Pure
// threshold lookup, no hysteresis: each run is independent, so a
// one-point change flipping the pattern at a boundary is acceptable.
func PatternFor(weighted int) Pattern {
	switch {
	case weighted <= 20:
		return PatternSimpleMonolith
	case weighted <= 40:
		return PatternStructuredMonolith
	case weighted <= 60:
		return PatternModularMonolith
	case weighted <= 80:
		return PatternEventDriven
	default:
		return PatternDistributed
	}
}
