// Package clarify implements the ambiguity detector and clarification
// resolver, the pipeline's second halt point.
//
// The detector scores how specific the intake's free-text problem and
// solution descriptions are across weighted dimensions. Below the
// threshold, the pipeline halts with a typed question set; on resume,
// answers are merged into the analysis context WITHOUT re-running the
// clarity check. Once any answer exists, even a partial set, the
// pipeline commits to forward progress rather than looping on
// clarification forever. That guarantee is part of the contract.
package clarify

import "strings"

// HaltThreshold is the clarity score below which the pipeline halts
// and asks for clarification (when no answers are supplied).
const HaltThreshold = 85

// QuestionType tells the caller what kind of input a question expects.
type QuestionType string

const (
	QuestionText    QuestionType = "text"
	QuestionChoice  QuestionType = "choice"
	QuestionBoolean QuestionType = "boolean"
)

// Question is one clarification request issued on a halt.
type Question struct {
	ID      string       `json:"id"`
	Label   string       `json:"label"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Context is the normalized analysis context: the raw descriptive text
// plus any clarification notes merged in on resume.
type Context struct {
	ProblemStatement string            `json:"problem_statement"`
	SolutionSummary  string            `json:"solution_summary"`
	Notes            map[string]string `json:"notes,omitempty"`
	Resolved         bool              `json:"resolved"`
}

// Report is the detector's output.
type Report struct {
	ClarityScore   int         `json:"clarity_score"`
	AmbiguousAreas []string    `json:"ambiguous_areas,omitempty"`
	Dimensions     []Dimension `json:"dimensions"`
}

// Dimension is one axis of the clarity evaluation. Each dimension
// holds cue terms; a description that mentions none of them leaves
// that axis ambiguous.
type Dimension struct {
	Name    string `json:"name"`
	Weight  int    `json:"weight"`
	Covered bool   `json:"covered"`
	Score   int    `json:"score"`
}

// dimensionSpec pairs a dimension with its cue vocabulary and the
// question asked when it is uncovered.
type dimensionSpec struct {
	name     string
	weight   int
	cues     []string
	question Question
}

var dimensionSpecs = []dimensionSpec{
	{
		name:   "audience",
		weight: 8,
		cues: []string{
			"user", "users", "customer", "customers", "client", "clients",
			"firm", "firms", "team", "teams", "operator", "analyst", "admin",
		},
		question: Question{
			ID:    "Q-audience",
			Label: "Who are the primary users of this system, and what role do they play?",
			Type:  QuestionText,
		},
	},
	{
		name:   "core_function",
		weight: 10,
		cues: []string{
			"manage", "track", "reconcile", "automate", "process", "schedule",
			"generate", "convert", "analyze", "monitor", "match", "route",
			"publish", "export", "sync",
		},
		question: Question{
			ID:    "Q-core_function",
			Label: "What is the single most important thing the system does for its users?",
			Type:  QuestionText,
		},
	},
	{
		name:   "data_shape",
		weight: 7,
		cues: []string{
			"data", "record", "records", "ledger", "ledgers", "document",
			"documents", "transaction", "transactions", "event", "events",
			"spreadsheet", "spreadsheets", "book", "books", "file", "files",
		},
		question: Question{
			ID:    "Q-data_shape",
			Label: "What are the main kinds of records the system manages?",
			Type:  QuestionText,
		},
	},
	{
		name:   "integrations",
		weight: 6,
		cues: []string{
			"integrat", "api", "feed", "import", "export", "webhook",
			"sync", "connector", "third-party", "external",
		},
		question: Question{
			ID:    "Q-integrations",
			Label: "Does the system exchange data with external services?",
			Type:  QuestionBoolean,
		},
	},
	{
		name:   "constraints",
		weight: 8,
		cues: []string{
			"audit", "compliance", "secure", "security", "approval",
			"multi-tenant", "tenant", "versioning", "regulated", "sla",
		},
		question: Question{
			ID:    "Q-constraints",
			Label: "Which constraint matters most for this system?",
			Type:  QuestionChoice,
			Options: []string{
				"regulatory compliance", "data security", "audit trail",
				"multi-tenancy", "none of these",
			},
		},
	},
}

// Scores assigned per dimension depending on cue coverage, and the
// minimum description lengths below which the overall score is capped.
const (
	coveredScore   = 90
	uncoveredScore = 20

	minProblemLen  = 20
	minSolutionLen = 30
	shortTextCap   = 40
)

// Detect scores the context's descriptive text. Pure and
// deterministic: the same context always yields the same report.
func Detect(ctx Context) Report {
	text := strings.ToLower(ctx.ProblemStatement + " " + ctx.SolutionSummary)

	dims := make([]Dimension, 0, len(dimensionSpecs))
	var areas []string
	for _, spec := range dimensionSpecs {
		covered := containsAny(text, spec.cues)
		score := uncoveredScore
		if covered {
			score = coveredScore
		}
		dims = append(dims, Dimension{
			Name:    spec.name,
			Weight:  spec.weight,
			Covered: covered,
			Score:   score,
		})
		if !covered {
			areas = append(areas, spec.name)
		}
	}

	overall := weightedScore(dims)

	// Descriptions too short to evaluate are capped regardless of cue
	// hits; a ten-word statement full of cue terms is still vague.
	problemLen := len(strings.TrimSpace(ctx.ProblemStatement))
	solutionLen := len(strings.TrimSpace(ctx.SolutionSummary))
	if (problemLen < minProblemLen || solutionLen < minSolutionLen) && overall > shortTextCap {
		overall = shortTextCap
	}

	return Report{ClarityScore: overall, AmbiguousAreas: areas, Dimensions: dims}
}

// ShouldHalt reports whether the pipeline must stop and ask questions.
// Any non-empty answer map suppresses the halt (forward progress).
func ShouldHalt(report Report, answers map[string]string) bool {
	return report.ClarityScore < HaltThreshold && len(answers) == 0
}

// Questions returns the clarification questions for every ambiguous
// area in the report, in dimension order.
func Questions(report Report) []Question {
	var out []Question
	for _, spec := range dimensionSpecs {
		for _, area := range report.AmbiguousAreas {
			if spec.name == area {
				out = append(out, spec.question)
			}
		}
	}
	return out
}

// Resolve merges clarification answers into the context and marks it
// resolved. The clarity check is deliberately not re-run: partial
// answers are accepted as-is.
func Resolve(ctx Context, answers map[string]string) Context {
	notes := make(map[string]string, len(ctx.Notes)+len(answers))
	for k, v := range ctx.Notes {
		notes[k] = v
	}
	for k, v := range answers {
		notes[k] = v
	}
	ctx.Notes = notes
	ctx.Resolved = len(answers) > 0
	return ctx
}

func containsAny(text string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

// weightedScore combines dimension scores by weight, matching how the
// gate treats heavier dimensions as mattering more.
func weightedScore(dims []Dimension) int {
	totalWeight := 0
	weightedSum := 0
	for _, d := range dims {
		totalWeight += d.Weight
		weightedSum += d.Score * d.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}
