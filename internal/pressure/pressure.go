// Package pressure scores ten independent dimensions of systemic
// complexity and combines them into one weighted 0-100 aggregate,
// which pattern.go then maps to a structural architecture pattern.
//
// Each dimension is the average of a handful of sub-scores (small
// lookups over specific enum values) clamped to [0,10]. The aggregate
// is normalized against the theoretical maximum (every dimension at
// 10), so adding a dimension only requires a new weight entry, never a
// new denominator.
package pressure

import (
	"math"

	"github.com/archforge/archforge/internal/intake"
)

// Result holds the ten dimension scores and the weighted aggregate.
type Result struct {
	Domain       float64 `json:"domain"`
	Data         float64 `json:"data"`
	Financial    float64 `json:"financial"`
	Regulatory   float64 `json:"regulatory"`
	Scale        float64 `json:"scale"`
	Availability float64 `json:"availability"`
	Security     float64 `json:"security"`
	Integration  float64 `json:"integration"`
	Intelligence float64 `json:"intelligence"`
	Evolution    float64 `json:"evolution"`

	Weighted int `json:"weighted"`
}

// Dimension weights, in the order the aggregate accumulates them.
// The fixed order keeps the float sum identical across calls.
// Regulatory and financial-integrity pressure dominate; integration
// and intelligence weigh least.
var weights = []struct {
	name   string
	weight float64
}{
	{"regulatory", 2.0},
	{"financial", 1.8},
	{"domain", 1.5},
	{"data", 1.5},
	{"scale", 1.3},
	{"availability", 1.3},
	{"security", 1.2},
	{"evolution", 1.1},
	{"integration", 1.0},
	{"intelligence", 1.0},
}

// Compute scores every dimension and the weighted aggregate. Pure
// function of the intake.
func Compute(in *intake.Intake) Result {
	r := Result{
		Domain:       domainScore(in),
		Data:         dataScore(in),
		Financial:    financialScore(in),
		Regulatory:   regulatoryScore(in),
		Scale:        scaleScore(in),
		Availability: availabilityScore(in),
		Security:     securityScore(in),
		Integration:  integrationScore(in),
		Intelligence: intelligenceScore(in),
		Evolution:    evolutionScore(in),
	}

	byName := map[string]float64{
		"domain":       r.Domain,
		"data":         r.Data,
		"financial":    r.Financial,
		"regulatory":   r.Regulatory,
		"scale":        r.Scale,
		"availability": r.Availability,
		"security":     r.Security,
		"integration":  r.Integration,
		"intelligence": r.Intelligence,
		"evolution":    r.Evolution,
	}

	var weightedSum, maxSum float64
	for _, w := range weights {
		weightedSum += byName[w.name] * w.weight
		maxSum += 10 * w.weight
	}
	r.Weighted = int(math.Round(100 * weightedSum / maxSum))

	return r
}

// average clamps each sub-score to [0,10], averages them, and clamps
// the result.
func average(subs ...float64) float64 {
	if len(subs) == 0 {
		return 0
	}
	var sum float64
	for _, s := range subs {
		sum += clamp(s)
	}
	return clamp(sum / float64(len(subs)))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func boolScore(b bool, yes, no float64) float64 {
	if b {
		return yes
	}
	return no
}

var countTierScores = map[intake.CountTier]float64{
	intake.CountNone:    0,
	intake.CountFew:     3,
	intake.CountSeveral: 6,
	intake.CountMany:    9,
}

func domainScore(in *intake.Intake) float64 {
	model := map[intake.DomainModel]float64{
		intake.DomainBasicCRUD:      2,
		intake.DomainGuidedWorkflow: 5,
		intake.DomainRulesEngine:    8,
		intake.DomainAlgorithmic:    9,
	}[in.DomainModel]

	return average(
		model,
		countTierScores[in.DistinctWorkflows],
		countTierScores[in.UserRolesTier],
		boolScore(in.ApprovalChains || in.TemporalLogic, 7, 2),
	)
}

func dataScore(in *intake.Intake) float64 {
	store := map[intake.Datastore]float64{
		intake.DatastoreRelational: 4,
		intake.DatastoreDocument:   3,
		intake.DatastoreKeyValue:   2,
		intake.DatastoreGraph:      7,
		intake.DatastoreLedger:     8,
		intake.DatastoreTimeSeries: 6,
	}[in.PrimaryDatastore]

	volume := map[intake.VolumeTier]float64{
		intake.VolumeLight:    1,
		intake.VolumeModerate: 4,
		intake.VolumeHeavy:    7,
		intake.VolumeMassive:  10,
	}[in.DataVolumeTier]

	search := map[intake.SearchTier]float64{
		intake.SearchNone:     0,
		intake.SearchBasic:    3,
		intake.SearchFullText: 6,
		intake.SearchFaceted:  8,
	}[in.SearchRequirements]

	return average(store, volume, search, boolScore(in.EventSourcing, 8, 2))
}

func financialScore(in *intake.Intake) float64 {
	consistency := map[intake.Consistency]float64{
		intake.ConsistencyStrong:   7,
		intake.ConsistencyCausal:   5,
		intake.ConsistencyEventual: 2,
	}[in.ConsistencyRequirement]

	return average(
		boolScore(in.HasFinancialLogic, 8, 0),
		boolScore(in.RequiresDoubleEntryAudit, 10, 0),
		countTierScores[in.PaymentProvidersTier],
		consistency,
	)
}

func regulatoryScore(in *intake.Intake) float64 {
	frameworks := clamp(float64(len(in.ComplianceFrameworks)) * 3)

	residency := map[intake.Residency]float64{
		intake.ResidencyNone:            0,
		intake.ResidencySingleRegion:    4,
		intake.ResidencyStrictInCountry: 9,
	}[in.DataResidency]

	return average(frameworks, boolScore(in.AuditTrailRequired, 7, 1), residency)
}

func scaleScore(in *intake.Intake) float64 {
	users := map[intake.UserScale]float64{
		intake.ScaleUnder1K:   1,
		intake.Scale1KTo10K:   3,
		intake.Scale10KTo100K: 5,
		intake.Scale100KTo1M:  8,
		intake.ScaleOver1M:    10,
	}[in.UsersAt12Months]

	load := map[intake.LoadTier]float64{
		intake.LoadLow:      1,
		intake.LoadModerate: 4,
		intake.LoadHigh:     7,
		intake.LoadExtreme:  10,
	}[in.PeakConcurrencyTier]

	growth := map[intake.GrowthShape]float64{
		intake.GrowthSteady:         2,
		intake.GrowthSeasonal:       4,
		intake.GrowthSpiky:          7,
		intake.GrowthViralPotential: 9,
	}[in.GrowthPattern]

	return average(users, load, growth)
}

func availabilityScore(in *intake.Intake) float64 {
	target := map[intake.Availability]float64{
		intake.AvailTwoNines:   2,
		intake.AvailThreeNines: 5,
		intake.AvailFourNines:  8,
		intake.AvailFiveNines:  10,
	}[in.AvailabilityTarget]

	recovery := map[intake.RecoveryTier]float64{
		intake.RecoveryHours:   2,
		intake.RecoveryMinutes: 5,
		intake.RecoverySeconds: 9,
	}[in.RecoveryTimeTier]

	return average(target, recovery, boolScore(in.MultiRegionFailover, 9, 2))
}

func securityScore(in *intake.Intake) float64 {
	auth := map[intake.AuthLevel]float64{
		intake.AuthNone:    0,
		intake.AuthBasic:   3,
		intake.AuthSSO:     6,
		intake.AuthMFARBAC: 8,
	}[in.AuthComplexity]

	threat := map[intake.ThreatLevel]float64{
		intake.ThreatCommodity:   2,
		intake.ThreatTargeted:    6,
		intake.ThreatNationState: 10,
	}[in.ThreatProfile]

	isolation := map[intake.Isolation]float64{
		intake.IsolationNone:      0,
		intake.IsolationRowLevel:  4,
		intake.IsolationSchema:    6,
		intake.IsolationDedicated: 9,
	}[in.TenantIsolation]

	classes := clamp(float64(len(in.SensitiveDataClasses)) * 3)

	return average(auth, threat, isolation, classes)
}

func integrationScore(in *intake.Intake) float64 {
	webhooks := 1.0
	switch {
	case in.InboundWebhooks && in.OutboundWebhooks:
		webhooks = 8
	case in.InboundWebhooks || in.OutboundWebhooks:
		webhooks = 5
	}

	return average(
		countTierScores[in.ExternalIntegrationsTier],
		webhooks,
		boolScore(in.LegacySystemBridge, 8, 2),
	)
}

func intelligenceScore(in *intake.Intake) float64 {
	usage := map[intake.AIUsage]float64{
		intake.AINone:        0,
		intake.AIAssistive:   5,
		intake.AICoreFeature: 9,
	}[in.AIUsage]

	provider := map[intake.AIProvider]float64{
		intake.ProviderNone:        0,
		intake.ProviderExternalAPI: 4,
		intake.ProviderSelfHosted:  8,
	}[in.AIProvider]

	return average(
		usage,
		provider,
		boolScore(in.ModelFinetuning, 9, 0),
		boolScore(in.VectorSearch, 7, 0),
	)
}

func evolutionScore(in *intake.Intake) float64 {
	volatility := map[intake.Volatility]float64{
		intake.VolatilityStable:      2,
		intake.VolatilityEvolving:    5,
		intake.VolatilityExploratory: 9,
	}[in.RoadmapVolatility]

	// Longer horizons accumulate more evolutionary pressure.
	var horizon float64
	switch {
	case in.TimelineDays >= 730:
		horizon = 9
	case in.TimelineDays >= 365:
		horizon = 7
	case in.TimelineDays >= 180:
		horizon = 5
	default:
		horizon = 3
	}

	return average(
		volatility,
		horizon,
		boolScore(in.ExpectedPivot, 8, 2),
		boolScore(in.PluginExtensibility, 7, 2),
	)
}
