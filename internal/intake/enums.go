package intake

import "fmt"

// Every closed enumeration in the intake follows the same shape:
// a string type, exported constants, a validX set, and a ValidateX
// function returning a descriptive error for unknown values.

// --- Intake status ---

// Status is the lifecycle state of the questionnaire itself.
type Status string

const (
	StatusDraft              Status = "DRAFT"
	StatusSubmitted          Status = "SUBMITTED"
	StatusUnderClarification Status = "UNDER_CLARIFICATION"
	StatusAccepted           Status = "ACCEPTED"
)

var validStatuses = map[Status]bool{
	StatusDraft:              true,
	StatusSubmitted:          true,
	StatusUnderClarification: true,
	StatusAccepted:           true,
}

// AcceptedStatuses is the set of statuses the pipeline will analyze.
// Draft and under-clarification intakes are rejected by the readiness
// gate, not here.
var AcceptedStatuses = map[Status]bool{
	StatusSubmitted: true,
	StatusAccepted:  true,
}

// --- Business ---

type BusinessModel string

const (
	BusinessB2B         BusinessModel = "b2b"
	BusinessB2C         BusinessModel = "b2c"
	BusinessB2B2C       BusinessModel = "b2b2c"
	BusinessMarketplace BusinessModel = "marketplace"
	BusinessInternal    BusinessModel = "internal"
)

type RevenueModel string

const (
	RevenueSubscription   RevenueModel = "subscription"
	RevenueTransactionFee RevenueModel = "transaction_fee"
	RevenueLicensing      RevenueModel = "licensing"
	RevenueAdvertising    RevenueModel = "advertising"
	RevenueNone           RevenueModel = "none"
)

type FundingStage string

const (
	FundingBootstrapped FundingStage = "bootstrapped"
	FundingPreSeed      FundingStage = "pre_seed"
	FundingSeed         FundingStage = "seed"
	FundingSeriesA      FundingStage = "series_a"
	FundingSeriesB      FundingStage = "series_b"
	FundingSeriesCPlus  FundingStage = "series_c_plus"
)

type BudgetTier string

const (
	BudgetMinimal    BudgetTier = "minimal"
	BudgetLow        BudgetTier = "low"
	BudgetModerate   BudgetTier = "moderate"
	BudgetHigh       BudgetTier = "high"
	BudgetEnterprise BudgetTier = "enterprise"
)

type PriorityFocus string

const (
	PriorityCostFirst    PriorityFocus = "cost_first"
	PrioritySpeedFirst   PriorityFocus = "speed_first"
	PriorityQualityFirst PriorityFocus = "quality_first"
	PriorityBalanced     PriorityFocus = "balanced"
)

// --- Domain ---

type DomainModel string

const (
	DomainBasicCRUD      DomainModel = "basic_crud"
	DomainGuidedWorkflow DomainModel = "guided_workflow"
	DomainRulesEngine    DomainModel = "rules_engine"
	DomainAlgorithmic    DomainModel = "algorithmic"
)

// CountTier is a coarse cardinality bucket used wherever the intake
// asks "how many" without needing an exact number.
type CountTier string

const (
	CountNone    CountTier = "none"
	CountFew     CountTier = "few"
	CountSeveral CountTier = "several"
	CountMany    CountTier = "many"
)

// --- Data ---

type Datastore string

const (
	DatastoreRelational Datastore = "relational"
	DatastoreDocument   Datastore = "document"
	DatastoreKeyValue   Datastore = "key_value"
	DatastoreGraph      Datastore = "graph"
	DatastoreLedger     Datastore = "ledger"
	DatastoreTimeSeries Datastore = "time_series"
)

type VolumeTier string

const (
	VolumeLight    VolumeTier = "light"
	VolumeModerate VolumeTier = "moderate"
	VolumeHeavy    VolumeTier = "heavy"
	VolumeMassive  VolumeTier = "massive"
)

type Retention string

const (
	RetentionNone           Retention = "none"
	RetentionFixedWindow    Retention = "fixed_window"
	RetentionRegulatoryHold Retention = "regulatory_hold"
)

type SearchTier string

const (
	SearchNone     SearchTier = "none"
	SearchBasic    SearchTier = "basic"
	SearchFullText SearchTier = "full_text"
	SearchFaceted  SearchTier = "faceted"
)

// --- Financial ---

type Consistency string

const (
	ConsistencyStrong   Consistency = "strong"
	ConsistencyCausal   Consistency = "causal"
	ConsistencyEventual Consistency = "eventual"
)

// --- Regulatory ---

type Compliance string

const (
	ComplianceHIPAA    Compliance = "hipaa"
	CompliancePCIDSS   Compliance = "pci_dss"
	ComplianceSOC2     Compliance = "soc2"
	ComplianceGDPR     Compliance = "gdpr"
	ComplianceFedRAMP  Compliance = "fedramp"
	ComplianceISO27001 Compliance = "iso27001"
	ComplianceCCPA     Compliance = "ccpa"
)

type Residency string

const (
	ResidencyNone            Residency = "none"
	ResidencySingleRegion    Residency = "single_region"
	ResidencyStrictInCountry Residency = "strict_in_country"
)

type DataClass string

const (
	DataPII         DataClass = "pii"
	DataPHI         DataClass = "phi"
	DataPaymentCard DataClass = "payment_card"
	DataCredentials DataClass = "credentials"
	DataBiometric   DataClass = "biometric"
)

// --- Scale ---

type UserScale string

const (
	ScaleUnder1K   UserScale = "under_1k"
	Scale1KTo10K   UserScale = "1k_10k"
	Scale10KTo100K UserScale = "10k_100k"
	Scale100KTo1M  UserScale = "100k_1m"
	ScaleOver1M    UserScale = "over_1m"
)

// MidOrLargeMarket reports whether a user scale sits in the upper two
// buckets. The stability amplifier keys off this.
func MidOrLargeMarket(s UserScale) bool {
	return s == Scale100KTo1M || s == ScaleOver1M
}

type LoadTier string

const (
	LoadLow      LoadTier = "low"
	LoadModerate LoadTier = "moderate"
	LoadHigh     LoadTier = "high"
	LoadExtreme  LoadTier = "extreme"
)

type GrowthShape string

const (
	GrowthSteady         GrowthShape = "steady"
	GrowthSeasonal       GrowthShape = "seasonal"
	GrowthSpiky          GrowthShape = "spiky"
	GrowthViralPotential GrowthShape = "viral_potential"
)

type GeoSpread string

const (
	GeoSingleRegion GeoSpread = "single_region"
	GeoMultiRegion  GeoSpread = "multi_region"
	GeoGlobal       GeoSpread = "global"
)

// --- Availability ---

type Availability string

const (
	AvailTwoNines   Availability = "99"
	AvailThreeNines Availability = "99.9"
	AvailFourNines  Availability = "99.99"
	AvailFiveNines  Availability = "99.999"
)

// VeryHighAvailability reports four nines or better.
func VeryHighAvailability(a Availability) bool {
	return a == AvailFourNines || a == AvailFiveNines
}

type RecoveryTier string

const (
	RecoveryHours   RecoveryTier = "hours"
	RecoveryMinutes RecoveryTier = "minutes"
	RecoverySeconds RecoveryTier = "seconds"
)

// --- Security ---

type AuthLevel string

const (
	AuthNone    AuthLevel = "none"
	AuthBasic   AuthLevel = "basic"
	AuthSSO     AuthLevel = "sso"
	AuthMFARBAC AuthLevel = "mfa_rbac"
)

type ThreatLevel string

const (
	ThreatCommodity   ThreatLevel = "commodity"
	ThreatTargeted    ThreatLevel = "targeted"
	ThreatNationState ThreatLevel = "nation_state"
)

type Isolation string

const (
	IsolationNone      Isolation = "none"
	IsolationRowLevel  Isolation = "row_level"
	IsolationSchema    Isolation = "schema_level"
	IsolationDedicated Isolation = "dedicated"
)

// --- Integration ---

type APIStyle string

const (
	APIStyleREST    APIStyle = "rest"
	APIStyleGraphQL APIStyle = "graphql"
	APIStyleGRPC    APIStyle = "grpc"
	APIStyleMixed   APIStyle = "rpc_mixed"
)

// --- Realtime ---

type RealtimeProtocol string

const (
	RealtimeWebsocket   RealtimeProtocol = "websocket"
	RealtimeSSE         RealtimeProtocol = "sse"
	RealtimeLongPolling RealtimeProtocol = "long_polling"
	RealtimeWebRTC      RealtimeProtocol = "webrtc"
)

// --- Intelligence ---

type AIUsage string

const (
	AINone        AIUsage = "none"
	AIAssistive   AIUsage = "assistive"
	AICoreFeature AIUsage = "core_feature"
)

type AIProvider string

const (
	ProviderNone        AIProvider = "none"
	ProviderExternalAPI AIProvider = "external_api"
	ProviderSelfHosted  AIProvider = "self_hosted"
)

type AIPolicy string

const (
	PolicyUnrestricted   AIPolicy = "unrestricted"
	PolicyAnonymizedOnly AIPolicy = "anonymized_only"
	PolicyNoExternal     AIPolicy = "no_external"
)

// --- Evolution ---

type Volatility string

const (
	VolatilityStable      Volatility = "stable"
	VolatilityEvolving    Volatility = "evolving"
	VolatilityExploratory Volatility = "exploratory"
)

// --- Team ---

type TeamSize string

const (
	TeamSolo       TeamSize = "solo"
	TeamSmall      TeamSize = "small"
	TeamMedium     TeamSize = "medium"
	TeamLarge      TeamSize = "large"
	TeamEnterprise TeamSize = "enterprise"
)

type TeamMaturity string

const (
	MaturitySolo        TeamMaturity = "solo"
	MaturitySmallTeam   TeamMaturity = "small_team"
	MaturityEstablished TeamMaturity = "established"
	MaturityScaled      TeamMaturity = "scaled"
)

type Seniority string

const (
	SeniorityJuniorHeavy Seniority = "junior_heavy"
	SeniorityBalanced    Seniority = "balanced"
	SenioritySeniorHeavy Seniority = "senior_heavy"
)

type DevOps string

const (
	DevOpsManual       DevOps = "manual"
	DevOpsMinimal      DevOps = "minimal"
	DevOpsBasicCI      DevOps = "basic_ci"
	DevOpsAutomated    DevOps = "automated"
	DevOpsPlatformTeam DevOps = "platform_team"
)

type OnCall string

const (
	OnCallNone          OnCall = "none"
	OnCallBusinessHours OnCall = "business_hours"
	OnCallFollowTheSun  OnCall = "follow_the_sun"
)

// --- Product capabilities ---

type Capability string

const (
	CapAccounts      Capability = "accounts"
	CapBilling       Capability = "billing"
	CapIngestion     Capability = "ingestion"
	CapNotifications Capability = "notifications"
	CapReporting     Capability = "reporting"
	CapSearch        Capability = "search"
	CapAdminConsole  Capability = "admin_console"
	CapAIAssist      Capability = "ai_assist"
)

// --- Membership tables ---
//
// One table per enum; Validate walks these so a typo'd value surfaces
// as a violation instead of silently matching nothing downstream.

var (
	validBusinessModels = map[BusinessModel]bool{
		BusinessB2B: true, BusinessB2C: true, BusinessB2B2C: true,
		BusinessMarketplace: true, BusinessInternal: true,
	}
	validRevenueModels = map[RevenueModel]bool{
		RevenueSubscription: true, RevenueTransactionFee: true,
		RevenueLicensing: true, RevenueAdvertising: true, RevenueNone: true,
	}
	validFundingStages = map[FundingStage]bool{
		FundingBootstrapped: true, FundingPreSeed: true, FundingSeed: true,
		FundingSeriesA: true, FundingSeriesB: true, FundingSeriesCPlus: true,
	}
	validBudgetTiers = map[BudgetTier]bool{
		BudgetMinimal: true, BudgetLow: true, BudgetModerate: true,
		BudgetHigh: true, BudgetEnterprise: true,
	}
	validPriorities = map[PriorityFocus]bool{
		PriorityCostFirst: true, PrioritySpeedFirst: true,
		PriorityQualityFirst: true, PriorityBalanced: true,
	}
	validDomainModels = map[DomainModel]bool{
		DomainBasicCRUD: true, DomainGuidedWorkflow: true,
		DomainRulesEngine: true, DomainAlgorithmic: true,
	}
	validCountTiers = map[CountTier]bool{
		CountNone: true, CountFew: true, CountSeveral: true, CountMany: true,
	}
	validDatastores = map[Datastore]bool{
		DatastoreRelational: true, DatastoreDocument: true,
		DatastoreKeyValue: true, DatastoreGraph: true,
		DatastoreLedger: true, DatastoreTimeSeries: true,
	}
	validVolumeTiers = map[VolumeTier]bool{
		VolumeLight: true, VolumeModerate: true,
		VolumeHeavy: true, VolumeMassive: true,
	}
	validRetentions = map[Retention]bool{
		RetentionNone: true, RetentionFixedWindow: true, RetentionRegulatoryHold: true,
	}
	validSearchTiers = map[SearchTier]bool{
		SearchNone: true, SearchBasic: true, SearchFullText: true, SearchFaceted: true,
	}
	validConsistencies = map[Consistency]bool{
		ConsistencyStrong: true, ConsistencyCausal: true, ConsistencyEventual: true,
	}
	validCompliances = map[Compliance]bool{
		ComplianceHIPAA: true, CompliancePCIDSS: true, ComplianceSOC2: true,
		ComplianceGDPR: true, ComplianceFedRAMP: true,
		ComplianceISO27001: true, ComplianceCCPA: true,
	}
	validResidencies = map[Residency]bool{
		ResidencyNone: true, ResidencySingleRegion: true, ResidencyStrictInCountry: true,
	}
	validDataClasses = map[DataClass]bool{
		DataPII: true, DataPHI: true, DataPaymentCard: true,
		DataCredentials: true, DataBiometric: true,
	}
	validUserScales = map[UserScale]bool{
		ScaleUnder1K: true, Scale1KTo10K: true, Scale10KTo100K: true,
		Scale100KTo1M: true, ScaleOver1M: true,
	}
	validLoadTiers = map[LoadTier]bool{
		LoadLow: true, LoadModerate: true, LoadHigh: true, LoadExtreme: true,
	}
	validGrowthShapes = map[GrowthShape]bool{
		GrowthSteady: true, GrowthSeasonal: true,
		GrowthSpiky: true, GrowthViralPotential: true,
	}
	validGeoSpreads = map[GeoSpread]bool{
		GeoSingleRegion: true, GeoMultiRegion: true, GeoGlobal: true,
	}
	validAvailabilities = map[Availability]bool{
		AvailTwoNines: true, AvailThreeNines: true,
		AvailFourNines: true, AvailFiveNines: true,
	}
	validRecoveryTiers = map[RecoveryTier]bool{
		RecoveryHours: true, RecoveryMinutes: true, RecoverySeconds: true,
	}
	validAuthLevels = map[AuthLevel]bool{
		AuthNone: true, AuthBasic: true, AuthSSO: true, AuthMFARBAC: true,
	}
	validThreatLevels = map[ThreatLevel]bool{
		ThreatCommodity: true, ThreatTargeted: true, ThreatNationState: true,
	}
	validIsolations = map[Isolation]bool{
		IsolationNone: true, IsolationRowLevel: true,
		IsolationSchema: true, IsolationDedicated: true,
	}
	validAPIStyles = map[APIStyle]bool{
		APIStyleREST: true, APIStyleGraphQL: true,
		APIStyleGRPC: true, APIStyleMixed: true,
	}
	validRealtimeProtocols = map[RealtimeProtocol]bool{
		RealtimeWebsocket: true, RealtimeSSE: true,
		RealtimeLongPolling: true, RealtimeWebRTC: true,
	}
	validAIUsages = map[AIUsage]bool{
		AINone: true, AIAssistive: true, AICoreFeature: true,
	}
	validAIProviders = map[AIProvider]bool{
		ProviderNone: true, ProviderExternalAPI: true, ProviderSelfHosted: true,
	}
	validAIPolicies = map[AIPolicy]bool{
		PolicyUnrestricted: true, PolicyAnonymizedOnly: true, PolicyNoExternal: true,
	}
	validVolatilities = map[Volatility]bool{
		VolatilityStable: true, VolatilityEvolving: true, VolatilityExploratory: true,
	}
	validTeamSizes = map[TeamSize]bool{
		TeamSolo: true, TeamSmall: true, TeamMedium: true,
		TeamLarge: true, TeamEnterprise: true,
	}
	validTeamMaturities = map[TeamMaturity]bool{
		MaturitySolo: true, MaturitySmallTeam: true,
		MaturityEstablished: true, MaturityScaled: true,
	}
	validSeniorities = map[Seniority]bool{
		SeniorityJuniorHeavy: true, SeniorityBalanced: true, SenioritySeniorHeavy: true,
	}
	validDevOps = map[DevOps]bool{
		DevOpsManual: true, DevOpsMinimal: true, DevOpsBasicCI: true,
		DevOpsAutomated: true, DevOpsPlatformTeam: true,
	}
	validOnCalls = map[OnCall]bool{
		OnCallNone: true, OnCallBusinessHours: true, OnCallFollowTheSun: true,
	}
	validCapabilities = map[Capability]bool{
		CapAccounts: true, CapBilling: true, CapIngestion: true,
		CapNotifications: true, CapReporting: true, CapSearch: true,
		CapAdminConsole: true, CapAIAssist: true,
	}
)

// ValidateStatus returns an error if the status is not recognized.
func ValidateStatus(s Status) error {
	if !validStatuses[s] {
		return fmt.Errorf("invalid intake status %q", s)
	}
	return nil
}
