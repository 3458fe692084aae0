// Package intake defines the canonical structured representation of a
// proposed software project, the input every pipeline stage reads,
// plus the explicit cross-field validation rules that guard it.
//
// The record is deliberately flat: every field is a free-form string,
// a bounded number, a boolean, a closed enumeration value, or a set of
// enumeration values. Conditional requirements ("if realtime is
// required, a protocol must be chosen") live in validate.go as an
// exhaustively evaluated rule list, never as side-channel callbacks.
package intake

// Intake is one project's requirements questionnaire. It is built once
// per request by the caller, validated with Validate, and treated as
// immutable for the duration of a pipeline run.
type Intake struct {
	// --- Identity & lifecycle ---

	ProjectName      string `json:"project_name"`
	ProblemStatement string `json:"problem_statement"`
	SolutionSummary  string `json:"solution_summary"`
	IntakeStatus     Status `json:"intake_status"`
	SchemaVersion    string `json:"schema_version"`

	// --- Business context ---

	BusinessModel      BusinessModel `json:"business_model"`
	RevenueModel       RevenueModel  `json:"revenue_model"`
	FundingStage       FundingStage  `json:"funding_stage"`
	BudgetTier         BudgetTier    `json:"budget_tier"`
	PriorityFocus      PriorityFocus `json:"priority_focus"`
	TimelineDays       int           `json:"timeline_days"`
	SuccessMetric      string        `json:"success_metric,omitempty"`
	CompetitorSet      string        `json:"competitor_set,omitempty"`
	DifferentiatorNote string        `json:"differentiator_note,omitempty"`

	// --- Domain workflow ---

	DomainModel       DomainModel `json:"domain_model"`
	DistinctWorkflows CountTier   `json:"distinct_workflows"`
	UserRolesTier     CountTier   `json:"user_roles_tier"`
	ApprovalChains    bool        `json:"approval_chains"`
	TemporalLogic     bool        `json:"temporal_logic"`
	OfflineSupport    bool        `json:"offline_support"`

	// --- Data architecture ---

	PrimaryDatastore     Datastore   `json:"primary_datastore"`
	SecondaryDatastores  []Datastore `json:"secondary_datastores,omitempty"`
	DataVolumeTier       VolumeTier  `json:"data_volume_tier"`
	RetentionPolicy      Retention   `json:"retention_policy"`
	SearchRequirements   SearchTier  `json:"search_requirements"`
	RequiresReadReplicas bool        `json:"requires_read_replicas"`
	EventSourcing        bool        `json:"event_sourcing"`
	BulkImportExport     bool        `json:"bulk_import_export"`

	// --- Financial logic ---

	HasFinancialLogic        bool        `json:"has_financial_logic"`
	HandlesPayments          bool        `json:"handles_payments"`
	PaymentProvidersTier     CountTier   `json:"payment_providers_tier"`
	RequiresDoubleEntryAudit bool        `json:"requires_double_entry_audit"`
	ConsistencyRequirement   Consistency `json:"consistency_requirement"`
	MultiCurrency            bool        `json:"multi_currency"`
	InvoicingRequired        bool        `json:"invoicing_required"`

	// --- Regulatory & privacy ---

	ComplianceFrameworks     []Compliance `json:"compliance_frameworks,omitempty"`
	AuditTrailRequired       bool         `json:"audit_trail_required"`
	DataResidency            Residency    `json:"data_residency"`
	CrossRegionEgressAllowed bool         `json:"cross_region_egress_allowed"`
	SensitiveDataClasses     []DataClass  `json:"sensitive_data_classes,omitempty"`
	RightToErasure           bool         `json:"right_to_erasure"`

	// --- Scale ---

	UsersAt12Months     UserScale   `json:"users_at_12_months"`
	PeakConcurrencyTier LoadTier    `json:"peak_concurrency_tier"`
	GrowthPattern       GrowthShape `json:"growth_pattern"`
	GeographicSpread    GeoSpread   `json:"geographic_spread"`

	// --- Availability & operations ---

	AvailabilityTarget  Availability `json:"availability_target"`
	RecoveryTimeTier    RecoveryTier `json:"recovery_time_tier"`
	MultiRegionFailover bool         `json:"multi_region_failover"`
	HasCacheLayer       bool         `json:"has_cache_layer"`
	BackgroundJobs      bool         `json:"background_jobs"`
	ScheduledTasks      bool         `json:"scheduled_tasks"`
	ZeroDowntimeDeploys bool         `json:"zero_downtime_deploys"`

	// --- Security ---

	AuthComplexity    AuthLevel   `json:"auth_complexity"`
	ThreatProfile     ThreatLevel `json:"threat_profile"`
	PublicAPIExposure bool        `json:"public_api_exposure"`
	TenantIsolation   Isolation   `json:"tenant_isolation"`
	SecretsHandling   bool        `json:"secrets_handling"`

	// --- Integration surface ---

	ExternalIntegrationsTier CountTier `json:"external_integrations_tier"`
	InboundWebhooks          bool      `json:"inbound_webhooks"`
	OutboundWebhooks         bool      `json:"outbound_webhooks"`
	LegacySystemBridge       bool      `json:"legacy_system_bridge"`
	APIVersioning            bool      `json:"api_versioning"`
	BackwardCompatRequired   bool      `json:"backward_compat_required"`
	APIStyle                 APIStyle  `json:"api_style"`

	// --- Realtime ---

	RequiresRealtime   bool             `json:"requires_realtime"`
	RealtimeProtocol   RealtimeProtocol `json:"realtime_protocol,omitempty"`
	RealtimeFanoutTier LoadTier         `json:"realtime_fanout_tier,omitempty"`

	// --- Intelligence ---

	AIUsage         AIUsage    `json:"ai_usage"`
	AIProvider      AIProvider `json:"ai_provider"`
	AIDataPolicy    AIPolicy   `json:"ai_data_policy"`
	ModelFinetuning bool       `json:"model_finetuning"`
	VectorSearch    bool       `json:"vector_search"`

	// --- Evolution horizon ---

	RoadmapVolatility   Volatility `json:"roadmap_volatility"`
	ExpectedPivot       bool       `json:"expected_pivot"`
	MigrationRequired   bool       `json:"migration_required"`
	PluginExtensibility bool       `json:"plugin_extensibility"`

	// --- Team ---

	TeamSize                  TeamSize     `json:"team_size"`
	TeamMaturity              TeamMaturity `json:"team_maturity"`
	SeniorityMix              Seniority    `json:"seniority_mix"`
	DevOpsMaturity            DevOps       `json:"devops_maturity"`
	OnCallCoverage            OnCall       `json:"on_call_coverage"`
	PriorProductionExperience bool         `json:"prior_production_experience"`

	// --- Product shape ---

	TargetPersonas         []string     `json:"target_personas,omitempty"`
	MustHaveCapabilities   []Capability `json:"must_have_capabilities,omitempty"`
	NiceToHaveCapabilities []Capability `json:"nice_to_have_capabilities,omitempty"`
	CoreJourneys           []string     `json:"core_journeys,omitempty"`
	AcceptanceNotes        string       `json:"acceptance_notes,omitempty"`
}

// HasCompliance reports whether the intake declares the given framework.
func (in *Intake) HasCompliance(c Compliance) bool {
	for _, f := range in.ComplianceFrameworks {
		if f == c {
			return true
		}
	}
	return false
}

// HasDataClass reports whether the intake declares the given sensitive
// data class.
func (in *Intake) HasDataClass(d DataClass) bool {
	for _, c := range in.SensitiveDataClasses {
		if c == d {
			return true
		}
	}
	return false
}

// HasCapability reports whether a capability appears in the must-have set.
func (in *Intake) HasCapability(c Capability) bool {
	for _, m := range in.MustHaveCapabilities {
		if m == c {
			return true
		}
	}
	return false
}

// SmallTeam reports whether the team is solo or small by size or by
// self-reported maturity. Several forcing rules key off this.
func (in *Intake) SmallTeam() bool {
	if in.TeamSize == TeamSolo || in.TeamSize == TeamSmall {
		return true
	}
	return in.TeamMaturity == MaturitySolo || in.TeamMaturity == MaturitySmallTeam
}

// SeedOrEarlier reports whether the funding stage is seed, pre-seed,
// or bootstrapped.
func (in *Intake) SeedOrEarlier() bool {
	switch in.FundingStage {
	case FundingBootstrapped, FundingPreSeed, FundingSeed:
		return true
	}
	return false
}

// LateStageFunding reports series B or later.
func (in *Intake) LateStageFunding() bool {
	return in.FundingStage == FundingSeriesB || in.FundingStage == FundingSeriesCPlus
}
