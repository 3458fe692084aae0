package intake

// Template returns a fully populated, structurally valid example
// intake. The intake_template MCP tool serializes it so callers can
// see every field with a sensible value; tests use it as a baseline
// record to mutate.
func Template() *Intake {
	return &Intake{
		ProjectName:      "ledgerly",
		ProblemStatement: "Small accounting firms reconcile client books across disconnected spreadsheets, losing hours weekly to manual cross-checks and versioning mistakes.",
		SolutionSummary:  "A multi-tenant bookkeeping workspace with double-entry ledgers, bank-feed ingestion, reviewer approval chains, and exportable audit trails.",
		IntakeStatus:     StatusSubmitted,
		SchemaVersion:    "1.2.0",

		BusinessModel: BusinessB2B,
		RevenueModel:  RevenueSubscription,
		FundingStage:  FundingSeed,
		BudgetTier:    BudgetModerate,
		PriorityFocus: PriorityQualityFirst,
		TimelineDays:  180,
		SuccessMetric: "50 paying firms within 12 months",

		DomainModel:       DomainGuidedWorkflow,
		DistinctWorkflows: CountSeveral,
		UserRolesTier:     CountFew,
		ApprovalChains:    true,
		TemporalLogic:     true,

		PrimaryDatastore:   DatastoreRelational,
		DataVolumeTier:     VolumeModerate,
		RetentionPolicy:    RetentionRegulatoryHold,
		SearchRequirements: SearchBasic,

		HasFinancialLogic:        true,
		HandlesPayments:          true,
		PaymentProvidersTier:     CountFew,
		RequiresDoubleEntryAudit: true,
		ConsistencyRequirement:   ConsistencyStrong,
		InvoicingRequired:        true,

		ComplianceFrameworks: []Compliance{ComplianceSOC2},
		AuditTrailRequired:   true,
		DataResidency:        ResidencySingleRegion,
		SensitiveDataClasses: []DataClass{DataPII},

		UsersAt12Months:     Scale1KTo10K,
		PeakConcurrencyTier: LoadModerate,
		GrowthPattern:       GrowthSteady,
		GeographicSpread:    GeoSingleRegion,

		AvailabilityTarget: AvailThreeNines,
		RecoveryTimeTier:   RecoveryMinutes,
		HasCacheLayer:      true,
		BackgroundJobs:     true,
		ScheduledTasks:     true,

		AuthComplexity:  AuthSSO,
		ThreatProfile:   ThreatCommodity,
		TenantIsolation: IsolationRowLevel,

		ExternalIntegrationsTier: CountFew,
		InboundWebhooks:          true,
		APIVersioning:            true,
		APIStyle:                 APIStyleREST,

		AIUsage:      AIAssistive,
		AIProvider:   ProviderExternalAPI,
		AIDataPolicy: PolicyAnonymizedOnly,

		RoadmapVolatility: VolatilityEvolving,

		TeamSize:                  TeamMedium,
		TeamMaturity:              MaturityEstablished,
		SeniorityMix:              SeniorityBalanced,
		DevOpsMaturity:            DevOpsAutomated,
		OnCallCoverage:            OnCallBusinessHours,
		PriorProductionExperience: true,

		TargetPersonas: []string{"firm owner", "staff accountant", "client reviewer"},
		MustHaveCapabilities: []Capability{
			CapAccounts, CapBilling, CapIngestion, CapReporting,
		},
		NiceToHaveCapabilities: []Capability{CapAIAssist, CapSearch},
		CoreJourneys: []string{
			"connect a bank feed and categorize transactions",
			"close a monthly period with reviewer sign-off",
			"export an audit-ready trial balance",
		},
	}
}
