package intake

import "fmt"

// Violation is one failed validation rule. Field is the JSON path of
// the field the rule guards, so callers can point at the exact input.
type Violation struct {
	RuleID  string `json:"rule_id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s (%s)", v.RuleID, v.Message, v.Field)
}

// Rule is one pure cross-field predicate over the full record.
// OK returns true when the record satisfies the rule. Rules never
// mutate the intake and are evaluated exhaustively; a failing rule
// does not stop the rest from running.
type Rule struct {
	ID      string
	Field   string
	Message string
	OK      func(*Intake) bool
}

// Rules is the complete cross-field catalogue. The readiness gate
// re-checks a small subset of these (status, version, required text);
// keeping both sides as explicit lists keeps them symmetric and
// independently testable.
var Rules = []Rule{
	{
		ID: "XF-001", Field: "realtime_protocol",
		Message: "realtime is required but no realtime protocol was chosen",
		OK: func(in *Intake) bool {
			return !in.RequiresRealtime || in.RealtimeProtocol != ""
		},
	},
	{
		ID: "XF-002", Field: "consistency_requirement",
		Message: "financial logic is declared but no consistency requirement was chosen",
		OK: func(in *Intake) bool {
			return !in.HasFinancialLogic || in.ConsistencyRequirement != ""
		},
	},
	{
		ID: "XF-003", Field: "has_financial_logic",
		Message: "payments are handled but financial logic is not declared",
		OK: func(in *Intake) bool {
			return !in.HandlesPayments || in.HasFinancialLogic
		},
	},
	{
		ID: "XF-004", Field: "has_financial_logic",
		Message: "double-entry audit requires financial logic to be declared",
		OK: func(in *Intake) bool {
			return !in.RequiresDoubleEntryAudit || in.HasFinancialLogic
		},
	},
	{
		ID: "XF-005", Field: "payment_providers_tier",
		Message: "payments are handled but the payment provider tier is unset",
		OK: func(in *Intake) bool {
			return !in.HandlesPayments || (in.PaymentProvidersTier != "" && in.PaymentProvidersTier != CountNone)
		},
	},
	{
		ID: "XF-006", Field: "ai_provider",
		Message: "AI usage is declared but no provider model was chosen",
		OK: func(in *Intake) bool {
			return in.AIUsage == AINone || in.AIUsage == "" || (in.AIProvider != "" && in.AIProvider != ProviderNone)
		},
	},
	{
		ID: "XF-007", Field: "ai_provider",
		Message: "AI data policy forbids external providers but an external provider is chosen",
		OK: func(in *Intake) bool {
			return in.AIDataPolicy != PolicyNoExternal || in.AIProvider != ProviderExternalAPI
		},
	},
	{
		ID: "XF-008", Field: "cross_region_egress_allowed",
		Message: "strict in-country residency is incompatible with cross-region egress",
		OK: func(in *Intake) bool {
			return in.DataResidency != ResidencyStrictInCountry || !in.CrossRegionEgressAllowed
		},
	},
	{
		ID: "XF-009", Field: "geographic_spread",
		Message: "multi-region failover requires a multi-region or global footprint",
		OK: func(in *Intake) bool {
			return !in.MultiRegionFailover || in.GeographicSpread != GeoSingleRegion
		},
	},
	{
		ID: "XF-010", Field: "vector_search",
		Message: "vector search is declared but AI usage is none",
		OK: func(in *Intake) bool {
			return !in.VectorSearch || (in.AIUsage != AINone && in.AIUsage != "")
		},
	},
	{
		ID: "XF-011", Field: "timeline_days",
		Message: "timeline must be between 1 and 3650 days",
		OK: func(in *Intake) bool {
			return in.TimelineDays >= 1 && in.TimelineDays <= 3650
		},
	},
	{
		ID: "XF-012", Field: "realtime_fanout_tier",
		Message: "realtime fanout tier is set but realtime is not required",
		OK: func(in *Intake) bool {
			return in.RequiresRealtime || in.RealtimeFanoutTier == ""
		},
	},
	{
		ID: "XF-013", Field: "sensitive_data_classes",
		Message: "HIPAA compliance is declared without PHI in the sensitive data classes",
		OK: func(in *Intake) bool {
			return !in.HasCompliance(ComplianceHIPAA) || in.HasDataClass(DataPHI)
		},
	},
	{
		ID: "XF-014", Field: "sensitive_data_classes",
		Message: "PCI-DSS compliance is declared without payment card data declared",
		OK: func(in *Intake) bool {
			return !in.HasCompliance(CompliancePCIDSS) || in.HasDataClass(DataPaymentCard)
		},
	},
	{
		ID: "XF-015", Field: "right_to_erasure",
		Message: "GDPR compliance is declared but right-to-erasure is not",
		OK: func(in *Intake) bool {
			return !in.HasCompliance(ComplianceGDPR) || in.RightToErasure
		},
	},
	{
		ID: "XF-016", Field: "model_finetuning",
		Message: "model finetuning is declared but AI usage is none",
		OK: func(in *Intake) bool {
			return !in.ModelFinetuning || (in.AIUsage != AINone && in.AIUsage != "")
		},
	},
}

// enumCheck pairs a field path with a membership test so Validate can
// report unknown enum values uniformly.
type enumCheck struct {
	field string
	ok    func(*Intake) bool
}

// optional enum fields are allowed to be empty; set fields validate
// each member.
var enumChecks = []enumCheck{
	{"intake_status", func(in *Intake) bool { return validStatuses[in.IntakeStatus] }},
	{"business_model", func(in *Intake) bool { return validBusinessModels[in.BusinessModel] }},
	{"revenue_model", func(in *Intake) bool { return validRevenueModels[in.RevenueModel] }},
	{"funding_stage", func(in *Intake) bool { return validFundingStages[in.FundingStage] }},
	{"budget_tier", func(in *Intake) bool { return validBudgetTiers[in.BudgetTier] }},
	{"priority_focus", func(in *Intake) bool { return validPriorities[in.PriorityFocus] }},
	{"domain_model", func(in *Intake) bool { return validDomainModels[in.DomainModel] }},
	{"distinct_workflows", func(in *Intake) bool { return validCountTiers[in.DistinctWorkflows] }},
	{"user_roles_tier", func(in *Intake) bool { return validCountTiers[in.UserRolesTier] }},
	{"primary_datastore", func(in *Intake) bool { return validDatastores[in.PrimaryDatastore] }},
	{"data_volume_tier", func(in *Intake) bool { return validVolumeTiers[in.DataVolumeTier] }},
	{"retention_policy", func(in *Intake) bool { return validRetentions[in.RetentionPolicy] }},
	{"search_requirements", func(in *Intake) bool { return validSearchTiers[in.SearchRequirements] }},
	{"users_at_12_months", func(in *Intake) bool { return validUserScales[in.UsersAt12Months] }},
	{"peak_concurrency_tier", func(in *Intake) bool { return validLoadTiers[in.PeakConcurrencyTier] }},
	{"growth_pattern", func(in *Intake) bool { return validGrowthShapes[in.GrowthPattern] }},
	{"geographic_spread", func(in *Intake) bool { return validGeoSpreads[in.GeographicSpread] }},
	{"availability_target", func(in *Intake) bool { return validAvailabilities[in.AvailabilityTarget] }},
	{"recovery_time_tier", func(in *Intake) bool { return validRecoveryTiers[in.RecoveryTimeTier] }},
	{"auth_complexity", func(in *Intake) bool { return validAuthLevels[in.AuthComplexity] }},
	{"threat_profile", func(in *Intake) bool { return validThreatLevels[in.ThreatProfile] }},
	{"tenant_isolation", func(in *Intake) bool { return validIsolations[in.TenantIsolation] }},
	{"external_integrations_tier", func(in *Intake) bool { return validCountTiers[in.ExternalIntegrationsTier] }},
	{"api_style", func(in *Intake) bool { return validAPIStyles[in.APIStyle] }},
	{"ai_usage", func(in *Intake) bool { return validAIUsages[in.AIUsage] }},
	{"roadmap_volatility", func(in *Intake) bool { return validVolatilities[in.RoadmapVolatility] }},
	{"team_size", func(in *Intake) bool { return validTeamSizes[in.TeamSize] }},
	{"team_maturity", func(in *Intake) bool { return validTeamMaturities[in.TeamMaturity] }},
	{"seniority_mix", func(in *Intake) bool { return validSeniorities[in.SeniorityMix] }},
	{"devops_maturity", func(in *Intake) bool { return validDevOps[in.DevOpsMaturity] }},
	{"on_call_coverage", func(in *Intake) bool { return validOnCalls[in.OnCallCoverage] }},

	// Optional enums: empty means "not applicable", anything else must
	// be a member.
	{"consistency_requirement", func(in *Intake) bool {
		return in.ConsistencyRequirement == "" || validConsistencies[in.ConsistencyRequirement]
	}},
	{"data_residency", func(in *Intake) bool {
		return in.DataResidency == "" || validResidencies[in.DataResidency]
	}},
	{"realtime_protocol", func(in *Intake) bool {
		return in.RealtimeProtocol == "" || validRealtimeProtocols[in.RealtimeProtocol]
	}},
	{"realtime_fanout_tier", func(in *Intake) bool {
		return in.RealtimeFanoutTier == "" || validLoadTiers[in.RealtimeFanoutTier]
	}},
	{"ai_provider", func(in *Intake) bool {
		return in.AIProvider == "" || validAIProviders[in.AIProvider]
	}},
	{"ai_data_policy", func(in *Intake) bool {
		return in.AIDataPolicy == "" || validAIPolicies[in.AIDataPolicy]
	}},
	{"payment_providers_tier", func(in *Intake) bool {
		return in.PaymentProvidersTier == "" || validCountTiers[in.PaymentProvidersTier]
	}},
	{"compliance_frameworks", func(in *Intake) bool {
		for _, c := range in.ComplianceFrameworks {
			if !validCompliances[c] {
				return false
			}
		}
		return true
	}},
	{"secondary_datastores", func(in *Intake) bool {
		for _, d := range in.SecondaryDatastores {
			if !validDatastores[d] {
				return false
			}
		}
		return true
	}},
	{"sensitive_data_classes", func(in *Intake) bool {
		for _, d := range in.SensitiveDataClasses {
			if !validDataClasses[d] {
				return false
			}
		}
		return true
	}},
	{"must_have_capabilities", func(in *Intake) bool {
		for _, c := range in.MustHaveCapabilities {
			if !validCapabilities[c] {
				return false
			}
		}
		return true
	}},
	{"nice_to_have_capabilities", func(in *Intake) bool {
		for _, c := range in.NiceToHaveCapabilities {
			if !validCapabilities[c] {
				return false
			}
		}
		return true
	}},
}

// Validate runs every enum-membership check and every cross-field rule
// and returns all violations found. An empty slice means the record is
// structurally sound and safe to hand to the pipeline.
func Validate(in *Intake) []Violation {
	var out []Violation

	for _, ec := range enumChecks {
		if !ec.ok(in) {
			out = append(out, Violation{
				RuleID:  "ENUM",
				Field:   ec.field,
				Message: fmt.Sprintf("field %q has an unrecognized value", ec.field),
			})
		}
	}

	for _, r := range Rules {
		if !r.OK(in) {
			out = append(out, Violation{RuleID: r.ID, Field: r.Field, Message: r.Message})
		}
	}

	return out
}
