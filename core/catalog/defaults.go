// Package catalog - Built-in catalog data
package catalog

import (
	"github.com/shopspring/decimal"

	"sales-economics/core/types"
)

// Default returns the built-in catalog. The returned value is treated
// as read-only process-wide configuration; callers needing substitute
// data construct their own Catalog instead of mutating this one.
func Default() *Catalog {
	return &Catalog{
		Tiers:                  defaultTiers(),
		Licenses:               defaultLicenses(),
		ExclusivityRates:       defaultExclusivityRates(),
		Discounts:              defaultDiscounts(),
		Industries:             defaultIndustries(),
		IndustryCostItems:      defaultIndustryCostItems(),
		IndustryBenefitFactors: defaultIndustryBenefitFactors(),
		AdoptionSpeeds:         defaultAdoptionSpeeds(),
		MarketMetrics:          defaultMarketMetrics(),
		CostPerCallBenchmark:   types.Benchmark{Low: 6.0, Average: 8.0, High: 12.0},
		Competitors:            defaultCompetitors(),
		Scenarios:              defaultScenarios(),
		ScenarioRisks:          defaultScenarioRisks(),
	}
}

func defaultTiers() []types.SubscriptionTier {
	return []types.SubscriptionTier{
		{
			Name:          "Starter",
			MaxCalls:      1000,
			PricePerMonth: decimal.NewFromInt(450),
			SetupFee:      decimal.NewFromInt(1000),
			Features: []string{
				"AI-powered outbound calls",
				"Basic analytics dashboard",
				"Standard business hours support",
				"Basic call scripts",
			},
			MinTermMonths: 6,
			OverageRate:   decimal.NewFromFloat(0.50),
		},
		{
			Name:          "Professional",
			MaxCalls:      5000,
			PricePerMonth: decimal.NewFromInt(2000),
			SetupFee:      decimal.NewFromInt(2500),
			Features: []string{
				"All Starter features",
				"24/7 call availability",
				"Advanced analytics and reporting",
				"Custom call scripts",
				"Priority support",
				"Call recording and transcription",
			},
			MinTermMonths: 12,
			OverageRate:   decimal.NewFromFloat(0.45),
		},
		{
			Name:          "Enterprise",
			MaxCalls:      10000,
			PricePerMonth: decimal.NewFromInt(3500),
			SetupFee:      decimal.NewFromInt(5000),
			Features: []string{
				"All Professional features",
				"Dedicated account manager",
				"Custom AI agent personalities",
				"API integration",
				"Advanced customization options",
				"SLA guarantees",
				"Training and onboarding support",
			},
			MinTermMonths: 12,
			OverageRate:   decimal.NewFromFloat(0.40),
		},
		{
			Name:          "Ultimate",
			MaxCalls:      25000,
			PricePerMonth: decimal.NewFromInt(7500),
			SetupFee:      decimal.NewFromInt(10000),
			Features: []string{
				"All Enterprise features",
				"Multi-language support",
				"Custom integration development",
				"Dedicated development team",
				"White-label options",
				"Custom analytics development",
				"Executive quarterly reviews",
			},
			MinTermMonths: 24,
			OverageRate:   decimal.NewFromFloat(0.35),
		},
	}
}

func defaultLicenses() []types.EnterpriseLicense {
	return []types.EnterpriseLicense{
		{
			Name:         "silver",
			BaseFee:      decimal.NewFromInt(25000),
			MaxLocations: 3,
			MaxTotalCalls: 50000,
			Features: []string{
				"All Ultimate tier features",
				"Multi-location deployment",
				"Centralized management console",
				"Enhanced SLA guarantees",
				"Quarterly business reviews",
			},
			SupportLevel:           "Premium",
			CustomDevelopmentHours: 20,
		},
		{
			Name:         "gold",
			BaseFee:      decimal.NewFromInt(50000),
			MaxLocations: 10,
			MaxTotalCalls: 150000,
			Features: []string{
				"All Silver license features",
				"Priority feature development",
				"Custom AI model training",
				"Advanced integration options",
				"24/7 dedicated support team",
			},
			SupportLevel:           "Enterprise",
			CustomDevelopmentHours: 50,
		},
		{
			Name:         "platinum",
			BaseFee:      decimal.NewFromInt(100000),
			MaxLocations: 999999,
			MaxTotalCalls: 999999,
			Features: []string{
				"All Gold license features",
				"Unlimited locations",
				"Unlimited calls",
				"Custom feature development",
				"Source code access",
				"Technology partnership status",
			},
			SupportLevel:           "Executive",
			CustomDevelopmentHours: 100,
		},
	}
}

func defaultExclusivityRates() map[types.ExclusivityLevel]decimal.Decimal {
	return map[types.ExclusivityLevel]decimal.Decimal{
		types.ExclusivityCity:    decimal.NewFromInt(5000),
		types.ExclusivityState:   decimal.NewFromInt(25000),
		types.ExclusivityRegion:  decimal.NewFromInt(75000),
		types.ExclusivityCountry: decimal.NewFromInt(150000),
		types.ExclusivityGlobal:  decimal.NewFromInt(500000),
	}
}

func defaultDiscounts() types.DiscountTable {
	return types.DiscountTable{
		Volume: []types.DiscountBreak{
			{Threshold: 50000, Discount: 0.05},
			{Threshold: 100000, Discount: 0.10},
			{Threshold: 250000, Discount: 0.15},
			{Threshold: 500000, Discount: 0.20},
			{Threshold: 1000000, Discount: 0.25},
		},
		Term: []types.DiscountBreak{
			{Threshold: 12, Discount: 0.00},
			{Threshold: 24, Discount: 0.10},
			{Threshold: 36, Discount: 0.15},
			{Threshold: 48, Discount: 0.20},
			{Threshold: 60, Discount: 0.25},
		},
	}
}

func defaultIndustries() map[types.Industry]types.IndustryProfile {
	return map[types.Industry]types.IndustryProfile{
		types.IndustryFinancialServices: {
			Industry:               types.IndustryFinancialServices,
			PriceMultiplier:        1.3,
			CostMultiplier:         1.4,
			ComplianceRequirements: []string{"SEC", "FINRA", "BSA/AML", "KYC"},
			SpecializedFeatures: []string{
				"Compliance recording",
				"Risk assessment",
				"Fraud detection",
				"Transaction verification",
			},
			AvgCallDurationSeconds: 420,
		},
		types.IndustryHealthcare: {
			Industry:               types.IndustryHealthcare,
			PriceMultiplier:        1.25,
			CostMultiplier:         1.35,
			ComplianceRequirements: []string{"HIPAA", "HITECH", "PHI Protection"},
			SpecializedFeatures: []string{
				"PHI handling",
				"Medical terminology",
				"Insurance verification",
				"Appointment scheduling",
			},
			AvgCallDurationSeconds: 360,
		},
		types.IndustryRealEstate: {
			Industry:               types.IndustryRealEstate,
			PriceMultiplier:        1.1,
			CostMultiplier:         1.15,
			ComplianceRequirements: []string{"Fair Housing", "RESPA"},
			SpecializedFeatures: []string{
				"Property matching",
				"Scheduling viewings",
				"Market analysis",
				"Lead scoring",
			},
			AvgCallDurationSeconds: 300,
		},
		types.IndustryTechnology: {
			Industry:               types.IndustryTechnology,
			PriceMultiplier:        1.2,
			CostMultiplier:         1.25,
			ComplianceRequirements: []string{"Data Protection", "GDPR", "CCPA"},
			SpecializedFeatures: []string{
				"Technical qualification",
				"Product compatibility",
				"Integration planning",
				"Technical support",
			},
			AvgCallDurationSeconds: 480,
		},
	}
}

func defaultIndustryCostItems() map[types.Industry][]CostItem {
	return map[types.Industry][]CostItem{
		types.IndustryFinancialServices: {
			{Name: "compliance_monitoring", Rate: 2.0, Basis: BasisPerCall},
			{Name: "regulatory_training", Rate: 1000, Basis: BasisPerAgent},
			{Name: "audit_requirements", Rate: 500, Basis: BasisPerAgent},
		},
		types.IndustryHealthcare: {
			{Name: "hipaa_compliance", Rate: 1.5, Basis: BasisPerCall},
			{Name: "specialized_training", Rate: 800, Basis: BasisPerAgent},
			{Name: "data_security", Rate: 600, Basis: BasisPerAgent},
		},
		types.IndustryRealEstate: {
			{Name: "license_maintenance", Rate: 300, Basis: BasisPerAgent},
			{Name: "market_data_access", Rate: 200, Basis: BasisPerAgent},
			{Name: "scheduling_software", Rate: 100, Basis: BasisPerAgent},
		},
		types.IndustryTechnology: {
			{Name: "technical_training", Rate: 1200, Basis: BasisPerAgent},
			{Name: "software_licenses", Rate: 400, Basis: BasisPerAgent},
			{Name: "technical_support", Rate: 300, Basis: BasisPerAgent},
		},
	}
}

func defaultIndustryBenefitFactors() map[types.Industry]map[string]float64 {
	return map[types.Industry]map[string]float64{
		types.IndustryFinancialServices: {
			"compliance_value": 0.15,
			"risk_reduction":   0.10,
			"audit_efficiency": 0.05,
		},
		types.IndustryHealthcare: {
			"hipaa_compliance":     0.20,
			"patient_satisfaction": 0.10,
			"record_accuracy":      0.05,
		},
		types.IndustryRealEstate: {
			"lead_response": 0.15,
			"follow_up":     0.10,
			"scheduling":    0.05,
		},
		types.IndustryTechnology: {
			"technical_accuracy": 0.10,
			"demo_efficiency":    0.10,
			"integration":        0.10,
		},
	}
}

func defaultAdoptionSpeeds() map[types.Industry]float64 {
	return map[types.Industry]float64{
		types.IndustryFinancialServices:    1.2,
		types.IndustryHealthcare:           0.8,
		types.IndustryRealEstate:           1.0,
		types.IndustryTechnology:           1.5,
		types.IndustryRetail:               1.1,
		types.IndustryManufacturing:        0.9,
		types.IndustryEducation:            0.7,
		types.IndustryProfessionalServices: 1.3,
	}
}

func defaultMarketMetrics() map[types.Industry]types.MarketMetrics {
	return map[types.Industry]types.MarketMetrics{
		types.IndustryFinancialServices: {
			TotalAddressableMarket:  500.0,
			MarketGrowthRate:        0.12,
			CompetitionIntensity:    0.8,
			AverageDealSize:         75000.0,
			CustomerAcquisitionCost: 15000.0,
			MarketMaturity:          0.7,
		},
		types.IndustryHealthcare: {
			TotalAddressableMarket:  800.0,
			MarketGrowthRate:        0.15,
			CompetitionIntensity:    0.6,
			AverageDealSize:         60000.0,
			CustomerAcquisitionCost: 12000.0,
			MarketMaturity:          0.5,
		},
		types.IndustryRealEstate: {
			TotalAddressableMarket:  300.0,
			MarketGrowthRate:        0.08,
			CompetitionIntensity:    0.7,
			AverageDealSize:         45000.0,
			CustomerAcquisitionCost: 9000.0,
			MarketMaturity:          0.8,
		},
		types.IndustryTechnology: {
			TotalAddressableMarket:  600.0,
			MarketGrowthRate:        0.18,
			CompetitionIntensity:    0.9,
			AverageDealSize:         90000.0,
			CustomerAcquisitionCost: 18000.0,
			MarketMaturity:          0.6,
		},
	}
}

func defaultCompetitors() []types.CompetitorBenchmark {
	return []types.CompetitorBenchmark{
		{
			Key:            "traditional_call_center",
			Name:           "Traditional Call Center",
			AvgCostPerCall: 8.0,
			Features: []string{
				"Human agents",
				"Standard training",
				"Basic reporting",
				"Limited hours",
			},
			Limitations: []string{
				"High turnover",
				"Inconsistent quality",
				"Limited scalability",
				"Training requirements",
			},
			MarketFocus:  "General",
			PricingModel: "Per agent/hour",
		},
		{
			Key:            "cloud_contact",
			Name:           "Cloud Contact Solutions",
			AvgCostPerCall: 6.5,
			Features: []string{
				"Cloud infrastructure",
				"Basic automation",
				"Standard reporting",
				"Multiple channels",
			},
			Limitations: []string{
				"Limited AI capabilities",
				"Basic automation only",
				"Generic solutions",
				"Minimal customization",
			},
			MarketFocus:  "Small Business",
			PricingModel: "Per seat/month",
		},
		{
			Key:            "ai_assist",
			Name:           "AI Assistant Tools",
			AvgCostPerCall: 5.0,
			Features: []string{
				"Basic AI support",
				"Template responses",
				"Simple automation",
				"Standard hours",
			},
			Limitations: []string{
				"Limited customization",
				"Basic AI only",
				"No full conversation handling",
				"Limited integration",
			},
			MarketFocus:  "Tech startups",
			PricingModel: "Per user/month",
		},
	}
}

func defaultScenarios() []types.ROIScenario {
	return []types.ROIScenario{
		{
			Name:        types.ScenarioConservative,
			Description: "Minimal performance improvements, focused on direct cost savings",
			Assumptions: types.ScenarioAssumptions{
				EfficiencyGain:     0.2,
				QualityImprovement: 0.1,
				ConversionBoost:    0.05,
			},
			Multipliers: types.ScenarioMultipliers{
				CostReduction:    0.4,
				RevenueIncrease:  0.1,
				ProductivityGain: 0.2,
			},
		},
		{
			Name:        types.ScenarioModerate,
			Description: "Balanced improvements across all areas",
			Assumptions: types.ScenarioAssumptions{
				EfficiencyGain:     0.35,
				QualityImprovement: 0.25,
				ConversionBoost:    0.15,
			},
			Multipliers: types.ScenarioMultipliers{
				CostReduction:    0.5,
				RevenueIncrease:  0.2,
				ProductivityGain: 0.35,
			},
		},
		{
			Name:        types.ScenarioAggressive,
			Description: "Maximum potential benefits with optimal implementation",
			Assumptions: types.ScenarioAssumptions{
				EfficiencyGain:     0.5,
				QualityImprovement: 0.4,
				ConversionBoost:    0.25,
			},
			Multipliers: types.ScenarioMultipliers{
				CostReduction:    0.6,
				RevenueIncrease:  0.3,
				ProductivityGain: 0.5,
			},
		},
	}
}

func defaultScenarioRisks() map[types.ScenarioName]types.ScenarioRisk {
	return map[types.ScenarioName]types.ScenarioRisk{
		types.ScenarioConservative: {
			ImplementationRisk: types.RiskLow,
			AdoptionRisk:       types.RiskLow,
			PerformanceRisk:    types.RiskLow,
		},
		types.ScenarioModerate: {
			ImplementationRisk: types.RiskMedium,
			AdoptionRisk:       types.RiskMedium,
			PerformanceRisk:    types.RiskMedium,
		},
		types.ScenarioAggressive: {
			ImplementationRisk: types.RiskHigh,
			AdoptionRisk:       types.RiskHigh,
			PerformanceRisk:    types.RiskHigh,
		},
	}
}
