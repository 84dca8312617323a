// Package types - Shared engine value objects
// All engine inputs and outputs are plain value objects; no framework
// request or response types cross this boundary.
package types

import "strings"

// Industry identifies a market vertical
type Industry string

const (
	IndustryFinancialServices    Industry = "financial_services"
	IndustryHealthcare           Industry = "healthcare"
	IndustryRealEstate           Industry = "real_estate"
	IndustryTechnology           Industry = "technology"
	IndustryRetail               Industry = "retail"
	IndustryManufacturing        Industry = "manufacturing"
	IndustryEducation            Industry = "education"
	IndustryProfessionalServices Industry = "professional_services"
)

// String returns the string representation
func (i Industry) String() string {
	return string(i)
}

// NormalizeIndustry canonicalizes a caller-supplied industry name.
// Lookups against industry catalogs are case-insensitive.
func NormalizeIndustry(s string) Industry {
	return Industry(strings.ToLower(strings.TrimSpace(s)))
}

// ScenarioName identifies an ROI scenario
type ScenarioName string

const (
	ScenarioConservative ScenarioName = "conservative"
	ScenarioModerate     ScenarioName = "moderate"
	ScenarioAggressive   ScenarioName = "aggressive"
)

// NormalizeScenario canonicalizes a caller-supplied scenario name
func NormalizeScenario(s string) ScenarioName {
	return ScenarioName(strings.ToLower(strings.TrimSpace(s)))
}

// RiskLevel is a qualitative risk label
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// CostStanding classifies a cost-per-call position against benchmarks
type CostStanding string

const (
	StandingLow     CostStanding = "Low"
	StandingAverage CostStanding = "Average"
	StandingHigh    CostStanding = "High"
)

// AdoptionPhase names a segment of the canonical adoption curve
type AdoptionPhase string

const (
	PhaseInnovators    AdoptionPhase = "innovators"
	PhaseEarlyAdopters AdoptionPhase = "early_adopters"
	PhaseEarlyMajority AdoptionPhase = "early_majority"
	PhaseLateMajority  AdoptionPhase = "late_majority"
	PhaseLaggards      AdoptionPhase = "laggards"
)

// AdoptionPhases lists the phases in canonical order
var AdoptionPhases = []AdoptionPhase{
	PhaseInnovators,
	PhaseEarlyAdopters,
	PhaseEarlyMajority,
	PhaseLateMajority,
	PhaseLaggards,
}
