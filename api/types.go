// Package api - Request and response envelopes
package api

import (
	"time"

	"sales-economics/core/types"
)

// TCORequest asks for a total-cost-of-ownership analysis
type TCORequest struct {
	NumAgents      int     `json:"num_agents"`
	CallsPerMonth  int     `json:"calls_per_month"`
	AvgAgentSalary float64 `json:"avg_agent_salary"`
	Industry       string  `json:"industry"`
}

// RecommendRequest asks for a subscription tier recommendation
type RecommendRequest struct {
	MonthlyCalls int     `json:"monthly_calls"`
	MonthlyCost  float64 `json:"monthly_cost"`
}

// ROIRequest asks for a comprehensive ROI projection
type ROIRequest struct {
	CurrentCosts types.CostBreakdown      `json:"current_costs"`
	Metrics      types.OperationalMetrics `json:"operational_metrics"`
	TierName     string                   `json:"tier_name"`
	Industry     string                   `json:"industry"`
	Scenario     string                   `json:"scenario"`
}

// PenetrationRequest asks for a market penetration forecast
type PenetrationRequest struct {
	Industry           string                   `json:"industry"`
	MarketConditions   types.MarketConditions   `json:"market_conditions"`
	Competitors        []types.CompetitorData   `json:"competitors"`
	PenetrationFactors types.PenetrationFactors `json:"penetration_factors"`
	TimeframeMonths    int                      `json:"timeframe_months"`
}

// OptimizeRequest asks for an optimized contract configuration
type OptimizeRequest struct {
	EstimatedCalls   int      `json:"estimated_calls"`
	Industry         string   `json:"industry"`
	BudgetConstraint *float64 `json:"budget_constraint,omitempty"`
}

// SubscriptionCostRequest asks for tier pricing over a term
type SubscriptionCostRequest struct {
	Tier           string `json:"tier"`
	DurationMonths int    `json:"duration_months"`
	EstimatedCalls int    `json:"estimated_calls"`
}

// Envelope wraps every successful response
type Envelope struct {
	// RequestID uniquely identifies the request
	RequestID string `json:"request_id"`

	// Timestamp is when the response was produced
	Timestamp time.Time `json:"timestamp"`

	// Result is the engine output
	Result interface{} `json:"result"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	// RequestID uniquely identifies the request
	RequestID string `json:"request_id"`

	// Code is the domain error type
	Code string `json:"code"`

	// Message is the error detail
	Message string `json:"message"`
}
