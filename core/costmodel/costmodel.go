// Package costmodel derives a prospect's total cost of ownership from
// operating inputs and positions it against benchmarks and competitors.
//
// Everything here is a pure function of its inputs plus the injected
// catalog; there is no shared mutable state.
package costmodel

import (
	"sales-economics/core/catalog"
	"sales-economics/core/types"
	"sales-economics/internal/errors"
)

const (
	// equipmentPerAgent is the monthly equipment and software cost
	equipmentPerAgent = 200.0

	// infrastructurePerAgent is the monthly infrastructure cost
	infrastructurePerAgent = 300.0

	// benefitsRate is the benefits share of salary
	benefitsRate = 0.30

	// managerRate assumes one $1000 manager slice per 10 agents
	managerRate = 1000.0 / 10.0

	// trainingPerAgent is the monthly training cost
	trainingPerAgent = 500.0

	// qaPerCall is the quality assurance cost per call
	qaPerCall = 0.5

	// adminPerAgent is the administrative overhead per agent
	adminPerAgent = 200.0

	// agentUtilization is the assumed utilization rate; the remaining
	// quarter of call volume is treated as missed
	agentUtilization = 0.75

	// missedCallValue is the assumed value of a missed call
	missedCallValue = 5.0

	// inefficiencyPerAgent is the monthly cost of agent inefficiency
	inefficiencyPerAgent = 500.0

	// scalabilityPerCall is the per-call cost of limited scalability
	scalabilityPerCall = 0.1
)

// Model computes cost-of-ownership analyses against a catalog
type Model struct {
	catalog *catalog.Catalog
}

// New creates a cost model bound to a catalog
func New(cat *catalog.Catalog) *Model {
	return &Model{catalog: cat}
}

// TotalCostOfOwnership computes the full TCO decomposition plus
// benchmark and competitor positioning.
//
// callsPerMonth and numAgents must be positive; avgAgentSalary must be
// non-negative. An industry with no catalog cost items contributes zero
// industry-specific cost, by design.
func (m *Model) TotalCostOfOwnership(numAgents, callsPerMonth int, avgAgentSalary float64, industry string) (*types.TCOAnalysis, error) {
	if callsPerMonth == 0 {
		return nil, errors.InvalidArgument("calls per month must be positive: division by zero")
	}
	if callsPerMonth < 0 {
		return nil, errors.InvalidArgumentf("calls per month must be positive, got %d", callsPerMonth)
	}
	if numAgents <= 0 {
		return nil, errors.InvalidArgumentf("agent count must be positive, got %d", numAgents)
	}
	if avgAgentSalary < 0 {
		return nil, errors.InvalidArgumentf("agent salary must be non-negative, got %f", avgAgentSalary)
	}

	agents := float64(numAgents)
	calls := float64(callsPerMonth)

	direct := directCosts(agents, avgAgentSalary)
	indirect := indirectCosts(agents, calls)
	opportunity := opportunityCosts(calls, agents)
	industrySpecific := m.industryCosts(industry, agents, calls)

	total := direct.Total + indirect.Total + opportunity.Total + industrySpecific.Total
	perCall := total / calls

	breakdown := types.CostBreakdown{
		TotalMonthlyCost: types.Round2(total),
		CostPerCall:      types.Round2(perCall),
		Direct:           direct,
		Indirect:         indirect,
		Opportunity:      opportunity,
		Industry:         industrySpecific,
	}

	return &types.TCOAnalysis{
		Breakdown:           breakdown,
		Benchmarks:          m.CompareBenchmark(perCall),
		CompetitiveAnalysis: m.CompareCompetitors(perCall),
	}, nil
}

func directCosts(agents, annualSalary float64) types.DirectCosts {
	monthlySalary := annualSalary / 12
	benefits := monthlySalary * benefitsRate

	return types.DirectCosts{
		Salary:         monthlySalary * agents,
		Benefits:       benefits * agents,
		Equipment:      equipmentPerAgent * agents,
		Infrastructure: infrastructurePerAgent * agents,
		Total:          agents * (monthlySalary + benefits + equipmentPerAgent + infrastructurePerAgent),
	}
}

func indirectCosts(agents, calls float64) types.IndirectCosts {
	management := managerRate * agents
	training := trainingPerAgent * agents
	qa := qaPerCall * calls
	admin := adminPerAgent * agents

	return types.IndirectCosts{
		Management:       management,
		Training:         training,
		QualityAssurance: qa,
		Administrative:   admin,
		Total:            management + training + qa + admin,
	}
}

func opportunityCosts(calls, agents float64) types.OpportunityCosts {
	missedCalls := calls * (1 - agentUtilization)
	missed := missedCalls * missedCallValue
	inefficiency := agents * inefficiencyPerAgent
	scalability := calls * scalabilityPerCall

	return types.OpportunityCosts{
		MissedOpportunities:    missed,
		Inefficiency:           inefficiency,
		ScalabilityLimitations: scalability,
		Total:                  missed + inefficiency + scalability,
	}
}

func (m *Model) industryCosts(industry string, agents, calls float64) types.IndustryCosts {
	items := m.catalog.IndustryCostItems[types.NormalizeIndustry(industry)]
	if len(items) == 0 {
		// Unknown vertical: zero contribution, not an error
		return types.IndustryCosts{Total: 0}
	}

	out := types.IndustryCosts{Items: make(map[string]float64, len(items))}
	for _, item := range items {
		var amount float64
		switch item.Basis {
		case catalog.BasisPerCall:
			amount = item.Rate * calls
		default:
			amount = item.Rate * agents
		}
		out.Items[item.Name] = amount
		out.Total += amount
	}
	return out
}
