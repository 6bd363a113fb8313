package economics

import (
	"math"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/sequestration"
)

// R&D spend is amortized straight-line over ten years.
const researchAmortizationYears = 10.0

// CostBreakdown is the categorized annual cost of a deployment in $/year.
// The field set is closed, so it is a fixed-shape struct rather than a map.
type CostBreakdown struct {
	Cultivation float64
	Delivery    float64
	Vessel      float64
	Monitoring  float64
	Regulatory  float64
	Research    float64
	Total       float64
}

// CostCalculator derives the annual cost breakdown from the operational
// parameters, the strain's R&D bill and the computed biomass requirement.
type CostCalculator struct{}

// NewCostCalculator creates a new cost calculator.
func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// Breakdown returns the six additive annual cost categories and their total.
func (c *CostCalculator) Breakdown(strain *biology.Strain, ops *deployment.Operations, biomassRequiredKg float64) CostBreakdown {
	breakdown := CostBreakdown{
		Cultivation: biomassRequiredKg * ops.CultivationCostPerKg,
		Delivery:    biomassRequiredKg * ops.DeliveryCostPerKg,
		Vessel:      ops.VesselCostPerDay * sequestration.DaysPerYear,
		Monitoring:  ops.MonitoringCostPerYear,
		Regulatory:  ops.RegulatoryCostPerYear,
		Research:    strain.ResearchCostMillions * 1e6 / researchAmortizationYears,
	}

	breakdown.Total = breakdown.Cultivation + breakdown.Delivery + breakdown.Vessel +
		breakdown.Monitoring + breakdown.Regulatory + breakdown.Research

	return breakdown
}

// CostPerTonneCO2 returns the total annual cost divided by the annual CO2
// removal. Defined as +Inf when removal is zero or negative: that is a valid
// terminal outcome signaling a non-viable scenario, not an error.
func (c *CostCalculator) CostPerTonneCO2(totalCost, co2RemovedTonnes float64) float64 {
	if co2RemovedTonnes <= 0 {
		return math.Inf(1)
	}
	return totalCost / co2RemovedTonnes
}
