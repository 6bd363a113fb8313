package biology

import (
	"math"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

// GrowthCalculator derives the effective daily growth rate of a strain at a
// site. This is stateless domain logic: the base rate comes from the strain's
// doubling time and the environmental response factors gate it multiplicatively.
type GrowthCalculator struct {
	response *EnvironmentalResponse
}

// NewGrowthCalculator creates a new growth calculator.
func NewGrowthCalculator() *GrowthCalculator {
	return &GrowthCalculator{
		response: NewEnvironmentalResponse(),
	}
}

// BaseRate converts the strain's doubling time in hours to a continuous
// daily growth-rate constant: ln(2) / doubling time in days.
func (c *GrowthCalculator) BaseRate(strain *Strain) float64 {
	return math.Ln2 / (strain.DoublingTimeHours / 24)
}

// EffectiveRate returns the daily growth rate after applying all four
// environmental limitation factors. Never negative; a single zero factor
// drives the rate to zero.
func (c *GrowthCalculator) EffectiveRate(strain *Strain, site *ocean.Site) float64 {
	rate := c.BaseRate(strain) *
		c.response.TemperatureFactor(strain, site) *
		c.response.LightFactor(site) *
		c.response.NutrientFactor(site) *
		c.response.SalinityFactor(strain, site)

	return math.Max(0, rate)
}
