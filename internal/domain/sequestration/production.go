package sequestration

import (
	"fmt"
	"math"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

// Conversion constants.
const (
	DaysPerYear        = 365.25
	CarbonToCO2Ratio   = 3.67 // g CO2 per g C
	SquareMetersPerKm2 = 1e6
	GramsPerKg         = 1000.0
	KgPerTonne         = 1000.0
)

// ProductionParams holds the tunable model parameters of the production
// chain. Values are fixed at calculator construction; the calculator itself
// stays pure.
type ProductionParams struct {
	// Assumed standing biomass density in the mixed layer, g C/m³.
	BiomassDensityGCPerM3 float64
	// First-order decay constant applied while exported carbon sinks.
	RemineralizationRatePerDay float64
	// Reference natural-ocean productivity the seeding program aims for.
	TargetNPPGCPerM2PerYear float64
}

// DefaultProductionParams returns the standard model parameters.
func DefaultProductionParams() ProductionParams {
	return ProductionParams{
		BiomassDensityGCPerM3:      1.0,
		RemineralizationRatePerDay: 0.1,
		TargetNPPGCPerM2PerYear:    125.0,
	}
}

// ProductionCalculator converts a strain's effective growth rate into annual
// primary production, exported and sequestered carbon, CO2-equivalent
// removal, and the seeding biomass required to reach target productivity.
type ProductionCalculator struct {
	growth *biology.GrowthCalculator
	params ProductionParams
}

// NewProductionCalculator creates a production calculator with the default
// model parameters.
func NewProductionCalculator() *ProductionCalculator {
	calc, _ := NewProductionCalculatorWithParams(DefaultProductionParams())
	return calc
}

// NewProductionCalculatorWithParams creates a production calculator with
// custom model parameters, validated up front.
func NewProductionCalculatorWithParams(params ProductionParams) (*ProductionCalculator, error) {
	if params.BiomassDensityGCPerM3 <= 0 {
		return nil, fmt.Errorf("biomass density must be positive, got %v", params.BiomassDensityGCPerM3)
	}
	if params.RemineralizationRatePerDay < 0 {
		return nil, fmt.Errorf("remineralization rate cannot be negative, got %v", params.RemineralizationRatePerDay)
	}
	if params.TargetNPPGCPerM2PerYear <= 0 {
		return nil, fmt.Errorf("target NPP must be positive, got %v", params.TargetNPPGCPerM2PerYear)
	}

	return &ProductionCalculator{
		growth: biology.NewGrowthCalculator(),
		params: params,
	}, nil
}

// GrowthRate returns the effective daily growth rate of the strain at the site.
func (c *ProductionCalculator) GrowthRate(strain *biology.Strain, site *ocean.Site) float64 {
	return c.growth.EffectiveRate(strain, site)
}

// NetPrimaryProductivity returns annual NPP in g C/m²/year. The mixed layer
// is treated as a uniform-density reactor scaled by depth, not a full
// water-column integration.
func (c *ProductionCalculator) NetPrimaryProductivity(strain *biology.Strain, site *ocean.Site) float64 {
	npp := c.GrowthRate(strain, site) * c.params.BiomassDensityGCPerM3 * site.MixingDepthM * DaysPerYear
	return math.Max(0, npp)
}

// CarbonExport returns the carbon flux surviving to the sequestration depth
// in g C/m²/year: NPP scaled by the strain's export fraction, attenuated by
// first-order remineralization over the sinking time.
func (c *ProductionCalculator) CarbonExport(strain *biology.Strain, site *ocean.Site) float64 {
	exported := c.NetPrimaryProductivity(strain, site) * strain.ExportFraction

	sinkingTimeDays := site.SequestrationDepthM / strain.SinkingRateMPerDay
	survivalFraction := math.Exp(-c.params.RemineralizationRatePerDay * sinkingTimeDays)

	return exported * survivalFraction
}

// TotalCarbonSequestered returns the carbon durably sequestered across the
// deployment area in kg C/year.
func (c *ProductionCalculator) TotalCarbonSequestered(strain *biology.Strain, site *ocean.Site, ops *deployment.Operations) float64 {
	areaM2 := ops.AreaKm2 * SquareMetersPerKm2
	return c.CarbonExport(strain, site) * areaM2 / GramsPerKg
}

// CO2Removed returns the CO2-equivalent removal in tonnes/year.
func (c *ProductionCalculator) CO2Removed(strain *biology.Strain, site *ocean.Site, ops *deployment.Operations) float64 {
	return c.TotalCarbonSequestered(strain, site, ops) * CarbonToCO2Ratio / KgPerTonne
}

// BiomassRequired returns the cultivated seeding biomass in kg/year needed to
// close the gap between current NPP and the target productivity. Zero when
// the site already produces at or above target. Seeded biomass is assumed to
// contribute carbon at its dry-weight carbon fraction.
func (c *ProductionCalculator) BiomassRequired(strain *biology.Strain, site *ocean.Site, ops *deployment.Operations) float64 {
	currentNPP := c.NetPrimaryProductivity(strain, site)
	if currentNPP >= c.params.TargetNPPGCPerM2PerYear {
		return 0
	}

	biomassPerM2 := (c.params.TargetNPPGCPerM2PerYear - currentNPP) / strain.CarbonContentPercent * 100
	areaM2 := ops.AreaKm2 * SquareMetersPerKm2

	return biomassPerM2 * areaM2 / GramsPerKg
}
