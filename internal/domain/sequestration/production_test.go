package sequestration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/sequestration"
)

func referenceStrain(t *testing.T) *biology.Strain {
	t.Helper()

	tempRange, err := biology.NewToleranceRange(20, 30)
	require.NoError(t, err)
	salinityRange, err := biology.NewToleranceRange(30, 40)
	require.NoError(t, err)

	strain, err := biology.NewStrain(
		"Fast-growing Cyanobacteria",
		45.0, 12.0, 0.8, 50.0, 0.4,
		tempRange, salinityRange,
		true, 15.0,
	)
	require.NoError(t, err)
	return strain
}

func tropicalSite(t *testing.T) *ocean.Site {
	t.Helper()

	site, err := ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, 1000)
	require.NoError(t, err)
	return site
}

func referenceOps(t *testing.T) *deployment.Operations {
	t.Helper()

	ops, err := deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, 50000)
	require.NoError(t, err)
	return ops
}

// referenceGrowthRate is the effective rate in the reference scenario:
// base ln(2)/0.5d gated by temp 0.91, light 0.8, nutrient 0.4, salinity 1.0.
func referenceGrowthRate() float64 {
	return math.Ln2 * 2 * 0.91 * 0.8 * 0.4
}

func TestNetPrimaryProductivity_ReferenceScenario(t *testing.T) {
	// Arrange
	calc := sequestration.NewProductionCalculator()

	// Act
	npp := calc.NetPrimaryProductivity(referenceStrain(t), tropicalSite(t))

	// Assert: rate × 1 g C/m³ × 50 m × 365.25
	expected := referenceGrowthRate() * 50 * sequestration.DaysPerYear
	assert.InDelta(t, expected, npp, 1e-9)
}

func TestCarbonExport_AppliesExportFractionAndDecay(t *testing.T) {
	// Arrange
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	site := tropicalSite(t)

	// Act
	export := calc.CarbonExport(strain, site)

	// Assert: 1000 m at 50 m/day is 20 days of sinking, survival exp(-2)
	npp := calc.NetPrimaryProductivity(strain, site)
	expected := npp * 0.4 * math.Exp(-0.1*20)
	assert.InDelta(t, expected, export, 1e-9)
}

func TestTotalCarbonSequestered_ScalesWithArea(t *testing.T) {
	// Arrange
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	site := tropicalSite(t)
	ops := referenceOps(t)

	doubled, err := ops.WithArea(2000)
	require.NoError(t, err)

	// Act
	base := calc.TotalCarbonSequestered(strain, site, ops)
	scaled := calc.TotalCarbonSequestered(strain, site, doubled)

	// Assert: strictly linear in area
	assert.InDelta(t, base*2, scaled, base*1e-12)
}

func TestCO2Removed_ConvertsCarbonMass(t *testing.T) {
	// Arrange
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	site := tropicalSite(t)
	ops := referenceOps(t)

	// Act
	co2 := calc.CO2Removed(strain, site, ops)

	// Assert
	carbonKg := calc.TotalCarbonSequestered(strain, site, ops)
	assert.InDelta(t, carbonKg*sequestration.CarbonToCO2Ratio/1000, co2, 1e-6)
	assert.Positive(t, co2)
}

func TestBiomassRequired_ZeroAtOrAboveTarget(t *testing.T) {
	// The reference scenario produces far above the 125 g C/m²/year target
	calc := sequestration.NewProductionCalculator()

	biomass := calc.BiomassRequired(referenceStrain(t), tropicalSite(t), referenceOps(t))

	assert.Zero(t, biomass)
}

func TestBiomassRequired_ClosesProductivityGap(t *testing.T) {
	// Arrange: a shallow mixed layer keeps NPP below target
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	ops := referenceOps(t)

	site, err := ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 0.5, 0.1, 1000)
	require.NoError(t, err)

	npp := calc.NetPrimaryProductivity(strain, site)
	require.Less(t, npp, 125.0)

	// Act
	biomass := calc.BiomassRequired(strain, site, ops)

	// Assert: gap scaled by carbon fraction over the full area, in kg
	expectedPerM2 := (125.0 - npp) / strain.CarbonContentPercent * 100
	expected := expectedPerM2 * 1000 * 1e6 / 1000
	assert.InDelta(t, expected, biomass, expected*1e-12)
}

func TestBiomassRequired_DoublesWithArea(t *testing.T) {
	// Arrange
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	ops := referenceOps(t)

	site, err := ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 0.5, 0.1, 1000)
	require.NoError(t, err)

	doubled, err := ops.WithArea(2000)
	require.NoError(t, err)

	// Act
	base := calc.BiomassRequired(strain, site, ops)
	scaled := calc.BiomassRequired(strain, site, doubled)

	// Assert
	require.Positive(t, base)
	assert.InDelta(t, base*2, scaled, base*1e-12)
}

func TestZeroGrowth_PropagatesDownstream(t *testing.T) {
	// Arrange: temperature outside tolerance gates growth to zero
	calc := sequestration.NewProductionCalculator()
	strain := referenceStrain(t)
	ops := referenceOps(t)

	site, err := ocean.NewSite(80, 35, 35, 2.0, 0.2, 0.05, 50, 0.1, 1000)
	require.NoError(t, err)

	// Assert
	assert.Zero(t, calc.GrowthRate(strain, site))
	assert.Zero(t, calc.NetPrimaryProductivity(strain, site))
	assert.Zero(t, calc.CarbonExport(strain, site))
	assert.Zero(t, calc.CO2Removed(strain, site, ops))
}

func TestNewProductionCalculatorWithParams_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params sequestration.ProductionParams
	}{
		{
			name: "non-positive biomass density",
			params: sequestration.ProductionParams{
				BiomassDensityGCPerM3:      0,
				RemineralizationRatePerDay: 0.1,
				TargetNPPGCPerM2PerYear:    125,
			},
		},
		{
			name: "negative remineralization rate",
			params: sequestration.ProductionParams{
				BiomassDensityGCPerM3:      1,
				RemineralizationRatePerDay: -0.1,
				TargetNPPGCPerM2PerYear:    125,
			},
		},
		{
			name: "non-positive target NPP",
			params: sequestration.ProductionParams{
				BiomassDensityGCPerM3:      1,
				RemineralizationRatePerDay: 0.1,
				TargetNPPGCPerM2PerYear:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := sequestration.NewProductionCalculatorWithParams(tt.params)

			require.Error(t, err)
			assert.Nil(t, calc)
		})
	}
}
