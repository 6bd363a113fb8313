package biology

import (
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/pkg/utils"
)

// Reference nutrient concentrations at which each nutrient stops limiting
// growth. Concentrations at or above the reference contribute a factor of 1.
const (
	NitrogenReferenceUmolPerL   = 5.0
	PhosphorusReferenceUmolPerL = 0.3
	IronReferenceNmolPerL       = 0.06
)

// Light limitation bounds: below the floor depth the water column is too
// shallow for meaningful production, beyond the ceiling light saturates.
const (
	lightFloorDepthM   = 10.0
	lightCeilingDepthM = 100.0
	lightFloorFactor   = 0.1
)

// EnvironmentalResponse computes the dimensionless limitation factors that
// gate a strain's growth at a site. Each factor is in [0, 1] and represents
// an independent limiting influence; the growth calculator combines them as
// a product (Liebig-style), so any single zero factor shuts growth down.
type EnvironmentalResponse struct{}

// NewEnvironmentalResponse creates a new environmental response calculator.
func NewEnvironmentalResponse() *EnvironmentalResponse {
	return &EnvironmentalResponse{}
}

// TemperatureFactor returns the temperature limitation factor for a strain
// at a site. Temperatures at or outside the strain's tolerance bounds give 0
// (hard cutoff); inside the range the response is a symmetric bell centered
// on the midpoint.
func (r *EnvironmentalResponse) TemperatureFactor(strain *Strain, site *ocean.Site) float64 {
	return bellResponse(site.SurfaceTemperatureCelsius, strain.OptimalTemperature)
}

// SalinityFactor returns the salinity limitation factor, using the same
// bell-curve shape as temperature parameterized by the strain's salinity
// tolerance.
func (r *EnvironmentalResponse) SalinityFactor(strain *Strain, site *ocean.Site) float64 {
	return bellResponse(site.SalinityPPT, strain.OptimalSalinity)
}

// LightFactor returns the light limitation factor derived from the euphotic
// depth: floored at 0.1 below 10 m, saturating at 1.0 beyond 100 m, linear
// in between.
func (r *EnvironmentalResponse) LightFactor(site *ocean.Site) float64 {
	depth := site.EuphoticDepthM
	switch {
	case depth < lightFloorDepthM:
		return lightFloorFactor
	case depth > lightCeilingDepthM:
		return 1.0
	default:
		return lightFloorFactor + (1.0-lightFloorFactor)*(depth-lightFloorDepthM)/(lightCeilingDepthM-lightFloorDepthM)
	}
}

// NutrientFactor returns the nutrient limitation factor under Liebig's law of
// the minimum: nitrogen, phosphorus and iron are normalized against their
// reference concentrations and the scarcest one alone sets the ceiling.
func (r *EnvironmentalResponse) NutrientFactor(site *ocean.Site) float64 {
	nFactor := utils.Clamp(site.NutrientNitrogenUmolPerL/NitrogenReferenceUmolPerL, 0, 1)
	pFactor := utils.Clamp(site.NutrientPhosphorusUmolPerL/PhosphorusReferenceUmolPerL, 0, 1)
	feFactor := utils.Clamp(site.NutrientIronNmolPerL/IronReferenceNmolPerL, 0, 1)

	return utils.Min3(nFactor, pFactor, feFactor)
}

// bellResponse is the shared temperature/salinity response: 0 at or outside
// the tolerance bounds, 1 at the midpoint, and a downward parabola in
// between, clamped so rounding near the bounds cannot escape [0, 1].
func bellResponse(value float64, tolerance *ToleranceRange) float64 {
	if value <= tolerance.Min || value >= tolerance.Max {
		return 0.0
	}

	mid := tolerance.Midpoint()
	if value == mid {
		return 1.0
	}

	offset := (value - mid) / tolerance.Width()
	return utils.Clamp(1.0-offset*offset, 0, 1)
}
