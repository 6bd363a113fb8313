package ocean

import "fmt"

// DefaultSequestrationDepthM is the depth below which exported carbon is
// considered durably removed from exchange with the atmosphere.
const DefaultSequestrationDepthM = 1000.0

// Site represents the immutable environmental conditions at a candidate
// deployment site.
type Site struct {
	EuphoticDepthM             float64 // light penetration depth
	SurfaceTemperatureCelsius  float64
	SalinityPPT                float64
	NutrientNitrogenUmolPerL   float64
	NutrientPhosphorusUmolPerL float64
	NutrientIronNmolPerL       float64
	MixingDepthM               float64
	CurrentSpeedMPerS          float64 // retained for future extension, unused by current formulas
	SequestrationDepthM        float64
}

// NewSite creates a site value object with validation. A zero sequestration
// depth selects DefaultSequestrationDepthM.
func NewSite(
	euphoticDepthM float64,
	surfaceTemperatureCelsius float64,
	salinityPPT float64,
	nutrientNitrogenUmolPerL float64,
	nutrientPhosphorusUmolPerL float64,
	nutrientIronNmolPerL float64,
	mixingDepthM float64,
	currentSpeedMPerS float64,
	sequestrationDepthM float64,
) (*Site, error) {
	if euphoticDepthM <= 0 {
		return nil, fmt.Errorf("euphotic depth must be positive, got %v", euphoticDepthM)
	}
	if salinityPPT <= 0 {
		return nil, fmt.Errorf("salinity must be positive, got %v", salinityPPT)
	}
	if nutrientNitrogenUmolPerL < 0 {
		return nil, fmt.Errorf("nitrogen concentration cannot be negative, got %v", nutrientNitrogenUmolPerL)
	}
	if nutrientPhosphorusUmolPerL < 0 {
		return nil, fmt.Errorf("phosphorus concentration cannot be negative, got %v", nutrientPhosphorusUmolPerL)
	}
	if nutrientIronNmolPerL < 0 {
		return nil, fmt.Errorf("iron concentration cannot be negative, got %v", nutrientIronNmolPerL)
	}
	if mixingDepthM <= 0 {
		return nil, fmt.Errorf("mixing depth must be positive, got %v", mixingDepthM)
	}
	if currentSpeedMPerS < 0 {
		return nil, fmt.Errorf("current speed cannot be negative, got %v", currentSpeedMPerS)
	}
	if sequestrationDepthM < 0 {
		return nil, fmt.Errorf("sequestration depth cannot be negative, got %v", sequestrationDepthM)
	}
	if sequestrationDepthM == 0 {
		sequestrationDepthM = DefaultSequestrationDepthM
	}

	return &Site{
		EuphoticDepthM:             euphoticDepthM,
		SurfaceTemperatureCelsius:  surfaceTemperatureCelsius,
		SalinityPPT:                salinityPPT,
		NutrientNitrogenUmolPerL:   nutrientNitrogenUmolPerL,
		NutrientPhosphorusUmolPerL: nutrientPhosphorusUmolPerL,
		NutrientIronNmolPerL:       nutrientIronNmolPerL,
		MixingDepthM:               mixingDepthM,
		CurrentSpeedMPerS:          currentSpeedMPerS,
		SequestrationDepthM:        sequestrationDepthM,
	}, nil
}

func (s *Site) String() string {
	return fmt.Sprintf("Site(%.1f°C, %.1f ppt, euphotic %.0fm)", s.SurfaceTemperatureCelsius, s.SalinityPPT, s.EuphoticDepthM)
}
