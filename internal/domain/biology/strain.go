package biology

import "fmt"

// Strain represents an immutable genetically modified photosynthetic strain
// with the biological traits that drive growth, export and cost calculations.
type Strain struct {
	Name                     string
	CarbonContentPercent     float64 // % of dry weight
	DoublingTimeHours        float64
	PhotosyntheticEfficiency float64 // g C fixed per mol photons
	SinkingRateMPerDay       float64
	ExportFraction           float64 // share of POC exported below the surface layer
	OptimalTemperature       *ToleranceRange
	OptimalSalinity          *ToleranceRange
	GeneticKillSwitch        bool
	ResearchCostMillions     float64
}

// NewStrain creates a strain value object with validation.
func NewStrain(
	name string,
	carbonContentPercent float64,
	doublingTimeHours float64,
	photosyntheticEfficiency float64,
	sinkingRateMPerDay float64,
	exportFraction float64,
	optimalTemperature *ToleranceRange,
	optimalSalinity *ToleranceRange,
	geneticKillSwitch bool,
	researchCostMillions float64,
) (*Strain, error) {
	if carbonContentPercent <= 0 || carbonContentPercent > 100 {
		return nil, fmt.Errorf("carbon content must be in (0, 100] percent, got %v", carbonContentPercent)
	}
	if doublingTimeHours <= 0 {
		return nil, fmt.Errorf("doubling time must be positive, got %v", doublingTimeHours)
	}
	if photosyntheticEfficiency <= 0 || photosyntheticEfficiency > 1 {
		return nil, fmt.Errorf("photosynthetic efficiency must be in (0, 1], got %v", photosyntheticEfficiency)
	}
	if sinkingRateMPerDay <= 0 {
		return nil, fmt.Errorf("sinking rate must be positive, got %v", sinkingRateMPerDay)
	}
	if exportFraction < 0 || exportFraction > 1 {
		return nil, fmt.Errorf("export fraction must be in [0, 1], got %v", exportFraction)
	}
	if optimalTemperature == nil {
		return nil, fmt.Errorf("optimal temperature range is required")
	}
	if optimalSalinity == nil {
		return nil, fmt.Errorf("optimal salinity range is required")
	}
	if researchCostMillions < 0 {
		return nil, fmt.Errorf("R&D cost cannot be negative, got %v", researchCostMillions)
	}

	return &Strain{
		Name:                     name,
		CarbonContentPercent:     carbonContentPercent,
		DoublingTimeHours:        doublingTimeHours,
		PhotosyntheticEfficiency: photosyntheticEfficiency,
		SinkingRateMPerDay:       sinkingRateMPerDay,
		ExportFraction:           exportFraction,
		OptimalTemperature:       optimalTemperature,
		OptimalSalinity:          optimalSalinity,
		GeneticKillSwitch:        geneticKillSwitch,
		ResearchCostMillions:     researchCostMillions,
	}, nil
}

func (s *Strain) String() string {
	return fmt.Sprintf("Strain(%s, %.1fh doubling, %.0f%% C)", s.Name, s.DoublingTimeHours, s.CarbonContentPercent)
}
