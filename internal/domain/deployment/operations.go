package deployment

import "fmt"

// Operations represents the immutable operational and economic parameters of
// a deployment campaign.
type Operations struct {
	AreaKm2                     float64
	ApplicationFrequencyPerYear float64 // retained for interface symmetry, unused by current cost formulas
	CultivationCostPerKg        float64
	DeliveryCostPerKg           float64
	VesselCostPerDay            float64
	MonitoringCostPerYear       float64
	RegulatoryCostPerYear       float64
}

// NewOperations creates an operations value object with validation.
func NewOperations(
	areaKm2 float64,
	applicationFrequencyPerYear float64,
	cultivationCostPerKg float64,
	deliveryCostPerKg float64,
	vesselCostPerDay float64,
	monitoringCostPerYear float64,
	regulatoryCostPerYear float64,
) (*Operations, error) {
	if areaKm2 <= 0 {
		return nil, fmt.Errorf("deployment area must be positive, got %v", areaKm2)
	}
	if applicationFrequencyPerYear <= 0 {
		return nil, fmt.Errorf("application frequency must be positive, got %v", applicationFrequencyPerYear)
	}
	if cultivationCostPerKg < 0 {
		return nil, fmt.Errorf("cultivation cost cannot be negative, got %v", cultivationCostPerKg)
	}
	if deliveryCostPerKg < 0 {
		return nil, fmt.Errorf("delivery cost cannot be negative, got %v", deliveryCostPerKg)
	}
	if vesselCostPerDay < 0 {
		return nil, fmt.Errorf("vessel cost cannot be negative, got %v", vesselCostPerDay)
	}
	if monitoringCostPerYear < 0 {
		return nil, fmt.Errorf("monitoring cost cannot be negative, got %v", monitoringCostPerYear)
	}
	if regulatoryCostPerYear < 0 {
		return nil, fmt.Errorf("regulatory cost cannot be negative, got %v", regulatoryCostPerYear)
	}

	return &Operations{
		AreaKm2:                     areaKm2,
		ApplicationFrequencyPerYear: applicationFrequencyPerYear,
		CultivationCostPerKg:        cultivationCostPerKg,
		DeliveryCostPerKg:           deliveryCostPerKg,
		VesselCostPerDay:            vesselCostPerDay,
		MonitoringCostPerYear:       monitoringCostPerYear,
		RegulatoryCostPerYear:       regulatoryCostPerYear,
	}, nil
}

// WithArea returns a copy of the operations with a different deployment area.
// Used by sensitivity sweeps that vary the area while holding costs fixed.
func (o *Operations) WithArea(areaKm2 float64) (*Operations, error) {
	return NewOperations(
		areaKm2,
		o.ApplicationFrequencyPerYear,
		o.CultivationCostPerKg,
		o.DeliveryCostPerKg,
		o.VesselCostPerDay,
		o.MonitoringCostPerYear,
		o.RegulatoryCostPerYear,
	)
}

func (o *Operations) String() string {
	return fmt.Sprintf("Operations(%.0f km², $%.0f/day vessel)", o.AreaKm2, o.VesselCostPerDay)
}
