package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

// ScenarioFile is the YAML schema for a complete custom scenario: one
// strain, one site and one operations profile. Validation tags mirror the
// domain constructors so a bad file fails with field-level messages before
// any record is built.
type ScenarioFile struct {
	Strain     StrainSpec     `mapstructure:"strain"`
	Site       SiteSpec       `mapstructure:"site"`
	Operations OperationsSpec `mapstructure:"operations"`
}

// StrainSpec describes a strain in a scenario file.
type StrainSpec struct {
	Name                     string  `mapstructure:"name" validate:"required"`
	CarbonContentPercent     float64 `mapstructure:"carbon_content_percent" validate:"gt=0,lte=100"`
	DoublingTimeHours        float64 `mapstructure:"doubling_time_hours" validate:"gt=0"`
	PhotosyntheticEfficiency float64 `mapstructure:"photosynthetic_efficiency" validate:"gt=0,lte=1"`
	SinkingRateMPerDay       float64 `mapstructure:"sinking_rate_m_per_day" validate:"gt=0"`
	ExportFraction           float64 `mapstructure:"export_fraction" validate:"gte=0,lte=1"`
	OptimalTemperatureMin    float64 `mapstructure:"optimal_temperature_min"`
	OptimalTemperatureMax    float64 `mapstructure:"optimal_temperature_max" validate:"gtfield=OptimalTemperatureMin"`
	OptimalSalinityMin       float64 `mapstructure:"optimal_salinity_min"`
	OptimalSalinityMax       float64 `mapstructure:"optimal_salinity_max" validate:"gtfield=OptimalSalinityMin"`
	GeneticKillSwitch        bool    `mapstructure:"genetic_kill_switch"`
	ResearchCostMillions     float64 `mapstructure:"r_and_d_cost_millions" validate:"gte=0"`
}

// SiteSpec describes a deployment site in a scenario file.
type SiteSpec struct {
	EuphoticDepthM             float64 `mapstructure:"euphotic_depth_m" validate:"gt=0"`
	SurfaceTemperatureCelsius  float64 `mapstructure:"surface_temperature_celsius"`
	SalinityPPT                float64 `mapstructure:"salinity_ppt" validate:"gt=0"`
	NutrientNitrogenUmolPerL   float64 `mapstructure:"nutrient_nitrogen_umol_per_l" validate:"gte=0"`
	NutrientPhosphorusUmolPerL float64 `mapstructure:"nutrient_phosphorus_umol_per_l" validate:"gte=0"`
	NutrientIronNmolPerL       float64 `mapstructure:"nutrient_iron_nmol_per_l" validate:"gte=0"`
	MixingDepthM               float64 `mapstructure:"mixing_depth_m" validate:"gt=0"`
	CurrentSpeedMPerS          float64 `mapstructure:"current_speed_m_per_s" validate:"gte=0"`
	SequestrationDepthM        float64 `mapstructure:"sequestration_depth_m" validate:"gte=0"`
}

// OperationsSpec describes the operational parameters in a scenario file.
type OperationsSpec struct {
	AreaKm2                     float64 `mapstructure:"area_km2" validate:"gt=0"`
	ApplicationFrequencyPerYear float64 `mapstructure:"application_frequency_per_year" validate:"gt=0"`
	CultivationCostPerKg        float64 `mapstructure:"cultivation_cost_per_kg" validate:"gte=0"`
	DeliveryCostPerKg           float64 `mapstructure:"delivery_cost_per_kg" validate:"gte=0"`
	VesselCostPerDay            float64 `mapstructure:"vessel_cost_per_day" validate:"gte=0"`
	MonitoringCostPerYear       float64 `mapstructure:"monitoring_cost_per_year" validate:"gte=0"`
	RegulatoryCostPerYear       float64 `mapstructure:"regulatory_cost_per_year" validate:"gte=0"`
}

// LoadScenario reads and validates a scenario file, returning the three
// domain records it describes.
func LoadScenario(path string) (*biology.Strain, *ocean.Site, *deployment.Operations, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var file ScenarioFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to unmarshal scenario file %s: %w", path, err)
	}

	if err := NewValidator().Validate(&file); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid scenario file %s: %w", path, err)
	}

	return file.Build()
}

// Build constructs the domain records from the validated specs.
func (f *ScenarioFile) Build() (*biology.Strain, *ocean.Site, *deployment.Operations, error) {
	tempRange, err := biology.NewToleranceRange(f.Strain.OptimalTemperatureMin, f.Strain.OptimalTemperatureMax)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid temperature range: %w", err)
	}
	salinityRange, err := biology.NewToleranceRange(f.Strain.OptimalSalinityMin, f.Strain.OptimalSalinityMax)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid salinity range: %w", err)
	}

	strain, err := biology.NewStrain(
		f.Strain.Name,
		f.Strain.CarbonContentPercent,
		f.Strain.DoublingTimeHours,
		f.Strain.PhotosyntheticEfficiency,
		f.Strain.SinkingRateMPerDay,
		f.Strain.ExportFraction,
		tempRange,
		salinityRange,
		f.Strain.GeneticKillSwitch,
		f.Strain.ResearchCostMillions,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid strain: %w", err)
	}

	site, err := ocean.NewSite(
		f.Site.EuphoticDepthM,
		f.Site.SurfaceTemperatureCelsius,
		f.Site.SalinityPPT,
		f.Site.NutrientNitrogenUmolPerL,
		f.Site.NutrientPhosphorusUmolPerL,
		f.Site.NutrientIronNmolPerL,
		f.Site.MixingDepthM,
		f.Site.CurrentSpeedMPerS,
		f.Site.SequestrationDepthM,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid site: %w", err)
	}

	ops, err := deployment.NewOperations(
		f.Operations.AreaKm2,
		f.Operations.ApplicationFrequencyPerYear,
		f.Operations.CultivationCostPerKg,
		f.Operations.DeliveryCostPerKg,
		f.Operations.VesselCostPerDay,
		f.Operations.MonitoringCostPerYear,
		f.Operations.RegulatoryCostPerYear,
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid operations: %w", err)
	}

	return strain, site, ops, nil
}
