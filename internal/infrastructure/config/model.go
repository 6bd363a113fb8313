package config

import (
	"github.com/dragidude/CarbonSequesterModel/internal/domain/economics"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/sequestration"
)

// ModelConfig holds the tunable model parameters. Defaults match the
// published model; overriding them recalibrates the engine at construction
// time only.
type ModelConfig struct {
	// Assumed standing biomass density in the mixed layer, g C/m³.
	BiomassDensityGCPerM3 float64 `mapstructure:"biomass_density_g_c_per_m3" validate:"gt=0"`

	// First-order decay constant applied to sinking carbon, per day.
	RemineralizationRatePerDay float64 `mapstructure:"remineralization_rate_per_day" validate:"gte=0"`

	// Reference natural-ocean productivity the seeding program targets.
	TargetNPPGCPerM2PerYear float64 `mapstructure:"target_npp_g_c_per_m2_per_year" validate:"gt=0"`

	Viability ViabilityConfig `mapstructure:"viability"`
}

// ViabilityConfig holds the scoring reference points.
type ViabilityConfig struct {
	CostFullCreditPerTonne  float64 `mapstructure:"cost_full_credit_per_tonne" validate:"gt=0"`
	CostZeroCreditPerTonne  float64 `mapstructure:"cost_zero_credit_per_tonne" validate:"gtfield=CostFullCreditPerTonne"`
	ScaleFullCreditTonnes   float64 `mapstructure:"scale_full_credit_tonnes" validate:"gt=0"`
	CompetitiveCostPerTonne float64 `mapstructure:"competitive_cost_per_tonne" validate:"gt=0"`
	MeaningfulScaleTonnes   float64 `mapstructure:"meaningful_scale_tonnes" validate:"gt=0"`
}

// ProductionParams converts the config into domain production parameters.
func (m ModelConfig) ProductionParams() sequestration.ProductionParams {
	return sequestration.ProductionParams{
		BiomassDensityGCPerM3:      m.BiomassDensityGCPerM3,
		RemineralizationRatePerDay: m.RemineralizationRatePerDay,
		TargetNPPGCPerM2PerYear:    m.TargetNPPGCPerM2PerYear,
	}
}

// Targets converts the config into domain viability targets.
func (v ViabilityConfig) Targets() economics.ViabilityTargets {
	return economics.ViabilityTargets{
		CostFullCreditPerTonne:  v.CostFullCreditPerTonne,
		CostZeroCreditPerTonne:  v.CostZeroCreditPerTonne,
		ScaleFullCreditTonnes:   v.ScaleFullCreditTonnes,
		CompetitiveCostPerTonne: v.CompetitiveCostPerTonne,
		MeaningfulScaleTonnes:   v.MeaningfulScaleTonnes,
	}
}
