package config

// SetDefaults sets default values for all configuration fields.
func SetDefaults(cfg *Config) {
	// Model defaults
	if cfg.Model.BiomassDensityGCPerM3 == 0 {
		cfg.Model.BiomassDensityGCPerM3 = 1.0
	}
	if cfg.Model.RemineralizationRatePerDay == 0 {
		cfg.Model.RemineralizationRatePerDay = 0.1
	}
	if cfg.Model.TargetNPPGCPerM2PerYear == 0 {
		cfg.Model.TargetNPPGCPerM2PerYear = 125.0
	}

	// Viability scoring defaults
	if cfg.Model.Viability.CostFullCreditPerTonne == 0 {
		cfg.Model.Viability.CostFullCreditPerTonne = 50
	}
	if cfg.Model.Viability.CostZeroCreditPerTonne == 0 {
		cfg.Model.Viability.CostZeroCreditPerTonne = 250
	}
	if cfg.Model.Viability.ScaleFullCreditTonnes == 0 {
		cfg.Model.Viability.ScaleFullCreditTonnes = 10000
	}
	if cfg.Model.Viability.CompetitiveCostPerTonne == 0 {
		cfg.Model.Viability.CompetitiveCostPerTonne = 100
	}
	if cfg.Model.Viability.MeaningfulScaleTonnes == 0 {
		cfg.Model.Viability.MeaningfulScaleTonnes = 1000
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
}
