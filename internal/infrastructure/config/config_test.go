package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Act: no config file anywhere on the search path
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	// A named-but-missing file is an error; the default search path is not
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_FromFile(t *testing.T) {
	// Arrange
	path := writeFile(t, "config.yaml", `
model:
  biomass_density_g_c_per_m3: 2.0
  target_npp_g_c_per_m2_per_year: 150
output:
  format: json
`)

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert: file values win, untouched fields fall back to defaults
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Model.BiomassDensityGCPerM3)
	assert.Equal(t, 150.0, cfg.Model.TargetNPPGCPerM2PerYear)
	assert.Equal(t, 0.1, cfg.Model.RemineralizationRatePerDay)
	assert.Equal(t, 50.0, cfg.Model.Viability.CostFullCreditPerTonne)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	path := writeFile(t, "config.yaml", `
output:
  format: xml
`)

	cfg, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfig_InvalidViabilityWindow(t *testing.T) {
	// Zero-credit cost must sit above the full-credit cost
	path := writeFile(t, "config.yaml", `
model:
  viability:
    cost_full_credit_per_tonne: 250
    cost_zero_credit_per_tonne: 50
`)

	cfg, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	// Act
	cfg := config.LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))

	// Assert
	require.NotNil(t, cfg)
	assert.Equal(t, 1.0, cfg.Model.BiomassDensityGCPerM3)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestModelConfig_Converters(t *testing.T) {
	// Arrange
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	// Act
	params := cfg.Model.ProductionParams()
	targets := cfg.Model.Viability.Targets()

	// Assert
	assert.Equal(t, 1.0, params.BiomassDensityGCPerM3)
	assert.Equal(t, 0.1, params.RemineralizationRatePerDay)
	assert.Equal(t, 125.0, params.TargetNPPGCPerM2PerYear)
	assert.Equal(t, 50.0, targets.CostFullCreditPerTonne)
	assert.Equal(t, 250.0, targets.CostZeroCreditPerTonne)
	assert.Equal(t, 10000.0, targets.ScaleFullCreditTonnes)
}
