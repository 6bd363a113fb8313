package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/config"
)

const validScenarioYAML = `
strain:
  name: Fast-growing Cyanobacteria
  carbon_content_percent: 45.0
  doubling_time_hours: 12.0
  photosynthetic_efficiency: 0.8
  sinking_rate_m_per_day: 50.0
  export_fraction: 0.4
  optimal_temperature_min: 20
  optimal_temperature_max: 30
  optimal_salinity_min: 30
  optimal_salinity_max: 40
  genetic_kill_switch: true
  r_and_d_cost_millions: 15.0
site:
  euphotic_depth_m: 80
  surface_temperature_celsius: 28
  salinity_ppt: 35
  nutrient_nitrogen_umol_per_l: 2.0
  nutrient_phosphorus_umol_per_l: 0.2
  nutrient_iron_nmol_per_l: 0.05
  mixing_depth_m: 50
  current_speed_m_per_s: 0.1
  sequestration_depth_m: 1000
operations:
  area_km2: 1000
  application_frequency_per_year: 4
  cultivation_cost_per_kg: 0.5
  delivery_cost_per_kg: 0.3
  vessel_cost_per_day: 5000
  monitoring_cost_per_year: 100000
  regulatory_cost_per_year: 50000
`

func TestLoadScenario_Valid(t *testing.T) {
	// Arrange
	path := writeFile(t, "scenario.yaml", validScenarioYAML)

	// Act
	strain, site, ops, err := config.LoadScenario(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Fast-growing Cyanobacteria", strain.Name)
	assert.Equal(t, 45.0, strain.CarbonContentPercent)
	assert.Equal(t, 20.0, strain.OptimalTemperature.Min)
	assert.Equal(t, 30.0, strain.OptimalTemperature.Max)
	assert.Equal(t, 80.0, site.EuphoticDepthM)
	assert.Equal(t, 1000.0, ops.AreaKm2)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, _, _, err := config.LoadScenario("does-not-exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_InvertedTemperatureRange(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
strain:
  name: Broken
  carbon_content_percent: 45.0
  doubling_time_hours: 12.0
  photosynthetic_efficiency: 0.8
  sinking_rate_m_per_day: 50.0
  export_fraction: 0.4
  optimal_temperature_min: 30
  optimal_temperature_max: 20
  optimal_salinity_min: 30
  optimal_salinity_max: 40
site:
  euphotic_depth_m: 80
  salinity_ppt: 35
  mixing_depth_m: 50
operations:
  area_km2: 1000
  application_frequency_per_year: 4
`)

	_, _, _, err := config.LoadScenario(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario file")
}

func TestLoadScenario_NegativeNutrient(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
strain:
  name: Fast-growing Cyanobacteria
  carbon_content_percent: 45.0
  doubling_time_hours: 12.0
  photosynthetic_efficiency: 0.8
  sinking_rate_m_per_day: 50.0
  export_fraction: 0.4
  optimal_temperature_min: 20
  optimal_temperature_max: 30
  optimal_salinity_min: 30
  optimal_salinity_max: 40
site:
  euphotic_depth_m: 80
  salinity_ppt: 35
  nutrient_nitrogen_umol_per_l: -2.0
  mixing_depth_m: 50
operations:
  area_km2: 1000
  application_frequency_per_year: 4
`)

	_, _, _, err := config.LoadScenario(path)

	require.Error(t, err)
}
