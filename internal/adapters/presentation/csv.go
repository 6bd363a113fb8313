package presentation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
)

// CSVExporter writes assessment results as CSV, matching the metric table
// the dashboard offers for download.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// WriteMetrics writes one metric-name/value row per scenario metric.
func (e *CSVExporter) WriteMetrics(w io.Writer, metrics queries.ScenarioMetrics) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"CO2 Removed (tonnes/year)", formatFloat(metrics.CO2RemovedTonnesPerYear)},
		{"Cost per Tonne CO2 ($/t)", formatFloat(metrics.CostPerTonneCO2)},
		{"Total Annual Cost ($)", formatFloat(metrics.TotalCostPerYear)},
		{"Biomass Required (kg/year)", formatFloat(metrics.BiomassRequiredKgPerYear)},
		{"Carbon Sequestered (kg/year)", formatFloat(metrics.CarbonSequesteredKgPerYear)},
		{"NPP (g C/m2/year)", formatFloat(metrics.NPPGramsCPerM2PerYear)},
		{"Growth Rate (per day)", formatFloat(metrics.GrowthRatePerDay)},
		{"Viability Score", formatFloat(metrics.ViabilityScore)},
		{"Cost Competitiveness", formatFloat(metrics.CostCompetitiveness)},
		{"Scale Adequacy", formatFloat(metrics.ScaleAdequacy)},
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write metrics CSV: %w", err)
	}
	return nil
}

// WriteSweep writes one row per sweep point, ordered as evaluated.
func (e *CSVExporter) WriteSweep(w io.Writer, points []queries.SweepPoint) error {
	cw := csv.NewWriter(w)

	rows := [][]string{{
		"Area (km2)",
		"CO2 Removed (tonnes/year)",
		"Cost per Tonne CO2 ($/t)",
		"Total Annual Cost ($)",
		"Biomass Required (kg/year)",
		"Viability Score",
	}}
	for _, p := range points {
		rows = append(rows, []string{
			formatFloat(p.AreaKm2),
			formatFloat(p.CO2RemovedTonnesPerYear),
			formatFloat(p.CostPerTonneCO2),
			formatFloat(p.TotalCostPerYear),
			formatFloat(p.BiomassRequiredKgPerYear),
			formatFloat(p.ViabilityScore),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write sweep CSV: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
