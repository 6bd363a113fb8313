package presentation

import (
	"fmt"
	"math"
	"strings"

	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/economics"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

// ReportFormatter renders an assessment as a human-readable text report.
// The layout is stable for reading, not a machine interface.
type ReportFormatter struct{}

// NewReportFormatter creates a new report formatter.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{}
}

// Format renders the full report: inputs, results, viability assessment and
// cost breakdown.
func (f *ReportFormatter) Format(
	strain *biology.Strain,
	site *ocean.Site,
	ops *deployment.Operations,
	metrics queries.ScenarioMetrics,
	costs economics.CostBreakdown,
) string {
	var b strings.Builder

	b.WriteString("OCEAN CARBON SEQUESTRATION ASSESSMENT\n")
	b.WriteString("=====================================\n\n")

	b.WriteString("STRAIN PARAMETERS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", strain.Name)
	fmt.Fprintf(&b, "- Carbon Content: %.1f%% dry weight\n", strain.CarbonContentPercent)
	fmt.Fprintf(&b, "- Doubling Time: %.1f hours\n", strain.DoublingTimeHours)
	fmt.Fprintf(&b, "- Export Fraction: %.1f%%\n", strain.ExportFraction*100)
	fmt.Fprintf(&b, "- Sinking Rate: %.1f m/day\n", strain.SinkingRateMPerDay)
	fmt.Fprintf(&b, "- Genetic Kill Switch: %s\n\n", yesNo(strain.GeneticKillSwitch))

	b.WriteString("ENVIRONMENTAL CONDITIONS:\n")
	fmt.Fprintf(&b, "- Euphotic Depth: %.0f m\n", site.EuphoticDepthM)
	fmt.Fprintf(&b, "- Surface Temperature: %.1f °C\n", site.SurfaceTemperatureCelsius)
	fmt.Fprintf(&b, "- Salinity: %.1f ppt\n", site.SalinityPPT)
	fmt.Fprintf(&b, "- Sequestration Depth: %.0f m\n\n", site.SequestrationDepthM)

	b.WriteString("OPERATIONAL PARAMETERS:\n")
	fmt.Fprintf(&b, "- Area: %.1f km²\n", ops.AreaKm2)
	fmt.Fprintf(&b, "- Application Frequency: %.1f per year\n\n", ops.ApplicationFrequencyPerYear)

	b.WriteString("RESULTS:\n")
	fmt.Fprintf(&b, "- CO2 Removed: %.1f tonnes/year\n", metrics.CO2RemovedTonnesPerYear)
	fmt.Fprintf(&b, "- Cost per Tonne CO2: %s/t CO2\n", formatCostPerTonne(metrics.CostPerTonneCO2))
	fmt.Fprintf(&b, "- Total Annual Cost: $%s\n", groupThousands(metrics.TotalCostPerYear))
	fmt.Fprintf(&b, "- Biomass Required: %s kg/year\n", groupThousands(metrics.BiomassRequiredKgPerYear))
	fmt.Fprintf(&b, "- NPP: %.1f g C/m²/year\n", metrics.NPPGramsCPerM2PerYear)
	fmt.Fprintf(&b, "- Growth Rate: %.3f per day\n\n", metrics.GrowthRatePerDay)

	b.WriteString("VIABILITY ASSESSMENT:\n")
	fmt.Fprintf(&b, "- Viability Score: %.2f/1.00\n", metrics.ViabilityScore)
	fmt.Fprintf(&b, "- Cost Competitiveness: %.2fx target\n", metrics.CostCompetitiveness)
	fmt.Fprintf(&b, "- Scale Adequacy: %.2fx target\n\n", metrics.ScaleAdequacy)

	b.WriteString("COST BREAKDOWN:\n")
	fmt.Fprintf(&b, "- Cultivation: $%s\n", groupThousands(costs.Cultivation))
	fmt.Fprintf(&b, "- Delivery: $%s\n", groupThousands(costs.Delivery))
	fmt.Fprintf(&b, "- Vessel Operations: $%s\n", groupThousands(costs.Vessel))
	fmt.Fprintf(&b, "- Monitoring: $%s\n", groupThousands(costs.Monitoring))
	fmt.Fprintf(&b, "- Regulatory: $%s\n", groupThousands(costs.Regulatory))
	fmt.Fprintf(&b, "- R&D (amortized): $%s\n", groupThousands(costs.Research))

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatCostPerTonne(costPerTonne float64) string {
	if math.IsInf(costPerTonne, 1) {
		return "n/a (no removal)"
	}
	return fmt.Sprintf("$%.2f", costPerTonne)
}

// groupThousands renders a rounded dollar/kg amount with comma separators.
func groupThousands(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprintf("%v", v)
	}

	neg := v < 0
	s := fmt.Sprintf("%.0f", math.Abs(v))

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}
