package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dragidude/CarbonSequesterModel/internal/adapters/presentation"
	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/config"
)

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand() *cobra.Command {
	var (
		strainName   string
		siteName     string
		scenarioPath string
		format       string
		csvPath      string
	)
	opsFlags := &operationsFlags{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Assess one sequestration scenario",
		Long: `Evaluate a single (strain, site, operations) scenario and print the
derived metrics and annual cost breakdown.

Inputs come either from preset catalogs (--strain, --site plus the
operations flags) or from a full scenario file (--scenario), which takes
precedence over the preset flags.

Examples:
  carbonseq evaluate --strain fast_growing_cyanobacteria --site tropical_ocean
  carbonseq evaluate --strain diatom_variant --site temperate_ocean --area 5000
  carbonseq evaluate --scenario scenario.yaml --format report
  carbonseq evaluate --csv results.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(strainName, siteName, scenarioPath, format, csvPath, opsFlags)
		},
	}

	cmd.Flags().StringVar(&strainName, "strain", "fast_growing_cyanobacteria", "Strain preset name")
	cmd.Flags().StringVar(&siteName, "site", "tropical_ocean", "Site preset name")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (overrides presets)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: table, json or report (default from config)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the metrics to a CSV file")
	registerOperationsFlags(cmd, opsFlags)

	return cmd
}

func runEvaluate(strainName, siteName, scenarioPath, format, csvPath string, opsFlags *operationsFlags) error {
	cfg := config.LoadConfigOrDefault(configPath)
	if format == "" {
		format = cfg.Output.Format
	}

	strain, site, ops, err := resolveScenario(scenarioPath, strainName, siteName, opsFlags)
	if err != nil {
		return err
	}

	med, err := buildMediator(cfg)
	if err != nil {
		return err
	}

	response, err := med.Send(commandContext(), &queries.EvaluateScenarioQuery{
		Strain:     strain,
		Site:       site,
		Operations: ops,
	})
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	result := response.(*queries.EvaluateScenarioResponse)

	switch format {
	case "json":
		if err := renderJSON(result); err != nil {
			return err
		}
	case "report":
		report := presentation.NewReportFormatter().Format(strain, site, ops, result.Metrics, result.Costs)
		fmt.Println(report)
	case "table":
		renderMetricsTable(result)
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, report)", format)
	}

	if csvPath != "" {
		if err := writeMetricsCSV(csvPath, result.Metrics); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Metrics written to %s\n", csvPath)
	}

	return nil
}

func renderMetricsTable(result *queries.EvaluateScenarioResponse) {
	m := result.Metrics
	c := result.Costs

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "RESULTS (run %s)\t\n", result.RunID)
	fmt.Fprintf(w, "CO2 Removed\t%.1f tonnes/year\n", m.CO2RemovedTonnesPerYear)
	fmt.Fprintf(w, "Cost per Tonne CO2\t%s\n", formatCostPerTonne(m.CostPerTonneCO2))
	fmt.Fprintf(w, "Total Annual Cost\t$%.0f\n", m.TotalCostPerYear)
	fmt.Fprintf(w, "Biomass Required\t%.0f kg/year\n", m.BiomassRequiredKgPerYear)
	fmt.Fprintf(w, "Carbon Sequestered\t%.0f kg/year\n", m.CarbonSequesteredKgPerYear)
	fmt.Fprintf(w, "NPP\t%.1f g C/m²/year\n", m.NPPGramsCPerM2PerYear)
	fmt.Fprintf(w, "Growth Rate\t%.3f per day\n", m.GrowthRatePerDay)
	fmt.Fprintf(w, "Viability Score\t%.2f/1.00\n", m.ViabilityScore)
	fmt.Fprintf(w, "Cost Competitiveness\t%.2fx\n", m.CostCompetitiveness)
	fmt.Fprintf(w, "Scale Adequacy\t%.2fx\n", m.ScaleAdequacy)
	fmt.Fprintf(w, "\t\n")
	fmt.Fprintf(w, "COST BREAKDOWN\t\n")
	fmt.Fprintf(w, "Cultivation\t$%.0f\n", c.Cultivation)
	fmt.Fprintf(w, "Delivery\t$%.0f\n", c.Delivery)
	fmt.Fprintf(w, "Vessel Operations\t$%.0f\n", c.Vessel)
	fmt.Fprintf(w, "Monitoring\t$%.0f\n", c.Monitoring)
	fmt.Fprintf(w, "Regulatory\t$%.0f\n", c.Regulatory)
	fmt.Fprintf(w, "R&D (amortized)\t$%.0f\n", c.Research)
	fmt.Fprintf(w, "Total\t$%.0f\n", c.Total)
	w.Flush()
}

// jsonMetrics mirrors ScenarioMetrics with a nullable cost per tonne, since
// JSON has no representation for +Inf.
type jsonMetrics struct {
	CO2RemovedTonnesPerYear    float64  `json:"co2_removed_tonnes_per_year"`
	CostPerTonneCO2            *float64 `json:"cost_per_tonne_co2"`
	TotalCostPerYear           float64  `json:"total_cost_per_year"`
	BiomassRequiredKgPerYear   float64  `json:"biomass_required_kg_per_year"`
	CarbonSequesteredKgPerYear float64  `json:"carbon_sequestered_kg_per_year"`
	NPPGramsCPerM2PerYear      float64  `json:"npp_g_c_per_m2_per_year"`
	GrowthRatePerDay           float64  `json:"growth_rate_per_day"`
	ViabilityScore             float64  `json:"viability_score"`
	CostCompetitiveness        float64  `json:"cost_competitiveness"`
	ScaleAdequacy              float64  `json:"scale_adequacy"`
}

type jsonResult struct {
	RunID   string      `json:"run_id"`
	Metrics jsonMetrics `json:"metrics"`
	Costs   jsonCosts   `json:"costs"`
}

type jsonCosts struct {
	Cultivation float64 `json:"cultivation"`
	Delivery    float64 `json:"delivery"`
	Vessel      float64 `json:"vessel"`
	Monitoring  float64 `json:"monitoring"`
	Regulatory  float64 `json:"regulatory"`
	Research    float64 `json:"r_and_d"`
	Total       float64 `json:"total"`
}

func renderJSON(result *queries.EvaluateScenarioResponse) error {
	m := result.Metrics

	var costPerTonne *float64
	if !math.IsInf(m.CostPerTonneCO2, 1) {
		v := m.CostPerTonneCO2
		costPerTonne = &v
	}

	out := jsonResult{
		RunID: result.RunID,
		Metrics: jsonMetrics{
			CO2RemovedTonnesPerYear:    m.CO2RemovedTonnesPerYear,
			CostPerTonneCO2:            costPerTonne,
			TotalCostPerYear:           m.TotalCostPerYear,
			BiomassRequiredKgPerYear:   m.BiomassRequiredKgPerYear,
			CarbonSequesteredKgPerYear: m.CarbonSequesteredKgPerYear,
			NPPGramsCPerM2PerYear:      m.NPPGramsCPerM2PerYear,
			GrowthRatePerDay:           m.GrowthRatePerDay,
			ViabilityScore:             m.ViabilityScore,
			CostCompetitiveness:        m.CostCompetitiveness,
			ScaleAdequacy:              m.ScaleAdequacy,
		},
		Costs: jsonCosts{
			Cultivation: result.Costs.Cultivation,
			Delivery:    result.Costs.Delivery,
			Vessel:      result.Costs.Vessel,
			Monitoring:  result.Costs.Monitoring,
			Regulatory:  result.Costs.Regulatory,
			Research:    result.Costs.Research,
			Total:       result.Costs.Total,
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatCostPerTonne(costPerTonne float64) string {
	if math.IsInf(costPerTonne, 1) {
		return "n/a (no removal)"
	}
	return fmt.Sprintf("$%.2f/t", costPerTonne)
}

func writeMetricsCSV(path string, metrics queries.ScenarioMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	return presentation.NewCSVExporter().WriteMetrics(f, metrics)
}
