package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dragidude/CarbonSequesterModel/internal/adapters/presentation"
	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/config"
)

// NewSweepCommand creates the sweep command.
func NewSweepCommand() *cobra.Command {
	var (
		strainName   string
		siteName     string
		scenarioPath string
		areas        []float64
		csvPath      string
	)
	opsFlags := &operationsFlags{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run an area sensitivity sweep",
		Long: `Re-evaluate a scenario across a ladder of deployment areas, holding all
other inputs fixed. Removal scales linearly with area while fixed costs
amortize, so the sweep shows where cost per tonne turns competitive.

Examples:
  carbonseq sweep --strain fast_growing_cyanobacteria --site tropical_ocean
  carbonseq sweep --areas 100,1000,10000 --csv sweep.csv
  carbonseq sweep --scenario scenario.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(strainName, siteName, scenarioPath, csvPath, areas, opsFlags)
		},
	}

	cmd.Flags().StringVar(&strainName, "strain", "fast_growing_cyanobacteria", "Strain preset name")
	cmd.Flags().StringVar(&siteName, "site", "tropical_ocean", "Site preset name")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file (overrides presets)")
	cmd.Flags().Float64SliceVar(&areas, "areas", nil,
		"Comma-separated areas in km² (default 100,500,1000,5000,10000)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also write the sweep to a CSV file")
	registerOperationsFlags(cmd, opsFlags)

	return cmd
}

func runSweep(strainName, siteName, scenarioPath, csvPath string, areas []float64, opsFlags *operationsFlags) error {
	cfg := config.LoadConfigOrDefault(configPath)

	strain, site, ops, err := resolveScenario(scenarioPath, strainName, siteName, opsFlags)
	if err != nil {
		return err
	}

	med, err := buildMediator(cfg)
	if err != nil {
		return err
	}

	response, err := med.Send(commandContext(), &queries.SweepAreaQuery{
		Strain:     strain,
		Site:       site,
		Operations: ops,
		AreasKm2:   areas,
	})
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	result := response.(*queries.SweepAreaResponse)
	renderSweepTable(result)

	if csvPath != "" {
		if err := writeSweepCSV(csvPath, result.Points); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Sweep written to %s\n", csvPath)
	}

	return nil
}

func renderSweepTable(result *queries.SweepAreaResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "AREA SWEEP (run %s)\t\t\t\t\t\n", result.RunID)
	fmt.Fprintln(w, "Area (km²)\tCO2 Removed (t/yr)\tCost per Tonne\tTotal Cost ($/yr)\tBiomass (kg/yr)\tViability")
	for _, p := range result.Points {
		fmt.Fprintf(w, "%.0f\t%.1f\t%s\t%.0f\t%.0f\t%.2f\n",
			p.AreaKm2,
			p.CO2RemovedTonnesPerYear,
			formatCostPerTonne(p.CostPerTonneCO2),
			p.TotalCostPerYear,
			p.BiomassRequiredKgPerYear,
			p.ViabilityScore,
		)
	}
	w.Flush()
}

func writeSweepCSV(path string, points []queries.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	return presentation.NewCSVExporter().WriteSweep(f, points)
}
