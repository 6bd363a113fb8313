package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
	"github.com/dragidude/CarbonSequesterModel/internal/application/common"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/economics"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/sequestration"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/config"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/presets"
)

// operationsFlags holds the operations-profile flags shared by evaluate and
// sweep. Defaults match the reference deployment profile.
type operationsFlags struct {
	areaKm2         float64
	frequency       float64
	cultivationCost float64
	deliveryCost    float64
	vesselCost      float64
	monitoringCost  float64
	regulatoryCost  float64
}

// registerOperationsFlags registers the shared operations-profile flags on a
// command, defaulting to the reference deployment profile.
func registerOperationsFlags(cmd *cobra.Command, f *operationsFlags) {
	cmd.Flags().Float64Var(&f.areaKm2, "area", 1000, "Deployment area in km²")
	cmd.Flags().Float64Var(&f.frequency, "frequency", 4, "Applications per year")
	cmd.Flags().Float64Var(&f.cultivationCost, "cultivation-cost", 0.5, "Cultivation cost in $/kg biomass")
	cmd.Flags().Float64Var(&f.deliveryCost, "delivery-cost", 0.3, "Delivery cost in $/kg biomass")
	cmd.Flags().Float64Var(&f.vesselCost, "vessel-cost", 5000, "Vessel cost in $/day")
	cmd.Flags().Float64Var(&f.monitoringCost, "monitoring-cost", 100000, "Monitoring cost in $/year")
	cmd.Flags().Float64Var(&f.regulatoryCost, "regulatory-cost", 50000, "Regulatory cost in $/year")
}

// toOperations builds the operations record from the flags.
func (f *operationsFlags) toOperations() (*deployment.Operations, error) {
	return deployment.NewOperations(
		f.areaKm2,
		f.frequency,
		f.cultivationCost,
		f.deliveryCost,
		f.vesselCost,
		f.monitoringCost,
		f.regulatoryCost,
	)
}

// resolveScenario builds the three input records either from a scenario file
// or from preset names plus the operations flags.
func resolveScenario(scenarioPath, strainName, siteName string, opsFlags *operationsFlags) (*biology.Strain, *ocean.Site, *deployment.Operations, error) {
	if scenarioPath != "" {
		return config.LoadScenario(scenarioPath)
	}

	strain, err := presets.Strain(strainName)
	if err != nil {
		return nil, nil, nil, err
	}
	site, err := presets.Site(siteName)
	if err != nil {
		return nil, nil, nil, err
	}
	ops, err := opsFlags.toOperations()
	if err != nil {
		return nil, nil, nil, err
	}

	return strain, site, ops, nil
}

// buildMediator wires the assessment handlers with calculators configured
// from the loaded config.
func buildMediator(cfg *config.Config) (common.Mediator, error) {
	production, err := sequestration.NewProductionCalculatorWithParams(cfg.Model.ProductionParams())
	if err != nil {
		return nil, fmt.Errorf("invalid model configuration: %w", err)
	}
	viability, err := economics.NewViabilityCalculatorWithTargets(cfg.Model.Viability.Targets())
	if err != nil {
		return nil, fmt.Errorf("invalid viability configuration: %w", err)
	}

	evaluateHandler := queries.NewEvaluateScenarioHandlerWith(production, economics.NewCostCalculator(), viability)

	med := common.NewMediator()
	if err := common.RegisterHandler[*queries.EvaluateScenarioQuery](med, evaluateHandler); err != nil {
		return nil, fmt.Errorf("failed to register EvaluateScenario handler: %w", err)
	}
	if err := common.RegisterHandler[*queries.SweepAreaQuery](med, queries.NewSweepAreaHandler(evaluateHandler)); err != nil {
		return nil, fmt.Errorf("failed to register SweepArea handler: %w", err)
	}

	return med, nil
}

// commandContext returns the context handlers run under, attaching a stderr
// logger when --verbose is set.
func commandContext() context.Context {
	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, &stderrLogger{})
	}
	return ctx
}

// stderrLogger prints handler diagnostics to stderr in verbose mode.
type stderrLogger struct{}

func (l *stderrLogger) Log(level, message string, metadata map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, message, metadata)
}
