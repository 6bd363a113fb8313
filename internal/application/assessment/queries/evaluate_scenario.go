package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dragidude/CarbonSequesterModel/internal/application/common"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/economics"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/sequestration"
)

// EvaluateScenarioQuery represents a request to assess one
// (strain, site, operations) scenario.
type EvaluateScenarioQuery struct {
	Strain     *biology.Strain
	Site       *ocean.Site
	Operations *deployment.Operations
}

// ScenarioMetrics is the full derived metric set for one scenario. All
// fields are pure functions of the three input records; nothing is cached
// between evaluations.
type ScenarioMetrics struct {
	CO2RemovedTonnesPerYear    float64
	CostPerTonneCO2            float64
	TotalCostPerYear           float64
	BiomassRequiredKgPerYear   float64
	CarbonSequesteredKgPerYear float64
	NPPGramsCPerM2PerYear      float64
	GrowthRatePerDay           float64
	ViabilityScore             float64
	CostCompetitiveness        float64
	ScaleAdequacy              float64
}

// EvaluateScenarioResponse carries the metrics and cost breakdown of one
// evaluation, tagged with a run ID so exported rows can be correlated.
type EvaluateScenarioResponse struct {
	RunID   string
	Metrics ScenarioMetrics
	Costs   economics.CostBreakdown
}

// EvaluateScenarioHandler handles the EvaluateScenario query.
type EvaluateScenarioHandler struct {
	production *sequestration.ProductionCalculator
	costs      *economics.CostCalculator
	viability  *economics.ViabilityCalculator
}

// NewEvaluateScenarioHandler creates an evaluation handler with the default
// model parameters.
func NewEvaluateScenarioHandler() *EvaluateScenarioHandler {
	return NewEvaluateScenarioHandlerWith(
		sequestration.NewProductionCalculator(),
		economics.NewCostCalculator(),
		economics.NewViabilityCalculator(),
	)
}

// NewEvaluateScenarioHandlerWith creates an evaluation handler from
// explicitly configured calculators.
func NewEvaluateScenarioHandlerWith(
	production *sequestration.ProductionCalculator,
	costs *economics.CostCalculator,
	viability *economics.ViabilityCalculator,
) *EvaluateScenarioHandler {
	return &EvaluateScenarioHandler{
		production: production,
		costs:      costs,
		viability:  viability,
	}
}

// Handle executes the EvaluateScenario query.
func (h *EvaluateScenarioHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*EvaluateScenarioQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EvaluateScenarioQuery")
	}

	metrics, costs, err := h.evaluate(query.Strain, query.Site, query.Operations)
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "scenario evaluated", map[string]interface{}{
		"strain":          query.Strain.Name,
		"co2_removed":     metrics.CO2RemovedTonnesPerYear,
		"cost_per_tonne":  metrics.CostPerTonneCO2,
		"viability_score": metrics.ViabilityScore,
	})

	return &EvaluateScenarioResponse{
		RunID:   uuid.New().String(),
		Metrics: metrics,
		Costs:   costs,
	}, nil
}

// evaluate runs the full model chain. Shared with the sweep handler, which
// substitutes operations records per point.
func (h *EvaluateScenarioHandler) evaluate(
	strain *biology.Strain,
	site *ocean.Site,
	ops *deployment.Operations,
) (ScenarioMetrics, economics.CostBreakdown, error) {
	if strain == nil || site == nil || ops == nil {
		return ScenarioMetrics{}, economics.CostBreakdown{}, fmt.Errorf("strain, site and operations are all required")
	}

	growthRate := h.production.GrowthRate(strain, site)
	npp := h.production.NetPrimaryProductivity(strain, site)
	sequesteredKg := h.production.TotalCarbonSequestered(strain, site, ops)
	co2Removed := h.production.CO2Removed(strain, site, ops)
	biomassKg := h.production.BiomassRequired(strain, site, ops)

	costs := h.costs.Breakdown(strain, ops, biomassKg)
	costPerTonne := h.costs.CostPerTonneCO2(costs.Total, co2Removed)

	metrics := ScenarioMetrics{
		CO2RemovedTonnesPerYear:    co2Removed,
		CostPerTonneCO2:            costPerTonne,
		TotalCostPerYear:           costs.Total,
		BiomassRequiredKgPerYear:   biomassKg,
		CarbonSequesteredKgPerYear: sequesteredKg,
		NPPGramsCPerM2PerYear:      npp,
		GrowthRatePerDay:           growthRate,
		ViabilityScore:             h.viability.Score(strain, costPerTonne, co2Removed),
		CostCompetitiveness:        h.viability.CostCompetitiveness(costPerTonne),
		ScaleAdequacy:              h.viability.ScaleAdequacy(co2Removed),
	}

	return metrics, costs, nil
}
