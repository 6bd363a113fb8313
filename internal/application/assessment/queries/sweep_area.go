package queries

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dragidude/CarbonSequesterModel/internal/application/common"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

// DefaultSweepAreasKm2 mirrors the area ladder the interactive dashboard
// uses for its sensitivity chart.
var DefaultSweepAreasKm2 = []float64{100, 500, 1000, 5000, 10000}

// SweepAreaQuery represents a sensitivity sweep over deployment area: the
// scenario is re-evaluated once per area with all other inputs held fixed.
type SweepAreaQuery struct {
	Strain     *biology.Strain
	Site       *ocean.Site
	Operations *deployment.Operations
	// AreasKm2 lists the areas to evaluate; empty selects DefaultSweepAreasKm2.
	AreasKm2 []float64
}

// SweepPoint is the outcome of one evaluation within a sweep.
type SweepPoint struct {
	AreaKm2                  float64
	CO2RemovedTonnesPerYear  float64
	CostPerTonneCO2          float64
	TotalCostPerYear         float64
	BiomassRequiredKgPerYear float64
	ViabilityScore           float64
}

// SweepAreaResponse carries the ordered sweep results.
type SweepAreaResponse struct {
	RunID  string
	Points []SweepPoint
}

// SweepAreaHandler handles the SweepArea query. Evaluations are pure and
// share no state, so the points run concurrently.
type SweepAreaHandler struct {
	evaluator *EvaluateScenarioHandler
}

// NewSweepAreaHandler creates a sweep handler on top of an evaluation handler.
func NewSweepAreaHandler(evaluator *EvaluateScenarioHandler) *SweepAreaHandler {
	return &SweepAreaHandler{evaluator: evaluator}
}

// Handle executes the SweepArea query.
func (h *SweepAreaHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*SweepAreaQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SweepAreaQuery")
	}

	areas := query.AreasKm2
	if len(areas) == 0 {
		areas = DefaultSweepAreasKm2
	}

	logger := common.LoggerFromContext(ctx)

	points := make([]SweepPoint, len(areas))
	errs := make([]error, len(areas))

	var wg sync.WaitGroup
	for i, area := range areas {
		wg.Add(1)
		go func(i int, area float64) {
			defer wg.Done()

			ops, err := query.Operations.WithArea(area)
			if err != nil {
				errs[i] = fmt.Errorf("sweep point %v km²: %w", area, err)
				return
			}

			metrics, _, err := h.evaluator.evaluate(query.Strain, query.Site, ops)
			if err != nil {
				errs[i] = fmt.Errorf("sweep point %v km²: %w", area, err)
				return
			}

			points[i] = SweepPoint{
				AreaKm2:                  area,
				CO2RemovedTonnesPerYear:  metrics.CO2RemovedTonnesPerYear,
				CostPerTonneCO2:          metrics.CostPerTonneCO2,
				TotalCostPerYear:         metrics.TotalCostPerYear,
				BiomassRequiredKgPerYear: metrics.BiomassRequiredKgPerYear,
				ViabilityScore:           metrics.ViabilityScore,
			}
		}(i, area)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	logger.Log("info", "area sweep completed", map[string]interface{}{
		"points": len(points),
	})

	return &SweepAreaResponse{
		RunID:  uuid.New().String(),
		Points: points,
	}, nil
}
