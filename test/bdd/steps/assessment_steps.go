package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/dragidude/CarbonSequesterModel/internal/application/assessment/queries"
	"github.com/dragidude/CarbonSequesterModel/internal/application/common"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/presets"
)

// assessmentContext holds the state for full scenario evaluations. The
// evaluation goes through the mediator, the same dispatch path the CLI uses.
type assessmentContext struct {
	mediator   common.Mediator
	site       *ocean.Site
	operations *deployment.Operations

	first  *queries.EvaluateScenarioResponse
	second *queries.EvaluateScenarioResponse
}

func (ac *assessmentContext) reset() {
	ac.mediator = common.NewMediator()
	_ = common.RegisterHandler[*queries.EvaluateScenarioQuery](ac.mediator, queries.NewEvaluateScenarioHandler())

	ac.site = nil
	ac.operations = nil
	ac.first = nil
	ac.second = nil
}

func (ac *assessmentContext) theTropicalOceanSite() error {
	site, err := presets.Site("tropical_ocean")
	if err != nil {
		return err
	}
	ac.site = site
	return nil
}

func (ac *assessmentContext) theDefaultDeploymentOperations() error {
	ac.operations = presets.DefaultOperations()
	return nil
}

func (ac *assessmentContext) theSiteHasNoNitrogen() error {
	site, err := tropicalSiteWith(func(args *siteArgs) {
		args.nitrogenUmolPerL = 0
	})
	if err != nil {
		return err
	}
	ac.site = site
	return nil
}

func (ac *assessmentContext) evaluate(ops *deployment.Operations) (*queries.EvaluateScenarioResponse, error) {
	response, err := ac.mediator.Send(context.Background(), &queries.EvaluateScenarioQuery{
		Strain:     sharedStrain,
		Site:       ac.site,
		Operations: ops,
	})
	if err != nil {
		return nil, err
	}

	result, ok := response.(*queries.EvaluateScenarioResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", response)
	}
	return result, nil
}

func (ac *assessmentContext) iEvaluateTheScenario() error {
	result, err := ac.evaluate(ac.operations)
	if err != nil {
		return err
	}
	ac.first = result
	return nil
}

func (ac *assessmentContext) iEvaluateTheScenarioAgain() error {
	result, err := ac.evaluate(ac.operations)
	if err != nil {
		return err
	}
	ac.second = result
	return nil
}

func (ac *assessmentContext) iEvaluateTheScenarioWithArea(area float64) error {
	ops, err := ac.operations.WithArea(area)
	if err != nil {
		return err
	}

	result, err := ac.evaluate(ops)
	if err != nil {
		return err
	}
	ac.second = result
	return nil
}

func (ac *assessmentContext) theVesselCostShouldBeDollars(expected float64) error {
	if ac.first.Costs.Vessel != expected {
		return fmt.Errorf("expected vessel cost %v but got %v", expected, ac.first.Costs.Vessel)
	}
	return nil
}

func (ac *assessmentContext) theSecondCO2RemovalShouldBeDoubleTheFirst() error {
	first := ac.first.Metrics.CO2RemovedTonnesPerYear
	second := ac.second.Metrics.CO2RemovedTonnesPerYear
	if math.Abs(second-first*2) > first*1e-12 {
		return fmt.Errorf("expected %v, twice %v, but got %v", first*2, first, second)
	}
	return nil
}

func (ac *assessmentContext) bothEvaluationsShouldProduceIdenticalMetrics() error {
	if ac.first.Metrics != ac.second.Metrics {
		return fmt.Errorf("metrics differ between evaluations: %+v vs %+v", ac.first.Metrics, ac.second.Metrics)
	}
	return nil
}

func (ac *assessmentContext) theCO2RemovalShouldBeZero() error {
	if removed := ac.first.Metrics.CO2RemovedTonnesPerYear; removed != 0 {
		return fmt.Errorf("expected zero CO2 removal but got %v", removed)
	}
	return nil
}

func (ac *assessmentContext) theCostPerTonneShouldBeInfinite() error {
	if !math.IsInf(ac.first.Metrics.CostPerTonneCO2, 1) {
		return fmt.Errorf("expected infinite cost per tonne but got %v", ac.first.Metrics.CostPerTonneCO2)
	}
	return nil
}

func (ac *assessmentContext) theViabilityScoreShouldBe(expected float64) error {
	if score := ac.first.Metrics.ViabilityScore; score != expected {
		return fmt.Errorf("expected viability score %v but got %v", expected, score)
	}
	return nil
}

func (ac *assessmentContext) theViabilityScoreShouldBeBetween(lo, hi float64) error {
	score := ac.first.Metrics.ViabilityScore
	if score < lo || score > hi {
		return fmt.Errorf("expected viability score in [%v, %v] but got %v", lo, hi, score)
	}
	return nil
}

// InitializeAssessmentScenario registers the scenario evaluation steps.
func InitializeAssessmentScenario(sc *godog.ScenarioContext) {
	ac := &assessmentContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		ac.reset()
		return ctx, nil
	})

	sc.Step(`^the tropical ocean site$`, ac.theTropicalOceanSite)
	sc.Step(`^the default deployment operations$`, ac.theDefaultDeploymentOperations)
	sc.Step(`^the site has no nitrogen$`, ac.theSiteHasNoNitrogen)
	sc.Step(`^I evaluate the scenario$`, ac.iEvaluateTheScenario)
	sc.Step(`^I evaluate the scenario again$`, ac.iEvaluateTheScenarioAgain)
	sc.Step(`^I evaluate the scenario with area (\d+(?:\.\d+)?)$`, ac.iEvaluateTheScenarioWithArea)
	sc.Step(`^the vessel cost should be (\d+(?:\.\d+)?) dollars$`, ac.theVesselCostShouldBeDollars)
	sc.Step(`^the second CO2 removal should be double the first$`, ac.theSecondCO2RemovalShouldBeDoubleTheFirst)
	sc.Step(`^both evaluations should produce identical metrics$`, ac.bothEvaluationsShouldProduceIdenticalMetrics)
	sc.Step(`^the CO2 removal should be zero$`, ac.theCO2RemovalShouldBeZero)
	sc.Step(`^the cost per tonne should be infinite$`, ac.theCostPerTonneShouldBeInfinite)
	sc.Step(`^the viability score should be (\d+(?:\.\d+)?)$`, ac.theViabilityScoreShouldBe)
	sc.Step(`^the viability score should be between (\d+(?:\.\d+)?) and (\d+(?:\.\d+)?)$`, ac.theViabilityScoreShouldBeBetween)
}
