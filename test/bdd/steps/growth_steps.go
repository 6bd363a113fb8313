package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
	"github.com/dragidude/CarbonSequesterModel/internal/infrastructure/presets"
)

const factorTolerance = 1e-9

// sharedStrain carries the strain across step contexts; the strain Given is
// shared by every feature, so it is registered once and published here.
var sharedStrain *biology.Strain

// growthContext holds the state for environmental response scenarios. Sites
// start from the tropical preset and steps override single parameters.
type growthContext struct {
	strain *biology.Strain
	site   *ocean.Site
	factor float64
}

func (gc *growthContext) reset() {
	gc.strain = nil
	gc.site = nil
	gc.factor = 0
	sharedStrain = nil
}

func (gc *growthContext) theReferenceCyanobacteriaStrain() error {
	strain, err := presets.Strain("fast_growing_cyanobacteria")
	if err != nil {
		return err
	}
	gc.strain = strain
	sharedStrain = strain
	return nil
}

// tropicalSiteWith builds the tropical preset with one field replaced.
func tropicalSiteWith(mutate func(args *siteArgs)) (*ocean.Site, error) {
	args := &siteArgs{
		euphoticDepthM:            80,
		surfaceTemperatureCelsius: 28,
		salinityPPT:               35,
		nitrogenUmolPerL:          2.0,
		phosphorusUmolPerL:        0.2,
		ironNmolPerL:              0.05,
		mixingDepthM:              50,
		currentSpeedMPerS:         0.1,
		sequestrationDepthM:       1000,
	}
	mutate(args)
	return ocean.NewSite(
		args.euphoticDepthM, args.surfaceTemperatureCelsius, args.salinityPPT,
		args.nitrogenUmolPerL, args.phosphorusUmolPerL, args.ironNmolPerL,
		args.mixingDepthM, args.currentSpeedMPerS, args.sequestrationDepthM,
	)
}

type siteArgs struct {
	euphoticDepthM            float64
	surfaceTemperatureCelsius float64
	salinityPPT               float64
	nitrogenUmolPerL          float64
	phosphorusUmolPerL        float64
	ironNmolPerL              float64
	mixingDepthM              float64
	currentSpeedMPerS         float64
	sequestrationDepthM       float64
}

func (gc *growthContext) aTropicalSiteWithSurfaceTemperature(temperature float64) error {
	site, err := tropicalSiteWith(func(args *siteArgs) {
		args.surfaceTemperatureCelsius = temperature
	})
	if err != nil {
		return err
	}
	gc.site = site
	return nil
}

func (gc *growthContext) aTropicalSiteWithEuphoticDepth(depth float64) error {
	site, err := tropicalSiteWith(func(args *siteArgs) {
		args.euphoticDepthM = depth
	})
	if err != nil {
		return err
	}
	gc.site = site
	return nil
}

func (gc *growthContext) aTropicalSiteWithSalinity(salinity float64) error {
	site, err := tropicalSiteWith(func(args *siteArgs) {
		args.salinityPPT = salinity
	})
	if err != nil {
		return err
	}
	gc.site = site
	return nil
}

func (gc *growthContext) aTropicalSiteWithNutrients(nitrogen, phosphorus, iron float64) error {
	site, err := tropicalSiteWith(func(args *siteArgs) {
		args.nitrogenUmolPerL = nitrogen
		args.phosphorusUmolPerL = phosphorus
		args.ironNmolPerL = iron
	})
	if err != nil {
		return err
	}
	gc.site = site
	return nil
}

func (gc *growthContext) iComputeTheTemperatureFactor() error {
	gc.factor = biology.NewEnvironmentalResponse().TemperatureFactor(gc.strain, gc.site)
	return nil
}

func (gc *growthContext) iComputeTheLightFactor() error {
	gc.factor = biology.NewEnvironmentalResponse().LightFactor(gc.site)
	return nil
}

func (gc *growthContext) iComputeTheNutrientFactor() error {
	gc.factor = biology.NewEnvironmentalResponse().NutrientFactor(gc.site)
	return nil
}

func (gc *growthContext) iComputeTheSalinityFactor() error {
	gc.factor = biology.NewEnvironmentalResponse().SalinityFactor(gc.strain, gc.site)
	return nil
}

func (gc *growthContext) theFactorShouldBe(expected float64) error {
	if math.Abs(gc.factor-expected) > factorTolerance {
		return fmt.Errorf("expected factor %v but got %v", expected, gc.factor)
	}
	return nil
}

func (gc *growthContext) theEffectiveGrowthRateShouldBeZero() error {
	rate := biology.NewGrowthCalculator().EffectiveRate(gc.strain, gc.site)
	if rate != 0 {
		return fmt.Errorf("expected zero growth rate but got %v", rate)
	}
	return nil
}

// InitializeGrowthScenario registers the environmental response steps.
func InitializeGrowthScenario(sc *godog.ScenarioContext) {
	gc := &growthContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		gc.reset()
		return ctx, nil
	})

	sc.Step(`^the reference cyanobacteria strain$`, gc.theReferenceCyanobacteriaStrain)
	sc.Step(`^a tropical site with surface temperature (-?\d+(?:\.\d+)?)$`, gc.aTropicalSiteWithSurfaceTemperature)
	sc.Step(`^a tropical site with euphotic depth (\d+(?:\.\d+)?)$`, gc.aTropicalSiteWithEuphoticDepth)
	sc.Step(`^a tropical site with salinity (\d+(?:\.\d+)?)$`, gc.aTropicalSiteWithSalinity)
	sc.Step(`^a tropical site with nitrogen (\d+(?:\.\d+)?), phosphorus (\d+(?:\.\d+)?) and iron (\d+(?:\.\d+)?)$`, gc.aTropicalSiteWithNutrients)
	sc.Step(`^I compute the temperature factor$`, gc.iComputeTheTemperatureFactor)
	sc.Step(`^I compute the light factor$`, gc.iComputeTheLightFactor)
	sc.Step(`^I compute the nutrient factor$`, gc.iComputeTheNutrientFactor)
	sc.Step(`^I compute the salinity factor$`, gc.iComputeTheSalinityFactor)
	sc.Step(`^the factor should be (\d+(?:\.\d+)?)$`, gc.theFactorShouldBe)
	sc.Step(`^the effective growth rate should be zero$`, gc.theEffectiveGrowthRateShouldBeZero)
}
