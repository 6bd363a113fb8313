// Package presets holds the named sample strains, sites and operations
// profiles the presentation layer offers as starting points. The catalogs
// are read-only configuration built once at process start; the engine never
// mutates them.
package presets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

var strainCatalog = map[string]*biology.Strain{
	"fast_growing_cyanobacteria": mustStrain(
		"Fast-growing Cyanobacteria",
		45.0, 12.0, 0.8, 50.0, 0.4,
		mustRange(20, 30), mustRange(30, 40),
		true, 15.0,
	),
	"diatom_variant": mustStrain(
		"GM Diatom Variant",
		52.0, 24.0, 0.9, 100.0, 0.6,
		mustRange(15, 25), mustRange(25, 35),
		true, 20.0,
	),
	"conservative_strain": mustStrain(
		"Conservative GM Algae",
		40.0, 48.0, 0.7, 25.0, 0.3,
		mustRange(18, 28), mustRange(28, 38),
		true, 10.0,
	),
}

var siteCatalog = map[string]*ocean.Site{
	"tropical_ocean":  mustSite(80, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, 1000),
	"temperate_ocean": mustSite(60, 15, 33, 5.0, 0.4, 0.08, 100, 0.2, 1500),
	"nutrient_rich":   mustSite(40, 20, 34, 10.0, 0.8, 0.12, 75, 0.15, 1200),
}

// Strain looks up a preset strain by catalog name.
func Strain(name string) (*biology.Strain, error) {
	strain, ok := strainCatalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown strain preset %q (valid: %s)", name, strings.Join(StrainNames(), ", "))
	}
	return strain, nil
}

// Site looks up a preset site by catalog name.
func Site(name string) (*ocean.Site, error) {
	site, ok := siteCatalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown site preset %q (valid: %s)", name, strings.Join(SiteNames(), ", "))
	}
	return site, nil
}

// DefaultOperations returns the reference deployment profile: 1000 km²
// seeded four times a year with the dashboard's default cost assumptions.
func DefaultOperations() *deployment.Operations {
	ops, err := deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, 50000)
	if err != nil {
		panic(fmt.Sprintf("invalid default operations preset: %v", err))
	}
	return ops
}

// StrainNames returns the strain catalog names in sorted order.
func StrainNames() []string {
	return sortedKeys(strainCatalog)
}

// SiteNames returns the site catalog names in sorted order.
func SiteNames() []string {
	return sortedKeys(siteCatalog)
}

func sortedKeys[V any](catalog map[string]V) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// The catalog literals are hand-maintained; a construction failure is a
// programmer error, so the helpers panic instead of returning errors.

func mustStrain(
	name string,
	carbonContentPercent, doublingTimeHours, photosyntheticEfficiency,
	sinkingRateMPerDay, exportFraction float64,
	optimalTemperature, optimalSalinity *biology.ToleranceRange,
	geneticKillSwitch bool,
	researchCostMillions float64,
) *biology.Strain {
	strain, err := biology.NewStrain(
		name, carbonContentPercent, doublingTimeHours, photosyntheticEfficiency,
		sinkingRateMPerDay, exportFraction, optimalTemperature, optimalSalinity,
		geneticKillSwitch, researchCostMillions,
	)
	if err != nil {
		panic(fmt.Sprintf("invalid strain preset %q: %v", name, err))
	}
	return strain
}

func mustRange(min, max float64) *biology.ToleranceRange {
	r, err := biology.NewToleranceRange(min, max)
	if err != nil {
		panic(fmt.Sprintf("invalid preset tolerance range: %v", err))
	}
	return r
}

func mustSite(
	euphoticDepthM, surfaceTemperatureCelsius, salinityPPT,
	nitrogenUmolPerL, phosphorusUmolPerL, ironNmolPerL,
	mixingDepthM, currentSpeedMPerS, sequestrationDepthM float64,
) *ocean.Site {
	site, err := ocean.NewSite(
		euphoticDepthM, surfaceTemperatureCelsius, salinityPPT,
		nitrogenUmolPerL, phosphorusUmolPerL, ironNmolPerL,
		mixingDepthM, currentSpeedMPerS, sequestrationDepthM,
	)
	if err != nil {
		panic(fmt.Sprintf("invalid site preset: %v", err))
	}
	return site
}
