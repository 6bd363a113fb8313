package economics

import (
	"fmt"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
	"github.com/dragidude/CarbonSequesterModel/pkg/utils"
)

// ViabilityTargets holds the reference points the composite score is
// measured against.
type ViabilityTargets struct {
	// Cost per tonne at or below which the cost sub-score is 1.
	CostFullCreditPerTonne float64
	// Cost per tonne at or above which the cost sub-score is 0.
	CostZeroCreditPerTonne float64
	// Annual removal at or above which the scale sub-score is 1.
	ScaleFullCreditTonnes float64
	// Reference cost per tonne for the cost-competitiveness ratio.
	CompetitiveCostPerTonne float64
	// Reference annual removal for the scale-adequacy ratio.
	MeaningfulScaleTonnes float64
}

// DefaultViabilityTargets returns the standard scoring references:
// $50–250/t cost window, 10,000 t/year full-credit scale, $100/t
// competitiveness target and 1,000 t/year meaningful scale.
func DefaultViabilityTargets() ViabilityTargets {
	return ViabilityTargets{
		CostFullCreditPerTonne:  50,
		CostZeroCreditPerTonne:  250,
		ScaleFullCreditTonnes:   10000,
		CompetitiveCostPerTonne: 100,
		MeaningfulScaleTonnes:   1000,
	}
}

// Composite score weights. Safety is a binary policy weight keyed off the
// genetic kill switch, not a continuous function.
const (
	costWeight   = 0.4
	scaleWeight  = 0.4
	safetyWeight = 0.2

	safetyScoreWithKillSwitch    = 1.0
	safetyScoreWithoutKillSwitch = 0.5
)

// ViabilityCalculator blends cost-competitiveness, removal scale and
// containment safety into a composite 0–1 score plus auxiliary ratios.
type ViabilityCalculator struct {
	targets ViabilityTargets
}

// NewViabilityCalculator creates a viability calculator with the default
// scoring targets.
func NewViabilityCalculator() *ViabilityCalculator {
	calc, _ := NewViabilityCalculatorWithTargets(DefaultViabilityTargets())
	return calc
}

// NewViabilityCalculatorWithTargets creates a viability calculator with
// custom scoring targets, validated up front.
func NewViabilityCalculatorWithTargets(targets ViabilityTargets) (*ViabilityCalculator, error) {
	if targets.CostFullCreditPerTonne <= 0 {
		return nil, fmt.Errorf("cost full-credit target must be positive, got %v", targets.CostFullCreditPerTonne)
	}
	if targets.CostZeroCreditPerTonne <= targets.CostFullCreditPerTonne {
		return nil, fmt.Errorf("cost zero-credit target (%v) must exceed full-credit target (%v)",
			targets.CostZeroCreditPerTonne, targets.CostFullCreditPerTonne)
	}
	if targets.ScaleFullCreditTonnes <= 0 {
		return nil, fmt.Errorf("scale full-credit target must be positive, got %v", targets.ScaleFullCreditTonnes)
	}
	if targets.CompetitiveCostPerTonne <= 0 {
		return nil, fmt.Errorf("competitive cost target must be positive, got %v", targets.CompetitiveCostPerTonne)
	}
	if targets.MeaningfulScaleTonnes <= 0 {
		return nil, fmt.Errorf("meaningful scale target must be positive, got %v", targets.MeaningfulScaleTonnes)
	}

	return &ViabilityCalculator{targets: targets}, nil
}

// Score returns the composite viability score in [0, 1]. Degenerate
// scenarios (non-positive cost per tonne or removal) score 0 outright; a
// non-viable +Inf cost per tonne implies zero removal and lands there too.
func (c *ViabilityCalculator) Score(strain *biology.Strain, costPerTonne, co2RemovedTonnes float64) float64 {
	if costPerTonne <= 0 || co2RemovedTonnes <= 0 {
		return 0.0
	}

	costWindow := c.targets.CostZeroCreditPerTonne - c.targets.CostFullCreditPerTonne
	costScore := utils.Clamp(1-(costPerTonne-c.targets.CostFullCreditPerTonne)/costWindow, 0, 1)

	scaleScore := utils.Clamp(co2RemovedTonnes/c.targets.ScaleFullCreditTonnes, 0, 1)

	safetyScore := safetyScoreWithoutKillSwitch
	if strain.GeneticKillSwitch {
		safetyScore = safetyScoreWithKillSwitch
	}

	return costScore*costWeight + scaleScore*scaleWeight + safetyScore*safetyWeight
}

// CostCompetitiveness returns how the cost per tonne compares to the
// competitive reference: values above 1 beat the target. Zero for
// non-positive cost per tonne; +Inf cost yields 0 naturally.
func (c *ViabilityCalculator) CostCompetitiveness(costPerTonne float64) float64 {
	if costPerTonne <= 0 {
		return 0
	}
	return c.targets.CompetitiveCostPerTonne / costPerTonne
}

// ScaleAdequacy returns annual removal relative to the meaningful-scale
// reference. Unclamped: values above 1 indicate removal beyond the target.
func (c *ViabilityCalculator) ScaleAdequacy(co2RemovedTonnes float64) float64 {
	return co2RemovedTonnes / c.targets.MeaningfulScaleTonnes
}
