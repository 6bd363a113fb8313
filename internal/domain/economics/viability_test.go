package economics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/economics"
)

func TestScore_FullCredit(t *testing.T) {
	// Arrange: cheap, large-scale, kill-switched
	calc := economics.NewViabilityCalculator()
	strain := testStrain(t, true)

	// Act
	score := calc.Score(strain, 40, 20000)

	// Assert
	assert.Equal(t, 1.0, score)
}

func TestScore_PartialCredit(t *testing.T) {
	calc := economics.NewViabilityCalculator()
	strain := testStrain(t, true)

	// Cost $150/t sits halfway through the $50–250 window, scale 5000 t is
	// half of full credit.
	score := calc.Score(strain, 150, 5000)

	assert.InDelta(t, 0.5*0.4+0.5*0.4+1.0*0.2, score, 1e-12)
}

func TestScore_KillSwitchPolicy(t *testing.T) {
	calc := economics.NewViabilityCalculator()

	withSwitch := calc.Score(testStrain(t, true), 40, 20000)
	withoutSwitch := calc.Score(testStrain(t, false), 40, 20000)

	assert.InDelta(t, 0.1, withSwitch-withoutSwitch, 1e-12, "missing kill switch halves the safety weight")
}

func TestScore_DegenerateScenarios(t *testing.T) {
	calc := economics.NewViabilityCalculator()
	strain := testStrain(t, true)

	assert.Zero(t, calc.Score(strain, 0, 1000))
	assert.Zero(t, calc.Score(strain, -10, 1000))
	assert.Zero(t, calc.Score(strain, 100, 0))
	assert.Zero(t, calc.Score(strain, math.Inf(1), 0), "non-viable removal scores zero")
}

func TestScore_AlwaysWithinUnitInterval(t *testing.T) {
	calc := economics.NewViabilityCalculator()
	strain := testStrain(t, true)

	costs := []float64{1, 50, 100, 250, 1000, 1e9}
	removals := []float64{0.001, 1, 1000, 10000, 1e9}

	for _, cost := range costs {
		for _, removal := range removals {
			score := calc.Score(strain, cost, removal)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestCostCompetitiveness(t *testing.T) {
	calc := economics.NewViabilityCalculator()

	assert.Equal(t, 2.0, calc.CostCompetitiveness(50), "half the $100/t target is twice as competitive")
	assert.Zero(t, calc.CostCompetitiveness(0))
	assert.Zero(t, calc.CostCompetitiveness(-10))
	assert.Zero(t, calc.CostCompetitiveness(math.Inf(1)))
}

func TestScaleAdequacy_Unclamped(t *testing.T) {
	calc := economics.NewViabilityCalculator()

	assert.Equal(t, 1.5, calc.ScaleAdequacy(1500))
	assert.Equal(t, 100.0, calc.ScaleAdequacy(100000), "can exceed 1.0")
}

func TestNewViabilityCalculatorWithTargets_Validation(t *testing.T) {
	base := economics.DefaultViabilityTargets()

	tests := []struct {
		name   string
		mutate func(economics.ViabilityTargets) economics.ViabilityTargets
	}{
		{
			name: "non-positive cost full credit",
			mutate: func(targets economics.ViabilityTargets) economics.ViabilityTargets {
				targets.CostFullCreditPerTonne = 0
				return targets
			},
		},
		{
			name: "zero-credit below full-credit",
			mutate: func(targets economics.ViabilityTargets) economics.ViabilityTargets {
				targets.CostZeroCreditPerTonne = targets.CostFullCreditPerTonne
				return targets
			},
		},
		{
			name: "non-positive scale target",
			mutate: func(targets economics.ViabilityTargets) economics.ViabilityTargets {
				targets.ScaleFullCreditTonnes = 0
				return targets
			},
		},
		{
			name: "non-positive competitive cost",
			mutate: func(targets economics.ViabilityTargets) economics.ViabilityTargets {
				targets.CompetitiveCostPerTonne = -1
				return targets
			},
		},
		{
			name: "non-positive meaningful scale",
			mutate: func(targets economics.ViabilityTargets) economics.ViabilityTargets {
				targets.MeaningfulScaleTonnes = 0
				return targets
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := economics.NewViabilityCalculatorWithTargets(tt.mutate(base))

			require.Error(t, err)
			assert.Nil(t, calc)
		})
	}
}
