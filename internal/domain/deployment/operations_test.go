package deployment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/deployment"
)

func TestNewOperations_Valid(t *testing.T) {
	// Act
	ops, err := deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, 50000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1000.0, ops.AreaKm2)
	assert.Equal(t, 5000.0, ops.VesselCostPerDay)
}

func TestNewOperations_Validation(t *testing.T) {
	tests := []struct {
		name string
		make func() (*deployment.Operations, error)
	}{
		{
			name: "non-positive area",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(0, 4, 0.5, 0.3, 5000, 100000, 50000)
			},
		},
		{
			name: "non-positive application frequency",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 0, 0.5, 0.3, 5000, 100000, 50000)
			},
		},
		{
			name: "negative cultivation cost",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 4, -0.5, 0.3, 5000, 100000, 50000)
			},
		},
		{
			name: "negative delivery cost",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 4, 0.5, -0.3, 5000, 100000, 50000)
			},
		},
		{
			name: "negative vessel cost",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 4, 0.5, 0.3, -1, 100000, 50000)
			},
		},
		{
			name: "negative monitoring cost",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, -1, 50000)
			},
		},
		{
			name: "negative regulatory cost",
			make: func() (*deployment.Operations, error) {
				return deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, -1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := tt.make()

			require.Error(t, err)
			assert.Nil(t, ops)
		})
	}
}

func TestWithArea_CopiesEverythingElse(t *testing.T) {
	// Arrange
	ops, err := deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, 50000)
	require.NoError(t, err)

	// Act
	doubled, err := ops.WithArea(2000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2000.0, doubled.AreaKm2)
	assert.Equal(t, ops.CultivationCostPerKg, doubled.CultivationCostPerKg)
	assert.Equal(t, ops.VesselCostPerDay, doubled.VesselCostPerDay)
	assert.Equal(t, 1000.0, ops.AreaKm2, "original record is untouched")
}

func TestWithArea_RejectsInvalidArea(t *testing.T) {
	ops, err := deployment.NewOperations(1000, 4, 0.5, 0.3, 5000, 100000, 50000)
	require.NoError(t, err)

	_, err = ops.WithArea(-5)
	require.Error(t, err)
}
