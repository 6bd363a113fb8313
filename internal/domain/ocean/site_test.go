package ocean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/ocean"
)

func TestNewSite_Valid(t *testing.T) {
	// Act
	site, err := ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, 1000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 80.0, site.EuphoticDepthM)
	assert.Equal(t, 1000.0, site.SequestrationDepthM)
}

func TestNewSite_DefaultSequestrationDepth(t *testing.T) {
	// Act: zero selects the default
	site, err := ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ocean.DefaultSequestrationDepthM, site.SequestrationDepthM)
}

func TestNewSite_Validation(t *testing.T) {
	tests := []struct {
		name string
		make func() (*ocean.Site, error)
	}{
		{
			name: "non-positive euphotic depth",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(0, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, 1000)
			},
		},
		{
			name: "non-positive salinity",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 0, 2.0, 0.2, 0.05, 50, 0.1, 1000)
			},
		},
		{
			name: "negative nitrogen",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, -1, 0.2, 0.05, 50, 0.1, 1000)
			},
		},
		{
			name: "negative phosphorus",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, 2.0, -0.1, 0.05, 50, 0.1, 1000)
			},
		},
		{
			name: "negative iron",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, 2.0, 0.2, -0.01, 50, 0.1, 1000)
			},
		},
		{
			name: "non-positive mixing depth",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 0, 0.1, 1000)
			},
		},
		{
			name: "negative current speed",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 50, -0.1, 1000)
			},
		},
		{
			name: "negative sequestration depth",
			make: func() (*ocean.Site, error) {
				return ocean.NewSite(80, 28, 35, 2.0, 0.2, 0.05, 50, 0.1, -100)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := tt.make()

			require.Error(t, err)
			assert.Nil(t, site)
		})
	}
}
