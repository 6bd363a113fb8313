package biology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragidude/CarbonSequesterModel/internal/domain/biology"
)

func TestNewToleranceRange_Valid(t *testing.T) {
	// Act
	r, err := biology.NewToleranceRange(20, 30)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 20.0, r.Min)
	assert.Equal(t, 30.0, r.Max)
	assert.Equal(t, 25.0, r.Midpoint())
	assert.Equal(t, 10.0, r.Width())
}

func TestNewToleranceRange_RejectsInverted(t *testing.T) {
	// Act
	r, err := biology.NewToleranceRange(30, 20)

	// Assert
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "invalid optimal range")
}

func TestNewToleranceRange_RejectsDegenerate(t *testing.T) {
	// A zero-width range would make the bell-curve response divide by zero
	r, err := biology.NewToleranceRange(25, 25)

	require.Error(t, err)
	assert.Nil(t, r)
}
