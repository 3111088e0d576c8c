package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	values := []float64{8.94, 2040, 1304.44, 140.51, 2430, 32.72, 1171.29}
	got, err := Describe(values)
	require.NoError(t, err)

	assert.Equal(t, 8.94, got.Min)
	assert.Equal(t, 2430.0, got.Max)
	assert.InDelta(t, 1018.2714, got.Mean, 1e-3)
	assert.Equal(t, 1171.29, got.Median)
	assert.Equal(t, 8.94, values[0], "input must not be reordered")
}

func TestDescribe_Empty(t *testing.T) {
	t.Parallel()

	_, err := Describe(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
