package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/standwave/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllClose exercises tolerance semantics and validation order.
func TestAllClose(t *testing.T) {
	a, _ := matrix.NewDenseFrom(1, 3, []float64{1, 2, 3})
	b, _ := matrix.NewDenseFrom(1, 3, []float64{1, 2, 3 + 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	// Negative tolerances are normalized, not rejected.
	ok, err = matrix.AllClose(a, b, 0, -1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	c, _ := matrix.NewDense(3, 1)
	_, err = matrix.AllClose(a, c, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestExtrema covers the Dense fast path on mixed-sign data.
func TestExtrema(t *testing.T) {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{0.5, -0.75, 0, 1, -0.25, 0.9})

	lo, hi, err := matrix.Extrema(m)
	require.NoError(t, err)
	require.Equal(t, -0.75, lo)
	require.Equal(t, 1.0, hi)

	_, _, err = matrix.Extrema(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
