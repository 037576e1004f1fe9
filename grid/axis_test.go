package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/standwave/grid"
	"github.com/stretchr/testify/require"
)

// TestBuildAxis_Endpoints checks count, exact bounds and uniform spacing.
func TestBuildAxis_Endpoints(t *testing.T) {
	axis, err := grid.BuildAxis(-5, 5, 100)
	require.NoError(t, err)
	require.Len(t, axis, 100)
	require.Equal(t, -5.0, axis[0])
	require.Equal(t, 5.0, axis[99])

	step := 10.0 / 99.0
	for i := 1; i < len(axis); i++ {
		require.InDelta(t, step, axis[i]-axis[i-1], 1e-12, "spacing at %d", i)
		require.Greater(t, axis[i], axis[i-1])
	}
	require.InDelta(t, step, grid.Spacing(axis), 1e-15)
}

// TestBuildAxis_Small covers the minimal two- and three-point axes.
func TestBuildAxis_Small(t *testing.T) {
	axis, err := grid.BuildAxis(0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, axis)

	axis, err = grid.BuildAxis(-1, 1, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1}, axis)
}

// TestBuildAxis_Invalid drives every rejection branch.
func TestBuildAxis_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		low, high float64
		count     int
		param     string
	}{
		{"count one", -5, 5, 1, "count=1"},
		{"count zero", -5, 5, 0, "count=0"},
		{"count negative", -5, 5, -3, "count=-3"},
		{"equal bounds", 2, 2, 10, "low=2"},
		{"reversed bounds", 5, -5, 10, "low=5"},
		{"nan low", math.NaN(), 5, 10, "low=NaN"},
		{"inf high", -5, math.Inf(1), 10, "high=+Inf"},
		{"overflowing span", -1e308, 1e308, 5, "high-low=+Inf violates finite span"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			axis, err := grid.BuildAxis(tc.low, tc.high, tc.count)
			require.Nil(t, axis)
			require.ErrorIs(t, err, grid.ErrInvalidDimension)
			require.Contains(t, err.Error(), grid.MethodBuildAxis)
			require.Contains(t, err.Error(), tc.param)
		})
	}
}

// TestBuildAxis_WideFiniteSpan keeps huge but representable spans strictly increasing.
func TestBuildAxis_WideFiniteSpan(t *testing.T) {
	axis, err := grid.BuildAxis(-8e307, 8e307, 5)
	require.NoError(t, err)
	for i := 1; i < len(axis); i++ {
		require.False(t, math.IsInf(axis[i], 0))
		require.Greater(t, axis[i], axis[i-1])
	}

	_, err = grid.BuildGrid(axis)
	require.NoError(t, err)

	_, err = grid.SymmetricAxis(math.MaxFloat64, 3)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)
}

// TestSymmetricAxis verifies the [-L, +L] helper and its own validation.
func TestSymmetricAxis(t *testing.T) {
	axis, err := grid.SymmetricAxis(2.5, 11)
	require.NoError(t, err)
	require.Equal(t, -2.5, axis[0])
	require.Equal(t, 2.5, axis[10])
	require.InDelta(t, 0.0, axis[5], 1e-15)

	for _, L := range []float64{0, -1, math.NaN()} {
		_, err = grid.SymmetricAxis(L, 11)
		require.ErrorIs(t, err, grid.ErrInvalidDimension)
		require.Contains(t, err.Error(), "sideLength")
	}

	_, err = grid.SymmetricAxis(1, 1)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)
}

// TestSpacing_Short returns zero for degenerate input.
func TestSpacing_Short(t *testing.T) {
	require.Zero(t, grid.Spacing(nil))
	require.Zero(t, grid.Spacing([]float64{3}))
}
