package grid_test

import (
	"testing"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuildGrid_Layout checks X varies along columns and Y along rows.
func TestBuildGrid_Layout(t *testing.T) {
	axis := []float64{-1, 0, 1}
	g, err := grid.BuildGrid(axis)
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			xv, err := g.X().At(i, j)
			require.NoError(t, err)
			yv, err := g.Y().At(i, j)
			require.NoError(t, err)
			require.Equal(t, axis[j], xv, "X[%d][%d]", i, j)
			require.Equal(t, axis[i], yv, "Y[%d][%d]", i, j)
		}
	}
}

// TestBuildGrid_Transpose verifies Y is the transpose of X on a square grid.
func TestBuildGrid_Transpose(t *testing.T) {
	g, err := grid.New(5, 7)
	require.NoError(t, err)

	x, y := g.X().View(), g.Y().View()
	n := g.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, x[i*n+j], y[j*n+i])
		}
	}
}

// TestBuildGrid_CopiesAxis ensures the caller's slice does not alias the grid.
func TestBuildGrid_CopiesAxis(t *testing.T) {
	axis := []float64{0, 1, 2}
	g, err := grid.BuildGrid(axis)
	require.NoError(t, err)

	axis[0] = -100
	low, _ := g.Bounds()
	require.Equal(t, 0.0, low)

	out := g.Axis()
	out[2] = 99
	_, high := g.Bounds()
	require.Equal(t, 2.0, high)
}

// TestBuildGrid_Invalid rejects short and non-increasing axes.
func TestBuildGrid_Invalid(t *testing.T) {
	for _, axis := range [][]float64{nil, {1}, {0, 0}, {0, 2, 1}} {
		g, err := grid.BuildGrid(axis)
		require.Nil(t, g)
		require.ErrorIs(t, err, grid.ErrInvalidDimension)
		require.Contains(t, err.Error(), grid.MethodBuildGrid)
	}
}

// TestNew_Defaults checks the default 100-point plate over [-5, 5].
func TestNew_Defaults(t *testing.T) {
	g, err := grid.New(5, 100)
	require.NoError(t, err)
	require.Equal(t, 100, g.Size())
	require.Equal(t, 100, g.X().Rows())
	require.Equal(t, 100, g.Y().Cols())
	require.Equal(t, 5.0, g.HalfWidth())
	require.InDelta(t, 10.0/99.0, g.Spacing(), 1e-15)

	low, high := g.Bounds()
	require.Equal(t, -5.0, low)
	require.Equal(t, 5.0, high)
}

// TestNew_Invalid propagates axis validation.
func TestNew_Invalid(t *testing.T) {
	_, err := grid.New(5, 1)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)

	_, err = grid.New(0, 10)
	require.ErrorIs(t, err, grid.ErrInvalidDimension)
}

// TestPoint covers the coordinate lookup and its bounds check.
func TestPoint(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)

	x, y, err := g.Point(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
	require.Equal(t, -1.0, y)

	_, _, err = g.Point(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, _, err = g.Point(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
