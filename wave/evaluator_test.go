package wave_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
	"github.com/katalvlaran/standwave/wave"
	"github.com/stretchr/testify/require"
)

// newGrid builds a symmetric test grid or fails the test.
func newGrid(t testing.TB, L float64, size int) *grid.Grid {
	t.Helper()
	g, err := grid.New(L, size)
	require.NoError(t, err)

	return g
}

// TestEvaluate_BoundaryScenario: axis 100, L 5, T 30, dt 0.1 → (100, 100, 300).
func TestEvaluate_BoundaryScenario(t *testing.T) {
	g := newGrid(t, 5, 100)
	n, err := wave.StepCount(30, 0.1)
	require.NoError(t, err)

	vol, err := wave.EvaluateGrid(g, 0.1, n)
	require.NoError(t, err)
	rows, cols, steps := vol.Shape()
	require.Equal(t, 100, rows)
	require.Equal(t, 100, cols)
	require.Equal(t, 300, steps)

	lo, hi := vol.Extrema()
	require.GreaterOrEqual(t, lo, -1.0-1e-12)
	require.LessOrEqual(t, hi, 1.0+1e-12)
}

// TestEvaluate_SliceZeroIsSpatialFactor checks cos(0) == 1 leaves S untouched.
func TestEvaluate_SliceZeroIsSpatialFactor(t *testing.T) {
	const L = 5.0
	g := newGrid(t, L, 21)
	vol, err := wave.Evaluate(g.X(), g.Y(), L, 0.1, 4)
	require.NoError(t, err)

	s0, err := vol.Slice(0)
	require.NoError(t, err)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			x, y, err := g.Point(r, c)
			require.NoError(t, err)
			want := math.Sin(math.Pi*x/L) * math.Sin(math.Pi*y/L)
			got, err := s0.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want, got, "(%d,%d)", r, c)
		}
	}
}

// TestEvaluate_Formula compares every cell of every slice with the closed form.
func TestEvaluate_Formula(t *testing.T) {
	const (
		L  = 2.0
		dt = 0.25
		n  = 9
	)
	g := newGrid(t, L, 9)
	vol, err := wave.EvaluateGrid(g, dt, n, wave.WithWorkers(3))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				x, y, _ := g.Point(r, c)
				want := math.Sin(math.Pi*x/L) * math.Sin(math.Pi*y/L) * math.Cos(2*float64(i)*dt)
				got, err := vol.At(r, c, i)
				require.NoError(t, err)
				require.InDelta(t, want, got, 1e-12, "[%d,%d,%d]", r, c, i)
			}
		}
	}
}

// TestEvaluate_Idempotent evaluates twice and expects identical volumes.
func TestEvaluate_Idempotent(t *testing.T) {
	g := newGrid(t, 5, 16)
	a, err := wave.EvaluateGrid(g, 0.1, 12)
	require.NoError(t, err)
	b, err := wave.EvaluateGrid(g, 0.1, 12)
	require.NoError(t, err)
	requireSameVolume(t, a, b)
}

// TestEvaluate_ParallelMatchesSequential checks order and bits across worker counts.
func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	g := newGrid(t, 5, 16)
	seq, err := wave.EvaluateGrid(g, 0.1, 37, wave.WithWorkers(1))
	require.NoError(t, err)
	for _, k := range []int{2, 3, 8, 64} {
		par, err := wave.EvaluateGrid(g, 0.1, 37, wave.WithWorkers(k))
		require.NoError(t, err)
		requireSameVolume(t, seq, par)
	}
}

// TestEvaluate_Periodicity: with dt = π/2 the phase of i and i+2 differs by 2π.
func TestEvaluate_Periodicity(t *testing.T) {
	g := newGrid(t, 5, 11)
	vol, err := wave.EvaluateGrid(g, math.Pi/2, 6)
	require.NoError(t, err)

	for _, pair := range [][2]int{{0, 2}, {1, 3}, {2, 4}, {1, 5}} {
		a, err := vol.Slice(pair[0])
		require.NoError(t, err)
		b, err := vol.Slice(pair[1])
		require.NoError(t, err)
		ok, err := matrix.AllClose(a, b, 0, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "slices %d and %d", pair[0], pair[1])
	}
}

// TestEvaluate_InvalidParameters covers n, dt and sideLength rejections.
func TestEvaluate_InvalidParameters(t *testing.T) {
	g := newGrid(t, 5, 4)
	cases := []struct {
		name   string
		L, dt  float64
		n      int
		substr string
	}{
		{"zero steps", 5, 0.1, 0, "n=0 violates n >= 1"},
		{"negative steps", 5, 0.1, -4, "n=-4"},
		{"zero dt", 5, 0, 10, "dt=0 violates dt > 0"},
		{"negative dt", 5, -0.1, 10, "dt=-0.1"},
		{"zero side", 0, 0.1, 10, "sideLength=0 violates sideLength > 0"},
		{"nan side", math.NaN(), 0.1, 10, "sideLength=NaN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vol, err := wave.Evaluate(g.X(), g.Y(), tc.L, tc.dt, tc.n)
			require.Nil(t, vol)
			require.ErrorIs(t, err, wave.ErrInvalidParameter)
			require.Contains(t, err.Error(), wave.MethodEvaluate)
			require.Contains(t, err.Error(), tc.substr)
		})
	}
}

// TestEvaluate_InvalidOperands keeps the matrix sentinels for X/Y problems.
func TestEvaluate_InvalidOperands(t *testing.T) {
	g := newGrid(t, 5, 4)
	_, err := wave.Evaluate(nil, g.Y(), 5, 0.1, 3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	other, err := matrix.NewDense(4, 5)
	require.NoError(t, err)
	_, err = wave.Evaluate(g.X(), other, 5, 0.1, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = wave.EvaluateGrid(nil, 0.1, 3)
	require.ErrorIs(t, err, wave.ErrInvalidParameter)
}

// TestEvaluate_Cancelled stops before producing a volume.
func TestEvaluate_Cancelled(t *testing.T) {
	g := newGrid(t, 5, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, k := range []int{1, 4} {
		vol, err := wave.EvaluateGrid(g, 0.1, 50, wave.WithContext(ctx), wave.WithWorkers(k))
		require.Nil(t, vol)
		require.ErrorIs(t, err, context.Canceled)
	}
}

// TestOptions_Panic verifies option constructors reject nonsense eagerly.
func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { wave.WithWorkers(0) })
	//nolint:staticcheck // nil context on purpose
	require.Panics(t, func() { wave.WithContext(nil) })
}

// requireSameVolume asserts identical shape and bit-identical slices.
func requireSameVolume(t *testing.T, a, b *wave.Volume) {
	t.Helper()
	ar, ac, an := a.Shape()
	br, bc, bn := b.Shape()
	require.Equal(t, []int{ar, ac, an}, []int{br, bc, bn})
	for i := 0; i < an; i++ {
		sa, err := a.Slice(i)
		require.NoError(t, err)
		sb, err := b.Slice(i)
		require.NoError(t, err)
		require.Equal(t, sa.View(), sb.View(), "slice %d", i)
	}
}
