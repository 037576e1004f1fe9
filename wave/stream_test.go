package wave_test

import (
	"testing"

	"github.com/katalvlaran/standwave/wave"
	"github.com/stretchr/testify/require"
)

// TestStream_MatchesVolume: lazy slices equal eager slices bit for bit.
func TestStream_MatchesVolume(t *testing.T) {
	g := newGrid(t, 5, 12)
	vol, err := wave.EvaluateGrid(g, 0.1, 17)
	require.NoError(t, err)
	st, err := wave.NewGridStream(g, 0.1, 17)
	require.NoError(t, err)
	require.Equal(t, 17, st.Len())
	rows, cols := st.Shape()
	require.Equal(t, 12, rows)
	require.Equal(t, 12, cols)

	count := 0
	for i, s := range st.All() {
		want, err := vol.Slice(i)
		require.NoError(t, err)
		require.Equal(t, want.View(), s.View(), "slice %d", i)
		count++
	}
	require.Equal(t, 17, count)
}

// TestStream_Restartable ranges twice and breaks early once.
func TestStream_Restartable(t *testing.T) {
	g := newGrid(t, 5, 4)
	st, err := wave.NewGridStream(g, 0.1, 5)
	require.NoError(t, err)

	var first []int
	for i := range st.All() {
		first = append(first, i)
		if i == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, first)

	var second []int
	for i := range st.All() {
		second = append(second, i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, second)
}

// TestStream_Frames agrees with SelectFrames on indices and extrema.
func TestStream_Frames(t *testing.T) {
	g := newGrid(t, 5, 10)
	vol, err := wave.EvaluateGrid(g, 0.1, 23)
	require.NoError(t, err)
	st, err := wave.NewGridStream(g, 0.1, 23)
	require.NoError(t, err)

	for _, stride := range []int{1, 2, 5, 30} {
		seq, err := wave.SelectFrames(vol, stride)
		require.NoError(t, err)
		frames, err := st.Frames(stride)
		require.NoError(t, err)

		k := 0
		for f := range frames {
			want, err := seq.At(k)
			require.NoError(t, err)
			require.Equal(t, want.Index, f.Index)
			require.Equal(t, want.Time, f.Time)
			require.Equal(t, want.Data.View(), f.Data.View())
			k++
		}
		require.Equal(t, seq.Len(), k)
		require.Equal(t, seq.Len(), st.FrameCount(stride))

		lo, hi := st.StrideExtrema(stride)
		wlo, whi := seq.Extrema()
		require.Equal(t, wlo, lo, "stride %d", stride)
		require.Equal(t, whi, hi, "stride %d", stride)
	}

	lo, hi := st.Extrema()
	vlo, vhi := vol.Extrema()
	require.Equal(t, vlo, lo)
	require.Equal(t, vhi, hi)
}

// TestStream_Invalid mirrors Evaluate validation.
func TestStream_Invalid(t *testing.T) {
	g := newGrid(t, 5, 4)
	_, err := wave.NewStream(g.X(), g.Y(), 5, 0.1, 0)
	require.ErrorIs(t, err, wave.ErrInvalidParameter)
	_, err = wave.NewGridStream(nil, 0.1, 1)
	require.ErrorIs(t, err, wave.ErrInvalidParameter)

	st, err := wave.NewGridStream(g, 0.1, 3)
	require.NoError(t, err)
	_, err = st.Frames(0)
	require.ErrorIs(t, err, wave.ErrInvalidParameter)
	require.Zero(t, st.FrameCount(0))
}
