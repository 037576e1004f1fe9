package export_test

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/standwave/export"
	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/matrix"
	"github.com/katalvlaran/standwave/wave"
)

func evaluate(t *testing.T, size, steps int) (*grid.Grid, *wave.Volume) {
	t.Helper()
	g, err := grid.New(5, size)
	require.NoError(t, err)
	vol, err := wave.EvaluateGrid(g, 0.1, steps)
	require.NoError(t, err)

	return g, vol
}

// TestRoundTrip_BitExact checks every sample survives encode/decode unchanged.
func TestRoundTrip_BitExact(t *testing.T) {
	g, vol := evaluate(t, 12, 9)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, vol, export.Meta{RunID: "run-1", CreatedAt: created, Axis: g.Axis()}))

	snap, err := export.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, export.FormatV1, snap.Format)
	require.Equal(t, "run-1", snap.RunID)
	require.True(t, created.Equal(snap.CreatedAt))
	require.Equal(t, g.Axis(), snap.Axis)
	require.Equal(t, vol.Params(), snap.Params())

	got, err := snap.Volume()
	require.NoError(t, err)
	rows, cols, steps := vol.Shape()
	gr, gc, gs := got.Shape()
	require.Equal(t, []int{rows, cols, steps}, []int{gr, gc, gs})
	for i := range steps {
		want, err := vol.Slice(i)
		require.NoError(t, err)
		have, err := got.Slice(i)
		require.NoError(t, err)
		for k, v := range want.View() {
			require.Equal(t, math.Float64bits(v), math.Float64bits(have.View()[k]), "slice %d sample %d", i, k)
		}
	}
}

// TestWrite_Defaults fills a UUID run id and a creation time.
func TestWrite_Defaults(t *testing.T) {
	_, vol := evaluate(t, 4, 2)
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, vol, export.Meta{}))

	snap, err := export.Read(&buf)
	require.NoError(t, err)
	_, err = uuid.Parse(snap.RunID)
	require.NoError(t, err)
	require.False(t, snap.CreatedAt.IsZero())
	require.Nil(t, snap.Axis)
}

// TestWrite_Errors covers nil volume and axis length mismatch.
func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, export.Write(&buf, nil, export.Meta{}), export.ErrNilVolume)

	_, vol := evaluate(t, 4, 2)
	err := export.Write(&buf, vol, export.Meta{Axis: []float64{1, 2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRead_Corrupt rejects documents whose header and payload disagree.
func TestRead_Corrupt(t *testing.T) {
	good := export.Snapshot{
		Format: export.FormatV1, SideLength: 5, Dt: 0.1, Steps: 2, Rows: 2, Cols: 2,
		Frames: [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}},
	}
	cases := map[string]func(s *export.Snapshot){
		"format":       func(s *export.Snapshot) { s.Format = "other/9" },
		"frame count":  func(s *export.Snapshot) { s.Steps = 3 },
		"frame length": func(s *export.Snapshot) { s.Frames[1] = []float64{1} },
		"axis":         func(s *export.Snapshot) { s.Axis = []float64{0} },
		"shape":        func(s *export.Snapshot) { s.Rows = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := good
			s.Frames = [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}
			mutate(&s)
			raw, err := msgpack.Marshal(&s)
			require.NoError(t, err)

			_, err = export.Read(bytes.NewReader(raw))
			require.ErrorIs(t, err, export.ErrCorruptSnapshot)
		})
	}

	raw, err := msgpack.Marshal(&good)
	require.NoError(t, err)
	snap, err := export.Read(bytes.NewReader(raw))
	require.NoError(t, err)
	_, err = snap.Volume()
	require.NoError(t, err)

	_, err = export.Read(bytes.NewReader([]byte{0xc1}))
	require.Error(t, err)
}

// TestSnapshot_InvalidParams surfaces wave validation through Volume.
func TestSnapshot_InvalidParams(t *testing.T) {
	s := &export.Snapshot{
		Format: export.FormatV1, SideLength: 5, Dt: -1, Steps: 1, Rows: 1, Cols: 2,
		Frames: [][]float64{{0, 1}},
	}
	_, err := s.Volume()
	require.ErrorIs(t, err, wave.ErrInvalidParameter)

	s.Dt = 0.1
	s.Frames[0][1] = math.NaN()
	_, err = s.Volume()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestWriteFile_ReadFile goes through the filesystem.
func TestWriteFile_ReadFile(t *testing.T) {
	_, vol := evaluate(t, 6, 4)
	path := filepath.Join(t.TempDir(), "out", "volume.msgpack")
	require.NoError(t, export.WriteFile(path, vol, export.Meta{RunID: "file"}))

	snap, err := export.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "file", snap.RunID)
	require.Len(t, snap.Frames, 4)

	_, err = export.ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
