package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/standwave/export"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const smallRun = `
axis_size: 12
total_time: 0.5
dt: 0.1
render:
  width: 96
  height: 72
`

// TestRun_Stream renders a short GIF through the lazy path.
func TestRun_Stream(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wave.gif")
	var logs bytes.Buffer
	code := run(context.Background(), []string{
		"-config", writeConfig(t, smallRun), "-encoder", "gif", "-output", out, "-json-log",
	}, &logs)
	require.Equal(t, exitOK, code, logs.String())

	st, err := os.Stat(out)
	require.NoError(t, err)
	require.Greater(t, st.Size(), int64(0))
	require.Contains(t, logs.String(), `"run_id"`)
	require.Contains(t, logs.String(), "run finished")
}

// TestRun_ExportAndTrace takes the eager path and writes every artefact.
func TestRun_ExportAndTrace(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	snap := filepath.Join(dir, "volume.msgpack")
	trace := filepath.Join(dir, "trace.png")
	var logs bytes.Buffer

	code := run(context.Background(), []string{
		"-config", writeConfig(t, smallRun),
		"-encoder", "png", "-output", frames, "-stride", "2", "-workers", "2",
		"-export", snap, "-trace", trace,
	}, &logs)
	require.Equal(t, exitOK, code, logs.String())

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	require.Len(t, entries, 3) // ceil(5/2)

	s, err := export.ReadFile(snap)
	require.NoError(t, err)
	require.Equal(t, 5, s.Steps)
	require.Len(t, s.Axis, 12)

	_, err = os.Stat(trace)
	require.NoError(t, err)
}

// TestRun_InvalidConfig exits 1 and names the field.
func TestRun_InvalidConfig(t *testing.T) {
	var logs bytes.Buffer
	code := run(context.Background(), []string{"-config", writeConfig(t, "dt: 0\n")}, &logs)
	require.Equal(t, exitInvalid, code)
	require.Contains(t, logs.String(), "invalid configuration")
	require.Contains(t, logs.String(), "dt=0")

	logs.Reset()
	code = run(context.Background(), []string{"-stride", "0"}, &logs)
	require.Equal(t, exitInvalid, code)
	require.Contains(t, logs.String(), "stride=0")
}

// TestRun_Usage rejects unknown flags.
func TestRun_Usage(t *testing.T) {
	var logs bytes.Buffer
	require.Equal(t, exitUsage, run(context.Background(), []string{"-nope"}, &logs))
}

// TestRun_Cancelled reports a failed run when the context is already done.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var logs bytes.Buffer
	out := filepath.Join(t.TempDir(), "wave.avi")
	code := run(ctx, []string{"-config", writeConfig(t, smallRun), "-output", out}, &logs)
	require.Equal(t, exitInvalid, code)
	require.Contains(t, logs.String(), "run failed")
	_, err := os.Stat(out)
	require.ErrorIs(t, err, os.ErrNotExist, "a failed run leaves no partial video")
}

// TestRun_CancelledEager fails during evaluation before any output is opened.
func TestRun_CancelledEager(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	out := filepath.Join(dir, "wave.avi")
	snap := filepath.Join(dir, "volume.msgpack")
	var logs bytes.Buffer

	code := run(ctx, []string{"-config", writeConfig(t, smallRun), "-output", out, "-export", snap}, &logs)
	require.Equal(t, exitInvalid, code)
	for _, p := range []string{out, snap} {
		_, err := os.Stat(p)
		require.ErrorIs(t, err, os.ErrNotExist, p)
	}
}

// TestRun_FlagOverridesFile lets a set flag repair a file value before validation.
func TestRun_FlagOverridesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wave.gif")
	cfgPath := writeConfig(t, smallRun+"stride: 0\n")
	var logs bytes.Buffer

	code := run(context.Background(), []string{"-config", cfgPath, "-stride", "2", "-encoder", "gif", "-output", out}, &logs)
	require.Equal(t, exitOK, code, logs.String())

	logs.Reset()
	code = run(context.Background(), []string{"-config", cfgPath, "-encoder", "gif", "-output", out}, &logs)
	require.Equal(t, exitInvalid, code)
	require.Contains(t, logs.String(), "stride=0")
}
