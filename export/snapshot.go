// SPDX-License-Identifier: MIT
// Package: standwave/export
//
// snapshot.go - msgpack encoding of wave.Volume.

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/standwave/matrix"
	"github.com/katalvlaran/standwave/wave"
)

// FormatV1 tags every snapshot written by this package.
const FormatV1 = "standwave/1"

// Method tokens used in error messages.
const (
	MethodWrite     = "Write"
	MethodWriteFile = "WriteFile"
	MethodRead      = "Read"
	MethodReadFile  = "ReadFile"
	MethodVolume    = "Snapshot.Volume"
)

// Meta carries the run metadata stored next to the volume.
// An empty RunID gets a fresh UUID; a zero CreatedAt becomes time.Now().
// Axis, when set, must have one entry per column.
type Meta struct {
	RunID     string
	CreatedAt time.Time
	Axis      []float64
}

// Snapshot is the decoded document.
type Snapshot struct {
	Format     string      `msgpack:"format"`
	RunID      string      `msgpack:"run_id"`
	CreatedAt  time.Time   `msgpack:"created_at"`
	SideLength float64     `msgpack:"side_length"`
	Dt         float64     `msgpack:"dt"`
	Steps      int         `msgpack:"steps"`
	Rows       int         `msgpack:"rows"`
	Cols       int         `msgpack:"cols"`
	Axis       []float64   `msgpack:"axis,omitempty"`
	Frames     [][]float64 `msgpack:"frames"`
}

// NewSnapshot copies v into a Snapshot.
//
// Errors:
//   - ErrNilVolume when v is nil.
//   - matrix.ErrDimensionMismatch when meta.Axis does not match the columns.
func NewSnapshot(v *wave.Volume, meta Meta) (*Snapshot, error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", MethodWrite, ErrNilVolume)
	}
	rows, cols, steps := v.Shape()
	if meta.Axis != nil && len(meta.Axis) != cols {
		return nil, fmt.Errorf("%s: len(axis)=%d, cols=%d: %w", MethodWrite, len(meta.Axis), cols, matrix.ErrDimensionMismatch)
	}
	if meta.RunID == "" {
		meta.RunID = uuid.NewString()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	p := v.Params()
	s := &Snapshot{
		Format:     FormatV1,
		RunID:      meta.RunID,
		CreatedAt:  meta.CreatedAt,
		SideLength: p.SideLength,
		Dt:         p.Dt,
		Steps:      steps,
		Rows:       rows,
		Cols:       cols,
		Frames:     make([][]float64, steps),
	}
	if meta.Axis != nil {
		s.Axis = append([]float64(nil), meta.Axis...)
	}
	for i, m := range v.Slices() {
		s.Frames[i] = append([]float64(nil), m.View()...)
	}

	return s, nil
}

// Write encodes v with meta as one msgpack document.
func Write(w io.Writer, v *wave.Volume, meta Meta) error {
	s, err := NewSnapshot(v, meta)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("%s: cannot encode snapshot: %w", MethodWrite, err)
	}

	return nil
}

// WriteFile writes the snapshot to path, creating parent directories.
func WriteFile(path string, v *wave.Volume, meta Meta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%s: cannot create directory: %w", MethodWriteFile, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodWriteFile, err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, v, meta); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", MethodWriteFile, err)
	}

	return f.Close()
}

// Read decodes and validates one snapshot.
//
// Errors:
//   - ErrCorruptSnapshot for an unknown format or inconsistent shapes.
//   - wrapped msgpack decode errors.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%s: cannot decode snapshot: %w", MethodRead, err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}

	return &s, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodReadFile, err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

func (s *Snapshot) check() error {
	switch {
	case s.Format != FormatV1:
		return corruptf(MethodRead, "format=%q", s.Format)
	case s.Rows < 1 || s.Cols < 1:
		return corruptf(MethodRead, "shape %dx%d", s.Rows, s.Cols)
	case len(s.Frames) != s.Steps:
		return corruptf(MethodRead, "%d frames, steps=%d", len(s.Frames), s.Steps)
	case s.Axis != nil && len(s.Axis) != s.Cols:
		return corruptf(MethodRead, "len(axis)=%d, cols=%d", len(s.Axis), s.Cols)
	}
	for i, f := range s.Frames {
		if len(f) != s.Rows*s.Cols {
			return corruptf(MethodRead, "frame %d has %d values, want %d", i, len(f), s.Rows*s.Cols)
		}
	}

	return nil
}

// Params returns the evaluation parameters recorded in the snapshot.
func (s *Snapshot) Params() wave.Params {
	return wave.Params{SideLength: s.SideLength, Dt: s.Dt, Steps: s.Steps}
}

// Volume rebuilds the amplitude volume.
//
// Errors:
//   - ErrCorruptSnapshot for inconsistent shapes.
//   - matrix.ErrNaNInf for a non-finite sample.
//   - wave.ErrInvalidParameter for invalid recorded parameters.
func (s *Snapshot) Volume() (*wave.Volume, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	slices := make([]*matrix.Dense, len(s.Frames))
	for i, f := range s.Frames {
		m, err := matrix.NewDenseFrom(s.Rows, s.Cols, f)
		if err != nil {
			return nil, fmt.Errorf("%s: frame %d: %w", MethodVolume, i, err)
		}
		slices[i] = m
	}
	v, err := wave.NewVolume(s.Params(), slices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodVolume, err)
	}

	return v, nil
}
