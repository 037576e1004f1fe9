// SPDX-License-Identifier: MIT

// Package export writes and reads binary snapshots of an amplitude volume.
//
// A snapshot is a single msgpack document:
//
//	{format, run_id, created_at, side_length, dt, steps, rows, cols, axis, frames}
//
// where frames[i] holds slice i in row-major order. Float64 values are
// stored as msgpack float64, so a Write/Read round trip is bit-exact.
//
// Read validates the document shape and Snapshot.Volume rebuilds a
// wave.Volume through wave.NewVolume, so a decoded snapshot obeys the same
// invariants as a freshly evaluated one.
package export
