// SPDX-License-Identifier: MIT

// Package grid builds the spatial sampling of the square plate: an evenly
// spaced 1-D axis over [-L, +L] and its expansion into the coordinate pair
// (X, Y) that frame evaluation and rendering consume.
//
// Components:
//
//   - Axis construction:
//     – BuildAxis:     count evenly spaced samples over [low, high], both ends exact.
//     – SymmetricAxis: BuildAxis(-L, +L, count).
//     – Spacing:       uniform step of an axis.
//   - Grid construction:
//     – BuildGrid:     X[i][j] = axis[j], Y[i][j] = axis[i], both n×n.
//     – New:           SymmetricAxis + BuildGrid in one call.
//   - Grid accessors: Size, Axis, X, Y, Bounds, HalfWidth, Spacing, Point.
//
// Guarantees:
//
//   - No panics on user input; invalid parameters return errors wrapping
//     ErrInvalidDimension with the method, parameter and violated constraint.
//   - Grids are immutable after construction and safe for concurrent readers.
//   - O(n) axis construction, O(n²) grid construction.
//
// Example:
//
//	g, err := grid.New(5, 100) // 100×100 samples over [-5, 5]²
//	if err != nil {
//	    return err
//	}
//	x0, y0, _ := g.Point(0, 0) // (-5, -5)
package grid
