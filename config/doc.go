// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the standwave CLI: the
// plate and time discretisation, frame selection, rendering and export.
//
// Default reproduces the reference run: a 100×100 plate of side 5 over
// 30 time units with dt = 0.1 (n = 300), rendered at 800×600 and 15 fps
// into wave_animation.avi.
//
// Load reads YAML (.yaml, .yml) or HJSON (.hjson, .json) on top of the
// defaults, so a file only lists what it changes. Every loaded Config is
// validated; failures wrap ErrInvalidConfig and name the offending field.
package config
