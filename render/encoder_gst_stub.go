// SPDX-License-Identifier: MIT
// Package: standwave/render

//go:build !gst

package render

// newGstEncoder reports that this binary was built without GStreamer.
func newGstEncoder(_ string, _, _, _ int) (Encoder, error) {
	return nil, ErrEncoderUnavailable
}
