// SPDX-License-Identifier: MIT

// Package render turns an evaluated standing wave into pictures: a shaded
// 3D surface per frame, assembled into a video, plus a probe trace chart.
//
// It consumes a *grid.Grid and either a *wave.FrameSequence or a lazy
// *wave.Stream, and never mutates them.
//
// Components:
//
//   - Renderer: camera projection (elevation 30°, azimuth 70°, distance 8 by
//     default), painter's-algorithm quads subsampled by rstride/cstride,
//     colormap shading over one global [vmin, vmax], drawn on a gonum
//     vgimg canvas; title, X/Y/Z labels, colorbar and HUD drawn with
//     x/image basicfont.
//   - Colormaps: RdPu (default), Viridis, Gray, and gonum's Moreland
//     BlueRed and BlackBody.
//   - Drivers: Animate (eager frame sequence) and AnimateStream (lazy; the
//     colour scale is fixed before the first frame).
//   - Encoders: avi (Motion-JPEG, default), gif, png (frame directory),
//     mp4 (ffmpeg), gst (GStreamer; needs `-tags gst`).
//   - SaveTracePlot: gonum plot line chart of a probe cell over time.
//
// Logging goes through a *slog.Logger supplied by WithLogger; the default
// discards everything.
//
// Example:
//
//	enc, err := render.NewEncoder(render.EncoderAVI, "wave_animation.avi", 800, 600, 15)
//	if err != nil {
//	    return err
//	}
//	defer enc.Close()
//	err = render.Animate(ctx, g, seq, enc, render.WithLogger(logger))
package render
