// SPDX-License-Identifier: MIT
// Package: standwave/config

package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hjson/hjson-go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/standwave/grid"
	"github.com/katalvlaran/standwave/render"
	"github.com/katalvlaran/standwave/wave"
)

// Method tokens used in error messages.
const (
	MethodLoad     = "Load"
	MethodDecode   = "Decode"
	MethodValidate = "Validate"
)

// Config is the complete run configuration.
type Config struct {
	AxisSize   int     `yaml:"axis_size" json:"axis_size"`
	SideLength float64 `yaml:"side_length" json:"side_length"`
	TotalTime  float64 `yaml:"total_time" json:"total_time"`
	Dt         float64 `yaml:"dt" json:"dt"`
	Stride     int     `yaml:"stride" json:"stride"`   // keep every stride-th slice
	Workers    int     `yaml:"workers" json:"workers"` // 0 = GOMAXPROCS

	Render RenderConfig `yaml:"render" json:"render"`
	Export ExportConfig `yaml:"export" json:"export"`
}

// RenderConfig controls the surface renderer and the video encoder.
type RenderConfig struct {
	Width     int     `yaml:"width" json:"width"`
	Height    int     `yaml:"height" json:"height"`
	FPS       int     `yaml:"fps" json:"fps"`
	Elevation float64 `yaml:"elevation" json:"elevation"`
	Azimuth   float64 `yaml:"azimuth" json:"azimuth"`
	Distance  float64 `yaml:"distance" json:"distance"`
	RStride   int     `yaml:"rstride" json:"rstride"`
	CStride   int     `yaml:"cstride" json:"cstride"`
	Colormap  string  `yaml:"colormap" json:"colormap"`
	Title     string  `yaml:"title" json:"title"`
	Encoder   string  `yaml:"encoder" json:"encoder"`
	Output    string  `yaml:"output" json:"output"`
	TracePlot string  `yaml:"trace_plot" json:"trace_plot"` // empty = no trace plot
}

// ExportConfig controls the msgpack volume snapshot.
type ExportConfig struct {
	Path string `yaml:"path" json:"path"` // empty = no snapshot
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		AxisSize:   100,
		SideLength: 5,
		TotalTime:  30,
		Dt:         0.1,
		Stride:     1,
		Workers:    0,
		Render: RenderConfig{
			Width:     render.DefaultWidth,
			Height:    render.DefaultHeight,
			FPS:       render.DefaultFPS,
			Elevation: render.DefaultElevation,
			Azimuth:   render.DefaultAzimuth,
			Distance:  render.DefaultDistance,
			RStride:   render.DefaultRStride,
			CStride:   render.DefaultCStride,
			Colormap:  render.DefaultColormap,
			Title:     render.DefaultTitle,
			Encoder:   render.EncoderAVI,
			Output:    render.DefaultOutput,
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns Default.
//
// Errors:
//   - ErrUnsupportedFormat for an unknown extension.
//   - ErrInvalidConfig from Validate.
//   - wrapped I/O and decode errors.
func Load(path string) (Config, error) {
	cfg, err := Decode(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %s: %w", MethodLoad, path, err)
	}

	return cfg, nil
}

// Decode reads path over Default without validating, so callers can apply
// overrides before calling Validate. An empty path returns Default.
//
// Errors:
//   - ErrUnsupportedFormat for an unknown extension.
//   - wrapped I/O and decode errors.
func Decode(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: cannot read config: %w", MethodDecode, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".hjson", ".json":
		err = decodeHJSON(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%s: extension %q: %w", MethodDecode, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: cannot parse %s: %w", MethodDecode, path, err)
	}

	return cfg, nil
}

// decodeHJSON decodes HJSON into a generic map, then re-marshals it as
// JSON so the struct tags apply.
func decodeHJSON(data []byte, cfg *Config) error {
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return err
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	return json.Unmarshal(js, cfg)
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	switch {
	case c.AxisSize < grid.MinAxisSize:
		return fieldErrorf("axis_size", c.AxisSize, "axis_size >= 2")
	case !positive(c.SideLength):
		return fieldErrorf("side_length", c.SideLength, "side_length > 0")
	case !positive(c.TotalTime):
		return fieldErrorf("total_time", c.TotalTime, "total_time > 0")
	case !positive(c.Dt):
		return fieldErrorf("dt", c.Dt, "dt > 0")
	case c.Dt > c.TotalTime:
		return fieldErrorf("dt", c.Dt, "dt <= total_time")
	case c.Stride < 1:
		return fieldErrorf("stride", c.Stride, "stride >= 1")
	case c.Workers < 0:
		return fieldErrorf("workers", c.Workers, "workers >= 0")
	}

	r := c.Render
	switch {
	case r.FPS < 1:
		return fieldErrorf("render.fps", r.FPS, "fps >= 1")
	case r.Width < render.MinCanvasSide:
		return fieldErrorf("render.width", r.Width, fmt.Sprintf("width >= %d", render.MinCanvasSide))
	case r.Height < render.MinCanvasSide:
		return fieldErrorf("render.height", r.Height, fmt.Sprintf("height >= %d", render.MinCanvasSide))
	case !(r.Distance > 1) || math.IsInf(r.Distance, 0):
		return fieldErrorf("render.distance", r.Distance, "distance > 1")
	case r.RStride < 1:
		return fieldErrorf("render.rstride", r.RStride, "rstride >= 1")
	case r.CStride < 1:
		return fieldErrorf("render.cstride", r.CStride, "cstride >= 1")
	case !slices.Contains(render.ColormapNames(), r.Colormap):
		return fieldErrorf("render.colormap", r.Colormap, "a known colormap")
	case !slices.Contains(render.EncoderKinds(), r.Encoder):
		return fieldErrorf("render.encoder", r.Encoder, "one of "+strings.Join(render.EncoderKinds(), ", "))
	case r.Output == "":
		return fieldErrorf("render.output", `""`, "non-empty output path")
	}

	if _, err := c.Steps(); err != nil {
		return fmt.Errorf("%s: %w: %w", MethodValidate, ErrInvalidConfig, err)
	}

	return nil
}

// Steps derives n = floor(total_time / dt).
func (c Config) Steps() (int, error) {
	return wave.StepCount(c.TotalTime, c.Dt)
}

// Grid builds the coordinate grid of the configuration.
func (c Config) Grid() (*grid.Grid, error) {
	return grid.New(c.SideLength, c.AxisSize)
}

// Camera returns the configured viewpoint.
func (c Config) Camera() render.Camera {
	return render.Camera{Elevation: c.Render.Elevation, Azimuth: c.Render.Azimuth, Distance: c.Render.Distance}
}

// RenderOptions translates the render section into render options.
// The configuration must be valid; the options panic otherwise.
func (c Config) RenderOptions() []render.Option {
	r := c.Render
	return []render.Option{
		render.WithSize(r.Width, r.Height),
		render.WithCamera(c.Camera()),
		render.WithStrides(r.RStride, r.CStride),
		render.WithColormap(r.Colormap),
		render.WithTitle(r.Title),
	}
}

// WaveOptions returns the evaluation options; Workers = 0 keeps the default.
func (c Config) WaveOptions() []wave.Option {
	if c.Workers == 0 {
		return nil
	}

	return []wave.Option{wave.WithWorkers(c.Workers)}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
