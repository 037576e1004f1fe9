// SPDX-License-Identifier: MIT

// Command standwave evaluates the 2D standing wave on a square plate and
// renders it as an animated 3D surface.
//
// Usage:
//
//	standwave [-config run.yaml] [-output wave.avi] [-encoder avi|gif|png|mp4|gst]
//	          [-stride k] [-workers k] [-export volume.msgpack] [-trace trace.png]
//	          [-debug] [-json-log] [-prof]
//
// Flags override the matching configuration fields. Without -export and
// -trace the slices are evaluated lazily, one frame at a time.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/katalvlaran/standwave/config"
	"github.com/katalvlaran/standwave/export"
	"github.com/katalvlaran/standwave/render"
	"github.com/katalvlaran/standwave/wave"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1 // invalid configuration or failed run
	exitUsage   = 2
)

type options struct {
	configPath string
	output     string
	encoder    string
	stride     int
	workers    int
	exportPath string
	tracePath  string
	debug      bool
	jsonLog    bool
	prof       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("standwave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Path to YAML or HJSON config file")
	fs.StringVar(&o.output, "output", "", "Output path (directory for -encoder png)")
	fs.StringVar(&o.encoder, "encoder", "", "Encoder: avi, gif, png, mp4 or gst")
	fs.IntVar(&o.stride, "stride", 0, "Keep every k-th time slice")
	fs.IntVar(&o.workers, "workers", 0, "Evaluation workers (0 = GOMAXPROCS)")
	fs.StringVar(&o.exportPath, "export", "", "Write a msgpack volume snapshot to this path")
	fs.StringVar(&o.tracePath, "trace", "", "Write a probe trace plot (PNG) to this path")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.jsonLog, "json-log", false, "Log as JSON")
	fs.BoolVar(&o.prof, "prof", false, "Write a CPU profile to the working directory")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	runID := uuid.NewString()
	logger := newLogger(stderr, o.debug, o.jsonLog).With(slog.String("run_id", runID))

	// File values are validated only after flags override them.
	cfg, err := config.Decode(o.configPath)
	if err == nil {
		applyFlags(fs, o, &cfg)
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("invalid configuration", slog.String("config", o.configPath), slog.Any("error", err))
		return exitInvalid
	}

	if o.prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if err := execute(ctx, cfg, runID, logger); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		return exitInvalid
	}

	return exitOK
}

func newLogger(w io.Writer, debug, asJSON bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(fs *flag.FlagSet, o options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Render.Output = o.output
		case "encoder":
			cfg.Render.Encoder = o.encoder
		case "stride":
			cfg.Stride = o.stride
		case "workers":
			cfg.Workers = o.workers
		case "export":
			cfg.Export.Path = o.exportPath
		case "trace":
			cfg.Render.TracePlot = o.tracePath
		}
	})
}

// encodeTo opens the configured encoder, runs draw and closes the encoder.
// A failed run removes the partial output file; png frame directories are
// left in place.
func encodeTo(cfg config.Config, draw func(render.Encoder) error) (err error) {
	r := cfg.Render
	enc, err := render.NewEncoder(r.Encoder, r.Output, r.Width, r.Height, r.FPS)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close encoder: %w", cerr)
		}
		if err != nil && r.Encoder != render.EncoderPNG {
			_ = os.Remove(r.Output)
		}
	}()

	return draw(enc)
}

// execute evaluates, renders and optionally exports one run.
func execute(ctx context.Context, cfg config.Config, runID string, logger *slog.Logger) error {
	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	n, err := cfg.Steps()
	if err != nil {
		return err
	}
	logger.Info("run started",
		slog.Int("axis_size", cfg.AxisSize),
		slog.Float64("side_length", cfg.SideLength),
		slog.Float64("dt", cfg.Dt),
		slog.Int("steps", n),
		slog.Int("stride", cfg.Stride),
		slog.String("encoder", cfg.Render.Encoder),
		slog.String("output", cfg.Render.Output),
	)
	start := time.Now()

	ropts := append(cfg.RenderOptions(), render.WithLogger(logger))
	wopts := append(cfg.WaveOptions(), wave.WithContext(ctx))

	if cfg.Export.Path == "" && cfg.Render.TracePlot == "" {
		st, err := wave.NewGridStream(g, cfg.Dt, n)
		if err != nil {
			return err
		}
		err = encodeTo(cfg, func(enc render.Encoder) error {
			return render.AnimateStream(ctx, g, st, cfg.Stride, enc, ropts...)
		})
		if err != nil {
			return err
		}
		logger.Info("run finished", slog.Duration("elapsed", time.Since(start)))
		return nil
	}

	vol, err := wave.EvaluateGrid(g, cfg.Dt, n, wopts...)
	if err != nil {
		return err
	}
	lo, hi := vol.Extrema()
	logger.Debug("volume evaluated", slog.Float64("min", lo), slog.Float64("max", hi))

	seq, err := wave.SelectFrames(vol, cfg.Stride)
	if err != nil {
		return err
	}
	err = encodeTo(cfg, func(enc render.Encoder) error {
		return render.Animate(ctx, g, seq, enc, ropts...)
	})
	if err != nil {
		return err
	}

	if cfg.Export.Path != "" {
		if err := export.WriteFile(cfg.Export.Path, vol, export.Meta{RunID: runID, Axis: g.Axis()}); err != nil {
			return err
		}
		logger.Info("snapshot written", slog.String("path", cfg.Export.Path))
	}
	if cfg.Render.TracePlot != "" {
		// Probe near (L/2, L/2), where the spatial factor peaks.
		c := (g.Size() - 1) * 3 / 4
		if err := render.SaveTracePlot(cfg.Render.TracePlot, seq, c, c); err != nil {
			return err
		}
		logger.Info("trace plot written", slog.String("path", cfg.Render.TracePlot))
	}

	logger.Info("run finished", slog.Duration("elapsed", time.Since(start)))

	return nil
}
