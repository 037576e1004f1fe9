// SPDX-License-Identifier: MIT
// Package: standwave/render

//go:build gst

package render

import (
	"fmt"
	"image"
	imgdraw "image/draw"
	"sync"
	"time"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"
)

var gstInit sync.Once

// gstEncoder pushes raw RGBA frames through
//
//	appsrc ! videoconvert ! jpegenc ! avimux ! filesink
//
// and waits for EOS on Close.
type gstEncoder struct {
	pipeline *gst.Pipeline
	src      *app.Source
	width    int
	height   int
	frameDur time.Duration
	next     int
	closed   bool
}

func newGstEncoder(path string, width, height, fps int) (Encoder, error) {
	gstInit.Do(func() { gst.Init(nil) })
	if err := ensureParent(path); err != nil {
		return nil, err
	}

	launch := fmt.Sprintf(
		"appsrc name=src format=time caps=video/x-raw,format=RGBA,width=%d,height=%d,framerate=%d/1 "+
			"! videoconvert ! jpegenc quality=%d ! avimux ! filesink location=%q",
		width, height, fps, jpegQuality, path)
	pipeline, err := gst.NewPipelineFromString(launch)
	if err != nil {
		return nil, fmt.Errorf("cannot build pipeline: %w", err)
	}
	elem, err := pipeline.GetElementByName("src")
	if err != nil {
		return nil, fmt.Errorf("appsrc missing: %w", err)
	}
	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		return nil, fmt.Errorf("cannot start pipeline: %w", err)
	}

	return &gstEncoder{
		pipeline: pipeline,
		src:      app.SrcFromElement(elem),
		width:    width,
		height:   height,
		frameDur: time.Second / time.Duration(fps),
	}, nil
}

func (e *gstEncoder) AddFrame(img image.Image) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if err := checkFrame(img, e.width, e.height); err != nil {
		return err
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*e.width {
		rgba = image.NewRGBA(image.Rect(0, 0, e.width, e.height))
		imgdraw.Draw(rgba, rgba.Rect, img, img.Bounds().Min, imgdraw.Src)
	}

	buf := gst.NewBufferFromBytes(rgba.Pix)
	buf.SetPresentationTimestamp(time.Duration(e.next) * e.frameDur)
	buf.SetDuration(e.frameDur)
	if ret := e.src.PushBuffer(buf); ret != gst.FlowOK {
		return fmt.Errorf("appsrc push returned %v", ret)
	}
	e.next++

	return nil
}

func (e *gstEncoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	defer e.pipeline.SetState(gst.StateNull)

	e.src.EndStream()
	bus := e.pipeline.GetPipelineBus()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		msg := bus.TimedPop(100 * time.Millisecond)
		if msg == nil {
			continue
		}
		switch msg.Type() {
		case gst.MessageEOS:
			return nil
		case gst.MessageError:
			gerr := msg.ParseError()
			return fmt.Errorf("pipeline error: %s (%s)", gerr.Error(), gerr.DebugString())
		}
	}

	return fmt.Errorf("pipeline did not reach EOS within 30s")
}
