// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend/raster"
	"github.com/gogpu/gg3d/controls"
)

// Common errors returned by Viewer operations.
var (
	// ErrNilScene is returned when a viewer is created with nothing to draw.
	ErrNilScene = errors.New("ebitenview: nil scene")

	// ErrViewerClosed is returned when operations are attempted on a closed viewer.
	ErrViewerClosed = errors.New("ebitenview: viewer is closed")
)

// Viewer renders a fixed set of items and lets the mouse move the camera.
//
// Viewer is NOT safe for concurrent use.
type Viewer struct {
	ctx      *gg3d.Context3D
	target   *raster.Backend
	cam      *gg3d.Camera
	controls *controls.Orbit
	items    []gg3d.Renderable
	input    Input
	cfg      config

	held   map[controls.Button]bool
	screen screenImage
	dirty  bool
	frames int
	closed bool
}

// New creates a viewer for items. Nil items are dropped; if nothing is
// left, New returns ErrNilScene.
func New(items []gg3d.Renderable, opts ...Option) (*Viewer, error) {
	var kept []gg3d.Renderable
	for _, it := range items {
		if it != nil {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNilScene
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	target := raster.NewImage(cfg.width, cfg.height, raster.WithBackground(cfg.background))
	ctxOpts := append([]gg3d.Context3DOption{gg3d.WithBackend(target)}, cfg.contextOptions...)
	ctx := gg3d.NewContext3D(cfg.width, cfg.height, ctxOpts...)
	cam := gg3d.NewCamera(ctx, cfg.cameraOptions...)

	v := &Viewer{
		ctx:      ctx,
		target:   target,
		cam:      cam,
		controls: controls.New(cam, cfg.controlOptions...),
		items:    kept,
		input:    cfg.input,
		cfg:      cfg,
		held:     make(map[controls.Button]bool),
		dirty:    true,
	}
	if v.input == nil {
		v.input = ebitenInput{}
	}
	return v, nil
}

// Context returns the render target.
func (v *Viewer) Context() *gg3d.Context3D { return v.ctx }

// Camera returns the viewer camera.
func (v *Viewer) Camera() *gg3d.Camera { return v.cam }

// Controls returns the mouse controls.
func (v *Viewer) Controls() *controls.Orbit { return v.controls }

// Target returns the raster backend the scene is drawn into.
func (v *Viewer) Target() *raster.Backend { return v.target }

// Frames returns how many frames have been rendered.
func (v *Viewer) Frames() int { return v.frames }

// MarkDirty forces a re-render on the next Draw.
func (v *Viewer) MarkDirty() { v.dirty = true }

// IsDirty reports whether the next Draw re-renders the scene.
func (v *Viewer) IsDirty() bool {
	return v.dirty || v.cfg.continuous || v.cam.Dirty()
}

// Update polls input, applies it to the camera and runs the per-tick
// callback. It returns ebiten.Termination when the user asks to quit.
func (v *Viewer) Update() error {
	if v.closed {
		return ErrViewerClosed
	}
	if v.input.QuitRequested() {
		return errTerminate
	}

	x, y := v.input.CursorPosition()
	at := gg3d.Pt(float64(x), float64(y))
	v.controls.PointerMove(at)

	for _, b := range []controls.Button{controls.ButtonLeft, controls.ButtonRight, controls.ButtonMiddle} {
		pressed := v.input.IsPressed(b)
		switch {
		case pressed && !v.held[b]:
			v.controls.PointerDown(b, at)
		case !pressed && v.held[b]:
			v.controls.PointerUp(b)
		}
		v.held[b] = pressed
	}

	if steps := v.input.WheelSteps(); steps != 0 {
		v.controls.Wheel(steps)
	}

	if v.cfg.onUpdate != nil {
		if err := v.cfg.onUpdate(v); err != nil {
			return err
		}
	}
	return nil
}

// Layout follows the window size so the scene is rendered at native
// resolution.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := v.Resize(outsideWidth, outsideHeight); err != nil {
		return v.ctx.Width(), v.ctx.Height()
	}
	return outsideWidth, outsideHeight
}

// Resize changes the render size. The camera re-derives its projection
// through the context's resize notification.
func (v *Viewer) Resize(width, height int) error {
	if v.closed {
		return ErrViewerClosed
	}
	if width == v.ctx.Width() && height == v.ctx.Height() {
		return nil
	}
	if err := v.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("ebitenview: %w", err)
	}
	v.target = raster.NewImage(width, height, raster.WithBackground(v.cfg.background))
	v.ctx.SetBackend(v.target)
	v.dirty = true
	return nil
}

// RenderFrame draws the scene into the raster target if it is dirty and
// reports whether it did.
func (v *Viewer) RenderFrame() bool {
	if v.closed || !v.IsDirty() {
		return false
	}
	v.target.Clear(v.cfg.background)
	v.ctx.RenderFrame(v.items...)
	if v.cfg.overlay != nil {
		v.cfg.overlay(v.target)
	}
	v.dirty = false
	v.frames++
	return true
}

// Close detaches the camera and releases the screen image.
// Close is idempotent.
func (v *Viewer) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.cam.Dispose()
	v.screen.release()
	return nil
}
