// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend/raster"
	"github.com/gogpu/gg3d/controls"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTPS    = 60
	defaultTitle  = "gg3d"
)

type config struct {
	width, height  int
	title          string
	tps            int
	background     gg3d.RGBA
	continuous     bool
	input          Input
	contextOptions []gg3d.Context3DOption
	cameraOptions  []gg3d.CameraOption
	controlOptions []controls.Option
	onUpdate       func(*Viewer) error
	overlay        func(*raster.Backend)
}

func defaultConfig() config {
	return config{
		width:      defaultWidth,
		height:     defaultHeight,
		title:      defaultTitle,
		tps:        defaultTPS,
		background: gg3d.White,
	}
}

// Option configures a Viewer.
type Option func(*config)

// WithSize sets the initial window size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithTPS sets the update rate in ticks per second.
func WithTPS(tps int) Option {
	return func(c *config) {
		if tps > 0 {
			c.tps = tps
		}
	}
}

// WithBackground sets the clear color.
func WithBackground(bg gg3d.RGBA) Option {
	return func(c *config) { c.background = bg }
}

// WithContinuous re-renders every frame even when nothing changed, for
// scenes animated from outside the viewer.
func WithContinuous(on bool) Option {
	return func(c *config) { c.continuous = on }
}

// WithInput replaces the ebiten input source.
func WithInput(in Input) Option {
	return func(c *config) { c.input = in }
}

// WithContext adds render target options.
func WithContext(opts ...gg3d.Context3DOption) Option {
	return func(c *config) { c.contextOptions = append(c.contextOptions, opts...) }
}

// WithCamera adds camera options.
func WithCamera(opts ...gg3d.CameraOption) Option {
	return func(c *config) { c.cameraOptions = append(c.cameraOptions, opts...) }
}

// WithControls adds mouse control options.
func WithControls(opts ...controls.Option) Option {
	return func(c *config) { c.controlOptions = append(c.controlOptions, opts...) }
}

// WithUpdate runs fn once per tick after input has been applied. Call
// MarkDirty from fn when it changes the scene.
func WithUpdate(fn func(*Viewer) error) Option {
	return func(c *config) { c.onUpdate = fn }
}

// WithOverlay draws on the raster image after every rendered frame, for
// labels and HUD text.
func WithOverlay(fn func(*raster.Backend)) Option {
	return func(c *config) { c.overlay = fn }
}
