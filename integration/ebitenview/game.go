// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gg3d"
)

var errTerminate = ebiten.Termination

// Compile-time interface check.
var _ ebiten.Game = (*Viewer)(nil)

// screenImage is the GPU-side copy of the raster target. It is created
// lazily and recreated when the render size changes.
type screenImage struct {
	img           *ebiten.Image
	width, height int
}

// ensure returns an image of the given size and whether it was just
// created.
func (s *screenImage) ensure(width, height int) (*ebiten.Image, bool) {
	if s.img != nil && s.width == width && s.height == height {
		return s.img, false
	}
	s.release()
	s.img = ebiten.NewImage(width, height)
	s.width, s.height = width, height
	return s.img, true
}

func (s *screenImage) release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

// Draw renders the scene if it changed and blits it to screen.
func (v *Viewer) Draw(screen *ebiten.Image) {
	if v.closed {
		return
	}
	rendered := v.RenderFrame()

	src := v.target.Image()
	b := src.Bounds()
	img, fresh := v.screen.ensure(b.Dx(), b.Dy())
	if rendered || fresh {
		img.WritePixels(src.Pix)
	}
	screen.DrawImage(img, nil)
}

// Run opens the window and blocks until it is closed or Update returns
// an error. Closing the window or pressing Escape is not an error.
func (v *Viewer) Run() error {
	if v.closed {
		return ErrViewerClosed
	}
	ebiten.SetWindowTitle(v.cfg.title)
	ebiten.SetWindowSize(v.cfg.width, v.cfg.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(v.cfg.tps)

	gg3d.Logger().Info("ebitenview: window opened",
		"title", v.cfg.title, "width", v.cfg.width, "height", v.cfg.height)
	defer gg3d.Logger().Info("ebitenview: window closed", "frames", v.frames)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenview: %w", err)
	}
	return nil
}
