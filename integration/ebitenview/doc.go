// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenview shows gg3d scenes in an ebiten window.
//
// The data flow per displayed frame is:
//
//	Context3D.RenderFrame -> raster backend (*image.RGBA) -> ebiten.Image -> screen
//
// # Architecture
//
// Viewer implements ebiten.Game:
//
//   - Update polls the mouse and feeds the gestures to controls.Orbit
//   - Layout follows the window size and resizes the render target
//   - Draw renders the scene into the raster image if anything changed
//     and blits it to the screen
//
// Camera changes made during Update are coalesced and pushed to the
// context once, when Draw opens the frame.
//
// # Usage
//
//	v, err := ebitenview.New(items,
//		ebitenview.WithSize(960, 640),
//		ebitenview.WithCamera(gg3d.WithPosition(gg3d.V3(4, 3, 8))),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer v.Close()
//	if err := v.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Thread Safety
//
// Viewer is NOT safe for concurrent use. ebiten calls Update, Layout and
// Draw from a single goroutine; do the same when driving a Viewer by hand.
package ebitenview
