// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gg3d/controls"
)

// Input is the pointer and keyboard state polled once per tick.
type Input interface {
	// CursorPosition returns the pointer position in window pixels.
	CursorPosition() (x, y int)

	// IsPressed reports whether b is held down.
	IsPressed(b controls.Button) bool

	// WheelSteps returns the vertical wheel motion since the last tick;
	// positive is away from the user.
	WheelSteps() float64

	// QuitRequested reports whether the user asked to close the viewer.
	QuitRequested() bool
}

// ebitenInput reads ebiten's global input state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) IsPressed(b controls.Button) bool {
	switch b {
	case controls.ButtonLeft:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	case controls.ButtonRight:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	case controls.ButtonMiddle:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	default:
		return false
	}
}

func (ebitenInput) WheelSteps() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func (ebitenInput) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
