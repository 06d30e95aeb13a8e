package raster

import (
	"golang.org/x/image/font"

	"github.com/gogpu/gg3d"
)

const defaultFontSize = 12

// Option configures a Backend.
type Option func(*options)

type options struct {
	background gg3d.RGBA
	clear      bool
	fontSize   float64
	face       font.Face
}

func defaultOptions() options {
	return options{
		background: gg3d.White,
		fontSize:   defaultFontSize,
	}
}

// WithBackground clears the image to c on creation.
func WithBackground(c gg3d.RGBA) Option {
	return func(o *options) {
		o.background = c
		o.clear = true
	}
}

// WithFontSize sets the point size (at 72 DPI) of the built-in label font.
// Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithFace replaces the built-in Go Regular label font.
func WithFace(face font.Face) Option {
	return func(o *options) {
		o.face = face
	}
}
