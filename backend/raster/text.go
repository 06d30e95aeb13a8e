package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gg3d"
)

// DrawText draws a label with its baseline origin at the given point.
func (b *Backend) DrawText(at gg3d.Point, text string, c gg3d.RGBA) {
	if text == "" {
		return
	}
	face := b.labelFace()
	if face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y * 64)},
	}
	d.DrawString(text)
}

// MeasureText returns the horizontal advance of text in pixels.
func (b *Backend) MeasureText(text string) float64 {
	face := b.labelFace()
	if face == nil {
		return 0
	}
	return float64(font.MeasureString(face, text)) / 64
}

// labelFace lazily builds the Go Regular face. A failure is logged once.
func (b *Backend) labelFace() font.Face {
	if b.face != nil || b.faceErr != nil {
		return b.face
	}

	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		b.face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    b.fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	if err != nil {
		b.faceErr = err
		gg3d.Logger().Warn("raster: label font unavailable", "err", err)
		return nil
	}
	return b.face
}
