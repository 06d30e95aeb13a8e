// Package canvas implements a gg3d drawing backend on top of the draw2d
// path API (begin path, move, line, close, fill, stroke).
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend"
)

// ErrNilImage is returned by New when no destination image is given.
var ErrNilImage = errors.New("canvas: nil image")

// Name is the registry name of this target.
const Name = "canvas"

func init() {
	backend.Register(Name, func(width, height int) (backend.Target, error) {
		img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
		b, err := New(img)
		if err != nil {
			return nil, err
		}
		b.Clear(gg3d.White)
		return b, nil
	})
}

// Backend paints through a draw2d graphic context.
type Backend struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
}

// New creates a backend drawing into img.
func New(img *image.RGBA) (*Backend, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineJoin(draw2d.RoundJoin)
	gc.SetLineCap(draw2d.RoundCap)
	return &Backend{img: img, gc: gc}, nil
}

// Image returns the destination image.
func (b *Backend) Image() *image.RGBA { return b.img }

// Name implements backend.Target.
func (b *Backend) Name() string { return Name }

// Clear replaces every pixel with c.
func (b *Backend) Clear(c gg3d.RGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawPolygon traces the closed path and fills, strokes or both.
func (b *Backend) DrawPolygon(points []gg3d.Point, style gg3d.PolygonStyle) {
	if len(points) < 2 {
		return
	}
	fill := len(points) >= 3 && style.Fill.A > 0
	stroke := style.Stroked()
	if !fill && !stroke {
		return
	}

	gc := b.gc
	gc.BeginPath()
	gc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()

	gc.SetFillColor(style.Fill.NRGBA())
	gc.SetStrokeColor(style.Stroke.NRGBA())
	gc.SetLineWidth(style.StrokeWidth)

	switch {
	case fill && stroke:
		gc.FillStroke()
	case fill:
		gc.Fill()
	default:
		gc.Stroke()
	}
}

// Encode writes the image as PNG.
func (b *Backend) Encode(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path using draw2dimg's PNG helper.
func (b *Backend) SavePNG(path string) error {
	if err := draw2dimg.SaveToPngFile(path, b.img); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}
