package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend"
)

// ErrNilImage is returned by New when no destination image is given.
var ErrNilImage = errors.New("raster: nil image")

// Name is the registry name of this target.
const Name = "png"

func init() {
	backend.Register(Name, func(width, height int) (backend.Target, error) {
		return NewImage(width, height), nil
	})
}

// Backend paints projected faces into an *image.RGBA with anti-aliased
// coverage from golang.org/x/image/vector.
type Backend struct {
	img        *image.RGBA
	z          vector.Rasterizer
	background gg3d.RGBA
	fontSize   float64
	face       font.Face
	faceErr    error
}

// New wraps an existing image. The image is cleared to the background
// color only if WithBackground is given.
func New(img *image.RGBA, opts ...Option) (*Backend, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Backend{
		img:        img,
		background: o.background,
		fontSize:   o.fontSize,
		face:       o.face,
	}
	if o.clear {
		b.Clear(o.background)
	}
	return b, nil
}

// NewImage allocates a width x height image cleared to the background
// color (white unless WithBackground says otherwise).
func NewImage(width, height int, opts ...Option) *Backend {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	opts = append([]Option{WithBackground(gg3d.White)}, opts...)
	b, _ := New(img, opts...)
	return b
}

// Image returns the destination image.
func (b *Backend) Image() *image.RGBA { return b.img }

// Name implements backend.Target.
func (b *Backend) Name() string { return Name }

// Clear fills the whole image with c, replacing existing pixels.
func (b *Backend) Clear(c gg3d.RGBA) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawPolygon fills the closed polygon and, when the style asks for it,
// strokes its outline.
func (b *Backend) DrawPolygon(points []gg3d.Point, style gg3d.PolygonStyle) {
	if len(points) < 2 {
		return
	}
	if len(points) >= 3 && style.Fill.A > 0 {
		b.fill([][]gg3d.Point{points}, style.Fill)
	}
	if style.Stroked() {
		b.fill(strokeOutline(points, style.StrokeWidth), style.Stroke)
	}
}

// fill rasterizes the sub-paths clipped to their bounding box and
// composites c over the image.
func (b *Backend) fill(paths [][]gg3d.Point, c gg3d.RGBA) {
	r := pathBounds(paths).Intersect(b.img.Bounds())
	if r.Empty() {
		return
	}

	b.z.Reset(r.Dx(), r.Dy())
	b.z.DrawOp = draw.Over
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		b.z.MoveTo(float32(path[0].X-ox), float32(path[0].Y-oy))
		for _, p := range path[1:] {
			b.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		b.z.ClosePath()
	}
	b.z.Draw(b.img, r, image.NewUniform(c.NRGBA()), image.Point{})
}

// pathBounds returns the integer pixel rectangle covering every point.
func pathBounds(paths [][]gg3d.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range paths {
		for _, p := range path {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	// Keep the rasterizer small for points far off screen.
	const limit = 1 << 20
	return image.Rect(
		int(math.Floor(clampCoord(minX, limit))),
		int(math.Floor(clampCoord(minY, limit))),
		int(math.Ceil(clampCoord(maxX, limit)))+1,
		int(math.Ceil(clampCoord(maxY, limit)))+1,
	)
}

func clampCoord(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

// strokeOutline expands each closed-polygon edge into a quad of the given
// width plus a square joint at every vertex. All quads share one winding
// so overlaps saturate instead of cancelling.
func strokeOutline(points []gg3d.Point, width float64) [][]gg3d.Point {
	h := width / 2
	n := len(points)
	out := make([][]gg3d.Point, 0, 2*n)
	for i := range n {
		a, c := points[i], points[(i+1)%n]
		dx, dy := c.X-a.X, c.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*h, dx/l*h
		out = append(out, []gg3d.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: c.X + nx, Y: c.Y + ny},
			{X: c.X - nx, Y: c.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
	}
	for _, p := range points {
		out = append(out, []gg3d.Point{
			{X: p.X - h, Y: p.Y - h},
			{X: p.X - h, Y: p.Y + h},
			{X: p.X + h, Y: p.Y + h},
			{X: p.X + h, Y: p.Y - h},
		})
	}
	return out
}

// Encode writes the image as PNG.
func (b *Backend) Encode(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path as PNG.
func (b *Backend) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: %w", cerr)
		}
	}()
	return b.Encode(f)
}
