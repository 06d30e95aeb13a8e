package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend"
)

func square(x0, y0, x1, y1 float64) []gg3d.Point {
	return []gg3d.Point{gg3d.Pt(x0, y0), gg3d.Pt(x1, y0), gg3d.Pt(x1, y1), gg3d.Pt(x0, y1)}
}

func TestNewNilImage(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("New(nil) error = %v, want ErrNilImage", err)
	}
}

func TestNewKeepsPixelsWithoutBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 9, A: 255})

	if _, err := New(img); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := img.RGBAAt(1, 1); got.R != 9 {
		t.Errorf("pixel was overwritten: %v", got)
	}
}

func TestNewImageBackground(t *testing.T) {
	b := NewImage(8, 8)
	if got := b.Image().RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("default background = %v, want white", got)
	}

	b = NewImage(8, 8, WithBackground(gg3d.Black))
	if got := b.Image().RGBAAt(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background = %v, want black", got)
	}
}

func TestDrawPolygonFill(t *testing.T) {
	b := NewImage(20, 20)
	b.DrawPolygon(square(5, 5, 15, 15), gg3d.PolygonStyle{Fill: gg3d.Red})

	img := b.Image()
	if got := img.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside pixel = %v, want white", got)
	}
}

func TestDrawPolygonWindingIndependent(t *testing.T) {
	b := NewImage(20, 20)
	pts := square(5, 5, 15, 15)
	reversed := []gg3d.Point{pts[3], pts[2], pts[1], pts[0]}
	b.DrawPolygon(reversed, gg3d.PolygonStyle{Fill: gg3d.Blue})

	if got := b.Image().RGBAAt(10, 10); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("inside pixel = %v, want blue", got)
	}
}

func TestDrawPolygonStroke(t *testing.T) {
	b := NewImage(40, 40)
	b.DrawPolygon(square(10, 10, 30, 30), gg3d.PolygonStyle{
		Fill:        gg3d.White,
		Stroke:      gg3d.Black,
		StrokeWidth: 4,
	})

	img := b.Image()
	for _, p := range []image.Point{{20, 10}, {30, 20}, {20, 30}, {10, 20}, {10, 10}, {30, 30}} {
		if got := img.RGBAAt(p.X, p.Y); got.R > 10 {
			t.Errorf("edge pixel %v = %v, want dark", p, got)
		}
	}
	if got := img.RGBAAt(20, 20); got.R != 255 {
		t.Errorf("center pixel = %v, want unstroked", got)
	}
}

func TestDrawPolygonOffscreenIsClipped(t *testing.T) {
	b := NewImage(10, 10)
	// Entirely outside: must not panic or paint.
	b.DrawPolygon(square(-50, -50, -20, -20), gg3d.PolygonStyle{Fill: gg3d.Red})
	// Partly outside: covers the whole image.
	b.DrawPolygon(square(-1000, -1000, 1000, 1000), gg3d.PolygonStyle{Fill: gg3d.Green})

	if got := b.Image().RGBAAt(5, 5); got.G != 255 || got.R != 0 {
		t.Errorf("pixel = %v, want green", got)
	}
}

func TestDrawPolygonDegenerate(t *testing.T) {
	b := NewImage(10, 10)
	b.DrawPolygon(nil, gg3d.PolygonStyle{Fill: gg3d.Red})
	b.DrawPolygon([]gg3d.Point{gg3d.Pt(1, 1)}, gg3d.PolygonStyle{Fill: gg3d.Red})
	b.DrawPolygon(square(2, 2, 8, 8), gg3d.PolygonStyle{Fill: gg3d.RGBA{R: 1}})

	if got := b.Image().RGBAAt(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want untouched white", got)
	}
}

func TestClear(t *testing.T) {
	b := NewImage(6, 6)
	b.Clear(gg3d.RGB(0, 1, 0))
	if got := b.Image().RGBAAt(0, 5); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Clear() pixel = %v", got)
	}
}

func TestDrawText(t *testing.T) {
	b := NewImage(80, 30, WithFontSize(20))
	b.DrawText(gg3d.Pt(4, 22), "gg3d", gg3d.Black)

	dark := 0
	img := b.Image()
	for y := range 30 {
		for x := range 80 {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("DrawText() painted nothing")
	}
	if w := b.MeasureText("gg3d"); w <= 0 {
		t.Errorf("MeasureText() = %v, want > 0", w)
	}
}

func TestEncodePNG(t *testing.T) {
	b := NewImage(12, 7)
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{12, 7}) {
		t.Errorf("decoded size = %v", got)
	}
}

func TestRegistered(t *testing.T) {
	target, err := backend.New(Name, 10, 10)
	if err != nil {
		t.Fatalf("backend.New(%q) error = %v", Name, err)
	}
	if target.Name() != Name {
		t.Errorf("Name() = %q", target.Name())
	}
	var _ gg3d.TextBackend = target.(*Backend)
	var _ gg3d.Clearer = target.(*Backend)
}

func TestRenderCube(t *testing.T) {
	b := NewImage(100, 100)
	ctx := gg3d.NewContext3D(100, 100, gg3d.WithBackend(b))
	cam := gg3d.NewCamera(ctx, gg3d.WithPosition(gg3d.V3(3, 3, 6)))
	defer cam.Dispose()

	ctx.RenderFrame(gg3d.NewShape(gg3d.Cube(2), gg3d.WithFill(gg3d.Red)))

	got := b.Image().RGBAAt(50, 50)
	if got.G > 10 || got.R < 50 {
		t.Errorf("center pixel = %v, want a shade of red", got)
	}
}
