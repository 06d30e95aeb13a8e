package gg3d

// PolygonStyle describes how a projected face is painted.
// A StrokeWidth of zero disables the outline.
type PolygonStyle struct {
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
}

// Stroked reports whether an outline should be drawn.
func (s PolygonStyle) Stroked() bool {
	return s.StrokeWidth > 0 && s.Stroke.A > 0
}

// Backend is the 2D drawing surface the pipeline paints into.
// Implementations live in the backend/ sub-packages.
type Backend interface {
	// DrawPolygon begins a path at points[0], lines to every following
	// point, closes it, fills it and, if the style asks for it, strokes it.
	DrawPolygon(points []Point, style PolygonStyle)
}

// TextBackend is implemented by backends that can draw text labels.
type TextBackend interface {
	DrawText(at Point, text string, c RGBA)
}

// Clearer is implemented by backends that can reset the surface before a
// frame.
type Clearer interface {
	Clear(c RGBA)
}
