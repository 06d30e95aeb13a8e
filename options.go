package gg3d

// Context3DOption configures a Context3D during creation.
//
// Example:
//
//	ctx := gg3d.NewContext3D(800, 600,
//	    gg3d.WithBackend(backend),
//	    gg3d.WithGlobalSort(true),
//	)
type Context3DOption func(*context3DOptions)

type context3DOptions struct {
	backend    Backend
	light      Vec3
	globalSort bool
}

func defaultContext3DOptions() context3DOptions {
	return context3DOptions{
		light: Vec3{X: 0, Y: 0, Z: -1}, // looking along -Z
	}
}

// WithBackend attaches the 2D drawing backend faces are painted with.
func WithBackend(b Backend) Context3DOption {
	return func(o *context3DOptions) {
		o.backend = b
	}
}

// WithLightDirection sets the direction light travels. The default looks
// along -Z, so faces pointing at a camera on +Z are fully lit.
func WithLightDirection(d Vec3) Context3DOption {
	return func(o *context3DOptions) {
		o.light = d
	}
}

// WithGlobalSort requests the shared face buffer at every outermost frame,
// giving correct painter's-algorithm ordering across shapes.
func WithGlobalSort(enabled bool) Context3DOption {
	return func(o *context3DOptions) {
		o.globalSort = enabled
	}
}

// CameraOption configures a Camera during creation.
type CameraOption func(*Camera)

// WithPosition sets the initial camera position.
func WithPosition(p Vec3) CameraOption {
	return func(c *Camera) { c.position = p }
}

// WithTarget sets the initial point the camera looks at.
func WithTarget(t Vec3) CameraOption {
	return func(c *Camera) { c.target = t }
}

// WithUp sets the initial up vector.
func WithUp(up Vec3) CameraOption {
	return func(c *Camera) { c.up = up }
}

// WithFOV sets the vertical field of view in degrees.
func WithFOV(degrees float64) CameraOption {
	return func(c *Camera) { c.fov = degrees }
}

// WithClipPlanes sets the near and far plane distances.
func WithClipPlanes(near, far float64) CameraOption {
	return func(c *Camera) { c.near, c.far = near, far }
}

// WithProjection selects perspective or orthographic projection.
func WithProjection(p Projection) CameraOption {
	return func(c *Camera) { c.projection = p }
}

// ShapeOption configures a Shape during creation.
type ShapeOption func(*Shape)

// WithShapePosition sets the shape's translation.
func WithShapePosition(p Vec3) ShapeOption {
	return func(s *Shape) { s.Position = p }
}

// WithShapeRotation sets the shape's rotation in radians about its
// X, Y and Z axes.
func WithShapeRotation(r Vec3) ShapeOption {
	return func(s *Shape) { s.Rotation = r }
}

// WithFill sets the base fill color before shading.
func WithFill(c RGBA) ShapeOption {
	return func(s *Shape) { s.Style.Fill = c }
}

// WithStroke outlines every face with the given color and width.
func WithStroke(c RGBA, width float64) ShapeOption {
	return func(s *Shape) {
		s.Style.Stroke = c
		s.Style.StrokeWidth = width
	}
}
