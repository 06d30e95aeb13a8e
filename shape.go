package gg3d

// Style is the paint of a shape before shading.
type Style struct {
	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64
}

// Shape places a FaceSource in the world and runs the shared pipeline:
// transform, normal resolution, flat shading, projection, and either
// local back-to-front painting or enqueueing into the context's face
// buffer.
//
// Position and Rotation are read at every Render; nothing is cached
// between frames.
type Shape struct {
	Geometry FaceSource

	// Position is the translation applied to every vertex.
	Position Vec3

	// Rotation holds angles in radians about the X, Y and Z axes,
	// applied in that order after the translation is composed.
	Rotation Vec3

	Style Style
}

// NewShape wraps geometry with a gray fill and no outline.
//
// Example:
//
//	cube := gg3d.NewShape(gg3d.Box{Width: 2, Height: 2, Depth: 2},
//	    gg3d.WithFill(gg3d.RGB(0.2, 0.5, 0.9)),
//	    gg3d.WithShapeRotation(gg3d.V3(0.4, 0.6, 0)),
//	)
func NewShape(geometry FaceSource, opts ...ShapeOption) *Shape {
	s := &Shape{
		Geometry: geometry,
		Style:    Style{Fill: Gray},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transform returns identity · translate(Position) · rotX · rotY · rotZ.
func (s *Shape) Transform() Matrix4 {
	return Identity().
		Translate(s.Position).
		RotateX(s.Rotation.X).
		RotateY(s.Rotation.Y).
		RotateZ(s.Rotation.Z)
}

// WorldFaces returns the geometry's faces transformed into world space,
// each with a resolved unit normal.
func (s *Shape) WorldFaces() []Face {
	if s.Geometry == nil {
		return nil
	}
	local := s.Geometry.ComputeFaces()
	if len(local) == 0 {
		return nil
	}

	m := s.Transform()
	out := make([]Face, 0, len(local))
	for _, f := range local {
		if len(f.Vertices) < 3 {
			continue
		}
		verts := make([]Vec3, len(f.Vertices))
		for i, v := range f.Vertices {
			verts[i] = m.TransformPoint(v)
		}
		var n Vec3
		if f.Normal.IsZero() {
			n = FaceNormal(verts)
		} else {
			n = m.TransformDirection(f.Normal).Normalize()
		}
		out = append(out, Face{Vertices: verts, Normal: n})
	}
	return out
}

// ProjectFaces shades and projects the shape's faces for ctx, in
// geometry order.
func (s *Shape) ProjectFaces(ctx *Context3D) []ProjectedFace {
	if ctx == nil {
		return nil
	}
	faces := s.WorldFaces()
	if len(faces) == 0 {
		return nil
	}

	light := ctx.LightDirection()
	out := make([]ProjectedFace, 0, len(faces))
	for _, f := range faces {
		pts := make([]Point, len(f.Vertices))
		var depth float64
		for i, v := range f.Vertices {
			pts[i] = ctx.Project(v)
			depth += ctx.ProjectDepth(v)
		}
		out = append(out, ProjectedFace{
			Owner:  s,
			Points: pts,
			Style: PolygonStyle{
				Fill:        ShadeColor(s.Style.Fill, Brightness(f.Normal, light)),
				Stroke:      s.Style.Stroke,
				StrokeWidth: s.Style.StrokeWidth,
			},
			Depth: depth / float64(len(f.Vertices)),
		})
	}
	return out
}

// Render draws the shape into ctx. If the context is collecting faces for
// a global sort, the faces are enqueued and painted at frame end;
// otherwise the shape sorts its own faces back to front and paints them
// now.
func (s *Shape) Render(ctx *Context3D) {
	faces := s.ProjectFaces(ctx)
	if len(faces) == 0 {
		return
	}
	if ctx.Enqueue(faces...) {
		return
	}
	sortBackToFront(faces)
	for _, f := range faces {
		s.DrawFace(ctx, f)
	}
}

// DrawFace paints one projected face with the context's backend.
func (s *Shape) DrawFace(ctx *Context3D, f ProjectedFace) {
	b := ctx.Backend()
	if b == nil || len(f.Points) < 3 {
		return
	}
	b.DrawPolygon(f.Points, f.Style)
}

// BoundingBox returns the screen-space bounds of every transformed vertex.
// It is empty when ctx is nil or the shape has no faces.
func (s *Shape) BoundingBox(ctx *Context3D) Rect {
	if ctx == nil {
		return Rect{}
	}
	var pts []Point
	for _, f := range s.WorldFaces() {
		for _, v := range f.Vertices {
			pts = append(pts, ctx.Project(v))
		}
	}
	return boundsOf(pts)
}
