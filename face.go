package gg3d

// Face is a planar polygon of at least three vertices in a shape's local
// space. Vertices wind counter-clockwise when seen from the front, so
// (v1-v0) × (v2-v0) points out of the solid.
//
// Normal is an optional explicit unit normal. It is given in local space
// and rotates with the shape, so do not pass world-space normals. The
// zero vector means "derive from the winding".
type Face struct {
	Vertices []Vec3
	Normal   Vec3
}

// NewFace creates a face from vertices with a derived normal.
func NewFace(vertices ...Vec3) Face {
	return Face{Vertices: vertices}
}

// FaceSource produces faces in local space. Primitive generators
// implement only this; Shape supplies the transform, shading, projection
// and painting.
type FaceSource interface {
	ComputeFaces() []Face
}

// FaceDrawer paints a projected face. The owner of a buffered face
// receives it back through DrawFace once the frame is sorted.
type FaceDrawer interface {
	DrawFace(ctx *Context3D, f ProjectedFace)
}

// ProjectedFace is a shaded, screen-space face ready to paint.
// It lives for a single frame.
type ProjectedFace struct {
	Owner  FaceDrawer
	Points []Point
	Style  PolygonStyle

	// Depth is the mean clip-space z of the face's vertices.
	// Larger is farther. It is a sort key only.
	Depth float64
}
