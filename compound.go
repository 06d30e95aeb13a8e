package gg3d

import (
	"errors"
	"fmt"
)

// ErrInvalidMesh is returned when mesh indices do not describe triangles
// over the given vertices.
var ErrInvalidMesh = errors.New("gg3d: invalid mesh")

// Part places a FaceSource inside a Compound. The part transform uses the
// same order as Shape: translate by Offset, then rotate about X, Y and Z.
type Part struct {
	Source   FaceSource
	Offset   Vec3
	Rotation Vec3
}

// Compound is a solid assembled from several parts.
type Compound []Part

// ComputeFaces returns the faces of every part in the compound's local
// space.
func (c Compound) ComputeFaces() []Face {
	var faces []Face
	for _, p := range c {
		if p.Source == nil {
			continue
		}
		m := Identity().
			Translate(p.Offset).
			RotateX(p.Rotation.X).
			RotateY(p.Rotation.Y).
			RotateZ(p.Rotation.Z)
		for _, f := range p.Source.ComputeFaces() {
			verts := make([]Vec3, len(f.Vertices))
			for i, v := range f.Vertices {
				verts[i] = m.TransformPoint(v)
			}
			n := f.Normal
			if !n.IsZero() {
				n = m.TransformDirection(n).Normalize()
			}
			faces = append(faces, Face{Vertices: verts, Normal: n})
		}
	}
	return faces
}

// Arrow points along +Y from the origin: a cylindrical shaft topped by a
// cone. Zero radii and head length fall back to proportions of Length.
type Arrow struct {
	Length      float64
	ShaftRadius float64
	HeadRadius  float64
	HeadLength  float64
	Segments    int
}

// ComputeFaces returns the shaft and head faces.
func (a Arrow) ComputeFaces() []Face {
	shaftR, headR, headL := a.ShaftRadius, a.HeadRadius, a.HeadLength
	if shaftR <= 0 {
		shaftR = a.Length * 0.03
	}
	if headR <= 0 {
		headR = shaftR * 2.5
	}
	if headL <= 0 || headL > a.Length {
		headL = a.Length * 0.25
	}
	shaftL := a.Length - headL

	return Compound{
		{
			Source: Cylinder{Radius: shaftR, Height: shaftL, Segments: a.Segments},
			Offset: V3(0, shaftL/2, 0),
		},
		{
			Source: Cone{Radius: headR, Height: headL, Segments: a.Segments},
			Offset: V3(0, shaftL+headL/2, 0),
		},
	}.ComputeFaces()
}

// Mesh is a fixed list of faces, typically imported or tessellated.
type Mesh struct {
	Faces []Face
}

// ComputeFaces returns the mesh faces. Callers must not modify them.
func (m *Mesh) ComputeFaces() []Face {
	if m == nil {
		return nil
	}
	return m.Faces
}

// NewTriangleMesh builds a mesh from an indexed triangle list. Each
// consecutive index triple is one counter-clockwise triangle.
func NewTriangleMesh(vertices []Vec3, indices []int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(indices))
	}
	faces := make([]Face, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		tri := make([]Vec3, 3)
		for k := 0; k < 3; k++ {
			idx := indices[i+k]
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidMesh, idx, len(vertices))
			}
			tri[k] = vertices[idx]
		}
		faces = append(faces, Face{Vertices: tri})
	}
	return &Mesh{Faces: faces}, nil
}
