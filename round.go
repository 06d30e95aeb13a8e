package gg3d

import "math"

const (
	defaultSegments = 24
	defaultRings    = 12
)

// ringPoint returns the point at angle a on a circle of radius r in the
// plane y. a=0 lies on +Z and increasing a turns toward +X.
func ringPoint(r, a, y float64) Vec3 {
	return Vec3{X: r * math.Sin(a), Y: y, Z: r * math.Cos(a)}
}

func segmentsOrDefault(n int) int {
	if n < 3 {
		return defaultSegments
	}
	return n
}

// ring returns n points of a circle, counter-clockwise seen from +Y.
func ring(r, y float64, n int) []Vec3 {
	pts := make([]Vec3, n)
	for i := range pts {
		pts[i] = ringPoint(r, 2*math.Pi*float64(i)/float64(n), y)
	}
	return pts
}

func reversed(pts []Vec3) []Vec3 {
	out := make([]Vec3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// Cylinder is a capped cylinder along Y, centered on the origin.
type Cylinder struct {
	Radius   float64
	Height   float64
	Segments int // around the axis; values below 3 use a default
}

// ComputeFaces returns the side quads and both caps.
func (c Cylinder) ComputeFaces() []Face {
	n := segmentsOrDefault(c.Segments)
	h := c.Height / 2
	bottom := ring(c.Radius, -h, n)
	top := ring(c.Radius, h, n)

	faces := make([]Face, 0, n+2)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, NewFace(bottom[i], bottom[j], top[j], top[i]))
	}
	faces = append(faces,
		NewFace(top...),
		NewFace(reversed(bottom)...),
	)
	return faces
}

// Cone has its base on y = -Height/2 and its apex on y = +Height/2.
type Cone struct {
	Radius   float64
	Height   float64
	Segments int // around the axis; values below 3 use a default
}

// ComputeFaces returns the side triangles and the base.
func (c Cone) ComputeFaces() []Face {
	n := segmentsOrDefault(c.Segments)
	h := c.Height / 2
	base := ring(c.Radius, -h, n)
	apex := V3(0, h, 0)

	faces := make([]Face, 0, n+1)
	for i := 0; i < n; i++ {
		faces = append(faces, NewFace(base[i], base[(i+1)%n], apex))
	}
	return append(faces, NewFace(reversed(base)...))
}
