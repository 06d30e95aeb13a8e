package gg3d

import "math"

// Sphere is a UV sphere centered on the origin with its poles on ±Y.
type Sphere struct {
	Radius   float64
	Rings    int // latitude bands; values below 2 use a default
	Segments int // longitude slices; values below 3 use a default
}

func (s Sphere) point(theta, phi float64) Vec3 {
	st := math.Sin(theta)
	return Vec3{
		X: s.Radius * st * math.Sin(phi),
		Y: s.Radius * math.Cos(theta),
		Z: s.Radius * st * math.Cos(phi),
	}
}

// ComputeFaces returns quads between latitude bands and triangles around
// the poles.
func (s Sphere) ComputeFaces() []Face {
	rings := s.Rings
	if rings < 2 {
		rings = defaultRings
	}
	segs := segmentsOrDefault(s.Segments)

	faces := make([]Face, 0, rings*segs)
	for j := 0; j < rings; j++ {
		t0 := math.Pi * float64(j) / float64(rings)
		t1 := math.Pi * float64(j+1) / float64(rings)
		for i := 0; i < segs; i++ {
			p0 := 2 * math.Pi * float64(i) / float64(segs)
			p1 := 2 * math.Pi * float64(i+1) / float64(segs)

			a, b := s.point(t0, p0), s.point(t1, p0)
			c, d := s.point(t1, p1), s.point(t0, p1)
			switch j {
			case 0:
				faces = append(faces, NewFace(V3(0, s.Radius, 0), b, c))
			case rings - 1:
				faces = append(faces, NewFace(a, V3(0, -s.Radius, 0), d))
			default:
				faces = append(faces, NewFace(a, b, c, d))
			}
		}
	}
	return faces
}

// Torus lies in the XZ plane around the Y axis.
type Torus struct {
	MajorRadius float64 // center of the tube to the origin
	MinorRadius float64 // tube radius
	Rings       int     // slices around the Y axis; values below 3 use a default
	Segments    int     // slices around the tube; values below 3 use a default
}

func (t Torus) point(u, v float64) Vec3 {
	r := t.MajorRadius + t.MinorRadius*math.Cos(v)
	return Vec3{
		X: r * math.Sin(u),
		Y: t.MinorRadius * math.Sin(v),
		Z: r * math.Cos(u),
	}
}

// ComputeFaces returns one quad per (ring, segment) cell.
func (t Torus) ComputeFaces() []Face {
	rings := segmentsOrDefault(t.Rings)
	segs := segmentsOrDefault(t.Segments)

	faces := make([]Face, 0, rings*segs)
	for i := 0; i < rings; i++ {
		u0 := 2 * math.Pi * float64(i) / float64(rings)
		u1 := 2 * math.Pi * float64(i+1) / float64(rings)
		for j := 0; j < segs; j++ {
			v0 := 2 * math.Pi * float64(j) / float64(segs)
			v1 := 2 * math.Pi * float64(j+1) / float64(segs)
			faces = append(faces, NewFace(
				t.point(u0, v0), t.point(u1, v0), t.point(u1, v1), t.point(u0, v1),
			))
		}
	}
	return faces
}
