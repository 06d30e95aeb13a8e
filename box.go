package gg3d

// Box is an axis-aligned cuboid centered on the origin.
type Box struct {
	Width  float64 // along X
	Height float64 // along Y
	Depth  float64 // along Z
}

// Cube returns a Box with equal sides.
func Cube(size float64) Box {
	return Box{Width: size, Height: size, Depth: size}
}

// ComputeFaces returns six outward-wound quadrilaterals.
func (b Box) ComputeFaces() []Face {
	x, y, z := b.Width/2, b.Height/2, b.Depth/2
	return []Face{
		NewFace(V3(x, -y, -z), V3(x, y, -z), V3(x, y, z), V3(x, -y, z)),     // +X
		NewFace(V3(-x, -y, -z), V3(-x, -y, z), V3(-x, y, z), V3(-x, y, -z)), // -X
		NewFace(V3(-x, y, -z), V3(-x, y, z), V3(x, y, z), V3(x, y, -z)),     // +Y
		NewFace(V3(-x, -y, -z), V3(x, -y, -z), V3(x, -y, z), V3(-x, -y, z)), // -Y
		NewFace(V3(-x, -y, z), V3(x, -y, z), V3(x, y, z), V3(-x, y, z)),     // +Z
		NewFace(V3(-x, -y, -z), V3(-x, y, -z), V3(x, y, -z), V3(x, -y, -z)), // -Z
	}
}

// Plane is a flat rectangle in the XZ plane facing +Y, split into a
// Divisions×Divisions grid so that it sorts well against other shapes.
type Plane struct {
	Width     float64
	Depth     float64
	Divisions int
}

// ComputeFaces returns the grid cells.
func (p Plane) ComputeFaces() []Face {
	n := max(p.Divisions, 1)
	x0, z0 := -p.Width/2, -p.Depth/2
	dx, dz := p.Width/float64(n), p.Depth/float64(n)

	faces := make([]Face, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xa, xb := x0+float64(i)*dx, x0+float64(i+1)*dx
			za, zb := z0+float64(j)*dz, z0+float64(j+1)*dz
			faces = append(faces, NewFace(V3(xa, 0, za), V3(xa, 0, zb), V3(xb, 0, zb), V3(xb, 0, za)))
		}
	}
	return faces
}
