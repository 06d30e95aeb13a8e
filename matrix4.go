package gg3d

import "math"

// Matrix4 is a 4x4 homogeneous transformation matrix stored in
// column-major order: element (row, col) lives at m[col*4+row].
//
// Memory layout (indices):
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Matrix4 is a value type. Builders return new matrices.
type Matrix4 [16]float64

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col).
func (m Matrix4) At(row, col int) float64 {
	return m[col*4+row]
}

// Multiply returns the matrix product m * b. Applied to a point, b acts
// first and m second.
func (m Matrix4) Multiply(b Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Translate right-multiplies a translation by v onto m.
func (m Matrix4) Translate(v Vec3) Matrix4 {
	t := Identity()
	t[12], t[13], t[14] = v.X, v.Y, v.Z
	return m.Multiply(t)
}

// RotateX right-multiplies a rotation of angle radians about the X axis.
func (m Matrix4) RotateX(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.Multiply(Matrix4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	})
}

// RotateY right-multiplies a rotation of angle radians about the Y axis.
func (m Matrix4) RotateY(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.Multiply(Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	})
}

// RotateZ right-multiplies a rotation of angle radians about the Z axis.
func (m Matrix4) RotateZ(angle float64) Matrix4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return m.Multiply(Matrix4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// LookAt builds a view matrix for a camera at eye looking at target.
//
// The basis is zAxis = normalize(eye-target), xAxis = normalize(up × zAxis),
// yAxis = zAxis × xAxis. The caller must not pass an up vector parallel to
// the view direction: the basis is singular in that case.
func LookAt(eye, target, up Vec3) Matrix4 {
	z := eye.Sub(target).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return Matrix4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// Perspective builds a finite-far perspective projection. fovy is the
// vertical field of view in radians, aspect is width/height. Clip-space
// w equals -z of the camera-space point.
func Perspective(fovy, aspect, near, far float64) Matrix4 {
	f := 1 / math.Tan(fovy/2)
	nf := 1 / (near - far)

	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Orthographic builds an orthographic projection of the given box.
func Orthographic(left, right, bottom, top, near, far float64) Matrix4 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return Matrix4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// TransformPoint transforms p as a point (w=1) and performs the
// perspective divide. A resulting w of exactly zero divides by 1 instead,
// so the result stays finite.
func (m Matrix4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{X: x / w, Y: y / w, Z: z / w}
}

// TransformDirection transforms d as a direction (w=0): translation and
// the projective row are ignored.
func (m Matrix4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		Y: m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		Z: m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Matrix4) ApproxEqual(b Matrix4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
