package gg3d

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"mul", a.Mul(2), V3(2, 4, 6)},
		{"neg", a.Neg(), V3(-1, -2, -3)},
		{"lerp 0", a.Lerp(b, 0), a},
		{"lerp 1", a.Lerp(b, 1), b},
		{"lerp half", a.Lerp(b, 0.5), V3(2.5, -1.5, 4.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.want, testEpsilon) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
	if a != V3(1, 2, 3) {
		t.Errorf("operands must not be modified, a = %+v", a)
	}
}

func TestVec3Cross(t *testing.T) {
	x, y, z := V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x cross y", x.Cross(y), z},
		{"y cross z", y.Cross(z), x},
		{"z cross x", z.Cross(x), y},
		{"y cross x", y.Cross(x), z.Neg()},
		{"parallel", x.Cross(x.Mul(3)), Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.want, testEpsilon) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3DotAndLength(t *testing.T) {
	if got := V3(1, 2, 3).Dot(V3(4, -5, 6)); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := V3(3, 4, 12).Length(); got != 13 {
		t.Errorf("Length = %v, want 13", got)
	}
	if got := V3(1, 1, 1).Distance(V3(4, 5, 1)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	vectors := []Vec3{
		V3(1, 0, 0),
		V3(3, 4, 0),
		V3(-2, 7, 0.5),
		V3(1e-8, 1e-8, 1e-8),
		V3(1e8, -3e7, 42),
	}
	for _, v := range vectors {
		u := v.Normalize()
		if l := u.Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Normalize(%+v).Length() = %v, want 1", v, l)
		}
		if d := u.Dot(u); math.Abs(d-1) > 1e-12 {
			t.Errorf("dot(u,u) = %v for u = %+v", d, u)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if !got.IsZero() {
		t.Errorf("Normalize(zero) = %+v, want zero vector", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Error("Normalize(zero) produced NaN")
	}
}
