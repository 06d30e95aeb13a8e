package gg3d

// Flat shading: an ambient floor plus a Lambertian diffuse term.
const (
	ambientLevel = 0.3
	diffuseLevel = 0.7
)

// FaceNormal returns normalize((v1-v0) × (v2-v0)), or the zero vector for
// fewer than three vertices or collinear leading vertices.
func FaceNormal(vertices []Vec3) Vec3 {
	if len(vertices) < 3 {
		return Vec3{}
	}
	v0 := vertices[0]
	return vertices[1].Sub(v0).Cross(vertices[2].Sub(v0)).Normalize()
}

// Brightness returns the Lambertian term clamp(-normal·normalize(light), 0, 1)
// for light travelling in direction light.
func Brightness(normal, light Vec3) float64 {
	return clamp01(-normal.Dot(light.Normalize()))
}

// ShadeColor scales base by ambient + brightness*diffuse.
func ShadeColor(base RGBA, brightness float64) RGBA {
	return base.Scale(ambientLevel + brightness*diffuseLevel)
}
