package gg3d

// recordingBackend records every polygon painted into it.
type recordingBackend struct {
	polygons []recordedPolygon
}

type recordedPolygon struct {
	points []Point
	style  PolygonStyle
}

func (r *recordingBackend) DrawPolygon(points []Point, style PolygonStyle) {
	cp := make([]Point, len(points))
	copy(cp, points)
	r.polygons = append(r.polygons, recordedPolygon{points: cp, style: style})
}

// recordingDrawer records faces handed back by the context.
type recordingDrawer struct {
	name  string
	drawn *[]drawnFace
}

type drawnFace struct {
	owner string
	depth float64
}

func (d recordingDrawer) DrawFace(_ *Context3D, f ProjectedFace) {
	*d.drawn = append(*d.drawn, drawnFace{owner: d.name, depth: f.Depth})
}

// faceAt returns a projected face owned by d with the given depth.
func faceAt(d FaceDrawer, depth float64) ProjectedFace {
	return ProjectedFace{
		Owner:  d,
		Points: []Point{{0, 0}, {1, 0}, {0, 1}},
		Depth:  depth,
	}
}
