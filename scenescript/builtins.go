package scenescript

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/sdfmesh"
)

type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// builder accumulates the scene while a script runs.
type builder struct {
	items      []*sexpItem
	owned      map[*sexpItem]bool
	camera     []gg3d.CameraOption
	light      *gg3d.Vec3
	background *gg3d.RGBA
	globalSort bool
}

func newBuilder() *builder {
	return &builder{owned: make(map[*sexpItem]bool)}
}

// scene returns the items no group has claimed, in creation order.
func (b *builder) scene() *Scene {
	s := &Scene{
		Camera:     b.camera,
		Light:      b.light,
		Background: b.background,
		GlobalSort: b.globalSort,
	}
	for _, it := range b.items {
		if !b.owned[it] {
			s.Items = append(s.Items, it.item)
		}
	}
	return s
}

func (b *builder) register(env *zygo.Zlisp) {
	fns := map[string]builtin{
		"vec3":         b.vec3,
		"rgb":          b.rgb,
		"box":          b.geometry("box", boxGeometry),
		"cube":         b.geometry("cube", cubeGeometry),
		"plane":        b.geometry("plane", planeGeometry),
		"sphere":       b.geometry("sphere", sphereGeometry),
		"cylinder":     b.geometry("cylinder", cylinderGeometry),
		"cone":         b.geometry("cone", coneGeometry),
		"torus":        b.geometry("torus", torusGeometry),
		"arrow":        b.geometry("arrow", arrowGeometry),
		"mesh":         b.geometry("mesh", meshGeometry),
		"group":        b.group,
		"camera":       b.cameraForm,
		"light":        b.lightForm,
		"background":   b.backgroundForm,
		"global_sort":  b.globalSortForm,
		"sdf_sphere":   sdfSphere,
		"sdf_box":      sdfBox,
		"sdf_cylinder": sdfCylinder,
		"union":        sdfCombine("union", sdfUnion),
		"difference":   sdfPair("difference", sdfDifference),
		"intersect":    sdfPair("intersect", sdfIntersect),
		"translate":    sdfTranslate,
	}
	for name, fn := range fns {
		env.AddFunction(name, fn)
	}
}

// (vec3 x y z)
func (b *builder) vec3(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	xyz, err := floats("vec3", args, 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpVec3{vec: gg3d.V3(xyz[0], xyz[1], xyz[2])}, nil
}

// (rgb r g b) or (rgb r g b a), channels in [0, 1]
func (b *builder) rgb(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) == 4 {
		c, err := floats("rgb", args, 4)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpColor{c: gg3d.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}}, nil
	}
	c, err := floats("rgb", args, 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpColor{c: gg3d.RGB(c[0], c[1], c[2])}, nil
}

func floats(form string, args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", form, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", form, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// geometryFunc builds a face source from the form's keyword arguments.
type geometryFunc func(a kwArgs) (gg3d.FaceSource, error)

// geometry wraps a geometry constructor with the placement and style
// keywords every shape accepts: :at, :rotate (degrees), :fill, :stroke
// and :stroke-width.
func (b *builder) geometry(kind string, build geometryFunc) builtin {
	return func(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		geom, err := build(a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
		}
		shape, err := styledShape(geom, a)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", kind, err)
		}
		it := &sexpItem{item: shape, kind: kind}
		b.items = append(b.items, it)
		return it, nil
	}
}

func styledShape(geom gg3d.FaceSource, a kwArgs) (*gg3d.Shape, error) {
	s := gg3d.NewShape(geom)
	if _, err := a.vec3Arg("at", &s.Position); err != nil {
		return nil, err
	}
	var deg gg3d.Vec3
	if ok, err := a.vec3Arg("rotate", &deg); err != nil {
		return nil, err
	} else if ok {
		s.Rotation = deg.Mul(math.Pi / 180)
	}
	if _, err := a.colorArg("fill", &s.Style.Fill); err != nil {
		return nil, err
	}
	if ok, err := a.colorArg("stroke", &s.Style.Stroke); err != nil {
		return nil, err
	} else if ok {
		s.Style.StrokeWidth = 1
	}
	if err := a.floatArg("stroke-width", &s.Style.StrokeWidth); err != nil {
		return nil, err
	}
	return s, nil
}

func boxGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Box{Width: 1, Height: 1, Depth: 1}
	if err := a.floatArg("width", &g.Width); err != nil {
		return nil, err
	}
	if err := a.floatArg("height", &g.Height); err != nil {
		return nil, err
	}
	if err := a.floatArg("depth", &g.Depth); err != nil {
		return nil, err
	}
	return g, nil
}

func cubeGeometry(a kwArgs) (gg3d.FaceSource, error) {
	size := 1.0
	if err := a.floatArg("size", &size); err != nil {
		return nil, err
	}
	return gg3d.Cube(size), nil
}

func planeGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Plane{Width: 1, Depth: 1, Divisions: 1}
	if err := a.floatArg("width", &g.Width); err != nil {
		return nil, err
	}
	if err := a.floatArg("depth", &g.Depth); err != nil {
		return nil, err
	}
	if err := a.intArg("divisions", &g.Divisions); err != nil {
		return nil, err
	}
	return g, nil
}

func sphereGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Sphere{Radius: 1}
	if err := a.floatArg("radius", &g.Radius); err != nil {
		return nil, err
	}
	if err := a.intArg("rings", &g.Rings); err != nil {
		return nil, err
	}
	if err := a.intArg("segments", &g.Segments); err != nil {
		return nil, err
	}
	return g, nil
}

func roundArgs(a kwArgs, radius, height *float64, segments *int) error {
	if err := a.floatArg("radius", radius); err != nil {
		return err
	}
	if err := a.floatArg("height", height); err != nil {
		return err
	}
	return a.intArg("segments", segments)
}

func cylinderGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Cylinder{Radius: 0.5, Height: 1}
	if err := roundArgs(a, &g.Radius, &g.Height, &g.Segments); err != nil {
		return nil, err
	}
	return g, nil
}

func coneGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Cone{Radius: 0.5, Height: 1}
	if err := roundArgs(a, &g.Radius, &g.Height, &g.Segments); err != nil {
		return nil, err
	}
	return g, nil
}

func torusGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Torus{MajorRadius: 1, MinorRadius: 0.3}
	if err := a.floatArg("major", &g.MajorRadius); err != nil {
		return nil, err
	}
	if err := a.floatArg("minor", &g.MinorRadius); err != nil {
		return nil, err
	}
	if err := a.intArg("rings", &g.Rings); err != nil {
		return nil, err
	}
	if err := a.intArg("segments", &g.Segments); err != nil {
		return nil, err
	}
	return g, nil
}

func arrowGeometry(a kwArgs) (gg3d.FaceSource, error) {
	g := gg3d.Arrow{Length: 1}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"length", &g.Length},
		{"shaft-radius", &g.ShaftRadius},
		{"head-radius", &g.HeadRadius},
		{"head-length", &g.HeadLength},
	}
	for _, f := range fields {
		if err := a.floatArg(f.name, f.dst); err != nil {
			return nil, err
		}
	}
	if err := a.intArg("segments", &g.Segments); err != nil {
		return nil, err
	}
	return g, nil
}

// (mesh solid :cells 24 ...)
func meshGeometry(a kwArgs) (gg3d.FaceSource, error) {
	if len(a.positional) != 1 {
		return nil, fmt.Errorf("requires one solid, got %d arguments", len(a.positional))
	}
	s, err := toSolid(a.positional[0])
	if err != nil {
		return nil, err
	}
	cells := sdfmesh.DefaultCells
	if err := a.intArg("cells", &cells); err != nil {
		return nil, err
	}
	return sdfmesh.New(s, cells)
}

// (group :sort true child...)
func (b *builder) group(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	g := gg3d.NewGroup()
	if err := a.boolArg("sort", &g.GlobalSort); err != nil {
		return zygo.SexpNull, fmt.Errorf("group: %w", err)
	}
	for i, arg := range a.positional {
		child, err := toItem(arg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("group: child %d: %w", i+1, err)
		}
		if b.owned[child] {
			return zygo.SexpNull, fmt.Errorf("group: child %d already belongs to a group", i+1)
		}
		b.owned[child] = true
		g.Add(child.item)
	}
	it := &sexpItem{item: g, kind: "group"}
	b.items = append(b.items, it)
	return it, nil
}

// (camera :position v :target v :up v :fov deg :near n :far f :ortho bool)
func (b *builder) cameraForm(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	var opts []gg3d.CameraOption

	vecs := []struct {
		name string
		opt  func(gg3d.Vec3) gg3d.CameraOption
	}{
		{"position", gg3d.WithPosition},
		{"target", gg3d.WithTarget},
		{"up", gg3d.WithUp},
	}
	for _, v := range vecs {
		var vec gg3d.Vec3
		ok, err := a.vec3Arg(v.name, &vec)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: %w", err)
		}
		if ok {
			opts = append(opts, v.opt(vec))
		}
	}

	if _, ok := a.kw["fov"]; ok {
		var fov float64
		if err := a.floatArg("fov", &fov); err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: %w", err)
		}
		opts = append(opts, gg3d.WithFOV(fov))
	}

	_, hasNear := a.kw["near"]
	_, hasFar := a.kw["far"]
	if hasNear || hasFar {
		near, far := 0.1, 1000.0
		if err := a.floatArg("near", &near); err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: %w", err)
		}
		if err := a.floatArg("far", &far); err != nil {
			return zygo.SexpNull, fmt.Errorf("camera: %w", err)
		}
		opts = append(opts, gg3d.WithClipPlanes(near, far))
	}

	var ortho bool
	if err := a.boolArg("ortho", &ortho); err != nil {
		return zygo.SexpNull, fmt.Errorf("camera: %w", err)
	}
	if ortho {
		opts = append(opts, gg3d.WithProjection(gg3d.ProjectionOrthographic))
	}

	b.camera = opts
	return zygo.SexpNull, nil
}

// (light (vec3 x y z))
func (b *builder) lightForm(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("light requires a direction")
	}
	d, err := toVec3(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("light: %w", err)
	}
	if d.IsZero() {
		return zygo.SexpNull, fmt.Errorf("light: direction must be non-zero")
	}
	b.light = &d
	return zygo.SexpNull, nil
}

// (global-sort bool)
func (b *builder) globalSortForm(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("global-sort requires one argument")
	}
	on, err := toBool(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("global-sort: %w", err)
	}
	b.globalSort = on
	return zygo.SexpNull, nil
}

// (background color)
func (b *builder) backgroundForm(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("background requires a color")
	}
	c, err := toColor(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("background: %w", err)
	}
	b.background = &c
	return zygo.SexpNull, nil
}

// Signed distance field forms. Constructors center their solid on the
// origin.

// (sdf-sphere r)
func sdfSphere(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	r, err := floats("sdf-sphere", args, 1)
	if err != nil {
		return zygo.SexpNull, err
	}
	s, err := sdf.Sphere3D(r[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("sdf-sphere: %w", err)
	}
	return &sexpSolid{s: s}, nil
}

// (sdf-box x y z) or (sdf-box x y z round)
func sdfBox(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	n := 3
	if len(args) == 4 {
		n = 4
	}
	v, err := floats("sdf-box", args, n)
	if err != nil {
		return zygo.SexpNull, err
	}
	var round float64
	if n == 4 {
		round = v[3]
	}
	s, err := sdf.Box3D(v3.Vec{X: v[0], Y: v[1], Z: v[2]}, round)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("sdf-box: %w", err)
	}
	return &sexpSolid{s: s}, nil
}

// (sdf-cylinder height radius), axis along Z
func sdfCylinder(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	v, err := floats("sdf-cylinder", args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	s, err := sdf.Cylinder3D(v[0], v[1], 0)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("sdf-cylinder: %w", err)
	}
	return &sexpSolid{s: s}, nil
}

func sdfUnion(ss ...sdf.SDF3) sdf.SDF3   { return sdf.Union3D(ss...) }
func sdfDifference(a, b sdf.SDF3) sdf.SDF3 { return sdf.Difference3D(a, b) }
func sdfIntersect(a, b sdf.SDF3) sdf.SDF3  { return sdf.Intersect3D(a, b) }

func solids(form string, args []zygo.Sexp) ([]sdf.SDF3, error) {
	out := make([]sdf.SDF3, len(args))
	for i, a := range args {
		s, err := toSolid(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", form, i+1, err)
		}
		out[i] = s
	}
	return out, nil
}

// (union a b ...)
func sdfCombine(form string, op func(...sdf.SDF3) sdf.SDF3) builtin {
	return func(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("%s requires at least one solid", form)
		}
		ss, err := solids(form, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{s: op(ss...)}, nil
	}
}

// (difference a b), (intersect a b)
func sdfPair(form string, op func(a, b sdf.SDF3) sdf.SDF3) builtin {
	return func(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 solids, got %d", form, len(args))
		}
		ss, err := solids(form, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{s: op(ss[0], ss[1])}, nil
	}
}

// (translate solid (vec3 x y z))
func sdfTranslate(_ *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("translate requires a solid and a vec3")
	}
	s, err := toSolid(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: %w", err)
	}
	d, err := toVec3(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: %w", err)
	}
	m := sdf.Translate3d(v3.Vec{X: d.X, Y: d.Y, Z: d.Z})
	return &sexpSolid{s: sdf.Transform3D(s, m)}, nil
}
