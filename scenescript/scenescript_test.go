package scenescript

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg3d"
)

func evaluateOK(t *testing.T, source string) *Scene {
	t.Helper()
	s, err := Evaluate(context.Background(), source)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	return s
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"keyword", `(cube :size 2)`, `(cube "__kw_size" 2)`},
		{"hyphenated keyword", `:stroke-width`, `"__kw_stroke-width"`},
		{"keyword in string", `"a :b c"`, `"a :b c"`},
		{"escaped quote in string", `"a\" :b" :c`, `"a\" :b" "__kw_c"`},
		{"kebab identifier", `(global-sort true)`, `(global_sort true)`},
		{"minus operator", `(- 10 5)`, `(- 10 5)`},
		{"negative literal", `(vec3 -2 0 0)`, `(vec3 -2 0 0)`},
		{"comment", `;; a :b`, `// a :b`},
		{"assignment", `(def x := 1)`, `(def x := 1)`},
		{"hex color", `:fill "#ff0000"`, `"__kw_fill" "#ff0000"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.input); got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestEvaluateShapes(t *testing.T) {
	s := evaluateOK(t, `
; two shapes, top level
(cube :size 2 :at (vec3 -2 0 0) :fill (rgb 1 0 0))
(sphere :radius 0.5 :rings 4 :segments 6 :fill "#00ff00" :stroke "#000000" :stroke-width 2)
`)
	if len(s.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(s.Items))
	}

	cube, ok := s.Items[0].(*gg3d.Shape)
	if !ok {
		t.Fatalf("item 0 is %T", s.Items[0])
	}
	if cube.Position != gg3d.V3(-2, 0, 0) {
		t.Errorf("cube position = %v", cube.Position)
	}
	if cube.Style.Fill != gg3d.Red {
		t.Errorf("cube fill = %v", cube.Style.Fill)
	}
	if box, ok := cube.Geometry.(gg3d.Box); !ok || box.Width != 2 {
		t.Errorf("cube geometry = %#v", cube.Geometry)
	}

	sphere := s.Items[1].(*gg3d.Shape)
	if g := sphere.Geometry.(gg3d.Sphere); g.Radius != 0.5 || g.Rings != 4 || g.Segments != 6 {
		t.Errorf("sphere geometry = %#v", g)
	}
	if sphere.Style.Fill != gg3d.Green || sphere.Style.Stroke != gg3d.Black || sphere.Style.StrokeWidth != 2 {
		t.Errorf("sphere style = %#v", sphere.Style)
	}
}

func TestEvaluateRotationInDegrees(t *testing.T) {
	s := evaluateOK(t, `(box :width 1 :height 2 :depth 3 :rotate (vec3 90 0 180))`)
	shape := s.Items[0].(*gg3d.Shape)
	want := gg3d.V3(math.Pi/2, 0, math.Pi)
	if !shape.Rotation.ApproxEqual(want, 1e-12) {
		t.Errorf("rotation = %v, want %v", shape.Rotation, want)
	}
}

func TestEvaluateVariablesAndArithmetic(t *testing.T) {
	s := evaluateOK(t, `
(def r 0.25)
(def accent (rgb 0.5 0.5 1))
(cylinder :radius (* r 2) :height 3 :segments 8 :fill accent)
`)
	shape := s.Items[0].(*gg3d.Shape)
	if g := shape.Geometry.(gg3d.Cylinder); g.Radius != 0.5 || g.Height != 3 || g.Segments != 8 {
		t.Errorf("cylinder = %#v", g)
	}
}

func TestEvaluateGroup(t *testing.T) {
	s := evaluateOK(t, `
(group :sort true
  (cone :radius 1 :height 2)
  (torus :major 2 :minor 0.25)
  (arrow :length 3))
(plane :width 10 :depth 10 :divisions 4)
`)
	if len(s.Items) != 2 {
		t.Fatalf("got %d items, want group and plane", len(s.Items))
	}
	g, ok := s.Items[0].(*gg3d.Group)
	if !ok {
		t.Fatalf("item 0 is %T", s.Items[0])
	}
	if !g.GlobalSort || len(g.Children) != 3 {
		t.Errorf("group sort=%v children=%d", g.GlobalSort, len(g.Children))
	}
	if _, ok := s.Items[1].(*gg3d.Shape); !ok {
		t.Errorf("item 1 is %T", s.Items[1])
	}
}

func TestEvaluateCameraLightBackground(t *testing.T) {
	s := evaluateOK(t, `
(cube)
(camera :position (vec3 4 3 8) :target (vec3 0 1 0) :fov 45 :near 0.5 :far 50 :ortho true)
(light (vec3 -1 -1 0))
(background "#102030")
(global-sort true)
`)
	if s.Light == nil || *s.Light != gg3d.V3(-1, -1, 0) {
		t.Errorf("light = %v", s.Light)
	}
	if s.Background == nil || s.Background.Hex() != "#102030" {
		t.Errorf("background = %v", s.Background)
	}
	if !s.GlobalSort {
		t.Error("GlobalSort = false")
	}

	ctx := gg3d.NewContext3D(100, 100, s.ContextOptions()...)
	if ctx.LightDirection() != gg3d.V3(-1, -1, 0) {
		t.Errorf("context light = %v", ctx.LightDirection())
	}
	cam := s.NewCamera(ctx)
	defer cam.Dispose()

	if cam.Position() != gg3d.V3(4, 3, 8) || cam.Target() != gg3d.V3(0, 1, 0) {
		t.Errorf("camera at %v looking at %v", cam.Position(), cam.Target())
	}
	if cam.FOV() != 45 || cam.Near() != 0.5 || cam.Far() != 50 {
		t.Errorf("camera fov=%v near=%v far=%v", cam.FOV(), cam.Near(), cam.Far())
	}
	if cam.Projection() != gg3d.ProjectionOrthographic {
		t.Errorf("projection = %v", cam.Projection())
	}
}

func TestEvaluateMesh(t *testing.T) {
	s := evaluateOK(t, `
(mesh (difference (sdf-box 2 2 2) (translate (sdf-sphere 1) (vec3 1 1 1)))
      :cells 10 :fill (rgb 0.8 0.6 0.2))
`)
	shape := s.Items[0].(*gg3d.Shape)
	m, ok := shape.Geometry.(*gg3d.Mesh)
	if !ok {
		t.Fatalf("geometry is %T", shape.Geometry)
	}
	if len(m.Faces) == 0 {
		t.Error("mesh has no faces")
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
		wantMsg string
	}{
		{"empty", "", ErrEmptyScene, ""},
		{"whitespace", "  \n\t", ErrEmptyScene, ""},
		{"no shapes", "(camera :fov 30)", ErrEmptyScene, ""},
		{"wrong type", `(cube :size "big")`, nil, "size"},
		{"bad color", `(cube :fill "#zz0000")`, nil, "invalid hex color"},
		{"vec3 arity", `(vec3 1 2)`, nil, "vec3 requires exactly 3 arguments"},
		{"group twice", "(def c (cube))\n(group c)\n(group c)", nil, "already belongs"},
		{"mesh needs solid", `(mesh (vec3 1 1 1))`, nil, "expected solid"},
		{"zero light", `(cube) (light (vec3 0 0 0))`, nil, "non-zero"},
		{"unbalanced", "(cube)\n(cube", nil, ""},
		{"undefined symbol", "(cube :size undefined-thing)", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Evaluate(context.Background(), tt.source)
			if err == nil {
				t.Fatalf("Evaluate() = %v, want error", s)
			}
			if s != nil {
				t.Errorf("scene = %v, want nil on error", s)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			var evalErr *EvalError
			if !errors.As(err, &evalErr) {
				t.Fatalf("error = %T %v, want *EvalError", err, err)
			}
			if evalErr.Message == "" {
				t.Error("empty error message")
			}
			if !strings.Contains(evalErr.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", evalErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Either the script finishes first or the canceled context wins; both
	// must return without hanging.
	_, err := Evaluate(ctx, "(cube)")
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		msg      string
		wantLine int
		wantMsg  string
	}{
		{"Error on line 5: unexpected token\n", 5, "unexpected token"},
		{"error on line 12: missing paren", 12, "missing paren"},
		{"some generic error", 0, "some generic error"},
	}
	for _, tt := range tests {
		e := parseZygomysError(errors.New(tt.msg))
		if e.Line != tt.wantLine || e.Message != tt.wantMsg {
			t.Errorf("parseZygomysError(%q) = {%d %q}, want {%d %q}",
				tt.msg, e.Line, e.Message, tt.wantLine, tt.wantMsg)
		}
	}
}

func TestEvalErrorString(t *testing.T) {
	if got := (&EvalError{Line: 3, Message: "boom"}).Error(); got != "scenescript: line 3: boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&EvalError{Message: "boom"}).Error(); got != "scenescript: boom" {
		t.Errorf("Error() = %q", got)
	}
}

type recordingBackend struct {
	cleared  []gg3d.RGBA
	polygons int
}

func (r *recordingBackend) DrawPolygon([]gg3d.Point, gg3d.PolygonStyle) { r.polygons++ }
func (r *recordingBackend) Clear(c gg3d.RGBA)                           { r.cleared = append(r.cleared, c) }

func TestSceneRender(t *testing.T) {
	s := evaluateOK(t, `
(background (rgb 0 0 0))
(group :sort true (cube :at (vec3 -1 0 0)) (cube :at (vec3 1 0 0)))
`)
	rec := &recordingBackend{}
	ctx := gg3d.NewContext3D(64, 64, gg3d.WithBackend(rec))
	cam := s.NewCamera(ctx, gg3d.WithPosition(gg3d.V3(0, 3, 6)))
	defer cam.Dispose()

	s.Render(ctx)
	if len(rec.cleared) != 1 || rec.cleared[0] != gg3d.Black {
		t.Errorf("cleared = %v, want one black clear", rec.cleared)
	}
	if rec.polygons != 12 {
		t.Errorf("drew %d polygons, want 12", rec.polygons)
	}
	if ctx.RenderDepth() != 0 {
		t.Errorf("RenderDepth() = %d after Render", ctx.RenderDepth())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.lisp")
	if err := os.WriteFile(path, []byte("(cube :size 3)"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Items) != 1 {
		t.Errorf("got %d items", len(s.Items))
	}

	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.lisp")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not-exist", err)
	}
}
