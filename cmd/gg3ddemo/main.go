// Command gg3ddemo renders a gg3d scene to an image file.
//
// Without -scene it draws a built-in showcase; with -scene it evaluates a
// scene script (see package scenescript). The output format follows
// -format, or the file extension when -format is empty.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/gogpu/gg3d"
	"github.com/gogpu/gg3d/backend"
	_ "github.com/gogpu/gg3d/backend/canvas"
	_ "github.com/gogpu/gg3d/backend/raster"
	_ "github.com/gogpu/gg3d/backend/svg"
	"github.com/gogpu/gg3d/scenescript"
	"github.com/gogpu/gg3d/sdfmesh"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		format  = flag.String("format", "", "output format: "+strings.Join(backend.Available(), ", ")+" (default: from extension)")
		script  = flag.String("scene", "", "scene script to render instead of the built-in demo")
		verbose = flag.Bool("v", false, "log pipeline activity to stderr")
	)
	flag.Parse()

	if *verbose {
		gg3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	name := *format
	if name == "" {
		name = formatFromExt(*output)
	}
	target, err := newTarget(name, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create %q target: %v", name, err)
	}

	scene, err := loadScene(*script)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	opts := append([]gg3d.Context3DOption{gg3d.WithBackend(target)}, scene.ContextOptions()...)
	ctx := gg3d.NewContext3D(*width, *height, opts...)
	cam := scene.NewCamera(ctx)
	defer cam.Dispose()

	scene.Render(ctx)
	drawLabels(ctx, target, *script)

	if err := writeOutput(*output, target); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %s)\n", *output, *width, *height, target.Name())
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	default:
		return "png"
	}
}

// newTarget creates the named target, falling back to the default target
// when name is not registered.
func newTarget(name string, width, height int) (backend.Target, error) {
	if !backend.IsRegistered(name) {
		log.Printf("Unknown format %q, using default\n", name)
		return backend.Default(width, height)
	}
	return backend.New(name, width, height)
}

func loadScene(path string) (*scenescript.Scene, error) {
	if path == "" {
		return builtinScene()
	}
	return scenescript.Load(context.Background(), path)
}

// builtinScene lays out every primitive on a floor with axis arrows.
func builtinScene() (*scenescript.Scene, error) {
	floor := gg3d.NewShape(gg3d.Plane{Width: 10, Depth: 10, Divisions: 8},
		gg3d.WithShapePosition(gg3d.V3(0, -1, 0)),
		gg3d.WithFill(gg3d.RGB(0.85, 0.85, 0.8)))

	cube := gg3d.NewShape(gg3d.Cube(1.5),
		gg3d.WithShapePosition(gg3d.V3(-2.5, -0.25, 0)),
		gg3d.WithShapeRotation(gg3d.V3(0, math.Pi/6, 0)),
		gg3d.WithFill(gg3d.RGB(0.9, 0.3, 0.25)),
		gg3d.WithStroke(gg3d.RGB(0.3, 0.1, 0.1), 1))

	sphere := gg3d.NewShape(gg3d.Sphere{Radius: 0.9},
		gg3d.WithShapePosition(gg3d.V3(0, -0.1, 0)),
		gg3d.WithFill(gg3d.RGB(0.25, 0.5, 0.9)))

	cylinder := gg3d.NewShape(gg3d.Cylinder{Radius: 0.6, Height: 1.8},
		gg3d.WithShapePosition(gg3d.V3(2.5, -0.1, 0)),
		gg3d.WithFill(gg3d.RGB(0.3, 0.75, 0.4)))

	cone := gg3d.NewShape(gg3d.Cone{Radius: 0.7, Height: 1.6},
		gg3d.WithShapePosition(gg3d.V3(-1.5, -0.2, 2.5)),
		gg3d.WithFill(gg3d.RGB(0.95, 0.7, 0.2)))

	torus := gg3d.NewShape(gg3d.Torus{MajorRadius: 0.8, MinorRadius: 0.25},
		gg3d.WithShapePosition(gg3d.V3(1.5, -0.2, 2.5)),
		gg3d.WithShapeRotation(gg3d.V3(math.Pi/2, 0, 0)),
		gg3d.WithFill(gg3d.RGB(0.7, 0.4, 0.85)))

	items := []gg3d.Renderable{floor, cube, sphere, cylinder, cone, torus}

	bracket, err := bracketMesh()
	if err != nil {
		return nil, err
	}
	items = append(items, gg3d.NewShape(bracket,
		gg3d.WithShapePosition(gg3d.V3(0, -0.4, -2.5)),
		gg3d.WithFill(gg3d.RGB(0.6, 0.6, 0.65))))

	for _, axis := range []struct {
		rot gg3d.Vec3
		c   gg3d.RGBA
	}{
		{gg3d.V3(0, 0, -math.Pi/2), gg3d.Red},
		{gg3d.V3(0, 0, 0), gg3d.Green},
		{gg3d.V3(math.Pi/2, 0, 0), gg3d.Blue},
	} {
		items = append(items, gg3d.NewShape(gg3d.Arrow{Length: 1.5, Segments: 8},
			gg3d.WithShapePosition(gg3d.V3(-4.5, -1, -4.5)),
			gg3d.WithShapeRotation(axis.rot),
			gg3d.WithFill(axis.c)))
	}

	light := gg3d.V3(-0.4, -0.8, -0.5)
	bg := gg3d.RGB(0.97, 0.97, 1)
	return &scenescript.Scene{
		Items:      items,
		Camera:     []gg3d.CameraOption{gg3d.WithPosition(gg3d.V3(6, 5, 9)), gg3d.WithFOV(45)},
		Light:      &light,
		Background: &bg,
		GlobalSort: true,
	}, nil
}

// bracketMesh is a rounded block with a bore, tessellated from an SDF.
func bracketMesh() (*gg3d.Mesh, error) {
	block, err := sdf.Box3D(v3.Vec{X: 1.6, Y: 1.2, Z: 1}, 0.15)
	if err != nil {
		return nil, err
	}
	bore, err := sdf.Cylinder3D(2, 0.35, 0)
	if err != nil {
		return nil, err
	}
	return sdfmesh.New(sdf.Difference3D(block, bore), 24)
}

func drawLabels(ctx *gg3d.Context3D, target backend.Target, script string) {
	tb, ok := target.(gg3d.TextBackend)
	if !ok {
		return
	}
	title := "gg3d demo"
	if script != "" {
		title = filepath.Base(script)
	}
	tb.DrawText(gg3d.Pt(12, 24), title, gg3d.RGB(0.2, 0.2, 0.25))
	tb.DrawText(ctx.Project(gg3d.V3(0, 1.2, 0)), "sphere", gg3d.RGB(0.1, 0.1, 0.3))
}

func writeOutput(path string, target backend.Target) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return target.Encode(f)
}
