// Package scenescript builds gg3d scenes from a small Lisp dialect
// evaluated by a sandboxed zygomys interpreter.
//
// A script creates shapes, optionally groups them, and configures the
// camera, light and background:
//
//	; two cubes and a sphere, sorted together
//	(def blue (rgb 0.2 0.4 0.9))
//	(group :sort true
//	  (cube :size 2 :at (vec3 -2 0 0) :fill blue)
//	  (cube :size 2 :at (vec3 2 0 0) :rotate (vec3 0 45 0))
//	  (sphere :radius 1 :at (vec3 0 2 0) :fill "#e0a030"))
//	(camera :position (vec3 4 3 8) :fov 50)
//	(light (vec3 -1 -1 -1))
//
// Every shape not consumed by a group is a top-level item. Angles are in
// degrees. Keywords (:name) and kebab-case identifiers are rewritten
// before evaluation, so (global-sort true) calls global_sort.
package scenescript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gogpu/gg3d"
)

// EvalTimeout bounds a single evaluation.
const EvalTimeout = 5 * time.Second

// ErrEmptyScene is returned when a script defines nothing to render.
var ErrEmptyScene = errors.New("scenescript: scene has no shapes")

// EvalError is a parse or runtime error in script code.
type EvalError struct {
	Line    int
	Message string
}

func (e *EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("scenescript: line %d: %s", e.Line, e.Message)
	}
	return "scenescript: " + e.Message
}

// Scene is the result of evaluating a script.
type Scene struct {
	// Items are the top-level shapes and groups in creation order.
	Items []gg3d.Renderable

	// Camera holds the options from the last (camera ...) form.
	Camera []gg3d.CameraOption

	// Light is the light direction, if the script set one.
	Light *gg3d.Vec3

	// Background is the clear color, if the script set one.
	Background *gg3d.RGBA

	// GlobalSort requests one depth sort across all items.
	GlobalSort bool
}

// ContextOptions returns the context options the script asked for.
func (s *Scene) ContextOptions() []gg3d.Context3DOption {
	var opts []gg3d.Context3DOption
	if s.Light != nil {
		opts = append(opts, gg3d.WithLightDirection(*s.Light))
	}
	if s.GlobalSort {
		opts = append(opts, gg3d.WithGlobalSort(true))
	}
	return opts
}

// NewCamera creates a camera on ctx configured by the script, with extra
// options applied last.
func (s *Scene) NewCamera(ctx *gg3d.Context3D, extra ...gg3d.CameraOption) *gg3d.Camera {
	opts := append(append([]gg3d.CameraOption(nil), s.Camera...), extra...)
	return gg3d.NewCamera(ctx, opts...)
}

// Render clears the backend to the background color, if any, and renders
// every item in one frame.
func (s *Scene) Render(ctx *gg3d.Context3D) {
	if s.Background != nil {
		if c, ok := ctx.Backend().(gg3d.Clearer); ok {
			c.Clear(*s.Background)
		}
	}
	ctx.RenderFrame(s.Items...)
}

// Load reads and evaluates a script file.
func Load(ctx context.Context, path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenescript: %w", err)
	}
	return Evaluate(ctx, string(data))
}

type evalResult struct {
	scene *Scene
	err   error
}

// Evaluate runs source in a fresh sandbox and returns the scene it built.
// Script errors are returned as *EvalError. Evaluation is abandoned when
// ctx is done or EvalTimeout elapses.
func Evaluate(ctx context.Context, source string) (*Scene, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyScene
	}

	ctx, cancel := context.WithTimeout(ctx, EvalTimeout)
	defer cancel()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("scenescript: panic during evaluation: %v", r)}
			}
		}()
		s, err := evaluate(source)
		ch <- evalResult{scene: s, err: err}
	}()

	select {
	case res := <-ch:
		return res.scene, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("scenescript: evaluation abandoned: %w", ctx.Err())
	}
}

func evaluate(source string) (*Scene, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := newBuilder()
	b.register(env)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err)
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err)
	}

	s := b.scene()
	if len(s.Items) == 0 {
		return nil, ErrEmptyScene
	}
	gg3d.Logger().Debug("scenescript: evaluated", "items", len(s.Items))
	return s, nil
}

// linePattern matches zygomys messages of the form "Error on line N: ...".
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

func parseZygomysError(err error) *EvalError {
	msg := strings.TrimSpace(err.Error())
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &EvalError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	return &EvalError{Message: msg}
}
