package gg3d

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidDimensions is returned when width or height is not positive.
var ErrInvalidDimensions = errors.New("gg3d: invalid dimensions")

// Default projection used until a camera pushes its own.
const (
	defaultFOV  = 60.0
	defaultNear = 0.1
	defaultFar  = 1000.0
)

// Renderable is anything that can be drawn into a Context3D within a
// frame bracket. Shape and Group implement it.
type Renderable interface {
	Render(ctx *Context3D)
}

// projectionParams remembers the last projection request so that a resize
// can rebuild the matrix for the new aspect ratio.
type projectionParams struct {
	mode                     Projection
	fov                      float64 // degrees, perspective only
	left, right, bottom, top float64 // orthographic only
	near, far                float64
}

// Context3D is the render target of the 3D pipeline. It owns the view,
// projection and combined view-projection matrices, the light direction,
// and the per-frame face buffer used for global back-to-front sorting.
//
// Context3D is NOT safe for concurrent use. Exactly one frame bracket may
// be open at a time; nested MarkRenderStart/MarkRenderEnd pairs are
// tracked by depth.
type Context3D struct {
	width, height int
	backend       Backend

	view           Matrix4
	projection     Matrix4
	viewProjection Matrix4
	proj           projectionParams

	light Vec3

	// Face buffer. Present (buffering=true) only while global sorting is
	// active for the current outermost frame.
	buffer        []ProjectedFace
	buffering     bool
	globalSort    bool
	sortRequested bool // one-shot EnableGlobalSort outside a frame
	depth         int

	pending []func()

	resizeListeners map[int]func(width, height int)
	nextListenerID  int
}

// NewContext3D creates a render target of the given pixel size.
// Non-positive dimensions are clamped to 1.
//
// Example:
//
//	ctx := gg3d.NewContext3D(800, 600, gg3d.WithBackend(raster.NewImage(800, 600)))
//	cam := gg3d.NewCamera(ctx, gg3d.WithPosition(gg3d.V3(0, 2, 6)))
func NewContext3D(width, height int, opts ...Context3DOption) *Context3D {
	o := defaultContext3DOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 {
		Logger().Warn("gg3d: clamping invalid context size", "width", width, "height", height)
		width, height = max(width, 1), max(height, 1)
	}

	c := &Context3D{
		width:      width,
		height:     height,
		backend:    o.backend,
		light:      o.light,
		globalSort: o.globalSort,
		view:       Identity(),
	}
	c.SetPerspective(defaultFOV, defaultNear, defaultFar)
	return c
}

// Width returns the viewport width in pixels.
func (c *Context3D) Width() int { return c.width }

// Height returns the viewport height in pixels.
func (c *Context3D) Height() int { return c.height }

// Aspect returns width/height.
func (c *Context3D) Aspect() float64 {
	return float64(c.width) / float64(c.height)
}

// Resize changes the viewport size, rebuilds the projection matrix for
// the new aspect ratio and notifies resize listeners.
func (c *Context3D) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == c.width && height == c.height {
		return nil
	}
	c.width, c.height = width, height
	c.applyProjection()

	ids := make([]int, 0, len(c.resizeListeners))
	for id := range c.resizeListeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		c.resizeListeners[id](width, height)
	}
	return nil
}

// OnResize registers fn to be called after every successful Resize.
// The returned function removes the listener.
func (c *Context3D) OnResize(fn func(width, height int)) (remove func()) {
	if c.resizeListeners == nil {
		c.resizeListeners = make(map[int]func(int, int))
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.resizeListeners[id] = fn
	return func() { delete(c.resizeListeners, id) }
}

// Backend returns the 2D drawing backend, or nil if none is attached.
func (c *Context3D) Backend() Backend { return c.backend }

// SetBackend attaches the 2D drawing backend faces are painted with.
func (c *Context3D) SetBackend(b Backend) { c.backend = b }

// LightDirection returns the direction light travels in world space.
func (c *Context3D) LightDirection() Vec3 { return c.light }

// SetLightDirection sets the direction light travels in world space.
func (c *Context3D) SetLightDirection(d Vec3) { c.light = d }

// View returns the current view matrix.
func (c *Context3D) View() Matrix4 { return c.view }

// Projection returns the current projection matrix.
func (c *Context3D) Projection() Matrix4 { return c.projection }

// ViewProjection returns projection * view.
func (c *Context3D) ViewProjection() Matrix4 { return c.viewProjection }

// SetCamera rebuilds the view matrix from an eye position, a target and
// an up vector.
func (c *Context3D) SetCamera(eye, target, up Vec3) {
	c.view = LookAt(eye, target, up)
	c.updateViewProjection()
}

// SetPerspective switches to a perspective projection. fov is the vertical
// field of view in degrees; the aspect ratio follows the viewport.
func (c *Context3D) SetPerspective(fov, near, far float64) {
	c.proj = projectionParams{mode: ProjectionPerspective, fov: fov, near: near, far: far}
	c.applyProjection()
}

// SetOrthographic switches to an orthographic projection of the given box.
func (c *Context3D) SetOrthographic(left, right, bottom, top, near, far float64) {
	c.proj = projectionParams{
		mode: ProjectionOrthographic,
		left: left, right: right, bottom: bottom, top: top,
		near: near, far: far,
	}
	c.applyProjection()
}

func (c *Context3D) applyProjection() {
	p := c.proj
	switch p.mode {
	case ProjectionOrthographic:
		c.projection = Orthographic(p.left, p.right, p.bottom, p.top, p.near, p.far)
	default:
		c.projection = Perspective(p.fov*math.Pi/180, c.Aspect(), p.near, p.far)
	}
	c.updateViewProjection()
}

func (c *Context3D) updateViewProjection() {
	c.viewProjection = c.projection.Multiply(c.view)
}

// Project maps a world-space point to pixel coordinates. Clip space
// [-1,1]² maps onto [0,width]×[0,height] with Y flipped so that clip +Y
// points up the screen. Points behind the camera still project.
func (c *Context3D) Project(p Vec3) Point {
	ndc := c.viewProjection.TransformPoint(p)
	return Point{
		X: (ndc.X + 1) / 2 * float64(c.width),
		Y: (1 - ndc.Y) / 2 * float64(c.height),
	}
}

// ProjectDepth returns the clip-space z of a world-space point after the
// perspective divide. Larger values are farther from the camera. The value
// is only meaningful as a sort key.
func (c *Context3D) ProjectDepth(p Vec3) float64 {
	return c.viewProjection.TransformPoint(p).Z
}

// MarkRenderStart opens a frame bracket. Brackets nest; only the outermost
// one runs scheduled work (such as coalesced camera flushes) and, when
// global sorting is requested, initializes the face buffer.
func (c *Context3D) MarkRenderStart() {
	c.depth++
	if c.depth != 1 {
		return
	}
	c.RunScheduled()
	if c.globalSort || c.sortRequested {
		c.buffer = make([]ProjectedFace, 0)
		c.buffering = true
	} else {
		c.buffer = nil
		c.buffering = false
	}
	c.sortRequested = false
}

// MarkRenderEnd closes a frame bracket. When the outermost bracket closes,
// every buffered face is sorted once, farthest first, and handed back to
// its owner for drawing. The buffer never survives the frame.
func (c *Context3D) MarkRenderEnd() {
	if c.depth == 0 {
		Logger().Warn("gg3d: unbalanced MarkRenderEnd ignored")
		return
	}
	c.depth--
	if c.depth > 0 || !c.buffering {
		return
	}

	faces := c.buffer
	c.buffer = nil
	c.buffering = false
	if len(faces) == 0 {
		return
	}

	sortBackToFront(faces)
	Logger().Debug("gg3d: frame sorted", "faces", len(faces))
	for _, f := range faces {
		if f.Owner != nil {
			f.Owner.DrawFace(c, f)
		}
	}
}

// RenderDepth returns the number of currently open frame brackets.
func (c *Context3D) RenderDepth() int { return c.depth }

// SetGlobalSort requests (or stops requesting) the face buffer for every
// subsequent outermost frame.
func (c *Context3D) SetGlobalSort(enabled bool) { c.globalSort = enabled }

// EnableGlobalSort activates the face buffer, so shapes rendered before
// the outermost MarkRenderEnd enqueue their faces instead of drawing them.
// Inside a frame it takes effect immediately and keeps faces already
// buffered. Outside a frame it applies to the next outermost frame only.
func (c *Context3D) EnableGlobalSort() {
	if c.depth == 0 {
		c.sortRequested = true
		return
	}
	if c.buffering {
		return
	}
	c.buffer = make([]ProjectedFace, 0)
	c.buffering = true
}

// GlobalSortActive reports whether a face buffer is currently collecting.
func (c *Context3D) GlobalSortActive() bool { return c.buffering }

// Enqueue appends faces to the active face buffer. It reports false and
// does nothing when no buffer is active.
func (c *Context3D) Enqueue(faces ...ProjectedFace) bool {
	if !c.buffering {
		return false
	}
	c.buffer = append(c.buffer, faces...)
	return true
}

// RenderFrame runs one complete frame bracket around items.
func (c *Context3D) RenderFrame(items ...Renderable) {
	c.MarkRenderStart()
	defer c.MarkRenderEnd()
	for _, it := range items {
		if it != nil {
			it.Render(c)
		}
	}
}

// schedule queues fn to run at the start of the next outermost frame
// or at the next RunScheduled call.
func (c *Context3D) schedule(fn func()) {
	c.pending = append(c.pending, fn)
}

// RunScheduled runs deferred work queued since the last tick, such as
// coalesced camera recomputes. MarkRenderStart calls it automatically.
func (c *Context3D) RunScheduled() {
	for len(c.pending) > 0 {
		queued := c.pending
		c.pending = nil
		for _, fn := range queued {
			fn()
		}
	}
}

// sortBackToFront orders faces by descending depth (farthest first).
// Equal depths keep their enqueue order.
func sortBackToFront(faces []ProjectedFace) {
	slices.SortStableFunc(faces, func(a, b ProjectedFace) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}
