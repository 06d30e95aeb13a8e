package gg3d

import "math"

// Projection selects how a Camera maps camera space to clip space.
type Projection int

const (
	// ProjectionPerspective uses a finite-far perspective frustum.
	ProjectionPerspective Projection = iota

	// ProjectionOrthographic uses a box sized to match the perspective
	// field of view at the current target distance.
	ProjectionOrthographic
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	}
	return "unknown"
}

const (
	// polarEpsilon keeps the orbit polar angle away from the poles.
	polarEpsilon = 1e-3

	// minTargetDistance is the closest Zoom may bring the camera to its target.
	minTargetDistance = 1e-3
)

// Camera is a mutable viewpoint bound to one Context3D.
//
// Every setter marks the camera dirty and schedules a single recompute on
// the context; several mutations before the next frame collapse into one
// matrix push. Call Flush to push immediately.
//
// Camera is NOT safe for concurrent use.
type Camera struct {
	ctx *Context3D

	position   Vec3
	target     Vec3
	up         Vec3
	fov        float64 // degrees
	near, far  float64
	projection Projection

	dirty     bool
	scheduled bool
	disposed  bool

	removeResize func()
}

// NewCamera creates a camera and synchronously pushes its matrices to ctx,
// so the context is valid before the first frame.
//
// Defaults: position (0,0,5), target origin, up +Y, 60° field of view,
// clip planes 0.1..1000, perspective projection.
func NewCamera(ctx *Context3D, opts ...CameraOption) *Camera {
	c := &Camera{
		ctx:        ctx,
		position:   V3(0, 0, 5),
		up:         V3(0, 1, 0),
		fov:        defaultFOV,
		near:       defaultNear,
		far:        defaultFar,
		projection: ProjectionPerspective,
	}
	for _, opt := range opts {
		opt(c)
	}

	if ctx != nil {
		c.removeResize = ctx.OnResize(func(int, int) {
			c.dirty = true
			c.Flush()
		})
	}

	c.dirty = true
	c.Flush()
	return c
}

// Position returns the eye position.
func (c *Camera) Position() Vec3 { return c.position }

// Target returns the point the camera looks at.
func (c *Camera) Target() Vec3 { return c.target }

// Up returns the up vector.
func (c *Camera) Up() Vec3 { return c.up }

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 { return c.fov }

// Near returns the near plane distance.
func (c *Camera) Near() float64 { return c.near }

// Far returns the far plane distance.
func (c *Camera) Far() float64 { return c.far }

// Projection returns the projection mode.
func (c *Camera) Projection() Projection { return c.projection }

// Distance returns the distance between position and target.
func (c *Camera) Distance() float64 { return c.position.Distance(c.target) }

// Dirty reports whether a recompute is pending.
func (c *Camera) Dirty() bool { return c.dirty }

// SetPosition moves the eye.
func (c *Camera) SetPosition(p Vec3) {
	c.position = p
	c.markDirty()
}

// SetTarget changes the point the camera looks at.
func (c *Camera) SetTarget(t Vec3) {
	c.target = t
	c.markDirty()
}

// SetUp changes the up vector. It must not be parallel to the view
// direction.
func (c *Camera) SetUp(up Vec3) {
	c.up = up
	c.markDirty()
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(degrees float64) {
	c.fov = degrees
	c.markDirty()
}

// SetNear sets the near plane. Values outside (0, far) are ignored.
func (c *Camera) SetNear(near float64) {
	if near <= 0 || near >= c.far {
		Logger().Warn("gg3d: camera near plane rejected", "near", near, "far", c.far)
		return
	}
	c.near = near
	c.markDirty()
}

// SetFar sets the far plane. Values not greater than near are ignored.
func (c *Camera) SetFar(far float64) {
	if far <= c.near {
		Logger().Warn("gg3d: camera far plane rejected", "near", c.near, "far", far)
		return
	}
	c.far = far
	c.markDirty()
}

// SetProjection switches between perspective and orthographic projection.
func (c *Camera) SetProjection(p Projection) {
	c.projection = p
	c.markDirty()
}

// LookAt retargets the camera without moving it.
func (c *Camera) LookAt(target Vec3) {
	c.SetTarget(target)
}

// Orbit rotates the position around the target at a fixed distance.
// deltaTheta turns about the vertical axis and deltaPhi changes the polar
// angle, which is clamped away from the poles.
func (c *Camera) Orbit(deltaTheta, deltaPhi float64) {
	offset := c.position.Sub(c.target)
	dist := offset.Length()
	if dist == 0 {
		Logger().Warn("gg3d: orbit skipped, camera sits on its target")
		return
	}

	theta := math.Atan2(offset.X, offset.Z) + deltaTheta
	phi := math.Acos(clamp(offset.Y/dist, -1, 1)) + deltaPhi
	phi = clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	sinPhi := math.Sin(phi)
	c.position = c.target.Add(Vec3{
		X: dist * sinPhi * math.Sin(theta),
		Y: dist * math.Cos(phi),
		Z: dist * sinPhi * math.Cos(theta),
	})
	c.markDirty()
}

// Pan slides position and target together in the view plane, keeping the
// viewing direction and distance. Positive dx moves the scene right on
// screen, positive dy moves the camera up.
func (c *Camera) Pan(dx, dy float64) {
	forward := c.target.Sub(c.position).Normalize()
	right := forward.Cross(c.up).Normalize()
	upDir := right.Cross(forward)

	offset := right.Mul(-dx).Add(upDir.Mul(dy))
	c.position = c.position.Add(offset)
	c.target = c.target.Add(offset)
	c.markDirty()
}

// Zoom moves the camera delta units toward the target (negative values
// move away). The camera never reaches or crosses the target.
func (c *Camera) Zoom(delta float64) {
	dist := c.Distance()
	dir := c.target.Sub(c.position).Normalize()
	if limit := dist - minTargetDistance; delta > limit {
		delta = limit
	}
	c.position = c.position.Add(dir.Mul(delta))
	c.markDirty()
}

// Flush pushes the view and projection to the context if the camera is
// dirty. Calling it when clean is a no-op.
func (c *Camera) Flush() {
	if !c.dirty || c.ctx == nil || c.disposed {
		return
	}
	c.dirty = false

	c.ctx.SetCamera(c.position, c.target, c.up)
	switch c.projection {
	case ProjectionOrthographic:
		halfHeight := c.Distance() * math.Tan(c.fov*math.Pi/180/2)
		halfWidth := halfHeight * c.ctx.Aspect()
		c.ctx.SetOrthographic(-halfWidth, halfWidth, -halfHeight, halfHeight, c.near, c.far)
	default:
		c.ctx.SetPerspective(c.fov, c.near, c.far)
	}

	Logger().Debug("gg3d: camera flushed",
		"position", c.position,
		"target", c.target,
		"projection", c.projection)
}

// Dispose detaches the camera from its context. Later mutations no longer
// reach the context.
func (c *Camera) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.removeResize != nil {
		c.removeResize()
		c.removeResize = nil
	}
}

// markDirty flags a pending recompute and schedules one flush per tick.
func (c *Camera) markDirty() {
	c.dirty = true
	if c.scheduled || c.ctx == nil || c.disposed {
		return
	}
	c.scheduled = true
	c.ctx.schedule(func() {
		c.scheduled = false
		c.Flush()
	})
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
