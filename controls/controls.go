// Package controls turns pointer gestures into camera motion.
//
// Orbit follows the usual three-button convention:
//
//	left drag    orbit around the target
//	right drag   pan in the view plane
//	middle drag  pan in the view plane
//	wheel        zoom toward or away from the target
//
// Controls are host neutral. The host feeds pointer events from whatever
// windowing layer it uses; integration/ebitenview does this for ebiten.
package controls

import (
	"github.com/gogpu/gg3d"
)

// Button identifies a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Mode is the gesture in progress.
type Mode int

// Gesture modes.
const (
	ModeIdle Mode = iota
	ModeOrbit
	ModePan
)

// Default sensitivities.
const (
	DefaultRotateSpeed = 0.01  // radians per pixel
	DefaultPanSpeed    = 0.002 // target distances per pixel
	DefaultZoomSpeed   = 0.1   // fraction of the distance per wheel step
)

// Orbit drives a camera from pointer events. It is not safe for
// concurrent use; call it from the thread that renders.
type Orbit struct {
	cam *gg3d.Camera

	rotateSpeed float64
	panSpeed    float64
	zoomSpeed   float64
	invertY     bool
	enabled     bool

	mode   Mode
	button Button
	last   gg3d.Point
}

// Option configures an Orbit.
type Option func(*Orbit)

// WithRotateSpeed sets the orbit sensitivity in radians per pixel.
func WithRotateSpeed(s float64) Option {
	return func(o *Orbit) { o.rotateSpeed = s }
}

// WithPanSpeed sets the pan sensitivity in target distances per pixel.
func WithPanSpeed(s float64) Option {
	return func(o *Orbit) { o.panSpeed = s }
}

// WithZoomSpeed sets the fraction of the target distance covered by one
// wheel step.
func WithZoomSpeed(s float64) Option {
	return func(o *Orbit) { o.zoomSpeed = s }
}

// WithInvertY flips vertical orbit and pan.
func WithInvertY(invert bool) Option {
	return func(o *Orbit) { o.invertY = invert }
}

// New creates controls for cam.
func New(cam *gg3d.Camera, opts ...Option) *Orbit {
	o := &Orbit{
		cam:         cam,
		rotateSpeed: DefaultRotateSpeed,
		panSpeed:    DefaultPanSpeed,
		zoomSpeed:   DefaultZoomSpeed,
		enabled:     true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Camera returns the controlled camera.
func (o *Orbit) Camera() *gg3d.Camera { return o.cam }

// Mode returns the gesture in progress.
func (o *Orbit) Mode() Mode { return o.mode }

// Enabled reports whether events are applied.
func (o *Orbit) Enabled() bool { return o.enabled }

// SetEnabled turns the controls on or off. Disabling ends any gesture.
func (o *Orbit) SetEnabled(enabled bool) {
	o.enabled = enabled
	if !enabled {
		o.mode, o.button = ModeIdle, ButtonNone
	}
}

// PointerDown starts a gesture. A press while another button is held is
// ignored.
func (o *Orbit) PointerDown(b Button, at gg3d.Point) {
	if !o.enabled || o.cam == nil || o.mode != ModeIdle {
		return
	}
	switch b {
	case ButtonLeft:
		o.mode = ModeOrbit
	case ButtonRight, ButtonMiddle:
		o.mode = ModePan
	default:
		return
	}
	o.button = b
	o.last = at
}

// PointerMove applies the motion since the last event to the gesture in
// progress.
func (o *Orbit) PointerMove(at gg3d.Point) {
	if o.mode == ModeIdle {
		return
	}
	d := at.Sub(o.last)
	o.last = at
	if d.X == 0 && d.Y == 0 {
		return
	}
	dy := d.Y
	if o.invertY {
		dy = -dy
	}

	switch o.mode {
	case ModeOrbit:
		o.cam.Orbit(-d.X*o.rotateSpeed, -dy*o.rotateSpeed)
	case ModePan:
		scale := o.panSpeed * o.cam.Distance()
		o.cam.Pan(d.X*scale, dy*scale)
	}
}

// PointerUp ends the gesture started by b.
func (o *Orbit) PointerUp(b Button) {
	if b != o.button {
		return
	}
	o.mode, o.button = ModeIdle, ButtonNone
}

// Wheel zooms by steps; positive steps move toward the target.
func (o *Orbit) Wheel(steps float64) {
	if !o.enabled || o.cam == nil || steps == 0 {
		return
	}
	o.cam.Zoom(o.cam.Distance() * o.zoomSpeed * steps)
}
