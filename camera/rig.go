package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/vmath"
)

// View is a camera pose: globe rotation plus camera distance and height
type View struct {
	RotX    float64 `msgpack:"rot_x"`
	RotY    float64 `msgpack:"rot_y"`
	Zoom    float64 `msgpack:"zoom"`
	OffsetY float64 `msgpack:"offset_y"`
}

// TouchPoint is one contact in screen units
type TouchPoint struct {
	X, Y float64
}

// Rig eases the current view toward the target view once per tick
// Input handlers write Target only, Update is the only writer of Current
type Rig struct {
	cfg  Config
	time engine.TimeProvider

	target  View
	current View

	// Always-on spin added to the eased Y rotation
	spin    float64
	spinDir int

	dragging     bool
	lastX, lastY float64
	lastDrag     time.Time

	touching  bool
	lastTouch TouchPoint
	pinchDist float64
	pinching  bool
}

// NewRig starts far out at the intro distance and eases in to the initial zoom
// tp measures drag throttling, nil disables it
func NewRig(cfg Config, tp engine.TimeProvider) *Rig {
	r := &Rig{
		cfg:     cfg,
		time:    tp,
		spinDir: 1,
	}
	r.target.Zoom = cfg.ZoomInitial
	r.current.Zoom = math.Max(cfg.ZoomIntro, cfg.ZoomInitial)
	return r
}

// Update advances one tick: auto-rotation then easing of every channel
func (r *Rig) Update() {
	if b := r.cfg.AutoRotationBound; b > 0 {
		r.spin, r.spinDir = vmath.PingPong(r.spin, r.cfg.AutoRotationSpeed, -b, b, r.spinDir)
	} else {
		r.spin += r.cfg.AutoRotationSpeed
	}

	r.current.RotX = vmath.Ease(r.current.RotX, r.target.RotX, r.cfg.RotationEasing)
	r.current.RotY = vmath.Ease(r.current.RotY, r.target.RotY, r.cfg.RotationEasing)
	r.current.Zoom = vmath.Ease(r.current.Zoom, r.target.Zoom, r.cfg.ZoomEasing)
	r.current.OffsetY = vmath.Ease(r.current.OffsetY, r.target.OffsetY, r.cfg.ZoomEasing)
}

// Target returns the view input is steering toward
func (r *Rig) Target() View {
	return r.target
}

// Current returns the eased view
func (r *Rig) Current() View {
	return r.current
}

// Spin returns the accumulated auto-rotation angle
func (r *Rig) Spin() float64 {
	return r.spin
}

// Orientation returns the globe rotation to draw: eased rotation plus spin on Y
func (r *Rig) Orientation() (rotX, rotY float64) {
	return r.current.RotX, r.current.RotY + r.spin
}

// Position returns the camera position; the camera looks down -Z at the origin
func (r *Rig) Position() vmath.Vec3F {
	return vmath.Vec3F{X: 0, Y: r.current.OffsetY, Z: r.current.Zoom}
}

// SetTarget replaces the target view, zoom and offset are clamped
func (r *Rig) SetTarget(v View) {
	v.Zoom = vmath.Clamp(v.Zoom, r.cfg.ZoomMin, r.cfg.ZoomMax)
	v.OffsetY = vmath.Clamp(v.OffsetY, r.cfg.OffsetMin, r.cfg.OffsetMax)
	r.target = v
}

// Reset returns the target to the initial pose
func (r *Rig) Reset() {
	r.target = View{Zoom: r.cfg.ZoomInitial}
}

// Rotate adds a rotation delta in cell or pixel units directly to the target
func (r *Rig) Rotate(dx, dy float64) {
	r.target.RotY += dx * r.cfg.DragSensitivity
	r.target.RotX += dy * r.cfg.DragSensitivity
}

// BeginDrag records the pointer position a drag starts from
func (r *Rig) BeginDrag(x, y float64) {
	r.dragging = true
	r.lastX, r.lastY = x, y
}

// DragTo rotates by the pointer delta since the last accepted move
// Returns false when not dragging or the move is throttled
func (r *Rig) DragTo(x, y float64) bool {
	if !r.dragging || !r.allowDrag() {
		return false
	}
	r.Rotate(x-r.lastX, y-r.lastY)
	r.lastX, r.lastY = x, y
	return true
}

// EndDrag stops the current drag
func (r *Rig) EndDrag() {
	r.dragging = false
}

// Dragging reports whether a drag is in progress
func (r *Rig) Dragging() bool {
	return r.dragging
}

// allowDrag applies the optional minimum interval between drag updates
// Throttled moves keep the previous anchor so no rotation is lost
func (r *Rig) allowDrag() bool {
	if r.cfg.DragThrottle <= 0 || r.time == nil {
		return true
	}
	now := r.time.Now()
	if !r.lastDrag.IsZero() && now.Sub(r.lastDrag) < r.cfg.DragThrottle {
		return false
	}
	r.lastDrag = now
	return true
}

// Wheel zooms and shifts the camera height by a scroll delta, positive scrolls out
func (r *Rig) Wheel(deltaY float64) {
	r.target.Zoom = vmath.Clamp(r.target.Zoom+deltaY*r.cfg.WheelZoomSpeed, r.cfg.ZoomMin, r.cfg.ZoomMax)
	r.target.OffsetY = vmath.Clamp(r.target.OffsetY-deltaY*r.cfg.WheelOffsetSpeed, r.cfg.OffsetMin, r.cfg.OffsetMax)
}

// WheelNotch applies one discrete wheel step, dir > 0 scrolls out
func (r *Rig) WheelNotch(dir int) {
	switch {
	case dir > 0:
		r.Wheel(r.cfg.WheelDelta)
	case dir < 0:
		r.Wheel(-r.cfg.WheelDelta)
	}
}

// Pinch applies a gesture scale factor, > 1 zooms in
func (r *Rig) Pinch(scale float64) {
	if scale <= 0 {
		return
	}
	var delta float64
	if scale > 1 {
		delta = -(scale - 1) * r.cfg.PinchZoomSpeed
	} else {
		delta = (1 - scale) * r.cfg.PinchZoomSpeed
	}
	r.target.Zoom = vmath.Clamp(r.target.Zoom+delta, r.cfg.ZoomMin, r.cfg.ZoomMax)
}

// TouchStart begins a one-finger drag or a two-finger pinch
func (r *Rig) TouchStart(touches []TouchPoint) {
	switch len(touches) {
	case 1:
		r.touching = true
		r.lastTouch = touches[0]
	case 2:
		r.touching = false
		r.pinchDist = touchDistance(touches[0], touches[1])
		r.pinching = true
	}
}

// TouchMove rotates on one finger and zooms on two
func (r *Rig) TouchMove(touches []TouchPoint) {
	switch {
	case len(touches) == 1 && r.touching:
		if !r.allowDrag() {
			return
		}
		t := touches[0]
		r.Rotate(t.X-r.lastTouch.X, t.Y-r.lastTouch.Y)
		r.lastTouch = t
	case len(touches) == 2:
		d := touchDistance(touches[0], touches[1])
		if r.pinching {
			r.target.Zoom = vmath.Clamp(r.target.Zoom+(r.pinchDist-d)*r.cfg.TouchZoomSpeed, r.cfg.ZoomMin, r.cfg.ZoomMax)
		}
		r.pinchDist = d
		r.pinching = true
	}
}

// TouchEnd resets touch state once no contacts remain
func (r *Rig) TouchEnd(remaining int) {
	if remaining == 0 {
		r.touching = false
		r.pinching = false
		r.pinchDist = 0
	}
}

func touchDistance(a, b TouchPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
