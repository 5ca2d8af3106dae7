package render

import (
	"math"

	"github.com/lixenwraith/flight-globe/vmath"
)

// Projector maps globe-local scene points onto terminal cells
// The globe is rotated by (RotX, RotY) about its center, the camera sits at
// (0, OffsetY, Zoom) looking down -Z
type Projector struct {
	width, height int
	cx, cy        float64
	focal         float64 // rows per unit at depth 1
	aspect        float64 // cell height / width

	cam        vmath.Vec3F
	rotX, rotY float64
	sinX, cosX float64
	sinY, cosY float64

	// Occluding sphere at the origin, zero disables occlusion
	radius float64
}

// NewProjector creates a projector for a width x height viewport
// fovDeg is the vertical field of view, aspect is the cell height/width ratio
func NewProjector(width, height int, fovDeg, aspect, radius float64) *Projector {
	p := &Projector{
		width:  width,
		height: height,
		cx:     float64(width) / 2,
		cy:     float64(height) / 2,
		aspect: aspect,
		radius: radius,
	}
	p.focal = (float64(height) / 2) / math.Tan(vmath.DegToRad(fovDeg)/2)
	p.SetCamera(0, 0, 0, 3)
	return p
}

// SetCamera sets globe rotation and camera placement
func (p *Projector) SetCamera(rotX, rotY, offsetY, zoom float64) {
	p.rotX, p.rotY = rotX, rotY
	p.sinX, p.cosX = math.Sincos(rotX)
	p.sinY, p.cosY = math.Sincos(rotY)
	p.cam = vmath.Vec3F{X: 0, Y: offsetY, Z: zoom}
}

// Size returns the viewport dimensions
func (p *Projector) Size() (int, int) {
	return p.width, p.height
}

// Radius returns the occluding sphere radius
func (p *Projector) Radius() float64 {
	return p.radius
}

// Camera returns the camera position in world space
func (p *Projector) Camera() vmath.Vec3F {
	return p.cam
}

// ToWorld applies the globe rotation: Y first, then X
func (p *Projector) ToWorld(v vmath.Vec3F) vmath.Vec3F {
	x := v.X*p.cosY + v.Z*p.sinY
	z := -v.X*p.sinY + v.Z*p.cosY
	y := v.Y
	return vmath.Vec3F{
		X: x,
		Y: y*p.cosX - z*p.sinX,
		Z: y*p.sinX + z*p.cosX,
	}
}

// ToLocal is the inverse of ToWorld
func (p *Projector) ToLocal(w vmath.Vec3F) vmath.Vec3F {
	y := w.Y*p.cosX + w.Z*p.sinX
	z := -w.Y*p.sinX + w.Z*p.cosX
	return vmath.Vec3F{
		X: w.X*p.cosY - z*p.sinY,
		Y: y,
		Z: w.X*p.sinY + z*p.cosY,
	}
}

// Project returns the screen position and camera depth of a globe-local point
// ok is false behind the camera; points outside the viewport still project
func (p *Projector) Project(v vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	return p.ProjectWorld(p.ToWorld(v))
}

// ProjectWorld projects a world-space point
func (p *Projector) ProjectWorld(w vmath.Vec3F) (sx, sy, depth float64, ok bool) {
	c := vmath.V3FSub(w, p.cam)
	depth = -c.Z
	if depth <= 1e-6 {
		return 0, 0, depth, false
	}
	inv := p.focal / depth
	sx = p.cx + c.X*inv*p.aspect
	sy = p.cy - c.Y*inv
	return sx, sy, depth, true
}

// Cell rounds a projected position to a cell, ok is false outside the viewport
func (p *Projector) Cell(sx, sy float64) (x, y int, ok bool) {
	x = int(math.Floor(sx))
	y = int(math.Floor(sy))
	return x, y, x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Occluded reports whether the sphere hides world-space point w from the camera
// Points on the surface facing the camera are visible
func (p *Projector) Occluded(w vmath.Vec3F) bool {
	if p.radius <= 0 {
		return false
	}
	d := vmath.V3FSub(w, p.cam)
	dist := vmath.V3FMag(d)
	if dist == 0 {
		return false
	}
	dir := vmath.V3FScale(d, 1/dist)
	t, hit := p.raySphere(dir)
	// Small tolerance keeps surface-hugging geometry visible on the near side
	return hit && t < dist-1e-4*p.radius
}

// Visible projects a globe-local point and applies occlusion and viewport tests
func (p *Projector) Visible(v vmath.Vec3F) (x, y int, depth float64, ok bool) {
	return p.VisibleWorld(p.ToWorld(v))
}

// VisibleWorld is Visible for a world-space point
func (p *Projector) VisibleWorld(w vmath.Vec3F) (x, y int, depth float64, ok bool) {
	sx, sy, depth, ok := p.ProjectWorld(w)
	if !ok || p.Occluded(w) {
		return 0, 0, depth, false
	}
	x, y, ok = p.Cell(sx, sy)
	return x, y, depth, ok
}

// Ray returns the normalized world-space direction through the center of cell x, y
func (p *Projector) Ray(x, y int) vmath.Vec3F {
	dx := (float64(x) + 0.5 - p.cx) / (p.focal * p.aspect)
	dy := -(float64(y) + 0.5 - p.cy) / p.focal
	return vmath.V3FNormalize(vmath.Vec3F{X: dx, Y: dy, Z: -1})
}

// raySphere intersects a camera ray with the sphere, returning the nearest t > 0
func (p *Projector) raySphere(dir vmath.Vec3F) (float64, bool) {
	b := vmath.V3FDot(p.cam, dir)
	c := vmath.V3FMagSq(p.cam) - p.radius*p.radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t <= 0 {
		t = -b + sq
		if t <= 0 {
			return 0, false
		}
	}
	return t, true
}

// Hit casts the ray through cell x, y against the sphere
// Returns the world-space hit point, or the ray's closest approach distance on a miss
func (p *Projector) Hit(x, y int) (hit vmath.Vec3F, closest float64, ok bool) {
	dir := p.Ray(x, y)
	if t, ok := p.raySphere(dir); ok {
		return vmath.V3FAdd(p.cam, vmath.V3FScale(dir, t)), 0, true
	}
	b := vmath.V3FDot(p.cam, dir)
	nearest := vmath.V3FSub(p.cam, vmath.V3FScale(dir, b))
	if b > 0 {
		// Sphere is behind the camera
		return vmath.Vec3F{}, vmath.V3FMag(p.cam), false
	}
	return vmath.Vec3F{}, vmath.V3FMag(nearest), false
}

// PixelScale returns how many rows one scene unit spans at depth
func (p *Projector) PixelScale(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return p.focal / depth
}

// Aspect returns the cell height/width ratio
func (p *Projector) Aspect() float64 {
	return p.aspect
}
