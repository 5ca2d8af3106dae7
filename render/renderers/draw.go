package renderers

import (
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/vmath"
)

// segmentGlyph picks a box-drawing rune for a screen-space direction
// dy is in rows, dx in columns; cells are about twice as tall as wide
func segmentGlyph(dx, dy float64) rune {
	ax, ay := vmath.Abs(dx), vmath.Abs(dy)*2
	switch {
	case ax == 0 && ay == 0:
		return '•'
	case ax > ay*2:
		return '─'
	case ay > ax*2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// traceSegment walks the cells between two globe-local points
// Segments with an endpoint hidden behind the sphere or the camera are skipped
// fn receives the cell and the screen-space direction of the segment
func traceSegment(p *render.Projector, a, b vmath.Vec3F, fn func(x, y int, dx, dy float64)) {
	wa, wb := p.ToWorld(a), p.ToWorld(b)
	if p.Occluded(wa) || p.Occluded(wb) {
		return
	}
	ax, ay, _, okA := p.ProjectWorld(wa)
	bx, by, _, okB := p.ProjectWorld(wb)
	if !okA || !okB {
		return
	}
	w, h := p.Size()
	// Both ends off the same side of the viewport
	if (ax < 0 && bx < 0) || (ay < 0 && by < 0) ||
		(ax >= float64(w) && bx >= float64(w)) || (ay >= float64(h) && by >= float64(h)) {
		return
	}
	dx, dy := bx-ax, by-ay
	vmath.Traverse(ax, ay, bx, by, func(x, y int) bool {
		if x >= 0 && x < w && y >= 0 && y < h {
			fn(x, y, dx, dy)
		}
		return true
	})
}

// tracePolyline walks consecutive segments of pts
func tracePolyline(p *render.Projector, pts []vmath.Vec3F, fn func(x, y int, dx, dy float64)) {
	if len(pts) == 1 {
		if x, y, _, ok := p.Visible(pts[0]); ok {
			fn(x, y, 0, 0)
		}
		return
	}
	for i := 1; i < len(pts); i++ {
		traceSegment(p, pts[i-1], pts[i], fn)
	}
}
