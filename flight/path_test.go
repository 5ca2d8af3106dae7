package flight

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

const tick = 16 * time.Millisecond

func testEndpoints(r float64) (vmath.Vec3F, vmath.Vec3F) {
	return vmath.LatLongToVec3(33.94, -118.41, r), vmath.LatLongToVec3(40.64, -73.78, r)
}

// TestPathLifecycle walks a path through every state and checks visible geometry at each boundary
func TestPathLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	g := scene.NewGraph()
	start, end := testEndpoints(cfg.Radius)
	p := NewPath(start, end, cfg, g)

	n := cfg.Segments + 1
	if len(p.Points()) != n {
		t.Fatalf("points = %d, want %d", len(p.Points()), n)
	}
	if p.State() != StateBuilding {
		t.Fatalf("initial state = %v, want Building", p.State())
	}

	if ev := p.Update(tick); ev != EventNone || p.State() != StateRevealing {
		t.Fatalf("after first update: state = %v, event = %v", p.State(), ev)
	}
	if !p.Attached() {
		t.Fatal("path not attached after Building")
	}
	if got := g.CountKind(scene.KindLine); got != 2 {
		t.Errorf("lines in graph = %d, want 2 (main + glow)", got)
	}

	for i := 1; i <= n; i++ {
		p.Update(tick)
		if len(p.Visible()) != i {
			t.Fatalf("reveal step %d: visible = %d", i, len(p.Visible()))
		}
	}
	if p.State() != StateFlashing {
		t.Fatalf("state after reveal = %v, want Flashing", p.State())
	}
	vis := p.Visible()
	for i := range p.Points() {
		if vis[i] != p.Points()[i] {
			t.Fatalf("visible[%d] = %v, want %v", i, vis[i], p.Points()[i])
		}
	}
	if p.Phase() <= 0 {
		t.Error("phase did not advance during reveal")
	}

	if ev := p.Update(tick); ev != EventArrived || p.State() != StateRetracting {
		t.Fatalf("flash tick: state = %v, event = %v", p.State(), ev)
	}

	prevGlow := p.GlowOpacity()
	var last Event
	for i := 0; i < n; i++ {
		last = p.Update(tick)
		if p.GlowOpacity() > prevGlow {
			t.Fatalf("glow opacity increased during retract: %v -> %v", prevGlow, p.GlowOpacity())
		}
		prevGlow = p.GlowOpacity()
		if p.State() == StateRetracting {
			// Trailing end shrinks, the destination stays
			if got := p.Visible()[len(p.Visible())-1]; got != end {
				t.Fatalf("retract step %d: last visible = %v, want end %v", i, got, end)
			}
		}
	}
	if last != EventRemoved || p.State() != StateRemoved {
		t.Fatalf("after retract: state = %v, event = %v", p.State(), last)
	}
	if len(p.Visible()) != 0 {
		t.Errorf("visible after removal = %d, want 0", len(p.Visible()))
	}
	if p.Attached() || g.Len() != 0 {
		t.Errorf("geometry still attached: graph len = %d", g.Len())
	}

	// Terminal state is sticky
	if ev := p.Update(tick); ev != EventNone || p.State() != StateRemoved {
		t.Errorf("update after removal: state = %v, event = %v", p.State(), ev)
	}
}

// TestPathEndpointsAndDirection verifies swapping endpoints reverses point order
func TestPathEndpointsAndDirection(t *testing.T) {
	cfg := DefaultConfig()
	g := scene.NewGraph()
	a, b := testEndpoints(cfg.Radius)

	ab := NewPath(a, b, cfg, g).Points()
	ba := NewPath(b, a, cfg, g).Points()

	if ab[0] != a || ab[len(ab)-1] != b {
		t.Errorf("ab endpoints = %v..%v", ab[0], ab[len(ab)-1])
	}
	if ba[0] != b || ba[len(ba)-1] != a {
		t.Errorf("ba endpoints = %v..%v", ba[0], ba[len(ba)-1])
	}
	if ab[1] == ba[1] {
		t.Error("interior order should depend on direction")
	}
	mid := len(ab) / 2
	if vmath.V3FDist(ab[mid], ba[len(ba)-1-mid]) > 1e-12 {
		t.Error("reversed path should trace the same curve backwards")
	}
}

// TestPathArcRisesAboveSurface verifies the lifted control point bows the curve outward
func TestPathArcRisesAboveSurface(t *testing.T) {
	cfg := DefaultConfig()
	a, b := testEndpoints(cfg.Radius)
	pts := NewPath(a, b, cfg, scene.NewGraph()).Points()
	if r := vmath.V3FMag(pts[len(pts)/2]); r <= cfg.Radius {
		t.Errorf("apex radius = %v, want > %v", r, cfg.Radius)
	}
}

func TestControlPointAntipodal(t *testing.T) {
	a := vmath.Vec3F{X: 1}
	b := vmath.Vec3F{X: -1}
	c := ControlPoint(a, b, 1, 0.1)
	if math.Abs(vmath.V3FMag(c)-1.1) > 1e-12 {
		t.Errorf("control radius = %v, want 1.1", vmath.V3FMag(c))
	}
	if math.Abs(vmath.V3FDot(c, a)) > 1e-12 {
		t.Errorf("control point %v not perpendicular to endpoints", c)
	}
}

func TestPathCancel(t *testing.T) {
	cfg := DefaultConfig()
	g := scene.NewGraph()
	a, b := testEndpoints(cfg.Radius)
	p := NewPath(a, b, cfg, g)
	for i := 0; i < 10; i++ {
		p.Update(tick)
	}
	p.Cancel()
	p.Cancel()
	if p.State() != StateRemoved || g.Len() != 0 {
		t.Errorf("after cancel: state = %v, graph len = %d", p.State(), g.Len())
	}

	// Cancel before geometry was attached must not touch the graph
	other := g.Attach(&scene.Sprite{})
	q := NewPath(a, b, cfg, g)
	q.Cancel()
	if !g.Contains(other) {
		t.Error("cancelling an unattached path detached an unrelated node")
	}
}

func TestPathWithoutGlow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Glow = false
	g := scene.NewGraph()
	a, b := testEndpoints(cfg.Radius)
	p := NewPath(a, b, cfg, g)
	p.Update(tick)
	if g.Len() != 1 {
		t.Errorf("graph len = %d, want 1", g.Len())
	}
	if p.GlowOpacity() != 0 {
		t.Errorf("GlowOpacity = %v, want 0", p.GlowOpacity())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateBuilding, "Building"},
		{StateRevealing, "Revealing"},
		{StateFlashing, "Flashing"},
		{StateRetracting, "Retracting"},
		{StateRemoved, "Removed"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
