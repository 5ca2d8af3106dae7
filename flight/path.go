package flight

import (
	"time"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

// State is a path lifecycle phase; transitions only move forward
type State uint8

const (
	StateBuilding State = iota
	StateRevealing
	StateFlashing
	StateRetracting
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "Building"
	case StateRevealing:
		return "Revealing"
	case StateFlashing:
		return "Flashing"
	case StateRetracting:
		return "Retracting"
	case StateRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Event reports a notable transition from Path.Update
type Event uint8

const (
	EventNone Event = iota
	EventArrived
	EventRemoved
)

// Path is one animated arc between two surface points
// Update advances exactly one step; each instance owns its cursor and geometry
type Path struct {
	ID   uint64
	From string
	To   string

	points []vmath.Vec3F
	cursor int
	state  State
	phase  float64

	graph  *scene.Graph
	line   *scene.Line
	lineID scene.NodeID
	glow   *scene.Line
	glowID scene.NodeID

	glowOpacity float64
}

// ControlPoint returns the arc apex: midpoint direction pushed to radius+lift
// Antipodal endpoints have no midpoint direction, a perpendicular is used instead
func ControlPoint(start, end vmath.Vec3F, radius, lift float64) vmath.Vec3F {
	mid := vmath.V3FScale(vmath.V3FAdd(start, end), 0.5)
	if vmath.V3FMagSq(mid) < 1e-18 {
		mid = vmath.V3FPerpendicular(start)
	}
	return vmath.V3FSetLength(mid, radius+lift)
}

// SampleArc returns the Segments+1 points of the arc from start to end
func SampleArc(start, end vmath.Vec3F, cfg Config) []vmath.Vec3F {
	ctrl := ControlPoint(start, end, cfg.Radius, cfg.Lift)
	return vmath.SampleQuadratic(start, ctrl, end, cfg.Segments)
}

// NewPath samples the arc; geometry is attached on the first Update
func NewPath(start, end vmath.Vec3F, cfg Config, graph *scene.Graph) *Path {
	return newPathFromPoints(SampleArc(start, end, cfg), cfg, graph)
}

// newPathFromPoints builds a path over a pre-sampled curve, points is never mutated
func newPathFromPoints(points []vmath.Vec3F, cfg Config, graph *scene.Graph) *Path {
	p := &Path{
		points: points,
		state:  StateBuilding,
		graph:  graph,
		line: &scene.Line{
			Color:   parameter.ColorFlight,
			Opacity: 1,
		},
	}
	if cfg.Glow {
		p.glowOpacity = cfg.GlowOpacity
		p.glow = &scene.Line{
			Color:   parameter.ColorFlight,
			Opacity: cfg.GlowOpacity,
			Glow:    true,
		}
	}
	return p
}

// Update advances the state machine by one tick
// dt only drives the color phase, progress is counted in ticks
func (p *Path) Update(dt time.Duration) Event {
	switch p.state {
	case StateBuilding:
		p.lineID = p.graph.Attach(p.line)
		if p.glow != nil {
			p.glowID = p.graph.Attach(p.glow)
		}
		p.state = StateRevealing

	case StateRevealing:
		p.cursor++
		p.phase += dt.Seconds()
		p.setVisible(p.points[:p.cursor])
		if p.cursor >= len(p.points) {
			p.state = StateFlashing
		}

	case StateFlashing:
		// Marker spawn is the caller's response to EventArrived
		p.state = StateRetracting
		return EventArrived

	case StateRetracting:
		p.cursor--
		p.phase += dt.Seconds()
		n := len(p.points)
		p.setVisible(p.points[n-p.cursor:])
		if p.glow != nil {
			p.glow.Opacity = p.glowOpacity * float64(p.cursor) / float64(n)
		}
		if p.cursor <= 0 {
			p.detach()
			return EventRemoved
		}
	}
	return EventNone
}

// Cancel detaches all geometry immediately; safe in any state
func (p *Path) Cancel() {
	if p.state == StateRemoved {
		return
	}
	p.detach()
}

func (p *Path) detach() {
	p.graph.Detach(p.lineID)
	if p.glow != nil {
		p.graph.Detach(p.glowID)
	}
	p.line.Points = nil
	if p.glow != nil {
		p.glow.Points = nil
	}
	p.cursor = 0
	p.state = StateRemoved
}

func (p *Path) setVisible(pts []vmath.Vec3F) {
	p.line.Points = pts
	p.line.Phase = p.phase
	if p.glow != nil {
		p.glow.Points = pts
		p.glow.Phase = p.phase
	}
}

// State returns the current lifecycle phase
func (p *Path) State() State {
	return p.state
}

// Cursor returns the reveal or retract cursor
func (p *Path) Cursor() int {
	return p.cursor
}

// Points returns the full sampled curve
func (p *Path) Points() []vmath.Vec3F {
	return p.points
}

// Visible returns the currently drawn part of the curve
func (p *Path) Visible() []vmath.Vec3F {
	return p.line.Points
}

// Phase returns the accumulated color oscillation time in seconds
func (p *Path) Phase() float64 {
	return p.phase
}

// Start returns the first curve point
func (p *Path) Start() vmath.Vec3F {
	return p.points[0]
}

// End returns the last curve point
func (p *Path) End() vmath.Vec3F {
	return p.points[len(p.points)-1]
}

// Attached reports whether the main line is in the scene graph
func (p *Path) Attached() bool {
	return p.lineID != 0 && p.graph.Contains(p.lineID)
}

// GlowOpacity returns the glow line opacity, zero without glow
func (p *Path) GlowOpacity() float64 {
	if p.glow == nil {
		return 0
	}
	return p.glow.Opacity
}
