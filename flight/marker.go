package flight

import (
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

// Marker is the arrival pulse: scale ping-pongs while opacity fades to zero
// Its lifetime is independent of the path that spawned it
type Marker struct {
	sprite *scene.Sprite
	id     scene.NodeID
	graph  *scene.Graph
	dir    int
	done   bool
}

// NewMarker attaches a pulse sprite at pos
func NewMarker(graph *scene.Graph, pos vmath.Vec3F) *Marker {
	m := &Marker{
		sprite: &scene.Sprite{
			Position: pos,
			Scale:    parameter.MarkerInitialScale,
			Opacity:  parameter.MarkerInitialOpacity,
			Color:    parameter.ColorMarker,
		},
		graph: graph,
		dir:   1,
	}
	m.id = graph.Attach(m.sprite)
	return m
}

// Update advances the pulse one tick and returns false once the marker is gone
func (m *Marker) Update() bool {
	if m.done {
		return false
	}
	m.sprite.Scale, m.dir = vmath.PingPong(m.sprite.Scale, parameter.MarkerScaleStep,
		parameter.MarkerMinScale, parameter.MarkerMaxScale, m.dir)

	m.sprite.Opacity -= parameter.MarkerFadeStep
	if m.sprite.Opacity <= 0 {
		m.sprite.Opacity = 0
		m.Cancel()
		return false
	}
	return true
}

// Cancel detaches the sprite
func (m *Marker) Cancel() {
	if m.done {
		return
	}
	m.graph.Detach(m.id)
	m.done = true
}

// Done reports whether the marker has been removed
func (m *Marker) Done() bool {
	return m.done
}

// Scale returns the current sprite scale
func (m *Marker) Scale() float64 {
	return m.sprite.Scale
}

// Opacity returns the current sprite opacity
func (m *Marker) Opacity() float64 {
	return m.sprite.Opacity
}

// Position returns the sprite position
func (m *Marker) Position() vmath.Vec3F {
	return m.sprite.Position
}
