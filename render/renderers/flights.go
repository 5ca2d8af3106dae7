package renderers

import (
	"math"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/scene"
)

// FlightRenderer draws scene lines: glow lines as background wash, paths as glyph trails
type FlightRenderer struct {
	graph    *scene.Graph
	gradient *render.Gradient
	glow     render.RGB
}

// NewFlightRenderer draws every Line in graph
func NewFlightRenderer(graph *scene.Graph) *FlightRenderer {
	return &FlightRenderer{
		graph:    graph,
		gradient: render.NewGradient(render.Hex(parameter.ColorFlight), render.Hex(parameter.ColorFlightAlt), 32),
		glow:     render.Hex(parameter.ColorFlight),
	}
}

// LineColor returns the oscillating path color for a phase in seconds
func (f *FlightRenderer) LineColor(phase float64) render.RGB {
	t := (math.Sin(phase*parameter.FlightColorFrequency) + 1) / 2
	return f.gradient.At(t)
}

// Render draws glow lines first, then path glyphs over them
func (f *FlightRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projector
	if p == nil {
		return
	}
	f.graph.Each(func(_ scene.NodeID, n scene.Node) bool {
		l, ok := n.(*scene.Line)
		if !ok || !l.Glow || len(l.Points) == 0 || l.Opacity <= 0 {
			return true
		}
		tracePolyline(p, l.Points, func(x, y int, _, _ float64) {
			buf.Set(x, y, 0, render.RGB{}, f.glow, render.BlendScreenBg, l.Opacity*0.6, 0)
		})
		return true
	})
	f.graph.Each(func(_ scene.NodeID, n scene.Node) bool {
		l, ok := n.(*scene.Line)
		if !ok || l.Glow || len(l.Points) == 0 {
			return true
		}
		color := f.LineColor(l.Phase)
		tracePolyline(p, l.Points, func(x, y int, dx, dy float64) {
			cur := buf.Get(x, y)
			buf.SetFgOnly(x, y, segmentGlyph(dx, dy), render.Blend(cur.Bg, color, l.Opacity), 0)
		})
		return true
	})
}
