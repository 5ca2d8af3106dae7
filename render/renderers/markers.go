package renderers

import (
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

// MarkerRenderer draws arrival sprites as pulsing rings
type MarkerRenderer struct {
	graph *scene.Graph
}

// NewMarkerRenderer draws every Sprite in graph
func NewMarkerRenderer(graph *scene.Graph) *MarkerRenderer {
	return &MarkerRenderer{graph: graph}
}

// Render draws a ring of radius scale around each visible sprite
// Rings smaller than a cell collapse to a single glyph
func (m *MarkerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projector
	if p == nil {
		return
	}
	aspect := p.Aspect()
	m.graph.Each(func(_ scene.NodeID, n scene.Node) bool {
		s, ok := n.(*scene.Sprite)
		if !ok || s.Opacity <= 0 {
			return true
		}
		w := p.ToWorld(s.Position)
		if p.Occluded(w) {
			return true
		}
		sx, sy, depth, ok := p.ProjectWorld(w)
		if !ok {
			return true
		}
		color := render.Hex(s.Color)
		ry := s.Scale * p.PixelScale(depth)

		if ry < 1 {
			if x, y, ok := p.Cell(sx, sy); ok {
				cur := buf.Get(x, y)
				glyph := 'o'
				if ry < 0.5 {
					glyph = '∘'
				}
				buf.SetFgOnly(x, y, glyph, render.Blend(cur.Bg, color, s.Opacity), 0)
			}
			return true
		}

		rx := ry * aspect
		vw, vh := p.Size()
		minX, maxX := max(0, int(sx-rx-1)), min(vw-1, int(sx+rx+1))
		minY, maxY := max(0, int(sy-ry-1)), min(vh-1, int(sy+ry+1))
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				nx := (float64(x) + 0.5 - sx) / rx
				ny := (float64(y) + 0.5 - sy) / ry
				d := nx*nx + ny*ny
				if d < 0.6 || d > 1.4 {
					continue
				}
				// Ring intensity peaks on the circle
				k := (1 - vmath.Abs(d-1)/0.4) * s.Opacity
				buf.Set(x, y, 0, render.RGB{}, color, render.BlendScreenBg, k, 0)
			}
		}
		return true
	})
}
