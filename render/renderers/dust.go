package renderers

import (
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

// DustRenderer draws point clouds in globe-local space so dust turns with the globe
type DustRenderer struct {
	graph   *scene.Graph
	visible bool
}

// NewDustRenderer draws every PointCloud in graph
func NewDustRenderer(graph *scene.Graph) *DustRenderer {
	return &DustRenderer{graph: graph, visible: true}
}

// IsVisible implements render.VisibilityToggle
func (d *DustRenderer) IsVisible() bool {
	return d.visible
}

// SetVisible shows or hides the dust layer
func (d *DustRenderer) SetVisible(on bool) {
	d.visible = on
}

// Render projects each particle; brightness falls off with depth
func (d *DustRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projector
	if p == nil {
		return
	}
	d.graph.Each(func(_ scene.NodeID, n scene.Node) bool {
		pc, ok := n.(*scene.PointCloud)
		if !ok {
			return true
		}
		base := render.Hex(pc.Color)
		pos := pc.Positions
		for i := 0; i+2 < len(pos); i += 3 {
			v := vmath.Vec3F{X: pos[i], Y: pos[i+1], Z: pos[i+2]}
			x, y, depth, ok := p.Visible(v)
			if !ok {
				continue
			}
			k := vmath.Clamp(parameter.DustNearDepth/depth, 0.2, 1) * pc.Opacity
			glyph := '·'
			if depth < parameter.DustNearDepth/2 {
				glyph = '•'
			}
			cur := buf.Get(x, y)
			buf.SetFgOnly(x, y, glyph, render.Blend(cur.Bg, base, k), 0)
		}
		pc.NeedsUpdate = false
		return true
	})
}
