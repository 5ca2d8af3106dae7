package renderers

import (
	"math"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/vmath"
)

// GlobeRenderer ray-casts the Earth sphere with rim glow, halo and graticule
type GlobeRenderer struct {
	base  render.RGB
	glow  render.RGB
	grid  render.RGB
	light vmath.Vec3F

	step      float64
	halfWidth float64
	graticule bool
}

// NewGlobeRenderer creates the globe layer with the graticule enabled
func NewGlobeRenderer() *GlobeRenderer {
	l := parameter.GlobeLightDirection
	return &GlobeRenderer{
		base:      render.Hex(parameter.ColorGlobe),
		glow:      render.Hex(parameter.ColorGlobeGlow),
		grid:      render.Hex(parameter.ColorGraticule),
		light:     vmath.V3FNormalize(vmath.Vec3F{X: l[0], Y: l[1], Z: l[2]}),
		step:      parameter.GraticuleStep,
		halfWidth: parameter.GraticuleWidth,
		graticule: true,
	}
}

// SetGraticule toggles latitude/longitude lines
func (g *GlobeRenderer) SetGraticule(on bool) {
	g.graticule = on
}

// Render shades every viewport cell whose ray hits or grazes the sphere
func (g *GlobeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projector
	if p == nil {
		return
	}
	w, h := p.Size()
	radius := p.Radius()
	halo := radius * parameter.GlobeHaloWidth

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hit, closest, ok := p.Hit(x, y)
			if !ok {
				if closest < radius+halo {
					// Outer glow - exponential falloff
					t := (closest - radius) / halo
					alpha := math.Exp(-t*3.0) * 0.6
					buf.Set(x, y, 0, render.RGB{}, g.glow, render.BlendScreenBg, alpha, 0)
				}
				continue
			}

			n := vmath.V3FScale(hit, 1/radius)
			facing := -vmath.V3FDot(n, p.Ray(x, y))
			rim := 1.0 - facing
			rim = rim * rim * 0.8

			lambert := math.Max(0, vmath.V3FDot(n, g.light))
			col := render.Scale(g.base, parameter.GlobeAmbient+(1-parameter.GlobeAmbient)*lambert)
			col = render.Screen(col, g.glow, rim)

			if g.graticule && g.onGrid(p.ToLocal(hit)) {
				col = render.Blend(col, g.grid, 0.35*facing)
			}
			buf.SetBgOnly(x, y, col)
		}
	}
}

// onGrid reports whether a globe-local surface point lies on a graticule line
func (g *GlobeRenderer) onGrid(local vmath.Vec3F) bool {
	lat, lon := vmath.Vec3ToLatLong(local)
	if math.Abs(math.Remainder(lat, g.step)) < g.halfWidth {
		return true
	}
	// Meridians converge, stop them short of the poles
	if math.Abs(lat) > 90-g.step {
		return false
	}
	return math.Abs(math.Remainder(lon, g.step)) < g.halfWidth
}
