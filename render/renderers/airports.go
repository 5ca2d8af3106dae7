package renderers

import (
	"github.com/lixenwraith/flight-globe/airport"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/vmath"
)

type airportSprite struct {
	base  vmath.Vec3F
	tip   vmath.Vec3F
	glyph rune
}

// AirportRenderer draws airport markers and traffic spikes
type AirportRenderer struct {
	sprites []airportSprite
	color   render.RGB
	spike   render.RGB
	spikes  bool
}

// NewAirportRenderer places every catalog airport on a sphere of radius
func NewAirportRenderer(catalog *airport.Catalog, radius float64) *AirportRenderer {
	r := &AirportRenderer{
		color:  render.Hex(parameter.ColorAirport),
		spike:  render.Scale(render.Hex(parameter.ColorAirport), 0.45),
		spikes: true,
	}
	positions := catalog.Positions(radius)
	r.sprites = make([]airportSprite, len(positions))
	for i, pos := range positions {
		a := catalog.At(i)
		mag := vmath.V3FMag(pos)
		r.sprites[i] = airportSprite{
			base:  pos,
			tip:   vmath.V3FSetLength(pos, mag+a.SpikeHeight()),
			glyph: airportGlyph(a.MarkerRadius()),
		}
	}
	return r
}

// SetSpikes toggles traffic spikes
func (r *AirportRenderer) SetSpikes(on bool) {
	r.spikes = on
}

// airportGlyph buckets marker radius into three glyph sizes
func airportGlyph(radius float64) rune {
	switch {
	case radius < 0.005:
		return '·'
	case radius < 0.0075:
		return '•'
	default:
		return '●'
	}
}

// Render draws spikes first so the base glyph stays on top
func (r *AirportRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projector
	if p == nil {
		return
	}
	if r.spikes {
		for _, s := range r.sprites {
			traceSegment(p, s.base, s.tip, func(x, y int, dx, dy float64) {
				buf.SetFgOnly(x, y, segmentGlyph(dx, dy), r.spike, 0)
			})
		}
	}
	for _, s := range r.sprites {
		if x, y, _, ok := p.Visible(s.base); ok {
			buf.SetFgOnly(x, y, s.glyph, r.color, 0)
		}
	}
}
