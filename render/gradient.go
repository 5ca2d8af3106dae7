package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// LerpLab interpolates in CIE L*a*b*, avoiding the muddy midpoint of RGB lerp
func LerpLab(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t))
}

// Gradient is a precomputed Lab ramp sampled at fixed steps
type Gradient struct {
	steps []RGB
}

// NewGradient samples n colors from a to b, n is at least 2
func NewGradient(a, b RGB, n int) *Gradient {
	n = max(n, 2)
	g := &Gradient{steps: make([]RGB, n)}
	for i := range g.steps {
		g.steps[i] = LerpLab(a, b, float64(i)/float64(n-1))
	}
	return g
}

// At returns the nearest precomputed color for t in [0, 1]
func (g *Gradient) At(t float64) RGB {
	if t <= 0 {
		return g.steps[0]
	}
	if t >= 1 {
		return g.steps[len(g.steps)-1]
	}
	return g.steps[int(t*float64(len(g.steps)-1)+0.5)]
}
