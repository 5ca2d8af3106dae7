package renderers

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/flight-globe/airport"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

const (
	testW = 80
	testH = 40
)

var testBg = render.RGB{R: 1, G: 1, B: 1}

func newCtx() (render.RenderContext, *render.RenderBuffer) {
	p := render.NewProjector(testW, testH, parameter.FieldOfView, parameter.CellAspect, 1)
	p.SetCamera(0, 0, 0, 3)
	ctx := render.RenderContext{
		ScreenWidth:    testW,
		ScreenHeight:   testH + parameter.HUDRows,
		ViewportWidth:  testW,
		ViewportHeight: testH,
		Projector:      p,
	}
	return ctx, render.NewRenderBuffer(testW, testH+parameter.HUDRows, testBg)
}

// front is the globe-local point facing the unrotated camera
var front = vmath.LatLongToVec3(0, -90, 1.001)

func TestGlobeRendererShadesSphere(t *testing.T) {
	ctx, buf := newCtx()
	NewGlobeRenderer().Render(ctx, buf)

	if !buf.Touched(testW/2, testH/2) {
		t.Error("globe center not shaded")
	}
	if buf.Touched(0, 0) {
		t.Error("corner far outside halo was shaded")
	}
}

func TestGlobeRendererNilProjector(t *testing.T) {
	_, buf := newCtx()
	NewGlobeRenderer().Render(render.RenderContext{}, buf)
	if buf.Touched(testW/2, testH/2) {
		t.Error("render without projector drew cells")
	}
}

func TestAirportRendererDrawsFacingAirport(t *testing.T) {
	cat, err := airport.NewCatalog([]airport.Airport{
		{IATA: "FRT", Lat: 0, Lon: -90, Traffic: 1e8},
		{IATA: "BCK", Lat: 0, Lon: 90, Traffic: 1e8},
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, buf := newCtx()
	r := NewAirportRenderer(cat, 1.001)
	r.SetSpikes(false)
	r.Render(ctx, buf)

	x, y, _, ok := ctx.Projector.Visible(front)
	if !ok {
		t.Fatal("front point not visible")
	}
	if got := buf.Get(x, y).Rune; got != '●' {
		t.Errorf("airport glyph = %q, want ●", got)
	}

	// The back airport is hidden, so only one cell has a glyph
	drawn := 0
	for yy := 0; yy < testH; yy++ {
		for xx := 0; xx < testW; xx++ {
			if buf.Get(xx, yy).Rune != 0 {
				drawn++
			}
		}
	}
	if drawn != 1 {
		t.Errorf("drawn cells = %d, want 1", drawn)
	}
}

func TestAirportGlyphBuckets(t *testing.T) {
	if airportGlyph(0.001) != '·' || airportGlyph(0.006) != '•' || airportGlyph(0.01) != '●' {
		t.Error("glyph buckets out of order")
	}
}

func TestFlightRendererDrawsLine(t *testing.T) {
	g := scene.NewGraph()
	a := vmath.LatLongToVec3(-10, -100, 1.001)
	b := vmath.LatLongToVec3(10, -80, 1.001)
	pts := vmath.SampleQuadratic(a, vmath.V3FSetLength(vmath.V3FAdd(a, b), 1.1), b, 20)
	g.Attach(&scene.Line{Points: pts, Color: parameter.ColorFlight, Opacity: 1, Glow: true})
	g.Attach(&scene.Line{Points: pts, Color: parameter.ColorFlight, Opacity: 1})

	ctx, buf := newCtx()
	NewFlightRenderer(g).Render(ctx, buf)

	glyphs, glowed := 0, 0
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			if strings.ContainsRune("─│╱╲•", buf.Get(x, y).Rune) {
				glyphs++
			}
			if buf.Touched(x, y) {
				glowed++
			}
		}
	}
	if glyphs < 5 {
		t.Errorf("line glyph cells = %d, want >= 5", glyphs)
	}
	if glowed == 0 {
		t.Error("glow line left no background")
	}
}

func TestFlightLineColorOscillates(t *testing.T) {
	f := NewFlightRenderer(scene.NewGraph())
	from, to := render.Hex(parameter.ColorFlight), render.Hex(parameter.ColorFlightAlt)
	seen := map[render.RGB]bool{}
	for i := 0; i < 100; i++ {
		seen[f.LineColor(float64(i)*0.05)] = true
	}
	if len(seen) < 3 {
		t.Errorf("only %d distinct colors over a cycle", len(seen))
	}
	lo := f.LineColor(-1.5707963267948966 / parameter.FlightColorFrequency)
	hi := f.LineColor(1.5707963267948966 / parameter.FlightColorFrequency)
	if lo != from || hi != to {
		t.Errorf("extremes = %+v %+v, want %+v %+v", lo, hi, from, to)
	}
}

func TestDustRendererConsumesAndToggles(t *testing.T) {
	g := scene.NewGraph()
	pc := &scene.PointCloud{
		Positions:   []float64{0, 0, 1.5, 0, 0, -1.5},
		Color:       parameter.ColorDust,
		Opacity:     1,
		NeedsUpdate: true,
	}
	g.Attach(pc)
	d := NewDustRenderer(g)

	ctx, buf := newCtx()
	d.Render(ctx, buf)
	if pc.NeedsUpdate {
		t.Error("NeedsUpdate not consumed")
	}
	x, y, _, ok := ctx.Projector.VisibleWorld(vmath.Vec3F{Z: 1.5})
	if !ok || buf.Get(x, y).Rune == 0 {
		t.Error("front particle not drawn")
	}

	d.SetVisible(false)
	if d.IsVisible() {
		t.Error("SetVisible(false) ignored")
	}
}

func TestDustTurnsWithGlobe(t *testing.T) {
	g := scene.NewGraph()
	// Behind the globe until it turns half way round
	g.Attach(&scene.PointCloud{Positions: []float64{0, 0, -1.5}, Color: parameter.ColorDust, Opacity: 1})
	d := NewDustRenderer(g)

	ctx, buf := newCtx()
	d.Render(ctx, buf)
	x, y, _, _ := ctx.Projector.VisibleWorld(vmath.Vec3F{Z: 1.5})
	if buf.Get(x, y).Rune != 0 {
		t.Fatalf("occluded particle drawn as %q", buf.Get(x, y).Rune)
	}

	ctx, buf = newCtx()
	ctx.Projector.SetCamera(0, math.Pi, 0, 3)
	d.Render(ctx, buf)
	x, y, _, ok := ctx.Projector.VisibleWorld(vmath.Vec3F{Z: 1.5})
	if !ok || buf.Get(x, y).Rune == 0 {
		t.Error("particle not carried to the front by the globe rotation")
	}
}

func TestMarkerRendererDrawsSprite(t *testing.T) {
	g := scene.NewGraph()
	g.Attach(&scene.Sprite{Position: front, Scale: 0.02, Opacity: 0.8, Color: parameter.ColorMarker})
	g.Attach(&scene.Sprite{Position: vmath.V3FScale(front, -1), Scale: 0.02, Opacity: 0.8, Color: parameter.ColorMarker})

	ctx, buf := newCtx()
	NewMarkerRenderer(g).Render(ctx, buf)

	x, y, _, _ := ctx.Projector.Visible(front)
	if r := buf.Get(x, y).Rune; r != 'o' && r != '∘' {
		t.Errorf("marker glyph = %q", r)
	}
}

func TestMarkerRendererLargeRing(t *testing.T) {
	g := scene.NewGraph()
	g.Attach(&scene.Sprite{Position: front, Scale: 0.3, Opacity: 1, Color: parameter.ColorMarker})
	ctx, buf := newCtx()
	NewMarkerRenderer(g).Render(ctx, buf)

	x, y, _, _ := ctx.Projector.Visible(front)
	if buf.Touched(x, y) {
		t.Error("ring center should stay empty")
	}
	ring := 0
	for yy := 0; yy < testH; yy++ {
		for xx := 0; xx < testW; xx++ {
			if buf.Touched(xx, yy) {
				ring++
			}
		}
	}
	if ring < 8 {
		t.Errorf("ring cells = %d, want >= 8", ring)
	}
}

type fixedStatus Status

func (s fixedStatus) Status() Status { return Status(s) }

func TestStatusLine(t *testing.T) {
	line := StatusLine(Status{Mode: "pair", Origin: "LAX", Dest: "JFK", Active: 3, Zoom: 2, Paused: true})
	for _, want := range []string{"PAIR", "LAX → JFK", "flights 3", "zoom 2.00", "PAUSED"} {
		if !strings.Contains(line, want) {
			t.Errorf("status line %q missing %q", line, want)
		}
	}
	if strings.Contains(StatusLine(Status{Mode: "random"}), "MUTED") {
		t.Error("MUTED shown while not muted")
	}
	if !strings.Contains(StatusLine(Status{Mode: "origin", Origin: "SEA"}), "from SEA") {
		t.Error("origin-only status missing 'from SEA'")
	}
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := buf.Get(x, y).Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestHUDRendererPrompt(t *testing.T) {
	ctx, buf := newCtx()
	src := fixedStatus{Mode: "random", PromptOpen: true, PromptLabel: "/", PromptText: "LAX JFK"}
	NewHUDRenderer(src).Render(ctx, buf)

	status := rowText(buf, testH)
	prompt := rowText(buf, testH+1)
	if !strings.Contains(status, "RANDOM") {
		t.Errorf("status row = %q", status)
	}
	if !strings.Contains(prompt, "/ LAX JFK█") {
		t.Errorf("prompt row = %q", prompt)
	}
}

func TestHUDRendererMessageAndHint(t *testing.T) {
	ctx, buf := newCtx()
	NewHUDRenderer(fixedStatus{Mode: "none", Message: "unknown airport XYZ"}).Render(ctx, buf)
	if !strings.Contains(rowText(buf, testH+1), "unknown airport XYZ") {
		t.Errorf("message row = %q", rowText(buf, testH+1))
	}

	ctx, buf = newCtx()
	NewHUDRenderer(fixedStatus{Mode: "none"}).Render(ctx, buf)
	if !strings.Contains(rowText(buf, testH+1), "help") {
		t.Errorf("hint row = %q", rowText(buf, testH+1))
	}
}

func TestHelpRendererVisibility(t *testing.T) {
	ctx, buf := newCtx()
	h := NewHelpRenderer(fixedStatus{Help: true, HelpLines: []string{"q      quit", "Space  pause"}})
	if !h.IsVisible() {
		t.Fatal("help overlay hidden while Help is set")
	}
	h.Render(ctx, buf)
	found := false
	for y := 0; y < testH; y++ {
		if strings.Contains(rowText(buf, y), "Key bindings") {
			found = true
		}
	}
	if !found {
		t.Error("help title not drawn")
	}
	if NewHelpRenderer(fixedStatus{}).IsVisible() {
		t.Error("help overlay visible without Help")
	}
}
