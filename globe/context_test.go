package globe

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flight-globe/camera"
	"github.com/lixenwraith/flight-globe/config"
	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/flight"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/store"
)

const (
	screenW = 60
	screenH = 30
	tick    = 16 * time.Millisecond
)

// mockSound records calls instead of playing
type mockSound struct {
	arrivals int
	errors   int
	muted    bool
}

func (m *mockSound) PlayArrival() bool { m.arrivals++; return !m.muted }
func (m *mockSound) PlayError()        { m.errors++ }
func (m *mockSound) ToggleMute() bool  { m.muted = !m.muted; return m.muted }
func (m *mockSound) SetMuted(v bool)   { m.muted = v }
func (m *mockSound) Muted() bool       { return m.muted }

// mockController stands in for the clock scheduler
type mockController struct {
	paused  bool
	stopped bool
}

func (m *mockController) TogglePause() bool { m.paused = !m.paused; return m.paused }
func (m *mockController) IsPaused() bool    { return m.paused }
func (m *mockController) RequestStop()      { m.stopped = true }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Dust.Count = 64
	cfg.Seed = 7
	cfg.Schedule.Mode = "none"
	return cfg
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)
	return s
}

func newTestContext(t *testing.T, cfg config.Config) (*Context, *mockSound, *mockController, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t)
	snd := &mockSound{}
	ctrl := &mockController{}
	c, err := NewContext(Options{
		Config: cfg,
		Screen: screen,
		Clock:  engine.NewFrameClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tick),
		Sound:  snd,
	})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	c.SetController(ctrl)
	return c, snd, ctrl, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeLine(c *Context, open rune, text string) {
	c.HandleEvent(key(open))
	for _, r := range text {
		c.HandleEvent(key(r))
	}
	c.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r := cells[y*w+x].Runes
		if len(r) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r[0])
	}
	return b.String()
}

func TestUpdateSyncsDustToPointCloud(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())
	c.Cloud().NeedsUpdate = false

	c.Update(tick)

	if !c.Cloud().NeedsUpdate {
		t.Error("point cloud not flagged after dust update")
	}
	if c.Dust().Dirty() {
		t.Error("dust dirty flag not consumed by scene sync")
	}
	if c.Cloud().Len() != c.Dust().Len() {
		t.Errorf("cloud has %d points, dust %d", c.Cloud().Len(), c.Dust().Len())
	}
}

func TestUpdateEasesCameraIn(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())
	start := c.Rig().Current().Zoom
	for i := 0; i < 10; i++ {
		c.Update(tick)
	}
	if got := c.Rig().Current().Zoom; got >= start {
		t.Errorf("zoom after 10 ticks = %v, want below intro %v", got, start)
	}
}

func TestStartSpawnsOnInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule.Mode = "random"
	c, _, _, _ := newTestContext(t, cfg)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	c.Update(cfg.Flight.Interval - tick)
	if c.Registry().Active() != 0 {
		t.Fatal("flight spawned before interval elapsed")
	}
	c.Update(tick)
	if c.Registry().Active() != 1 {
		t.Errorf("Active = %d, want 1 after one interval", c.Registry().Active())
	}
}

func TestRenderDrawsGlobeAndHUD(t *testing.T) {
	c, _, _, screen := newTestContext(t, testConfig())
	c.Update(tick)
	c.Render()

	status := screenRow(screen, screenH-parameter.HUDRows)
	if !strings.Contains(status, "NONE") || !strings.Contains(status, "flights 0") {
		t.Errorf("status row = %q", status)
	}

	_, bg, _ := screenCell(screen, screenW/2, (screenH-parameter.HUDRows)/2)
	if bg == render.Hex(parameter.ColorBackground).TCell() {
		t.Error("globe center left unshaded")
	}
}

func screenCell(s tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, bg, fg
}

func TestRouteSearchStartsFixedPair(t *testing.T) {
	c, snd, _, _ := newTestContext(t, testConfig())

	typeLine(c, '/', "lax jfk")

	if c.Scheduler().Mode() != flight.ModeFixedPair {
		t.Fatalf("mode = %v, want pair", c.Scheduler().Mode())
	}
	if o, d := c.Scheduler().Endpoints(); o != "LAX" || d != "JFK" {
		t.Errorf("endpoints = %s %s, want LAX JFK", o, d)
	}
	if snd.errors != 0 {
		t.Errorf("error buzz played %d times", snd.errors)
	}

	// Mode keys reuse the remembered endpoints
	c.HandleEvent(key('2'))
	if o, _ := c.Scheduler().Endpoints(); c.Scheduler().Mode() != flight.ModeFixedOrigin || o != "LAX" {
		t.Errorf("origin mode = %v from %q", c.Scheduler().Mode(), o)
	}
}

func TestRejectedRouteKeepsModeAndBuzzes(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule.Mode = "random"
	c, snd, _, _ := newTestContext(t, cfg)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}

	typeLine(c, '/', "LAX ZZZ")

	if c.Scheduler().Mode() != flight.ModeRandomPair {
		t.Errorf("mode = %v, want random kept", c.Scheduler().Mode())
	}
	if snd.errors != 1 {
		t.Errorf("error buzz count = %d, want 1", snd.errors)
	}
	if c.Status().Message == "" {
		t.Error("rejection not shown on the HUD")
	}
}

func TestLaunchPromptArrivesAndChimes(t *testing.T) {
	c, snd, _, _ := newTestContext(t, testConfig())

	typeLine(c, 'f', "SEA MIA")
	if c.Registry().Active() != 1 {
		t.Fatalf("Active = %d, want 1", c.Registry().Active())
	}
	if c.Scheduler().Mode() != flight.ModeNone {
		t.Error("launch changed the schedule mode")
	}

	for i := 0; i < 4*parameter.FlightSegments && snd.arrivals == 0; i++ {
		c.Update(tick)
	}
	if snd.arrivals != 1 {
		t.Fatalf("arrivals = %d, want 1", snd.arrivals)
	}
	if c.Registry().Markers() != 1 {
		t.Errorf("Markers = %d, want 1", c.Registry().Markers())
	}
}

func TestLaunchPromptNeedsPair(t *testing.T) {
	c, snd, _, _ := newTestContext(t, testConfig())
	typeLine(c, 'f', "SEA")
	if c.Registry().Active() != 0 || snd.errors != 1 {
		t.Errorf("single-code launch: active=%d errors=%d", c.Registry().Active(), snd.errors)
	}
}

func TestToggleKeys(t *testing.T) {
	c, snd, ctrl, _ := newTestContext(t, testConfig())

	c.HandleEvent(key('d'))
	if c.DustVisible() {
		t.Error("d did not hide dust")
	}
	c.HandleEvent(key('?'))
	if !c.Status().Help || len(c.Status().HelpLines) == 0 {
		t.Error("? did not open help with bindings")
	}
	c.HandleEvent(key('m'))
	if !snd.muted || !c.Status().Muted {
		t.Error("m did not mute")
	}
	c.HandleEvent(key(' '))
	if !ctrl.paused || !c.Status().Paused {
		t.Error("space did not pause")
	}
	c.HandleEvent(key('q'))
	if !ctrl.stopped {
		t.Error("q did not request stop")
	}
}

func TestClearKeyCancelsFlights(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())
	typeLine(c, 'f', "ATL DFW")
	c.Update(tick)
	before := c.Graph().Len()

	c.HandleEvent(key('c'))
	if c.Registry().Active() != 0 {
		t.Errorf("Active after clear = %d", c.Registry().Active())
	}
	if c.Graph().Len() >= before {
		t.Errorf("graph nodes %d, want fewer than %d after clear", c.Graph().Len(), before)
	}
}

func TestMouseDragAndWheel(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())

	c.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(15, 10, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(15, 10, tcell.ButtonNone, tcell.ModNone))

	if got := c.Rig().Target().RotY; got <= 0 {
		t.Errorf("RotY after right drag = %v, want > 0", got)
	}
	if c.Rig().Dragging() {
		t.Error("drag not ended on release")
	}

	zoom := c.Rig().Target().Zoom
	c.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if c.Rig().Target().Zoom <= zoom {
		t.Error("wheel down did not zoom out")
	}
}

func TestDragThrottleRunsWhilePaused(t *testing.T) {
	cfg := testConfig()
	cfg.Camera.DragThrottle = 50 * time.Millisecond
	wall := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c, err := NewContext(Options{
		Config:    cfg,
		Clock:     engine.NewFrameClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tick),
		WallClock: wall,
	})
	if err != nil {
		t.Fatal(err)
	}

	// No Update runs, as while paused: the frame clock stands still
	c.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	c.HandleEvent(tcell.NewEventMouse(12, 10, tcell.Button1, tcell.ModNone))
	first := c.Rig().Target().RotY

	wall.Advance(60 * time.Millisecond)
	c.HandleEvent(tcell.NewEventMouse(14, 10, tcell.Button1, tcell.ModNone))
	if got := c.Rig().Target().RotY; got <= first {
		t.Errorf("RotY = %v after throttle window, want > %v", got, first)
	}

	c.HandleEvent(tcell.NewEventMouse(16, 10, tcell.Button1, tcell.ModNone))
	if c.Rig().Target().RotY != 2*first {
		t.Errorf("move inside throttle window applied: RotY = %v", c.Rig().Target().RotY)
	}
}

func TestResizeRebuildsProjector(t *testing.T) {
	c, _, _, screen := newTestContext(t, testConfig())
	screen.SetSize(40, 20)
	c.HandleEvent(tcell.NewEventResize(40, 20))

	if w, h := c.projector.Size(); w != 40 || h != 20-parameter.HUDRows {
		t.Errorf("projector size = %dx%d, want 40x%d", w, h, 20-parameter.HUDRows)
	}
	c.Render()
}

func TestSnapshotRestore(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())
	typeLine(c, '/', "> ORD")
	c.HandleEvent(key('d'))
	c.Rig().SetTarget(camera.View{RotX: 0.2, RotY: 1, Zoom: 3})

	snap := c.Snapshot()
	if snap.Mode != "destination" || snap.Dest != "ORD" || snap.DustVisible {
		t.Fatalf("Snapshot = %+v", snap)
	}

	d, _, _, _ := newTestContext(t, testConfig())
	if !d.Restore(snap) {
		t.Fatal("Restore reported the saved schedule as not applied")
	}
	if d.Scheduler().Mode() != flight.ModeFixedDestination || d.Rig().Target() != snap.View || d.DustVisible() {
		t.Errorf("Restore: mode=%v view=%+v dust=%v", d.Scheduler().Mode(), d.Rig().Target(), d.DustVisible())
	}
}

func TestRestoreUnknownAirportKeepsDefaults(t *testing.T) {
	c, _, _, _ := newTestContext(t, testConfig())
	if c.Restore(store.Session{Mode: "pair", Origin: "LAX", Dest: "QQQ", DustVisible: true}) {
		t.Error("Restore reported an unknown airport schedule as applied")
	}
	if !c.DustVisible() {
		t.Error("dust toggle not restored alongside a rejected schedule")
	}
	if c.Scheduler().Mode() != flight.ModeNone {
		t.Errorf("mode = %v, want none", c.Scheduler().Mode())
	}
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		in     string
		mode   flight.Mode
		origin string
		dest   string
		err    bool
	}{
		{"LAX JFK", flight.ModeFixedPair, "LAX", "JFK", false},
		{" sea ", flight.ModeFixedOrigin, "SEA", "", false},
		{"> mia", flight.ModeFixedDestination, "", "MIA", false},
		{">MIA", flight.ModeFixedDestination, "", "MIA", false},
		{"A B C", flight.ModeNone, "", "", true},
		{">", flight.ModeNone, "", "", true},
	}
	for _, tt := range tests {
		mode, o, d, err := ParseRoute(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseRoute(%q) error = %v, want error %v", tt.in, err, tt.err)
			continue
		}
		if err != nil && !errors.Is(err, ErrBadRoute) {
			t.Errorf("ParseRoute(%q) error = %v, want ErrBadRoute", tt.in, err)
		}
		if mode != tt.mode || o != tt.origin || d != tt.dest {
			t.Errorf("ParseRoute(%q) = %v %q %q, want %v %q %q", tt.in, mode, o, d, tt.mode, tt.origin, tt.dest)
		}
	}
}
