package globe

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flight-globe/airport"
	"github.com/lixenwraith/flight-globe/camera"
	"github.com/lixenwraith/flight-globe/config"
	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/flight"
	"github.com/lixenwraith/flight-globe/input"
	"github.com/lixenwraith/flight-globe/log"
	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/physics"
	"github.com/lixenwraith/flight-globe/render"
	"github.com/lixenwraith/flight-globe/render/renderers"
	"github.com/lixenwraith/flight-globe/scene"
)

// Sound is the audio surface the context drives
type Sound interface {
	PlayArrival() bool
	PlayError()
	ToggleMute() bool
	SetMuted(bool)
	Muted() bool
}

// Controller is the loop surface the context drives, satisfied by engine.ClockScheduler
type Controller interface {
	TogglePause() bool
	IsPaused() bool
	RequestStop()
}

// Options are the collaborators a Context is built from
// Sound and Logger may be nil
type Options struct {
	Config config.Config
	Screen tcell.Screen
	Clock  *engine.FrameClock
	// WallClock times input throttling; it keeps running while the loop is paused
	WallClock engine.TimeProvider
	Logger    *log.Logger
	Sound     Sound
}

// Context owns every piece of simulation and display state
// All methods run on the scheduler goroutine
type Context struct {
	cfg config.Config
	log *log.Logger

	clock     *engine.FrameClock
	timers    *engine.Timers
	rng       *rand.Rand
	graph     *scene.Graph
	catalog   *airport.Catalog
	rig       *camera.Rig
	dust      *physics.DustField
	cloud     *scene.PointCloud
	registry  *flight.Registry
	scheduler *flight.Scheduler
	sound     Sound
	input     *input.Machine
	control   Controller

	screen    tcell.Screen
	orch      *render.RenderOrchestrator
	projector *render.Projector
	dustLayer *renderers.DustRenderer

	// Endpoints remembered for the mode keys
	origin, dest string

	help      bool
	helpLines []string

	message      string
	messageTicks int
}

// NewContext builds the scene and registers the render pipeline
// cfg is expected to be validated
func NewContext(opts Options) (*Context, error) {
	cfg := opts.Config
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("airports: %w", err)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewFrameClock(time.Now(), time.Second/time.Duration(cfg.FPS))
	}
	if opts.WallClock == nil {
		opts.WallClock = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	c := &Context{
		cfg:     cfg,
		log:     opts.Logger,
		clock:   opts.Clock,
		timers:  engine.NewTimers(),
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		graph:   scene.NewGraph(),
		catalog: catalog,
		sound:   opts.Sound,
		input:   input.NewMachine(keys),
		screen:  opts.Screen,
	}
	c.rig = camera.NewRig(cfg.Camera, opts.WallClock)

	c.dust = physics.NewDustField(cfg.Dust, c.rng)
	c.cloud = &scene.PointCloud{
		Positions:   c.dust.Positions(),
		Color:       parameter.ColorDust,
		Opacity:     1,
		NeedsUpdate: true,
	}
	c.graph.Attach(c.cloud)

	c.registry = flight.NewRegistry(c.graph, cfg.Flight)
	c.registry.OnArrival(c.onArrival)
	c.scheduler = flight.NewScheduler(catalog, c.registry, c.timers, c.rng, c.log.With("component", "schedule"))

	for _, b := range keys.Bindings() {
		c.helpLines = append(c.helpLines, fmt.Sprintf("%-10s %s", b.Key, b.Action))
	}

	c.origin, c.dest = cfg.Schedule.Origin, cfg.Schedule.Dest
	if c.origin == "" && catalog.Len() > 0 {
		c.origin = catalog.At(0).IATA
	}
	if c.dest == "" && catalog.Len() > 1 {
		c.dest = catalog.At(1).IATA
	}

	if c.screen != nil {
		c.orch = render.NewRenderOrchestrator(c.screen, render.Hex(parameter.ColorBackground))
		c.dustLayer = renderers.NewDustRenderer(c.graph)
		c.orch.Register(renderers.NewGlobeRenderer(), render.PriorityGlobe)
		c.orch.Register(renderers.NewAirportRenderer(catalog, parameter.EarthRadius+parameter.BorderOffset), render.PriorityAirport)
		c.orch.Register(c.dustLayer, render.PriorityDust)
		c.orch.Register(renderers.NewFlightRenderer(c.graph), render.PriorityFlight)
		c.orch.Register(renderers.NewMarkerRenderer(c.graph), render.PriorityMarker)
		c.orch.Register(renderers.NewHUDRenderer(c), render.PriorityUI)
		c.orch.Register(renderers.NewHelpRenderer(c), render.PriorityOverlay)
		w, h := c.screen.Size()
		c.resize(w, h)
	}

	c.log.Info("Scene ready",
		slog.Int("airports", catalog.Len()),
		slog.Int("dust", c.dust.Len()),
		slog.Uint64("seed", cfg.Seed))
	return c, nil
}

// SetController attaches the loop so pause and quit keys reach it
func (c *Context) SetController(ctrl Controller) {
	c.control = ctrl
}

// Start activates the configured schedule mode
func (c *Context) Start() error {
	mode, err := flight.ParseMode(c.cfg.Schedule.Mode)
	if err != nil {
		return err
	}
	return c.startMode(mode, c.cfg.Schedule.Origin, c.cfg.Schedule.Dest)
}

// Update advances one tick: camera, dust, spawn timers, flights, then scene sync
func (c *Context) Update(dt time.Duration) {
	c.rig.Update()
	c.dust.Update()
	c.timers.Advance(dt)
	c.registry.Update(dt)
	c.syncScene()

	if c.messageTicks > 0 {
		c.messageTicks--
		if c.messageTicks == 0 {
			c.message = ""
		}
	}
}

// syncScene hands the dust dirty flag to the point cloud
func (c *Context) syncScene() {
	if c.dust.Dirty() {
		c.cloud.NeedsUpdate = true
		c.dust.ClearDirty()
	}
}

// Render draws the current state, a no-op without a screen
func (c *Context) Render() {
	if c.orch == nil {
		return
	}
	rotX, rotY := c.rig.Orientation()
	v := c.rig.Current()
	c.projector.SetCamera(rotX, rotY, v.OffsetY, v.Zoom)

	w, h := c.orch.Buffer().Bounds()
	vw, vh := c.projector.Size()
	c.orch.RenderFrame(render.RenderContext{
		Frame:          c.clock.Frame(),
		IsPaused:       c.paused(),
		ScreenWidth:    w,
		ScreenHeight:   h,
		ViewportWidth:  vw,
		ViewportHeight: vh,
		Projector:      c.projector,
	})
}

// resize rebuilds the buffer and the projector for the area above the HUD
func (c *Context) resize(w, h int) {
	c.orch.Resize(w, h)
	vh := max(h-parameter.HUDRows, 0)
	c.projector = render.NewProjector(w, vh, parameter.FieldOfView, parameter.CellAspect, parameter.EarthRadius)
}

func (c *Context) paused() bool {
	return c.control != nil && c.control.IsPaused()
}

// onArrival runs inside registry Update when a path completes its reveal
func (c *Context) onArrival(p *flight.Path) {
	c.log.Debug("flight arrived", slog.Uint64("id", p.ID), slog.String("from", p.From), slog.String("to", p.To))
	if c.sound != nil {
		c.sound.PlayArrival()
	}
}

// Status implements renderers.StatusSource
func (c *Context) Status() renderers.Status {
	origin, dest := c.scheduler.Endpoints()
	stats := c.registry.Stats()
	kind, text := c.input.Prompt()
	s := renderers.Status{
		Mode:       c.scheduler.Mode().String(),
		Origin:     origin,
		Dest:       dest,
		Active:     c.registry.Active(),
		Markers:    c.registry.Markers(),
		Launched:   stats.Launched,
		Arrived:    stats.Arrived,
		Zoom:       c.rig.Current().Zoom,
		Paused:     c.paused(),
		Muted:      c.sound != nil && c.sound.Muted(),
		PromptOpen: c.input.State() == input.StatePrompt,
		PromptText: text,
		Message:    c.message,
		Help:       c.help,
		HelpLines:  c.helpLines,
	}
	switch kind {
	case input.PromptSearch:
		s.PromptLabel = "route"
	case input.PromptLaunch:
		s.PromptLabel = "launch"
	}
	return s
}

// notify shows msg on the HUD for a while
func (c *Context) notify(msg string) {
	c.message = msg
	c.messageTicks = parameter.StatusMessageTicks
}

// reject reports a refused action on the HUD and with the error buzz
func (c *Context) reject(err error) {
	c.notify(err.Error())
	if c.sound != nil {
		c.sound.PlayError()
	}
}

// Rig returns the camera rig
func (c *Context) Rig() *camera.Rig {
	return c.rig
}

// Registry returns the flight registry
func (c *Context) Registry() *flight.Registry {
	return c.registry
}

// Scheduler returns the spawn scheduler
func (c *Context) Scheduler() *flight.Scheduler {
	return c.scheduler
}

// Dust returns the particle field
func (c *Context) Dust() *physics.DustField {
	return c.dust
}

// Cloud returns the dust point cloud node
func (c *Context) Cloud() *scene.PointCloud {
	return c.cloud
}

// Graph returns the scene graph
func (c *Context) Graph() *scene.Graph {
	return c.graph
}

// Timers returns the game-time timers
func (c *Context) Timers() *engine.Timers {
	return c.timers
}

// DustVisible reports whether the dust layer is drawn
func (c *Context) DustVisible() bool {
	return c.dustLayer == nil || c.dustLayer.IsVisible()
}

// SetDustVisible shows or hides the dust layer
func (c *Context) SetDustVisible(on bool) {
	if c.dustLayer != nil {
		c.dustLayer.SetVisible(on)
	}
}
