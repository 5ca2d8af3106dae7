package flight

import (
	"errors"
	"time"

	"github.com/lixenwraith/flight-globe/parameter"
	"github.com/lixenwraith/flight-globe/scene"
	"github.com/lixenwraith/flight-globe/vmath"
)

// ErrTooManyFlights is returned by Spawn when MaxActive paths are animating
var ErrTooManyFlights = errors.New("flight: active path limit reached")

// Stats are cumulative registry counters
type Stats struct {
	Launched  uint64
	Arrived   uint64
	Completed uint64
	Cancelled uint64
}

// Registry holds every animating path and marker and advances them together
type Registry struct {
	graph   *scene.Graph
	cfg     Config
	curves  *CurveCache
	paths   []*Path
	markers []*Marker
	nextID  uint64
	stats   Stats

	onArrival func(*Path)
}

// NewRegistry creates an empty registry drawing into graph
func NewRegistry(graph *scene.Graph, cfg Config) *Registry {
	return &Registry{
		graph:   graph,
		cfg:     cfg,
		curves:  NewCurveCache(cfg, parameter.FlightCurveCacheSize),
		paths:   make([]*Path, 0, 16),
		markers: make([]*Marker, 0, 16),
	}
}

// OnArrival registers a callback invoked when a path reaches its destination
func (r *Registry) OnArrival(fn func(*Path)) {
	r.onArrival = fn
}

// Spawn creates and registers a path; geometry appears on the next Update
func (r *Registry) Spawn(start, end vmath.Vec3F, from, to string) (*Path, error) {
	if r.cfg.MaxActive > 0 && len(r.paths) >= r.cfg.MaxActive {
		return nil, ErrTooManyFlights
	}
	p := newPathFromPoints(r.curves.Get(start, end), r.cfg, r.graph)
	r.nextID++
	p.ID = r.nextID
	p.From = from
	p.To = to
	r.paths = append(r.paths, p)
	r.stats.Launched++
	return p, nil
}

// Update advances every path and marker one tick and prunes terminal ones
func (r *Registry) Update(dt time.Duration) {
	kept := r.paths[:0]
	for _, p := range r.paths {
		switch p.Update(dt) {
		case EventArrived:
			r.stats.Arrived++
			end := p.End()
			pos := vmath.V3FSetLength(end, vmath.V3FMag(end)+parameter.MarkerLift)
			r.markers = append(r.markers, NewMarker(r.graph, pos))
			if r.onArrival != nil {
				r.onArrival(p)
			}
		case EventRemoved:
			r.stats.Completed++
		}
		if p.State() != StateRemoved {
			kept = append(kept, p)
		}
	}
	clear(r.paths[len(kept):])
	r.paths = kept

	liveMarkers := r.markers[:0]
	for _, m := range r.markers {
		if m.Update() {
			liveMarkers = append(liveMarkers, m)
		}
	}
	clear(r.markers[len(liveMarkers):])
	r.markers = liveMarkers
}

// ClearAll force-cancels every path and marker, returns the number of paths removed
func (r *Registry) ClearAll() int {
	n := len(r.paths)
	for _, p := range r.paths {
		p.Cancel()
	}
	for _, m := range r.markers {
		m.Cancel()
	}
	r.stats.Cancelled += uint64(n)
	clear(r.paths)
	clear(r.markers)
	r.paths = r.paths[:0]
	r.markers = r.markers[:0]
	return n
}

// Active returns the number of animating paths
func (r *Registry) Active() int {
	return len(r.paths)
}

// Markers returns the number of live markers
func (r *Registry) Markers() int {
	return len(r.markers)
}

// Each visits active paths in spawn order
func (r *Registry) Each(fn func(*Path)) {
	for _, p := range r.paths {
		fn(p)
	}
}

// Stats returns cumulative counters
func (r *Registry) Stats() Stats {
	return r.stats
}

// Curves returns the arc sample cache
func (r *Registry) Curves() *CurveCache {
	return r.curves
}

// Config returns the path configuration
func (r *Registry) Config() Config {
	return r.cfg
}
