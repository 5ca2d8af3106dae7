package flight

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/lixenwraith/flight-globe/airport"
	"github.com/lixenwraith/flight-globe/engine"
	"github.com/lixenwraith/flight-globe/log"
	"github.com/lixenwraith/flight-globe/vmath"
)

var (
	ErrNotEnoughAirports = errors.New("flight: need at least two airports")
	ErrUnknownAirport    = errors.New("flight: unknown airport")
	ErrSameEndpoints     = errors.New("flight: origin and destination are the same airport")
	ErrUnknownMode       = errors.New("flight: unknown schedule mode")
)

// Mode selects how the periodic spawner picks endpoints
type Mode uint8

const (
	ModeNone Mode = iota
	ModeRandomPair
	ModeFixedOrigin
	ModeFixedDestination
	ModeFixedPair
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeRandomPair:
		return "random"
	case ModeFixedOrigin:
		return "origin"
	case ModeFixedDestination:
		return "destination"
	case ModeFixedPair:
		return "pair"
	default:
		return "unknown"
	}
}

// ParseMode accepts the String form of a mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return ModeNone, nil
	case "", "random":
		return ModeRandomPair, nil
	case "origin":
		return ModeFixedOrigin, nil
	case "destination", "dest":
		return ModeFixedDestination, nil
	case "pair":
		return ModeFixedPair, nil
	}
	return ModeNone, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Scheduler spawns paths periodically under exactly one active mode
// Starting a mode cancels the previous timer and clears the registry first
type Scheduler struct {
	catalog  *airport.Catalog
	registry *Registry
	timers   *engine.Timers
	rng      *rand.Rand
	log      *log.Logger

	mode   Mode
	origin string
	dest   string
	timer  engine.TimerID
}

// NewScheduler wires a scheduler to its collaborators; no mode is active until Start
func NewScheduler(catalog *airport.Catalog, registry *Registry, timers *engine.Timers, rng *rand.Rand, logger *log.Logger) *Scheduler {
	return &Scheduler{
		catalog:  catalog,
		registry: registry,
		timers:   timers,
		rng:      rng,
		log:      logger,
	}
}

// Start switches to mode; origin and dest are IATA codes used by the fixed modes
// On validation failure nothing changes: the previous mode keeps running
func (s *Scheduler) Start(mode Mode, origin, dest string) error {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	dest = strings.ToUpper(strings.TrimSpace(dest))

	if err := s.validate(mode, origin, dest); err != nil {
		s.log.Warn("schedule rejected",
			slog.String("mode", mode.String()),
			slog.String("origin", origin),
			slog.String("dest", dest),
			slog.Any("error", err))
		return err
	}

	s.Stop()
	if mode == ModeNone {
		return nil
	}

	s.mode = mode
	s.origin = origin
	s.dest = dest
	s.timer = s.timers.Every(s.registry.Config().Interval, s.tick)
	s.log.Info("schedule started",
		slog.String("mode", mode.String()),
		slog.String("origin", origin),
		slog.String("dest", dest),
		slog.Duration("interval", s.registry.Config().Interval))
	return nil
}

// Stop cancels the timer and clears all active paths
func (s *Scheduler) Stop() {
	if s.timer != 0 {
		s.timers.Cancel(s.timer)
		s.timer = 0
	}
	if n := s.registry.ClearAll(); n > 0 {
		s.log.Debug("cleared active paths", slog.Int("count", n))
	}
	s.mode = ModeNone
	s.origin = ""
	s.dest = ""
}

// Launch spawns a single path between two airports without touching the schedule
func (s *Scheduler) Launch(from, to string) (*Path, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if err := s.validate(ModeFixedPair, from, to); err != nil {
		s.log.Warn("launch rejected", slog.String("from", from), slog.String("to", to), slog.Any("error", err))
		return nil, err
	}
	a, _ := s.catalog.Lookup(from)
	b, _ := s.catalog.Lookup(to)
	return s.spawn(a, b)
}

// Mode returns the active mode
func (s *Scheduler) Mode() Mode {
	return s.mode
}

// Endpoints returns the fixed origin and destination of the active mode
func (s *Scheduler) Endpoints() (origin, dest string) {
	return s.origin, s.dest
}

// TimerID returns the active timer handle, zero when stopped
func (s *Scheduler) TimerID() engine.TimerID {
	return s.timer
}

func (s *Scheduler) validate(mode Mode, origin, dest string) error {
	if mode == ModeNone {
		return nil
	}
	if mode > ModeFixedPair {
		return ErrUnknownMode
	}
	if s.catalog.Len() < 2 {
		return ErrNotEnoughAirports
	}
	if mode == ModeFixedOrigin || mode == ModeFixedPair {
		if _, ok := s.catalog.Lookup(origin); !ok {
			return fmt.Errorf("origin %q: %w", origin, ErrUnknownAirport)
		}
	}
	if mode == ModeFixedDestination || mode == ModeFixedPair {
		if _, ok := s.catalog.Lookup(dest); !ok {
			return fmt.Errorf("destination %q: %w", dest, ErrUnknownAirport)
		}
	}
	if mode == ModeFixedPair && origin == dest {
		return ErrSameEndpoints
	}
	return nil
}

// tick runs on each timer period and picks endpoints for the active mode
func (s *Scheduler) tick() {
	var a, b airport.Airport
	switch s.mode {
	case ModeRandomPair:
		i := s.rng.IntN(s.catalog.Len())
		a, b = s.catalog.At(i), s.catalog.At(s.otherIndex(i))
	case ModeFixedOrigin:
		a, _ = s.catalog.Lookup(s.origin)
		b = s.randomExcept(a.IATA)
	case ModeFixedDestination:
		b, _ = s.catalog.Lookup(s.dest)
		a = s.randomExcept(b.IATA)
	case ModeFixedPair:
		a, _ = s.catalog.Lookup(s.origin)
		b, _ = s.catalog.Lookup(s.dest)
	default:
		return
	}
	if _, err := s.spawn(a, b); err != nil {
		s.log.Debug("spawn skipped", slog.Any("error", err))
	}
}

// otherIndex picks a uniformly random index different from i
func (s *Scheduler) otherIndex(i int) int {
	j := s.rng.IntN(s.catalog.Len() - 1)
	if j >= i {
		j++
	}
	return j
}

func (s *Scheduler) randomExcept(iata string) airport.Airport {
	for i := 0; i < s.catalog.Len(); i++ {
		if s.catalog.At(i).IATA == iata {
			return s.catalog.At(s.otherIndex(i))
		}
	}
	return s.catalog.At(s.rng.IntN(s.catalog.Len()))
}

func (s *Scheduler) spawn(a, b airport.Airport) (*Path, error) {
	r := s.registry.Config().Radius
	start := vmath.LatLongToVec3(a.Lat, a.Lon, r)
	end := vmath.LatLongToVec3(b.Lat, b.Lon, r)
	p, err := s.registry.Spawn(start, end, a.IATA, b.IATA)
	if err != nil {
		return nil, err
	}
	s.log.Debug("flight launched", slog.String("from", a.IATA), slog.String("to", b.IATA), slog.Uint64("id", p.ID))
	return p, nil
}
