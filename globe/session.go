package globe

import (
	"log/slog"

	"github.com/lixenwraith/flight-globe/flight"
	"github.com/lixenwraith/flight-globe/store"
)

// Snapshot captures the state restored on the next launch
func (c *Context) Snapshot() store.Session {
	origin, dest := c.scheduler.Endpoints()
	return store.Session{
		View:        c.rig.Target(),
		Mode:        c.scheduler.Mode().String(),
		Origin:      origin,
		Dest:        dest,
		DustVisible: c.DustVisible(),
		Muted:       c.sound != nil && c.sound.Muted(),
	}
}

// Restore applies a saved session over the configured start state
// The camera eases from the intro distance to the saved view
// It reports whether the saved schedule was applied; when not, the caller starts the configured one
func (c *Context) Restore(s store.Session) (scheduleRestored bool) {
	c.rig.SetTarget(s.View)
	c.SetDustVisible(s.DustVisible)
	if c.sound != nil {
		c.sound.SetMuted(s.Muted)
	}

	mode, err := flight.ParseMode(s.Mode)
	if err != nil {
		c.log.Warn("Saved mode ignored", slog.String("mode", s.Mode), slog.Any("error", err))
		return false
	}
	if err := c.scheduler.Start(mode, s.Origin, s.Dest); err != nil {
		// Airports can disappear between runs when the config changes
		c.log.Warn("Saved schedule ignored", slog.Any("error", err))
		return false
	}
	if s.Origin != "" {
		c.origin = s.Origin
	}
	if s.Dest != "" {
		c.dest = s.Dest
	}
	return true
}
