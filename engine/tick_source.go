package engine

import (
	"time"
)

// TickSource delivers frame ticks to the scheduler loop
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// RealTicker wraps time.Ticker; ticks are dropped, not queued, when the loop falls behind
type RealTicker struct {
	t *time.Ticker
}

// NewRealTicker starts a wall-clock ticker with the given period
func NewRealTicker(interval time.Duration) *RealTicker {
	return &RealTicker{t: time.NewTicker(interval)}
}

func (r *RealTicker) C() <-chan time.Time { return r.t.C }

func (r *RealTicker) Stop() { r.t.Stop() }

// ManualTicker is a TickSource fired explicitly by tests
type ManualTicker struct {
	ch chan time.Time
}

// NewManualTicker creates an unbuffered manual ticker
// Fire blocks until the loop receives, so a returned Fire means the tick was taken
func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {}

// Fire delivers one tick
func (m *ManualTicker) Fire(t time.Time) {
	m.ch <- t
}
