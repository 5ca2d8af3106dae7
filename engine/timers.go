package engine

import (
	"time"
)

// TimerID is a cancellable handle, zero is never issued
type TimerID uint64

type timer struct {
	id        TimerID
	interval  time.Duration
	remaining time.Duration
	repeat    bool
	fn        func()
}

// Timers are game-time callbacks advanced by the scheduler loop
// Not safe for concurrent use: owned by the loop goroutine like all simulation state
type Timers struct {
	nextID TimerID
	timers []*timer
	// Reused by Advance so a tick does not allocate
	due []*timer
}

// NewTimers creates an empty timer set
func NewTimers() *Timers {
	return &Timers{
		timers: make([]*timer, 0, 4),
	}
}

// Every schedules fn every interval of game time, first firing after one interval
// Returns 0 if interval is not positive
func (t *Timers) Every(interval time.Duration, fn func()) TimerID {
	return t.add(interval, true, fn)
}

// After schedules fn once after d of game time
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	return t.add(d, false, fn)
}

func (t *Timers) add(d time.Duration, repeat bool, fn func()) TimerID {
	if d <= 0 || fn == nil {
		return 0
	}
	t.nextID++
	t.timers = append(t.timers, &timer{
		id:        t.nextID,
		interval:  d,
		remaining: d,
		repeat:    repeat,
		fn:        fn,
	})
	return t.nextID
}

// Cancel stops a timer, returns false if it was not active
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.timers {
		if tm.id == id {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll stops every timer
func (t *Timers) CancelAll() {
	clear(t.timers)
	t.timers = t.timers[:0]
}

// Active reports whether id is still scheduled
func (t *Timers) Active(id TimerID) bool {
	for _, tm := range t.timers {
		if tm.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of scheduled timers
func (t *Timers) Len() int {
	return len(t.timers)
}

// Advance moves game time forward by dt and fires due timers
// A timer fires at most once per Advance; missed periods are dropped, not replayed
// Callbacks may cancel or schedule timers, including themselves
func (t *Timers) Advance(dt time.Duration) {
	if len(t.timers) == 0 {
		return
	}

	// Snapshot so callbacks mutating the set do not disturb iteration
	due := t.due[:0]
	for _, tm := range t.timers {
		tm.remaining -= dt
		if tm.remaining <= 0 {
			due = append(due, tm)
		}
	}
	t.due = due
	defer clear(due)

	for _, tm := range due {
		// Cancelled by an earlier callback in this pass
		if !t.Active(tm.id) {
			continue
		}
		if tm.repeat {
			tm.remaining += tm.interval
			if tm.remaining <= 0 {
				tm.remaining = tm.interval
			}
		} else {
			t.Cancel(tm.id)
		}
		tm.fn()
	}
}
