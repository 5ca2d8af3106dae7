package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerStopped is returned by Run when Stop or RequestStop ended the loop
var ErrSchedulerStopped = errors.New("scheduler stopped")

// Stepper is the per-frame work driven by the scheduler
// Update advances simulation by dt, Render draws the current state
type Stepper interface {
	Update(dt time.Duration)
	Render()
}

// ClockScheduler drives a Stepper on a fixed tick from a single goroutine
// Input handlers are queued as closures and run on the same goroutine,
// so simulation state needs no locking: one writer, one reader, one thread
type ClockScheduler struct {
	stepper Stepper
	ticks   TickSource
	clock   *FrameClock

	inbox chan func()

	isPaused  atomic.Bool
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler; clock advances one frame per unpaused tick
func NewClockScheduler(stepper Stepper, ticks TickSource, clock *FrameClock, queueSize int) *ClockScheduler {
	if queueSize < 1 {
		queueSize = 1
	}
	return &ClockScheduler{
		stepper:  stepper,
		ticks:    ticks,
		clock:    clock,
		inbox:    make(chan func(), queueSize),
		stopChan: make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine
// Non-blocking: returns false when the queue is full or the scheduler is stopping
func (cs *ClockScheduler) Post(fn func()) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}

	select {
	case cs.inbox <- fn:
		return true
	default:
		return false
	}
}

// Start runs the loop in a background goroutine
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go func() {
			defer cs.wg.Done()
			_ = cs.loop(context.Background())
		}()
	}
}

// Run executes the loop on the calling goroutine until ctx is done or the scheduler is stopped
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return errors.New("scheduler already running")
	}
	return cs.loop(ctx)
}

// RequestStop signals the loop to exit without waiting; safe from inside posted closures
func (cs *ClockScheduler) RequestStop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
	})
}

// Stop halts the loop and waits for a Start-ed goroutine to exit
// Must not be called from the loop goroutine, use RequestStop there
func (cs *ClockScheduler) Stop() {
	cs.RequestStop()
	cs.wg.Wait()
	cs.ticks.Stop()
}

// Done is closed once a stop has been requested
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.stopChan
}

// Pause freezes simulation updates, rendering continues
func (cs *ClockScheduler) Pause() {
	cs.isPaused.Store(true)
}

// Resume continues simulation updates
func (cs *ClockScheduler) Resume() {
	cs.isPaused.Store(false)
}

// TogglePause flips pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// TickCount returns the number of processed ticks, paused ticks included
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Step processes one tick synchronously, for deterministic tests without a loop
func (cs *ClockScheduler) Step() {
	cs.processTick()
}

// loop runs the main scheduling loop
func (cs *ClockScheduler) loop(ctx context.Context) error {
	defer cs.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-cs.stopChan:
			return ErrSchedulerStopped

		case fn := <-cs.inbox:
			fn()

		case <-cs.ticks.C():
			// Input queued before the tick is applied first, a stop requested by it wins
			cs.drainInbox()
			select {
			case <-cs.stopChan:
				return ErrSchedulerStopped
			default:
			}
			cs.processTick()
		}
	}
}

// drainInbox runs every queued closure without blocking
func (cs *ClockScheduler) drainInbox() {
	for {
		select {
		case fn := <-cs.inbox:
			fn()
		default:
			return
		}
	}
}

// processTick executes one frame: update unless paused, then render
func (cs *ClockScheduler) processTick() {
	if !cs.isPaused.Load() {
		cs.clock.Advance()
		cs.stepper.Update(cs.clock.Interval())
	}
	cs.stepper.Render()
	cs.tickCount.Add(1)
}
