package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestProvidersImplementTimeProvider(t *testing.T) {
	providers := map[string]TimeProvider{
		"monotonic": NewMonotonicTimeProvider(),
		"mock":      NewMockTimeProvider(epoch),
		"frame":     NewFrameClock(epoch, 16*time.Millisecond),
	}
	for name, p := range providers {
		if p.Now().IsZero() {
			t.Errorf("%s: Now is the zero time", name)
		}
	}
}

func TestFrameClockAdvance(t *testing.T) {
	clock := NewFrameClock(epoch, 20*time.Millisecond)
	if clock.Interval() != 20*time.Millisecond {
		t.Errorf("Interval = %v, want 20ms", clock.Interval())
	}

	for i := uint64(1); i <= 3; i++ {
		if got := clock.Advance(); got != i {
			t.Errorf("Advance = %d, want %d", got, i)
		}
	}
	if clock.Frame() != 3 || clock.Elapsed() != 60*time.Millisecond {
		t.Errorf("Frame = %d Elapsed = %v, want 3 and 60ms", clock.Frame(), clock.Elapsed())
	}
	if want := epoch.Add(60 * time.Millisecond); !clock.Now().Equal(want) {
		t.Errorf("Now = %v, want %v", clock.Now(), want)
	}
}

func TestFrameClockIgnoresWallTime(t *testing.T) {
	clock := NewFrameClock(epoch, 16*time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	if !clock.Now().Equal(epoch) {
		t.Errorf("Now = %v before any frame, want epoch %v", clock.Now(), epoch)
	}

	clock.Advance()
	clock.Advance()
	if got, want := clock.Now(), epoch.Add(32*time.Millisecond); !got.Equal(want) {
		t.Errorf("Now = %v, want %v", got, want)
	}
}

// A stopped frame clock (paused loop) must not stall wall-time measurements
func TestMonotonicRunsWhileFrameClockStands(t *testing.T) {
	frame := NewFrameClock(epoch, 16*time.Millisecond)
	wall := NewMonotonicTimeProvider()

	f0, w0 := frame.Now(), wall.Now()
	time.Sleep(10 * time.Millisecond)

	if !frame.Now().Equal(f0) {
		t.Errorf("frame clock moved without Advance: %v", frame.Now().Sub(f0))
	}
	if d := wall.Now().Sub(w0); d < 10*time.Millisecond {
		t.Errorf("monotonic elapsed = %v, want >= 10ms", d)
	}
}

func TestMockTimeProviderSetAndAdvance(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if got := mock.Advance(1500 * time.Millisecond); !got.Equal(epoch.Add(1500 * time.Millisecond)) {
		t.Errorf("Advance = %v, want epoch+1.5s", got)
	}
	if !mock.Now().Equal(epoch.Add(1500 * time.Millisecond)) {
		t.Errorf("Now = %v after Advance", mock.Now())
	}

	later := epoch.Add(time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Now = %v, want %v", mock.Now(), later)
	}
}
