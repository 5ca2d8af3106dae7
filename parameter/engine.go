package parameter

// Loop Timing
const (
	// FrameRate is the default ticks per second, overridable by config and flag
	// One tick is one simulation step and one rendered frame
	FrameRate = 60

	// InputQueueSize is the capacity of the input closure queue feeding the loop
	InputQueueSize = 256
)
