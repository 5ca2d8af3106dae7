package parameter

// Camera easing and input configuration
// Input handlers write targets, the per-tick update eases current toward target
const (
	// RotationEasing is the fraction of remaining rotation gap closed per tick
	RotationEasing = 0.05

	// ZoomEasing is the fraction of remaining zoom/offset gap closed per tick
	ZoomEasing = 0.1

	// AutoRotationSpeed is the always-on Y rotation increment in radians per tick
	AutoRotationSpeed = 0.0002

	// AutoRotationBound enables ping-pong auto-rotation when > 0 (radians)
	AutoRotationBound = 0.0

	// DragSensitivity converts one terminal cell of drag into radians
	DragSensitivity = 0.02

	// KeyRotateCells is the drag distance in cells one rotate key press stands for
	KeyRotateCells = 4.0

	// ZoomMin and ZoomMax clamp camera distance at input time
	ZoomMin = 1.8
	ZoomMax = 4.0

	// ZoomInitialTarget is the resting camera distance after intro
	ZoomInitialTarget = 2.0

	// ZoomIntroStart is the far-away distance the camera eases in from
	ZoomIntroStart = 20.0

	// OffsetMin and OffsetMax clamp the vertical camera offset at input time
	OffsetMin = -0.48
	OffsetMax = 0.0

	// WheelDelta is the synthetic pixel delta of one wheel notch
	WheelDelta = 100.0

	// WheelZoomSpeed converts wheel delta into zoom distance
	WheelZoomSpeed = 0.0005

	// WheelOffsetSpeed converts wheel delta into vertical offset
	WheelOffsetSpeed = 0.00011

	// PinchZoomSpeed converts gesture scale delta into zoom distance
	PinchZoomSpeed = 0.05

	// TouchZoomSpeed converts two-finger distance change into zoom distance
	TouchZoomSpeed = 0.003
)
