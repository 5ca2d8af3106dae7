package camera

import (
	"fmt"
	"time"

	"github.com/lixenwraith/flight-globe/parameter"
)

// Config holds easing factors, input sensitivities and clamp ranges
type Config struct {
	RotationEasing    float64       `toml:"rotation_easing"`
	ZoomEasing        float64       `toml:"zoom_easing"`
	AutoRotationSpeed float64       `toml:"auto_rotation_speed"`
	AutoRotationBound float64       `toml:"auto_rotation_bound"`
	DragSensitivity   float64       `toml:"drag_sensitivity"`
	DragThrottle      time.Duration `toml:"drag_throttle"`
	ZoomMin           float64       `toml:"zoom_min"`
	ZoomMax           float64       `toml:"zoom_max"`
	ZoomInitial       float64       `toml:"zoom_initial"`
	ZoomIntro         float64       `toml:"zoom_intro"`
	OffsetMin         float64       `toml:"offset_min"`
	OffsetMax         float64       `toml:"offset_max"`
	WheelDelta        float64       `toml:"wheel_delta"`
	WheelZoomSpeed    float64       `toml:"wheel_zoom_speed"`
	WheelOffsetSpeed  float64       `toml:"wheel_offset_speed"`
	PinchZoomSpeed    float64       `toml:"pinch_zoom_speed"`
	TouchZoomSpeed    float64       `toml:"touch_zoom_speed"`
}

// DefaultConfig returns the standard rig tuning
func DefaultConfig() Config {
	return Config{
		RotationEasing:    parameter.RotationEasing,
		ZoomEasing:        parameter.ZoomEasing,
		AutoRotationSpeed: parameter.AutoRotationSpeed,
		AutoRotationBound: parameter.AutoRotationBound,
		DragSensitivity:   parameter.DragSensitivity,
		ZoomMin:           parameter.ZoomMin,
		ZoomMax:           parameter.ZoomMax,
		ZoomInitial:       parameter.ZoomInitialTarget,
		ZoomIntro:         parameter.ZoomIntroStart,
		OffsetMin:         parameter.OffsetMin,
		OffsetMax:         parameter.OffsetMax,
		WheelDelta:        parameter.WheelDelta,
		WheelZoomSpeed:    parameter.WheelZoomSpeed,
		WheelOffsetSpeed:  parameter.WheelOffsetSpeed,
		PinchZoomSpeed:    parameter.PinchZoomSpeed,
		TouchZoomSpeed:    parameter.TouchZoomSpeed,
	}
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.RotationEasing <= 0 || c.RotationEasing >= 1:
		return fmt.Errorf("rotation easing %v must be in (0, 1)", c.RotationEasing)
	case c.ZoomEasing <= 0 || c.ZoomEasing >= 1:
		return fmt.Errorf("zoom easing %v must be in (0, 1)", c.ZoomEasing)
	case c.ZoomMin >= c.ZoomMax:
		return fmt.Errorf("zoom range [%v, %v] is empty", c.ZoomMin, c.ZoomMax)
	case c.ZoomMin <= 0:
		return fmt.Errorf("zoom min %v must be > 0", c.ZoomMin)
	case c.ZoomInitial < c.ZoomMin || c.ZoomInitial > c.ZoomMax:
		return fmt.Errorf("initial zoom %v outside [%v, %v]", c.ZoomInitial, c.ZoomMin, c.ZoomMax)
	case c.OffsetMin > c.OffsetMax:
		return fmt.Errorf("offset range [%v, %v] is empty", c.OffsetMin, c.OffsetMax)
	case c.AutoRotationBound < 0:
		return fmt.Errorf("auto rotation bound %v must be >= 0", c.AutoRotationBound)
	case c.DragThrottle < 0:
		return fmt.Errorf("drag throttle %v must be >= 0", c.DragThrottle)
	}
	return nil
}
