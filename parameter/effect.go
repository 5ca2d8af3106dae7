package parameter

import "time"

// Globe geometry
const (
	// EarthRadius is the globe radius in scene units
	EarthRadius = 1.0

	// BorderOffset lifts surface features above the globe shell
	BorderOffset = 0.001

	// AirportMinSeparation nudges airport markers closer than this apart
	AirportMinSeparation = 0.01

	// AirportMarkerBaseRadius and AirportMarkerTrafficScale size markers by log10(traffic+1)
	AirportMarkerBaseRadius   = 0.0004
	AirportMarkerTrafficScale = 0.001

	// AirportSpikeScale multiplies sqrt(traffic) into spike height
	AirportSpikeScale = 0.00008
)

// Flight path animation
const (
	// FlightSegments is the number of curve segments, points = segments + 1
	FlightSegments = 50

	// FlightArcLift is the control point height above the surface
	FlightArcLift = 0.1

	// FlightGlowEnabled adds a fading glow line under each flight path
	FlightGlowEnabled = true

	// FlightGlowOpacity is the starting opacity of the glow line
	FlightGlowOpacity = 0.5

	// FlightSpawnInterval is the default schedule period between new paths
	FlightSpawnInterval = 1500 * time.Millisecond

	// FlightMaxActive caps concurrently animated paths (0 = unlimited)
	FlightMaxActive = 64

	// FlightColorFrequency is the line color oscillation rate in radians per second of phase
	FlightColorFrequency = 3.0

	// FlightCurveCacheSize is the number of sampled arcs kept per endpoint pair (0 = no cache)
	FlightCurveCacheSize = 128
)

// Arrival marker pulse
const (
	// MarkerLift is the marker height above the path endpoints
	MarkerLift = 0.001

	// MarkerInitialScale is the sprite scale at spawn
	MarkerInitialScale = 0.02

	// MarkerMinScale and MarkerMaxScale bound the ping-pong pulse
	MarkerMinScale = 0.01
	MarkerMaxScale = 0.03

	// MarkerScaleStep is the scale change per tick
	MarkerScaleStep = 0.0005

	// MarkerInitialOpacity is the sprite opacity at spawn
	MarkerInitialOpacity = 0.8

	// MarkerFadeStep is the opacity decrement per tick
	MarkerFadeStep = 0.01
)
