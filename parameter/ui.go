package parameter

// Terminal display
const (
	// HUDRows is the number of rows reserved at the bottom for status
	HUDRows = 2

	// CellAspect is the terminal cell height/width ratio
	CellAspect = 2.0

	// FieldOfView is the vertical camera field of view in degrees
	FieldOfView = 50.0

	// GraticuleStep is the spacing of latitude/longitude grid lines in degrees
	GraticuleStep = 30.0

	// GraticuleWidth is the angular half-width of a grid line in degrees
	GraticuleWidth = 1.2

	// StatusMessageTicks is how long a status message stays visible
	StatusMessageTicks = 180

	// GlobeHaloWidth is the atmosphere halo thickness as a fraction of the radius
	GlobeHaloWidth = 0.12

	// GlobeAmbient is the unlit floor of globe shading
	GlobeAmbient = 0.25

	// DustNearDepth is the depth at which dust reaches full brightness
	DustNearDepth = 2.5
)

// GlobeLightDirection is the world-space direction toward the key light
var GlobeLightDirection = [3]float64{-0.5, 0.4, 0.8}

// Colors (0xRRGGBB)
const (
	ColorBackground = 0x000000
	ColorGlobe      = 0x2596be
	ColorGlobeGlow  = 0x00a3ff
	ColorGraticule  = 0x888888
	ColorDust       = 0xa2efe1
	ColorFlight     = 0xff6361
	ColorFlightAlt  = 0xffa600
	ColorMarker     = 0xff3030
	ColorAirport    = 0xffffff
	ColorHUD        = 0xc0c0c0
	ColorHUDAccent  = 0x00a3ff
)
