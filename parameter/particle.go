package parameter

// Dust particle field
const (
	// DustCount is the fixed number of particles in the field
	DustCount = 5000

	// DustSpawnHalfWidth is the half-width of the initial spawn cube
	DustSpawnHalfWidth = 5.0

	// DustInitialVelocitySpan is the full range of initial per-axis velocity
	DustInitialVelocitySpan = 0.0001

	// DustBoundary is the per-axis magnitude that triggers recycling
	DustBoundary = 5.0

	// DustRespawnRadiusFactor places recycled particles on a shell of Boundary*factor
	DustRespawnRadiusFactor = 0.9

	// DustRespawnSpeed scales the inward velocity of recycled particles
	DustRespawnSpeed = 0.001

	// DustGravity is the attraction constant toward the origin (per d^2)
	DustGravity = 0.0000001

	// DustGravityMinDistance skips attraction below this distance
	DustGravityMinDistance = 0.1

	// DustDamping is the per-tick velocity retention
	DustDamping = 0.9999

	// DustWindStrength scales the constant drift direction
	DustWindStrength = 0.0000002

	// DustJitterSpan is the full range of per-axis random velocity noise per tick
	DustJitterSpan = 0.00005
)

// DustWindDirection is the solar wind drift direction
var DustWindDirection = [3]float64{0.5, 0.2, -0.1}
