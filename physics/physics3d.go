package physics

import (
	"math"
)

// CentralAttraction returns the acceleration on a body at (x,y,z) toward the origin
// Magnitude is g/d^2; returns zero and false inside minDist to avoid the singularity
func CentralAttraction(x, y, z, g, minDist float64) (ax, ay, az float64, ok bool) {
	distSq := x*x + y*y + z*z
	dist := math.Sqrt(distSq)
	if dist <= minDist {
		return 0, 0, 0, false
	}

	// accel = g / d^2 along -p/|p|, one division for the shared factor
	k := g / (distSq * dist)
	return -x * k, -y * k, -z * k, true
}

// RandomOnSphere returns a uniformly distributed point on a sphere of radius r
// u, v are independent uniform samples in [0,1)
// Latitude uses inverse-cosine sampling so points do not cluster at the poles
func RandomOnSphere(r, u, v float64) (x, y, z float64) {
	phi := u * 2 * math.Pi
	theta := math.Acos(2*v - 1)
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return r * sinTheta * cosPhi, r * sinTheta * sinPhi, r * cosTheta
}
