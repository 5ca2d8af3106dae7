package vmath

import (
	"math"
)

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatLongToVec3 maps geographic coordinates onto a sphere of given radius
// Y is the polar axis, longitude 0 lies on +X and east longitudes go toward -Z
func LatLongToVec3(lat, lon, radius float64) Vec3F {
	phi := DegToRad(90 - lat)
	theta := DegToRad(lon)

	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)

	return Vec3F{
		X: radius * sinPhi * cosTheta,
		Y: radius * cosPhi,
		Z: -radius * sinPhi * sinTheta,
	}
}

// Vec3ToLatLong is the inverse of LatLongToVec3, radius is discarded
func Vec3ToLatLong(v Vec3F) (lat, lon float64) {
	r := V3FMag(v)
	if r == 0 {
		return 0, 0
	}
	phi := math.Acos(Clamp(v.Y/r, -1, 1))
	lat = 90 - RadToDeg(phi)
	lon = RadToDeg(math.Atan2(-v.Z, v.X))
	return lat, lon
}
