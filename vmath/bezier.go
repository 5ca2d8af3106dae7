package vmath

// QuadraticBezier evaluates B(t) = (1-t)^2*p0 + 2(1-t)t*p1 + t^2*p2
func QuadraticBezier(p0, p1, p2 Vec3F, t float64) Vec3F {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Vec3F{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
		Z: a*p0.Z + b*p1.Z + c*p2.Z,
	}
}

// SampleQuadratic returns segments+1 evenly parameterized curve points
// First and last points are exactly p0 and p2
func SampleQuadratic(p0, p1, p2 Vec3F, segments int) []Vec3F {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vec3F, segments+1)
	for i := 0; i <= segments; i++ {
		points[i] = QuadraticBezier(p0, p1, p2, float64(i)/float64(segments))
	}
	points[0] = p0
	points[segments] = p2
	return points
}
