package vmath

import (
	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ease moves current toward target by fraction f of the remaining distance
// Exponential interpolation: with 0<f<1 the gap shrinks by (1-f) per call
func Ease[T constraints.Float](current, target, f T) T {
	return current + (target-current)*f
}

// Abs returns |v|
func Abs[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// PingPong advances v by step in direction dir and flips dir at lo/hi
// Returns the new value and direction (+1 or -1)
func PingPong[T constraints.Float](v, step, lo, hi T, dir int) (T, int) {
	if dir >= 0 {
		v += step
		if v >= hi {
			dir = -1
		}
	} else {
		v -= step
		if v <= lo {
			dir = 1
		}
	}
	return v, dir
}
