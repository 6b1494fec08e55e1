package ember

import (
	"math"
	"math/rand/v2"
)

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Map remaps v from the range [inLo, inHi] to the range [outLo, outHi].
// The input range must be non-empty; v is not clamped.
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// randRange returns a uniform random float64 in [min, max].
func randRange(min, max float64) float64 {
	if min == max {
		return min
	}
	return min + rand.Float64()*(max-min)
}
