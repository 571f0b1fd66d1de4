// Package ring maps a unit value onto the stroke of a circular progress
// indicator.
package ring

import "math"

// Circumference returns 2πr. Non-positive or NaN radii give 0.
func Circumference(radius float64) float64 {
	if !(radius > 0) {
		return 0
	}
	return 2 * math.Pi * radius
}

// Fraction returns value/max clamped to [0, 1]. A non-positive or NaN max
// gives 0.
func Fraction(value int, max float64) float64 {
	if !(max > 0) {
		return 0
	}
	return clampUnit(float64(value) / max)
}

// StrokeOffset returns the dash offset that leaves fraction of the circle
// drawn. An undefined fraction renders as an empty ring.
func StrokeOffset(radius, fraction float64) float64 {
	c := Circumference(radius)
	return c * (1 - clampUnit(fraction))
}

// clampUnit is the single guard for degenerate inputs: NaN collapses to 0
// and everything else is pinned to [0, 1].
func clampUnit(f float64) float64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 1:
		return 1
	default:
		return f
	}
}

// Ring is one indicator with a fixed radius and natural maximum.
type Ring struct {
	Radius float64
	Max    float64
}

// State is the geometry for one sample.
type State struct {
	Fraction      float64 `json:"fraction"`
	Offset        float64 `json:"offset"`
	Circumference float64 `json:"circumference"`
}

// Sample computes the ring geometry for value.
func (r Ring) Sample(value int) State {
	f := Fraction(value, r.Max)
	return State{
		Fraction:      f,
		Offset:        StrokeOffset(r.Radius, f),
		Circumference: Circumference(r.Radius),
	}
}
