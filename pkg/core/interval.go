package core

import "math"

// Interval is a closed range of reals. An empty interval has Min > Max,
// so Contains and Surrounds are false for every x.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp saturates x to [min, max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval by delta/2 on each side
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// WithMax returns a copy of the interval with its upper bound replaced
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
