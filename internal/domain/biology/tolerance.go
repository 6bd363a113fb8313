package biology

import "fmt"

// ToleranceRange represents an immutable (min, max) tolerance window for an
// environmental variable, e.g. temperature in °C or salinity in ppt.
type ToleranceRange struct {
	Min float64
	Max float64
}

// NewToleranceRange creates a tolerance range with validation.
// A degenerate range (min >= max) is rejected because the bell-curve
// response divides by the range width.
func NewToleranceRange(min, max float64) (*ToleranceRange, error) {
	if min >= max {
		return nil, fmt.Errorf("invalid optimal range: min (%v) must be less than max (%v)", min, max)
	}
	return &ToleranceRange{Min: min, Max: max}, nil
}

// Midpoint returns the center of the range, where the response peaks.
func (r *ToleranceRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Width returns the span of the range.
func (r *ToleranceRange) Width() float64 {
	return r.Max - r.Min
}

func (r *ToleranceRange) String() string {
	return fmt.Sprintf("Range(%g..%g)", r.Min, r.Max)
}
