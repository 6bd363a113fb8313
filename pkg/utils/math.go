package utils

// Clamp restricts a value to the [lo, hi] interval.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min3 returns the minimum of three float64 values.
func Min3(a, b, c float64) float64 {
	result := a
	if b < result {
		result = b
	}
	if c < result {
		result = c
	}
	return result
}
