package common

// Numeric covers the built-in numeric types accepted by the clamp helpers.
type Numeric interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Clamp limits v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to limit
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T Numeric](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToInt rounds a float to the nearest integer, half away from zero.
//
// Parameters:
//   - v: the value to round
//
// Returns:
//   - int: the nearest integer
func RoundToInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
