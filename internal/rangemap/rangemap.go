// Package rangemap maps values linearly from one interval onto another.
package rangemap

// Map linearly interpolates x from [xMin, xMax] onto [yMin, yMax].
//
// xMin and xMax must differ. Equal bounds divide by zero and yield an
// infinite or NaN result; callers pass fixed, validated ranges.
func Map(x, xMin, xMax, yMin, yMax float64) float64 {
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

// MapClamped is Map with the result clamped to the output interval.
// The output bounds may be given in either order.
func MapClamped(x, xMin, xMax, yMin, yMax float64) float64 {
	lo, hi := yMin, yMax
	if lo > hi {
		lo, hi = hi, lo
	}
	return Clamp(Map(x, xMin, xMax, yMin, yMax), lo, hi)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
