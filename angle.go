package gauge

import "math"

// ReduceAngle maps an angle in degrees onto [0, 360).
// Negative angles roll under and angles of 360° or more roll over, so
// ReduceAngle(-10) == 350 and ReduceAngle(370) == 10.
func ReduceAngle(angle float64) float64 {
	a := math.Mod(math.Mod(angle, 360)+360, 360)
	// math.Mod(-1e-17+360, 360) can round to exactly 360.
	if a >= 360 {
		return 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
