package orbits

import "math"

const deg2rad = math.Pi / 180

// Point is a planar offset from the focus, in meters, math convention
// (positive y is up).
type Point struct {
	X, Y float64
}

// Norm returns the distance from the focus to this point.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Deg2rad converts degrees to radians.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// daySeconds converts days to seconds.
func daySeconds(days float64) float64 {
	return days * 86400
}
