package orbits

import "math"

// ScreenPoint is an integer position in screen coordinates (positive y is
// down).
type ScreenPoint struct {
	X, Y int
}

// Project maps a physical planar offset to a screen position. scale is the
// distance in meters that maps to one pixel at zoom 1; origin is the screen
// position of the focus. The y axis is inverted to go from the orbital
// plane's math convention to the screen's. Division truncates toward
// negative infinity, which rendering parity depends on.
func Project(offset Point, zoom, scale float64, origin ScreenPoint) ScreenPoint {
	return ScreenPoint{
		X: int(math.Floor(offset.X*zoom/scale)) + origin.X,
		Y: int(math.Floor(-offset.Y*zoom/scale)) + origin.Y,
	}
}
