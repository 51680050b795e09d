package orbits

import "time"

// Trace builds and caches a fixed-size polygon of one full orbit, used to
// draw the static reference ellipse. The cache is keyed on the identity of
// the elements and the sample count, and survives across frames; it does not
// depend on simulated time.
type Trace struct {
	points    []Point
	n         int
	cacheHash float64
}

// Points returns n planar offsets evenly spaced over one period from the
// orbit's epoch, each computed via the Kepler solver. The cached polygon is
// returned as long as neither the orbit nor n changes.
func (tr *Trace) Points(o Orbit, n int) []Point {
	if tr.hashValid(o) && tr.n == n {
		return tr.points
	}
	points := make([]Point, n)
	step := o.T / float64(n)
	for i := range points {
		dt := o.epoch.Add(time.Duration(float64(i) * step * float64(time.Second)))
		points[i] = o.StateAt(dt).Position
	}
	tr.points = points
	tr.n = n
	tr.cacheHash = o.hash()
	return points
}

func (tr *Trace) hashValid(o Orbit) bool {
	return tr.points != nil && tr.cacheHash == o.hash()
}
