package orbits

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// SunGM is the standard gravitational parameter of the Sun in m^3/s^2.
	SunGM = 1.32712440018e20

	keplerAccuracy   = 1e-10 // convergence threshold on successive E iterates
	keplerIterations = 100

	eccentricityε = 5e-5
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e4                          // 20 km
	velocityε     = 1e-3                         // in m/s
)

// J2000 is the reference epoch of the built-in catalog: 2000-01-01 12:00:00
// terrestrial time.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Orbit defines a fixed two-body Keplerian ellipse around its focus via
// orbital elements and a reference epoch. It is immutable once constructed.
type Orbit struct {
	e, a, T float64 // eccentricity, semi-major axis (m), period (s)
	Ω, ω    float64 // longitude of ascending node, argument of periapsis
	M0      float64 // mean anomaly at epoch
	μ       float64 // gravitational parameter of the central body
	epoch   time.Time
}

// NewOrbit returns an orbit built from the provided elements, or an error if
// e, a, T or μ violate their domains. Angles are in radians, a in meters,
// T in seconds.
func NewOrbit(e, a, T, Ω, ω, M0, μ float64, epoch time.Time) (*Orbit, error) {
	if e < 0 || e >= 1 {
		return nil, fmt.Errorf("eccentricity must be in [0,1), got %f", e)
	}
	if a <= 0 {
		return nil, fmt.Errorf("semi-major axis must be positive, got %f", a)
	}
	if T <= 0 {
		return nil, fmt.Errorf("orbital period must be positive, got %f", T)
	}
	if μ <= 0 {
		return nil, fmt.Errorf("gravitational parameter must be positive, got %f", μ)
	}
	return &Orbit{e, a, T, Ω, ω, M0, μ, epoch}, nil
}

// Eccentricity returns e.
func (o Orbit) Eccentricity() float64 {
	return o.e
}

// SemiMajorAxis returns a in meters.
func (o Orbit) SemiMajorAxis() float64 {
	return o.a
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (o Orbit) GM() float64 {
	return o.μ
}

// Epoch returns the reference epoch the mean anomaly at epoch refers to.
func (o Orbit) Epoch() time.Time {
	return o.epoch
}

// Period returns the period of this orbit.
func (o Orbit) Period() time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", o.T))
	return duration
}

// MeanMotion returns the mean angular motion in rad/s.
func (o Orbit) MeanMotion() float64 {
	return 2 * math.Pi / o.T
}

// Apoapsis returns the farthest distance from the focus.
func (o Orbit) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the closest distance to the focus.
func (o Orbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// State is the kinematic state of a body on its orbit at a given instant.
// It is derived on demand from the elements and never stored.
type State struct {
	DT       time.Time
	M, E, ν  float64 // mean, eccentric and true anomalies, in radians
	R        float64 // distance to the focus in m
	V        float64 // speed in m/s
	Position Point   // planar position relative to the focus in m
}

// StateAt solves Kepler's equation and returns the full kinematic state of
// the body at the given time. Identical inputs always yield identical output.
func (o Orbit) StateAt(dt time.Time) State {
	t := dt.Sub(o.epoch).Seconds()
	// Left unwrapped: all downstream trigonometry is periodic.
	M := o.M0 + 2*math.Pi*t/o.T
	E := o.eccentricAnomaly(M)
	ν := 2 * math.Atan(math.Sqrt((1+o.e)/(1-o.e))*math.Tan(E/2))
	r := o.a * (1 - o.e*math.Cos(E))
	v := math.Sqrt(o.μ * (2/r - 1/o.a)) // vis-viva
	φ := ν + o.Ω + o.ω
	sφ, cφ := math.Sincos(φ)
	return State{DT: dt, M: M, E: E, ν: ν, R: r, V: v, Position: Point{r * cφ, r * sφ}}
}

// TrueAnomaly returns ν.
func (s State) TrueAnomaly() float64 {
	return s.ν
}

// eccentricAnomaly solves Kepler's equation M = E - e·sinE by fixed-point
// iteration seeded at M. After keplerIterations the last iterate is returned
// as-is: precision degrades silently as e approaches 1.
func (o Orbit) eccentricAnomaly(M float64) float64 {
	prevE := M
	for i := 0; ; i++ {
		E := M + o.e*math.Sin(prevE)
		if math.Abs(E-prevE) < keplerAccuracy || i >= keplerIterations {
			return E
		}
		prevE = E
	}
}

// String implements the stringer interface (hence the value receiver).
func (o Orbit) String() string {
	return fmt.Sprintf("a=%.4e e=%.6f Ω=%.3f ω=%.3f M0=%.3f T=%s",
		o.a, o.e, Rad2deg(o.Ω), Rad2deg(o.ω), Rad2deg(o.M0), o.Period())
}

// Equals returns whether two orbits trace the same ellipse from the same
// epoch, within tolerance of each element.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if !scalar.EqualWithinAbs(o.a, o1.a, distanceε) {
		return false, fmt.Errorf("semi major axis invalid")
	}
	if !scalar.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, fmt.Errorf("eccentricity invalid")
	}
	if !scalar.EqualWithinAbs(o.T, o1.T, 1) {
		return false, fmt.Errorf("period invalid")
	}
	if !scalar.EqualWithinAbs(o.Ω, o1.Ω, angleε) {
		return false, fmt.Errorf("RAAN invalid")
	}
	if !scalar.EqualWithinAbs(o.ω, o1.ω, angleε) {
		return false, fmt.Errorf("argument of periapsis invalid")
	}
	if !scalar.EqualWithinAbs(o.M0, o1.M0, angleε) {
		return false, fmt.Errorf("mean anomaly at epoch invalid")
	}
	if !o.epoch.Equal(o1.epoch) {
		return false, fmt.Errorf("epoch invalid")
	}
	return true, nil
}

// hash is a cheap identity of the elements, used to invalidate caches keyed
// on this orbit.
func (o Orbit) hash() float64 {
	return o.e + o.a + o.T + o.Ω + o.ω + o.M0 + o.μ + float64(o.epoch.Unix())
}
