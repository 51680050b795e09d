package orbits

import (
	"fmt"
	"strings"
)

// Color is an RGB triplet for the renderer.
type Color struct {
	R, G, B uint8
}

// Sprite carries the drawing hints of a body: its radius relative to
// Jupiter, its color, ring radii relative to the body radius (largest last),
// and the smallest on-screen radius in pixels.
type Sprite struct {
	Radius    float64
	Color     Color
	Rings     []float64
	MinRadius int
}

// Body is a drawable solar system object: either fixed at the focus, or
// bound to a Keplerian orbit. The variant is decided once, at construction.
type Body struct {
	Name   string
	Sprite Sprite
	orbit  *Orbit
}

// OrbitingBody returns a body bound to the given orbit.
func OrbitingBody(name string, o *Orbit, s Sprite) Body {
	return Body{Name: name, Sprite: s, orbit: o}
}

// FixedBody returns a body sitting motionless at the focus.
func FixedBody(name string, s Sprite) Body {
	return Body{Name: name, Sprite: s}
}

// Orbit returns the orbit of this body, or false for a fixed body.
func (b Body) Orbit() (*Orbit, bool) {
	return b.orbit, b.orbit != nil
}

// mustOrbit builds an orbit around the Sun from the catalog literals below,
// with angles in degrees and the period in days. Only valid constants reach
// it, hence the panic on error.
func mustOrbit(e, a, Tdays, Ωdeg, ωdeg, M0deg float64) *Orbit {
	o, err := NewOrbit(e, a, daySeconds(Tdays), Deg2rad(Ωdeg), Deg2rad(ωdeg), Deg2rad(M0deg), SunGM, J2000)
	if err != nil {
		panic(err)
	}
	return o
}

/* Definitions. Elements are heliocentric at the J2000 epoch. */

// Sun sits at the focus and goes nowhere.
var Sun = FixedBody("Sun", Sprite{Radius: 0.15, Color: Color{0xFF, 0xCC, 0x33}, MinRadius: 3})

// Mercury is in a hurry.
var Mercury = OrbitingBody("Mercury",
	mustOrbit(0.21, 5.790905e10, 87.9691, 48.331, 29.124, 174.796),
	Sprite{Radius: 0.034, Color: Color{0xB5, 0xA7, 0xA7}, MinRadius: 1})

// Venus is poisonous.
var Venus = OrbitingBody("Venus",
	mustOrbit(0.0068, 1.08208628e11, 224.7, 76.680, 54.884, 50.115),
	Sprite{Radius: 0.085, Color: Color{0xDD, 0xD8, 0xD4}, MinRadius: 1})

// Earth is home.
var Earth = OrbitingBody("Earth",
	mustOrbit(0.0167086, 1.496e11, 365.256363004, 174.9, 288.1, 358.617),
	Sprite{Radius: 0.089, Color: Color{0x8C, 0xB1, 0xDE}, MinRadius: 1})

// Mars is the vacation place.
var Mars = OrbitingBody("Mars",
	mustOrbit(0.0934, 2.27942276e11, 687.0, 49.558, 286.502, 19.412),
	Sprite{Radius: 0.048, Color: Color{0xE2, 0x7B, 0x58}, MinRadius: 1})

// Jupiter is big, and sets the reference radius.
var Jupiter = OrbitingBody("Jupiter",
	mustOrbit(0.0489, 7.7857e11, 4332.59, 100.464, 273.867, 20.020),
	Sprite{Radius: 1.0, Color: Color{0xD3, 0x9C, 0x7E}, MinRadius: 1})

// Saturn floats and that's really cool.
var Saturn = OrbitingBody("Saturn",
	mustOrbit(0.0565, 1.43353e12, 10759.22, 113.665, 339.392, 317.020),
	Sprite{Radius: 0.843, Color: Color{0xA4, 0x9B, 0x72}, Rings: []float64{1.3, 1.6, 1.9}, MinRadius: 1})

// Uranus is no joke.
var Uranus = OrbitingBody("Uranus",
	mustOrbit(0.046381, 2.87504e12, 30688.5, 74.006, 96.998857, 142.2386),
	Sprite{Radius: 0.358, Color: Color{0xBB, 0xE1, 0xE4}, Rings: []float64{1.3, 1.6}, MinRadius: 1})

// Neptune is far.
var Neptune = OrbitingBody("Neptune",
	mustOrbit(0.009456, 4.50439e12, 60182, 131.784, 276.336, 256.228),
	Sprite{Radius: 0.346, Color: Color{0x60, 0x81, 0xFF}, MinRadius: 1})

// Pluto is not a planet but earned its keypress anyway.
var Pluto = OrbitingBody("Pluto",
	mustOrbit(0.2488, 5.90638e12, 90560, 110.299, 113.834, 14.53),
	Sprite{Radius: 0.017, Color: Color{0xFF, 0xF1, 0xD5}, MinRadius: 1})

// Catalog returns the built-in bodies, planets first in distance order, then
// the Sun.
func Catalog() []Body {
	return []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Sun}
}

// BodyFromString returns the catalog body with the given name.
func BodyFromString(name string) (Body, error) {
	for _, b := range Catalog() {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Body{}, fmt.Errorf("undefined body '%s'", name)
}
