package orbits

import (
	"fmt"
	"math"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// Directions for StepRate and StepZoom.
const (
	Up   = 1
	Down = -1
)

// Label texts.
const (
	timeLbl     = "Time: %s"
	pausedLbl   = "Paused at: %s"
	zoomLbl     = "Zoom: %d%%"
	rateLbl     = "Speed: %s"
	planetLbl   = "%s"
	distanceLbl = "Distance to sun: %0.2v km"
	speedLbl    = "Speed: %03.2v km/s"

	dateOnlyLayout = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// dateLayouts are the shapes SetDate accepts: a date, optionally followed by
// hours, minutes and seconds, space or 'T' separated.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15",
	"2006-01-02T15",
	"2006-01-02",
}

// System is the simulation core of the solar system: one shared clock, the
// body catalog, and the view state (zoom, origin, selected body). It is
// rendering-free; a frame driver calls Frame once per rendered frame and
// hands the snapshot to the renderer. Not safe for concurrent use.
type System struct {
	Clock    *Clock
	cfg      Config
	bodies   []Body
	traces   []*Trace
	selected int
	zoom     float64
	origin   ScreenPoint
	logger   kitlog.Logger
}

// NewSystem returns a system over the built-in catalog, starting at the
// catalog epoch with Earth selected. A nil logger discards all log output.
func NewSystem(cfg Config, logger kitlog.Logger) *System {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	bodies := Catalog()
	traces := make([]*Trace, len(bodies))
	for i := range traces {
		traces[i] = &Trace{}
	}
	return &System{
		Clock:    NewClock(J2000, cfg.FPS),
		cfg:      cfg,
		bodies:   bodies,
		traces:   traces,
		selected: 2, // Earth
		zoom:     1,
		logger:   logger,
	}
}

// Frame advances the clock by one frame and returns the resulting snapshot.
func (s *System) Frame() Snapshot {
	s.Clock.Tick()
	return s.Current()
}

// Current returns a snapshot at the current simulated time without ticking,
// for redraws while the frame loop is suspended.
func (s *System) Current() Snapshot {
	snap := Snapshot{
		Time:        s.Clock.Now(),
		JulianDay:   s.Clock.JulianDay(),
		Paused:      s.Clock.Paused(),
		Rate:        s.Clock.Rate(),
		rateIndex:   s.Clock.RateIndex(),
		ZoomPercent: int(math.Round(s.zoom * 100)),
		Bodies:      make([]BodyState, len(s.bodies)),
	}
	for i, b := range s.bodies {
		bs := BodyState{Body: b}
		if o, ok := b.Orbit(); ok {
			bs.State = o.StateAt(snap.Time)
		}
		bs.Screen = Project(bs.State.Position, s.zoom, s.cfg.Scale, s.origin)
		snap.Bodies[i] = bs
	}
	snap.Selected = snap.Bodies[s.selected]
	return snap
}

// StepRate steps the simulation speed one ladder entry in the direction Up
// or Down.
func (s *System) StepRate(direction int) {
	s.Clock.StepRate(direction)
	s.logger.Log("level", "info", "subsys", "clock", "rate", s.Clock.Rate())
}

// TogglePause pauses the clock, or resumes it at its pre-pause rate.
func (s *System) TogglePause() {
	if s.Clock.Paused() {
		s.Clock.Resume()
	} else {
		s.Clock.Pause()
	}
	s.logger.Log("level", "info", "subsys", "clock", "paused", s.Clock.Paused(), "date", s.Clock.Now())
}

// StepZoom multiplies the zoom by the configured step factor (direction Up)
// or its inverse (Down). Steps that would leave the configured bounds are
// ignored.
func (s *System) StepZoom(direction int) {
	factor := s.cfg.ZoomStep
	if direction == Down {
		factor = 1 / factor
	}
	if z := s.zoom * factor; z >= s.cfg.ZoomMin && z <= s.cfg.ZoomMax {
		s.zoom = z
	}
}

// Zoom returns the current zoom factor.
func (s *System) Zoom() float64 {
	return s.zoom
}

// SetOrigin places the focus on screen, typically the window center.
func (s *System) SetOrigin(p ScreenPoint) {
	s.origin = p
}

// SelectBody selects the nth orbiting body, 1-based in catalog order.
// Out-of-range values are ignored.
func (s *System) SelectBody(n int) {
	if n >= 1 && n <= 9 {
		s.selected = n - 1
	}
}

// SetDate parses a date per dateLayouts and jumps the clock to it. On a
// parse failure the error is returned and the clock is untouched.
func (s *System) SetDate(str string) error {
	var t time.Time
	var err error
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, str); err == nil {
			break
		}
	}
	if err != nil {
		s.logger.Log("level", "warning", "subsys", "clock", "rejected", str)
		return fmt.Errorf("invalid date '%s'", str)
	}
	s.Clock.JumpTo(t)
	s.logger.Log("level", "info", "subsys", "clock", "date", t)
	return nil
}

// TracePoints returns the cached orbit polygon of the nth catalog body with
// n vertices, or nil for a fixed body.
func (s *System) TracePoints(body, n int) []Point {
	o, ok := s.bodies[body].Orbit()
	if !ok {
		return nil
	}
	return s.traces[body].Points(*o, n)
}

// BodyState pairs a body with its solved state and screen position for one
// frame. Fixed bodies carry a zero State and project onto the origin.
type BodyState struct {
	Body   Body
	State  State
	Screen ScreenPoint
}

// Snapshot is the immutable per-frame view of the system handed to the
// renderer.
type Snapshot struct {
	Time        time.Time
	JulianDay   float64
	Paused      bool
	Rate        Rate
	rateIndex   int
	ZoomPercent int
	Bodies      []BodyState
	Selected    BodyState
}

// TimeLabel returns the simulated time readout. At rates of a day per
// second and slower the time of day is included, at faster rates only the
// date is.
func (s Snapshot) TimeLabel() string {
	layout := dateOnlyLayout
	if s.rateIndex > 7 && s.rateIndex < 17 {
		layout = dateTimeLayout
	}
	if s.Paused {
		return fmt.Sprintf(pausedLbl, s.Time.Format(layout))
	}
	return fmt.Sprintf(timeLbl, s.Time.Format(layout))
}

// RateLabel returns the simulation speed readout.
func (s Snapshot) RateLabel() string {
	return fmt.Sprintf(rateLbl, s.Rate)
}

// ZoomLabel returns the zoom readout.
func (s Snapshot) ZoomLabel() string {
	return fmt.Sprintf(zoomLbl, s.ZoomPercent)
}

// PlanetLabel returns the selected body's name readout.
func (s Snapshot) PlanetLabel() string {
	return fmt.Sprintf(planetLbl, s.Selected.Body.Name)
}

// DistanceLabel returns the selected body's distance readout in km.
func (s Snapshot) DistanceLabel() string {
	return fmt.Sprintf(distanceLbl, SciNum(s.Selected.State.R/1000))
}

// SpeedLabel returns the selected body's speed readout in km/s.
func (s Snapshot) SpeedLabel() string {
	return fmt.Sprintf(speedLbl, SciNum(s.Selected.State.V/1000))
}
