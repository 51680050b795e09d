package orbits

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Rate is one entry of the clock's rate ladder: the simulated time advanced
// per real second. Month and year entries are calendar deltas, so their
// absolute length depends on the instant they are applied to.
type Rate struct {
	years, months int
	d             time.Duration
	label         string
}

// Shift returns t advanced by this rate (one real second's worth).
func (r Rate) Shift(t time.Time) time.Time {
	if r.years != 0 || r.months != 0 {
		return t.AddDate(r.years, r.months, 0)
	}
	return t.Add(r.d)
}

// IsFreeze returns whether this rate stops simulated time.
func (r Rate) IsFreeze() bool {
	return r.years == 0 && r.months == 0 && r.d == 0
}

// String implements the stringer interface.
func (r Rate) String() string {
	return r.label
}

const (
	week = 7 * 24 * time.Hour
	day  = 24 * time.Hour

	// freezeIndex is the position of the time freeze entry in the ladder.
	freezeIndex = 12
	// DefaultRateIndex selects 1 mo/s, the startup rate.
	DefaultRateIndex = freezeIndex + 6
)

// rateLadder is ordered by signed magnitude, from -100 y/s to +100 y/s with
// time freeze in the middle.
var rateLadder = []Rate{
	{years: -100, label: "-100 y/s"},
	{years: -50, label: "-50 y/s"},
	{years: -10, label: "-10 y/s"},
	{years: -5, label: "-5 y/s"},
	{years: -1, label: "-1 y/s"},
	{months: -6, label: "-6 mos/s"},
	{months: -1, label: "-1 mo/s"},
	{d: -week, label: "-1 w/s"},
	{d: -day, label: "-1 d/s"},
	{d: -time.Hour, label: "-1 h/s"},
	{d: -time.Minute, label: "-1 min/s"},
	{d: -time.Second, label: "-1 s/s"},
	{label: "Time freeze"},
	{d: time.Second, label: "Real time"},
	{d: time.Minute, label: "1 min/s"},
	{d: time.Hour, label: "1 h/s"},
	{d: day, label: "1 d/s"},
	{d: week, label: "1 w/s"},
	{months: 1, label: "1 mo/s"},
	{months: 6, label: "6 mos/s"},
	{years: 1, label: "1 y/s"},
	{years: 5, label: "5 y/s"},
	{years: 10, label: "10 y/s"},
	{years: 50, label: "50 y/s"},
	{years: 100, label: "100 y/s"},
}

// Clock owns the simulated time and maps real frame ticks onto it at the
// selected, reversible rate. One Tick call is expected per rendered frame;
// fps consecutive ticks advance the time by exactly one ladder unit.
type Clock struct {
	current     time.Time
	rateIndex   int
	paused      bool
	pausedIndex int
	target      time.Time
	step        time.Duration
	fps         int
}

// NewClock returns a clock at the given start time ticking at the default
// rate, sized for fps frames per real second.
func NewClock(start time.Time, fps int) *Clock {
	c := &Clock{current: start, rateIndex: DefaultRateIndex, fps: fps}
	c.retarget()
	return c
}

// retarget derives the target time and per-frame step from the active rate.
// Called on every external mutation so the next tick reflects it immediately.
func (c *Clock) retarget() {
	c.target = rateLadder[c.rateIndex].Shift(c.current)
	c.step = c.target.Sub(c.current) / time.Duration(c.fps)
}

// Tick advances the simulated time by one frame's step. Once the target is
// reached or passed in the direction of travel, the next second's target and
// step are derived.
func (c *Clock) Tick() {
	c.current = c.current.Add(c.step)
	if (c.rateIndex > freezeIndex && !c.current.Before(c.target)) ||
		(c.rateIndex < freezeIndex && !c.current.After(c.target)) {
		c.retarget()
	}
}

// StepRate moves the rate one ladder entry in the given direction (+1 or
// -1). Moves beyond either end of the ladder leave the rate unchanged, and
// moves while paused are ignored entirely.
func (c *Clock) StepRate(direction int) {
	if c.paused {
		return
	}
	if next := c.rateIndex + direction; next >= 0 && next < len(rateLadder) {
		c.rateIndex = next
	}
	c.retarget()
}

// Pause freezes simulated time, remembering the active rate for Resume.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedIndex = c.rateIndex
	c.rateIndex = freezeIndex
	c.retarget()
}

// Resume restores the rate that was active when Pause was called.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.rateIndex = c.pausedIndex
	c.retarget()
}

// JumpTo sets the simulated time directly. The rate is unaffected.
func (c *Clock) JumpTo(t time.Time) {
	c.current = t
	c.retarget()
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time {
	return c.current
}

// Paused returns whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Rate returns the active rate ladder entry.
func (c *Clock) Rate() Rate {
	return rateLadder[c.rateIndex]
}

// RateIndex returns the position of the active rate in the ladder.
func (c *Clock) RateIndex() int {
	return c.rateIndex
}

// JulianDay returns the current simulated time as a Julian day number.
func (c *Clock) JulianDay() float64 {
	return julian.TimeToJD(c.current)
}
