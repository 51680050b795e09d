package orbits

import (
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

const testFPS = 30

// clockAt returns a clock at J2000 stepped to the given ladder index.
func clockAt(t *testing.T, index int) *Clock {
	t.Helper()
	c := NewClock(J2000, testFPS)
	for c.RateIndex() != index {
		if c.RateIndex() < index {
			c.StepRate(Up)
		} else {
			c.StepRate(Down)
		}
	}
	return c
}

func TestClockProportionality(t *testing.T) {
	cases := []struct {
		index int
		want  time.Duration
	}{
		{freezeIndex + 4, 24 * time.Hour},     // 1 d/s
		{freezeIndex + 1, time.Second},        // real time
		{freezeIndex - 4, -24 * time.Hour},    // -1 d/s
		{freezeIndex + 5, 7 * 24 * time.Hour}, // 1 w/s
		{freezeIndex - 2, -time.Minute},
	}
	for _, tc := range cases {
		c := clockAt(t, tc.index)
		for i := 0; i < testFPS; i++ {
			c.Tick()
		}
		elapsed := c.Now().Sub(J2000)
		// Integer nanosecond steps may leave the clock short of the target
		// by less than one nanosecond per tick.
		if d := (elapsed - tc.want); d < -time.Duration(testFPS) || d > time.Duration(testFPS) {
			t.Errorf("rate %s: %d ticks advanced %s, want %s", rateLadder[tc.index], testFPS, elapsed, tc.want)
		}
	}
}

func TestClockCalendarRates(t *testing.T) {
	// Month and year entries are calendar deltas, so a second of real time
	// lands exactly on the shifted date.
	start := time.Date(2000, 1, 15, 12, 0, 0, 0, time.UTC)
	c := NewClock(start, testFPS) // default rate is 1 mo/s
	for i := 0; i < testFPS; i++ {
		c.Tick()
	}
	want := start.AddDate(0, 1, 0)
	if got := c.Now(); !got.Equal(want) {
		t.Fatalf("one month tick sequence ended at %s, want %s", got, want)
	}
}

func TestClockFreeze(t *testing.T) {
	c := clockAt(t, freezeIndex)
	for i := 0; i < 5*testFPS; i++ {
		c.Tick()
	}
	if !c.Now().Equal(J2000) {
		t.Fatalf("frozen clock moved to %s", c.Now())
	}
	if !c.target.Equal(c.current) {
		t.Fatalf("freeze must keep target at the current time, got target=%s", c.target)
	}
}

func TestClockNegativeRate(t *testing.T) {
	c := clockAt(t, freezeIndex-4) // -1 d/s
	c.Tick()
	if !c.Now().Before(J2000) {
		t.Fatalf("negative rate did not move time backward: %s", c.Now())
	}
	if !c.target.Before(c.current) {
		t.Fatal("target must lie in the direction of travel")
	}
}

func TestStepRateBounds(t *testing.T) {
	c := NewClock(J2000, testFPS)
	for i := 0; i < 2*len(rateLadder); i++ {
		c.StepRate(Up)
	}
	if c.RateIndex() != len(rateLadder)-1 {
		t.Fatalf("rate index %d, want the ladder top %d", c.RateIndex(), len(rateLadder)-1)
	}
	for i := 0; i < 3*len(rateLadder); i++ {
		c.StepRate(Down)
	}
	if c.RateIndex() != 0 {
		t.Fatalf("rate index %d, want the ladder bottom 0", c.RateIndex())
	}
}

func TestPauseResume(t *testing.T) {
	c := clockAt(t, freezeIndex+4)
	c.Pause()
	if !c.Paused() || !c.Rate().IsFreeze() {
		t.Fatal("paused clock must sit on the freeze rate")
	}
	c.StepRate(Up) // ignored while paused
	for i := 0; i < testFPS; i++ {
		c.Tick()
	}
	if !c.Now().Equal(J2000) {
		t.Fatalf("paused clock moved to %s", c.Now())
	}
	c.Resume()
	if c.Paused() || c.RateIndex() != freezeIndex+4 {
		t.Fatalf("resume did not restore the rate: index=%d", c.RateIndex())
	}
	c.Tick()
	if !c.Now().After(J2000) {
		t.Fatal("resumed clock did not advance")
	}
}

func TestJumpTo(t *testing.T) {
	c := NewClock(J2000, testFPS)
	want := time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC)
	index := c.RateIndex()
	c.JumpTo(want)
	if !c.Now().Equal(want) {
		t.Fatalf("jumped to %s, want exactly %s", c.Now(), want)
	}
	if c.RateIndex() != index {
		t.Fatalf("jump changed the rate index to %d", c.RateIndex())
	}
	c.Tick()
	if !c.Now().After(want) {
		t.Fatal("clock did not resume toward the new target")
	}
}

func TestRateLabels(t *testing.T) {
	if got := rateLadder[freezeIndex].String(); got != "Time freeze" {
		t.Errorf("freeze label %q", got)
	}
	if got := rateLadder[freezeIndex+1].String(); got != "Real time" {
		t.Errorf("real time label %q", got)
	}
	if got := rateLadder[0].String(); got != "-100 y/s" {
		t.Errorf("ladder bottom label %q", got)
	}
	if got := rateLadder[len(rateLadder)-1].String(); got != "100 y/s" {
		t.Errorf("ladder top label %q", got)
	}
}

func TestJulianDay(t *testing.T) {
	c := NewClock(J2000, testFPS)
	if !scalar.EqualWithinAbs(c.JulianDay(), 2451545.0, 1e-9) {
		t.Fatalf("J2000 is JD 2451545.0, got %.9f", c.JulianDay())
	}
}
