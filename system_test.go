package orbits

import (
	"strings"
	"testing"
	"time"
)

func testSystem() *System {
	return NewSystem(DefaultConfig(), nil)
}

func TestSystemDefaults(t *testing.T) {
	s := testSystem()
	snap := s.Current()
	if len(snap.Bodies) != 10 {
		t.Fatalf("catalog snapshot holds %d bodies, want 10", len(snap.Bodies))
	}
	if snap.Selected.Body.Name != "Earth" {
		t.Fatalf("default selection is %s, want Earth", snap.Selected.Body.Name)
	}
	if snap.ZoomPercent != 100 {
		t.Fatalf("default zoom is %d%%, want 100%%", snap.ZoomPercent)
	}
	if !snap.Time.Equal(J2000) {
		t.Fatalf("system starts at %s, want the catalog epoch", snap.Time)
	}
}

func TestFrameAdvancesOnce(t *testing.T) {
	s := testSystem()
	before := s.Clock.Now()
	snap := s.Frame()
	if !snap.Time.After(before) {
		t.Fatal("frame did not advance simulated time")
	}
	if again := s.Current(); !again.Time.Equal(snap.Time) {
		t.Fatal("Current must not tick the clock")
	}
}

func TestFrameProportionality(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSystem(cfg, nil)
	for i := 0; i < 2; i++ {
		s.StepRate(Down) // from 1 mo/s down to 1 w/s then 1 d/s
	}
	start := s.Clock.Now()
	for i := 0; i < cfg.FPS; i++ {
		s.Frame()
	}
	if got := s.Clock.Now().Sub(start); got != 24*time.Hour {
		t.Fatalf("one second of frames advanced %s, want 24h", got)
	}
}

func TestSelectBody(t *testing.T) {
	s := testSystem()
	s.SelectBody(5)
	if got := s.Current().Selected.Body.Name; got != "Jupiter" {
		t.Fatalf("selected %s, want Jupiter", got)
	}
	s.SelectBody(0) // out of range, ignored
	s.SelectBody(10)
	if got := s.Current().Selected.Body.Name; got != "Jupiter" {
		t.Fatalf("out-of-range selection changed the body to %s", got)
	}
}

func TestStepZoomBounds(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSystem(cfg, nil)
	for i := 0; i < 1000; i++ {
		s.StepZoom(Up)
	}
	if z := s.Zoom(); z > cfg.ZoomMax {
		t.Fatalf("zoom %f above the maximum %f", z, cfg.ZoomMax)
	}
	top := s.Zoom()
	s.StepZoom(Up)
	if s.Zoom() != top {
		t.Fatal("a step beyond the maximum must be ignored")
	}
	for i := 0; i < 2000; i++ {
		s.StepZoom(Down)
	}
	if z := s.Zoom(); z < cfg.ZoomMin {
		t.Fatalf("zoom %f below the minimum %f", z, cfg.ZoomMin)
	}
}

func TestSetDate(t *testing.T) {
	s := testSystem()
	if err := s.SetDate("1977-08-20"); err != nil {
		t.Fatalf("valid date rejected: %s", err)
	}
	want := time.Date(1977, 8, 20, 0, 0, 0, 0, time.UTC)
	if !s.Clock.Now().Equal(want) {
		t.Fatalf("clock at %s, want %s", s.Clock.Now(), want)
	}
	if err := s.SetDate("2019-07-16 13:32:00"); err != nil {
		t.Fatalf("valid datetime rejected: %s", err)
	}
	if err := s.SetDate("2019-07-16T13:32"); err != nil {
		t.Fatalf("valid T-separated datetime rejected: %s", err)
	}
}

func TestSetDateInvalid(t *testing.T) {
	s := testSystem()
	before := s.Clock.Now()
	for _, str := range []string{"", "not a date", "2019-13-40", "16/07/2019"} {
		if err := s.SetDate(str); err == nil {
			t.Errorf("%q accepted", str)
		}
	}
	if !s.Clock.Now().Equal(before) {
		t.Fatal("a rejected date must leave the clock untouched")
	}
}

func TestSystemTracePoints(t *testing.T) {
	s := testSystem()
	points := s.TracePoints(2, 90)
	if len(points) != 90 {
		t.Fatalf("got %d trace points, want 90", len(points))
	}
	if sun := s.TracePoints(9, 90); sun != nil {
		t.Fatal("a fixed body has no trace")
	}
}

func TestSnapshotLabels(t *testing.T) {
	s := testSystem()
	snap := s.Current()
	if got := snap.TimeLabel(); got != "Time: 2000-01-01" {
		t.Errorf("time label %q", got)
	}
	if got := snap.RateLabel(); got != "Speed: 1 mo/s" {
		t.Errorf("rate label %q", got)
	}
	if got := snap.ZoomLabel(); got != "Zoom: 100%" {
		t.Errorf("zoom label %q", got)
	}
	if got := snap.PlanetLabel(); got != "Earth" {
		t.Errorf("planet label %q", got)
	}
	if got := snap.DistanceLabel(); !strings.Contains(got, "x10⁸ km") {
		t.Errorf("distance label %q does not read as 10⁸ km", got)
	}
	if got := snap.SpeedLabel(); !strings.HasPrefix(got, "Speed: ") || !strings.HasSuffix(got, " km/s") {
		t.Errorf("speed label %q", got)
	}
	s.TogglePause()
	if got := s.Current().TimeLabel(); !strings.HasPrefix(got, "Paused at: ") {
		t.Errorf("paused time label %q", got)
	}
	s.TogglePause()
}

func TestTimeLabelGranularity(t *testing.T) {
	s := testSystem()
	for i := 0; i < 2; i++ {
		s.StepRate(Down) // 1 d/s: time of day included
	}
	if got := s.Current().TimeLabel(); got != "Time: 2000-01-01 12:00:00" {
		t.Errorf("day-rate time label %q", got)
	}
}

func TestFixedBodyProjectsOntoOrigin(t *testing.T) {
	s := testSystem()
	origin := ScreenPoint{400, 300}
	s.SetOrigin(origin)
	snap := s.Current()
	sun := snap.Bodies[9]
	if _, ok := sun.Body.Orbit(); ok {
		t.Fatal("catalog slot 9 should be the fixed Sun")
	}
	if sun.Screen != origin {
		t.Fatalf("fixed body at %+v, want the origin %+v", sun.Screen, origin)
	}
}
