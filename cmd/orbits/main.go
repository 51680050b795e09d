package main

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"

	"github.com/nissafors/orbits"
)

var (
	dateStr string
	samples int
	frames  int
)

var rootCmd = &cobra.Command{
	Use:   "orbits",
	Short: "Inspect the solar system simulation without a renderer",
	Long: `orbits evaluates the built-in solar system catalog from the command line:
per-body kinematic state at a date, orbit trace polygons, and a headless
run of the frame-driven simulation clock.`,
}

var stateCmd = &cobra.Command{
	Use:   "state <body>",
	Short: "Print the kinematic state of a body at a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := orbits.BodyFromString(args[0])
		if err != nil {
			return err
		}
		t, err := parseDate(dateStr)
		if err != nil {
			return err
		}
		o, ok := body.Orbit()
		if !ok {
			fmt.Printf("%s sits at the focus\n", body.Name)
			return nil
		}
		s := o.StateAt(t)
		fmt.Printf("%s at %s (JD %.4f)\n", body.Name, t.Format("2006-01-02 15:04:05"), julian.TimeToJD(t))
		fmt.Printf("  distance: %0.4v km\n", orbits.SciNum(s.R/1000))
		fmt.Printf("  speed:    %3.3v km/s\n", orbits.SciNum(s.V/1000))
		fmt.Printf("  position: (%.6e, %.6e) m\n", s.Position.X, s.Position.Y)
		fmt.Printf("  true anomaly: %.3f deg\n", orbits.Rad2deg(s.TrueAnomaly()))
		return nil
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <body>",
	Short: "Print one full orbit as evenly spaced planar points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := orbits.BodyFromString(args[0])
		if err != nil {
			return err
		}
		o, ok := body.Orbit()
		if !ok {
			return fmt.Errorf("%s does not orbit", body.Name)
		}
		var tr orbits.Trace
		for _, p := range tr.Points(*o, samples) {
			fmt.Printf("%.6e %.6e\n", p.X, p.Y)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the frame-driven simulation headlessly",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := orbits.LoadConfig()
		logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		sys := orbits.NewSystem(cfg, logger)
		if dateStr != "" {
			if err := sys.SetDate(dateStr); err != nil {
				return err
			}
		}
		for i := 0; i < frames; i++ {
			snap := sys.Frame()
			if i%cfg.FPS == 0 {
				fmt.Printf("%s  %s  %s  %s\n",
					snap.TimeLabel(), snap.PlanetLabel(), snap.DistanceLabel(), snap.SpeedLabel())
			}
		}
		return nil
	},
}

func parseDate(str string) (time.Time, error) {
	if str == "" {
		return orbits.J2000, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date '%s'", str)
}

func init() {
	stateCmd.Flags().StringVar(&dateStr, "date", "", "date to evaluate at (yyyy-mm-dd [HH:MM:SS]), default J2000")
	traceCmd.Flags().IntVarP(&samples, "samples", "n", 360, "number of trace points")
	runCmd.Flags().IntVar(&frames, "frames", 90, "number of frames to simulate")
	runCmd.Flags().StringVar(&dateStr, "date", "", "start date, default J2000")
	rootCmd.AddCommand(stateCmd, traceCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
