package orbits

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds the display and simulation settings. The zero value is not
// meaningful; use DefaultConfig or LoadConfig.
type Config struct {
	FPS             int     // target frame rate of the external frame driver
	Scale           float64 // meters per pixel at zoom 1
	ReferenceRadius int     // pixels of a body with relative radius 1 at zoom 1
	ZoomMin         float64
	ZoomMax         float64
	ZoomStep        float64 // multiplicative zoom step factor
}

var (
	cfgLoaded = false
	cfg       Config
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		FPS:             30,
		Scale:           1e10,
		ReferenceRadius: 15,
		ZoomMin:         0.01,
		ZoomMax:         170,
		ZoomStep:        1.1,
	}
}

// LoadConfig returns the settings from conf.toml in the directory named by
// the ORBITS_CONFIG environment variable, falling back to the defaults for
// any missing key. With ORBITS_CONFIG unset or the file unreadable the
// defaults are returned as-is: the built-in catalog needs no configuration.
func LoadConfig() Config {
	if cfgLoaded {
		return cfg
	}
	cfg = DefaultConfig()
	cfgLoaded = true
	confPath := os.Getenv("ORBITS_CONFIG")
	if confPath == "" {
		return cfg
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	v.SetDefault("simulation.fps", cfg.FPS)
	v.SetDefault("display.scale", cfg.Scale)
	v.SetDefault("display.reference_radius", cfg.ReferenceRadius)
	v.SetDefault("zoom.min", cfg.ZoomMin)
	v.SetDefault("zoom.max", cfg.ZoomMax)
	v.SetDefault("zoom.step", cfg.ZoomStep)
	if err := v.ReadInConfig(); err != nil {
		return cfg
	}
	cfg.FPS = v.GetInt("simulation.fps")
	cfg.Scale = v.GetFloat64("display.scale")
	cfg.ReferenceRadius = v.GetInt("display.reference_radius")
	cfg.ZoomMin = v.GetFloat64("zoom.min")
	cfg.ZoomMax = v.GetFloat64("zoom.max")
	cfg.ZoomStep = v.GetFloat64("zoom.step")
	return cfg
}
