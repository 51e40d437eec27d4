// Package config holds the runtime settings shared by the viewer and the
// terminal runner.
package config

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"life3d/internal/camera"
	"life3d/pkg/linalg"
	"life3d/pkg/sims/life"
)

// MaxDimension bounds the field width and height.
const MaxDimension = 4096

// Config represents every tunable of a run.
type Config struct {
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Pattern string  `json:"pattern"`
	OriginX int     `json:"origin_x"`
	OriginY int     `json:"origin_y"`
	Center  bool    `json:"center"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Workers int     `json:"workers"`

	Spacing          float64 `json:"spacing"`
	FOVDegrees       float64 `json:"fov_degrees"`
	Near             float64 `json:"near"`
	Far              float64 `json:"far"`
	MoveSpeed        float64 `json:"move_speed"`
	MouseSensitivity float64 `json:"mouse_sensitivity"`
	StartX           float64 `json:"start_x"`
	StartY           float64 `json:"start_y"`
	StartZ           float64 `json:"start_z"`
	StartYaw         float64 `json:"start_yaw"`
	StartPitch       float64 `json:"start_pitch"`

	TPS          int    `json:"tps"`
	RunTPS       int    `json:"run_tps"`
	RapidAdvance bool   `json:"rapid_advance"`
	LogLevel     string `json:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   200,
		Height:  200,
		Pattern: "blocks",
		Seed:    42,
		Density: 0.25,

		Spacing:          2.2,
		FOVDegrees:       90,
		Near:             0.1,
		Far:              100,
		MoveSpeed:        5,
		MouseSensitivity: 1.0 / 500,
		StartX:           15,
		StartY:           -15,
		StartZ:           30,
		StartYaw:         math.Pi,

		TPS:      60,
		RunTPS:   10,
		LogLevel: "info",
	}
}

// FromMap applies a string map (flag-style key/value pairs) over base.
// Unparsable or out-of-range values keep the base value.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["origin_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginY = parsed
		}
	}
	if v, ok := cfg["center"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Center = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["fov"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 180 {
			c.FOVDegrees = parsed
		}
	}
	if v, ok := cfg["move_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.MoveSpeed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["run_tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RunTPS = parsed
		}
	}
	if v, ok := cfg["rapid_advance"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RapidAdvance = parsed
		}
	}
	if v, ok := cfg["log_level"]; ok && v != "" {
		c.LogLevel = v
	}
	return c
}

// ParseOverrides turns trailing "key=value" arguments into a map for
// FromMap.
func ParseOverrides(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("[ParseOverrides] expected key=value, got %q", a)
		}
		out[k] = v
	}
	return out, nil
}

// WithOverrides applies trailing "key=value" arguments over c.
func (c Config) WithOverrides(args []string) (Config, error) {
	kv, err := ParseOverrides(args)
	if err != nil {
		return c, err
	}
	return FromMap(c, kv), nil
}

// Load reads a JSON file over DefaultConfig.
func Load(filename string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	return c, nil
}

// PathFromArgs returns the value of a -config or --config argument, so the
// file can be loaded before flags are parsed over it.
func PathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if len(a)-len(name) == 0 || len(a)-len(name) > 2 {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
	}
	return ""
}

// Validate reports the first setting that cannot produce a usable run.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > MaxDimension:
		return errors.Errorf("[Validate] width %d outside 1..%d", c.Width, MaxDimension)
	case c.Height <= 0 || c.Height > MaxDimension:
		return errors.Errorf("[Validate] height %d outside 1..%d", c.Height, MaxDimension)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density %v outside 0..1", c.Density)
	case c.Workers < 0:
		return errors.Errorf("[Validate] negative worker count %d", c.Workers)
	case c.Spacing <= 0:
		return errors.Errorf("[Validate] spacing must be positive, got %v", c.Spacing)
	case c.FOVDegrees <= 0 || c.FOVDegrees >= 180:
		return errors.Errorf("[Validate] fov %v outside (0, 180)", c.FOVDegrees)
	case c.Near <= 0:
		return errors.Errorf("[Validate] near plane must be positive, got %v", c.Near)
	case c.Far <= c.Near:
		return errors.Errorf("[Validate] far plane %v must exceed near plane %v", c.Far, c.Near)
	case c.TPS <= 0:
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	case c.RunTPS <= 0:
		return errors.Errorf("[Validate] run tps must be positive, got %d", c.RunTPS)
	}
	if _, ok := life.LookupPattern(c.Pattern); !ok {
		return errors.Errorf("[Validate] unknown pattern %q", c.Pattern)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate] bad log level")
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern")
	fs.IntVar(&c.OriginX, "origin-x", c.OriginX, "pattern x offset")
	fs.IntVar(&c.OriginY, "origin-y", c.OriginY, "pattern y offset")
	fs.BoolVar(&c.Center, "center", c.Center, "centre the pattern in the field")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for the random pattern")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row workers (0 or 1 runs serially)")
	fs.Float64Var(&c.FOVDegrees, "fov", c.FOVDegrees, "vertical field of view in degrees")
	fs.Float64Var(&c.MoveSpeed, "speed", c.MoveSpeed, "camera speed in units per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RunTPS, "run-tps", c.RunTPS, "generations per second while auto-running")
	fs.BoolVar(&c.RapidAdvance, "rapid", c.RapidAdvance, "advance every frame the step key is held")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
}

// PatternOptions returns the seeding options for life.Seed.
func (c Config) PatternOptions() life.PatternOptions {
	return life.PatternOptions{X: c.OriginX, Y: c.OriginY, Center: c.Center, Density: c.Density}
}

// CameraSettings converts the projection and movement fields.
func (c Config) CameraSettings() camera.Settings {
	return camera.Settings{
		MoveSpeed:        c.MoveSpeed,
		MouseSensitivity: c.MouseSensitivity,
		FOV:              c.FOVDegrees * math.Pi / 180,
		Near:             c.Near,
		Far:              c.Far,
	}
}

// Camera returns the starting camera.
func (c Config) Camera() camera.Camera {
	return camera.Camera{
		Position:   linalg.V3(c.StartX, c.StartY, c.StartZ),
		Horizontal: c.StartYaw,
		Vertical:   c.StartPitch,
	}
}

// ConfigureLogger applies LogLevel to logger, falling back to info.
func (c Config) ConfigureLogger(logger *logrus.Logger) {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}
