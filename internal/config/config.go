// Package config loads gauge scenes for the gaugedemo command.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GAUGE_CANVAS_WIDTH.
const EnvPrefix = "GAUGE"

// Config is a scene of gauges laid out on a grid.
type Config struct {
	Canvas  CanvasConfig  `mapstructure:"canvas" yaml:"canvas"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Columns int           `mapstructure:"columns" yaml:"columns"`
	Font    string        `mapstructure:"font" yaml:"font"` // TTF/OTF path; empty uses Go Regular
	Gauges  []GaugeConfig `mapstructure:"gauges" yaml:"gauges"`
}

// CanvasConfig is the output image.
type CanvasConfig struct {
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Background string `mapstructure:"background" yaml:"background"`
}

// LogConfig configures slog output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// GaugeConfig mirrors gauge.Config. Unset fields keep the values of
// gauge.DefaultConfig.
type GaugeConfig struct {
	StartAngle            *float64 `mapstructure:"start_angle" yaml:"start_angle"`
	SweepAngle            *float64 `mapstructure:"sweep_angle" yaml:"sweep_angle"`
	MaxSizeAngle          *float64 `mapstructure:"max_size_angle" yaml:"max_size_angle"`
	BackStartAngle        *float64 `mapstructure:"back_start_angle" yaml:"back_start_angle"`
	Clockwise             *bool    `mapstructure:"clockwise" yaml:"clockwise"`
	CircularBackground    *bool    `mapstructure:"circular_background" yaml:"circular_background"`
	Width                 *float64 `mapstructure:"width" yaml:"width"`
	Color                 string   `mapstructure:"color" yaml:"color"`
	BackgroundColor       string   `mapstructure:"background_color" yaml:"background_color"`
	StartCap              string   `mapstructure:"start_cap" yaml:"start_cap"`
	EndCap                string   `mapstructure:"end_cap" yaml:"end_cap"`
	FontColor             string   `mapstructure:"font_color" yaml:"font_color"`
	FontSizeFraction      *float64 `mapstructure:"font_size_fraction" yaml:"font_size_fraction"`
	Label                 string   `mapstructure:"label" yaml:"label"`
	LabelPositionFraction *float64 `mapstructure:"label_position_fraction" yaml:"label_position_fraction"`
	Mode                  string   `mapstructure:"mode" yaml:"mode"`
	ShowLabels            *bool    `mapstructure:"show_labels" yaml:"show_labels"`
}

// FieldError reports an invalid field of the gauge at Index.
type FieldError struct {
	Index int
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("gauge %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ErrBadCanvas is returned for a non-positive canvas size.
var ErrBadCanvas = errors.New("config: canvas width and height must be positive")

// Load reads ./gauges.yaml if present, then environment variables.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("gauges")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads the scene from path, then environment variables.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("canvas.width", 800)
	v.SetDefault("canvas.height", 600)
	v.SetDefault("canvas.background", "#ffffff")
	v.SetDefault("log.level", "warn")
	v.SetDefault("columns", 2)
	v.SetDefault("font", "")
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadCanvas, cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 1
	}
	if len(cfg.Gauges) == 0 {
		cfg.Gauges = []GaugeConfig{{}}
	}
	return &cfg, nil
}

// BackgroundColor parses the canvas background.
func (c *Config) BackgroundColor() (gg.RGBA, error) {
	return ParseColor(c.Canvas.Background)
}

// GaugeConfigs converts and validates every gauge of the scene.
func (c *Config) GaugeConfigs() ([]gauge.Config, error) {
	out := make([]gauge.Config, 0, len(c.Gauges))
	for i, g := range c.Gauges {
		gc, err := g.ToGauge(i)
		if err != nil {
			return nil, err
		}
		out = append(out, gc)
	}
	return out, nil
}

// ToGauge converts g to a gauge.Config and validates it. index is used in
// error messages only.
func (g GaugeConfig) ToGauge(index int) (gauge.Config, error) {
	cfg := gauge.DefaultConfig()

	setFloat(&cfg.StartAngle, g.StartAngle)
	setFloat(&cfg.SweepAngle, g.SweepAngle)
	setFloat(&cfg.MaxSizeAngle, g.MaxSizeAngle)
	setFloat(&cfg.BackStartAngle, g.BackStartAngle)
	setFloat(&cfg.Width, g.Width)
	setFloat(&cfg.FontSizeFraction, g.FontSizeFraction)
	setFloat(&cfg.LabelPositionFraction, g.LabelPositionFraction)
	setBool(&cfg.Clockwise, g.Clockwise)
	setBool(&cfg.CircularBackground, g.CircularBackground)
	setBool(&cfg.ShowLabels, g.ShowLabels)
	cfg.Label = g.Label

	colors := []struct {
		field string
		value string
		dst   *gg.RGBA
	}{
		{"color", g.Color, &cfg.Color},
		{"background_color", g.BackgroundColor, &cfg.BackgroundColor},
		{"font_color", g.FontColor, &cfg.Font.Color},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		col, err := ParseColor(c.value)
		if err != nil {
			return cfg, &FieldError{Index: index, Field: c.field, Err: err}
		}
		*c.dst = col
	}

	caps := []struct {
		field string
		value string
		dst   *gg.LineCap
	}{
		{"start_cap", g.StartCap, &cfg.StartCap},
		{"end_cap", g.EndCap, &cfg.EndCap},
	}
	for _, c := range caps {
		if c.value == "" {
			continue
		}
		lc, err := gauge.ParseLineCap(c.value)
		if err != nil {
			return cfg, &FieldError{Index: index, Field: c.field, Err: err}
		}
		*c.dst = lc
	}

	if g.Mode != "" {
		m, err := gauge.ParseMode(g.Mode)
		if err != nil {
			return cfg, &FieldError{Index: index, Field: "mode", Err: err}
		}
		cfg.Mode = m
	}

	if err := cfg.Validate(); err != nil {
		return cfg, &FieldError{Index: index, Field: "gauge", Err: err}
	}
	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(s)
	if !isHexColor(s) {
		return gg.RGBA{}, fmt.Errorf("config: invalid color %q", s)
	}
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("config: invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// isHexColor reports whether s is '#' followed by 3, 6 or 8 hex digits.
// colorful.Hex alone accepts short and over-long input.
func isHexColor(s string) bool {
	switch len(s) {
	case 4, 7, 9:
	default:
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
