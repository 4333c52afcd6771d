package gauge

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Mode selects how a gauge participates in a multi-gauge plot.
// Only ModeSingleGauge changes rendering: it suppresses the background arc.
type Mode uint8

const (
	// ModeSequential places gauges one after another around the dial.
	ModeSequential Mode = iota
	// ModeStacked stacks gauges as concentric rings.
	ModeStacked
	// ModeSingleGauge draws every gauge on a shared track without a background.
	ModeSingleGauge
)

var modeNames = [...]string{
	ModeSequential:  "sequential",
	ModeStacked:     "stacked",
	ModeSingleGauge: "single",
}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode parses a mode name as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("gauge: unknown mode %q", s)
}

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (gg.LineCap, error) {
	switch strings.ToLower(s) {
	case "butt":
		return gg.LineCapButt, nil
	case "round":
		return gg.LineCapRound, nil
	case "square":
		return gg.LineCapSquare, nil
	}
	return 0, fmt.Errorf("gauge: unknown line cap %q", s)
}

// Font is the typeface and colour used for gauge labels.
type Font struct {
	Source *text.FontSource
	Color  gg.RGBA
}

// Config describes a single radial gauge.
//
// Angles are in degrees and unbounded; see the package documentation for
// the orientation. A Config is a plain value: build one per render.
type Config struct {
	// StartAngle is where the value arc begins.
	StartAngle float64
	// SweepAngle is the signed extent of the value arc.
	SweepAngle float64
	// MaxSizeAngle is the extent of the background arc.
	MaxSizeAngle float64
	// BackStartAngle is where the background arc begins.
	BackStartAngle float64

	// Clockwise selects the sign of the background sweep.
	Clockwise bool
	// CircularBackground makes the background a full circle,
	// ignoring MaxSizeAngle.
	CircularBackground bool

	// Width is the stroke width in pixels. Must be >= 0.
	Width float64

	Color           gg.RGBA
	BackgroundColor gg.RGBA

	// StartCap caps the background arc.
	StartCap gg.LineCap
	// EndCap is accepted for symmetry with StartCap but is not applied:
	// the value arc is always drawn with gg.LineCapButt.
	EndCap gg.LineCap

	Font Font
	// FontSizeFraction scales the label size relative to Width.
	FontSizeFraction float64

	// Label is drawn along the value arc. Empty disables the label.
	Label string
	// LabelPositionFraction places the label along the arc,
	// 0 at the base and 1 at the tip.
	LabelPositionFraction float64

	Mode       Mode
	ShowLabels bool
}

// DefaultConfig returns a gauge with a 20px round-capped track, labels at
// the tip and a semi-transparent background.
func DefaultConfig() Config {
	return Config{
		StartAngle:            270,
		MaxSizeAngle:          360,
		BackStartAngle:        270,
		Clockwise:             true,
		Width:                 20,
		Color:                 gg.Hex("#1f77b4"),
		BackgroundColor:       gg.RGBA2(0.12, 0.47, 0.71, 0.3),
		StartCap:              gg.LineCapRound,
		EndCap:                gg.LineCapButt,
		Font:                  Font{Color: gg.White},
		FontSizeFraction:      0.75,
		LabelPositionFraction: 1,
		Mode:                  ModeSequential,
		ShowLabels:            true,
	}
}

// BackSweep returns the sweep of the background arc: a full turn for
// circular backgrounds and MaxSizeAngle otherwise, negated when the gauge
// runs counter-clockwise.
func (c Config) BackSweep() float64 {
	sweep := c.MaxSizeAngle
	if c.CircularBackground {
		sweep = 360
	}
	if !c.Clockwise {
		sweep = -sweep
	}
	return sweep
}

// TextSize returns the label font size in pixels.
func (c Config) TextSize() float64 {
	return c.Width * c.FontSizeFraction
}

// Validate reports configuration values that rendering does not guard
// against. Render itself never calls Validate.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeWidth, c.Width)
	}
	angles := []struct {
		name  string
		value float64
	}{
		{"start", c.StartAngle},
		{"sweep", c.SweepAngle},
		{"max size", c.MaxSizeAngle},
		{"background start", c.BackStartAngle},
	}
	for _, a := range angles {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("%w: %s angle is %v", ErrInvalidAngle, a.name, a.value)
		}
	}
	if f := c.LabelPositionFraction; f < 0 || f > 1 || math.IsNaN(f) {
		return fmt.Errorf("%w: %v", ErrLabelFraction, f)
	}
	return nil
}
