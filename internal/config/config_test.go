package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gauges.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func colorsClose(a, b gg.RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLoadReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Canvas: got %dx%d, want 800x600", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Background != "#ffffff" {
		t.Errorf("Canvas.Background: got %q", cfg.Canvas.Background)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level: got %q, want warn", cfg.Log.Level)
	}
	if cfg.Columns != 2 {
		t.Errorf("Columns: got %d, want 2", cfg.Columns)
	}
	if len(cfg.Gauges) != 1 {
		t.Fatalf("Gauges: got %d, want one default gauge", len(cfg.Gauges))
	}

	gauges, err := cfg.GaugeConfigs()
	if err != nil {
		t.Fatalf("GaugeConfigs() error: %v", err)
	}
	def := gauge.DefaultConfig()
	if gauges[0].Width != def.Width || gauges[0].StartCap != def.StartCap {
		t.Errorf("default gauge = %+v, want DefaultConfig values", gauges[0])
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 400
  height: 300
  background: "#000000"
columns: 3
gauges:
  - label: CPU
    start_angle: 180
    sweep_angle: -45.5
    max_size_angle: 90
    back_start_angle: 180
    clockwise: false
    circular_background: true
    width: 12
    color: "#ff0000"
    background_color: "#00ff0080"
    start_cap: square
    end_cap: round
    font_color: "#fff"
    font_size_fraction: 0.5
    label_position_fraction: 0.25
    mode: single
    show_labels: false
  - label: MEM
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 300 {
		t.Errorf("Canvas: got %dx%d, want 400x300", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Columns != 3 {
		t.Errorf("Columns: got %d, want 3", cfg.Columns)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil || !colorsClose(bg, gg.RGB(0, 0, 0)) {
		t.Errorf("BackgroundColor() = %v, %v", bg, err)
	}

	gauges, err := cfg.GaugeConfigs()
	if err != nil {
		t.Fatalf("GaugeConfigs() error: %v", err)
	}
	if len(gauges) != 2 {
		t.Fatalf("got %d gauges, want 2", len(gauges))
	}

	g := gauges[0]
	if g.Label != "CPU" || g.StartAngle != 180 || g.SweepAngle != -45.5 {
		t.Errorf("angles/label = %q %v %v", g.Label, g.StartAngle, g.SweepAngle)
	}
	if g.MaxSizeAngle != 90 || g.BackStartAngle != 180 {
		t.Errorf("background angles = %v %v", g.MaxSizeAngle, g.BackStartAngle)
	}
	if g.Clockwise || !g.CircularBackground || g.ShowLabels {
		t.Errorf("flags = clockwise %v circular %v show %v", g.Clockwise, g.CircularBackground, g.ShowLabels)
	}
	if g.Width != 12 || g.FontSizeFraction != 0.5 || g.LabelPositionFraction != 0.25 {
		t.Errorf("sizes = %v %v %v", g.Width, g.FontSizeFraction, g.LabelPositionFraction)
	}
	if !colorsClose(g.Color, gg.RGB(1, 0, 0)) {
		t.Errorf("Color = %v", g.Color)
	}
	if !colorsClose(g.BackgroundColor, gg.RGBA2(0, 1, 0, 128.0/255)) {
		t.Errorf("BackgroundColor = %v", g.BackgroundColor)
	}
	if !colorsClose(g.Font.Color, gg.RGB(1, 1, 1)) {
		t.Errorf("Font.Color = %v", g.Font.Color)
	}
	if g.StartCap != gg.LineCapSquare || g.EndCap != gg.LineCapRound {
		t.Errorf("caps = %v %v", g.StartCap, g.EndCap)
	}
	if g.Mode != gauge.ModeSingleGauge {
		t.Errorf("Mode = %v", g.Mode)
	}

	// Unset fields keep the defaults.
	def := gauge.DefaultConfig()
	m := gauges[1]
	if m.Label != "MEM" || m.Width != def.Width || m.Mode != def.Mode || !m.ShowLabels {
		t.Errorf("second gauge = %+v", m)
	}
}

func TestLoadFromFileEnvOverride(t *testing.T) {
	path := writeConfig(t, "canvas:\n  width: 400\n  height: 300\n")
	t.Setenv("GAUGE_CANVAS_WIDTH", "1024")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Canvas.Width != 1024 {
		t.Errorf("Canvas.Width = %d, want env override 1024", cfg.Canvas.Width)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	path := writeConfig(t, "canvas:\n  width: 0\n")
	if _, err := LoadFromFile(path); !errors.Is(err, ErrBadCanvas) {
		t.Errorf("zero width: got %v, want ErrBadCanvas", err)
	}
}

func TestGaugeConfigErrors(t *testing.T) {
	neg := -3.0
	nan := math.NaN()
	tests := []struct {
		name  string
		g     GaugeConfig
		field string
		is    error
	}{
		{"bad color", GaugeConfig{Color: "red"}, "color", nil},
		{"bad background", GaugeConfig{BackgroundColor: "#12345"}, "background_color", nil},
		{"long background", GaugeConfig{BackgroundColor: "#1234567"}, "background_color", nil},
		{"bad alpha", GaugeConfig{FontColor: "#112233zz"}, "font_color", nil},
		{"bad cap", GaugeConfig{StartCap: "bevel"}, "start_cap", nil},
		{"bad end cap", GaugeConfig{EndCap: "pointy"}, "end_cap", nil},
		{"bad mode", GaugeConfig{Mode: "radar"}, "mode", nil},
		{"negative width", GaugeConfig{Width: &neg}, "gauge", gauge.ErrNegativeWidth},
		{"nan sweep", GaugeConfig{SweepAngle: &nan}, "gauge", gauge.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.g.ToGauge(7)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("ToGauge() = %v, want *FieldError", err)
			}
			if fe.Index != 7 || fe.Field != tt.field {
				t.Errorf("FieldError = %+v, want index 7 field %q", fe, tt.field)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("ToGauge() = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#ffffff", gg.RGB(1, 1, 1)},
		{"#000", gg.RGB(0, 0, 0)},
		{" #ff0000 ", gg.RGB(1, 0, 0)},
		{"#0000ff00", gg.RGBA2(0, 0, 1, 0)},
		{"#FF8000", gg.RGB(1, 128.0/255, 0)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if !colorsClose(got, tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "blue", "#12", "#gggggg", "#12345", "#1234567", "#ff00ff0", "ff00ff", "#ff00ff001"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}
