package main

import (
	"fmt"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/internal/config"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// cell is one grid slot of the scene.
type cell struct {
	Center gg.Point
	Radius float64
}

// layoutGrid splits a width x height canvas into n cells, columns per row.
// Each gauge gets a radius of 0.4 of the shorter cell side so the stroke
// stays inside its cell.
func layoutGrid(width, height, n, columns int) []cell {
	if n <= 0 {
		return nil
	}
	if columns <= 0 {
		columns = 1
	}
	if columns > n {
		columns = n
	}
	rows := (n + columns - 1) / columns

	cw := float64(width) / float64(columns)
	ch := float64(height) / float64(rows)
	radius := 0.4 * min(cw, ch)

	cells := make([]cell, n)
	for i := range cells {
		col, row := i%columns, i/columns
		cells[i] = cell{
			Center: gg.Pt((float64(col)+0.5)*cw, (float64(row)+0.5)*ch),
			Radius: radius,
		}
	}
	return cells
}

func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}

// drawScene renders every gauge of cfg onto dc.
func drawScene(dc *gg.Context, cfg *config.Config, source *text.FontSource) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	gauges, err := cfg.GaugeConfigs()
	if err != nil {
		return err
	}

	dc.ClearWithColor(bg)
	canvas := gauge.NewContextCanvas(dc)
	cells := layoutGrid(dc.Width(), dc.Height(), len(gauges), cfg.Columns)
	for i, g := range gauges {
		g.Font.Source = source
		if err := gauge.Render(canvas, cells[i].Center, cells[i].Radius, g); err != nil {
			return fmt.Errorf("gauge %d: %w", i, err)
		}
	}
	return nil
}

func renderScene(cfg *config.Config, output string) error {
	source, err := loadFont(cfg.Font)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	defer func() { _ = source.Close() }()

	dc := gg.NewContext(cfg.Canvas.Width, cfg.Canvas.Height)
	defer func() { _ = dc.Close() }()

	if err := drawScene(dc, cfg, source); err != nil {
		return err
	}
	if err := dc.SavePNG(output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}
	return nil
}
