package gauge

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// LabelPlacement describes where a label is drawn.
//
// Path shares the centre, radius and start angle of the value arc but uses
// its own sweep so that glyphs stay upright: labels whose anchor lies in the
// lower half of the dial follow a path that runs the other way round.
type LabelPlacement struct {
	Path    Arc
	HOffset float64
	VOffset float64

	// TextAngle is the angular width of the label scaled by the
	// distance of the label anchor from the arc middle.
	TextAngle float64
	// Below reports whether the anchor lies in (0°, 180°].
	Below bool
	// LinearWidth is the label width used for centring.
	LinearWidth float64
}

// PlaceLabel computes the label path for c.
//
// textBounds are the bounds of the label followed by one filler glyph,
// fillerBounds the bounds of the filler glyph alone. The sweep is used as
// is; Render clamps near-zero sweeps before calling PlaceLabel.
func (c Config) PlaceLabel(center gg.Point, radius float64, textBounds, fillerBounds text.Rect) LabelPlacement {
	f := c.LabelPositionFraction
	sweep := c.SweepAngle
	textWidth := textBounds.Width()

	textAngle := (1 - 2*f) * Degrees(textWidth/radius)

	anchor := ReduceAngle(c.StartAngle + sweep*f)
	below := anchor > 0 && anchor <= 180

	var pathSweep float64
	switch {
	case sweep > 0 && below:
		pathSweep = -(360 - sweep - textAngle)
	case sweep > 0:
		pathSweep = sweep
	case below:
		pathSweep = sweep
	default:
		pathSweep = 360 + sweep - textAngle
	}

	// Trim the filler glyph from the centring width when the sweep
	// direction and the orientation agree.
	linearWidth := textWidth
	if (sweep > 0) == below {
		linearWidth = textWidth - fillerBounds.Width()
	}

	path := Arc{Center: center, Radius: radius, Start: c.StartAngle, Sweep: pathSweep}
	midY := (textBounds.MinY + textBounds.MaxY) / 2

	return LabelPlacement{
		Path:        path,
		HOffset:     f / 2 * (path.Length() - linearWidth),
		VOffset:     -midY,
		TextAngle:   textAngle,
		Below:       below,
		LinearWidth: linearWidth,
	}
}
