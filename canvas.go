package gauge

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface a gauge renders onto.
//
// Implementations own every drawing resource they need and must release it
// before returning; the renderer keeps nothing between calls. A Canvas is
// not required to be safe for concurrent use.
type Canvas interface {
	// StrokeArc strokes arc with the given stroke.
	StrokeArc(arc Arc, stroke Stroke) error

	// MeasureText returns the ink bounds of s laid out on a horizontal
	// baseline at y = 0, y growing down.
	MeasureText(s string, style TextStyle) text.Rect

	// DrawTextOnPath draws s with its baseline following path. hOffset is
	// the distance along the path where the text starts, vOffset moves the
	// text along the path normal.
	DrawTextOnPath(s string, path Arc, hOffset, vOffset float64, style TextStyle) error
}

// Stroke holds the stroke parameters of an arc.
type Stroke struct {
	Width float64
	Cap   gg.LineCap
	Color gg.RGBA
}

// TextStyle holds the parameters of label text.
type TextStyle struct {
	Source *text.FontSource
	Size   float64
	Color  gg.RGBA
}

// Face returns a face for the style, or nil when no font source is set.
func (s TextStyle) Face() text.Face {
	if s.Source == nil {
		return nil
	}
	return s.Source.Face(s.Size)
}
