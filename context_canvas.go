package gauge

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ContextCanvas is a Canvas that draws onto a *gg.Context.
//
// Labels are shaped with the configured shaper and filled from glyph
// outlines warped onto the text path, so they bend with the arc. The
// context's current path, line width, line cap and colour are overwritten
// by every call.
type ContextCanvas struct {
	dc       *gg.Context
	opts     contextCanvasOptions
	outlines *text.OutlineExtractor // lazy
}

var _ Canvas = (*ContextCanvas)(nil)

// NewContextCanvas wraps dc.
func NewContextCanvas(dc *gg.Context, opts ...ContextCanvasOption) *ContextCanvas {
	o := defaultContextCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ContextCanvas{dc: dc, opts: o}
}

// Context returns the wrapped context.
func (c *ContextCanvas) Context() *gg.Context {
	return c.dc
}

// StrokeArc implements Canvas. A zero sweep draws nothing.
func (c *ContextCanvas) StrokeArc(arc Arc, stroke Stroke) error {
	if arc.Sweep == 0 {
		return nil
	}

	// gg arcs always run from angle1 to angle2 clockwise on screen, so a
	// negative sweep is drawn from its end back to its start.
	a1, a2 := Radians(arc.Start), Radians(arc.End())
	if a2 < a1 {
		a1, a2 = a2, a1
	}

	c.dc.ClearPath()
	c.dc.DrawArc(arc.Center.X, arc.Center.Y, arc.Radius, a1, a2)
	c.dc.SetLineWidth(stroke.Width)
	c.dc.SetLineCap(stroke.Cap)
	c.dc.SetColor(stroke.Color.Color())
	return c.dc.Stroke()
}

// positionedGlyph is a shaped glyph relative to the text origin.
type positionedGlyph struct {
	gid     text.GlyphID
	x, y    float64
	advance float64
}

func (c *ContextCanvas) layout(s string, face text.Face) []positionedGlyph {
	if c.opts.normalize {
		s = c.opts.form.String(s)
	}

	if c.opts.shaper != nil {
		shaped := c.opts.shaper.Shape(s, face)
		glyphs := make([]positionedGlyph, 0, len(shaped))
		for _, g := range shaped {
			glyphs = append(glyphs, positionedGlyph{gid: g.GID, x: g.X, y: g.Y, advance: g.XAdvance})
		}
		return glyphs
	}

	var glyphs []positionedGlyph
	for g := range face.Glyphs(s) {
		glyphs = append(glyphs, positionedGlyph{gid: g.GID, x: g.X, y: g.Y, advance: g.Advance})
	}
	return glyphs
}

// MeasureText implements Canvas. Without a font source the bounds are empty.
func (c *ContextCanvas) MeasureText(s string, style TextStyle) text.Rect {
	face := style.Face()
	if face == nil || s == "" {
		return text.Rect{}
	}

	parsed := face.Source().Parsed()
	glyphs := c.layout(s, face)

	bounds := text.Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	var advance float64
	for _, g := range glyphs {
		advance = math.Max(advance, g.x+g.advance)

		gb := parsed.GlyphBounds(uint16(g.gid), style.Size)
		if gb.Empty() {
			continue
		}
		bounds.MinX = math.Min(bounds.MinX, g.x+gb.MinX)
		bounds.MaxX = math.Max(bounds.MaxX, g.x+gb.MaxX)
		bounds.MinY = math.Min(bounds.MinY, g.y+gb.MinY)
		bounds.MaxY = math.Max(bounds.MaxY, g.y+gb.MaxY)
	}

	if math.IsInf(bounds.MinX, 1) {
		// No ink (e.g. only spaces): fall back to the line box.
		m := face.Metrics()
		return text.Rect{MinX: 0, MinY: -m.Ascent, MaxX: advance, MaxY: m.Descent}
	}
	return bounds
}

// DrawTextOnPath implements Canvas.
//
// Every outline point (x, y) of a glyph at pen position gx is mapped to
// path.Warp(hOffset+gx+x, y+vOffset). Glyphs whose centre falls outside
// the path are not drawn.
func (c *ContextCanvas) DrawTextOnPath(s string, path Arc, hOffset, vOffset float64, style TextStyle) error {
	face := style.Face()
	if face == nil || s == "" {
		return nil
	}

	if c.outlines == nil {
		c.outlines = text.NewOutlineExtractor()
	}

	parsed := face.Source().Parsed()
	length := path.Length()

	c.dc.ClearPath()
	drawn := false
	for _, g := range c.layout(s, face) {
		mid := hOffset + g.x + g.advance/2
		if mid < 0 || mid > length {
			Logger().Debug("gauge: glyph outside text path", "gid", g.gid, "at", mid, "length", length)
			continue
		}

		outline, err := c.outlines.ExtractOutline(parsed, g.gid, style.Size)
		if err != nil {
			Logger().Warn("gauge: glyph outline unavailable", "gid", g.gid, "err", err)
			continue
		}
		if outline == nil || outline.IsEmpty() {
			continue
		}

		warp := func(p text.OutlinePoint) gg.Point {
			return path.Warp(hOffset+g.x+float64(p.X), g.y+float64(p.Y)+vOffset)
		}
		c.appendOutline(outline, warp)
		drawn = true
	}

	if !drawn {
		return nil
	}
	c.dc.SetColor(style.Color.Color())
	return c.dc.Fill()
}

// appendOutline adds the contours of outline to the current path.
func (c *ContextCanvas) appendOutline(outline *text.GlyphOutline, warp func(text.OutlinePoint) gg.Point) {
	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				c.dc.ClosePath()
			}
			p := warp(seg.Points[0])
			c.dc.MoveTo(p.X, p.Y)
			open = true
		case text.OutlineOpLineTo:
			p := warp(seg.Points[0])
			c.dc.LineTo(p.X, p.Y)
		case text.OutlineOpQuadTo:
			ctrl, p := warp(seg.Points[0]), warp(seg.Points[1])
			c.dc.QuadraticTo(ctrl.X, ctrl.Y, p.X, p.Y)
		case text.OutlineOpCubicTo:
			c1, c2, p := warp(seg.Points[0]), warp(seg.Points[1]), warp(seg.Points[2])
			c.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	if open {
		c.dc.ClosePath()
	}
}
