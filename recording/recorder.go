package recording

import (
	"unicode/utf8"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gg/text"
)

// Measurer measures text for a Recorder.
// *gauge.ContextCanvas implements Measurer.
type Measurer interface {
	MeasureText(s string, style gauge.TextStyle) text.Rect
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(s string, style gauge.TextStyle) text.Rect

// MeasureText implements Measurer.
func (f MeasurerFunc) MeasureText(s string, style gauge.TextStyle) text.Rect {
	return f(s, style)
}

// Monospace measures every rune as a cell of 0.6em advance with ink from
// 0.7em above the baseline to 0.2em below it. It needs no font and gives
// deterministic layouts.
var Monospace Measurer = MeasurerFunc(func(s string, style gauge.TextStyle) text.Rect {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return text.Rect{}
	}
	return text.Rect{
		MinX: 0,
		MinY: -0.7 * style.Size,
		MaxX: 0.6 * style.Size * float64(n),
		MaxY: 0.2 * style.Size,
	}
})

// Recorder captures canvas calls as commands.
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command
	measurer Measurer
}

var _ gauge.Canvas = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithMeasurer sets the measurer used for MeasureText. The default is
// Monospace. Use the target canvas when the recording will be played
// back, so that label offsets match the real font.
func WithMeasurer(m Measurer) Option {
	return func(r *Recorder) {
		if m != nil {
			r.measurer = m
		}
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		commands: make([]Command, 0, 8),
		measurer: Monospace,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StrokeArc implements gauge.Canvas.
func (r *Recorder) StrokeArc(arc gauge.Arc, stroke gauge.Stroke) error {
	r.commands = append(r.commands, StrokeArcCommand{Arc: arc, Stroke: stroke})
	return nil
}

// MeasureText implements gauge.Canvas.
func (r *Recorder) MeasureText(s string, style gauge.TextStyle) text.Rect {
	bounds := r.measurer.MeasureText(s, style)
	r.commands = append(r.commands, MeasureTextCommand{Text: s, Style: style, Bounds: bounds})
	return bounds
}

// DrawTextOnPath implements gauge.Canvas.
func (r *Recorder) DrawTextOnPath(s string, path gauge.Arc, hOffset, vOffset float64, style gauge.TextStyle) error {
	r.commands = append(r.commands, DrawTextOnPathCommand{
		Text:    s,
		Path:    path,
		HOffset: hOffset,
		VOffset: vOffset,
		Style:   style,
	})
	return nil
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Finish returns an immutable Recording of the commands captured so far.
// The Recorder may be reused afterwards.
func (r *Recorder) Finish() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{commands: cmds}
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Types returns the type of every command, in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Arcs returns the stroked arcs in drawing order.
func (r *Recording) Arcs() []StrokeArcCommand {
	var arcs []StrokeArcCommand
	for _, c := range r.commands {
		if a, ok := c.(StrokeArcCommand); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// Measurements returns the text measurements in order.
func (r *Recording) Measurements() []MeasureTextCommand {
	var ms []MeasureTextCommand
	for _, c := range r.commands {
		if m, ok := c.(MeasureTextCommand); ok {
			ms = append(ms, m)
		}
	}
	return ms
}

// Texts returns the path text draws in order.
func (r *Recording) Texts() []DrawTextOnPathCommand {
	var ts []DrawTextOnPathCommand
	for _, c := range r.commands {
		if t, ok := c.(DrawTextOnPathCommand); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// Playback replays the drawing commands onto canvas and returns the first
// error it reports. Measurements are not replayed.
func (r *Recording) Playback(canvas gauge.Canvas) error {
	if canvas == nil {
		return gauge.ErrNilCanvas
	}

	log := gauge.Logger()
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case StrokeArcCommand:
			err = canvas.StrokeArc(c.Arc, c.Stroke)
		case DrawTextOnPathCommand:
			err = canvas.DrawTextOnPath(c.Text, c.Path, c.HOffset, c.VOffset, c.Style)
		case MeasureTextCommand:
			// Not a drawing operation.
		}
		if err != nil {
			log.Debug("recording: playback stopped", "index", i, "command", cmd.Type(), "err", err)
			return err
		}
	}
	return nil
}
