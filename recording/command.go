// Package recording captures gauge drawing operations as commands.
//
// A Recorder is a gauge.Canvas that stores every call as a typed command
// instead of producing pixels. The resulting Recording can be inspected,
// which is how render passes are tested, and played back onto any other
// canvas such as a gauge.ContextCanvas.
//
// # Example
//
//	rec := recording.NewRecorder()
//	_ = gauge.Render(rec, gg.Pt(200, 200), 150, cfg)
//	r := rec.Finish()
//
//	for _, arc := range r.Arcs() {
//	    fmt.Println(arc.Arc.Sweep)
//	}
//
//	// Replay onto pixels
//	err := r.Playback(gauge.NewContextCanvas(dc))
package recording

import (
	"github.com/gogpu/gauge"
	"github.com/gogpu/gg/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdStrokeArc      CommandType = iota // Stroke an arc
	CmdMeasureText                       // Measure text bounds
	CmdDrawTextOnPath                    // Draw text along an arc
)

var commandTypeNames = [...]string{
	CmdStrokeArc:      "StrokeArc",
	CmdMeasureText:    "MeasureText",
	CmdDrawTextOnPath: "DrawTextOnPath",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// StrokeArcCommand strokes an arc.
type StrokeArcCommand struct {
	Arc    gauge.Arc
	Stroke gauge.Stroke
}

// Type implements Command.
func (StrokeArcCommand) Type() CommandType { return CmdStrokeArc }

// MeasureTextCommand records a text measurement and its result.
// Measurements draw nothing and are skipped on playback.
type MeasureTextCommand struct {
	Text   string
	Style  gauge.TextStyle
	Bounds text.Rect
}

// Type implements Command.
func (MeasureTextCommand) Type() CommandType { return CmdMeasureText }

// DrawTextOnPathCommand draws text along an arc.
type DrawTextOnPathCommand struct {
	Text    string
	Path    gauge.Arc
	HOffset float64
	VOffset float64
	Style   gauge.TextStyle
}

// Type implements Command.
func (DrawTextOnPathCommand) Type() CommandType { return CmdDrawTextOnPath }
