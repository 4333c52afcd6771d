package gauge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gauge package.
var (
	// ErrNilCanvas is returned when Render is called without a canvas.
	ErrNilCanvas = errors.New("gauge: nil canvas")

	// ErrNegativeWidth is reported by Config.Validate for a negative stroke width.
	ErrNegativeWidth = errors.New("gauge: negative stroke width")

	// ErrInvalidAngle is reported by Config.Validate for NaN or infinite angles.
	ErrInvalidAngle = errors.New("gauge: invalid angle")

	// ErrLabelFraction is reported by Config.Validate when the label
	// position fraction lies outside [0, 1].
	ErrLabelFraction = errors.New("gauge: label position fraction out of range")
)

// PassError wraps a canvas error with the render pass that produced it.
type PassError struct {
	Pass Pass
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("gauge: %s: %v", e.Pass, e.Err)
}

// Unwrap returns the canvas error.
func (e *PassError) Unwrap() error {
	return e.Err
}

// Pass identifies one of the three render passes.
type Pass uint8

const (
	// PassBackground draws the background arc.
	PassBackground Pass = iota
	// PassForeground draws the value arc.
	PassForeground
	// PassLabel draws the label along the arc.
	PassLabel
)

var passNames = [...]string{
	PassBackground: "background",
	PassForeground: "foreground",
	PassLabel:      "label",
}

// String returns the pass name.
func (p Pass) String() string {
	if int(p) < len(passNames) {
		return passNames[p]
	}
	return "unknown"
}
