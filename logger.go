package gauge

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record and reports every level as disabled, so
// attribute arguments to Debug and Warn are never formatted.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var silentLogger = slog.New(silent{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger)
}

// SetLogger routes the diagnostics of Render, ContextCanvas and
// recording.Playback to l. Gauges are silent until SetLogger is called;
// nil makes them silent again. It is safe to call while other goroutines
// render.
//
// What is logged, by pass:
//
//	background  Debug "background skipped" in ModeSingleGauge
//	foreground  Debug "clamping near-zero sweep" with the original sweep
//	label       Debug "label skipped" when hidden or empty
//	            Debug "label placed" with below, sweep, hoffset, voffset
//	            Debug "glyph outside text path" per dropped glyph
//	            Warn  "glyph outline unavailable" when a font has no outline
//	playback    Debug "playback stopped" with the failing command
//
// A typical setup for tracing label layout:
//
//	gauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// tracing reports whether debug records would be written. The label pass
// checks it before building its placement attributes.
func tracing() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
