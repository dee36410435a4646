// Package diag wires the library's non-fatal diagnostics (malformed-but-
// recoverable constructs, reconstruction warnings) onto a structured
// logger, with a silent mode that drops everything below Error.
package diag

import "go.uber.org/zap"

// Sink is the diagnostics boundary of decode.Decode, which logs a
// reconstruction failure through it at Error level; the encoder and the
// reconstruction passes take no Sink, and no library code calls Warn.
// A nil *Sink is valid and discards everything,
// matching the zero-value-is-usable idiom the rest of this module's
// public API follows.
type Sink struct {
	logger *zap.Logger
	silent bool
}

// NewSink wraps logger. A nil logger produces a Sink that discards all
// messages.
func NewSink(logger *zap.Logger) *Sink {
	return &Sink{logger: logger}
}

// NewNop returns a Sink that discards everything, for callers that don't
// want diagnostics wired up at all.
func NewNop() *Sink {
	return &Sink{logger: zap.NewNop()}
}

// SetSilent toggles silent mode: Warn becomes a no-op, Error still logs
// (errors are returned to the caller regardless; silent mode only
// suppresses the side-channel log line).
func (s *Sink) SetSilent(silent bool) {
	if s == nil {
		return
	}
	s.silent = silent
}

// Warn logs a non-fatal condition the caller can safely ignore — a
// dropped unrecognized GraphML element, an auto-promoted node kind, a
// merged duplicate action.
func (s *Sink) Warn(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil || s.silent {
		return
	}
	s.logger.Warn(msg, fields...)
}

// Error logs a condition that is about to be returned to the caller as
// an error too, so a caller scraping logs sees the same failures the
// return value reports.
func (s *Sink) Error(msg string, fields ...zap.Field) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Error(msg, fields...)
}
