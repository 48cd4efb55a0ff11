package optics

import "log"

// Diag receives diagnostic warnings produced during camera construction and
// exit pupil estimation. Implementations must be safe for concurrent use.
type Diag interface {
	Warnf(format string, args ...interface{})
}

// DefaultDiag writes warnings through the standard library logger.
var DefaultDiag Diag = logDiag{}

// NopDiag discards all warnings.
var NopDiag Diag = nopDiag{}

type logDiag struct{}

func (logDiag) Warnf(format string, args ...interface{}) {
	log.Printf("WARNING: "+format, args...)
}

type nopDiag struct{}

func (nopDiag) Warnf(string, ...interface{}) {}
