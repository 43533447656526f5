package window

import "errors"

// Errors returned by window construction and weight application.
var (
	ErrTooFewEdges      = errors.New("window: need at least two spatial bin edges")
	ErrNoContacts       = errors.New("window: contact positions must not be empty")
	ErrEmptySpan        = errors.New("window: contact span is empty")
	ErrBadStep          = errors.New("window: step must be positive")
	ErrBadSigma         = errors.New("window: sigma must be positive")
	ErrEmptySupport     = errors.New("window: no spatial bin inside window support")
	ErrDegenerateWindow = errors.New("window: triangle normalization is degenerate")
	ErrZeroedWindow     = errors.New("window: thresholding removed all weights")
	ErrAllZeroWindow    = errors.New("window: window has no non-zero weights")
	ErrUnknownShape     = errors.New("window: unknown shape")
	ErrWindowIndex      = errors.New("window: window index out of range")
	ErrMismatchedLength = errors.New("window: values and window must have same length")
)
