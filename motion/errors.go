package motion

import "errors"

// Errors returned by construction, queries and persistence.
var (
	ErrNoSegments           = errors.New("motion: at least one segment required")
	ErrSegmentMismatch      = errors.New("motion: displacement and temporal bins must align per segment")
	ErrShapeMismatch        = errors.New("motion: shape does not match bin axes")
	ErrBinsNotSorted        = errors.New("motion: bin centers must be strictly increasing")
	ErrSegmentRequired      = errors.New("motion: segment index required when several segments exist")
	ErrSegmentRange         = errors.New("motion: segment index out of range")
	ErrUnknownDirection     = errors.New("motion: unknown direction")
	ErrUnknownInterpolation = errors.New("motion: unknown interpolation method")
	ErrFolderExists         = errors.New("motion: folder already exists")
	ErrNotMotionFolder      = errors.New("motion: folder does not contain a Motion object")
)
