package core

import "errors"

var (
	// ErrInvalidDimensions reports a zero or negative width/height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrRaggedInput reports seed rows of differing lengths.
	ErrRaggedInput = errors.New("ragged input")
	// ErrOutOfBounds reports a coordinate outside the grid. Stages only return
	// it when an invariant has been broken upstream.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrIndexOutOfPalette reports a cell value with no palette entry.
	ErrIndexOutOfPalette = errors.New("index out of palette")
)
