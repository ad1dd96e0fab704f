package matrixadapter

import "errors"

// Sentinel errors for the matrixadapter package.
var (
	// ErrSourceNotFound indicates the matrix file does not exist or
	// cannot be opened.
	ErrSourceNotFound = errors.New("matrixadapter: source file not found")

	// ErrMalformedMatrix indicates the file has no usable header row or
	// header column, or a data row cannot be read at all (as opposed to
	// a single cell failing to parse, which is non-fatal).
	ErrMalformedMatrix = errors.New("matrixadapter: malformed matrix")
)
