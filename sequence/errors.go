package sequence

import "errors"

// Sentinel errors for the sequence package.
var (
	// ErrSequenceClosed indicates an attempt to Append to an already-closed
	// Sequence. network.Network never triggers it in normal operation, so
	// its appearance signals a programmer error in a caller, not user input.
	ErrSequenceClosed = errors.New("sequence: cannot append to a closed sequence")
)
