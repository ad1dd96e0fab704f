package concept

import "errors"

// Sentinel errors for the concept package.
var (
	// ErrEmptyName indicates Registry.GetOrCreate was called with an empty name.
	ErrEmptyName = errors.New("concept: name is empty")

	// ErrInvalidPolarity indicates a polarity value outside {+1, -1}.
	ErrInvalidPolarity = errors.New("concept: polarity must be +1 or -1")
)
