// Package sequence models an ordered path of concept.Link values and its
// derived classification: open, closed-on-an-interior-vertex, or a
// simple loop that closes back on its own head.
//
// A Sequence grows only by Append; once Closed becomes true, Append
// returns ErrSequenceClosed instead of mutating the sequence. This is a
// defensive guard rather than a normal control-flow path: network.Network
// never triggers it, since it stops recursing the moment a branch closes.
//
// Repr is both the human-diagnostic string and the equality/hash key
// loopset uses to deduplicate loops: two Sequences that are rotations of
// the same cycle produce identical Repr only after RotateToCanonical.
package sequence
