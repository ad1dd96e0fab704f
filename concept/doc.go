// Package concept defines the Concept, Influence, and Link value types
// shared by every stage of a causal-loop-diagram analysis, plus the
// per-run Registry that assigns dense, deterministic Concept ids.
//
// A Registry is scoped to a single analysis: construct one with
// NewRegistry, feed it names via GetOrCreate, and let it fall out of
// scope when the run finishes. Ids are dense, start at 0, and increase
// monotonically in first-occurrence order, so two Registries fed the
// same names in the same order produce identical ids.
//
// Errors:
//
//	ErrEmptyName   - Registry.GetOrCreate called with an empty name.
//	ErrInvalidPolarity - InfluenceFromPolarity called with a value other
//	                     than +1 or -1.
package concept
