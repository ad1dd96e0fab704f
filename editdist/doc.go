// Package editdist computes Levenshtein edit distance over integer
// sequences, including a rotation-minimum variant used to compare
// cyclic sequences (loops) regardless of where they were "cut" into a
// linear representation.
//
// Lev is the classical dynamic-programming edit distance with unit
// substitution cost. LevCyclic searches every rotation of both inputs
// and returns the minimum Lev distance found, using two exact
// optimizations so it stays cheap over the thousands of pairs a
// centrality scoring pass queries:
//
//   - Lower bound: no rotation pair can beat |len(a)-len(b)|; return the
//     moment any rotation reaches it.
//   - Early-row pruning: abandon a rotation's DP pass as soon as a row's
//     running minimum is no better than the best distance found so far.
//
// Both functions are pure and allocate no shared state, so they are
// safe to call concurrently even though nothing in this module does.
//
// Complexity: Lev is O(n·m) time, O(n·m) space (one full matrix, no
// rolling-row optimization — callers needing distance only, not a
// backtrace, can still afford this because n and m are loop lengths,
// a handful to a few dozen). LevCyclic is O(n·m·n·m) worst case across
// all rotation pairs, bounded tightly in practice by the two
// optimizations above.
package editdist
