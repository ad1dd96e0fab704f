// Package network implements the signed digraph that backs a causal
// loop diagram analysis: Node bookkeeping, source/sink pruning to a
// fixed point, and the node-elimination depth-first search that
// enumerates every simple directed cycle exactly once.
//
// Construction is additive (AddLink); enumeration (FindLoops) is
// destructive — it prunes and removes nodes as it goes. Callers that need
// the graph intact afterwards must snapshot it before calling FindLoops;
// Network has no Clone because nothing in this pipeline calls FindLoops
// more than once per Network.
//
// Determinism: link iteration and the root-node snapshot both follow
// first-insertion order, never Go map iteration order, so two Networks
// built from the same link stream in the same order discover loops in
// the same sequence (though the final loopset.LoopSet order depends only
// on canonical Repr sort).
//
// Complexity: each Prune pass scans every remaining node, and each
// RemoveNode visits every remaining node, so pruning to a fixed point is
// O(V²) in the worst case. FindLoops' cost follows the number of simple
// paths its depth-first search walks from each root, which can exceed
// the number of cycles found; node elimination shrinks the search space
// after each root so later roots search a strictly smaller graph.
package network
