// Package analysis wires matrixadapter, network, loopset, and
// reportadapter into one run: load a matrix, build the signed digraph,
// enumerate loops, score concepts, and emit the four report artifacts.
//
// Driver owns every piece of run-scoped state — the concept.Registry,
// the loaded link stream, the finalized loopset.LoopSet, and the score
// table — so two Drivers never share state, and a single Driver is only
// ever run once (Run destroys its network.Network as a side effect of
// loop enumeration).
package analysis
