// Package loopset collects the unique simple cycles a network.Network
// discovers, assigns each a stable sort order, and scores every concept
// that participates in more than one loop by a greedy structural-
// diversity metric built on editdist.LevCyclic.
//
// A LoopSet is write-once: Add during enumeration, Finalize once, then
// only read (Score, Stats, the Containing*/All* queries). Finalize's
// sort order is the source of the pairwise distance cache's keys, so
// calling Add after Finalize would invalidate cached distances; callers
// must not do that.
package loopset
