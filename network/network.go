package network

import (
	"log/slog"

	"github.com/cldgraph/cldscore/concept"
	"github.com/cldgraph/cldscore/loopset"
	"github.com/cldgraph/cldscore/sequence"
)

// Network is a signed directed graph of concept.Link values, built
// additively and consumed destructively by FindLoops.
type Network struct {
	nodes map[concept.ID]*Node
	order []concept.ID // node ids in first-insertion order
}

// New returns an empty Network.
func New() *Network {
	return &Network{nodes: make(map[concept.ID]*Node)}
}

// getOrCreate returns the Node for c, creating and appending it to the
// insertion order if this is the first time c has been seen.
func (net *Network) getOrCreate(c concept.Concept) *Node {
	if n, ok := net.nodes[c.ID]; ok {
		return n
	}
	n := newNode(c)
	net.nodes[c.ID] = n
	net.order = append(net.order, c.ID)
	return n
}

// AddLink inserts link into the node for its source (outbound) and the
// node for its target (inbound), creating either node as needed.
// Duplicate inserts — a second link to/from the same neighbor — are
// idempotent: the first one added wins.
func (net *Network) AddLink(link concept.Link) {
	net.getOrCreate(link.Source).addOutbound(link)
	net.getOrCreate(link.Target).addInbound(link)
}

// Node returns the Node for c and whether it is still present.
func (net *Network) Node(c concept.Concept) (*Node, bool) {
	n, ok := net.nodes[c.ID]
	return n, ok
}

// Len returns the number of nodes currently in the network.
func (net *Network) Len() int { return len(net.nodes) }

// RemoveNode deletes c's node and strips every other node's link to or
// from it. A no-op if c has no node.
func (net *Network) RemoveNode(c concept.Concept) {
	for _, n := range net.nodes {
		n.removeLinksTo(c.ID)
	}
	delete(net.nodes, c.ID)
	for i, id := range net.order {
		if id == c.ID {
			net.order = append(net.order[:i], net.order[i+1:]...)
			break
		}
	}
}

// Prune removes every source and sink node, repeating until a single
// pass removes none (a fixed point): removing a source or sink can
// expose a new one among its former neighbors. Returns the total number
// of nodes removed across all passes.
func (net *Network) Prune() int {
	total := 0
	for {
		var toRemove []concept.Concept
		for _, id := range net.order {
			n := net.nodes[id]
			if n.IsSource() || n.IsSink() {
				toRemove = append(toRemove, n.Concept)
			}
		}
		if len(toRemove) == 0 {
			return total
		}
		for _, c := range toRemove {
			net.RemoveNode(c)
		}
		total += len(toRemove)
	}
}

// FindLoops prunes the network to its cyclic core and enumerates every
// simple directed cycle exactly once via node-elimination depth-first
// search: each remaining node (in first-insertion order) is searched for
// every loop that passes through it, then removed, exposing the next
// round of sources/sinks for pruning before the next root is tried. This
// destroys the network; callers needing it afterwards must not rely on
// its contents.
//
// logger receives one Debug record per loop discovered plus a final
// summary; pass slog.Default() or a discard logger if that is unwanted.
func (net *Network) FindLoops(logger *slog.Logger) *loopset.LoopSet {
	if logger == nil {
		logger = slog.Default()
	}

	net.Prune()

	set := loopset.New()
	roots := append([]concept.ID(nil), net.order...)

	for _, id := range roots {
		n, ok := net.nodes[id]
		if !ok {
			continue
		}
		if n.IsSource() || n.IsSink() {
			continue
		}
		net.dfs(n, sequence.New(), set, logger)
		net.RemoveNode(n.Concept)
		net.Prune()
	}

	set.Finalize()
	logger.Debug("loop enumeration complete", "loops_found", set.Len())
	return set
}

// dfs extends seq by each of node's outbound links in turn. A link that
// closes seq into a loop is admitted to set; one that merely closes seq
// on an interior concept is a dead end and is discarded; otherwise the
// search recurses into the link's target, if that target is still
// present in the network.
func (net *Network) dfs(node *Node, seq *sequence.Sequence, set *loopset.LoopSet, logger *slog.Logger) {
	for _, link := range node.outboundLinks() {
		next := seq.Clone()
		if err := next.Append(link); err != nil {
			// seq is never closed here: dfs only recurses into links
			// taken from a still-open sequence.
			panic(err)
		}

		switch {
		case next.Loop():
			logger.Debug("loop found", "repr", func() string {
				c := next.Clone()
				c.RotateToCanonical()
				return c.Repr()
			}())
			set.Add(next)
		case next.Closed():
			// dead end: closed on an interior concept, not a simple cycle
		default:
			if target, ok := net.nodes[link.Target.ID]; ok {
				net.dfs(target, next, set, logger)
			}
		}
	}
}
