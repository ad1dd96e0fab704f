package network

import "github.com/cldgraph/cldscore/concept"

// Node is a vertex of the Network: a Concept plus its outbound and
// inbound link maps, each keyed by the other endpoint's id so at most
// one link per direction is stored per neighbor. First insertion wins
// on a repeat target/source.
type Node struct {
	Concept concept.Concept

	outbound      map[concept.ID]concept.Link // target id -> link
	outboundOrder []concept.ID                // target ids, first-insertion order
	inbound       map[concept.ID]concept.Link // source id -> link
}

func newNode(c concept.Concept) *Node {
	return &Node{
		Concept:  c,
		outbound: make(map[concept.ID]concept.Link),
		inbound:  make(map[concept.ID]concept.Link),
	}
}

// addOutbound records link as outgoing from this node, unless a link to
// the same target already exists. Returns true if it was added.
func (n *Node) addOutbound(link concept.Link) bool {
	if _, exists := n.outbound[link.Target.ID]; exists {
		return false
	}
	n.outbound[link.Target.ID] = link
	n.outboundOrder = append(n.outboundOrder, link.Target.ID)
	return true
}

// addInbound records link as incoming to this node, unless a link from
// the same source already exists. Returns true if it was added.
func (n *Node) addInbound(link concept.Link) bool {
	if _, exists := n.inbound[link.Source.ID]; exists {
		return false
	}
	n.inbound[link.Source.ID] = link
	return true
}

// IsSource reports whether this node has no inbound links.
func (n *Node) IsSource() bool { return len(n.inbound) == 0 }

// IsSink reports whether this node has no outbound links.
func (n *Node) IsSink() bool { return len(n.outbound) == 0 }

// removeLinksTo drops any outbound link to, or inbound link from, id.
// Returns true if anything was removed.
func (n *Node) removeLinksTo(id concept.ID) bool {
	removed := false
	if _, ok := n.outbound[id]; ok {
		delete(n.outbound, id)
		removed = true
		for i, t := range n.outboundOrder {
			if t == id {
				n.outboundOrder = append(n.outboundOrder[:i], n.outboundOrder[i+1:]...)
				break
			}
		}
	}
	if _, ok := n.inbound[id]; ok {
		delete(n.inbound, id)
		removed = true
	}
	return removed
}

// outboundLinks returns this node's outbound links in first-insertion
// order, the iteration order network.dfs must follow for determinism.
func (n *Node) outboundLinks() []concept.Link {
	out := make([]concept.Link, 0, len(n.outboundOrder))
	for _, id := range n.outboundOrder {
		if link, ok := n.outbound[id]; ok {
			out = append(out, link)
		}
	}
	return out
}
