package cycle

// node is one arena slot: a payload (the vertex index it stands for),
// two neighbor slots, and a visited mark used by the walk. The slot
// index doubles as the node's unique id, so tie-breaking is by creation
// order and needs no global counter.
type node struct {
	payload int
	links   [2]int // arena indices of the linked partners, -1 = empty
	filled  int
	visited bool
}

// arena owns all nodes of one extraction call. It is created fresh per
// call and discarded afterwards; nothing is shared across calls.
type arena struct {
	nodes []node
	slots map[int]int // payload → arena index
}

// intern returns the arena index for payload, creating the node on
// first reference.
func (a *arena) intern(payload int) int {
	if i, ok := a.slots[payload]; ok {
		return i
	}
	i := len(a.nodes)
	a.nodes = append(a.nodes, node{payload: payload, links: [2]int{-1, -1}})
	a.slots[payload] = i
	return i
}

// link records j as a neighbor of i. Each node accepts at most two
// partners; a third is malformed input.
func (a *arena) link(i, j int) error {
	n := &a.nodes[i]
	if n.filled == 2 {
		return ErrNonManifold
	}
	n.links[n.filled] = j
	n.filled++
	return nil
}

// Order reconstructs the cyclic vertex order of a face boundary from an
// unordered list of edges, each an unordered pair of vertex indices.
//
// The returned slice is one full traversal of the cycle starting at the
// first vertex mentioned in edges; adjacent entries (including the
// wraparound pair) are always endpoints of one input edge.
//
// Errors:
//   - ErrNoEdges       — edges is empty.
//   - ErrNonManifold   — some vertex appears in three or more edges.
//   - ErrOpenBoundary  — some vertex appears in fewer than two edges.
//   - ErrDisconnected  — the edges close into more than one cycle.
//
// Complexity: O(E) time, O(V) memory.
func Order(edges [][2]int) ([]int, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	a := &arena{
		nodes: make([]node, 0, len(edges)),
		slots: make(map[int]int, len(edges)),
	}

	// Lazily create nodes and link endpoint pairs.
	for _, e := range edges {
		i := a.intern(e[0])
		j := a.intern(e[1])
		if err := a.link(i, j); err != nil {
			return nil, err
		}
		if err := a.link(j, i); err != nil {
			return nil, err
		}
	}

	// Every vertex of a closed boundary has exactly two partners.
	for i := range a.nodes {
		if a.nodes[i].filled < 2 {
			return nil, ErrOpenBoundary
		}
	}

	// Walk forward from the first node created, always moving to an
	// unvisited neighbor; when none remains the walk has returned to
	// the start.
	order := make([]int, 0, len(a.nodes))
	for cur := 0; cur >= 0; {
		n := &a.nodes[cur]
		n.visited = true
		order = append(order, n.payload)

		cur = -1
		for _, next := range n.links {
			if !a.nodes[next].visited {
				cur = next
				break
			}
		}
	}

	// A second, unreached loop means the input was not a single cycle.
	if len(order) != len(a.nodes) {
		return nil, ErrDisconnected
	}
	return order, nil
}
