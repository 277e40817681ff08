// Package cycle reconstructs the cyclic order of a face's boundary
// vertices from an unordered set of edges.
//
// 🚀 What is cycle?
//
//	Given the edges of a 2-face — each an unordered pair of vertex
//	indices — Order recovers one consistent traversal of the boundary:
//
//	    Order([[2]int{0,1}, {1,2}, {2,3}, {3,0}]) → [0 1 2 3]
//
//	Internally each distinct vertex becomes a node in a small arena
//	with exactly two neighbor slots. Linking a third partner, leaving a
//	slot open, or closing into more than one loop all signal malformed
//	geometry and surface as sentinel errors.
//
// ⚙️ Determinism:
//
//	Nodes are identified by their arena slot, assigned in order of
//	first appearance in the edge list. The walk starts at the first
//	node created and prefers the neighbor linked first, so the output
//	order is reproducible for a given input order.
//
// Performance:
//
//   - Time:   O(E) with E the number of edges
//   - Memory: O(V) arena, discarded after the call
package cycle
