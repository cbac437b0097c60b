// Package contact provides the contact Network: an undirected simple graph
// over opaque string node identifiers, representing the possible transmission
// relationships between individuals.
//
// What
//
//   - Network: mutex-guarded node set and mirrored adjacency, mutable only by
//     explicit edge addition/removal; node identity is stable for the lifetime
//     of the network.
//   - Edge: an unordered pair of node IDs, canonicalized so that (A,B) and
//     (B,A) denote the same connection.
//   - Batch mutation (AddEdges/RemoveEdges) for policies that cancel a set of
//     connections and later restore exactly that set.
//
// Determinism
//
//	Nodes(), Neighbors(id) and Edges() return lexicographically ascending
//	results. Neighbors' order is a documented contract: every consumer that
//	walks adjacency (contagion, gathering caps) observes the same sequence,
//	so seeded runs reproduce exactly.
//
// Concurrency
//
//	Reads take a read lock, mutations a write lock. The simulation itself is
//	single-writer and sequential; the locks make concurrent read-only
//	observers (rendering, recording) safe.
//
// Errors
//
//   - ErrEmptyNodeID   - a node ID is the empty string.
//   - ErrNodeNotFound  - a query referenced a non-existent node.
//   - ErrEdgeNotFound  - RemoveEdge referenced a non-existent edge.
//   - ErrLoopNotAllowed - an edge from a node to itself was attempted.
package contact
