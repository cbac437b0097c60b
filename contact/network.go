// File: network.go
// Role: Network mutation and query methods.
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted lexicographically ascending.
//   - Edges() returns canonical pairs sorted by (U, V) ascending.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.

package contact

import "sort"

// AddNode inserts a node with the given ID. Adding an existing node is a
// no-op: node identity is stable and re-registration carries no data.
//
// Errors: ErrEmptyNodeID.
// Complexity: O(1).
func (n *Network) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id in the node set and allocates its adjacency
// bucket. Must be called under the write lock.
func (n *Network) addNodeLocked(id string) {
	if _, ok := n.nodes[id]; ok {
		return
	}
	n.nodes[id] = struct{}{}
	n.adj[id] = make(map[string]struct{})
}

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints.
// Adding an existing edge is a no-op; the network is a simple graph, so a
// duplicate insertion cannot produce a parallel edge.
//
// Errors: ErrEmptyNodeID, ErrLoopNotAllowed.
// Complexity: O(1).
func (n *Network) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.addNodeLocked(u)
	n.addNodeLocked(v)
	if _, ok := n.adj[u][v]; ok {
		return nil
	}
	n.adj[u][v] = struct{}{}
	n.adj[v][u] = struct{}{}
	n.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}.
//
// Errors: ErrEmptyNodeID, ErrEdgeNotFound.
// Complexity: O(1).
func (n *Network) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(n.adj[u], v)
	delete(n.adj[v], u)
	n.edgeCount--

	return nil
}

// AddEdges inserts every pair in pairs, skipping pairs already present.
// Duplicate pairs in the input collapse to a single edge, so restoring a
// cancellation list that names an edge from both endpoints is safe.
// Complexity: O(len(pairs)).
func (n *Network) AddEdges(pairs []Edge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	var e Edge
	for _, e = range pairs {
		if e.U == "" || e.V == "" || e.U == e.V {
			continue
		}
		n.addNodeLocked(e.U)
		n.addNodeLocked(e.V)
		if _, ok := n.adj[e.U][e.V]; ok {
			continue
		}
		n.adj[e.U][e.V] = struct{}{}
		n.adj[e.V][e.U] = struct{}{}
		n.edgeCount++
	}
}

// RemoveEdges deletes every pair in pairs, skipping pairs already absent.
// An edge cancelled independently from both endpoints appears twice in a
// cancellation list; the second removal is a no-op.
// Complexity: O(len(pairs)).
func (n *Network) RemoveEdges(pairs []Edge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	var e Edge
	for _, e = range pairs {
		if _, ok := n.adj[e.U][e.V]; !ok {
			continue
		}
		delete(n.adj[e.U], e.V)
		delete(n.adj[e.V], e.U)
		n.edgeCount--
	}
}

// HasNode reports whether id is a node of the network.
// Complexity: O(1).
func (n *Network) HasNode(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.nodes[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(1).
func (n *Network) HasEdge(u, v string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adj[u][v]

	return ok
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (n *Network) Nodes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// Degree returns the number of edges incident to id.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(1).
func (n *Network) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if _, ok := n.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(n.adj[id]), nil
}

// Neighbors returns the IDs adjacent to id, sorted lexicographically
// ascending. The ordering is a contract: contagion and gathering-cap
// policies walk neighbors in exactly this sequence.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
// Complexity: O(d log d) where d is the degree of id.
func (n *Network) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if _, ok := n.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(n.adj[id]))
	for v := range n.adj[id] {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Edges returns every edge once, in canonical form, sorted by (U, V)
// ascending. Useful for snapshotting the topology before a mutation.
// Complexity: O(E log E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Edge, 0, n.edgeCount)
	for u, vs := range n.adj {
		for v := range vs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeCount
}
