// Package contact defines the Network and Edge types and their sentinel
// errors. See doc.go for the package contract.
package contact

import (
	"errors"
	"sync"
)

// Sentinel errors for contact network operations.
var (
	// ErrEmptyNodeID indicates that a provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("contact: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("contact: node not found")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("contact: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; contact networks
	// are simple graphs.
	ErrLoopNotAllowed = errors.New("contact: self-loop not allowed")
)

// Edge is an unordered pair of node identifiers. Two Edge values denote the
// same connection iff their canonical forms are equal; use NewEdge to obtain
// the canonical form (U <= V lexicographically).
type Edge struct {
	// U is the lexicographically smaller endpoint after canonicalization.
	U string

	// V is the lexicographically larger endpoint after canonicalization.
	V string
}

// NewEdge returns the canonical Edge for the unordered pair {u, v}.
// Complexity: O(1).
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Network is an undirected simple graph over string node identifiers.
//
// The zero value is not usable; construct with NewNetwork.
// Adjacency is mirrored: an edge {u,v} appears under both endpoints.
type Network struct {
	mu sync.RWMutex

	// nodes is the stable node set; membership never shrinks during a run.
	nodes map[string]struct{}

	// adj[u][v] exists iff the edge {u,v} exists; mirrored for both endpoints.
	adj map[string]map[string]struct{}

	// edgeCount tracks the number of distinct undirected edges.
	edgeCount int
}

// NewNetwork creates an empty contact network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]struct{}),
	}
}
