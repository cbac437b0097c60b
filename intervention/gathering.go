// File: gathering.go
// Role: gathering-size-cap cancellation policy.
// Determinism:
//   - Individuals are visited in ascending ID order and their neighbors in
//     the network's sorted neighbor order, so the cancelled set is a pure
//     function of the topology.

package intervention

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/contagion/contact"
)

// Sentinel errors for intervention policies.
var (
	// ErrNilNetwork indicates a nil network was passed.
	ErrNilNetwork = errors.New("intervention: network is nil")

	// ErrBadGatheringSize indicates maxSize below 1.
	ErrBadGatheringSize = errors.New("intervention: gathering size below 1")
)

// ConnectionsToCancel returns the edges to remove so that every individual
// whose degree is at least maxSize keeps only its last minConnections
// neighbors (in the network's iteration order); the earlier-iterated excess
// edges are cancelled. Individuals with degree below maxSize contribute no
// cancellations. Degrees are read before any mutation, so the result is
// computed against a consistent snapshot of the topology.
//
// The returned list may name the same edge from both endpoints; removal via
// contact.Network.RemoveEdges collapses such duplicates.
//
// Errors: ErrNilNetwork, ErrBadGatheringSize.
// Complexity: O(V log V + Σ deg(v)) over over-connected individuals.
func ConnectionsToCancel(net *contact.Network, maxSize, minConnections int) ([]contact.Edge, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if maxSize < 1 {
		return nil, fmt.Errorf("maxSize=%d: %w", maxSize, ErrBadGatheringSize)
	}

	var cancelled []contact.Edge
	var (
		deg  int
		nbrs []string
		err  error
		i    int
		nbr  string
	)
	for _, person := range net.Nodes() {
		deg, err = net.Degree(person)
		if err != nil {
			return nil, fmt.Errorf("degree(%s): %w", person, err)
		}
		if deg < maxSize {
			continue
		}
		nbrs, err = net.Neighbors(person)
		if err != nil {
			return nil, fmt.Errorf("neighbors(%s): %w", person, err)
		}
		for i, nbr = range nbrs {
			// The tail of the neighbor order stays connected.
			if deg-i <= minConnections {
				break
			}
			cancelled = append(cancelled, contact.NewEdge(person, nbr))
		}
	}

	return cancelled, nil
}
