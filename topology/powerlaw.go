// File: powerlaw.go
// Role: Holme–Kim powerlaw cluster graph generator.
//
// Model:
//   - Start from m isolated nodes.
//   - Each new node attaches m edges. Every attachment is either a
//     preferential-attachment step (target drawn degree-proportionally via a
//     repeated-nodes list) or, with probability p after a successful
//     attachment, a triad-closure step linking to a neighbor of the previous
//     target. Triad closure falls back to preferential attachment when the
//     candidate neighborhood is empty.
//
// Determinism:
//   - Stable node insertion order (0..n-1 through cfg.idFn).
//   - All draws come from cfg.rng; candidate neighborhoods are walked in the
//     network's sorted neighbor order. Fixed seed ⇒ identical topology.

package topology

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/contagion/contact"
)

// File-local constants: parameter domains, no magic literals.
const (
	methodPowerlawCluster   = "PowerlawCluster"
	minPowerlawClusterNodes = 1
	minAttachment           = 1
)

// PowerlawCluster generates a contact network of n nodes where each node
// beyond the first m attaches m edges by preferential attachment, each
// followed with probability p by a triad-closure edge.
//
// Constraints: n ≥ 1, 1 ≤ m < n, 0 ≤ p ≤ 1.
// Complexity: O(n·m·d) where d bounds the neighborhood scans.
func PowerlawCluster(n, m int, p float64, opts ...Option) (*contact.Network, error) {
	if n < minPowerlawClusterNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodPowerlawCluster, n, minPowerlawClusterNodes, ErrTooFewNodes)
	}
	if m < minAttachment || m >= n {
		return nil, fmt.Errorf("%s: m=%d not in [%d,%d): %w",
			methodPowerlawCluster, m, minAttachment, n, ErrBadAttachment)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w",
			methodPowerlawCluster, p, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)

	// Precompute node IDs once; the generator works on strings throughout.
	ids := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
	}

	net := contact.NewNetwork()

	// Seed nucleus: m isolated nodes, each appearing once in the
	// repeated-nodes list so the first attachments are uniform.
	repeated := make([]string, 0, n*m*2)
	for i = 0; i < m; i++ {
		if err := net.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodPowerlawCluster, ids[i], err)
		}
		repeated = append(repeated, ids[i])
	}

	var (
		source  string
		targets []string
		target  string
		count   int
		nbr     string
		ok      bool
	)
	for i = m; i < n; i++ {
		source = ids[i]
		if err := net.AddNode(source); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodPowerlawCluster, source, err)
		}

		// m distinct degree-proportional candidates for this node.
		targets = randomSubset(repeated, m, cfg.rng)

		// First attachment is always preferential.
		target, targets = targets[len(targets)-1], targets[:len(targets)-1]
		if err := net.AddEdge(source, target); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPowerlawCluster, source, target, err)
		}
		repeated = append(repeated, target)

		for count = 1; count < m; count++ {
			if cfg.rng.Float64() < p {
				// Triad closure: connect to a neighbor of the previous target.
				nbr, ok = closureCandidate(net, source, target, cfg.rng)
				if ok {
					if err := net.AddEdge(source, nbr); err != nil {
						return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPowerlawCluster, source, nbr, err)
					}
					repeated = append(repeated, nbr)

					continue
				}
				// Empty neighborhood: fall through to preferential attachment.
			}
			target, targets = targets[len(targets)-1], targets[:len(targets)-1]
			if err := net.AddEdge(source, target); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodPowerlawCluster, source, target, err)
			}
			repeated = append(repeated, target)
		}

		// The new node enters the attachment pool with multiplicity m.
		for count = 0; count < m; count++ {
			repeated = append(repeated, source)
		}
	}

	return net, nil
}

// randomSubset draws k distinct IDs from pool by repeated uniform choice.
// Because pool holds one entry per incident edge endpoint, the marginal
// selection probability is degree-proportional.
// Complexity: expected O(k) draws for k ≪ len(pool).
func randomSubset(pool []string, k int, rng *rand.Rand) []string {
	seen := make(map[string]struct{}, k)
	out := make([]string, 0, k)
	var id string
	for len(out) < k {
		id = pool[rng.Intn(len(pool))]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// closureCandidate picks uniformly among neighbors of target that are not
// source and not already adjacent to source. Candidates are collected in the
// network's sorted neighbor order, keeping the draw reproducible.
func closureCandidate(net *contact.Network, source, target string, rng *rand.Rand) (string, bool) {
	nbrs, err := net.Neighbors(target)
	if err != nil {
		return "", false
	}
	candidates := nbrs[:0]
	for _, nbr := range nbrs {
		if nbr == source || net.HasEdge(source, nbr) {
			continue
		}
		candidates = append(candidates, nbr)
	}
	if len(candidates) == 0 {
		return "", false
	}

	return candidates[rng.Intn(len(candidates))], true
}
