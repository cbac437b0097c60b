// File: sparse.go
// Role: Erdős–Rényi G(n,p) generator.
// Determinism:
//   - Stable node order: i asc. Stable trial order: for each i asc, j > i asc.
//   - Degenerate p (0 or 1) consumes no randomness, so seeded streams stay
//     aligned across parameter sweeps.

package topology

import (
	"fmt"

	"github.com/katalvlaran/contagion/contact"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse generates a contact network of n nodes where each unordered
// pair {i,j} is connected independently with probability p.
//
// Constraints: n ≥ 1, 0 ≤ p ≤ 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) (*contact.Network, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w",
			methodRandomSparse, p, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)

	net := contact.NewNetwork()
	var i, j int
	for i = 0; i < n; i++ {
		if err := net.AddNode(cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodRandomSparse, cfg.idFn(i), err)
		}
	}

	var u, v string
	for i = 0; i < n; i++ {
		u = cfg.idFn(i)
		for j = i + 1; j < n; j++ {
			// Bernoulli trial; skip the draw entirely for degenerate p.
			if p == 0 {
				continue
			}
			if p < 1 && cfg.rng.Float64() > p {
				continue
			}
			v = cfg.idFn(j)
			if err := net.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s,%s): %w", methodRandomSparse, u, v, err)
			}
		}
	}

	return net, nil
}
