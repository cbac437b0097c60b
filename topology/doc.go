// Package topology generates contact networks.
//
// The simulation core treats topology generation as an opaque collaborator:
// any generator producing a *contact.Network satisfies the provider contract
// (node enumeration, degree, ordered neighbor iteration, edge add/remove).
// This package supplies two:
//
//   - PowerlawCluster(n, m, p): growing network with preferential attachment
//     of m edges per new node and triad-closure probability p (Holme–Kim),
//     producing the heavy-tailed degree distribution and clustering typical
//     of human contact patterns.
//   - RandomSparse(n, p): Erdős–Rényi G(n,p), each pair connected
//     independently with probability p.
//
// Determinism
//
//	All randomness flows through an explicitly injected *rand.Rand
//	(WithRand / WithSeed). When no source is supplied, a fixed default seed
//	is used; no time-based sources exist anywhere. Same inputs and seed ⇒
//	identical networks.
//
// Options
//
//   - WithSeed(seed):   deterministic RNG from seed.
//   - WithRand(r):      explicit RNG; panics on nil.
//   - WithIDScheme(fn): index → node ID mapping; default is decimal
//     ("0","1","2",...). Panics on nil.
//
// Errors
//
//   - ErrTooFewNodes        - n below the generator's minimum.
//   - ErrBadAttachment      - m outside [1, n) for PowerlawCluster.
//   - ErrInvalidProbability - p outside the closed interval [0,1].
package topology
