// Package epidemic holds the simulation state model and the per-day
// transition engine.
//
// What
//
//   - Health: the four mutually exclusive states an individual occupies
//     (Susceptible, Incubating, Sick, Recovered).
//   - Population: a partition of a contact network's node set into the four
//     state groups, with remaining-day counters for the two timed states.
//     Bound to exactly one contact.Network for its lifetime; the network's
//     edge set may change between days (interventions), and nothing here
//     assumes static connectivity.
//   - Step: one simulated day — contagion and incubation progress, sickness
//     progress, then a single commit at the day boundary.
//
// Invariant
//
//	The four groups are pairwise disjoint and their union equals the node
//	set of the bound network at all times. Reassignment happens only through
//	Seed and Step. A commit that finds a marked node missing from its source
//	group reports ErrStateCorrupted: that is broken state, fatal and never
//	retried.
//
// Determinism
//
//	Step iterates incubating cases in ascending ID order and neighbors in
//	the network's sorted order, and draws uniformly from an injected
//	disease.Source, so a fixed seed reproduces a run exactly. Because all
//	transitions commit at the day boundary, outcomes are independent of
//	iteration order regardless: a node contaminated today is not itself
//	contagious today.
//
// Configuration contract
//
//	Step does not validate disease parameters. Contagiousness outside [0,1]
//	or samplers returning negative durations are configuration errors with
//	undefined results (see package disease).
package epidemic
