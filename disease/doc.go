// Package disease defines the immutable disease parameter bundle.
//
// A Disease carries three independent capabilities:
//
//   - Contagiousness: the per (infectious-node, susceptible-neighbor)
//     pair-day transmission probability, compared against a uniform[0,1)
//     draw from an injected Source.
//   - DurationIncubation / DurationSickness: zero-argument samplers whose
//     results are rounded to whole days when a case enters a timed state.
//
// Defaults are log-normal samplers with μ=1.2, σ=0.5, drawing from a seeded
// source (never a time-based one). Tests inject fixed or scripted samplers
// through the options, so every random draw in the simulation is
// substitutable.
//
// Configuration contract (documented, not validated): Contagiousness is
// expected in [0,1] and samplers are expected to return non-negative values;
// violating either is a configuration error with undefined results.
package disease
