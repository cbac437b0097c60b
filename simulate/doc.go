// Package simulate orchestrates full epidemic runs.
//
// What
//
//   - Run: reset and seed a population, simulate a fixed number of days
//     split into a pre-intervention phase and an intervention phase, record
//     the entering state of every day, and leave the network in its
//     original topology.
//   - Recorder: the observer interface invoked once per simulated day,
//     before that day's transition is applied.
//   - Monitor: the default Recorder — an append-only per-day series of
//     susceptible/incubating/sick counts, exportable as a long-format table
//     or CSV for downstream analysis.
//
// Sequencing
//
//	Setup (reset + seed index cases) → days 0..delay-1 (record, step) →
//	compute and remove the gathering-cap edge set against the current
//	topology → days delay..days-1 (record, step) → restore the removed
//	edges unconditionally. delay=0 puts the whole run under intervention;
//	delay ≥ days leaves the intervention phase empty but still round-trips
//	the topology.
//
// Determinism
//
//	All randomness flows through the injected disease.Source (WithSeed /
//	WithSource) and the disease's samplers; a run always executes its fixed
//	number of days — there is no cancellation or timeout concept.
//
// Errors
//
//   - ErrNilPopulation - Run received a nil population.
//   - ErrBadSchedule   - negative Delay or Days.
//   - Seed, policy and step errors are wrapped and propagated; a step error
//     aborts the run but the removed edges are still restored.
package simulate
