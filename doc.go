// Package contagion is an in-memory playground for simulating epidemics
// over contact networks — from graph primitives to stochastic transmission,
// interventions and full scenario runs.
//
// 🚀 What is contagion?
//
//	A deterministic-by-seed, thread-safe simulation toolkit that brings together:
//		• Contact networks: undirected graphs with canonical edges, safe mutation under locks
//		• Topology: powerlaw-cluster (Holme–Kim) and sparse random generators
//		• Disease models: contagiousness + pluggable log-normal duration samplers
//		• Epidemic engine: susceptible → incubating → sick → recovered, one day per step
//		• Interventions: gathering-size caps computed as reversible edge cancellations
//		• Simulation driver: phased runs with delayed interventions and daily monitoring
//		• Scenarios: whole runs pinned by one YAML file and one seed
//		• Viz: Graphviz DOT snapshots of any population state
//
// ✨ Why choose contagion?
//
//   - Reproducible – every random draw flows from an injected, seeded source
//   - Rock-solid guarantees – the four health groups always partition the population
//   - Reversible – interventions cancel edges and restore them on every return path
//   - Extensible – swap the step function, add recorders, plug custom samplers
//
// Under the hood, everything is organized per concern:
//
//	contact/      — undirected contact network, canonical edges, batch mutation
//	topology/     — seeded network generators
//	disease/      — disease parameter bundle & duration samplers
//	epidemic/     — population state, seeding, the daily step
//	intervention/ — gathering-size cap as an edge-cancellation plan
//	simulate/     — phased driver, monitor, CSV export
//	scenario/     — YAML scenario files → network + disease + run config
//	viz/          — DOT rendering of a population's state
//
// Quick ASCII example:
//
//	    S───I
//	    │   │
//	    S───K
//
//	one incubating case (I), one sick case (K), two susceptible contacts.
//
// Dive into configs/scenario.yaml for a complete, runnable scenario.
//
//	go get github.com/katalvlaran/contagion
package contagion
