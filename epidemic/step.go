// File: step.go
// Role: the per-day transition engine.
//
// Stages (all over the entering state; effects commit at the day boundary):
//  1. Contagion + incubation progress: every incubating case exposes each
//     susceptible neighbor to one uniform draw; marked nodes leave the
//     susceptible group immediately so a later case cannot draw on them
//     again. A case whose counter is 0 is marked sick, otherwise the counter
//     decrements in place.
//  2. Sickness progress: a case whose counter is 0 is marked recovered,
//     otherwise the counter decrements in place.
//  3. Commit: marked transitions apply atomically with respect to the day
//     boundary, drawing fresh durations for the timed states.

package epidemic

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/contagion/disease"
)

// Step advances pop by one simulated day under dis, drawing transmission
// decisions from src. A node contaminated during this day is not itself a
// source of contagion until the next day, and an individual entering
// Recovered never leaves it.
//
// Errors: ErrNilPopulation, ErrNilSource, ErrStateCorrupted (fatal: a marked
// node was missing from its expected source group).
// Complexity: O(V log V + E') where E' is edges incident to incubating cases.
func Step(pop *Population, dis disease.Disease, src disease.Source) error {
	if pop == nil {
		return ErrNilPopulation
	}
	if src == nil {
		return ErrNilSource
	}

	var (
		newContaminations []string
		newSicknesses     []string
		newRecoveries     []string
	)

	// Stage 1: contagion + incubation progress.
	// The case list is a snapshot of the entering state in ascending ID
	// order, so seeded draws replay identically run to run.
	cases := sortedKeys(pop.incubating)
	var (
		id   string
		nbr  string
		nbrs []string
		err  error
	)
	for _, id = range cases {
		nbrs, err = pop.net.Neighbors(id)
		if err != nil {
			return fmt.Errorf("step: incubating case %q: %w", id, ErrStateCorrupted)
		}
		for _, nbr = range nbrs {
			if _, ok := pop.susceptible[nbr]; !ok {
				continue
			}
			// One draw per candidate transmission; the zero guard keeps a
			// probability-0 disease from consuming randomness.
			if dis.Contagiousness > 0 && src.Float64() <= dis.Contagiousness {
				delete(pop.susceptible, nbr)
				newContaminations = append(newContaminations, nbr)
			}
		}
		if pop.incubating[id] == 0 {
			newSicknesses = append(newSicknesses, id)
		} else {
			pop.incubating[id]--
		}
	}

	// Stage 2: sickness progress.
	for _, id = range sortedKeys(pop.sick) {
		if pop.sick[id] == 0 {
			newRecoveries = append(newRecoveries, id)
		} else {
			pop.sick[id]--
		}
	}

	// Stage 3: commit at the day boundary.
	// The incubation sampler feeds the sickness counter and the sickness
	// sampler feeds the incubation counter; see disease.Disease.
	for _, id = range newSicknesses {
		if _, ok := pop.incubating[id]; !ok {
			return fmt.Errorf("step: commit sick %q: %w", id, ErrStateCorrupted)
		}
		delete(pop.incubating, id)
		pop.sick[id] = roundDays(dis.DurationIncubation())
	}
	for _, id = range newContaminations {
		pop.incubating[id] = roundDays(dis.DurationSickness())
	}
	for _, id = range newRecoveries {
		if _, ok := pop.sick[id]; !ok {
			return fmt.Errorf("step: commit recovered %q: %w", id, ErrStateCorrupted)
		}
		delete(pop.sick, id)
		pop.recovered[id] = struct{}{}
	}

	return nil
}

// roundDays converts a sampled duration to a whole day count.
// Negative samples are a configuration error with undefined results and are
// not validated here.
func roundDays(v float64) int {
	return int(math.Round(v))
}

// sortedKeys snapshots the keys of m in ascending order.
func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
