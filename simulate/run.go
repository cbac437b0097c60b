// File: run.go
// Role: the run driver — phase sequencing and topology round-trip.

package simulate

import (
	"fmt"

	"github.com/katalvlaran/contagion/disease"
	"github.com/katalvlaran/contagion/epidemic"
	"github.com/katalvlaran/contagion/intervention"
)

// Run executes one full simulation: reset pop, seed cfg.InitialCases, run
// cfg.Days days with the gathering cap active from day cfg.Delay onward, and
// restore the cancelled connections before returning — on every path, so the
// network always ends in its pre-intervention topology.
//
// The returned Monitor holds one entry per day, 0..cfg.Days-1, each taken
// before that day's transition (the entering state). Additional observers
// registered via WithRecorder see the same sequence.
//
// Errors: ErrNilPopulation, ErrBadSchedule; wrapped seed, policy and step
// errors.
// Complexity: O(Days · step cost).
func Run(pop *epidemic.Population, dis disease.Disease, cfg Config, opts ...Option) (*Monitor, error) {
	if pop == nil {
		return nil, ErrNilPopulation
	}
	if cfg.Days < 0 || cfg.Delay < 0 {
		return nil, fmt.Errorf("delay=%d days=%d: %w", cfg.Delay, cfg.Days, ErrBadSchedule)
	}

	o := newRunOptions(opts...)

	pop.Reset()
	if err := pop.Seed(cfg.InitialCases); err != nil {
		return nil, fmt.Errorf("simulate: seed: %w", err)
	}

	mon := NewMonitor()
	recorders := append([]Recorder{mon}, o.recorders...)
	record := func(day int) {
		for _, r := range recorders {
			r.Record(day, pop)
		}
	}

	// Phase A: pre-intervention days. A delay beyond the horizon only
	// shortens phase B to empty; the cap is still applied and undone.
	delay := cfg.Delay
	if delay > cfg.Days {
		delay = cfg.Days
	}
	var day int
	for day = 0; day < delay; day++ {
		record(day)
		if err := o.step(pop, dis, o.src); err != nil {
			return nil, fmt.Errorf("simulate: day %d: %w", day, err)
		}
	}

	// Transition: cap gatherings against the current topology.
	net := pop.Network()
	cancelled, err := intervention.ConnectionsToCancel(net, cfg.MaxGatheringSize, cfg.MinConnections)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	net.RemoveEdges(cancelled)
	// The cancelled connections come back no matter how the run ends.
	defer net.AddEdges(cancelled)

	// Phase B: intervention days.
	for day = delay; day < cfg.Days; day++ {
		record(day)
		if err = o.step(pop, dis, o.src); err != nil {
			return nil, fmt.Errorf("simulate: day %d: %w", day, err)
		}
	}

	return mon, nil
}
