// File: population.go
// Role: Population state: the four-group partition bound to one network.

package epidemic

import (
	"fmt"

	"github.com/katalvlaran/contagion/contact"
)

// Population partitions the node set of one contact network into the four
// health-state groups. The zero value is not usable; construct with
// NewPopulation. Only Seed and Step reassign individuals between groups.
type Population struct {
	net *contact.Network

	susceptible map[string]struct{}
	incubating  map[string]int // id → remaining days until symptomatic
	sick        map[string]int // id → remaining days until recovery
	recovered   map[string]struct{}
}

// NewPopulation binds a fully susceptible population to net. The population
// does not own the network exclusively: interventions mutate its edge set
// directly between days.
//
// Errors: ErrNilNetwork.
// Complexity: O(V).
func NewPopulation(net *contact.Network) (*Population, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	p := &Population{net: net}
	p.Reset()

	return p, nil
}

// Reset returns every individual to Susceptible and clears the other three
// groups. Idempotent; the network is untouched.
// Complexity: O(V).
func (p *Population) Reset() {
	ids := p.net.Nodes()
	p.susceptible = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		p.susceptible[id] = struct{}{}
	}
	p.incubating = make(map[string]int)
	p.sick = make(map[string]int)
	p.recovered = make(map[string]struct{})
}

// Seed moves the given index cases from Susceptible into Incubating with the
// supplied remaining-incubation days, bypassing the contagion path. Each case
// must currently be susceptible; on error the population is left unchanged.
//
// Errors: ErrUnknownNode (also reported for a case already outside
// Susceptible, which would break the partition).
// Complexity: O(len(cases)).
func (p *Population) Seed(cases map[string]int) error {
	var id string
	for id = range cases {
		if _, ok := p.susceptible[id]; !ok {
			if !p.net.HasNode(id) {
				return fmt.Errorf("seed %q: %w", id, ErrUnknownNode)
			}

			return fmt.Errorf("seed %q: not susceptible: %w", id, ErrStateCorrupted)
		}
	}
	var days int
	for id, days = range cases {
		delete(p.susceptible, id)
		p.incubating[id] = days
	}

	return nil
}

// Network returns the bound contact network.
func (p *Population) Network() *contact.Network {
	return p.net
}

// Size returns the number of individuals (the network's node count).
func (p *Population) Size() int {
	return p.net.NodeCount()
}

// Counts returns the per-state totals at this instant.
// Complexity: O(1).
func (p *Population) Counts() Counts {
	return Counts{
		Susceptible: len(p.susceptible),
		Incubating:  len(p.incubating),
		Sick:        len(p.sick),
		Recovered:   len(p.recovered),
	}
}

// StateOf returns the health state of id, or ok=false when id is not a node
// of the bound network.
// Complexity: O(1).
func (p *Population) StateOf(id string) (Health, bool) {
	if _, ok := p.susceptible[id]; ok {
		return Susceptible, true
	}
	if _, ok := p.incubating[id]; ok {
		return Incubating, true
	}
	if _, ok := p.sick[id]; ok {
		return Sick, true
	}
	if _, ok := p.recovered[id]; ok {
		return Recovered, true
	}

	return Susceptible, false
}

// DaysToSickness returns the remaining incubation days of id, with ok=false
// when id is not incubating.
func (p *Population) DaysToSickness(id string) (int, bool) {
	d, ok := p.incubating[id]

	return d, ok
}

// DaysToRecovery returns the remaining sickness days of id, with ok=false
// when id is not sick.
func (p *Population) DaysToRecovery(id string) (int, bool) {
	d, ok := p.sick[id]

	return d, ok
}
