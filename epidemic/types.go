// File: types.go
// Role: Health enum, Counts value, sentinel errors.

package epidemic

import "errors"

// Sentinel errors for population and step operations.
var (
	// ErrNilNetwork indicates a Population was constructed without a network.
	ErrNilNetwork = errors.New("epidemic: network is nil")

	// ErrNilPopulation indicates a nil *Population was passed.
	ErrNilPopulation = errors.New("epidemic: population is nil")

	// ErrNilSource indicates Step was invoked without a uniform source.
	ErrNilSource = errors.New("epidemic: random source is nil")

	// ErrUnknownNode indicates a seeded index case is not a node of the
	// bound network.
	ErrUnknownNode = errors.New("epidemic: node not in contact network")

	// ErrStateCorrupted indicates a marked node was absent from its expected
	// source group during commit. This is an invariant violation: broken
	// state, not a retryable condition.
	ErrStateCorrupted = errors.New("epidemic: state corrupted")
)

// Health identifies one of the four mutually exclusive states.
type Health uint8

// The four health states, in progression order.
const (
	Susceptible Health = iota
	Incubating
	Sick
	Recovered
)

// String returns the lower-case state name.
func (h Health) String() string {
	switch h {
	case Susceptible:
		return "susceptible"
	case Incubating:
		return "incubating"
	case Sick:
		return "sick"
	case Recovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Counts aggregates per-state totals for one instant of a population.
type Counts struct {
	Susceptible int
	Incubating  int
	Sick        int
	Recovered   int
}

// Total returns the number of individuals across all four groups.
func (c Counts) Total() int {
	return c.Susceptible + c.Incubating + c.Sick + c.Recovered
}
