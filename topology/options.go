// File: options.go
// Role: functional options and their resolved config for the generators.
// Contract:
//   - Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic and return sentinel errors.
//   - No hidden globals; everything flows through the resolved config.

package topology

import (
	"errors"
	"math/rand"
	"strconv"
)

// Sentinel errors for topology generation.
var (
	// ErrTooFewNodes indicates n is below the generator's minimum.
	ErrTooFewNodes = errors.New("topology: too few nodes")

	// ErrBadAttachment indicates m is outside [1, n) for PowerlawCluster.
	ErrBadAttachment = errors.New("topology: attachment count out of range")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability out of range")
)

// defaultSeed is the fixed seed used when no RNG is supplied.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Option customizes a generator by mutating its resolved config.
type Option func(*config)

// config aggregates the knobs shared by all generators.
// It is resolved once per call and passed by value.
type config struct {
	rng  *rand.Rand
	idFn func(int) string
}

// newConfig resolves defaults, applies options in order (last wins), and
// falls back to the fixed default seed when no RNG was injected.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{idFn: decimalID}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed installs a deterministic RNG built from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil to surface programmer
// error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("topology: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithIDScheme sets the index → node ID mapping. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("topology: WithIDScheme(nil)")
	}

	return func(c *config) {
		c.idFn = fn
	}
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
