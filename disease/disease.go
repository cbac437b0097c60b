// File: disease.go
// Role: Disease value, Source interface, duration samplers and options.

package disease

import (
	"math"
	"math/rand"
)

// Default log-normal duration parameters (in log-days).
const (
	defaultLogNormalMu    = 1.2
	defaultLogNormalSigma = 0.5
)

// defaultSeed is the fixed seed behind the default samplers when no RNG is
// supplied. Arbitrary but stable.
const defaultSeed int64 = 1

// Source yields uniform draws in [0,1). *math/rand.Rand satisfies it; tests
// substitute scripted sequences to make every transmission decision
// deterministic.
type Source interface {
	Float64() float64
}

// Sampler is a zero-argument duration generator. Results are rounded to a
// whole number of days by the step engine; a Sampler must not return a
// negative value (undefined results otherwise).
type Sampler func() float64

// Disease is the immutable parameter bundle of one contagious disease.
//
// Note on wiring: DurationIncubation is drawn when a case becomes sick (it
// feeds the remaining-recovery counter) and DurationSickness is drawn when a
// node becomes incubating (it feeds the remaining-incubation counter).
// Callers tuning one stage's length must set the sampler accordingly.
type Disease struct {
	// Contagiousness is the transmission probability per exposure-day.
	Contagiousness float64

	// DurationIncubation samples the duration drawn at the incubating→sick
	// transition.
	DurationIncubation Sampler

	// DurationSickness samples the duration drawn at the
	// susceptible→incubating transition.
	DurationSickness Sampler
}

// Option customizes Disease construction.
type Option func(*cfg)

type cfg struct {
	rng        *rand.Rand
	incubation Sampler
	sickness   Sampler
}

// New builds a Disease with the given contagiousness. Unless overridden,
// both duration samplers are log-normal(μ=1.2, σ=0.5) over a seeded source.
// Complexity: O(len(opts)).
func New(contagiousness float64, opts ...Option) Disease {
	c := cfg{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if c.incubation == nil {
		c.incubation = LogNormal(c.rng, defaultLogNormalMu, defaultLogNormalSigma)
	}
	if c.sickness == nil {
		c.sickness = LogNormal(c.rng, defaultLogNormalMu, defaultLogNormalSigma)
	}

	return Disease{
		Contagiousness:     contagiousness,
		DurationIncubation: c.incubation,
		DurationSickness:   c.sickness,
	}
}

// WithRand sets the RNG behind the default samplers. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("disease: WithRand(nil)")
	}

	return func(c *cfg) {
		c.rng = r
	}
}

// WithSeed sets a deterministic RNG behind the default samplers.
func WithSeed(seed int64) Option {
	return func(c *cfg) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIncubationSampler overrides the sampler drawn at the incubating→sick
// transition. Panics on nil.
func WithIncubationSampler(s Sampler) Option {
	if s == nil {
		panic("disease: WithIncubationSampler(nil)")
	}

	return func(c *cfg) {
		c.incubation = s
	}
}

// WithSicknessSampler overrides the sampler drawn at the
// susceptible→incubating transition. Panics on nil.
func WithSicknessSampler(s Sampler) Option {
	if s == nil {
		panic("disease: WithSicknessSampler(nil)")
	}

	return func(c *cfg) {
		c.sickness = s
	}
}

// WithFixedDurations installs constant samplers: every new sickness lasts
// sick days and every new incubation lasts inc days. Intended for tests and
// worked examples.
func WithFixedDurations(inc, sick int) Option {
	return func(c *cfg) {
		// Cross-wired on purpose: the incubation sampler feeds sickness
		// counters and vice versa; see the Disease doc comment.
		c.incubation = Fixed(float64(sick))
		c.sickness = Fixed(float64(inc))
	}
}

// LogNormal returns a sampler producing exp(μ + σ·N(0,1)) draws from r.
// Panics on a nil RNG.
func LogNormal(r *rand.Rand, mu, sigma float64) Sampler {
	if r == nil {
		panic("disease: LogNormal(nil rng)")
	}

	return func() float64 {
		return math.Exp(mu + sigma*r.NormFloat64())
	}
}

// Fixed returns a sampler that always yields v.
func Fixed(v float64) Sampler {
	return func() float64 {
		return v
	}
}
