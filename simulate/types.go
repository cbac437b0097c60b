// File: types.go
// Role: Config, Recorder, StepFunc, sentinel errors and run options.

package simulate

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/contagion/disease"
	"github.com/katalvlaran/contagion/epidemic"
)

// Sentinel errors for run orchestration.
var (
	// ErrNilPopulation indicates Run received a nil population.
	ErrNilPopulation = errors.New("simulate: population is nil")

	// ErrBadSchedule indicates a negative Delay or Days.
	ErrBadSchedule = errors.New("simulate: negative day count")
)

// defaultSeed is the fixed seed used when no source is supplied. Arbitrary
// but stable: an unseeded run is still reproducible.
const defaultSeed int64 = 1

// Recorder observes the entering state of each simulated day. Record is
// called exactly once per day, before that day's transition is applied; the
// population must be treated as read-only.
type Recorder interface {
	Record(day int, pop *epidemic.Population)
}

// StepFunc advances a population by one day. The default is epidemic.Step;
// substitutes let tests and variants replace the whole day algorithm.
type StepFunc func(pop *epidemic.Population, dis disease.Disease, src disease.Source) error

// Config fixes the schedule and intervention parameters of one run.
type Config struct {
	// MaxGatheringSize is the degree threshold of the gathering cap.
	MaxGatheringSize int

	// MinConnections is the number of edges every capped individual keeps.
	MinConnections int

	// Delay is the number of pre-intervention days (phase A).
	Delay int

	// Days is the total number of simulated days.
	Days int

	// InitialCases seeds index cases: id → remaining incubation days.
	InitialCases map[string]int
}

// Option customizes a run.
type Option func(*runOptions)

type runOptions struct {
	src       disease.Source
	step      StepFunc
	recorders []Recorder
}

// newRunOptions resolves defaults and applies options in order.
func newRunOptions(opts ...Option) runOptions {
	o := runOptions{step: epidemic.Step}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewSource(defaultSeed))
	}

	return o
}

// WithSeed installs a deterministic uniform source built from seed.
func WithSeed(seed int64) Option {
	return func(o *runOptions) {
		o.src = rand.New(rand.NewSource(seed))
	}
}

// WithSource installs an explicit uniform source (scripted sequences in
// tests, a shared *rand.Rand in sweeps). Panics on nil.
func WithSource(src disease.Source) Option {
	if src == nil {
		panic("simulate: WithSource(nil)")
	}

	return func(o *runOptions) {
		o.src = src
	}
}

// WithRecorder registers an additional observer next to the run's Monitor.
// Panics on nil.
func WithRecorder(rec Recorder) Option {
	if rec == nil {
		panic("simulate: WithRecorder(nil)")
	}

	return func(o *runOptions) {
		o.recorders = append(o.recorders, rec)
	}
}

// WithStep substitutes the per-day algorithm. Panics on nil.
func WithStep(fn StepFunc) Option {
	if fn == nil {
		panic("simulate: WithStep(nil)")
	}

	return func(o *runOptions) {
		o.step = fn
	}
}
