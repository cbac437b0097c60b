// Package scenario loads simulation scenarios from YAML files and turns
// them into ready-to-run collaborators: a generated contact network, a
// disease parameter bundle, and a run configuration.
//
// A scenario file looks like:
//
//	seed: 42
//	days: 90
//	population:
//	  size: 500
//	  attach: 5
//	  triangle_p: 0.333
//	disease:
//	  contagiousness: 0.15
//	  incubation: {mu: 1.2, sigma: 0.5}
//	  sickness: {mu: 1.2, sigma: 0.5}
//	initial_cases:
//	  "0": 2
//	  "1": 3
//	intervention:
//	  max_gathering: 20
//	  min_connections: 5
//	  delay: 14
//
// Unset log-normal parameters default to μ=1.2, σ=0.5. The seed drives the
// topology, the duration samplers and the run's uniform source, so a
// scenario file pins an entire run.
package scenario

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/contagion/contact"
	"github.com/katalvlaran/contagion/disease"
	"github.com/katalvlaran/contagion/simulate"
	"github.com/katalvlaran/contagion/topology"
)

// Default log-normal duration parameters applied when a stage omits them.
const (
	defaultMu    = 1.2
	defaultSigma = 0.5
)

// seed offsets keep the topology, sampler and run streams independent.
const (
	seedOffsetSamplers = 1
	seedOffsetRun      = 2
)

// PopulationSpec describes the generated contact network.
type PopulationSpec struct {
	// Size is the number of individuals.
	Size int `yaml:"size"`

	// Attach is the number of edges each new node attaches (m).
	Attach int `yaml:"attach"`

	// TriangleP is the triad-closure probability (p).
	TriangleP float64 `yaml:"triangle_p"`
}

// LogNormalSpec parameterizes one log-normal duration sampler.
type LogNormalSpec struct {
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`
}

// DiseaseSpec describes the disease parameter bundle.
type DiseaseSpec struct {
	Contagiousness float64       `yaml:"contagiousness"`
	Incubation     LogNormalSpec `yaml:"incubation"`
	Sickness       LogNormalSpec `yaml:"sickness"`
}

// InterventionSpec describes the gathering cap and its schedule.
type InterventionSpec struct {
	MaxGathering   int `yaml:"max_gathering"`
	MinConnections int `yaml:"min_connections"`
	Delay          int `yaml:"delay"`
}

// Scenario is the top-level document of a scenario file.
type Scenario struct {
	Seed         int64            `yaml:"seed"`
	Days         int              `yaml:"days"`
	Population   PopulationSpec   `yaml:"population"`
	Disease      DiseaseSpec      `yaml:"disease"`
	InitialCases map[string]int   `yaml:"initial_cases"`
	Intervention InterventionSpec `yaml:"intervention"`
}

// Load reads and parses a scenario file, resolving sampler defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var s Scenario
	if err = yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	s.Disease.Incubation = withDefaults(s.Disease.Incubation)
	s.Disease.Sickness = withDefaults(s.Disease.Sickness)

	return &s, nil
}

// withDefaults fills an unset log-normal spec (both fields zero).
func withDefaults(l LogNormalSpec) LogNormalSpec {
	if l.Mu == 0 && l.Sigma == 0 {
		return LogNormalSpec{Mu: defaultMu, Sigma: defaultSigma}
	}

	return l
}

// Network generates the scenario's contact network, seeded from the
// scenario seed.
func (s *Scenario) Network() (*contact.Network, error) {
	net, err := topology.PowerlawCluster(
		s.Population.Size, s.Population.Attach, s.Population.TriangleP,
		topology.WithSeed(s.Seed),
	)
	if err != nil {
		return nil, fmt.Errorf("scenario: network: %w", err)
	}

	return net, nil
}

// BuildDisease assembles the disease bundle with log-normal samplers drawn
// from a stream derived from the scenario seed.
func (s *Scenario) BuildDisease() disease.Disease {
	r := rand.New(rand.NewSource(s.Seed + seedOffsetSamplers))

	return disease.New(s.Disease.Contagiousness,
		disease.WithIncubationSampler(disease.LogNormal(r, s.Disease.Incubation.Mu, s.Disease.Incubation.Sigma)),
		disease.WithSicknessSampler(disease.LogNormal(r, s.Disease.Sickness.Mu, s.Disease.Sickness.Sigma)),
	)
}

// RunConfig maps the scenario onto the driver's configuration.
func (s *Scenario) RunConfig() simulate.Config {
	return simulate.Config{
		MaxGatheringSize: s.Intervention.MaxGathering,
		MinConnections:   s.Intervention.MinConnections,
		Delay:            s.Intervention.Delay,
		Days:             s.Days,
		InitialCases:     s.InitialCases,
	}
}

// RunSeed is the seed for the run's uniform source, derived from the
// scenario seed so that topology, samplers and transmission draws are
// independent streams.
func (s *Scenario) RunSeed() int64 {
	return s.Seed + seedOffsetRun
}
