package disease_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/contagion/disease"
)

func TestNew_Defaults(t *testing.T) {
	d := disease.New(0.25)
	assert.Equal(t, 0.25, d.Contagiousness)
	assert.NotNil(t, d.DurationIncubation)
	assert.NotNil(t, d.DurationSickness)
	// default samplers are log-normal: strictly positive
	for i := 0; i < 100; i++ {
		assert.Greater(t, d.DurationIncubation(), 0.0)
		assert.Greater(t, d.DurationSickness(), 0.0)
	}
}

func TestNew_DeterministicPerSeed(t *testing.T) {
	a := disease.New(0.1, disease.WithSeed(3))
	b := disease.New(0.1, disease.WithSeed(3))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.DurationIncubation(), b.DurationIncubation())
	}
}

func TestWithFixedDurations_CrossWiring(t *testing.T) {
	d := disease.New(0, disease.WithFixedDurations(2, 7))
	// the incubation sampler feeds the sickness counter, and vice versa
	assert.Equal(t, 7.0, d.DurationIncubation())
	assert.Equal(t, 2.0, d.DurationSickness())
}

func TestLogNormal_MatchesFormula(t *testing.T) {
	r1 := rand.New(rand.NewSource(9))
	r2 := rand.New(rand.NewSource(9))
	s := disease.LogNormal(r1, 1.2, 0.5)
	for i := 0; i < 5; i++ {
		want := math.Exp(1.2 + 0.5*r2.NormFloat64())
		assert.InDelta(t, want, s(), 1e-12)
	}
}

func TestFixed(t *testing.T) {
	s := disease.Fixed(4)
	assert.Equal(t, 4.0, s())
	assert.Equal(t, 4.0, s())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { disease.WithRand(nil) })
	assert.Panics(t, func() { disease.WithIncubationSampler(nil) })
	assert.Panics(t, func() { disease.WithSicknessSampler(nil) })
	assert.Panics(t, func() { disease.LogNormal(nil, 0, 1) })
}
