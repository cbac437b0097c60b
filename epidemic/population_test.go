package epidemic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/contact"
	"github.com/katalvlaran/contagion/epidemic"
)

// line builds the path A-B-C-... over the given IDs.
func line(t *testing.T, ids ...string) *contact.Network {
	t.Helper()
	n := contact.NewNetwork()
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, n.AddEdge(ids[i], ids[i+1]))
	}

	return n
}

func TestNewPopulation_NilNetwork(t *testing.T) {
	_, err := epidemic.NewPopulation(nil)
	assert.ErrorIs(t, err, epidemic.ErrNilNetwork)
}

func TestNewPopulation_StartsFullySusceptible(t *testing.T) {
	net := line(t, "A", "B", "C")
	pop, err := epidemic.NewPopulation(net)
	require.NoError(t, err)

	c := pop.Counts()
	assert.Equal(t, epidemic.Counts{Susceptible: 3}, c)
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 3, pop.Size())

	st, ok := pop.StateOf("B")
	require.True(t, ok)
	assert.Equal(t, epidemic.Susceptible, st)

	_, ok = pop.StateOf("Z")
	assert.False(t, ok)
}

func TestSeed_MovesIndexCasesOutOfSusceptible(t *testing.T) {
	net := line(t, "A", "B", "C", "D")
	pop, err := epidemic.NewPopulation(net)
	require.NoError(t, err)

	require.NoError(t, pop.Seed(map[string]int{"B": 2, "D": 0}))

	assert.Equal(t, epidemic.Counts{Susceptible: 2, Incubating: 2}, pop.Counts())

	st, _ := pop.StateOf("B")
	assert.Equal(t, epidemic.Incubating, st)
	d, ok := pop.DaysToSickness("B")
	require.True(t, ok)
	assert.Equal(t, 2, d)
	d, ok = pop.DaysToSickness("D")
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestSeed_Errors(t *testing.T) {
	net := line(t, "A", "B")
	pop, err := epidemic.NewPopulation(net)
	require.NoError(t, err)

	// unknown node: population unchanged
	err = pop.Seed(map[string]int{"A": 1, "nope": 1})
	assert.ErrorIs(t, err, epidemic.ErrUnknownNode)
	assert.Equal(t, epidemic.Counts{Susceptible: 2}, pop.Counts())

	// re-seeding an already incubating case breaks the partition
	require.NoError(t, pop.Seed(map[string]int{"A": 1}))
	err = pop.Seed(map[string]int{"A": 3})
	assert.ErrorIs(t, err, epidemic.ErrStateCorrupted)
}

func TestReset_Idempotent(t *testing.T) {
	net := line(t, "A", "B", "C")
	pop, err := epidemic.NewPopulation(net)
	require.NoError(t, err)
	require.NoError(t, pop.Seed(map[string]int{"A": 5}))

	pop.Reset()
	assert.Equal(t, epidemic.Counts{Susceptible: 3}, pop.Counts())
	pop.Reset()
	assert.Equal(t, epidemic.Counts{Susceptible: 3}, pop.Counts())
	// the network is untouched by Reset
	assert.Equal(t, 2, net.EdgeCount())
}

func TestHealth_String(t *testing.T) {
	assert.Equal(t, "susceptible", epidemic.Susceptible.String())
	assert.Equal(t, "incubating", epidemic.Incubating.String())
	assert.Equal(t, "sick", epidemic.Sick.String())
	assert.Equal(t, "recovered", epidemic.Recovered.String())
}
