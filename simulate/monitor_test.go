package simulate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/epidemic"
	"github.com/katalvlaran/contagion/simulate"
)

// smallMonitor records a 2-day series from a 3-node population seeded with
// one index case.
func smallMonitor(t *testing.T) *simulate.Monitor {
	t.Helper()
	pop, err := epidemic.NewPopulation(tenLine(t))
	require.NoError(t, err)
	require.NoError(t, pop.Seed(map[string]int{"N12": 1}))

	m := simulate.NewMonitor()
	m.Record(0, pop)
	m.Record(1, pop)

	return m
}

func TestMonitor_Record(t *testing.T) {
	m := smallMonitor(t)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []int{0, 1}, m.Day)
	assert.Equal(t, []int{9, 9}, m.Susceptible)
	assert.Equal(t, []int{1, 1}, m.Incubating)
	assert.Equal(t, []int{0, 0}, m.Sick)
}

func TestMonitor_Table_LongFormat(t *testing.T) {
	m := smallMonitor(t)
	want := []simulate.Row{
		{What: "susceptible", Day: 0, Count: 9},
		{What: "susceptible", Day: 1, Count: 9},
		{What: "incubating", Day: 0, Count: 1},
		{What: "incubating", Day: 1, Count: 1},
		{What: "sick", Day: 0, Count: 0},
		{What: "sick", Day: 1, Count: 0},
	}
	assert.Equal(t, want, m.Table())
}

func TestMonitor_WriteCSV(t *testing.T) {
	m := smallMonitor(t)
	var sb strings.Builder
	require.NoError(t, m.WriteCSV(&sb))

	want := "what,day,count\n" +
		"susceptible,0,9\n" +
		"susceptible,1,9\n" +
		"incubating,0,1\n" +
		"incubating,1,1\n" +
		"sick,0,0\n" +
		"sick,1,0\n"
	assert.Equal(t, want, sb.String())
}

func TestMonitor_EmptyTable(t *testing.T) {
	m := simulate.NewMonitor()
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Table())

	var sb strings.Builder
	require.NoError(t, m.WriteCSV(&sb))
	assert.Equal(t, "what,day,count\n", sb.String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { simulate.WithSource(nil) })
	assert.Panics(t, func() { simulate.WithRecorder(nil) })
	assert.Panics(t, func() { simulate.WithStep(nil) })
}
