package intervention_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contagion/contact"
	"github.com/katalvlaran/contagion/intervention"
	"github.com/katalvlaran/contagion/topology"
)

// star builds a hub "H" connected to n spokes "S00".."Snn" plus the isolated
// pair X-Y.
func star(t *testing.T, n int) *contact.Network {
	t.Helper()
	net := contact.NewNetwork()
	for i := 0; i < n; i++ {
		require.NoError(t, net.AddEdge("H", "S"+strconv.Itoa(10+i))) // fixed-width IDs
	}
	require.NoError(t, net.AddEdge("X", "Y"))

	return net
}

func TestConnectionsToCancel_Validation(t *testing.T) {
	_, err := intervention.ConnectionsToCancel(nil, 5, 2)
	assert.ErrorIs(t, err, intervention.ErrNilNetwork)

	_, err = intervention.ConnectionsToCancel(contact.NewNetwork(), 0, 2)
	assert.ErrorIs(t, err, intervention.ErrBadGatheringSize)
}

func TestConnectionsToCancel_CancelsEarliestExcess(t *testing.T) {
	net := star(t, 8) // H has degree 8
	cancelled, err := intervention.ConnectionsToCancel(net, 5, 3)
	require.NoError(t, err)

	// degree 8, keep 3 → cancel the first 5 neighbors in sorted order
	want := []contact.Edge{
		contact.NewEdge("H", "S10"),
		contact.NewEdge("H", "S11"),
		contact.NewEdge("H", "S12"),
		contact.NewEdge("H", "S13"),
		contact.NewEdge("H", "S14"),
	}
	assert.Equal(t, want, cancelled)
}

func TestConnectionsToCancel_UnderCapUntouched(t *testing.T) {
	net := star(t, 4) // H has degree 4 < maxSize
	cancelled, err := intervention.ConnectionsToCancel(net, 5, 3)
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

// TestDegreeCapProperty removes the cancelled set from two non-adjacent
// hubs and checks the cap directly: each over-connected individual keeps
// exactly its last minConnections edges, everyone else only loses edges a
// hub cancelled.
func TestDegreeCapProperty(t *testing.T) {
	net := contact.NewNetwork()
	for i := 0; i < 8; i++ {
		require.NoError(t, net.AddEdge("H1", "A"+strconv.Itoa(10+i)))
	}
	for i := 0; i < 6; i++ {
		require.NoError(t, net.AddEdge("H2", "B"+strconv.Itoa(10+i)))
	}

	const (
		maxSize = 5
		minConn = 3
	)
	cancelled, err := intervention.ConnectionsToCancel(net, maxSize, minConn)
	require.NoError(t, err)
	net.RemoveEdges(cancelled)

	for _, hub := range []string{"H1", "H2"} {
		d, derr := net.Degree(hub)
		require.NoError(t, derr)
		assert.Equal(t, minConn, d, "hub %s must keep exactly %d edges", hub, minConn)
	}
	// the kept edges are the tail of each hub's sorted neighbor order
	nbrs, err := net.Neighbors("H1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A15", "A16", "A17"}, nbrs)
}

// TestInterventionReversibility: remove-then-restore yields the identical
// edge set.
func TestInterventionReversibility(t *testing.T) {
	net, err := topology.PowerlawCluster(60, 3, 0.5, topology.WithSeed(21))
	require.NoError(t, err)
	before := net.Edges()

	cancelled, err := intervention.ConnectionsToCancel(net, 8, 3)
	require.NoError(t, err)
	require.NotEmpty(t, cancelled)

	net.RemoveEdges(cancelled)
	assert.Less(t, net.EdgeCount(), len(before))

	net.AddEdges(cancelled)
	assert.Equal(t, before, net.Edges())
}

// TestBothEndpointsCancelSameEdge: two adjacent hubs each cancel their
// shared edge; the pair collapses to one removal.
func TestBothEndpointsCancelSameEdge(t *testing.T) {
	net := contact.NewNetwork()
	// A and B are adjacent, both with degree 3
	require.NoError(t, net.AddEdge("A", "B"))
	require.NoError(t, net.AddEdge("A", "C"))
	require.NoError(t, net.AddEdge("A", "D"))
	require.NoError(t, net.AddEdge("B", "E"))
	require.NoError(t, net.AddEdge("B", "F"))

	cancelled, err := intervention.ConnectionsToCancel(net, 3, 0)
	require.NoError(t, err)
	assert.Contains(t, cancelled, contact.NewEdge("A", "B"))

	seen := map[contact.Edge]int{}
	for _, e := range cancelled {
		seen[e]++
	}
	assert.Equal(t, 2, seen[contact.NewEdge("A", "B")], "named once from each side")

	before := net.Edges()
	net.RemoveEdges(cancelled)
	net.AddEdges(cancelled)
	assert.Equal(t, before, net.Edges())
}
