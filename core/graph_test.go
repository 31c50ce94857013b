package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/core"
)

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding is a no-op")
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))

	assert.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	_, err := g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "A", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.Zero(t, g.VertexCount(), "rejected edges add no vertices")

	looped := core.NewGraph(core.WithLoops(), core.WithWeighted())
	id, err := looped.AddEdge("A", "A", 2)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.True(t, looped.HasEdge("A", "A"))
	nbrs, err := looped.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbrs, 1, "an undirected loop is listed once")
}

func TestGraph_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("B", "A"))
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)

	require.NoError(t, g.RemoveEdge(e1))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_DirectedIsOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, g.Directed())
	assert.False(t, g.Weighted())
}

func TestGraph_EdgesOrderAndRemoveVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"B", "D"},
		{"D", "E"}, {"E", "F"}, {"F", "G"}, {"G", "H"}, {"H", "I"}} {
		_, err := g.AddEdge(pair[0], pair[1], int64(i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e11", edges[10].ID, "creation order, not lexical order")

	require.NoError(t, g.RemoveVertex("A"))
	assert.Equal(t, 8, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.NotEqual(t, "A", e.From)
		assert.NotEqual(t, "A", e.To)
	}
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, ids)
}
