package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/mst"
)

func classic(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 7}, {"A", "D", 5}, {"B", "C", 8}, {"B", "D", 9}, {"B", "E", 7},
		{"C", "E", 5}, {"D", "E", 15}, {"D", "F", 6}, {"E", "F", 8}, {"E", "G", 9}, {"F", "G", 11},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestMST_Classic(t *testing.T) {
	g := classic(t)
	k, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(39), k.Weight)
	assert.Len(t, k.Edges, 6)

	p, err := mst.Prim(g, "D")
	require.NoError(t, err)
	assert.Equal(t, int64(39), p.Weight)
	assert.ElementsMatch(t, k.Edges, p.Edges, "this graph has a unique MST")
}

func TestMST_Errors(t *testing.T) {
	_, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
	_, err = mst.Prim(core.NewGraph(core.WithWeighted(), core.WithDirected(true)), "")
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)
	_, err = mst.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	empty := core.NewGraph(core.WithWeighted())
	_, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	g := classic(t)
	require.NoError(t, g.AddVertex("lonely"))
	_, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Prim(g, "A")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Prim(classic(t), "nope")
	assert.ErrorIs(t, err, mst.ErrVertexNotFound)
}

func TestMST_SingleVertexAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)
	k, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, k.Edges)
	p, err := mst.Prim(g, "")
	require.NoError(t, err)
	assert.Zero(t, p.Weight)
}

func TestMST_RandomAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for trial := 0; trial < 40; trial++ {
		g := core.NewGraph(core.WithWeighted())
		n := 2 + r.Intn(20)
		// a random tree over 0..n-1 guarantees connectivity
		for i := 1; i < n; i++ {
			_, err := g.AddEdge(fmt.Sprint(r.Intn(i)), fmt.Sprint(i), int64(r.Intn(50)))
			require.NoError(t, err)
		}
		for i := 0; i < n; i++ {
			u, v := r.Intn(n), r.Intn(n)
			if u != v {
				_, _ = g.AddEdge(fmt.Sprint(u), fmt.Sprint(v), int64(r.Intn(50)))
			}
		}
		k, err := mst.Kruskal(g)
		require.NoError(t, err)
		p, err := mst.Prim(g, "")
		require.NoError(t, err)
		require.Equal(t, k.Weight, p.Weight)
		require.Len(t, p.Edges, n-1)
	}
}

func TestDisjointSet(t *testing.T) {
	ds := mst.NewDisjointSet([]string{"a", "b", "c", "d"})
	assert.Equal(t, 4, ds.Sets())
	assert.True(t, ds.Union("a", "b"))
	assert.True(t, ds.Union("c", "d"))
	assert.False(t, ds.Union("b", "a"))
	assert.True(t, ds.Union("a", "d"))
	assert.Equal(t, 1, ds.Sets())
	assert.Equal(t, ds.Find("a"), ds.Find("c"))
}
