package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldsa/core"
	"github.com/katalvlaran/lvldsa/dfs"
)

func build(t *testing.T, directed bool, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithLoops())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Orders(t *testing.T) {
	g := build(t, false, [2]string{"0", "1"}, [2]string{"0", "4"}, [2]string{"1", "2"}, [2]string{"1", "3"},
		[2]string{"1", "4"}, [2]string{"2", "3"}, [2]string{"3", "4"})
	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, res.PreOrder)
	assert.Equal(t, []string{"4", "3", "2", "1", "0"}, res.Order)
	assert.Equal(t, 4, res.Depth["4"])
	assert.Equal(t, "3", res.Parent["4"])
	_, isRoot := res.Parent["0"]
	assert.False(t, isRoot)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, false, [2]string{"A", "B"}, [2]string{"C", "D"})
	require.NoError(t, g.AddVertex("E"))

	res, err := dfs.DFS(g, "C")
	require.NoError(t, err)
	assert.Len(t, res.Visited, 2)

	res, err = dfs.DFS(g, "C", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "A", "B", "E"}, res.PreOrder)
	assert.Zero(t, res.Depth["A"])
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	g := build(t, true, [2]string{"A", "B"})
	_, err = dfs.DFS(g, "X")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort(t *testing.T) {
	g := build(t, true,
		[2]string{"shirt", "tie"}, [2]string{"tie", "jacket"}, [2]string{"trousers", "shoes"},
		[2]string{"trousers", "belt"}, [2]string{"belt", "jacket"}, [2]string{"socks", "shoes"})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.VertexCount())

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "%s -> %s", e.From, e.To)
	}
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.TopologicalSort(build(t, false, [2]string{"A", "B"}))
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	_, err = dfs.TopologicalSort(build(t, true, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "[A B C A]")
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name     string
		directed bool
		edges    [][2]string
		want     bool
	}{
		{"directed chain", true, [][2]string{{"A", "B"}, {"B", "C"}}, false},
		{"directed diamond", true, [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}, false},
		{"directed triangle", true, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"directed two-cycle", true, [][2]string{{"A", "B"}, {"B", "A"}}, true},
		{"undirected tree", false, [][2]string{{"A", "B"}, {"A", "C"}, {"C", "D"}}, false},
		{"undirected triangle", false, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"undirected parallel", false, [][2]string{{"A", "B"}, {"A", "B"}}, true},
		{"self loop", true, [][2]string{{"A", "A"}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := dfs.HasCycle(build(t, c.directed, c.edges...))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
	_, err := dfs.HasCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
