package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/lvldsa/bfs"
	"github.com/katalvlaran/lvldsa/dfs"
	"github.com/katalvlaran/lvldsa/dijkstra"
	"github.com/katalvlaran/lvldsa/dp"
	"github.com/katalvlaran/lvldsa/matrix"
	"github.com/katalvlaran/lvldsa/mst"
	"github.com/katalvlaran/lvldsa/sorting"
)

const sortSize = 2000

func runSorting(ctx context.Context, w io.Writer, e *env) error {
	input := e.randomInts(sortSize, e.cfg.Search.MaxValue)
	want := slices.Sorted(slices.Values(input))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\tstable\ttime\tsorted\n")
	for _, alg := range sorting.Algorithms() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := slices.Clone(input)
		start := time.Now()
		alg.Sort(s)
		elapsed := time.Since(start)
		fmt.Fprintf(tw, "%s\t%v\t%s\t%v\n", alg.Name, alg.Stable, elapsed.Round(time.Microsecond), slices.Equal(s, want))
	}
	start := time.Now()
	counted, err := sorting.Counting(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "counting\ttrue\t%s\t%v\n", time.Since(start).Round(time.Microsecond), slices.Equal(counted, want))
	if err := tw.Flush(); err != nil {
		return err
	}
	printDetail(w, "%d random values in [1, %d]", sortSize, e.cfg.Search.MaxValue)

	return nil
}

func runDP(_ context.Context, w io.Writer, e *env) error {
	printSection(w, "FIBONACCI")
	fibs := make([]string, 0, 11)
	for n := 0; n <= 10; n++ {
		f, err := dp.Fibonacci(n)
		if err != nil {
			return err
		}
		fibs = append(fibs, fmt.Sprint(f))
	}
	fmt.Fprintln(w, strings.Join(fibs, " "))
	f50, err := dp.FibonacciMemo(50)
	if err != nil {
		return err
	}
	printDetail(w, "F(50) = %d", f50)

	printSection(w, "KNAPSACK")
	for _, c := range e.fx.Knapsack {
		items, err := c.Items()
		if err != nil {
			return err
		}
		res, err := dp.Knapsack(items, c.Capacity)
		if err != nil {
			return err
		}
		brute, err := dp.KnapsackBrute(items, c.Capacity)
		if err != nil {
			return err
		}
		printCheck(w, res.Value == brute, "%s: value %s weight %s items %v",
			c.Name, num(res.Value), num(res.Weight), res.Items)
	}

	printSection(w, "SEQUENCES")
	n, lcs := dp.LCS("serendipitous", "precipitation")
	fmt.Fprintf(w, "LCS(serendipitous, precipitation) = %s %q\n", num(n), lcs)
	fmt.Fprintf(w, "EditDistance(intention, execution) = %s\n", num(dp.EditDistance("intention", "execution")))
	seq := []int{10, 9, 2, 5, 3, 7, 101, 18}
	fmt.Fprintf(w, "LIS(%v) = %v\n", seq, dp.LIS(seq))

	coins, err := dp.CoinChange([]int{1, 5, 10, 25}, 63)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "CoinChange([1 5 10 25], 63) = %s\n", num(coins))

	return nil
}

func runGraphs(ctx context.Context, w io.Writer, e *env) error {
	lessonCase, ok := e.fx.Graph("lesson graph")
	if !ok {
		return fmt.Errorf("%w: fixture %q", ErrUnknownGraph, "lesson graph")
	}
	g, err := lessonCase.Build()
	if err != nil {
		return err
	}
	printSection(w, "ADJACENCY LIST")
	for _, v := range g.Vertices() {
		nb, _ := g.NeighborIDs(v)
		fmt.Fprintf(w, "%s: %v\n", v, nb)
	}

	am, err := matrix.FromGraph(g)
	if err != nil {
		return err
	}
	printSection(w, "ADJACENCY MATRIX")
	fmt.Fprint(w, am)

	printSection(w, "BFS")
	br, err := bfs.BFS(g, "3", bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "order from 3: %v\n", br.Order)
	path, err := br.PathTo("0")
	if err != nil {
		return err
	}
	printDetail(w, "shortest hop path 3 to 0: %v", path)

	printSection(w, "DFS")
	dr, err := dfs.DFS(g, "3", dfs.WithContext(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "discovery from 3: %v\n", dr.PreOrder)
	cyclic, err := dfs.HasCycle(g)
	if err != nil {
		return err
	}
	printDetail(w, "has cycle: %v", cyclic)

	if c, ok := e.fx.Graph("course prerequisites"); ok {
		dag, err := c.Build()
		if err != nil {
			return err
		}
		order, err := dfs.TopologicalSort(dag)
		if err != nil {
			return err
		}
		printSection(w, "TOPOLOGICAL SORT")
		fmt.Fprintf(w, "course order: %v\n", order)
	}

	c, ok := e.fx.Graph("weighted cities")
	if !ok {
		return nil
	}
	cities, err := c.Build()
	if err != nil {
		return err
	}
	printSection(w, "DIJKSTRA")
	res, err := dijkstra.Dijkstra(cities, "A")
	if err != nil {
		return err
	}
	for _, v := range cities.Vertices() {
		p, d, err := res.PathTo(v)
		if err != nil {
			printInfo(w, "%s: unreachable", v)
			continue
		}
		fmt.Fprintf(w, "A to %s: %s via %v\n", v, num(d), p)
	}

	printSection(w, "FLOYD-WARSHALL")
	cm, err := matrix.FromGraph(cities)
	if err != nil {
		return err
	}
	all, err := matrix.FloydWarshall(cm)
	if err != nil {
		return err
	}
	agree := true
	for _, v := range cities.Vertices() {
		d, err := all.Distance("A", v)
		if err != nil || d != res.Dist[v] {
			agree = false
		}
	}
	fmt.Fprint(w, cm)
	printCheck(w, agree, "all-pairs distances from A match Dijkstra")

	printSection(w, "MINIMUM SPANNING TREE")
	kr, err := mst.Kruskal(cities)
	if err != nil {
		return err
	}
	pr, err := mst.Prim(cities, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Kruskal weight %s, Prim weight %s\n", num(kr.Weight), num(pr.Weight))
	for _, edge := range kr.Edges {
		printDetail(w, "%s -- %s (%d)", edge.From, edge.To, edge.Weight)
	}
	printInfo(w, "render with: lvldsa graph %q --svg cities.svg", c.Name)

	return nil
}
