package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvldsa/core"
)

// FromGraph builds the adjacency matrix of g.
//
// Steps:
//  1. Index vertices in sorted ID order.
//  2. Initialize the diagonal to 0 and every other cell to Inf.
//  3. For each edge keep the lightest weight, mirrored when undirected. A loop
//     lowers its diagonal cell only when negative.
func FromGraph(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Index vertices
	ids := g.Vertices()
	n := len(ids)
	a := &Adjacency{
		ids:      ids,
		index:    make(map[string]int, n),
		cells:    make([][]int64, n),
		directed: g.Directed(),
	}
	for i, id := range ids {
		a.index[id] = i
	}

	// 2) Empty matrix
	for i := range a.cells {
		a.cells[i] = make([]int64, n)
		for j := range a.cells[i] {
			if i != j {
				a.cells[i][j] = Inf
			}
		}
	}

	// 3) Fill edges
	for _, e := range g.Edges() {
		w := e.Weight
		if !g.Weighted() {
			w = 1
		}
		i, j := a.index[e.From], a.index[e.To]
		if i == j {
			// only a negative loop changes the 0 diagonal
			a.cells[i][i] = min(a.cells[i][i], w)
			continue
		}
		a.cells[i][j] = min(a.cells[i][j], w)
		if !a.directed {
			a.cells[j][i] = min(a.cells[j][i], w)
		}
	}

	return a, nil
}

// Len returns the number of vertices.
func (a *Adjacency) Len() int { return len(a.ids) }

// Vertices returns the vertex IDs in index order.
func (a *Adjacency) Vertices() []string { return append([]string(nil), a.ids...) }

// Index returns the row of id.
func (a *Adjacency) Index(id string) (int, error) {
	i, ok := a.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return i, nil
}

// At returns the weight of the from→to cell and whether an edge is present.
func (a *Adjacency) At(from, to string) (int64, bool, error) {
	i, err := a.Index(from)
	if err != nil {
		return 0, false, err
	}
	j, err := a.Index(to)
	if err != nil {
		return 0, false, err
	}
	w := a.cells[i][j]

	return w, i != j && w != Inf, nil
}

// Neighbors scans the row of id and returns the IDs it has edges to.
func (a *Adjacency) Neighbors(id string) ([]string, error) {
	i, err := a.Index(id)
	if err != nil {
		return nil, err
	}
	var out []string
	for j, w := range a.cells[i] {
		if j != i && w != Inf {
			out = append(out, a.ids[j])
		}
	}

	return out, nil
}

// String renders the matrix with right-aligned columns; absent edges print as ".".
func (a *Adjacency) String() string {
	cell := func(w int64) string {
		if w == Inf {
			return "."
		}
		return strconv.FormatInt(w, 10)
	}

	width := 1
	for i, id := range a.ids {
		width = max(width, len(id))
		for _, w := range a.cells[i] {
			width = max(width, len(cell(w)))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s", width, "")
	for _, id := range a.ids {
		fmt.Fprintf(&b, " %*s", width, id)
	}
	b.WriteByte('\n')
	for i, id := range a.ids {
		fmt.Fprintf(&b, "%*s", width, id)
		for _, w := range a.cells[i] {
			fmt.Fprintf(&b, " %*s", width, cell(w))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
