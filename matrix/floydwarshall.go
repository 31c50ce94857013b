package matrix

import "fmt"

// FloydWarshall computes all-pairs shortest paths over a.
//
// Loop order is k → i → j and only strict improvements are taken, so ties
// keep the earlier route. Inf entries are skipped so sums never overflow.
func FloydWarshall(a *Adjacency) (*Paths, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: nil adjacency matrix", ErrNilGraph)
	}
	n := a.Len()
	p := &Paths{
		ids:   a.ids,
		index: a.index,
		dist:  make([][]int64, n),
		next:  make([][]int, n),
	}
	for i := 0; i < n; i++ {
		p.dist[i] = append([]int64(nil), a.cells[i]...)
		p.next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			p.next[i][j] = -1
			if p.dist[i][j] != Inf {
				p.next[i][j] = j
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := p.dist[i][k]
			if ik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				kj := p.dist[k][j]
				if kj == Inf {
					continue
				}
				if cand := ik + kj; cand < p.dist[i][j] {
					p.dist[i][j] = cand
					p.next[i][j] = p.next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if p.dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, p.ids[i])
		}
	}

	return p, nil
}

func (p *Paths) pair(from, to string) (int, int, error) {
	i, ok := p.index[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	j, ok := p.index[to]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	return i, j, nil
}

// Distance returns the shortest from→to distance.
func (p *Paths) Distance(from, to string) (int64, error) {
	i, j, err := p.pair(from, to)
	if err != nil {
		return 0, err
	}
	if p.dist[i][j] == Inf {
		return 0, fmt.Errorf("%w: %s to %s", ErrNoPath, from, to)
	}

	return p.dist[i][j], nil
}

// Path rebuilds the shortest from→to route by following next hops.
func (p *Paths) Path(from, to string) ([]string, int64, error) {
	d, err := p.Distance(from, to)
	if err != nil {
		return nil, 0, err
	}
	i, j, _ := p.pair(from, to)
	path := []string{p.ids[i]}
	for i != j {
		i = p.next[i][j]
		path = append(path, p.ids[i])
	}

	return path, d, nil
}
