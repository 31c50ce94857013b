package problems

import (
	"fmt"

	"github.com/katalvlaran/lvldsa/queue"
)

var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// NumIslands counts 4-connected regions of land (cells >= 1) in grid.
//
// Each unseen land cell starts a BFS that marks its whole region.
// Time: O(W·H). Memory: O(W·H) for the seen flags.
func NumIslands(grid [][]int) (int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	seen := make([]bool, w*h)
	q := queue.New[int](w)
	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y][x] < 1 || seen[y*w+x] {
				continue
			}
			count++
			seen[y*w+x] = true
			q.Enqueue(y*w + x)
			for q.Len() > 0 {
				u, _ := q.Dequeue()
				ux, uy := u%w, u/w
				for _, d := range offsets4 {
					vx, vy := ux+d[0], uy+d[1]
					if vx < 0 || vy < 0 || vx >= w || vy >= h || grid[vy][vx] < 1 {
						continue
					}
					if v := vy*w + vx; !seen[v] {
						seen[v] = true
						q.Enqueue(v)
					}
				}
			}
		}
	}

	return count, nil
}
