package paths

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// entry cell of a round matrix.
// via is the round which introduced the last improvement: 0 means direct edge,
// m > 0 means the path goes through vertex m-1
type entry struct {
	weight float64
	via    int
}

// Table all pairs shortest paths together with every intermediate round.
// Round 0 is the normalized input, round k allows intermediate vertices 0..k-1
type Table struct {
	n      int
	rounds [][]entry
}

// FloydWarshall computes all pairs shortest paths for the weight matrix.
// Zero off-diagonal cells mean "no edge"; the diagonal is forced to zero.
// Returns ErrNegativeCycle as soon as some round produces a negative diagonal cell.
//
// All n+1 rounds are retained for path reconstruction: O(n^3) memory, O(n^3) time.
func FloydWarshall(matrix [][]float64) (*Table, error) {
	n := len(matrix)
	initial := make([]entry, n*n)
	for i := 0; i < n; i++ {
		if len(matrix[i]) != n {
			return nil, errors.Wrap(ErrNotSquare, fmt.Sprintf("row %d has %d columns, expected %d", i, len(matrix[i]), n))
		}
		for j := 0; j < n; j++ {
			w := matrix[i][j]
			switch {
			case i == j:
				w = 0
			case w == 0:
				w = math.Inf(1)
			}
			initial[i*n+j] = entry{weight: w}
		}
	}

	table := &Table{n: n, rounds: make([][]entry, 1, n+1)}
	table.rounds[0] = initial
	for k := 0; k < n; k++ {
		prev := table.rounds[k]
		cur := make([]entry, n*n)
		copy(cur, prev)
		for i := 0; i < n; i++ {
			ik := prev[i*n+k].weight
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := prev[k*n+j].weight
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < cur[i*n+j].weight {
					cur[i*n+j] = entry{weight: cand, via: k + 1}
				}
			}
		}
		for i := 0; i < n; i++ {
			if cur[i*n+i].weight < 0 {
				return nil, errors.Wrap(ErrNegativeCycle, fmt.Sprintf("vertex %d after round %d", i, k+1))
			}
		}
		table.rounds = append(table.rounds, cur)
	}
	return table, nil
}

// Size returns number of vertices
func (table *Table) Size() int {
	return table.n
}

// Distance returns shortest distance between two vertices, +Inf if unreachable or out of range
func (table *Table) Distance(source, target int) float64 {
	if !table.contains(source) || !table.contains(target) {
		return math.Inf(1)
	}
	return table.rounds[table.n][source*table.n+target].weight
}

func (table *Table) contains(v int) bool {
	return v >= 0 && v < table.n
}

// PathBetween rebuilds shortest path from the retained rounds.
// Unreachable or out of range vertices give NoPath()
func (table *Table) PathBetween(source, target int) Path[int] {
	dist := table.Distance(source, target)
	if math.IsInf(dist, 1) {
		return NoPath[int]()
	}
	if source == target {
		return Path[int]{Nodes: []int{source}, Cost: 0}
	}

	type segment struct {
		round, from, to int
	}
	n := table.n
	nodes := []int{source}
	stack := []segment{{round: table.rounds[n][source*n+target].via, from: source, to: target}}
	for len(stack) > 0 {
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.round == 0 {
			nodes = append(nodes, seg.to)
			continue
		}
		k := seg.round - 1
		matrix := table.rounds[seg.round]
		// Right half first so the left half is unwound first
		stack = append(stack,
			segment{round: matrix[k*n+seg.to].via, from: k, to: seg.to},
			segment{round: matrix[seg.from*n+k].via, from: seg.from, to: k},
		)
	}
	return Path[int]{Nodes: nodes, Cost: dist}
}
