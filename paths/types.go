package paths

import (
	"cmp"
	"math"
	"slices"

	"github.com/pkg/errors"
)

var (
	// ErrNegativeCycle negative weight cycle makes distances meaningless
	ErrNegativeCycle = errors.New("paths: negative cycle detected")
	// ErrNoPath target can't be reached from source
	ErrNoPath = errors.New("paths: no path found")
	// ErrNotSquare weight matrix is not n x n
	ErrNotSquare = errors.New("paths: weight matrix must be square")
	// ErrBadK number of requested paths is less than one
	ErrBadK = errors.New("paths: k must be positive")
)

// Arc outgoing edge of a vertex
type Arc[K cmp.Ordered] struct {
	To     K
	Weight float64
}

// Graph adjacency list: vertex -> outgoing arcs
type Graph[K cmp.Ordered] map[K][]Arc[K]

// Vertices returns every vertex which is either a key or a target of some arc, sorted
func (graph Graph[K]) Vertices() []K {
	seen := make(map[K]struct{}, len(graph))
	for from, arcs := range graph {
		seen[from] = struct{}{}
		for _, arc := range arcs {
			seen[arc.To] = struct{}{}
		}
	}
	vertices := make([]K, 0, len(seen))
	for v := range seen {
		vertices = append(vertices, v)
	}
	slices.Sort(vertices)
	return vertices
}

// Weight returns the lightest arc weight between two vertices
func (graph Graph[K]) Weight(from, to K) (float64, bool) {
	found := false
	best := math.Inf(1)
	for _, arc := range graph[from] {
		if arc.To == to && arc.Weight < best {
			best = arc.Weight
			found = true
		}
	}
	return best, found
}

// Cost sums arc weights along the sequence of vertices. Returns +Inf if some arc is missing
func (graph Graph[K]) Cost(nodes []K) float64 {
	total := 0.0
	for i := 1; i < len(nodes); i++ {
		w, ok := graph.Weight(nodes[i-1], nodes[i])
		if !ok {
			return math.Inf(1)
		}
		total += w
	}
	return total
}

// Path ordered vertices from source to target inclusive and its total cost
type Path[K cmp.Ordered] struct {
	Nodes []K
	Cost  float64
}

// NoPath returns path value for unreachable target: +Inf cost and no vertices
func NoPath[K cmp.Ordered]() Path[K] {
	return Path[K]{Nodes: nil, Cost: math.Inf(1)}
}

// Found reports whether path actually connects source and target
func (path Path[K]) Found() bool {
	return len(path.Nodes) > 0 && !math.IsInf(path.Cost, 1)
}

// Unzip splits paths into parallel sequences of vertices and costs
func Unzip[K cmp.Ordered](paths []Path[K]) ([][]K, []float64) {
	nodes := make([][]K, len(paths))
	costs := make([]float64, len(paths))
	for i, p := range paths {
		nodes[i] = p.Nodes
		costs[i] = p.Cost
	}
	return nodes, costs
}
