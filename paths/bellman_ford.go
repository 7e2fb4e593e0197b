package paths

import (
	"cmp"
	"math"
	"slices"
)

type relaxEdge[K cmp.Ordered] struct {
	from, to K
	weight   float64
}

// BellmanFord returns the cheapest path from source to target, tolerating negative weights.
// If a negative cycle is reachable from source, ErrNegativeCycle is returned together with NoPath().
// Unreachable target gives NoPath() and nil error.
//
// Complexity: O(V*E)
func BellmanFord[K cmp.Ordered](graph Graph[K], source, target K) (Path[K], error) {
	vertices := graph.Vertices()
	if _, ok := slices.BinarySearch(vertices, source); !ok {
		vertices = append(vertices, source)
	}

	edges := make([]relaxEdge[K], 0, len(graph))
	for _, from := range vertices {
		for _, arc := range graph[from] {
			edges = append(edges, relaxEdge[K]{from: from, to: arc.To, weight: arc.Weight})
		}
	}

	dist := make(map[K]float64, len(vertices))
	prev := make(map[K]K, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	relax := func() bool {
		changed := false
		for _, e := range edges {
			if math.IsInf(dist[e.from], 1) {
				continue
			}
			if alt := dist[e.from] + e.weight; alt < dist[e.to] {
				dist[e.to] = alt
				prev[e.to] = e.from
				changed = true
			}
		}
		return changed
	}

	for i := 0; i < len(vertices)-1; i++ {
		if !relax() {
			break
		}
	}
	// One more pass: anything that still improves sits on (or behind) a negative cycle
	if relax() {
		return NoPath[K](), ErrNegativeCycle
	}

	if d, ok := dist[target]; !ok || math.IsInf(d, 1) {
		return NoPath[K](), nil
	}
	nodes := []K{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)
	return Path[K]{Nodes: nodes, Cost: dist[target]}, nil
}
