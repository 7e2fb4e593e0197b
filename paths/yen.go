package paths

import (
	"cmp"
	"slices"
)

// Yen returns up to k shortest loopless paths from source to target in order of
// non-decreasing cost. Fewer than k paths are returned when the graph has no more
// loopless alternatives; none at all if target is unreachable.
//
// Candidates are kept in a pool across iterations; every iteration accepts the cheapest
// one (fewest vertices on ties) and removes it from the pool.
//
// Complexity: O(k*V*E*log V)
func Yen[K cmp.Ordered](graph Graph[K], source, target K, k int) ([]Path[K], error) {
	if k < 1 {
		return nil, ErrBadK
	}
	first := Dijkstra(graph, source, target)
	if !first.Found() {
		return nil, nil
	}
	accepted := []Path[K]{first}
	candidates := []Path[K]{}

	known := func(nodes []K) bool {
		for _, p := range accepted {
			if slices.Equal(p.Nodes, nodes) {
				return true
			}
		}
		for _, p := range candidates {
			if slices.Equal(p.Nodes, nodes) {
				return true
			}
		}
		return false
	}

	for len(accepted) < k {
		last := accepted[len(accepted)-1]
		for i := 0; i < len(last.Nodes)-1; i++ {
			spur := last.Nodes[i]
			root := last.Nodes[:i+1]

			removed := make(map[K]struct{})
			for _, p := range accepted {
				if len(p.Nodes) > i+1 && slices.Equal(p.Nodes[:i+1], root) {
					removed[p.Nodes[i+1]] = struct{}{}
				}
			}
			blocked := make(map[K]struct{}, i)
			for _, v := range root[:i] {
				blocked[v] = struct{}{}
			}

			spurPath := Dijkstra(pruneGraph(graph, spur, removed, blocked), spur, target)
			if !spurPath.Found() {
				continue
			}
			total := make([]K, 0, i+len(spurPath.Nodes))
			total = append(total, root[:i]...)
			total = append(total, spurPath.Nodes...)
			if known(total) {
				continue
			}
			candidates = append(candidates, Path[K]{Nodes: total, Cost: graph.Cost(total)})
		}
		if len(candidates) == 0 {
			break
		}
		best := 0
		for j := 1; j < len(candidates); j++ {
			c, b := candidates[j], candidates[best]
			if c.Cost < b.Cost || (c.Cost == b.Cost && len(c.Nodes) < len(b.Nodes)) {
				best = j
			}
		}
		accepted = append(accepted, candidates[best])
		candidates = slices.Delete(candidates, best, best+1)
	}
	return accepted, nil
}

// pruneGraph returns working copy of graph without arcs spur -> removed and without
// outgoing arcs of blocked vertices. Untouched adjacency slices are shared with graph
func pruneGraph[K cmp.Ordered](graph Graph[K], spur K, removed, blocked map[K]struct{}) Graph[K] {
	pruned := make(Graph[K], len(graph))
	for from, arcs := range graph {
		if _, ok := blocked[from]; ok {
			continue
		}
		if from != spur || len(removed) == 0 {
			pruned[from] = arcs
			continue
		}
		kept := make([]Arc[K], 0, len(arcs))
		for _, arc := range arcs {
			if _, ok := removed[arc.To]; !ok {
				kept = append(kept, arc)
			}
		}
		pruned[from] = kept
	}
	return pruned
}
