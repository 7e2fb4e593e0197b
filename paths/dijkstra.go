package paths

import (
	"cmp"
	"container/heap"
)

// step heap entry: accumulated cost, vertex and the entry it was reached from
type step[K cmp.Ordered] struct {
	cost float64
	node K
	prev *step[K]
}

// nodes unwinds the chain of steps into source -> node order
func (s *step[K]) nodes() []K {
	n := 0
	for cur := s; cur != nil; cur = cur.prev {
		n++
	}
	out := make([]K, n)
	for cur := s; cur != nil; cur = cur.prev {
		n--
		out[n] = cur.node
	}
	return out
}

type stepPQ[K cmp.Ordered] []*step[K]

func (pq stepPQ[K]) Len() int           { return len(pq) }
func (pq stepPQ[K]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq stepPQ[K]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *stepPQ[K]) Push(x any) {
	*pq = append(*pq, x.(*step[K]))
}

func (pq *stepPQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// Dijkstra returns the cheapest path from source to target.
// Weights are expected to be non-negative. Unreachable target gives NoPath().
//
// Every vertex is finalized at most once, on its first pop from the heap; ties are
// resolved by heap order. Search stops as soon as target is finalized.
//
// Complexity: O(E log V)
func Dijkstra[K cmp.Ordered](graph Graph[K], source, target K) Path[K] {
	seen := make(map[K]struct{})
	mins := map[K]float64{source: 0}
	pq := &stepPQ[K]{{cost: 0, node: source}}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*step[K])
		if _, ok := seen[cur.node]; ok {
			continue
		}
		seen[cur.node] = struct{}{}
		if cur.node == target {
			return Path[K]{Nodes: cur.nodes(), Cost: cur.cost}
		}
		for _, arc := range graph[cur.node] {
			if _, ok := seen[arc.To]; ok {
				continue
			}
			next := cur.cost + arc.Weight
			if prev, ok := mins[arc.To]; ok && next >= prev {
				continue
			}
			mins[arc.To] = next
			heap.Push(pq, &step[K]{cost: next, node: arc.To, prev: cur})
		}
	}
	return NoPath[K]()
}
