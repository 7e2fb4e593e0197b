package paths_test

import (
	"math/rand"

	"github.com/LdDl/osm2paths/paths"
)

// cityGraph undirected road-like graph with letter labels
func cityGraph() paths.Graph[string] {
	return paths.Graph[string]{
		"A": {{"B", 20}, {"G", 15}},
		"B": {{"A", 20}, {"C", 8}, {"D", 9}},
		"C": {{"B", 8}, {"D", 6}, {"E", 15}, {"H", 10}},
		"D": {{"B", 9}, {"C", 6}, {"E", 7}},
		"E": {{"C", 15}, {"D", 7}, {"F", 22}, {"G", 18}},
		"F": {{"E", 22}},
		"G": {{"A", 15}, {"E", 18}},
		"H": {{"C", 10}},
	}
}

// diamondGraph directed graph with several loopless routes from C to H
func diamondGraph() paths.Graph[string] {
	return paths.Graph[string]{
		"C": {{"D", 3}, {"E", 2}},
		"E": {{"D", 1}, {"F", 2}, {"G", 3}},
		"F": {{"H", 1}, {"G", 2}},
		"D": {{"F", 4}},
		"G": {{"H", 2}},
	}
}

// randomGraph directed graph on n vertices with integer weights in [1, maxWeight].
// No self loops and no parallel arcs
func randomGraph(seed int64, n, arcs, maxWeight int) paths.Graph[int] {
	r := rand.New(rand.NewSource(seed))
	graph := make(paths.Graph[int], n)
	exists := make(map[[2]int]struct{})
	for added := 0; added < arcs; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, ok := exists[[2]int{u, v}]; ok {
			continue
		}
		exists[[2]int{u, v}] = struct{}{}
		graph[u] = append(graph[u], paths.Arc[int]{To: v, Weight: float64(1 + r.Intn(maxWeight))})
		added++
	}
	return graph
}

// toMatrix dense weight matrix for graph on vertices 0..n-1
func toMatrix(graph paths.Graph[int], n int) [][]float64 {
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for from, arcs := range graph {
		for _, arc := range arcs {
			matrix[from][arc.To] = arc.Weight
		}
	}
	return matrix
}
