package osm2paths

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/LdDl/osm2paths/paths"
)

// Graph road graph built from OSM document. Read-only after construction
type Graph struct {
	// Bounds bounding box declared by the document
	Bounds osm.Bounds
	// Extent running min/max of all node coordinates in the document (degrees)
	Extent orb.Bound

	nodes     []Node
	edges     []Edge
	index     map[osm.NodeID]int
	matrix    [][]float64
	adjacency paths.Graph[int]
	directed  bool
}

// newGraph assembles weight matrix and adjacency list for logical edges.
// nodes must be in order of dense index.
//
// Note: panics with InvariantViolation if some node ends up without neighbours
func newGraph(nodes []Node, edges []Edge, directed bool) *Graph {
	n := len(nodes)
	graph := &Graph{
		nodes:    nodes,
		edges:    edges,
		index:    make(map[osm.NodeID]int, n),
		matrix:   make([][]float64, n),
		directed: directed,
	}
	for i, node := range nodes {
		graph.index[node.ID] = i
	}
	for i := range graph.matrix {
		graph.matrix[i] = make([]float64, n)
	}
	for _, edge := range edges {
		source := graph.index[edge.Nodes[0].ID]
		target := graph.index[edge.Nodes[1].ID]
		weight := edge.Length()
		graph.setWeight(source, target, weight)
		if !directed {
			graph.setWeight(target, source, weight)
		}
	}
	graph.adjacency = adjacencyFromMatrix(graph.matrix)
	return graph
}

// zeroLengthWeight stands for an edge between distinct nodes sharing the same position,
// since 0 in the matrix means "no edge"
var zeroLengthWeight = math.Nextafter(0, 1)

// setWeight keeps the lightest of parallel edges
func (graph *Graph) setWeight(source, target int, weight float64) {
	if weight <= 0 {
		weight = zeroLengthWeight
	}
	current := graph.matrix[source][target]
	if current == 0 || weight < current {
		graph.matrix[source][target] = weight
	}
}

// adjacencyFromMatrix collects non-zero cells of every row
func adjacencyFromMatrix(matrix [][]float64) paths.Graph[int] {
	n := len(matrix)
	adjacency := make(paths.Graph[int], n)
	incoming := make([]int, n)
	for i := 0; i < n; i++ {
		arcs := []paths.Arc[int]{}
		for j := 0; j < n; j++ {
			if matrix[i][j] != 0 {
				arcs = append(arcs, paths.Arc[int]{To: j, Weight: matrix[i][j]})
				incoming[j]++
			}
		}
		adjacency[i] = arcs
	}
	for i := 0; i < n; i++ {
		if len(adjacency[i]) == 0 && incoming[i] == 0 {
			panic(InvariantViolation{
				Reason: fmt.Sprintf("vertex %d has no neighbours after cleaning", i),
			})
		}
	}
	return adjacency
}

// NodeCount returns number of vertices
func (graph *Graph) NodeCount() int {
	return len(graph.nodes)
}

// EdgeCount returns number of logical edges
func (graph *Graph) EdgeCount() int {
	return len(graph.edges)
}

// Directed reports whether edges were kept in way traversal order only
func (graph *Graph) Directed() bool {
	return graph.directed
}

// Node returns node by its dense index
func (graph *Graph) Node(idx int) (Node, bool) {
	if idx < 0 || idx >= len(graph.nodes) {
		return Node{}, false
	}
	return graph.nodes[idx], true
}

// IndexOf returns dense index of OSM node
func (graph *Graph) IndexOf(id osm.NodeID) (int, bool) {
	idx, ok := graph.index[id]
	return idx, ok
}

// Edges returns copy of logical edges
func (graph *Graph) Edges() []Edge {
	edges := make([]Edge, len(graph.edges))
	copy(edges, graph.edges)
	return edges
}

// Matrix returns copy of weight matrix. 0 means "no edge".
// Edges of zero length are stored as the smallest positive float64
func (graph *Graph) Matrix() [][]float64 {
	matrix := make([][]float64, len(graph.matrix))
	for i, row := range graph.matrix {
		matrix[i] = make([]float64, len(row))
		copy(matrix[i], row)
	}
	return matrix
}

// Weight returns weight of edge between two vertices, 0 if there is none
func (graph *Graph) Weight(source, target int) float64 {
	if _, ok := graph.Node(source); !ok {
		return 0
	}
	if _, ok := graph.Node(target); !ok {
		return 0
	}
	return graph.matrix[source][target]
}

// Adjacency returns adjacency list view of the graph.
// It is shared between callers and must not be modified
func (graph *Graph) Adjacency() paths.Graph[int] {
	return graph.adjacency
}

// BoundsArray returns declared bounds as [[minlat, minlon], [maxlat, maxlon]]
func (graph *Graph) BoundsArray() [2][2]float64 {
	return [2][2]float64{
		{graph.Bounds.MinLat, graph.Bounds.MinLon},
		{graph.Bounds.MaxLat, graph.Bounds.MaxLon},
	}
}

// EdgeLines returns geometry of every logical edge (degrees)
func (graph *Graph) EdgeLines() []orb.LineString {
	lines := make([]orb.LineString, len(graph.edges))
	for i, edge := range graph.edges {
		lines[i] = edge.Line()
	}
	return lines
}

// PathLineString returns geometry of path (degrees)
func (graph *Graph) PathLineString(path paths.Path[int]) orb.LineString {
	line := make(orb.LineString, 0, len(path.Nodes))
	for _, idx := range path.Nodes {
		if node, ok := graph.Node(idx); ok {
			line = append(line, node.Point())
		}
	}
	return line
}

// PathNodeIDs returns OSM identifiers of path vertices
func (graph *Graph) PathNodeIDs(path paths.Path[int]) []osm.NodeID {
	ids := make([]osm.NodeID, 0, len(path.Nodes))
	for _, idx := range path.Nodes {
		if node, ok := graph.Node(idx); ok {
			ids = append(ids, node.ID)
		}
	}
	return ids
}
