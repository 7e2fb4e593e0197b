package osm2paths

import (
	"fmt"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"

	"github.com/LdDl/osm2paths/paths"
)

// Algorithm single pair shortest path algorithm
type Algorithm uint16

const (
	ALGORITHM_DIJKSTRA = Algorithm(iota + 1)
	ALGORITHM_BELLMAN_FORD
)

func (iotaIdx Algorithm) String() string {
	return [...]string{"dijkstra", "bellman-ford"}[iotaIdx-1]
}

// ParseAlgorithm returns algorithm by its name
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "dijkstra":
		return ALGORITHM_DIJKSTRA, nil
	case "bellman-ford", "bellmanford":
		return ALGORITHM_BELLMAN_FORD, nil
	default:
		return 0, errors.Wrap(ErrUnknownAlgorithm, fmt.Sprintf("'%s'", name))
	}
}

func (graph *Graph) checkVertices(vertices ...int) error {
	for _, v := range vertices {
		if _, ok := graph.Node(v); !ok {
			return errors.Wrap(ErrUnknownNode, fmt.Sprintf("index %d", v))
		}
	}
	return nil
}

// ShortestPath finds path between two vertices (dense indices).
//
// Unreachable target is reported as NoPath value together with wrapped paths.ErrNoPath;
// negative cycle as paths.ErrNegativeCycle
func (graph *Graph) ShortestPath(source, target int, algorithm Algorithm) (paths.Path[int], error) {
	if err := graph.checkVertices(source, target); err != nil {
		return paths.NoPath[int](), err
	}
	var path paths.Path[int]
	switch algorithm {
	case ALGORITHM_DIJKSTRA:
		path = paths.Dijkstra(graph.adjacency, source, target)
	case ALGORITHM_BELLMAN_FORD:
		var err error
		path, err = paths.BellmanFord(graph.adjacency, source, target)
		if err != nil {
			return path, errors.Wrap(err, "Can't find path with Bellman-Ford")
		}
	default:
		return paths.NoPath[int](), errors.Wrap(ErrUnknownAlgorithm, fmt.Sprintf("%d", algorithm))
	}
	if !path.Found() {
		return path, errors.Wrap(paths.ErrNoPath, fmt.Sprintf("%d -> %d", source, target))
	}
	return path, nil
}

// ShortestPathByID finds path between two OSM nodes
func (graph *Graph) ShortestPathByID(source, target osm.NodeID, algorithm Algorithm) (paths.Path[int], error) {
	sourceIdx, ok := graph.IndexOf(source)
	if !ok {
		return paths.NoPath[int](), errors.Wrap(ErrUnknownNode, fmt.Sprintf("OSM node %d", source))
	}
	targetIdx, ok := graph.IndexOf(target)
	if !ok {
		return paths.NoPath[int](), errors.Wrap(ErrUnknownNode, fmt.Sprintf("OSM node %d", target))
	}
	return graph.ShortestPath(sourceIdx, targetIdx, algorithm)
}

// AllPairsShortestPath runs Floyd-Warshall over the weight matrix
func (graph *Graph) AllPairsShortestPath() (*paths.Table, error) {
	table, err := paths.FloydWarshall(graph.matrix)
	if err != nil {
		return nil, errors.Wrap(err, "Can't compute all pairs shortest paths")
	}
	return table, nil
}

// PathBetween rebuilds path between two vertices from all pairs table
func PathBetween(table *paths.Table, source, target int) paths.Path[int] {
	if table == nil {
		return paths.NoPath[int]()
	}
	return table.PathBetween(source, target)
}

// KShortestPaths returns up to k loopless paths in order of non-decreasing cost
func (graph *Graph) KShortestPaths(source, target, k int) ([]paths.Path[int], error) {
	if err := graph.checkVertices(source, target); err != nil {
		return nil, err
	}
	found, err := paths.Yen(graph.adjacency, source, target, k)
	if err != nil {
		return nil, errors.Wrap(err, "Can't find k shortest paths")
	}
	return found, nil
}
