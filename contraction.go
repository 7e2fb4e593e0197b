package osm2paths

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/LdDl/osm2paths/paths"
)

// ContractedGraph contraction hierarchies prepared from Graph.
// Vertex labels are dense indices of the source graph
type ContractedGraph struct {
	graph ch.Graph
}

// Contract prepares contraction hierarchies for the graph
func (graph *Graph) Contract(logger *zap.Logger) (*ContractedGraph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	contracted := &ContractedGraph{graph: ch.Graph{}}
	for i := range graph.nodes {
		err := contracted.graph.CreateVertex(int64(i))
		if err != nil {
			return nil, errors.Wrap(err, "Can not create vertex")
		}
	}
	for source, arcs := range graph.adjacency {
		for _, arc := range arcs {
			err := contracted.graph.AddEdge(int64(source), int64(arc.To), arc.Weight)
			if err != nil {
				return nil, errors.Wrap(err, "Can not wrap Source and Target vertices as Edge")
			}
		}
	}
	st := time.Now()
	contracted.graph.PrepareContractionHierarchies()
	logger.Info("contraction hierarchies prepared", zap.Int("vertices", len(graph.nodes)), zap.Duration("elapsed", time.Since(st)))
	return contracted, nil
}

// ShortestPath answers point to point query using shortcuts. Unreachable target gives NoPath()
func (contracted *ContractedGraph) ShortestPath(source, target int) paths.Path[int] {
	cost, vertices := contracted.graph.ShortestPath(int64(source), int64(target))
	if cost < 0 || len(vertices) == 0 {
		return paths.NoPath[int]()
	}
	nodes := make([]int, len(vertices))
	for i, v := range vertices {
		nodes[i] = int(v)
	}
	return paths.Path[int]{Nodes: nodes, Cost: cost}
}

// ExportShortcutsToFile writes prepared shortcuts to CSV file
func (contracted *ContractedGraph) ExportShortcutsToFile(fname string) error {
	return errors.Wrap(contracted.graph.ExportShortcutsToFile(fname), "Can't export shortcuts")
}

// ExportVerticesToCSV writes position and importance of every vertex in hierarchies
func (contracted *ContractedGraph) ExportVerticesToCSV(fname string, graph *Graph, format GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	// 		vertex_id - int64, dense index of vertex
	// 		osm_node_id - int64, ID of OSM node
	// 		order_pos - int, Position of vertex in hierarchies (evaluted by library)
	// 		importance - int, Importance of vertex in graph (evaluted by library)
	//      geom - geometry (WKT or GeoJSON representation)
	err = writer.Write([]string{"vertex_id", "osm_node_id", "order_pos", "importance", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for i := range contracted.graph.Vertices {
		vertex := contracted.graph.Vertices[i]
		node, ok := graph.Node(int(vertex.Label))
		if !ok {
			return errors.Wrap(ErrUnknownNode, fmt.Sprintf("vertex %d", vertex.Label))
		}
		geomStr, err := format.point(node.Point())
		if err != nil {
			return errors.Wrap(err, "Can't prepare vertex geometry")
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", vertex.Label),
			fmt.Sprintf("%d", node.ID),
			fmt.Sprintf("%d", vertex.OrderPos()),
			fmt.Sprintf("%d", vertex.Importance()),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}
