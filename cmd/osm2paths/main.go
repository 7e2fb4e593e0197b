package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/LdDl/osm2paths"
	"github.com/LdDl/osm2paths/paths"
)

var (
	osmFileName   = flag.String("file", "my_graph.osm", "Filename of *.osm (XML) or *.osm.pbf file")
	algorithm     = flag.String("algo", "dijkstra", "Path finding algorithm. Expected values: dijkstra / bellman-ford / floyd-warshall / yen / ch")
	sourceID      = flag.Int64("source", 0, "ID of source OSM node")
	targetID      = flag.Int64("target", 0, "ID of target OSM node")
	kPaths        = flag.Int("k", 3, "Number of paths for 'yen' algorithm")
	highways      = flag.String("highways", "", "Set of needed 'highway' tag values (separated by commas). Every way is used if empty")
	directed      = flag.Bool("directed", false, "Keep edges in way traversal order only")
	out           = flag.String("out", "", "Filename of 'Comma-Separated Values' (CSV) formatted file for found paths. Paths are printed to stdout if empty")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	edgesOut      = flag.String("edges", "", "Filename of CSV file for graph itself. E.g.: if file name is 'map.csv' then 'map_nodes.csv' and 'map_edges.csv' will be produced")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies and export shortcuts next to -edges output")
	verbose       = flag.Bool("verbose", false, "Log build phases")
)

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("osm2paths failed", zap.Error(err))
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	highwayTypes, err := osm2paths.ParseHighways(*highways)
	if err != nil {
		return errors.Wrap(err, "Bad -highways flag")
	}
	builder := osm2paths.NewBuilder(
		osm2paths.WithLogger(logger),
		osm2paths.WithDirected(*directed),
		osm2paths.WithHighways(highwayTypes...),
	)
	graph, err := builder.BuildFromFile(*osmFileName)
	if err != nil {
		return errors.Wrap(err, "Can't build graph")
	}
	logger.Info("graph is ready", zap.Int("vertices", graph.NodeCount()), zap.Int("edges", graph.EdgeCount()))

	format := osm2paths.ParseGeomFormat(*geomFormat)
	fnamePart := strings.Split(*edgesOut, ".csv")
	if *edgesOut != "" {
		err = graph.ExportToCSV(*edgesOut, format)
		if err != nil {
			return errors.Wrap(err, "Can't export graph")
		}
	}

	var contracted *osm2paths.ContractedGraph
	if *doContraction || strings.ToLower(*algorithm) == "ch" {
		contracted, err = graph.Contract(logger)
		if err != nil {
			return errors.Wrap(err, "Can't contract graph")
		}
		if *edgesOut != "" {
			err = contracted.ExportVerticesToCSV(fnamePart[0]+"_vertices.csv", graph, format)
			if err != nil {
				return errors.Wrap(err, "Can't export vertices")
			}
			err = contracted.ExportShortcutsToFile(fnamePart[0] + "_shortcuts.csv")
			if err != nil {
				return errors.Wrap(err, "Can't export shortcuts")
			}
		}
	}

	if *sourceID == 0 && *targetID == 0 {
		return nil
	}
	source, ok := graph.IndexOf(osm.NodeID(*sourceID))
	if !ok {
		return errors.Wrap(osm2paths.ErrUnknownNode, fmt.Sprintf("OSM node %d", *sourceID))
	}
	target, ok := graph.IndexOf(osm.NodeID(*targetID))
	if !ok {
		return errors.Wrap(osm2paths.ErrUnknownNode, fmt.Sprintf("OSM node %d", *targetID))
	}

	found, err := findPaths(graph, contracted, source, target)
	if err != nil {
		return err
	}
	if *out != "" {
		return graph.ExportPathsToCSV(*out, found, format)
	}
	if format == osm2paths.GEOM_GEOJSON {
		b, err := graph.PrepareGeoJSONPaths(found)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}
	for rank, path := range found {
		fmt.Printf("%d\t%f\t%v\n", rank, path.Cost, graph.PathNodeIDs(path))
	}
	return nil
}

func findPaths(graph *osm2paths.Graph, contracted *osm2paths.ContractedGraph, source, target int) ([]paths.Path[int], error) {
	switch strings.ToLower(*algorithm) {
	case "floyd-warshall", "floyd_warshall":
		table, err := graph.AllPairsShortestPath()
		if err != nil {
			return nil, err
		}
		path := osm2paths.PathBetween(table, source, target)
		if !path.Found() {
			return nil, errors.Wrap(paths.ErrNoPath, fmt.Sprintf("%d -> %d", *sourceID, *targetID))
		}
		return []paths.Path[int]{path}, nil
	case "yen":
		found, err := graph.KShortestPaths(source, target, *kPaths)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, errors.Wrap(paths.ErrNoPath, fmt.Sprintf("%d -> %d", *sourceID, *targetID))
		}
		return found, nil
	case "ch":
		path := contracted.ShortestPath(source, target)
		if !path.Found() {
			return nil, errors.Wrap(paths.ErrNoPath, fmt.Sprintf("%d -> %d", *sourceID, *targetID))
		}
		return []paths.Path[int]{path}, nil
	default:
		algo, err := osm2paths.ParseAlgorithm(*algorithm)
		if err != nil {
			return nil, err
		}
		path, err := graph.ShortestPath(source, target, algo)
		if err != nil {
			return nil, err
		}
		return []paths.Path[int]{path}, nil
	}
}
