package osm2paths

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/LdDl/osm2paths/paths"
)

// GeomFormat output geometry representation
type GeomFormat uint16

const (
	GEOM_WKT = GeomFormat(iota + 1)
	GEOM_GEOJSON
)

func (iotaIdx GeomFormat) String() string {
	return [...]string{"wkt", "geojson"}[iotaIdx-1]
}

// ParseGeomFormat returns geometry format by its name. Unknown names fall back to WKT
func ParseGeomFormat(name string) GeomFormat {
	if strings.ToLower(name) == "geojson" {
		return GEOM_GEOJSON
	}
	return GEOM_WKT
}

func (format GeomFormat) line(line orb.LineString) (string, error) {
	if format == GEOM_GEOJSON {
		return PrepareGeoJSONLinestring(line)
	}
	return PrepareWKTLinestring(line), nil
}

func (format GeomFormat) point(pt orb.Point) (string, error) {
	if format == GEOM_GEOJSON {
		return PrepareGeoJSONPoint(pt)
	}
	return PrepareWKTPoint(pt), nil
}

// ExportToCSV writes vertices and logical edges of the graph.
// E.g.: if file name is 'map.csv' then 'map_nodes.csv' and 'map_edges.csv' will be produced
func (graph *Graph) ExportToCSV(fname string, format GeomFormat) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameNodes := fnameParts[0] + "_nodes.csv"
	fnameEdges := fnameParts[0] + "_edges.csv"

	err := graph.exportNodesToCSV(fnameNodes, format)
	if err != nil {
		return errors.Wrap(err, "Can't export nodes")
	}

	err = graph.exportEdgesToCSV(fnameEdges, format)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}
	return nil
}

func (graph *Graph) exportNodesToCSV(fname string, format GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "osm_node_id", "longitude", "latitude", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, node := range graph.nodes {
		pt := node.Point()
		geomStr, err := format.point(pt)
		if err != nil {
			return errors.Wrap(err, "Can't prepare node geometry")
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", node.ID),
			fmt.Sprintf("%f", pt[0]),
			fmt.Sprintf("%f", pt[1]),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	return nil
}

func (graph *Graph) exportEdgesToCSV(fname string, format GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "source_node", "target_node", "osm_way_id", "source_osm_node_id", "target_osm_node_id", "length_meters", "merged", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i, edge := range graph.edges {
		source := graph.index[edge.Nodes[0].ID]
		target := graph.index[edge.Nodes[1].ID]
		geomStr, err := format.line(edge.Line())
		if err != nil {
			return errors.Wrap(err, "Can't prepare edge geometry")
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", source),
			fmt.Sprintf("%d", target),
			fmt.Sprintf("%d", edge.WayID),
			fmt.Sprintf("%d", edge.Nodes[0].ID),
			fmt.Sprintf("%d", edge.Nodes[1].ID),
			fmt.Sprintf("%f", edge.Length()),
			fmt.Sprintf("%t", edge.Merged()),
			edge.Name,
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

// ExportPathsToCSV writes found paths: one row per path in order of rank
func (graph *Graph) ExportPathsToCSV(fname string, found []paths.Path[int], format GeomFormat) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"rank", "cost", "length_meters", "vertices", "osm_node_ids", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for rank, path := range found {
		vertices := make([]string, len(path.Nodes))
		for i, idx := range path.Nodes {
			vertices[i] = fmt.Sprintf("%d", idx)
		}
		osmIDs := graph.PathNodeIDs(path)
		osmIDsStr := make([]string, len(osmIDs))
		for i, id := range osmIDs {
			osmIDsStr[i] = fmt.Sprintf("%d", id)
		}
		line := graph.PathLineString(path)
		geomStr, err := format.line(line)
		if err != nil {
			return errors.Wrap(err, "Can't prepare path geometry")
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", rank),
			fmt.Sprintf("%f", path.Cost),
			fmt.Sprintf("%f", getSphericalLength(line)),
			strings.Join(vertices, ","),
			strings.Join(osmIDsStr, ","),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write path")
		}
	}
	return nil
}
