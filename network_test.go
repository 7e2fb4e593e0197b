package osm2paths

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LdDl/osm2paths/paths"
)

func readCSV(t *testing.T, fname string) [][]string {
	t.Helper()
	file, err := os.Open(fname)
	require.NoError(t, err)
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	return records
}

func TestPrepareWKT(t *testing.T) {
	assert.Equal(t, "POINT(37.6 55.7)", PrepareWKTPoint(orb.Point{37.6, 55.7}))
	assert.Equal(t, "LINESTRING(1 2,3 4)", PrepareWKTLinestring(orb.LineString{{1, 2}, {3, 4}}))
}

func TestPrepareGeoJSON(t *testing.T) {
	point, err := PrepareGeoJSONPoint(orb.Point{37.6, 55.7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[37.6,55.7]}`, point)
	line, err := PrepareGeoJSONLinestring(orb.LineString{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[1,2],[3,4]]}`, line)

	// NaN can't be encoded as JSON number
	_, err = PrepareGeoJSONPoint(orb.Point{math.NaN(), 0})
	assert.Error(t, err)
}

func TestPrepareGeoJSONPaths(t *testing.T) {
	graph := sampleGraph(t)
	found, err := graph.KShortestPaths(0, 2, 2)
	require.NoError(t, err)
	found = append(found, paths.NoPath[int]())

	b, err := graph.PrepareGeoJSONPaths(found)
	require.NoError(t, err)

	var collection struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(b, &collection))
	assert.Equal(t, "FeatureCollection", collection.Type)
	require.Len(t, collection.Features, 2)
	assert.Len(t, collection.Features[0].Geometry.Coordinates, 3)
	assert.Equal(t, []interface{}{1.0, 3.0, 4.0}, collection.Features[0].Properties["osm_node_ids"])
	assert.Equal(t, 1.0, collection.Features[1].Properties["rank"])
}

func TestExportToCSV(t *testing.T) {
	graph := sampleGraph(t)
	dir := t.TempDir()
	err := graph.ExportToCSV(filepath.Join(dir, "map.csv"), GEOM_WKT)
	require.NoError(t, err)

	nodes := readCSV(t, filepath.Join(dir, "map_nodes.csv"))
	require.Len(t, nodes, 1+graph.NodeCount())
	assert.Equal(t, []string{"id", "osm_node_id", "longitude", "latitude", "geom"}, nodes[0])
	assert.Equal(t, []string{"0", "1", "37.600000", "55.700000"}, nodes[1][:4])
	assert.True(t, strings.HasPrefix(nodes[1][4], "POINT(37.6"), nodes[1][4])

	edges := readCSV(t, filepath.Join(dir, "map_edges.csv"))
	require.Len(t, edges, 1+graph.EdgeCount())
	assert.Equal(t, []string{"1", "1", "2", "100", "3", "4"}, edges[2][:6])
	assert.Equal(t, "false", edges[2][7])
	assert.Equal(t, "Main", edges[2][8])
	assert.Equal(t, "Third", edges[4][8])
}

func TestExportPathsToCSV(t *testing.T) {
	graph := sampleGraph(t)
	path, err := graph.ShortestPath(0, 2, ALGORITHM_DIJKSTRA)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "paths.csv")
	err = graph.ExportPathsToCSV(fname, []paths.Path[int]{path}, GEOM_GEOJSON)
	require.NoError(t, err)

	records := readCSV(t, fname)
	require.Len(t, records, 2)
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "0,1,2", records[1][3])
	assert.Equal(t, "1,3,4", records[1][4])
	assert.Contains(t, records[1][5], `"LineString"`)
}

func TestExportContracted(t *testing.T) {
	graph := sampleGraph(t)
	contracted, err := graph.Contract(nil)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "map_vertices.csv")
	err = contracted.ExportVerticesToCSV(fname, graph, GEOM_WKT)
	require.NoError(t, err)
	records := readCSV(t, fname)
	require.Len(t, records, 1+graph.NodeCount())
	assert.Equal(t, []string{"vertex_id", "osm_node_id", "order_pos", "importance", "geom"}, records[0])

	err = contracted.ExportShortcutsToFile(filepath.Join(t.TempDir(), "missing", "map_shortcuts.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't export shortcuts")
}
