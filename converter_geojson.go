package osm2paths

import (
	"github.com/paulmach/orb"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/LdDl/osm2paths/paths"
)

func lineCoordinates(line orb.LineString) [][]float64 {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i][0], line[i][1]}
	}
	return pts2d
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line orb.LineString) (string, error) {
	b, err := geojson.NewLineStringGeometry(lineCoordinates(line)).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt orb.Point) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt[0], pt[1]}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// PrepareGeoJSONPaths returns feature collection with one LineString feature per found path.
// Every feature carries rank, cost and OSM identifiers of its vertices
func (graph *Graph) PrepareGeoJSONPaths(found []paths.Path[int]) ([]byte, error) {
	collection := geojson.NewFeatureCollection()
	for rank, path := range found {
		if !path.Found() {
			continue
		}
		feature := geojson.NewFeature(geojson.NewLineStringGeometry(lineCoordinates(graph.PathLineString(path))))
		feature.SetProperty("rank", rank)
		feature.SetProperty("cost", path.Cost)
		feature.SetProperty("osm_node_ids", graph.PathNodeIDs(path))
		collection.AddFeature(feature)
	}
	b, err := collection.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal paths")
	}
	return b, nil
}
