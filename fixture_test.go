package osm2paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cycle 1-3-4-6-1 with intermediate nodes 2, 5, 7, dangling spur 3-8,
// closed way around 9 and single node way.
const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="hand">
 <bounds minlat="55.699" minlon="37.599" maxlat="55.702" maxlon="37.604"/>
 <node id="1" lat="55.700" lon="37.600"/>
 <node id="2" lat="55.700" lon="37.601"/>
 <node id="3" lat="55.700" lon="37.602"/>
 <node id="4" lat="55.701" lon="37.602"/>
 <node id="5" lat="55.7015" lon="37.601"/>
 <node id="6" lat="55.701" lon="37.600"/>
 <node id="7" lat="55.7005" lon="37.5995"/>
 <node id="8" lat="55.6995" lon="37.603"/>
 <node id="9" lat="55.7017" lon="37.6012"/>
 <way id="100">
  <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/>
  <tag k="highway" v="residential"/>
  <tag k="name" v="Main"/>
 </way>
 <way id="101">
  <nd ref="4"/><nd ref="5"/><nd ref="6"/>
  <tag k="name" v="Second"/>
 </way>
 <way id="102">
  <nd ref="1"/><nd ref="7"/><nd ref="6"/>
  <tag k="name" v="Whatever"/>
  <tag k="addr:street" v="Third"/>
 </way>
 <way id="103">
  <nd ref="3"/><nd ref="8"/>
 </way>
 <way id="104">
  <nd ref="5"/><nd ref="9"/><nd ref="4"/><nd ref="5"/>
 </way>
 <way id="105">
  <nd ref="2"/>
 </way>
</osm>`

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := ReadDocument(strings.NewReader(sampleOSM))
	require.NoError(t, err)
	return doc
}

func sampleGraph(t *testing.T, options ...func(*Builder)) *Graph {
	t.Helper()
	graph, err := BuildGraph(sampleDocument(t), options...)
	require.NoError(t, err)
	return graph
}

// distance between two OSM points given in degrees
func distance(lat1, lon1, lat2, lon2 float64) float64 {
	return GreatCircleDistance(degreesToRadians(lat1), degreesToRadians(lon1), degreesToRadians(lat2), degreesToRadians(lon2))
}

var (
	// 1-2-3
	sampleLength13 = distance(55.700, 37.600, 55.700, 37.601) + distance(55.700, 37.601, 55.700, 37.602)
	// 3-4
	sampleLength34 = distance(55.700, 37.602, 55.701, 37.602)
	// 4-5-6
	sampleLength46 = distance(55.701, 37.602, 55.7015, 37.601) + distance(55.7015, 37.601, 55.701, 37.600)
	// 1-7-6
	sampleLength16 = distance(55.700, 37.600, 55.7005, 37.5995) + distance(55.7005, 37.5995, 55.701, 37.600)
)
