package osm2paths

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node representation of OSM node. Coordinates are kept in radians
type Node struct {
	ID  osm.NodeID
	Lon float64
	Lat float64
}

// nodeFromOSM converts OSM node (degrees) into Node (radians)
func nodeFromOSM(node *osm.Node) Node {
	return Node{
		ID:  node.ID,
		Lon: degreesToRadians(node.Lon),
		Lat: degreesToRadians(node.Lat),
	}
}

// Equal reports whether two nodes are the same OSM node. Coordinates are ignored
func (node Node) Equal(other Node) bool {
	return node.ID == other.ID
}

// Point returns node as orb.Point (degrees)
func (node Node) Point() orb.Point {
	return orb.Point{radiansTodegrees(node.Lon), radiansTodegrees(node.Lat)}
}

// DistanceTo returns great circle distance to other node (meters)
func (node Node) DistanceTo(other Node) float64 {
	return GreatCircleDistance(node.Lat, node.Lon, other.Lat, other.Lon)
}

// String returns pretty printed value for Node
func (node Node) String() string {
	pt := node.Point()
	return fmt.Sprintf("ID: %d | Lon: %f | Lat: %f", node.ID, pt.Lon(), pt.Lat())
}
