package osm2paths

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Edge representation of road piece between two nodes.
// It is either a single segment of OSM way or a merged chain of segments
type Edge struct {
	WayID osm.WayID
	Nodes [2]Node
	Name  string
	// mergedLength is set for merged chains and overrides geodesic length of endpoints
	mergedLength *float64
}

// Equal reports whether edges come from the same way and have the same endpoints
func (edge Edge) Equal(other Edge) bool {
	return edge.WayID == other.WayID && edge.Nodes[0].Equal(other.Nodes[0]) && edge.Nodes[1].Equal(other.Nodes[1])
}

// Merged reports whether edge has been built from chain of segments
func (edge Edge) Merged() bool {
	return edge.mergedLength != nil
}

// Length returns length of edge (meters)
func (edge Edge) Length() float64 {
	if edge.mergedLength != nil {
		return *edge.mergedLength
	}
	return edge.Nodes[0].DistanceTo(edge.Nodes[1])
}

// MergeWith returns new edge which goes from start of edge to the end of other.
//
// Note: panics with InvariantViolation if end of edge is not the start of other
func (edge Edge) MergeWith(other Edge) Edge {
	if edge.Equal(other) {
		return edge
	}
	if !edge.Nodes[1].Equal(other.Nodes[0]) {
		panic(InvariantViolation{
			Reason: fmt.Sprintf("can't merge edge %d->%d with edge %d->%d", edge.Nodes[0].ID, edge.Nodes[1].ID, other.Nodes[0].ID, other.Nodes[1].ID),
		})
	}
	length := edge.Length() + other.Length()
	return Edge{
		WayID:        edge.WayID,
		Nodes:        [2]Node{edge.Nodes[0], other.Nodes[1]},
		Name:         edge.Name,
		mergedLength: &length,
	}
}

// Line returns straight line between endpoints of edge (degrees)
func (edge Edge) Line() orb.LineString {
	return orb.LineString{edge.Nodes[0].Point(), edge.Nodes[1].Point()}
}

// EdgeGroup edges of single OSM way in traversal order
type EdgeGroup []Edge

// Merge collapses group into single edge
func (group EdgeGroup) Merge() Edge {
	merged := group[0]
	for _, edge := range group {
		merged = merged.MergeWith(edge)
	}
	return merged
}
