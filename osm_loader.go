package osm2paths

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// prepareNodes converts OSM nodes and returns running extent of their coordinates (degrees)
func prepareNodes(osmNodes osm.Nodes) (map[osm.NodeID]Node, orb.Bound) {
	nodes := make(map[osm.NodeID]Node, len(osmNodes))
	extent := orb.Bound{}
	for i, osmNode := range osmNodes {
		pt := orb.Point{osmNode.Lon, osmNode.Lat}
		if i == 0 {
			extent = pt.Bound()
		} else {
			extent = extent.Extend(pt)
		}
		nodes[osmNode.ID] = nodeFromOSM(osmNode)
	}
	return nodes, extent
}

// wayName returns street name of the way: 'addr:street' first, then 'name'
func wayName(tags osm.Tags) string {
	if name := tags.Find("addr:street"); name != "" {
		return name
	}
	return tags.Find("name")
}

// prepareEdgeGroups splits ways into segments and counts node references.
// Ways with less than two nodes, closed ways and ways rejected by filter are skipped
func prepareEdgeGroups(ways osm.Ways, nodes map[osm.NodeID]Node, filter wayFilter) ([]EdgeGroup, map[osm.NodeID]int, error) {
	groups := make([]EdgeGroup, 0, len(ways))
	useCount := make(map[osm.NodeID]int)
	for _, way := range ways {
		if !filter.accepts(way) {
			continue
		}
		if len(way.Nodes) < 2 {
			continue
		}
		if way.Nodes[0].ID == way.Nodes[len(way.Nodes)-1].ID {
			continue
		}
		for _, wayNode := range way.Nodes {
			useCount[wayNode.ID]++
		}
		name := wayName(way.Tags)
		group := make(EdgeGroup, 0, len(way.Nodes)-1)
		for i := 1; i < len(way.Nodes); i++ {
			source, ok := nodes[way.Nodes[i-1].ID]
			if !ok {
				return nil, nil, errors.Wrap(ErrData, fmt.Sprintf("Missing node with id: %d. Way ID: '%d'", way.Nodes[i-1].ID, way.ID))
			}
			target, ok := nodes[way.Nodes[i].ID]
			if !ok {
				return nil, nil, errors.Wrap(ErrData, fmt.Sprintf("Missing node with id: %d. Way ID: '%d'", way.Nodes[i].ID, way.ID))
			}
			group = append(group, Edge{
				WayID: way.ID,
				Nodes: [2]Node{source, target},
				Name:  name,
			})
		}
		groups = append(groups, group)
	}
	return groups, useCount, nil
}

// cleanEdgeGroups collapses chains of intermediate nodes into logical edges.
// Returns logical edges and nodes in order of their dense index
func cleanEdgeGroups(groups []EdgeGroup, useCount map[osm.NodeID]int) ([]Edge, []Node) {
	cleanEdges := []Edge{}
	indexed := []Node{}
	seen := make(map[osm.NodeID]struct{})
	register := func(node Node) {
		if _, ok := seen[node.ID]; ok {
			return
		}
		seen[node.ID] = struct{}{}
		indexed = append(indexed, node)
	}
	for _, group := range groups {
		mergeQueue := EdgeGroup{}
		for _, edge := range group {
			if useCount[edge.Nodes[0].ID] < 2 && len(mergeQueue) == 0 {
				// No connection with any other edge: isolated piece
				continue
			}
			if useCount[edge.Nodes[1].ID] < 2 {
				mergeQueue = append(mergeQueue, edge)
				continue
			}
			newEdge := edge
			if len(mergeQueue) > 0 {
				newEdge = append(mergeQueue, edge).Merge()
			}
			mergeQueue = EdgeGroup{}
			if newEdge.Nodes[0].Equal(newEdge.Nodes[1]) {
				// Chain came back to where it started
				continue
			}
			register(newEdge.Nodes[0])
			register(newEdge.Nodes[1])
			cleanEdges = append(cleanEdges, newEdge)
		}
	}
	return cleanEdges, indexed
}
