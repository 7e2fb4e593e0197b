package osm2paths

import (
	"github.com/paulmach/osm"
)

// wayFilter allows to filter ways by 'highway' tag. Empty filter accepts every way
type wayFilter map[HighwayType]struct{}

func newWayFilter(highways []HighwayType) wayFilter {
	if len(highways) == 0 {
		return nil
	}
	filter := make(wayFilter, len(highways))
	for _, highway := range highways {
		filter[highway] = struct{}{}
	}
	return filter
}

// accepts checks if way's 'highway' tag is represented in filter
func (filter wayFilter) accepts(way *osm.Way) bool {
	if len(filter) == 0 {
		return true
	}
	_, ok := filter[getHighwayType(way.Tags.Find("highway"))]
	return ok
}
