package osm2paths

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// earthRadius mean radius of Earth (meters)
	earthRadius = 6371000.0
	pi180       = math.Pi / 180.0
	pi180Rev    = 180.0 / math.Pi
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// GreatCircleDistance returns haversine distance between two points given in radians (meters)
//
// Input is not validated: values outside of [-pi, pi] still produce a number.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadius
}

// getSphericalLength returns length for given line in degrees (meters)
func getSphericalLength(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += GreatCircleDistance(
			degreesToRadians(line[i-1].Lat()), degreesToRadians(line[i-1].Lon()),
			degreesToRadians(line[i].Lat()), degreesToRadians(line[i].Lon()),
		)
	}
	return totalLength
}
