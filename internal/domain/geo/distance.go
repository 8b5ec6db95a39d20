// Package geo provides great-circle distance helpers for the notifier.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean radius of the sphere used for all distances.
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two points in kilometers
// using the haversine formula. Inputs are degrees and are not validated.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	// Rounding can push a a hair above 1 for antipodal inputs.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance is DistanceKm for orb points, which are ordered [lon, lat].
func Distance(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// NewPoint builds an orb point from degree coordinates.
func NewPoint(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// ValidCoordinate reports whether lat/lon are finite and inside Earth bounds.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) ||
		math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lon >= -180 && lon <= 180
}
