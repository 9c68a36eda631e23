// Package geo computes distances between coordinates and tracks the
// device position reported by a Provider.
package geo

import (
	"math"

	"mados/internal/domain/entity"
)

const earthRadiusMeters = 6371e3

// Distance returns the great-circle distance between a and b in metres
// using the Haversine formula.
func Distance(a, b entity.Coordinates) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	dPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Within reports whether b lies at most maxMeters from a.
func Within(a, b entity.Coordinates, maxMeters float64) bool {
	return Distance(a, b) <= maxMeters
}
