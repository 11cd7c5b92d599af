package geo

import (
	"math"

	"github.com/USA-RedDragon/geodist-server/internal/units"
)

// AngularSeparationDegrees returns the central angle between two points in
// degrees using the spherical law of cosines.
func AngularSeparationDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := units.DegreesToRadians(lat1)
	phi2 := units.DegreesToRadians(lat2)
	deltaLambda := units.DegreesToRadians(lon1 - lon2)

	cosTheta := math.Sin(phi1)*math.Sin(phi2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	// Rounding can push near-identical or antipodal points past +/-1.
	cosTheta = math.Max(-1, math.Min(1, cosTheta))

	return math.Abs(units.RadiansToDegrees(math.Acos(cosTheta)))
}

// AngularSeparationRadians returns the central angle between two points in
// radians using the haversine formula, which stays accurate for very small
// separations.
func AngularSeparationRadians(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := units.DegreesToRadians(lat1)
	phi2 := units.DegreesToRadians(lat2)
	deltaPhi := units.DegreesToRadians(lat2 - lat1)
	deltaLambda := units.DegreesToRadians(lon2 - lon1)

	sinHalfPhi := math.Sin(deltaPhi / 2)
	sinHalfLambda := math.Sin(deltaLambda / 2)
	a := sinHalfPhi*sinHalfPhi + math.Cos(phi1)*math.Cos(phi2)*sinHalfLambda*sinHalfLambda
	a = math.Min(a, 1)

	return math.Abs(2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}
