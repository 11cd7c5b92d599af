package geo

import "math"

const (
	// Squared equatorial and polar radii of the reference ellipsoid, in m².
	equatorialRadiusSquared = 40680631590769
	polarRadiusSquared      = 40408299803555.29
)

// EarthRadiusAtLatitude returns the geocentric radius of the Earth ellipsoid
// in meters at the given latitude in radians.
func EarthRadiusAtLatitude(latitude float64) float64 {
	cos2 := math.Cos(latitude) * math.Cos(latitude)
	sin2 := math.Sin(latitude) * math.Sin(latitude)

	num := equatorialRadiusSquared*equatorialRadiusSquared*cos2 + polarRadiusSquared*polarRadiusSquared*sin2
	den := equatorialRadiusSquared*cos2 + polarRadiusSquared*sin2
	return math.Sqrt(num / den)
}
