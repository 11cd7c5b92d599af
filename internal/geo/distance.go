package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/go-errors/errors"
)

const (
	// EarthRadiusMiles is the mean radius of a spherical Earth.
	EarthRadiusMiles  = 3959.87122552164
	EarthRadiusMeters = EarthRadiusMiles * 1609.344
)

var (
	ErrInvalidUnitKind     = errors.New("output unit is non-linear, use AngularSeparationDegrees directly instead")
	ErrUnsupportedUnitType = errors.New("unsupported unit type")
	ErrNumericDomain       = errors.New("distance calculation left the numeric domain")
	ErrUnknownStrategy     = errors.New("unknown distance strategy")
)

// Strategy selects the Earth model used to turn an angle into a length.
type Strategy string

const (
	// StrategyMeanRadius scales the law-of-cosines angle by the length of a
	// decimal degree.
	StrategyMeanRadius Strategy = "mean"
	// StrategyEllipsoidal scales the haversine angle by the ellipsoid radius at
	// the midpoint latitude.
	StrategyEllipsoidal Strategy = "ellipsoidal"
)

// ParseStrategy resolves a strategy name, ignoring case and surrounding
// whitespace.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyMeanRadius, "mean_radius", "cosines":
		return StrategyMeanRadius, nil
	case StrategyEllipsoidal, "ellipsoid", "haversine":
		return StrategyEllipsoidal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func linearFactor(unit units.Unit) (float64, error) {
	switch units.Classify(unit) {
	case units.Linear:
		lu, ok := unit.(units.LinearUnit)
		if !ok {
			return 0, fmt.Errorf("%w: %T", ErrUnsupportedUnitType, unit)
		}
		return units.FactorFromMeters(lu)
	case units.NonLinear:
		return 0, fmt.Errorf("%w (got %s)", ErrInvalidUnitKind, unit)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedUnitType, units.Classify(unit))
	}
}

// Distance returns the distance between two points in unit using the
// law-of-cosines angle and the length of a decimal degree at the midpoint
// latitude. The midpoint, rather than lat1, keeps the result symmetric in
// its endpoints.
func Distance(lat1, lon1, lat2, lon2 float64, unit units.Unit) (float64, error) {
	factor, err := linearFactor(unit)
	if err != nil {
		return 0, err
	}
	degrees := AngularSeparationDegrees(lat1, lon1, lat2, lon2)
	meters := degrees * units.MetersPerDecimalDegree((lat1+lat2)/2)
	return meters * factor, nil
}

// DistanceEllipsoidal returns the distance between two points in unit using
// the haversine angle and the ellipsoid radius at the midpoint latitude.
func DistanceEllipsoidal(lat1, lon1, lat2, lon2 float64, unit units.Unit) (float64, error) {
	factor, err := linearFactor(unit)
	if err != nil {
		return 0, err
	}
	radians := AngularSeparationRadians(lat1, lon1, lat2, lon2)
	meters := radians * EarthRadiusAtLatitude(units.DegreesToRadians((lat1+lat2)/2))
	return meters * factor, nil
}

// DistanceLinear is Distance restricted to linear units at compile time.
func DistanceLinear(lat1, lon1, lat2, lon2 float64, unit units.LinearUnit) (float64, error) {
	return Distance(lat1, lon1, lat2, lon2, unit)
}

// DistanceInMeters is Distance in meters, which cannot fail.
func DistanceInMeters(lat1, lon1, lat2, lon2 float64) float64 {
	// Meters always has a conversion factor.
	meters, _ := Distance(lat1, lon1, lat2, lon2, units.Meters)
	return meters
}

// DistanceBetween returns the distance in miles between two coordinates.
func DistanceBetween(p1, p2 Coordinate) float64 {
	miles, _ := Distance(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude, units.Miles)
	return miles
}

// Compute dispatches to the requested strategy.
func Compute(strategy Strategy, from, to Coordinate, unit units.Unit) (float64, error) {
	var (
		dist float64
		err  error
	)
	switch strategy {
	case StrategyMeanRadius:
		dist, err = Distance(from.Latitude, from.Longitude, to.Latitude, to.Longitude, unit)
	case StrategyEllipsoidal:
		dist, err = DistanceEllipsoidal(from.Latitude, from.Longitude, to.Latitude, to.Longitude, unit)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(dist) {
		return 0, fmt.Errorf("%w: %v -> %v", ErrNumericDomain, from, to)
	}
	return dist, nil
}

// AngularSeparation returns the central angle between two coordinates in an
// angular unit. Degrees use the law of cosines, every other unit the
// haversine form.
func AngularSeparation(from, to Coordinate, unit units.Unit) (float64, error) {
	au, ok := unit.(units.NonLinearUnit)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an angular unit", ErrUnsupportedUnitType, units.Classify(unit))
	}
	if au == units.Degrees {
		return AngularSeparationDegrees(from.Latitude, from.Longitude, to.Latitude, to.Longitude), nil
	}
	return units.ConvertAngle(AngularSeparationRadians(from.Latitude, from.Longitude, to.Latitude, to.Longitude), au)
}
