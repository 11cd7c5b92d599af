package units

import (
	"fmt"
	"math"

	"github.com/go-errors/errors"
)

var ErrUnknownLinearUnit = errors.New("unknown linear unit")

// metersPerUnit holds the length of one unit expressed in meters.
//
//nolint:golint,gochecknoglobals
var metersPerUnit = map[LinearUnit]float64{
	Meters:        1,
	Kilometers:    1000,
	Centimeters:   0.01,
	Miles:         1609.344,
	Feet:          0.3048,
	Yards:         0.9144,
	Inches:        0.0254,
	NauticalMiles: 1852,
}

func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// MetersPerUnit returns how many meters make up one u.
func MetersPerUnit(u LinearUnit) (float64, error) {
	m, ok := metersPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLinearUnit, string(u))
	}
	return m, nil
}

// FactorFromMeters returns the multiplier that converts a length in meters
// into u.
func FactorFromMeters(u LinearUnit) (float64, error) {
	m, err := MetersPerUnit(u)
	if err != nil {
		return 0, err
	}
	return 1 / m, nil
}

// FactorToMeters returns the multiplier that converts a length in u into
// meters.
func FactorToMeters(u LinearUnit) (float64, error) {
	return MetersPerUnit(u)
}

// MetersPerDecimalDegree returns the length in meters of one decimal degree
// of arc at the given latitude. The value follows the meridian-degree series
// and grows from ~110574m at the equator to ~111694m at the poles.
func MetersPerDecimalDegree(latitude float64) float64 {
	phi := DegreesToRadians(latitude)
	return 111132.92 -
		559.82*math.Cos(2*phi) +
		1.175*math.Cos(4*phi) -
		0.0023*math.Cos(6*phi)
}

// ConvertAngle converts an angle in radians to the given angular unit.
func ConvertAngle(radians float64, u NonLinearUnit) (float64, error) {
	switch u {
	case Radians:
		return radians, nil
	case Degrees:
		return RadiansToDegrees(radians), nil
	case ArcMinutes:
		return RadiansToDegrees(radians) * 60, nil
	case ArcSeconds:
		return RadiansToDegrees(radians) * 3600, nil
	default:
		return 0, fmt.Errorf("unknown angular unit: %q", string(u))
	}
}
