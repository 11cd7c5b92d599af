package units

// Type classifies a Unit as a length or as something that cannot be
// produced by a linear distance calculation.
type Type uint8

const (
	Unknown Type = iota
	Linear
	NonLinear
)

func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case NonLinear:
		return "non-linear"
	default:
		return "unknown"
	}
}

type Unit interface {
	UnitType() Type
	String() string
}

// LinearUnit is a unit of length.
type LinearUnit string

const (
	Meters        LinearUnit = "meters"
	Kilometers    LinearUnit = "kilometers"
	Centimeters   LinearUnit = "centimeters"
	Miles         LinearUnit = "miles"
	Feet          LinearUnit = "feet"
	Yards         LinearUnit = "yards"
	Inches        LinearUnit = "inches"
	NauticalMiles LinearUnit = "nautical_miles"
)

func (LinearUnit) UnitType() Type { return Linear }

func (u LinearUnit) String() string { return string(u) }

// NonLinearUnit is an angular unit.
type NonLinearUnit string

const (
	Degrees    NonLinearUnit = "degrees"
	Radians    NonLinearUnit = "radians"
	ArcMinutes NonLinearUnit = "arc_minutes"
	ArcSeconds NonLinearUnit = "arc_seconds"
)

func (NonLinearUnit) UnitType() Type { return NonLinear }

func (u NonLinearUnit) String() string { return string(u) }

// Classify reports the Type of u. A nil unit is Unknown.
func Classify(u Unit) Type {
	if u == nil {
		return Unknown
	}
	return u.UnitType()
}
