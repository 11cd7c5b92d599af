package units

import (
	"fmt"
	"strings"

	"github.com/go-errors/errors"
)

var ErrUnknownUnit = errors.New("unknown unit")

//nolint:golint,gochecknoglobals
var aliases = map[string]Unit{
	"m":              Meters,
	"meter":          Meters,
	"meters":         Meters,
	"metre":          Meters,
	"metres":         Meters,
	"km":             Kilometers,
	"kilometer":      Kilometers,
	"kilometers":     Kilometers,
	"kilometre":      Kilometers,
	"kilometres":     Kilometers,
	"cm":             Centimeters,
	"centimeters":    Centimeters,
	"mi":             Miles,
	"mile":           Miles,
	"miles":          Miles,
	"ft":             Feet,
	"foot":           Feet,
	"feet":           Feet,
	"yd":             Yards,
	"yard":           Yards,
	"yards":          Yards,
	"in":             Inches,
	"inch":           Inches,
	"inches":         Inches,
	"nmi":            NauticalMiles,
	"nm":             NauticalMiles,
	"nautical_miles": NauticalMiles,
	"deg":            Degrees,
	"degree":         Degrees,
	"degrees":        Degrees,
	"rad":            Radians,
	"radian":         Radians,
	"radians":        Radians,
	"arcmin":         ArcMinutes,
	"arc_minutes":    ArcMinutes,
	"arcsec":         ArcSeconds,
	"arc_seconds":    ArcSeconds,
}

// Parse resolves a unit name or abbreviation, ignoring case and surrounding
// whitespace.
func Parse(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	u, ok := aliases[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}
