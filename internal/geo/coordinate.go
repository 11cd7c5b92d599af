package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
	"github.com/paulmach/orb"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a position in decimal degrees. Values are not range checked.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Elevation float64 `json:"elevation,omitempty"`
}

// NewCoordinate builds a coordinate at sea level.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Longitude: lon, Latitude: lat}
}

// FromPoint converts an orb point, which is ordered longitude first.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Longitude: p.Lon(), Latitude: p.Lat()}
}

// Point converts to an orb point, longitude first. Elevation is dropped.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// ParseCoordinate parses "lat,lon" or "lat,lon,elevation".
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q: %w", ErrInvalidCoordinate, s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Coordinate{}, fmt.Errorf("%w: %q is not finite", ErrInvalidCoordinate, s)
		}
		values[i] = v
	}
	c := NewCoordinate(values[0], values[1])
	if len(values) == 3 {
		c.Elevation = values[2]
	}
	return c, nil
}
