package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
)

// Cache memoizes computed distances.
type Cache interface {
	Get(ctx context.Context, key string) (float64, bool, error)
	Set(ctx context.Context, key string, value float64) error
}

// Key builds the cache key for a single distance calculation.
func Key(strategy geo.Strategy, unit string, from, to geo.Coordinate) string {
	var sb strings.Builder
	sb.WriteString("geodist:")
	sb.WriteString(string(strategy))
	sb.WriteByte(':')
	sb.WriteString(unit)
	for _, v := range []float64{from.Latitude, from.Longitude, to.Latitude, to.Longitude} {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) (float64, bool, error) { return 0, false, nil }

func (Noop) Set(context.Context, string, float64) error { return nil }
