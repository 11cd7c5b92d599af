package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/USA-RedDragon/geodist-server/internal/cache"
	"github.com/USA-RedDragon/geodist-server/internal/config"
	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/USA-RedDragon/geodist-server/internal/metrics"
	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/gin-gonic/gin"
)

type deps struct {
	config  *config.Config
	cache   cache.Cache
	metrics *metrics.Metrics
}

func getDeps(c *gin.Context) (deps, bool) {
	var d deps
	var ok bool
	d.config, ok = c.MustGet("config").(*config.Config)
	if !ok {
		slog.Error("Failed to get config from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return d, false
	}
	d.cache, ok = c.MustGet("cache").(cache.Cache)
	if !ok {
		slog.Error("Failed to get cache from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return d, false
	}
	d.metrics, ok = c.MustGet("metrics").(*metrics.Metrics)
	if !ok {
		slog.Error("Failed to get metrics from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return d, false
	}
	return d, true
}

// unitAndStrategy resolves the requested unit and strategy, falling back to
// the configured defaults.
func unitAndStrategy(c *gin.Context, d deps, unitName, strategyName string) (units.Unit, geo.Strategy, bool) {
	unit := d.config.DefaultUnit()
	if unitName != "" {
		var err error
		unit, err = units.Parse(unitName)
		if err != nil {
			d.metrics.IncrementDistanceErrors("unknown_unit")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, "", false
		}
	}
	strategy := d.config.DefaultStrategy()
	if strategyName != "" {
		var err error
		strategy, err = geo.ParseStrategy(strategyName)
		if err != nil {
			d.metrics.IncrementDistanceErrors("unknown_strategy")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, "", false
		}
	}
	return unit, strategy, true
}

func writeGeoError(c *gin.Context, m *metrics.Metrics, err error) {
	switch {
	case errors.Is(err, geo.ErrInvalidUnitKind):
		m.IncrementDistanceErrors("invalid_unit_kind")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, geo.ErrUnsupportedUnitType):
		m.IncrementDistanceErrors("unsupported_unit_type")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, units.ErrUnknownLinearUnit):
		m.IncrementDistanceErrors("unknown_unit")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, geo.ErrNumericDomain):
		// Inputs are finite, so this only happens for coordinates too large to convert.
		m.IncrementDistanceErrors("numeric_domain")
		slog.Warn("Distance left the numeric domain", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		m.IncrementDistanceErrors("other")
		slog.Error("Failed to compute distance", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
	}
}

// computeCached looks the distance up in the cache before computing it.
func computeCached(c *gin.Context, d deps, strategy geo.Strategy, unit units.Unit, from, to geo.Coordinate) (float64, bool, error) {
	ctx := c.Request.Context()
	key := cache.Key(strategy, unit.String(), from, to)
	dist, hit, err := d.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read distance cache", "error", err)
	}
	if hit {
		d.metrics.IncrementCacheHits()
		return dist, true, nil
	}
	d.metrics.IncrementCacheMisses()

	dist, err = geo.Compute(strategy, from, to, unit)
	if err != nil {
		return 0, false, err
	}
	if err := d.cache.Set(ctx, key, dist); err != nil {
		slog.Warn("Failed to write distance cache", "error", err)
	}
	return dist, false, nil
}
