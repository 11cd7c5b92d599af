package v1

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
	v1 "github.com/USA-RedDragon/geodist-server/internal/server/apimodels/v1"
	"github.com/USA-RedDragon/geodist-server/internal/units"
	"github.com/gin-gonic/gin"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseEndpoints(c *gin.Context) (geo.Coordinate, geo.Coordinate, bool) {
	from, err := geo.ParseCoordinate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be lat,lon"})
		return from, geo.Coordinate{}, false
	}
	to, err := geo.ParseCoordinate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be lat,lon"})
		return from, to, false
	}
	return from, to, true
}

func GETDistance(c *gin.Context) {
	d, ok := getDeps(c)
	if !ok {
		return
	}
	from, to, ok := parseEndpoints(c)
	if !ok {
		return
	}
	unit, strategy, ok := unitAndStrategy(c, d, c.Query("unit"), c.Query("strategy"))
	if !ok {
		return
	}

	dist, cached, err := computeCached(c, d, strategy, unit, from, to)
	if err != nil {
		writeGeoError(c, d.metrics, err)
		return
	}
	d.metrics.IncrementDistanceRequests(string(strategy), unit.String())

	c.JSON(http.StatusOK, v1.DistanceResponse{
		From:     from,
		To:       to,
		Distance: dist,
		Unit:     unit.String(),
		Strategy: string(strategy),
		Cached:   cached,
	})
}

func GETAngularSeparation(c *gin.Context) {
	d, ok := getDeps(c)
	if !ok {
		return
	}
	from, to, ok := parseEndpoints(c)
	if !ok {
		return
	}
	var unit units.Unit = units.Degrees
	if name := c.Query("unit"); name != "" {
		var err error
		unit, err = units.Parse(name)
		if err != nil {
			d.metrics.IncrementDistanceErrors("unknown_unit")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	separation, err := geo.AngularSeparation(from, to, unit)
	if err != nil {
		writeGeoError(c, d.metrics, err)
		return
	}
	if !isFinite(separation) {
		d.metrics.IncrementDistanceErrors("non_finite")
		c.JSON(http.StatusBadRequest, gin.H{"error": "angular separation is not finite"})
		return
	}

	c.JSON(http.StatusOK, v1.AngularResponse{
		From:       from,
		To:         to,
		Separation: separation,
		Unit:       unit.String(),
	})
}

func GETPlanarDistance(c *gin.Context) {
	var values [4]float64
	for i, key := range []string{"from_x", "from_y", "to_x", "to_y"} {
		v, err := strconv.ParseFloat(c.Query(key), 64)
		if err != nil || !isFinite(v) {
			c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be a finite number"})
			return
		}
		values[i] = v
	}
	dist := geo.Euclidean(values[0], values[1], values[2], values[3])
	if !isFinite(dist) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planar distance overflows"})
		return
	}
	c.JSON(http.StatusOK, v1.PlanarResponse{
		Distance: dist,
	})
}

func POSTBatchDistance(c *gin.Context) {
	d, ok := getDeps(c)
	if !ok {
		return
	}

	var req v1.BatchDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Pairs) > d.config.Geo.MaxBatch {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Too many pairs, the limit is " + strconv.Itoa(d.config.Geo.MaxBatch)})
		return
	}
	unit, strategy, ok := unitAndStrategy(c, d, req.Unit, req.Strategy)
	if !ok {
		return
	}

	d.metrics.ObserveBatchSize(len(req.Pairs))
	distances, err := geo.BatchDistance(c.Request.Context(), req.Pairs, strategy, unit, d.config.Geo.BatchWorkers)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("Batch distance request cancelled", "pairs", len(req.Pairs), "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled"})
			return
		}
		writeGeoError(c, d.metrics, err)
		return
	}
	d.metrics.AddDistanceRequests(string(strategy), unit.String(), len(distances))

	c.JSON(http.StatusOK, v1.BatchDistanceResponse{
		Unit:      unit.String(),
		Strategy:  string(strategy),
		Distances: distances,
	})
}
