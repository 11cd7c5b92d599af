package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/USA-RedDragon/geodist-server/internal/db/models"
	v1 "github.com/USA-RedDragon/geodist-server/internal/server/apimodels/v1"
	"github.com/gin-gonic/gin"
	"github.com/mattn/go-nulltype"
	"gorm.io/gorm"
)

func GETPlaces(c *gin.Context) {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		slog.Error("Failed to get db from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	places, err := models.ListPlaces(db)
	if err != nil {
		slog.Error("Failed to list places", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	c.JSON(http.StatusOK, places)
}

func findPlace(c *gin.Context, db *gorm.DB, param string) (models.Place, bool) {
	id, ok := c.Params.Get(param)
	if !ok || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": param + " is required"})
		return models.Place{}, false
	}
	place, err := models.FindPlaceByUUID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return place, false
		}
		slog.Error("Failed to find place", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return place, false
	}
	return place, true
}

func GETPlace(c *gin.Context) {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		slog.Error("Failed to get db from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	place, ok := findPlace(c, db, "id")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, place)
}

func POSTPlace(c *gin.Context) {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		slog.Error("Failed to get db from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	var req v1.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	place := models.Place{
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Elevation: req.Elevation,
	}
	if req.Label != "" {
		place.Label = nulltype.NullStringOf(req.Label)
	}

	if err := models.CreatePlace(db, &place); err != nil {
		slog.Error("Failed to create place", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	c.JSON(http.StatusCreated, place)
}

func DELETEPlace(c *gin.Context) {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		slog.Error("Failed to get db from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	err := models.DeletePlaceByUUID(db, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return
		}
		slog.Error("Failed to delete place", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GETPlaceDistance(c *gin.Context) {
	db, ok := c.MustGet("db").(*gorm.DB)
	if !ok {
		slog.Error("Failed to get db from context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Try again later"})
		return
	}
	d, ok := getDeps(c)
	if !ok {
		return
	}

	from, ok := findPlace(c, db, "id")
	if !ok {
		return
	}
	to, ok := findPlace(c, db, "other")
	if !ok {
		return
	}
	unit, strategy, ok := unitAndStrategy(c, d, c.Query("unit"), c.Query("strategy"))
	if !ok {
		return
	}

	dist, cached, err := computeCached(c, d, strategy, unit, from.Coordinate(), to.Coordinate())
	if err != nil {
		writeGeoError(c, d.metrics, err)
		return
	}
	d.metrics.IncrementDistanceRequests(string(strategy), unit.String())

	c.JSON(http.StatusOK, v1.DistanceResponse{
		From:     from.Coordinate(),
		To:       to.Coordinate(),
		Distance: dist,
		Unit:     unit.String(),
		Strategy: string(strategy),
		Cached:   cached,
	})
}
