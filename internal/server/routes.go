package server

import (
	"log/slog"
	"net/http"

	"github.com/USA-RedDragon/geodist-server/internal/config"
	controllersV1 "github.com/USA-RedDragon/geodist-server/internal/server/controllers/v1"
	"github.com/gin-gonic/gin"
)

func applyRoutes(r *gin.Engine, config *config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiV1 := r.Group("/v1")
	v1(apiV1, config)

	r.NoRoute(func(c *gin.Context) {
		slog.Warn("Not Found", "path", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}

func v1(group *gin.RouterGroup, config *config.Config) {
	group.GET("/distance", controllersV1.GETDistance)
	group.POST("/distance/batch", controllersV1.POSTBatchDistance)
	group.GET("/angular", controllersV1.GETAngularSeparation)
	group.GET("/planar", controllersV1.GETPlanarDistance)
	group.GET("/places", controllersV1.GETPlaces)
	group.POST("/places", requireAuth(config), controllersV1.POSTPlace)
	group.GET("/places/:id", controllersV1.GETPlace)
	group.DELETE("/places/:id", requireAuth(config), controllersV1.DELETEPlace)
	group.GET("/places/:id/distance/:other", controllersV1.GETPlaceDistance)
}
