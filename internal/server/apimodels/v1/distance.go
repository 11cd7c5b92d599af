package v1

import "github.com/USA-RedDragon/geodist-server/internal/geo"

type DistanceResponse struct {
	From     geo.Coordinate `json:"from"`
	To       geo.Coordinate `json:"to"`
	Distance float64        `json:"distance"`
	Unit     string         `json:"unit"`
	Strategy string         `json:"strategy"`
	Cached   bool           `json:"cached"`
}

type AngularResponse struct {
	From       geo.Coordinate `json:"from"`
	To         geo.Coordinate `json:"to"`
	Separation float64        `json:"separation"`
	Unit       string         `json:"unit"`
}

type PlanarResponse struct {
	Distance float64 `json:"distance"`
}

type BatchDistanceRequest struct {
	Unit     string     `json:"unit"`
	Strategy string     `json:"strategy"`
	Pairs    []geo.Pair `json:"pairs" binding:"required"`
}

type BatchDistanceResponse struct {
	Unit      string    `json:"unit"`
	Strategy  string    `json:"strategy"`
	Distances []float64 `json:"distances"`
}
