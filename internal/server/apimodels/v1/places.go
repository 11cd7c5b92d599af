package v1

type CreatePlaceRequest struct {
	Name      string   `json:"name" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Elevation float64  `json:"elevation"`
	Label     string   `json:"label"`
}
