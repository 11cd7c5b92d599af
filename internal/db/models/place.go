package models

import (
	"time"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/google/uuid"
	"github.com/mattn/go-nulltype"
	"gorm.io/gorm"
)

// Place is a named coordinate that distance requests can refer to.
type Place struct {
	ID        uint                `json:"-" gorm:"primaryKey"`
	UUID      string              `json:"id" gorm:"uniqueIndex;size:36"`
	Name      string              `json:"name" binding:"required" gorm:"index"`
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	Elevation float64             `json:"elevation"`
	Label     nulltype.NullString `json:"label,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (p Place) TableName() string {
	return "places"
}

func (p *Place) BeforeCreate(_ *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
	return nil
}

func (p Place) Coordinate() geo.Coordinate {
	return geo.Coordinate{
		Longitude: p.Longitude,
		Latitude:  p.Latitude,
		Elevation: p.Elevation,
	}
}

func CreatePlace(db *gorm.DB, place *Place) error {
	return db.Create(place).Error
}

func FindPlaceByUUID(db *gorm.DB, id string) (Place, error) {
	var place Place
	err := db.Where("uuid = ?", id).First(&place).Error
	return place, err
}

func ListPlaces(db *gorm.DB) ([]Place, error) {
	var places []Place
	err := db.Order("name asc").Find(&places).Error
	return places, err
}

func DeletePlaceByUUID(db *gorm.DB, id string) error {
	result := db.Where("uuid = ?", id).Delete(&Place{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
