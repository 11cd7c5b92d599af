package models_test

import (
	"errors"
	"testing"

	"github.com/USA-RedDragon/geodist-server/internal/db/models"
	"github.com/glebarez/sqlite"
	"github.com/mattn/go-nulltype"
	"gorm.io/gorm"
)

func makeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Every connection to :memory: gets its own database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Place{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return db
}

func TestPlaces(t *testing.T) {
	t.Parallel()
	db := makeDB(t)

	tokyo := models.Place{Name: "Tokyo", Latitude: 35.5092405, Longitude: 139.7698121}
	if err := models.CreatePlace(db, &tokyo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokyo.UUID == "" {
		t.Fatal("expected a generated id")
	}
	arch := models.Place{Name: "Gateway Arch", Latitude: 38.6251432, Longitude: -90.1970501, Label: nulltype.NullStringOf("landmark")}
	if err := models.CreatePlace(db, &arch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := models.FindPlaceByUUID(db, tokyo.UUID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Tokyo" || found.Coordinate().Longitude != 139.7698121 {
		t.Errorf("unexpected place: %+v", found)
	}

	places, err := models.ListPlaces(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 2 || places[0].Name != "Gateway Arch" {
		t.Errorf("unexpected places: %+v", places)
	}
	if places[0].Label.StringValue() != "landmark" {
		t.Errorf("unexpected label: %v", places[0].Label)
	}

	if err := models.DeletePlaceByUUID(db, tokyo.UUID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := models.FindPlaceByUUID(db, tokyo.UUID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unexpected error: %v", err)
	}
	if err := models.DeletePlaceByUUID(db, tokyo.UUID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unexpected error: %v", err)
	}
}
