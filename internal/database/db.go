package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/jobscout-app/jobscout/internal/models"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open opens (or creates) the SQLite database file at path.
// The driver is pure Go, so a plain file path is all we need.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates the tables if they don't exist yet. Safe to run on
// every startup; it never drops or rewrites existing data.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.SavedJob{}, &models.Application{})
}

// Connect opens the database, runs migrations and wires the package-level
// handle used by main. Any failure here is fatal: the API is useless
// without its store.
func Connect(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	DB = db
	return DB
}
