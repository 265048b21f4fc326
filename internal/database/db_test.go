package database_test

import (
	"path/filepath"
	"testing"

	"github.com/jobscout-app/jobscout/internal/database"
	"github.com/jobscout-app/jobscout/internal/models"
)

func TestOpenAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobscout.db")

	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// Both tables must exist and be queryable straight away.
	var n int64
	if err := db.Model(&models.SavedJob{}).Count(&n).Error; err != nil {
		t.Errorf("saved_jobs should be queryable after Migrate: %v", err)
	}
	if err := db.Model(&models.Application{}).Count(&n).Error; err != nil {
		t.Errorf("applications should be queryable after Migrate: %v", err)
	}
}

// Migrate is create-if-absent: running it again must not fail or wipe rows.
func TestMigrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobscout.db")

	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("first Migrate returned error: %v", err)
	}

	if err := db.Create(&models.SavedJob{Title: "Go Developer", Company: "Acme"}).Error; err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}

	var n int64
	if err := db.Model(&models.SavedJob{}).Count(&n).Error; err != nil {
		t.Fatalf("count returned error: %v", err)
	}
	if n != 1 {
		t.Errorf("row count after re-migrate = %d, want 1", n)
	}
}

// Rows must survive closing and reopening the same file.
func TestOpen_DataPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobscout.db")

	db, err := database.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}
	if err := db.Create(&models.SavedJob{Title: "Go Developer", Company: "Acme"}).Error; err != nil {
		t.Fatalf("insert returned error: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	reopened, err := database.Open(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	var jobs []models.SavedJob
	if err := reopened.Find(&jobs).Error; err != nil {
		t.Fatalf("find after reopen returned error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Go Developer" {
		t.Errorf("jobs after reopen = %v, want the one inserted row", jobs)
	}
}
