package models

import (
	"time"
)

// SavedJob is a job posting the user bookmarked from search results.
// Rows are append-only: there is no update or delete, and saving the
// same posting twice is allowed on purpose.
type SavedJob struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Company string `gorm:"not null" json:"company"`

	Location    string `json:"location"`
	Description string `gorm:"type:text" json:"description"`
	URL         string `json:"url"`

	// Assigned by the store at insert time, never by the caller.
	SavedAt time.Time `gorm:"autoCreateTime" json:"saved_at"`
}

// Application tracks a job the user actually applied to. Unlike SavedJob
// it is mutable: status moves through the pipeline in status.go and the
// notes field can be rewritten freely.
type Application struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	JobTitle string `gorm:"not null" json:"job_title"`
	Company  string `gorm:"not null" json:"company"`

	Status      Status    `gorm:"default:'Applied'" json:"status"`
	AppliedDate time.Time `gorm:"autoCreateTime" json:"applied_date"`
	Notes       string    `gorm:"type:text" json:"notes"`
}
