package services

import (
	"fmt"

	"github.com/jobscout-app/jobscout/internal/dtos"
	"github.com/jobscout-app/jobscout/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// SaveJob bookmarks a posting. We deliberately don't dedupe here: saving
// the same job twice just creates two rows, same as the UI always did.
func (s *JobService) SaveJob(req *dtos.SaveJobRequest) (*models.SavedJob, error) {
	// SavedAt stays zero so the store stamps it at insert time.
	job := &models.SavedJob{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		URL:         req.URL,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}
	return job, nil
}

// ListSaved returns every bookmarked job, newest first. An empty store
// gives an empty slice, not an error.
func (s *JobService) ListSaved() ([]models.SavedJob, error) {
	jobs := make([]models.SavedJob, 0)
	if err := s.DB.Order("saved_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return jobs, nil
}
