package services

import (
	"fmt"

	"github.com/jobscout-app/jobscout/internal/models"
	"gorm.io/gorm"
)

// DashboardStats feeds the dashboard: how much the user has bookmarked
// and where their applications sit in the pipeline.
type DashboardStats struct {
	SavedJobs            int64            `json:"saved_jobs"`
	Applications         int64            `json:"applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Stats counts rows on every call. Cheap at this scale, so no caching.
func (s *StatsService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{
		ApplicationsByStatus: make(map[string]int64),
	}

	if err := s.DB.Model(&models.SavedJob{}).Count(&stats.SavedJobs).Error; err != nil {
		return nil, fmt.Errorf("count saved jobs: %w", err)
	}
	if err := s.DB.Model(&models.Application{}).Count(&stats.Applications).Error; err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	// Statuses nobody reached yet are simply absent from the map.
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.DB.Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count applications by status: %w", err)
	}
	for _, r := range rows {
		stats.ApplicationsByStatus[r.Status] = r.Count
	}

	return stats, nil
}
