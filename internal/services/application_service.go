package services

import (
	"errors"
	"fmt"

	"github.com/jobscout-app/jobscout/internal/dtos"
	"github.com/jobscout-app/jobscout/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create records a new application. Status always starts at Applied and
// the applied date is stamped by the store, whatever the client sends.
func (s *ApplicationService) Create(req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	app := &models.Application{
		JobTitle: req.JobTitle,
		Company:  req.Company,
		Status:   models.StatusApplied,
		Notes:    req.Notes,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// List returns all applications, newest first.
func (s *ApplicationService) List() ([]models.Application, error) {
	apps := make([]models.Application, 0)
	if err := s.DB.Order("applied_date DESC, id DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus moves an application through the pipeline. The state
// machine in models decides what's allowed; we just report its verdict.
func (s *ApplicationService) UpdateStatus(id uint, newStatusStr string) (*models.Application, error) {
	newStatus, err := models.ParseStatus(newStatusStr)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	app, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if models.IsTerminal(app.Status) {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("application is already %s, no further changes allowed", app.Status),
		}
	}
	if !models.IsTransitionAllowed(app.Status, newStatus) {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("cannot move application from %s to %s", app.Status, newStatus),
		}
	}

	app.Status = newStatus
	if err := s.DB.Save(app).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return app, nil
}

// UpdateNotes replaces the free-form note on an application. Terminal
// applications keep accepting notes; rejection postmortems are notes too.
func (s *ApplicationService) UpdateNotes(id uint, notes string) (*models.Application, error) {
	app, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	app.Notes = notes
	if err := s.DB.Save(app).Error; err != nil {
		return nil, fmt.Errorf("update notes: %w", err)
	}
	return app, nil
}

func (s *ApplicationService) getByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.DB.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load application %d: %w", id, err)
	}
	return &app, nil
}
