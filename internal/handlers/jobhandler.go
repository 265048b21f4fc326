package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-app/jobscout/internal/dtos"
	"github.com/jobscout-app/jobscout/internal/services"
)

// Dependency injection: handlers only talk to services, never to gorm.
type JobHandler struct {
	SearchService *services.SearchService
	JobService    *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(search *services.SearchService, jobs *services.JobService) *JobHandler {
	return &JobHandler{
		SearchService: search,
		JobService:    jobs,
	}
}

// SearchJobs is the GET /jobs/search endpoint.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	var q dtos.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role query parameter is required"})
		return
	}

	jobs := h.SearchService.Search(q.Role, q.Location, q.Method)
	c.JSON(http.StatusOK, gin.H{
		"count": len(jobs),
		"jobs":  jobs,
	})
}

// SaveJob is the POST /jobs endpoint: bookmark one posting from the results.
func (h *JobHandler) SaveJob(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.SaveJob(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// ListSavedJobs is the GET /jobs/saved endpoint, newest first.
func (h *JobHandler) ListSavedJobs(c *gin.Context) {
	jobs, err := h.JobService.ListSaved()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
