package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-app/jobscout/internal/services"
)

type DashboardHandler struct {
	StatsService *services.StatsService
}

func NewDashboardHandler(stats *services.StatsService) *DashboardHandler {
	return &DashboardHandler{StatsService: stats}
}

// Stats is the GET /dashboard/stats endpoint.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.StatsService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
