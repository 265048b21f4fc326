package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-app/jobscout/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: companies}
}

// Get is the GET /companies/:name endpoint. Always succeeds: the
// profile is templated, so any name has one.
func (h *CompanyHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.CompanyService.Lookup(c.Param("name")))
}
