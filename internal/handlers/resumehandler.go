package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout-app/jobscout/internal/dtos"
	"github.com/jobscout-app/jobscout/internal/services"
)

type ResumeHandler struct {
	ResumeService  *services.ResumeService
	ExtractService *services.ExtractService
}

func NewResumeHandler(resume *services.ResumeService, extract *services.ExtractService) *ResumeHandler {
	return &ResumeHandler{
		ResumeService:  resume,
		ExtractService: extract,
	}
}

// Analyze is the POST /resume/analyze endpoint for pasted text.
func (h *ResumeHandler) Analyze(c *gin.Context) {
	var req dtos.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	analysis, err := h.ResumeService.AnalyzeText(req.ResumeText)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderAnalysis(analysis))
}

// Upload is the POST /resume/upload endpoint: multipart file in, same
// analysis out. Extraction runs in memory on the request body.
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}

	text, err := h.ExtractService.ExtractText(data, fileHeader.Filename)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	analysis, err := h.ResumeService.AnalyzeText(text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderAnalysis(analysis))
}

// renderAnalysis converts the service result into the wire shape. The
// frontend shows "Not found" for missing contact info; that string is
// minted here and nowhere else.
func renderAnalysis(a *services.ResumeAnalysis) dtos.ResumeAnalysisResponse {
	return dtos.ResumeAnalysisResponse{
		Skills:     a.Skills,
		Email:      orNotFound(a.Email),
		Phone:      orNotFound(a.Phone),
		TextLength: a.TextLength,
		WordCount:  a.WordCount,
	}
}

func orNotFound(s *string) string {
	if s == nil {
		return "Not found"
	}
	return *s
}
