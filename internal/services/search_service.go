package services

import (
	"fmt"
	"strings"
	"time"
)

// Search methods the frontend can pick. Anything unrecognized behaves
// like MethodBoards, so old frontends never get an error page.
const (
	MethodMock      = "mock"
	MethodBoards    = "boards"
	MethodCompanies = "companies"
)

// JobPosting is a transient search result. Postings have no identity and
// are never stored as-is; saving one goes through the job store.
type JobPosting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Salary      string   `json:"salary,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Source      string   `json:"source,omitempty"`
	URL         string   `json:"url,omitempty"`
	PostedDate  string   `json:"posted_date"`
}

// SearchService generates demo job listings. This is mock data on
// purpose: no job board is called, results are templated from the role
// and location the user typed.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns postings for the role. MethodMock combines both demo
// sources; every other method returns just the board listings.
func (s *SearchService) Search(role, location, method string) []JobPosting {
	if method == MethodMock || method == "" {
		jobs := s.sampleJobs(role, location)
		return append(jobs, s.boardJobs(role, location)...)
	}
	return s.boardJobs(role, location)
}

// sampleJobs mimics listings scraped from a tech-company careers page.
func (s *SearchService) sampleJobs(role, location string) []JobPosting {
	return []JobPosting{
		{
			Title:       fmt.Sprintf("%s Developer", role),
			Company:     "Tech Company A",
			Location:    orElse(location, "Remote"),
			Description: fmt.Sprintf("Looking for experienced %s developer", role),
			URL:         "https://example.com/job/1",
			PostedDate:  "2025-06-01",
			Skills:      []string{strings.ToLower(role), "python", "javascript"},
		},
		{
			Title:       fmt.Sprintf("Senior %s", role),
			Company:     "Startup B",
			Location:    orElse(location, "San Francisco, CA"),
			Description: fmt.Sprintf("Senior %s position with growth opportunities", role),
			URL:         "https://example.com/job/2",
			PostedDate:  "2025-06-02",
			Skills:      []string{strings.ToLower(role), "react", "node.js"},
		},
	}
}

// boardJobs mimics listings from public job boards, so these carry a
// salary range and a source site. Posted date is always today.
func (s *SearchService) boardJobs(role, location string) []JobPosting {
	today := time.Now().Format("2006-01-02")
	return []JobPosting{
		{
			Title:       fmt.Sprintf("%s Specialist", role),
			Company:     "Public Corp",
			Location:    orElse(location, "New York, NY"),
			Description: fmt.Sprintf("We are hiring for %s position", role),
			Salary:      "$70,000 - $90,000",
			PostedDate:  today,
			Source:      "PublicJobs.com",
		},
		{
			Title:       fmt.Sprintf("Junior %s", role),
			Company:     "Open Source Inc",
			Location:    orElse(location, "Remote"),
			Description: fmt.Sprintf("Entry level %s opportunity", role),
			Salary:      "$50,000 - $65,000",
			PostedDate:  today,
			Source:      "FreeJobBoard.org",
		},
	}
}

func orElse(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
