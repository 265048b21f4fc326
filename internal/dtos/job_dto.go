package dtos

// SearchQuery is bound from the query string of GET /jobs/search.
type SearchQuery struct {
	Role string `form:"role" binding:"required"`

	// Optional Fields
	Location string `form:"location"`
	Method   string `form:"method"` // "mock" (default), "boards" or "companies"
}

// SaveJobRequest carries the posting fields we persist. Extra fields from
// the search result (salary, skills, ...) are accepted and dropped.
type SaveJobRequest struct {
	Title   string `json:"title" binding:"required"`
	Company string `json:"company" binding:"required"`

	// Optional Fields
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
