package dtos

// AnalyzeRequest is the body of POST /resume/analyze.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

// ResumeAnalysisResponse is what the frontend renders. Email and Phone are
// always present as strings; when nothing matched they carry the literal
// "Not found" the UI displays.
type ResumeAnalysisResponse struct {
	Skills     []string `json:"skills"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	TextLength int      `json:"text_length"`
	WordCount  int      `json:"word_count"`
}
