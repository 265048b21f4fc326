package dtos

// ApplicationCreateRequest is the body of POST /applications. New
// applications always start in the "Applied" status.
type ApplicationCreateRequest struct {
	JobTitle string `json:"job_title" binding:"required"`
	Company  string `json:"company" binding:"required"`

	// Optional Fields
	Notes string `json:"notes"`
}

// StatusUpdateRequest is the body of POST /applications/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// NotesUpdateRequest is the body of POST /applications/:id/notes.
// An empty notes string is fine, that's how a note gets cleared.
type NotesUpdateRequest struct {
	Notes string `json:"notes"`
}
