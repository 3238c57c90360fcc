package request_models

// SubmissionRequest mirrors the client submission form. Submissions are
// acknowledged but not persisted; see the submissions controller.
type SubmissionRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Category    string  `json:"category" binding:"required"`
	Tranquility int     `json:"tranquility" binding:"required,min=1,max=5"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	Comment     string  `json:"comment" binding:"max=500"`
}
