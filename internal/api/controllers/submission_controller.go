package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"sweetspott/internal/models/request_models"
	"sweetspott/pkg/utils"
)

type SubmissionController struct{}

func NewSubmissionController() *SubmissionController {
	return &SubmissionController{}
}

// Submit validates a community place submission and acknowledges it.
// Submissions are intentionally not persisted yet; the client-side form
// only expects a confirmation.
func (s *SubmissionController) Submit(c *gin.Context) {
	var req request_models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid submission format")
		return
	}

	userID := c.GetString("user_id")
	log.Printf("Submission from %s: %q (%s)", userID, req.Name, req.Category)

	utils.RespondSuccess(c, nil, "Thanks! Your spot was submitted for review.")
}
