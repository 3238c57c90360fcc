package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sweetspott/internal/models/request_models"
	"sweetspott/internal/services"
	"sweetspott/pkg/utils"
)

type ShowcaseController struct {
	showcaseService services.ShowcaseServiceInterface
}

func NewShowcaseController(showcaseService services.ShowcaseServiceInterface) *ShowcaseController {
	return &ShowcaseController{
		showcaseService: showcaseService,
	}
}

func (s *ShowcaseController) ListShowcase(c *gin.Context) {
	withPhotos := c.DefaultQuery("photos", "true") != "false"

	places, err := s.showcaseService.ListShowcasePlaces(c.Request.Context(), withPhotos)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Showcase places fetched successfully")
}

func (s *ShowcaseController) GetShowcasePlace(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Showcase slug is required")
		return
	}

	place, err := s.showcaseService.GetShowcasePlace(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Showcase place fetched successfully")
}

func (s *ShowcaseController) FindSimilar(c *gin.Context) {
	var req request_models.SimilarShowcaseQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	matches, err := s.showcaseService.FindSimilar(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Similar showcase places fetched successfully")
}
