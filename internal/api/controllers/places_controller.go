package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sweetspott/internal/models/request_models"
	"sweetspott/internal/services"
	"sweetspott/pkg/utils"
)

type PlacesController struct {
	discoveryService services.DiscoveryServiceInterface
}

func NewPlacesController(discoveryService services.DiscoveryServiceInterface) *PlacesController {
	return &PlacesController{
		discoveryService: discoveryService,
	}
}

func (p *PlacesController) Discover(c *gin.Context) {
	var req request_models.DiscoverQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Lat == "" || req.Lng == "" {
		utils.RespondError(c, http.StatusBadRequest, "Location coordinates are required")
		return
	}

	result, err := p.discoveryService.Discover(c.Request.Context(), req.Lat, req.Lng, req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, result.Message)
}

func (p *PlacesController) GetPlaceById(c *gin.Context) {
	placeId := c.Param("id")
	if placeId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.discoveryService.GetPlaceByID(c.Request.Context(), placeId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (p *PlacesController) GetPlacePhoto(c *gin.Context) {
	var req request_models.PhotoQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place name and coordinates are required")
		return
	}

	url, err := p.discoveryService.FindPhoto(c.Request.Context(), req.Name, req.Lat, req.Lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if url == "" {
		utils.RespondSuccess(c, gin.H{"image_url": nil}, "No photo available for "+req.Name)
		return
	}
	utils.RespondSuccess(c, gin.H{"image_url": url}, "Found photo for "+req.Name)
}
