package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Get a user profile
// @Description Returns the role-specific profile for a user
// @Tags Profiles
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/{user_id} [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := p.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Profile retrieved successfully")
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Partial update; only the provided fields are changed
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetInt64("user_id")
	if err := p.profileService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

// GetContentPreferences godoc
// @Summary Get the authenticated user's content preference tags
// @Tags Profiles
// @Produce json
// @Param role query string true "User role" Enums(caregiver, clinician)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/content-preferences [get]
func (p *ProfileController) GetContentPreferences(c *gin.Context) {
	role := c.Query("role")
	userID := c.GetInt64("user_id")

	tags, err := p.profileService.GetContentPreferences(c.Request.Context(), userID, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"content_preferences": tags}, "Content preferences retrieved successfully")
}

// UpdateContentPreferences godoc
// @Summary Replace the authenticated user's content preference tags
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.ContentPreferencesRequest true "Content preferences payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/content-preferences [put]
func (p *ProfileController) UpdateContentPreferences(c *gin.Context) {
	var req request_models.ContentPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetInt64("user_id")
	if err := p.profileService.UpdateContentPreferences(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Content preferences updated successfully")
}
