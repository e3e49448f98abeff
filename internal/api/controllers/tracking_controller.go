package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type TrackingController struct {
	trackingService services.TrackingServiceInterface
}

func NewTrackingController(trackingService services.TrackingServiceInterface) *TrackingController {
	return &TrackingController{
		trackingService: trackingService,
	}
}

// GetTracking godoc
// @Summary Get engagement counters for a user
// @Tags Tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tracking/{user_id} [get]
func (t *TrackingController) GetTracking(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := t.trackingService.GetTracking(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Tracking retrieved successfully")
}

// RecordLogin godoc
// @Summary Increment a user's login counter
// @Tags Tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tracking/{user_id}/login [post]
func (t *TrackingController) RecordLogin(c *gin.Context) {
	t.recordCounter(c, t.trackingService.RecordLogin, "Login recorded")
}

// RecordPostView godoc
// @Summary Increment a user's viewed-posts counter
// @Tags Tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tracking/{user_id}/view-post [post]
func (t *TrackingController) RecordPostView(c *gin.Context) {
	t.recordCounter(c, t.trackingService.RecordPostView, "Post view recorded")
}

// RecordPostPurchase godoc
// @Summary Increment a user's bought-posts counter
// @Tags Tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tracking/{user_id}/buy-post [post]
func (t *TrackingController) RecordPostPurchase(c *gin.Context) {
	t.recordCounter(c, t.trackingService.RecordPostPurchase, "Post purchase recorded")
}

// RecordProfileView godoc
// @Summary Increment a user's profile-view counter
// @Tags Tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tracking/{user_id}/view-profile [post]
func (t *TrackingController) RecordProfileView(c *gin.Context) {
	t.recordCounter(c, t.trackingService.RecordProfileView, "Profile view recorded")
}

func (t *TrackingController) recordCounter(c *gin.Context, record func(ctx context.Context, userID int64) error, message string) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	if err := record(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user_id": userID}, message)
}
