package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type ClinicianController struct {
	subscriptionService services.SubscriptionServiceInterface
	clinicianService    services.ClinicianServiceInterface
}

func NewClinicianController(
	subscriptionService services.SubscriptionServiceInterface,
	clinicianService services.ClinicianServiceInterface,
) *ClinicianController {
	return &ClinicianController{
		subscriptionService: subscriptionService,
		clinicianService:    clinicianService,
	}
}

// ListClinicians godoc
// @Summary List clinicians in the directory
// @Tags Clinicians
// @Produce json
// @Param limit query int false "Maximum number of clinicians to return"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians [get]
func (cc *ClinicianController) ListClinicians(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}

	resp, err := cc.clinicianService.ListClinicians(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Clinicians retrieved successfully")
}

// GetClinician godoc
// @Summary Get a clinician profile by user ID
// @Tags Clinicians
// @Produce json
// @Param user_id path int true "Clinician user ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/{user_id} [get]
func (cc *ClinicianController) GetClinician(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := cc.clinicianService.GetClinician(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Clinician retrieved successfully")
}

// ListExcept godoc
// @Summary List all clinicians except the given user
// @Tags Clinicians
// @Produce json
// @Param user_id path int true "Clinician user ID to exclude"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/except/{user_id} [get]
func (cc *ClinicianController) ListExcept(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := cc.clinicianService.ListCliniciansExcept(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Clinicians retrieved successfully")
}

// Subscribe godoc
// @Summary Subscribe a caregiver to a clinician
// @Tags Clinicians
// @Accept json
// @Produce json
// @Param request body request_models.SubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/subscribe [post]
func (cc *ClinicianController) Subscribe(c *gin.Context) {
	var req request_models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := cc.subscriptionService.Subscribe(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Message)
}

// Unsubscribe godoc
// @Summary Unsubscribe a caregiver from a clinician
// @Tags Clinicians
// @Accept json
// @Produce json
// @Param request body request_models.SubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/unsubscribe [delete]
func (cc *ClinicianController) Unsubscribe(c *gin.Context) {
	var req request_models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := cc.subscriptionService.Unsubscribe(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Message)
}

// ListSubscribed godoc
// @Summary List clinicians a caregiver is subscribed to
// @Tags Clinicians
// @Produce json
// @Param caregiver_id path int true "Caregiver user ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/subscribed/{caregiver_id} [get]
func (cc *ClinicianController) ListSubscribed(c *gin.Context) {
	caregiverID, ok := pathInt64(c, "caregiver_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "caregiver_id must be an integer")
		return
	}

	resp, err := cc.subscriptionService.ListSubscribed(c.Request.Context(), caregiverID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Subscribed clinicians retrieved successfully")
}

// ListUnsubscribed godoc
// @Summary List clinicians a caregiver is not subscribed to
// @Tags Clinicians
// @Produce json
// @Param caregiver_id path int true "Caregiver user ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clinicians/unsubscribed/{caregiver_id} [get]
func (cc *ClinicianController) ListUnsubscribed(c *gin.Context) {
	caregiverID, ok := pathInt64(c, "caregiver_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "caregiver_id must be an integer")
		return
	}

	resp, err := cc.subscriptionService.ListUnsubscribed(c.Request.Context(), caregiverID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Unsubscribed clinicians retrieved successfully")
}
