package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// SignupCaregiver godoc
// @Summary Register a caregiver account
// @Description Create a caregiver account together with its profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.CaregiverSignupRequest true "Caregiver signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup/caregiver [post]
func (a *AuthController) SignupCaregiver(c *gin.Context) {
	var req request_models.CaregiverSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.accountService.SignupCaregiver(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Caregiver account created successfully")
}

// SignupClinician godoc
// @Summary Register a clinician account
// @Description Create a clinician account together with its profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ClinicianSignupRequest true "Clinician signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup/clinician [post]
func (a *AuthController) SignupClinician(c *gin.Context) {
	var req request_models.ClinicianSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.accountService.SignupClinician(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Clinician account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}
