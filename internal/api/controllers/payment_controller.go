package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/services"
	"neurobridge/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Create a checkout session for a post
// @Description Starts a hosted checkout for a billable post and records a pending purchase
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Create checkout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/create-checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetInt64("user_id")
	resp, err := p.paymentService.CreateCheckout(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout session created successfully")
}

// VerifyPayment godoc
// @Summary Verify a checkout session
// @Description Reconciles a purchase against the processor's view of the session
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verify payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var req request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.VerifyPayment(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment verified")
}

// HandleWebhook godoc
// @Summary Receive processor webhook events
// @Description Verifies the event signature and reconciles purchase state
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read request body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := p.paymentService.ProcessWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Webhook processed")
}

// CreateCustomer godoc
// @Summary Create or fetch the processor customer for a user
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCustomerRequest true "Create customer payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/customers [post]
func (p *PaymentController) CreateCustomer(c *gin.Context) {
	var req request_models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := p.paymentService.EnsureCustomer(c.Request.Context(), req.UserID, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Customer ready")
}

// GetCustomer godoc
// @Summary Get the processor customer for a user
// @Tags Payments
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/customers/{user_id} [get]
func (p *PaymentController) GetCustomer(c *gin.Context) {
	userID, ok := pathInt64(c, "user_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "user_id must be an integer")
		return
	}

	resp, err := p.paymentService.GetCustomer(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Customer retrieved successfully")
}
