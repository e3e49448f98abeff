package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/pkg/utils"
)

type stubPaymentService struct {
	webhookErr error

	gotPayload   []byte
	gotSignature string
}

func (s *stubPaymentService) CreateCheckout(ctx context.Context, userID int64, req request_models.CreateCheckoutRequest) (*response_models.CheckoutResponse, error) {
	return nil, utils.ErrPostNotFound
}

func (s *stubPaymentService) VerifyPayment(ctx context.Context, sessionID string) (*response_models.PurchaseResponse, error) {
	return nil, utils.ErrPurchaseNotFound
}

func (s *stubPaymentService) ProcessWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	s.gotPayload = payload
	s.gotSignature = signatureHeader
	return s.webhookErr
}

func (s *stubPaymentService) EnsureCustomer(ctx context.Context, userID int64, email string) (*response_models.StripeCustomerResponse, error) {
	return nil, utils.ErrUserNotFound
}

func (s *stubPaymentService) GetCustomer(ctx context.Context, userID int64) (*response_models.StripeCustomerResponse, error) {
	return nil, utils.ErrCustomerNotFound
}

func newWebhookRouter(svc *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPaymentController(svc)
	r.POST("/payments/webhook", controller.HandleWebhook)
	return r
}

func TestHandleWebhook_PassesRawBodyAndSignature(t *testing.T) {
	svc := &stubPaymentService{}
	r := newWebhookRouter(svc)

	body := []byte(`{"type":"checkout.session.completed"}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, svc.gotPayload)
	assert.Equal(t, "t=1,v1=abc", svc.gotSignature)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	svc := &stubPaymentService{webhookErr: utils.ErrInvalidWebhook}
	r := newWebhookRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
