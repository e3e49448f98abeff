package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCaregiverNotFound  = errors.New("caregiver profile not found")
	ErrClinicianNotFound  = errors.New("clinician profile not found")
	ErrCustomerNotFound   = errors.New("user has no stripe customer id")

	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidRole        = errors.New("invalid role")

	ErrPostNotBillable  = errors.New("post has no registered price")
	ErrAlreadyPurchased = errors.New("user has already purchased this post")
	ErrInvalidWebhook   = errors.New("invalid webhook signature or payload")

	ErrDatabaseError = errors.New("database error")
)

// PaymentProviderError carries the processor's own message so it can be
// surfaced to the caller as a client error.
type PaymentProviderError struct {
	Message string
	Err     error
}

func (e *PaymentProviderError) Error() string {
	return "payment provider: " + e.Message
}

func (e *PaymentProviderError) Unwrap() error {
	return e.Err
}

func NewPaymentProviderError(message string, err error) error {
	return &PaymentProviderError{Message: message, Err: err}
}
