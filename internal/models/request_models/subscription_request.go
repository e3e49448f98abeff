package request_models

type SubscriptionRequest struct {
	CaregiverID int64 `json:"caregiver_id" binding:"required"`
	ClinicianID int64 `json:"clinician_id" binding:"required"`
}
