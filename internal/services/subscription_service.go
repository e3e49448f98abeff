package services

import (
	"context"
	"strconv"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, req request_models.SubscriptionRequest) (*response_models.SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, req request_models.SubscriptionRequest) (*response_models.SubscriptionResponse, error)
	ListSubscribed(ctx context.Context, caregiverID int64) ([]response_models.ClinicianResponse, error)
	ListUnsubscribed(ctx context.Context, caregiverID int64) ([]response_models.ClinicianResponse, error)
}

type SubscriptionService struct {
	caregiverRepo repositories.CaregiverRepository
	clinicianRepo repositories.ClinicianRepository
	userRepo      repositories.UserRepository
}

func NewSubscriptionService(
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	userRepo repositories.UserRepository,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		caregiverRepo: caregiverRepo,
		clinicianRepo: clinicianRepo,
		userRepo:      userRepo,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, req request_models.SubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	caregiver, err := s.lookupPair(ctx, req)
	if err != nil {
		return nil, err
	}

	clinicianID := strconv.FormatInt(req.ClinicianID, 10)
	if containsString(caregiver.SubscribedCliniciansIDs, clinicianID) {
		return subscriptionResponse(req, "Already subscribed to this clinician"), nil
	}

	if err := s.caregiverRepo.AppendSubscribedClinician(ctx, req.CaregiverID, clinicianID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subscriptionResponse(req, "Successfully subscribed to clinician"), nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, req request_models.SubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	caregiver, err := s.lookupPair(ctx, req)
	if err != nil {
		return nil, err
	}

	clinicianID := strconv.FormatInt(req.ClinicianID, 10)
	if !containsString(caregiver.SubscribedCliniciansIDs, clinicianID) {
		return subscriptionResponse(req, "Not subscribed to this clinician"), nil
	}

	if err := s.caregiverRepo.RemoveSubscribedClinician(ctx, req.CaregiverID, clinicianID); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subscriptionResponse(req, "Successfully unsubscribed from clinician"), nil
}

func (s *SubscriptionService) ListSubscribed(ctx context.Context, caregiverID int64) ([]response_models.ClinicianResponse, error) {
	caregiver, err := s.caregiverRepo.FindByUserID(ctx, caregiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if caregiver == nil {
		return nil, utils.ErrCaregiverNotFound
	}

	ids := parseIDs(caregiver.SubscribedCliniciansIDs)
	if len(ids) == 0 {
		return []response_models.ClinicianResponse{}, nil
	}

	clinicians, err := s.clinicianRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clinicianResponses(clinicians), nil
}

func (s *SubscriptionService) ListUnsubscribed(ctx context.Context, caregiverID int64) ([]response_models.ClinicianResponse, error) {
	user, err := s.userRepo.FindByID(ctx, caregiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	if user.Role != db_models.RoleCaregiver {
		return nil, utils.ErrInvalidRole
	}

	caregiver, err := s.caregiverRepo.FindByUserID(ctx, caregiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if caregiver == nil {
		return nil, utils.ErrCaregiverNotFound
	}

	clinicians, err := s.clinicianRepo.ListNotInIDs(ctx, parseIDs(caregiver.SubscribedCliniciansIDs))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clinicianResponses(clinicians), nil
}

func (s *SubscriptionService) lookupPair(ctx context.Context, req request_models.SubscriptionRequest) (*db_models.Caregiver, error) {
	clinician, err := s.clinicianRepo.FindByUserID(ctx, req.ClinicianID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if clinician == nil {
		return nil, utils.ErrClinicianNotFound
	}

	caregiver, err := s.caregiverRepo.FindByUserID(ctx, req.CaregiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if caregiver == nil {
		return nil, utils.ErrCaregiverNotFound
	}
	return caregiver, nil
}

func subscriptionResponse(req request_models.SubscriptionRequest, message string) *response_models.SubscriptionResponse {
	return &response_models.SubscriptionResponse{
		CaregiverID:           req.CaregiverID,
		SubscribedClinicianID: req.ClinicianID,
		Message:               message,
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// Subscribed ids live in a text[] column; ignore anything unparsable.
func parseIDs(values []string) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func clinicianResponse(clinician *db_models.Clinician) response_models.ClinicianResponse {
	return response_models.ClinicianResponse{
		UserID:          clinician.UserID,
		Specialty:       clinician.Specialty,
		ProfileImage:    clinician.ProfileImage,
		IsSubscribed:    clinician.IsSubscribed,
		Prefix:          clinician.Prefix,
		FirstName:       clinician.FirstName,
		LastName:        clinician.LastName,
		Country:         clinician.Country,
		City:            clinician.City,
		State:           clinician.State,
		ZipCode:         clinician.ZipCode,
		ClinicianType:   clinician.ClinicianType,
		LicenseNumber:   clinician.LicenseNumber,
		AreaOfExpertise: clinician.AreaOfExpertise,
	}
}

func clinicianResponses(clinicians []db_models.Clinician) []response_models.ClinicianResponse {
	out := make([]response_models.ClinicianResponse, 0, len(clinicians))
	for i := range clinicians {
		out = append(out, clinicianResponse(&clinicians[i]))
	}
	return out
}
