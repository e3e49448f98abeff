package services

import (
	"context"
	"log"

	"github.com/lib/pq"
	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID int64) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req request_models.UpdateProfileRequest) error
	GetContentPreferences(ctx context.Context, userID int64, role string) ([]string, error)
	UpdateContentPreferences(ctx context.Context, userID int64, req request_models.ContentPreferencesRequest) error
}

type ProfileService struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	clinicianRepo repositories.ClinicianRepository
	trackingRepo  repositories.TrackingRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	trackingRepo repositories.TrackingRepository,
) ProfileServiceInterface {
	return &ProfileService{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		clinicianRepo: clinicianRepo,
		trackingRepo:  trackingRepo,
	}
}

func (p *ProfileService) GetProfile(ctx context.Context, userID int64) (*response_models.ProfileResponse, error) {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile := &response_models.ProfileResponse{
		UserID:           user.UserID,
		Email:            user.Email,
		Role:             user.Role,
		ProfileType:      user.Role,
		StripeCustomerID: user.StripeCustomerID,
		LastActiveAt:     user.LastActiveAt,
		LastEngagementAt: user.LastEngagementAt,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}

	switch user.Role {
	case db_models.RoleCaregiver:
		caregiver, err := p.caregiverRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if caregiver == nil {
			return nil, utils.ErrCaregiverNotFound
		}
		profile.Caregiver = &response_models.CaregiverProfile{
			FirstName:                 caregiver.FirstName,
			LastName:                  caregiver.LastName,
			Username:                  caregiver.Username,
			Country:                   caregiver.Country,
			City:                      caregiver.City,
			State:                     caregiver.State,
			ZipCode:                   caregiver.ZipCode,
			CaregiverRole:             caregiver.CaregiverRole,
			ChildsAge:                 caregiver.ChildsAge,
			Diagnosis:                 caregiver.Diagnosis,
			YearsOfDiagnosis:          caregiver.YearsOfDiagnosis,
			MakeNamePublic:            caregiver.MakeNamePublic,
			MakePersonalDetailsPublic: caregiver.MakePersonalDetailsPublic,
			ProfileImage:              caregiver.ProfileImage,
			CoverImage:                caregiver.CoverImage,
			Bio:                       caregiver.Bio,
			ContentPreferencesTags:    caregiver.ContentPreferencesTags,
			SubscribedCliniciansIDs:   caregiver.SubscribedCliniciansIDs,
			PurchasedFeedContentIDs:   caregiver.PurchasedFeedContentIDs,
		}
	case db_models.RoleClinician:
		clinician, err := p.clinicianRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if clinician == nil {
			return nil, utils.ErrClinicianNotFound
		}
		profile.Clinician = &response_models.ClinicianProfile{
			Specialty:              clinician.Specialty,
			ProfileImage:           clinician.ProfileImage,
			CoverImage:             clinician.CoverImage,
			IsSubscribed:           clinician.IsSubscribed,
			Prefix:                 clinician.Prefix,
			FirstName:              clinician.FirstName,
			LastName:               clinician.LastName,
			Country:                clinician.Country,
			City:                   clinician.City,
			State:                  clinician.State,
			ZipCode:                clinician.ZipCode,
			Bio:                    clinician.Bio,
			Approach:               clinician.Approach,
			ClinicianType:          clinician.ClinicianType,
			LicenseNumber:          clinician.LicenseNumber,
			AreaOfExpertise:        clinician.AreaOfExpertise,
			ContentPreferencesTags: clinician.ContentPreferencesTags,
		}
	}

	if err := p.trackingRepo.IncrementProfileViews(ctx, userID); err != nil {
		log.Printf("profile: failed to bump profile views for user %d: %v", userID, err)
	}

	return profile, nil
}

func (p *ProfileService) UpdateProfile(ctx context.Context, userID int64, req request_models.UpdateProfileRequest) error {
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	switch user.Role {
	case db_models.RoleCaregiver:
		caregiver, err := p.caregiverRepo.FindByUserID(ctx, userID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if caregiver == nil {
			return utils.ErrCaregiverNotFound
		}
		if err := p.caregiverRepo.Updates(ctx, userID, caregiverUpdates(req)); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	case db_models.RoleClinician:
		clinician, err := p.clinicianRepo.FindByUserID(ctx, userID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if clinician == nil {
			return utils.ErrClinicianNotFound
		}
		if err := p.clinicianRepo.Updates(ctx, userID, clinicianUpdates(req)); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	default:
		return utils.ErrInvalidRole
	}
}

func (p *ProfileService) GetContentPreferences(ctx context.Context, userID int64, role string) ([]string, error) {
	if err := p.checkRole(ctx, userID, role); err != nil {
		return nil, err
	}

	switch role {
	case db_models.RoleCaregiver:
		caregiver, err := p.caregiverRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if caregiver == nil {
			return nil, utils.ErrCaregiverNotFound
		}
		return caregiver.ContentPreferencesTags, nil
	default:
		clinician, err := p.clinicianRepo.FindByUserID(ctx, userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if clinician == nil {
			return nil, utils.ErrClinicianNotFound
		}
		return clinician.ContentPreferencesTags, nil
	}
}

func (p *ProfileService) UpdateContentPreferences(ctx context.Context, userID int64, req request_models.ContentPreferencesRequest) error {
	if err := p.checkRole(ctx, userID, req.Role); err != nil {
		return err
	}

	switch req.Role {
	case db_models.RoleCaregiver:
		if err := p.caregiverRepo.UpdateContentPreferences(ctx, userID, req.ContentPreferences); err != nil {
			return utils.ErrDatabaseError
		}
	default:
		if err := p.clinicianRepo.UpdateContentPreferences(ctx, userID, req.ContentPreferences); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (p *ProfileService) checkRole(ctx context.Context, userID int64, role string) error {
	if role != db_models.RoleCaregiver && role != db_models.RoleClinician {
		return utils.ErrInvalidRole
	}
	user, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if user.Role != role {
		return utils.ErrInvalidRole
	}
	return nil
}

func caregiverUpdates(req request_models.UpdateProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	setIfPresent(fields, "first_name", req.FirstName)
	setIfPresent(fields, "last_name", req.LastName)
	setIfPresent(fields, "username", req.Username)
	setIfPresent(fields, "country", req.Country)
	setIfPresent(fields, "city", req.City)
	setIfPresent(fields, "state", req.State)
	setIfPresent(fields, "zip_code", req.ZipCode)
	setIfPresent(fields, "caregiver_role", req.CaregiverRole)
	setIfPresent(fields, "diagnosis", req.Diagnosis)
	setIfPresent(fields, "bio", req.Bio)
	setIfPresent(fields, "profile_image", req.ProfileImage)
	setIfPresent(fields, "cover_image", req.CoverImage)
	if req.ChildsAge != nil {
		fields["childs_age"] = *req.ChildsAge
	}
	if req.YearsOfDiagnosis != nil {
		fields["years_of_diagnosis"] = *req.YearsOfDiagnosis
	}
	if req.MakeNamePublic != nil {
		fields["make_name_public"] = *req.MakeNamePublic
	}
	if req.MakePersonalDetailsPublic != nil {
		fields["make_personal_details_public"] = *req.MakePersonalDetailsPublic
	}
	if req.ContentPreferencesTags != nil {
		fields["content_preferences_tags"] = stringArray(*req.ContentPreferencesTags)
	}
	return fields
}

func clinicianUpdates(req request_models.UpdateProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	setIfPresent(fields, "specialty", req.Specialty)
	setIfPresent(fields, "prefix", req.Prefix)
	setIfPresent(fields, "first_name", req.FirstName)
	setIfPresent(fields, "last_name", req.LastName)
	setIfPresent(fields, "country", req.Country)
	setIfPresent(fields, "city", req.City)
	setIfPresent(fields, "state", req.State)
	setIfPresent(fields, "zip_code", req.ZipCode)
	setIfPresent(fields, "bio", req.Bio)
	setIfPresent(fields, "approach", req.Approach)
	setIfPresent(fields, "clinician_type", req.ClinicianType)
	setIfPresent(fields, "license_number", req.LicenseNumber)
	setIfPresent(fields, "area_of_expertise", req.AreaOfExpertise)
	setIfPresent(fields, "profile_image", req.ProfileImage)
	setIfPresent(fields, "cover_image", req.CoverImage)
	if req.ContentPreferencesTags != nil {
		fields["content_preferences_tags"] = stringArray(*req.ContentPreferencesTags)
	}
	return fields
}

func setIfPresent(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func stringArray(values []string) pq.StringArray {
	return pq.StringArray(values)
}
