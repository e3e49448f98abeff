package services

import (
	"context"
	"log"
	"strings"
	"time"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type AccountServiceInterface interface {
	SignupCaregiver(ctx context.Context, req request_models.CaregiverSignupRequest) (*response_models.SignupResponse, error)
	SignupClinician(ctx context.Context, req request_models.ClinicianSignupRequest) (*response_models.SignupResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AccountService struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	clinicianRepo repositories.ClinicianRepository
	trackingRepo  repositories.TrackingRepository
}

func NewAccountService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	clinicianRepo repositories.ClinicianRepository,
	trackingRepo repositories.TrackingRepository,
) AccountServiceInterface {
	return &AccountService{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		clinicianRepo: clinicianRepo,
		trackingRepo:  trackingRepo,
	}
}

func (a *AccountService) SignupCaregiver(ctx context.Context, req request_models.CaregiverSignupRequest) (*response_models.SignupResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     db_models.RoleCaregiver,
	}
	caregiver := &db_models.Caregiver{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Username:         req.Username,
		Country:          req.Country,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		CaregiverRole:    req.CaregiverRole,
		ChildsAge:        req.ChildAge,
		Diagnosis:        req.Diagnosis,
		YearsOfDiagnosis: req.YearsOfDiagnosis,
	}

	if err := a.userRepo.CreateCaregiverAccount(ctx, user, caregiver); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SignupResponse{
		Message: "Caregiver account created successfully",
		UserID:  user.UserID,
	}, nil
}

func (a *AccountService) SignupClinician(ctx context.Context, req request_models.ClinicianSignupRequest) (*response_models.SignupResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	specialty := req.Specialty
	if specialty == "" {
		specialty = req.AreaOfExpertise
	}

	user := &db_models.User{
		Email:    req.Email,
		Password: hashed,
		Role:     db_models.RoleClinician,
	}
	clinician := &db_models.Clinician{
		Specialty:       specialty,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Country:         req.Country,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		ClinicianType:   req.ClinicianType,
		LicenseNumber:   req.LicenseNumber,
		AreaOfExpertise: req.AreaOfExpertise,
	}
	if req.Prefix != "" {
		clinician.Prefix = &req.Prefix
	}

	if err := a.userRepo.CreateClinicianAccount(ctx, user, clinician); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SignupResponse{
		Message: "Clinician account created successfully",
		UserID:  user.UserID,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.Password, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresIn, err := utils.CreateToken(user.UserID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// Engagement bookkeeping is best-effort; a failed counter never blocks a
	// login.
	if err := a.trackingRepo.IncrementLogin(ctx, user.UserID); err != nil {
		log.Printf("login: failed to bump login count for user %d: %v", user.UserID, err)
	}
	if err := a.userRepo.TouchLastActive(ctx, user.UserID, time.Now().Unix()); err != nil {
		log.Printf("login: failed to touch last active for user %d: %v", user.UserID, err)
	}

	return &response_models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User: response_models.UserResponse{
			UserID: user.UserID,
			Email:  user.Email,
			Name:   a.resolveUsername(ctx, user),
			Role:   user.Role,
		},
	}, nil
}

func (a *AccountService) resolveUsername(ctx context.Context, user *db_models.User) string {
	switch user.Role {
	case db_models.RoleCaregiver:
		caregiver, err := a.caregiverRepo.FindByUserID(ctx, user.UserID)
		if err == nil && caregiver != nil {
			return caregiver.Username
		}
	case db_models.RoleClinician:
		clinician, err := a.clinicianRepo.FindByUserID(ctx, user.UserID)
		if err == nil && clinician != nil {
			return strings.ToLower(clinician.FirstName + "_" + clinician.LastName)
		}
	}
	return ""
}
