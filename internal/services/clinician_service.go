package services

import (
	"context"

	"neurobridge/internal/models/response_models"
	"neurobridge/internal/repositories"
	"neurobridge/pkg/utils"
)

type ClinicianServiceInterface interface {
	ListClinicians(ctx context.Context, limit int) ([]response_models.ClinicianResponse, error)
	GetClinician(ctx context.Context, userID int64) (*response_models.ClinicianResponse, error)
	ListCliniciansExcept(ctx context.Context, userID int64) ([]response_models.ClinicianResponse, error)
}

type ClinicianService struct {
	clinicianRepo repositories.ClinicianRepository
}

func NewClinicianService(clinicianRepo repositories.ClinicianRepository) ClinicianServiceInterface {
	return &ClinicianService{clinicianRepo: clinicianRepo}
}

func (c *ClinicianService) ListClinicians(ctx context.Context, limit int) ([]response_models.ClinicianResponse, error) {
	clinicians, err := c.clinicianRepo.ListAll(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clinicianResponses(clinicians), nil
}

func (c *ClinicianService) GetClinician(ctx context.Context, userID int64) (*response_models.ClinicianResponse, error) {
	clinician, err := c.clinicianRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if clinician == nil {
		return nil, utils.ErrClinicianNotFound
	}
	resp := clinicianResponse(clinician)
	return &resp, nil
}

func (c *ClinicianService) ListCliniciansExcept(ctx context.Context, userID int64) ([]response_models.ClinicianResponse, error) {
	clinicians, err := c.clinicianRepo.ListExcept(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return clinicianResponses(clinicians), nil
}
