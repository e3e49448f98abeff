package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/pkg/utils"
)

func newClinicianFixture() (*fakeClinicianRepo, ClinicianServiceInterface) {
	repo := &fakeClinicianRepo{
		clinicians: map[int64]*db_models.Clinician{
			10: {UserID: 10, FirstName: "Grace", LastName: "Okoye", Specialty: "Occupational Therapy"},
			11: {UserID: 11, FirstName: "Sam", LastName: "Reyes", Specialty: "Speech Pathology"},
		},
	}
	return repo, NewClinicianService(repo)
}

func TestListClinicians(t *testing.T) {
	_, svc := newClinicianFixture()

	resp, err := svc.ListClinicians(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestGetClinician(t *testing.T) {
	_, svc := newClinicianFixture()

	resp, err := svc.GetClinician(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Grace", resp.FirstName)
	assert.Equal(t, "Occupational Therapy", resp.Specialty)
}

func TestGetClinician_Missing(t *testing.T) {
	_, svc := newClinicianFixture()

	_, err := svc.GetClinician(context.Background(), 99)
	assert.ErrorIs(t, err, utils.ErrClinicianNotFound)
}

func TestListCliniciansExcept(t *testing.T) {
	_, svc := newClinicianFixture()

	resp, err := svc.ListCliniciansExcept(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, int64(11), resp[0].UserID)
}
