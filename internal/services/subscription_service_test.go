package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/models/request_models"
	"neurobridge/pkg/utils"
)

func newSubscriptionFixture() (*fakeCaregiverRepo, *fakeClinicianRepo, SubscriptionServiceInterface) {
	caregivers := &fakeCaregiverRepo{caregivers: map[int64]*db_models.Caregiver{
		1: {UserID: 1, Username: "carer"},
	}}
	clinicians := &fakeClinicianRepo{clinicians: map[int64]*db_models.Clinician{
		10: {UserID: 10, FirstName: "Grace", LastName: "Hoang", Specialty: "OT"},
		11: {UserID: 11, FirstName: "Minh", LastName: "Tran", Specialty: "Speech"},
	}}
	users := &fakeUserRepo{users: map[int64]*db_models.User{
		1: {UserID: 1, Email: "carer@example.com", Role: db_models.RoleCaregiver},
	}}
	return caregivers, clinicians, NewSubscriptionService(caregivers, clinicians, users)
}

func TestSubscribe(t *testing.T) {
	caregivers, _, svc := newSubscriptionFixture()

	resp, err := svc.Subscribe(context.Background(), request_models.SubscriptionRequest{CaregiverID: 1, ClinicianID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Successfully subscribed to clinician", resp.Message)
	assert.Equal(t, []string{"10"}, []string(caregivers.caregivers[1].SubscribedCliniciansIDs))

	// Subscribing again is a no-op, not an error.
	resp, err = svc.Subscribe(context.Background(), request_models.SubscriptionRequest{CaregiverID: 1, ClinicianID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Already subscribed to this clinician", resp.Message)
	assert.Len(t, caregivers.caregivers[1].SubscribedCliniciansIDs, 1)
}

func TestSubscribe_UnknownClinician(t *testing.T) {
	_, _, svc := newSubscriptionFixture()

	_, err := svc.Subscribe(context.Background(), request_models.SubscriptionRequest{CaregiverID: 1, ClinicianID: 999})
	assert.ErrorIs(t, err, utils.ErrClinicianNotFound)
}

func TestUnsubscribe(t *testing.T) {
	caregivers, _, svc := newSubscriptionFixture()
	caregivers.caregivers[1].SubscribedCliniciansIDs = []string{"10", "11"}

	resp, err := svc.Unsubscribe(context.Background(), request_models.SubscriptionRequest{CaregiverID: 1, ClinicianID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Successfully unsubscribed from clinician", resp.Message)
	assert.Equal(t, []string{"11"}, []string(caregivers.caregivers[1].SubscribedCliniciansIDs))

	resp, err = svc.Unsubscribe(context.Background(), request_models.SubscriptionRequest{CaregiverID: 1, ClinicianID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Not subscribed to this clinician", resp.Message)
}

func TestListSubscribedAndUnsubscribed(t *testing.T) {
	caregivers, _, svc := newSubscriptionFixture()
	caregivers.caregivers[1].SubscribedCliniciansIDs = []string{"10"}

	subscribed, err := svc.ListSubscribed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, subscribed, 1)
	assert.Equal(t, int64(10), subscribed[0].UserID)

	unsubscribed, err := svc.ListUnsubscribed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, unsubscribed, 1)
	assert.Equal(t, int64(11), unsubscribed[0].UserID)
}

func TestListSubscribed_EmptyList(t *testing.T) {
	_, _, svc := newSubscriptionFixture()

	subscribed, err := svc.ListSubscribed(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, subscribed)
}
