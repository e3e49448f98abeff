package services

import (
	"context"
	"errors"
	"sync"

	"neurobridge/internal/models/db_models"
	"neurobridge/internal/payments"
	"neurobridge/pkg/utils"
)

// In-memory doubles for the repository and provider interfaces. The purchase
// repo reproduces the pending-only transition rule so idempotency scenarios
// behave like the real thing.

type fakeProvider struct {
	price      *payments.PriceInfo
	session    *payments.CheckoutSession
	fetched    *payments.CheckoutSession
	event      *payments.Event
	eventErr   error
	customerID string

	created        *payments.CreatedPrice
	createPriceErr error

	lastCheckoutParams payments.CheckoutParams
	lastPriceAmount    int64
}

func (f *fakeProvider) GetPrice(ctx context.Context, priceID string) (*payments.PriceInfo, error) {
	if f.price == nil {
		return nil, utils.NewPaymentProviderError("no such price", nil)
	}
	return f.price, nil
}

func (f *fakeProvider) CreatePrice(ctx context.Context, productName string, unitAmount int64, currency string) (*payments.CreatedPrice, error) {
	f.lastPriceAmount = unitAmount
	if f.createPriceErr != nil {
		return nil, f.createPriceErr
	}
	if f.created == nil {
		return nil, utils.NewPaymentProviderError("price create failed", nil)
	}
	return f.created, nil
}

func (f *fakeProvider) CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*payments.CheckoutSession, error) {
	f.lastCheckoutParams = p
	if f.session == nil {
		return nil, utils.NewPaymentProviderError("checkout unavailable", nil)
	}
	return f.session, nil
}

func (f *fakeProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error) {
	if f.fetched == nil {
		return nil, utils.NewPaymentProviderError("no such session", nil)
	}
	return f.fetched, nil
}

func (f *fakeProvider) CreateCustomer(ctx context.Context, email string, metadata map[string]string) (string, error) {
	if f.customerID == "" {
		return "", utils.NewPaymentProviderError("customer create failed", nil)
	}
	return f.customerID, nil
}

func (f *fakeProvider) ConstructEvent(payload []byte, signatureHeader string) (*payments.Event, error) {
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	return f.event, nil
}

type memPurchaseRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []*db_models.Purchase
}

func (m *memPurchaseRepo) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	purchase.ID = m.nextID
	m.rows = append(m.rows, purchase)
	return nil
}

func (m *memPurchaseRepo) FindByID(ctx context.Context, id int64) (*db_models.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, nil
}

func (m *memPurchaseRepo) FindBySessionID(ctx context.Context, sessionID string) (*db_models.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bySession(sessionID), nil
}

func (m *memPurchaseRepo) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*db_models.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byIntent(paymentIntentID), nil
}

func (m *memPurchaseRepo) TransitionBySessionID(ctx context.Context, sessionID string, to db_models.PurchaseStatus, paymentIntentID string) (*db_models.Purchase, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transition(m.bySession(sessionID), to, paymentIntentID)
}

func (m *memPurchaseRepo) TransitionByPaymentIntentID(ctx context.Context, paymentIntentID string, to db_models.PurchaseStatus) (*db_models.Purchase, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transition(m.byIntent(paymentIntentID), to, "")
}

func (m *memPurchaseRepo) bySession(sessionID string) *db_models.Purchase {
	for _, row := range m.rows {
		if row.StripeSessionID != nil && *row.StripeSessionID == sessionID {
			return row
		}
	}
	return nil
}

func (m *memPurchaseRepo) byIntent(paymentIntentID string) *db_models.Purchase {
	for _, row := range m.rows {
		if row.StripePaymentIntentID != nil && *row.StripePaymentIntentID == paymentIntentID {
			return row
		}
	}
	return nil
}

func (m *memPurchaseRepo) transition(row *db_models.Purchase, to db_models.PurchaseStatus, paymentIntentID string) (*db_models.Purchase, bool, error) {
	if row == nil {
		return nil, false, nil
	}
	if paymentIntentID != "" && row.StripePaymentIntentID == nil {
		row.StripePaymentIntentID = &paymentIntentID
	}
	if row.Status.Terminal() {
		return row, false, nil
	}
	row.Status = to
	return row, true, nil
}

type memPostPurchaseRepo struct {
	mu        sync.Mutex
	nextID    int64
	rows      []*db_models.PostPurchase
	insertErr error
	findErr   error
}

func (m *memPostPurchaseRepo) Insert(ctx context.Context, record *db_models.PostPurchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, row := range m.rows {
		if row.UserID == record.UserID && row.PostID == record.PostID {
			return utils.ErrAlreadyPurchased
		}
	}
	m.nextID++
	record.ID = m.nextID
	m.rows = append(m.rows, record)
	return nil
}

func (m *memPostPurchaseRepo) FindByUserAndPost(ctx context.Context, userID int64, postID string) (*db_models.PostPurchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, row := range m.rows {
		if row.UserID == userID && row.PostID == postID {
			return row, nil
		}
	}
	return nil, nil
}

func (m *memPostPurchaseRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.PostPurchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.PostPurchase
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memPostPurchaseRepo) ListByPost(ctx context.Context, postID string) ([]db_models.PostPurchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.PostPurchase
	for _, row := range m.rows {
		if row.PostID == postID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memPostPurchaseRepo) ListAll(ctx context.Context, offset, limit int) ([]db_models.PostPurchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db_models.PostPurchase, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (m *memPostPurchaseRepo) StatsByPost(ctx context.Context, postID string) (*db_models.PostPurchaseStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &db_models.PostPurchaseStats{Currency: "usd"}
	for _, row := range m.rows {
		if row.PostID == postID {
			stats.TotalPurchases++
			stats.TotalRevenue += row.Amount
			stats.Currency = row.Currency
		}
	}
	return stats, nil
}

type fakePostRepo struct {
	posts   map[string]*db_models.Post
	findErr error
}

func (f *fakePostRepo) Create(ctx context.Context, post *db_models.Post) error {
	if f.posts == nil {
		f.posts = map[string]*db_models.Post{}
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id string) (*db_models.Post, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.posts[id], nil
}

func (f *fakePostRepo) List(ctx context.Context, offset, limit int) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, post := range f.posts {
		out = append(out, *post)
	}
	return out, nil
}

func (f *fakePostRepo) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, post := range f.posts {
		if post.UserID != nil && *post.UserID == userID {
			out = append(out, *post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) UpdateStripeHandles(ctx context.Context, id string, priceID, productID string) error {
	post, ok := f.posts[id]
	if !ok {
		return errors.New("post not found")
	}
	post.StripePriceID = &priceID
	post.StripeProductID = &productID
	return nil
}

type fakeUserRepo struct {
	users   map[int64]*db_models.User
	nextID  int64
	findErr error

	updatedCustomerID string
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateCaregiverAccount(ctx context.Context, user *db_models.User, caregiver *db_models.Caregiver) error {
	f.add(user)
	caregiver.UserID = user.UserID
	return nil
}

func (f *fakeUserRepo) CreateClinicianAccount(ctx context.Context, user *db_models.User, clinician *db_models.Clinician) error {
	f.add(user)
	clinician.UserID = user.UserID
	return nil
}

func (f *fakeUserRepo) UpdateStripeCustomerID(ctx context.Context, id int64, customerID string) error {
	f.updatedCustomerID = customerID
	if user, ok := f.users[id]; ok {
		user.StripeCustomerID = &customerID
	}
	return nil
}

func (f *fakeUserRepo) TouchLastActive(ctx context.Context, id int64, at int64) error {
	if user, ok := f.users[id]; ok {
		user.LastActiveAt = &at
	}
	return nil
}

func (f *fakeUserRepo) add(user *db_models.User) {
	if f.users == nil {
		f.users = map[int64]*db_models.User{}
	}
	f.nextID++
	user.UserID = f.nextID
	f.users[user.UserID] = user
}

type fakeTrackingRepo struct {
	logins       map[int64]int
	viewedPosts  map[int64]int
	boughtPosts  map[int64]int
	profileViews map[int64]int
	incErr       error
}

func (f *fakeTrackingRepo) FindByUserID(ctx context.Context, userID int64) (*db_models.UserTracking, error) {
	return &db_models.UserTracking{
		UserID:           userID,
		LoginCount:       f.logins[userID],
		ViewedPostsCount: f.viewedPosts[userID],
		BoughtPostsCount: f.boughtPosts[userID],
		ProfileViewCount: f.profileViews[userID],
	}, nil
}

func (f *fakeTrackingRepo) IncrementLogin(ctx context.Context, userID int64) error {
	return f.bump(&f.logins, userID)
}

func (f *fakeTrackingRepo) IncrementViewedPosts(ctx context.Context, userID int64) error {
	return f.bump(&f.viewedPosts, userID)
}

func (f *fakeTrackingRepo) IncrementBoughtPosts(ctx context.Context, userID int64) error {
	return f.bump(&f.boughtPosts, userID)
}

func (f *fakeTrackingRepo) IncrementProfileViews(ctx context.Context, userID int64) error {
	return f.bump(&f.profileViews, userID)
}

func (f *fakeTrackingRepo) bump(counts *map[int64]int, userID int64) error {
	if f.incErr != nil {
		return f.incErr
	}
	if *counts == nil {
		*counts = map[int64]int{}
	}
	(*counts)[userID]++
	return nil
}

type fakeCaregiverRepo struct {
	caregivers map[int64]*db_models.Caregiver
	findErr    error
}

func (f *fakeCaregiverRepo) FindByUserID(ctx context.Context, userID int64) (*db_models.Caregiver, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.caregivers[userID], nil
}

func (f *fakeCaregiverRepo) Updates(ctx context.Context, userID int64, fields map[string]interface{}) error {
	return nil
}

func (f *fakeCaregiverRepo) UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error {
	caregiver, ok := f.caregivers[userID]
	if !ok {
		return errors.New("caregiver not found")
	}
	caregiver.ContentPreferencesTags = tags
	return nil
}

func (f *fakeCaregiverRepo) AppendSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error {
	caregiver, ok := f.caregivers[caregiverID]
	if !ok {
		return errors.New("caregiver not found")
	}
	caregiver.SubscribedCliniciansIDs = append(caregiver.SubscribedCliniciansIDs, clinicianID)
	return nil
}

func (f *fakeCaregiverRepo) RemoveSubscribedClinician(ctx context.Context, caregiverID int64, clinicianID string) error {
	caregiver, ok := f.caregivers[caregiverID]
	if !ok {
		return errors.New("caregiver not found")
	}
	var kept []string
	for _, id := range caregiver.SubscribedCliniciansIDs {
		if id != clinicianID {
			kept = append(kept, id)
		}
	}
	caregiver.SubscribedCliniciansIDs = kept
	return nil
}

func (f *fakeCaregiverRepo) AppendPurchasedContent(ctx context.Context, caregiverID int64, postID string) error {
	caregiver, ok := f.caregivers[caregiverID]
	if !ok {
		return errors.New("caregiver not found")
	}
	for _, id := range caregiver.PurchasedFeedContentIDs {
		if id == postID {
			return nil
		}
	}
	caregiver.PurchasedFeedContentIDs = append(caregiver.PurchasedFeedContentIDs, postID)
	return nil
}

type fakeClinicianRepo struct {
	clinicians map[int64]*db_models.Clinician
	findErr    error
}

func (f *fakeClinicianRepo) FindByUserID(ctx context.Context, userID int64) (*db_models.Clinician, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.clinicians[userID], nil
}

func (f *fakeClinicianRepo) ListAll(ctx context.Context, limit int) ([]db_models.Clinician, error) {
	var out []db_models.Clinician
	for _, clinician := range f.clinicians {
		out = append(out, *clinician)
	}
	return out, nil
}

func (f *fakeClinicianRepo) ListExcept(ctx context.Context, excludeID int64) ([]db_models.Clinician, error) {
	var out []db_models.Clinician
	for id, clinician := range f.clinicians {
		if id != excludeID {
			out = append(out, *clinician)
		}
	}
	return out, nil
}

func (f *fakeClinicianRepo) ListByIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error) {
	var out []db_models.Clinician
	for _, id := range ids {
		if clinician, ok := f.clinicians[id]; ok {
			out = append(out, *clinician)
		}
	}
	return out, nil
}

func (f *fakeClinicianRepo) ListNotInIDs(ctx context.Context, ids []int64) ([]db_models.Clinician, error) {
	excluded := map[int64]bool{}
	for _, id := range ids {
		excluded[id] = true
	}
	var out []db_models.Clinician
	for id, clinician := range f.clinicians {
		if !excluded[id] {
			out = append(out, *clinician)
		}
	}
	return out, nil
}

func (f *fakeClinicianRepo) Updates(ctx context.Context, userID int64, fields map[string]interface{}) error {
	return nil
}

func (f *fakeClinicianRepo) UpdateContentPreferences(ctx context.Context, userID int64, tags []string) error {
	clinician, ok := f.clinicians[userID]
	if !ok {
		return errors.New("clinician not found")
	}
	clinician.ContentPreferencesTags = tags
	return nil
}
