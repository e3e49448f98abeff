package response_models

type ProfileResponse struct {
	UserID           int64   `json:"user_id"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	ProfileType      string  `json:"profile_type"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	LastActiveAt     *int64  `json:"last_active_at,omitempty"`
	LastEngagementAt *int64  `json:"last_engagement_at,omitempty"`
	CreatedAt        int64   `json:"created_at"`
	UpdatedAt        int64   `json:"updated_at"`

	Caregiver *CaregiverProfile `json:"caregiver,omitempty"`
	Clinician *ClinicianProfile `json:"clinician,omitempty"`
}

type CaregiverProfile struct {
	FirstName                 string   `json:"first_name"`
	LastName                  string   `json:"last_name"`
	Username                  string   `json:"username"`
	Country                   string   `json:"country"`
	City                      string   `json:"city"`
	State                     string   `json:"state"`
	ZipCode                   string   `json:"zip_code"`
	CaregiverRole             string   `json:"caregiver_role"`
	ChildsAge                 int      `json:"childs_age"`
	Diagnosis                 string   `json:"diagnosis"`
	YearsOfDiagnosis          int      `json:"years_of_diagnosis"`
	MakeNamePublic            bool     `json:"make_name_public"`
	MakePersonalDetailsPublic bool     `json:"make_personal_details_public"`
	ProfileImage              *string  `json:"profile_image,omitempty"`
	CoverImage                *string  `json:"cover_image,omitempty"`
	Bio                       string   `json:"bio"`
	ContentPreferencesTags    []string `json:"content_preferences_tags"`
	SubscribedCliniciansIDs   []string `json:"subscribed_clinicians_ids"`
	PurchasedFeedContentIDs   []string `json:"purchased_feed_content_ids"`
}

type ClinicianProfile struct {
	Specialty              string   `json:"specialty"`
	ProfileImage           *string  `json:"profile_image,omitempty"`
	CoverImage             *string  `json:"cover_image,omitempty"`
	IsSubscribed           bool     `json:"is_subscribed"`
	Prefix                 *string  `json:"prefix,omitempty"`
	FirstName              string   `json:"first_name"`
	LastName               string   `json:"last_name"`
	Country                string   `json:"country"`
	City                   string   `json:"city"`
	State                  string   `json:"state"`
	ZipCode                string   `json:"zip_code"`
	Bio                    string   `json:"bio"`
	Approach               string   `json:"approach"`
	ClinicianType          string   `json:"clinician_type"`
	LicenseNumber          string   `json:"license_number"`
	AreaOfExpertise        string   `json:"area_of_expertise"`
	ContentPreferencesTags []string `json:"content_preferences_tags"`
}
