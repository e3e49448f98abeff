package request_models

// UpdateProfileRequest is a partial update; nil fields are left untouched.
// Which fields apply depends on the user's role.
type UpdateProfileRequest struct {
	FirstName                 *string   `json:"first_name"`
	LastName                  *string   `json:"last_name"`
	Username                  *string   `json:"username"`
	Country                   *string   `json:"country"`
	City                      *string   `json:"city"`
	State                     *string   `json:"state"`
	ZipCode                   *string   `json:"zip_code"`
	Bio                       *string   `json:"bio"`
	ProfileImage              *string   `json:"profile_image"`
	CoverImage                *string   `json:"cover_image"`
	ContentPreferencesTags    *[]string `json:"content_preferences_tags"`
	CaregiverRole             *string   `json:"caregiver_role"`
	ChildsAge                 *int      `json:"childs_age"`
	Diagnosis                 *string   `json:"diagnosis"`
	YearsOfDiagnosis          *int      `json:"years_of_diagnosis"`
	MakeNamePublic            *bool     `json:"make_name_public"`
	MakePersonalDetailsPublic *bool     `json:"make_personal_details_public"`
	Specialty                 *string   `json:"specialty"`
	Prefix                    *string   `json:"prefix"`
	Approach                  *string   `json:"approach"`
	ClinicianType             *string   `json:"clinician_type"`
	LicenseNumber             *string   `json:"license_number"`
	AreaOfExpertise           *string   `json:"area_of_expertise"`
}

type ContentPreferencesRequest struct {
	Role               string   `json:"role" binding:"required,oneof=caregiver clinician"`
	ContentPreferences []string `json:"content_preferences" binding:"required"`
}
