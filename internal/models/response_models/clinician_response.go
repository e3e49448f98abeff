package response_models

type ClinicianResponse struct {
	UserID          int64   `json:"user_id"`
	Specialty       string  `json:"specialty"`
	ProfileImage    *string `json:"profile_image,omitempty"`
	IsSubscribed    bool    `json:"is_subscribed"`
	Prefix          *string `json:"prefix,omitempty"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Country         string  `json:"country"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	ZipCode         string  `json:"zip_code"`
	ClinicianType   string  `json:"clinician_type"`
	LicenseNumber   string  `json:"license_number"`
	AreaOfExpertise string  `json:"area_of_expertise"`
}

type CaregiverBasicInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type SubscriptionResponse struct {
	CaregiverID           int64  `json:"caregiver_id"`
	SubscribedClinicianID int64  `json:"subscribed_clinician_id"`
	Message               string `json:"message"`
}
