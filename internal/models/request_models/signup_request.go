package request_models

// Signup payloads arrive in the frontend's camelCase.

type CaregiverSignupRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Username         string `json:"username" binding:"required"`
	CaregiverRole    string `json:"caregiverRole" binding:"required"`
	ChildAge         int    `json:"childAge"`
	City             string `json:"city" binding:"required"`
	Country          string `json:"country" binding:"required"`
	Diagnosis        string `json:"diagnosis" binding:"required"`
	State            string `json:"state" binding:"required"`
	YearsOfDiagnosis int    `json:"yearsOfDiagnosis"`
	ZipCode          string `json:"zipCode" binding:"required"`
}

type ClinicianSignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	Prefix          string `json:"prefix"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Specialty       string `json:"specialty"`
	AreaOfExpertise string `json:"areaOfExpertise" binding:"required"`
	City            string `json:"city" binding:"required"`
	ClinicianType   string `json:"clinicianType" binding:"required"`
	Country         string `json:"country" binding:"required"`
	LicenseNumber   string `json:"licenseNumber" binding:"required"`
	State           string `json:"state" binding:"required"`
	ZipCode         string `json:"zipCode" binding:"required"`
}
