package db_models

import "github.com/lib/pq"

type Clinician struct {
	UserID          int64  `gorm:"primaryKey"`
	Specialty       string `gorm:"not null"`
	ProfileImage    *string
	CoverImage      *string
	IsSubscribed    bool `gorm:"default:false"`
	Prefix          *string
	FirstName       string `gorm:"not null"`
	LastName        string `gorm:"not null"`
	Country         string `gorm:"not null"`
	City            string `gorm:"not null"`
	State           string `gorm:"not null"`
	ZipCode         string `gorm:"not null"`
	Bio             string `gorm:"type:text"`
	Approach        string `gorm:"type:text"`
	ClinicianType   string `gorm:"not null"`
	LicenseNumber   string `gorm:"not null"`
	AreaOfExpertise string `gorm:"not null"`

	ContentPreferencesTags pq.StringArray `gorm:"type:text[]"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
}
