package db_models

import "github.com/lib/pq"

type Caregiver struct {
	UserID                    int64  `gorm:"primaryKey"`
	FirstName                 string `gorm:"not null"`
	LastName                  string `gorm:"not null"`
	Username                  string `gorm:"uniqueIndex;not null"`
	Country                   string `gorm:"not null"`
	City                      string `gorm:"not null"`
	State                     string `gorm:"not null"`
	ZipCode                   string `gorm:"not null"`
	CaregiverRole             string `gorm:"not null"`
	ChildsAge                 int    `gorm:"not null"`
	Diagnosis                 string `gorm:"not null"`
	YearsOfDiagnosis          int    `gorm:"not null"`
	MakeNamePublic            bool   `gorm:"not null;default:false"`
	MakePersonalDetailsPublic bool   `gorm:"not null;default:false"`
	ProfileImage              *string
	CoverImage                *string
	Bio                       string         `gorm:"type:text"`
	ContentPreferencesTags    pq.StringArray `gorm:"type:text[]"`
	SubscribedCliniciansIDs   pq.StringArray `gorm:"type:text[]"`
	PurchasedFeedContentIDs   pq.StringArray `gorm:"type:text[]"`

	User User `gorm:"foreignKey:UserID;references:UserID"`
}
