package models

import "time"

// User is the owner of one or more apps.
type User struct {
	ID                 int     `gorm:"primaryKey;autoIncrement:false" json:"Id"`
	Name               string  `gorm:"size:255;not null" json:"Name"`
	Email              string  `gorm:"size:255;index" json:"Email"`
	ExternalID         string  `gorm:"column:external_user_id;size:64;index" json:"UserId"`
	Plan               string  `gorm:"size:64" json:"Plan"`
	PlatformSignupDate string  `gorm:"size:64" json:"PlatformSignupDate"`
	ApperSignupDate    string  `gorm:"size:64" json:"ApperSignupDate"`
	CompanyID          string  `gorm:"size:64" json:"CompanyID"`
	CompanyUserID      string  `gorm:"size:64" json:"CompanyUserId"`
	TotalApps          int     `gorm:"not null;default:0" json:"TotalApps"`
	TotalAppWithDB     int     `gorm:"column:total_app_with_db;not null;default:0" json:"TotalAppWithDB"`
	TotalCreditsUsed   float64 `gorm:"not null;default:0" json:"TotalCreditsUsed"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// UnknownUserID is the id carried by the unknown user sentinel.
const UnknownUserID = 0

// UnknownUser returns the placeholder joined to apps whose owner cannot be resolved.
// The signup dates are stamped with the time of the join.
func UnknownUser(now time.Time) User {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	return User{
		ID:                 UnknownUserID,
		Name:               "Unknown User",
		Email:              "unknown@example.com",
		ExternalID:         "unknown",
		Plan:               "Unknown",
		PlatformSignupDate: stamp,
		ApperSignupDate:    stamp,
		CompanyID:          "unknown",
		CompanyUserID:      "unknown",
	}
}

// IsUnknown reports whether u is the unknown user sentinel.
func (u User) IsUnknown() bool {
	return u.ID == UnknownUserID && u.ExternalID == "unknown"
}
