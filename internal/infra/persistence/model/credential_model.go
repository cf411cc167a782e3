// Package model contains the GORM models mirroring the database tables.
package model

import "time"

// CredentialModel mirrors the 'credentials' table. One row per identity; the
// token columns hold sealed values when credential encryption is enabled.
type CredentialModel struct {
	IdentityKey  string  `gorm:"type:varchar(255);primaryKey"`
	AccessToken  string  `gorm:"type:text;not null"`
	RefreshToken *string `gorm:"type:text"`
	Email        string  `gorm:"type:varchar(320)"`
	Name         string  `gorm:"type:varchar(255)"`
	AvatarURL    string  `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
