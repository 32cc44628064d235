package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100)"`
	Email           string    `gorm:"type:varchar(255);index"`
	Image           string    `gorm:"type:text"`
	TokenIdentifier string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	ExternalID      *string   `gorm:"type:varchar(255)"`
	Role            string    `gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
