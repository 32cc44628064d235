package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. Exactly one owner column is set, enforced by a check constraint.
type PostModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessName   string     `gorm:"type:varchar(200);not null"`
	Category       string     `gorm:"type:varchar(100);not null;index"`
	Description    string     `gorm:"type:text"`
	Phone          string     `gorm:"type:varchar(50)"`
	Email          string     `gorm:"type:varchar(255)"`
	Website        string     `gorm:"type:varchar(255)"`
	Address        string     `gorm:"type:varchar(255)"`
	City           string     `gorm:"type:varchar(100);index"`
	Province       string     `gorm:"type:varchar(50);index"`
	PostalCode     string     `gorm:"type:varchar(20)"`
	Longitude      *float64   `gorm:"type:double precision"`
	Latitude       *float64   `gorm:"type:double precision"`
	Status         string     `gorm:"type:varchar(16);not null;index:idx_posts_status_expires_at,priority:1"`
	UserID         *uuid.UUID `gorm:"type:uuid;index;check:chk_posts_single_owner,(user_id IS NULL) <> (organization_id IS NULL)"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	PublishedAt    *time.Time
	ExpiresAt      *time.Time `gorm:"index:idx_posts_status_expires_at,priority:2"`
	Version        int        `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User         *UserModel         `gorm:"foreignKey:UserID"`
	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
