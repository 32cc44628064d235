package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel mirrors the 'organizations' table.
type OrganizationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(200);not null"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email      string    `gorm:"type:varchar(255)"`
	Phone      string    `gorm:"type:varchar(50)"`
	Website    string    `gorm:"type:varchar(255)"`
	Address    string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100)"`
	Province   string    `gorm:"type:varchar(50)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Sector     string    `gorm:"type:varchar(100)"`
	Logo       string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Owner   *UserModel                `gorm:"foreignKey:OwnerID"`
	Members []OrganizationMemberModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// OrganizationMemberModel mirrors the 'organization_members' join table.
type OrganizationMemberModel struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role           string    `gorm:"type:varchar(16);not null"`
	JoinedAt       time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationMemberModel) TableName() string {
	return "organization_members"
}
