package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentEventModel is one element of the payments.events JSONB column.
type PaymentEventModel struct {
	Kind    string     `json:"kind"`
	At      time.Time  `json:"at"`
	ActorID *uuid.UUID `json:"actorId,omitempty"`
	Detail  string     `json:"detail,omitempty"`
}

// PaymentModel mirrors the 'payments' table. Amounts are integer cents.
type PaymentModel struct {
	ID                uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	PostID            uuid.UUID                             `gorm:"type:uuid;not null;index"`
	Amount            int64                                 `gorm:"not null;check:chk_payments_amount,amount >= 0"`
	Method            string                                `gorm:"type:varchar(16);not null"`
	DurationDays      int                                   `gorm:"not null;check:chk_payments_duration,duration_days >= 1"`
	Status            string                                `gorm:"type:varchar(16);not null;index"`
	Notes             string                                `gorm:"type:text"`
	ExternalReference string                                `gorm:"type:varchar(255)"`
	PaymentDate       time.Time                             `gorm:"not null"`
	RecordedBy        uuid.UUID                             `gorm:"type:uuid;not null"`
	Events            datatypes.JSONSlice[PaymentEventModel] `gorm:"type:jsonb;not null"`
	Version           int                                   `gorm:"not null;default:1"`
	CreatedAt         time.Time                             `gorm:"index"`
	UpdatedAt         time.Time

	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
