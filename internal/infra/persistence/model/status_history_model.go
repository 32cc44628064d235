package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistoryModel mirrors the append-only 'post_status_history' table.
type StatusHistoryModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PostID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_status_history_post_created,priority:1"`
	PreviousStatus *string    `gorm:"type:varchar(16)"`
	NewStatus      string     `gorm:"type:varchar(16);not null"`
	Reason         string     `gorm:"type:text"`
	ChangedBy      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"index:idx_status_history_post_created,priority:2;index"`

	Post *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StatusHistoryModel) TableName() string {
	return "post_status_history"
}
