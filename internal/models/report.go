package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is an append-only abuse report filed by one user against another.
type Report struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ReporterID string    `gorm:"type:varchar(36);not null;index" json:"reporterId"`
	ReportedID string    `gorm:"type:varchar(36);not null;index" json:"reportedId"`
	Reason     string    `gorm:"not null" json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
