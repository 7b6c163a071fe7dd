package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationshipStatus defines the state of a friend request between two users.
type RelationshipStatus string

const (
	// StatusPending means the request was sent and the responder has not answered.
	StatusPending RelationshipStatus = "pending"

	// StatusAccepted means the users are now friends.
	StatusAccepted RelationshipStatus = "accepted"

	// StatusRefused means the request was declined. The record stays so the pair
	// cannot be re-requested until it is deleted.
	StatusRefused RelationshipStatus = "refused"
)

// Valid reports whether s is one of the three lifecycle states.
func (s RelationshipStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRefused:
		return true
	}
	return false
}

// Relationship is a directed friend request that becomes symmetric once accepted.
// PairKey carries a unique index so at most one record exists per unordered pair.
type Relationship struct {
	ID          string             `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RequesterID string             `gorm:"type:varchar(36);not null;index" json:"requesterId"`
	ResponderID string             `gorm:"type:varchar(36);not null;index" json:"responderId"`
	PairKey     string             `gorm:"size:80;not null;uniqueIndex:idx_relationships_pair" json:"-"`
	Status      RelationshipStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func (r *Relationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.PairKey = PairKey(r.RequesterID, r.ResponderID)
	return nil
}

// Counterpart returns the participant that is not userID.
func (r Relationship) Counterpart(userID string) string {
	if r.RequesterID == userID {
		return r.ResponderID
	}
	return r.RequesterID
}
