package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents a direct message between two users.
type Message struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	SenderID        string    `gorm:"type:varchar(36);not null;index"`
	ReceiverID      string    `gorm:"type:varchar(36);not null;index"`
	ConversationKey string    `gorm:"size:80;not null;index:idx_messages_conversation,priority:1"`
	Content         string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"index:idx_messages_conversation,priority:2"`
	UpdatedAt       time.Time
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.ConversationKey = PairKey(m.SenderID, m.ReceiverID)
	return nil
}

// Participants returns the sender and receiver ids.
func (m Message) Participants() []string {
	return []string{m.SenderID, m.ReceiverID}
}
