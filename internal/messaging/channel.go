package messaging

import (
	"context"
	"strings"
	"time"

	"campusconnect/backend/internal/models"
	"campusconnect/backend/pkg/apperr"

	"gorm.io/gorm"
)

const (
	EventMessageReceived = "receive_message"
	EventMessageEdited   = "message_edited"
)

// TimestampLayout is ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Notifier pushes an event to the live rooms of a set of users.
type Notifier interface {
	Publish(userIDs []string, event string, payload interface{}) int
}

// Payload is the wire form of a message, used by HTTP responses and live events alike.
type Payload struct {
	ID         string `json:"id" example:"4f1c2a9e-6d0b-4d8e-9a51-0c7a9a0f3b11"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content" example:"Salut !"`
	Timestamp  string `json:"timestamp" example:"2024-03-01T10:15:30.000Z"`
}

// NewPayload converts a stored message to its wire form.
func NewPayload(m models.Message) Payload {
	return Payload{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Timestamp:  m.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// Channel persists direct messages and fans them out to both participants.
// Sending is not gated by friendship.
type Channel struct {
	db       *gorm.DB
	notifier Notifier
}

func NewChannel(db *gorm.DB, notifier Notifier) *Channel {
	return &Channel{db: db, notifier: notifier}
}

// Send stores a message and publishes it to the rooms of the sender and the receiver.
func (ch *Channel) Send(ctx context.Context, senderID, receiverID, content string) (Payload, error) {
	sender, okS := models.NormalizeID(senderID)
	receiver, okR := models.NormalizeID(receiverID)
	if !okS || !okR || strings.TrimSpace(content) == "" {
		return Payload{}, apperr.InvalidInput("senderId, receiverId and content are required")
	}

	msg := models.Message{
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
	}
	if err := ch.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return Payload{}, apperr.Internal(err, "Failed to send message")
	}

	payload := NewPayload(msg)
	ch.notifier.Publish(msg.Participants(), EventMessageReceived, payload)
	return payload, nil
}

// Edit replaces the content of a message. A missing message and an unchanged
// content are both reported as NotFound.
func (ch *Channel) Edit(ctx context.Context, messageID, content string) (Payload, error) {
	if strings.TrimSpace(content) == "" {
		return Payload{}, apperr.InvalidInput("Content cannot be empty")
	}
	id, ok := models.NormalizeID(messageID)
	if !ok {
		return Payload{}, apperr.InvalidInput("A valid message id is required")
	}

	var msg models.Message
	err := ch.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Message{}).
			Where("id = ? AND content <> ?", id, content).
			Updates(map[string]interface{}{"content": content, "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return apperr.Internal(result.Error, "Failed to edit message")
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Message not found or not modified")
		}
		if err := tx.First(&msg, "id = ?", id).Error; err != nil {
			return apperr.Internal(err, "Failed to reload message")
		}
		return nil
	})
	if err != nil {
		return Payload{}, err
	}

	// Recipients come from the stored record, never from the caller.
	payload := NewPayload(msg)
	ch.notifier.Publish(msg.Participants(), EventMessageEdited, payload)
	return payload, nil
}

// Conversation returns every message exchanged between idA and idB, oldest first.
func (ch *Channel) Conversation(ctx context.Context, idA, idB string) ([]Payload, error) {
	a, okA := models.NormalizeID(idA)
	b, okB := models.NormalizeID(idB)
	if !okA || !okB {
		return nil, apperr.InvalidInput("Both user ids are required and must be valid")
	}

	var messages []models.Message
	err := ch.db.WithContext(ctx).
		Where("conversation_key = ?", models.PairKey(a, b)).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, apperr.Internal(err, "Failed to fetch conversation")
	}

	out := make([]Payload, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewPayload(m))
	}
	return out, nil
}
