// Package relationship owns the friend-request state machine.
//
// A relationship is created pending by the requester and moved to accepted or
// refused by either party. Every lookup goes through models.PairKey, so the
// direction in which the two ids are given never matters, and the unique index
// on that key keeps one record per pair even under concurrent requests.
package relationship

import (
	"context"
	"errors"

	"campusconnect/backend/internal/models"
	"campusconnect/backend/pkg/apperr"

	"gorm.io/gorm"
)

// EventFriendRequestReceived is published to the responder's room.
const EventFriendRequestReceived = "friend_request_received"

// Notifier pushes an event to the live rooms of a set of users.
type Notifier interface {
	Publish(userIDs []string, event string, payload interface{}) int
}

// RequestNotification is the payload of EventFriendRequestReceived.
type RequestNotification struct {
	RelationshipID string `json:"relationshipId"`
	SenderID       string `json:"senderId"`
	ReceiverID     string `json:"receiverId"`
	Message        string `json:"message"`
}

// CascadeResult counts the records removed by an account deletion.
type CascadeResult struct {
	Relationships int64 `json:"deletedRelationshipsCount"`
	Messages      int64 `json:"deletedMessagesCount"`
}

type Engine struct {
	db       *gorm.DB
	notifier Notifier
}

func NewEngine(db *gorm.DB, notifier Notifier) *Engine {
	return &Engine{db: db, notifier: notifier}
}

func normalizePair(a, b string) (string, string, error) {
	idA, okA := models.NormalizeID(a)
	idB, okB := models.NormalizeID(b)
	if !okA || !okB {
		return "", "", apperr.InvalidInput("Both user ids are required and must be valid")
	}
	return idA, idB, nil
}

// SendRequest creates a pending request from requesterID to responderID.
func (e *Engine) SendRequest(ctx context.Context, requesterID, responderID string) (*models.Relationship, error) {
	requesterID, responderID, err := normalizePair(requesterID, responderID)
	if err != nil {
		return nil, err
	}
	if requesterID == responderID {
		return nil, apperr.InvalidInput("Cannot send a friend request to yourself")
	}

	var count int64
	err = e.db.WithContext(ctx).Model(&models.Relationship{}).
		Where("pair_key = ?", models.PairKey(requesterID, responderID)).
		Count(&count).Error
	if err != nil {
		return nil, apperr.Internal(err, "Failed to check existing relationship")
	}
	if count > 0 {
		return nil, apperr.Conflict("A request or friendship already exists")
	}

	rel := &models.Relationship{
		RequesterID: requesterID,
		ResponderID: responderID,
		Status:      models.StatusPending,
	}
	if err := e.db.WithContext(ctx).Create(rel).Error; err != nil {
		// Lost the race against a concurrent request for the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("A request or friendship already exists")
		}
		return nil, apperr.Internal(err, "Failed to create friend request")
	}

	e.notifier.Publish([]string{responderID}, EventFriendRequestReceived, RequestNotification{
		RelationshipID: rel.ID,
		SenderID:       requesterID,
		ReceiverID:     responderID,
		Message:        "You have received a new friend request!",
	})

	return rel, nil
}

// ListByStatus returns the profiles of every counterpart of userID whose
// relationship has the given status, in either role.
func (e *Engine) ListByStatus(ctx context.Context, userID string, status models.RelationshipStatus) ([]models.Profile, error) {
	userID, ok := models.NormalizeID(userID)
	if !ok {
		return nil, apperr.InvalidInput("A valid user id is required")
	}
	if !status.Valid() {
		return nil, apperr.InvalidInput("Unknown relationship status")
	}

	var relations []models.Relationship
	err := e.db.WithContext(ctx).
		Where("(requester_id = ? OR responder_id = ?) AND status = ?", userID, userID, status).
		Order("updated_at DESC").
		Find(&relations).Error
	if err != nil {
		return nil, apperr.Internal(err, "Failed to fetch relationships")
	}

	profiles := []models.Profile{}
	if len(relations) == 0 {
		return profiles, nil
	}

	counterparts := make([]string, 0, len(relations))
	for _, r := range relations {
		counterparts = append(counterparts, r.Counterpart(userID))
	}

	var found []models.Profile
	if err := e.db.WithContext(ctx).Where("user_id IN ?", counterparts).Find(&found).Error; err != nil {
		return nil, apperr.Internal(err, "Failed to fetch friend profiles")
	}

	// Keep the relationship order; accounts deleted mid-flight simply drop out.
	byUser := make(map[string]models.Profile, len(found))
	for _, p := range found {
		byUser[p.UserID] = p
	}
	for _, id := range counterparts {
		if p, ok := byUser[id]; ok {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// UpdateStatus answers the request between idA and idB. Only accepted and
// refused are valid targets; either party may answer.
func (e *Engine) UpdateStatus(ctx context.Context, idA, idB string, status models.RelationshipStatus) error {
	idA, idB, err := normalizePair(idA, idB)
	if err != nil {
		return err
	}
	if status != models.StatusAccepted && status != models.StatusRefused {
		return apperr.InvalidInput("Status must be 'accepted' or 'refused'")
	}

	result := e.db.WithContext(ctx).Model(&models.Relationship{}).
		Where("pair_key = ?", models.PairKey(idA, idB)).
		Updates(map[string]interface{}{"status": status, "updated_at": e.db.NowFunc()})
	if result.Error != nil {
		return apperr.Internal(result.Error, "Failed to update relationship")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Friend request not found")
	}
	return nil
}

// Delete removes the relationship between idA and idB together with their
// whole conversation, and returns how many messages were deleted.
func (e *Engine) Delete(ctx context.Context, idA, idB string) (int64, error) {
	idA, idB, err := normalizePair(idA, idB)
	if err != nil {
		return 0, err
	}
	key := models.PairKey(idA, idB)

	var deletedMessages int64
	err = e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("pair_key = ?", key).Delete(&models.Relationship{})
		if result.Error != nil {
			return apperr.Internal(result.Error, "Failed to delete relationship")
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Relationship not found")
		}

		result = tx.Where("conversation_key = ?", key).Delete(&models.Message{})
		if result.Error != nil {
			return apperr.Internal(result.Error, "Failed to delete conversation")
		}
		deletedMessages = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deletedMessages, nil
}

// CascadeOnAccountDeletion removes every relationship and message that
// references accountID in either role. Running it twice is harmless.
func (e *Engine) CascadeOnAccountDeletion(ctx context.Context, accountID string) (CascadeResult, error) {
	var res CascadeResult
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = e.CascadeOnAccountDeletionTx(tx, accountID)
		return err
	})
	if err != nil {
		return CascadeResult{}, err
	}
	return res, nil
}

// CascadeOnAccountDeletionTx runs the cascade on tx, so a caller deleting the
// account in the same transaction rolls everything back together.
func (e *Engine) CascadeOnAccountDeletionTx(tx *gorm.DB, accountID string) (CascadeResult, error) {
	accountID, ok := models.NormalizeID(accountID)
	if !ok {
		return CascadeResult{}, apperr.InvalidInput("A valid account id is required")
	}

	var res CascadeResult
	result := tx.Where("requester_id = ? OR responder_id = ?", accountID, accountID).Delete(&models.Relationship{})
	if result.Error != nil {
		return CascadeResult{}, apperr.Internal(result.Error, "Failed to delete relationships")
	}
	res.Relationships = result.RowsAffected

	result = tx.Where("sender_id = ? OR receiver_id = ?", accountID, accountID).Delete(&models.Message{})
	if result.Error != nil {
		return CascadeResult{}, apperr.Internal(result.Error, "Failed to delete messages")
	}
	res.Messages = result.RowsAffected
	return res, nil
}
