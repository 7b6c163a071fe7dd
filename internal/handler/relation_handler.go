package handler

import (
	"net/http"

	"campusconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// FriendPairInput names the two users of a relationship, in any order.
type FriendPairInput struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
}

// UpdateRequestInput answers a pending request.
type UpdateRequestInput struct {
	SenderID   string                    `json:"senderId" binding:"required"`
	ReceiverID string                    `json:"receiverId" binding:"required"`
	Status     models.RelationshipStatus `json:"status" binding:"required" enums:"accepted,refused"`
}

type RelationshipResponse struct {
	Message      string              `json:"message" example:"Friend request sent"`
	Relationship models.Relationship `json:"relationship"`
}

type FriendsResponse struct {
	Message string           `json:"message" example:"Friends found"`
	Friends []models.Profile `json:"friends"`
}

type DeleteRelationResponse struct {
	Message              string `json:"message" example:"Relationship deleted"`
	DeletedMessagesCount int64  `json:"deletedMessagesCount"`
}

// endregion

// SendRequest godoc
// @Summary      Send a friend request
// @Description  Creates a pending request. Fails if the pair already has a relationship, in either direction.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Param        input body      FriendPairInput  true  "Requester and responder"
// @Success      201   {object}  RelationshipResponse
// @Failure      400   {object}  ErrorResponse "Missing field or duplicate request"
// @Router       /friends/user [post]
func (h *Handler) SendRequest(c *gin.Context) {
	var input FriendPairInput
	if !h.bindJSON(c, &input, "senderId and receiverId are required") {
		return
	}

	rel, err := h.Relationships.SendRequest(c.Request.Context(), input.SenderID, input.ReceiverID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, RelationshipResponse{Message: "Friend request sent", Relationship: *rel})
}

// ListFriends godoc
// @Summary      List relationships by status
// @Description  Returns the profiles of the user's counterparts in relationships with the given status.
// @Tags         friendship
// @Produce      json
// @Param        status path      string  true  "Relationship status" Enums(accepted, refused, pending)
// @Param        id     path      string  true  "User ID"
// @Success      200    {object}  FriendsResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /friends/{status}/user/{id} [get]
func (h *Handler) ListFriends(status models.RelationshipStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		friends, err := h.Relationships.ListByStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, FriendsResponse{Message: "Friends found", Friends: friends})
	}
}

// UpdateRequest godoc
// @Summary      Accept or refuse a friend request
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Param        input body      UpdateRequestInput  true  "Pair and new status"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse "Bad status"
// @Failure      404   {object}  ErrorResponse "No relationship"
// @Router       /friends/user [put]
func (h *Handler) UpdateRequest(c *gin.Context) {
	var input UpdateRequestInput
	if !h.bindJSON(c, &input, "senderId, receiverId and status are required") {
		return
	}

	if err := h.Relationships.UpdateStatus(c.Request.Context(), input.SenderID, input.ReceiverID, input.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend request " + string(input.Status)})
}

// DeleteRelation godoc
// @Summary      Delete a relationship
// @Description  Removes the relationship and the whole conversation between the two users.
// @Tags         friendship
// @Accept       json
// @Produce      json
// @Param        input body      FriendPairInput  true  "The two users"
// @Success      200   {object}  DeleteRelationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /friends/user [delete]
func (h *Handler) DeleteRelation(c *gin.Context) {
	var input FriendPairInput
	if !h.bindJSON(c, &input, "senderId and receiverId are required") {
		return
	}

	deleted, err := h.Relationships.Delete(c.Request.Context(), input.SenderID, input.ReceiverID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteRelationResponse{Message: "Relationship deleted", DeletedMessagesCount: deleted})
}
