package handler

import (
	"net/http"

	"campusconnect/backend/internal/messaging"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type SendMessageInput struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required" example:"Salut !"`
}

type EditMessageInput struct {
	Content string `json:"content" binding:"required" example:"Salut, ça va ?"`
}

type ConversationResponse struct {
	Message  string              `json:"message" example:"Conversation found"`
	Messages []messaging.Payload `json:"messages"`
}

type SendMessageResponse struct {
	Message    string            `json:"message" example:"Message sent"`
	NewMessage messaging.Payload `json:"newMessage"`
}

type EditMessageResponse struct {
	Message        string            `json:"message" example:"Message updated"`
	UpdatedMessage messaging.Payload `json:"updatedMessage"`
}

// endregion

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Every message exchanged between the two users, oldest first.
// @Tags         messages
// @Produce      json
// @Param        a   path      string  true  "First user ID"
// @Param        b   path      string  true  "Second user ID"
// @Success      200 {object}  ConversationResponse
// @Failure      400 {object}  ErrorResponse
// @Failure      500 {object}  ErrorResponse
// @Router       /messages/conversation/{a}/{b} [get]
func (h *Handler) GetConversation(c *gin.Context) {
	messages, err := h.Messages.Conversation(c.Request.Context(), c.Param("a"), c.Param("b"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConversationResponse{Message: "Conversation found", Messages: messages})
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Stores the message and pushes receive_message to both participants.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        input body      SendMessageInput  true  "Message"
// @Success      200   {object}  SendMessageResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /send [post]
func (h *Handler) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if !h.bindJSON(c, &input, "senderId, receiverId and content are required") {
		return
	}

	msg, err := h.Messages.Send(c.Request.Context(), input.SenderID, input.ReceiverID, input.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SendMessageResponse{Message: "Message sent", NewMessage: msg})
}

// EditMessage godoc
// @Summary      Edit a message
// @Description  Replaces the content and pushes message_edited to both participants.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        messageId path      string            true  "Message ID"
// @Param        input     body      EditMessageInput  true  "New content"
// @Success      200       {object}  EditMessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse "Not found or not modified"
// @Router       /edit/{messageId} [put]
func (h *Handler) EditMessage(c *gin.Context) {
	var input EditMessageInput
	if !h.bindJSON(c, &input, "Content cannot be empty") {
		return
	}

	msg, err := h.Messages.Edit(c.Request.Context(), c.Param("messageId"), input.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, EditMessageResponse{Message: "Message updated", UpdatedMessage: msg})
}
