package handler

import (
	"net/http"

	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StreamEvents godoc
// @Summary      Stream live events
// @Description  Server-sent events carrying receive_message, message_edited and friend_request_received for the user.
// @Tags         live
// @Produce      text/event-stream
// @Param        userId path  string  true  "User ID"
// @Success      200
// @Failure      400  {object}  ErrorResponse
// @Router       /events/{userId} [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	userID, ok := models.NormalizeID(c.Param("userId"))
	if !ok {
		h.respondError(c, apperr.InvalidInput("A valid user id is required"))
		return
	}

	client, err := hub.NewClient(h.LiveBufferSize)
	if err != nil {
		h.respondError(c, apperr.Internal(err, "Failed to open event stream"))
		return
	}
	h.Hub.Join(userID, client)
	defer h.Hub.Disconnect(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	h.Log.Debug("event stream opened", zap.String("userID", userID), zap.String("client", client.ID()))

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-client.Events():
			if !open {
				return
			}
			c.SSEvent(ev.Type, ev.Payload)
			c.Writer.Flush()
		}
	}
}
