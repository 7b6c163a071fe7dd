// Package live is the Socket.IO side of real-time delivery. Inbound events are
// validated and handed to the same engines as the HTTP routes; outbound events
// are read from the connection's hub client and emitted on the socket.
package live

import (
	"context"
	"time"

	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/messaging"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/pkg/apperr"
	"campusconnect/backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	EventJoinNotifications = "join_notifications"
	EventJoinChat          = "join_chat"
	EventSendMessage       = "send_message"
	EventSendFriendRequest = "send_friend_request"
	EventError             = "error"
)

// Emitter is the outbound half of a socket connection.
type Emitter interface {
	Emit(event string, v ...interface{})
}

type MessageSender interface {
	Send(ctx context.Context, senderID, receiverID, content string) (messaging.Payload, error)
}

type RequestSender interface {
	SendRequest(ctx context.Context, requesterID, responderID string) (*models.Relationship, error)
}

// SendMessagePayload is the body of send_message.
type SendMessagePayload struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Content    string `json:"content" validate:"required"`
}

// FriendRequestPayload is the body of send_friend_request.
type FriendRequestPayload struct {
	SenderID   string `json:"senderId" validate:"required,uuid"`
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
}

// ErrorPayload is emitted back to the connection whose event failed.
type ErrorPayload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Handlers implements the connection lifecycle and inbound events.
type Handlers struct {
	hub       *hub.Hub
	messages  MessageSender
	requests  RequestSender
	validate  *validator.Validate
	log       *zap.Logger
	jwtSecret string
	buffer    int
	timeout   time.Duration
}

type Options struct {
	JWTSecret    string
	BufferSize   int
	EventTimeout time.Duration
}

func NewHandlers(h *hub.Hub, messages MessageSender, requests RequestSender, log *zap.Logger, opts Options) *Handlers {
	if opts.EventTimeout <= 0 {
		opts.EventTimeout = 10 * time.Second
	}
	return &Handlers{
		hub:       h,
		messages:  messages,
		requests:  requests,
		validate:  validator.New(),
		log:       log,
		jwtSecret: opts.JWTSecret,
		buffer:    opts.BufferSize,
		timeout:   opts.EventTimeout,
	}
}

// Connect registers a new hub client and starts pumping its events to out.
// A valid token joins the client to its subject's room right away.
func (h *Handlers) Connect(out Emitter, token string) (*hub.Client, error) {
	client, err := hub.NewClient(h.buffer)
	if err != nil {
		return nil, err
	}
	go pump(client, out)

	if token != "" {
		userID, err := jwt.ParseToken(token, h.jwtSecret)
		if err != nil {
			h.log.Info("ignoring invalid socket token", zap.String("client", client.ID()))
		} else {
			h.hub.Join(userID, client)
		}
	}
	return client, nil
}

// pump ends when the hub closes the client's queue.
func pump(client *hub.Client, out Emitter) {
	for ev := range client.Events() {
		out.Emit(ev.Type, ev.Payload)
	}
}

// Join handles join_chat and join_notifications. Both use the user's room.
func (h *Handlers) Join(client *hub.Client, out Emitter, event, userID string) {
	if err := h.validate.Var(userID, "required,uuid"); err != nil {
		h.fail(out, event, apperr.InvalidInput("A valid user id is required"))
		return
	}
	id, _ := models.NormalizeID(userID)
	h.hub.Join(id, client)
	h.log.Debug("client joined room", zap.String("client", client.ID()), zap.String("userID", id), zap.String("event", event))
}

func (h *Handlers) SendMessage(out Emitter, p SendMessagePayload) {
	if err := h.validate.Struct(p); err != nil {
		h.fail(out, EventSendMessage, apperr.InvalidInput("senderId, receiverId and content are required"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	// The channel publishes receive_message to both rooms.
	if _, err := h.messages.Send(ctx, p.SenderID, p.ReceiverID, p.Content); err != nil {
		h.fail(out, EventSendMessage, err)
	}
}

// SendFriendRequest ignores a request for a pair that already has one.
func (h *Handlers) SendFriendRequest(out Emitter, p FriendRequestPayload) {
	if err := h.validate.Struct(p); err != nil {
		h.fail(out, EventSendFriendRequest, apperr.InvalidInput("senderId and receiverId are required"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	_, err := h.requests.SendRequest(ctx, p.SenderID, p.ReceiverID)
	if apperr.Is(err, apperr.KindConflict) {
		h.log.Debug("duplicate friend request ignored", zap.String("senderID", p.SenderID), zap.String("receiverID", p.ReceiverID))
		return
	}
	if err != nil {
		h.fail(out, EventSendFriendRequest, err)
	}
}

func (h *Handlers) Disconnect(client *hub.Client) {
	if client != nil {
		h.hub.Disconnect(client)
	}
}

func (h *Handlers) fail(out Emitter, event string, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.log.Error("live event failed", zap.String("event", event), zap.Error(err))
	} else {
		h.log.Info("live event rejected", zap.String("event", event), zap.Error(err))
	}
	out.Emit(EventError, ErrorPayload{Event: event, Message: apperr.Message(err)})
}
