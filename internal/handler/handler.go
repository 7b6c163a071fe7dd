package handler

import (
	"net/http"

	"campusconnect/backend/internal/account"
	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/messaging"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/profile"
	"campusconnect/backend/internal/relationship"
	"campusconnect/backend/internal/report"
	"campusconnect/backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
	Error   string `json:"error" example:"invalid_input"`
}

// MessageResponse is returned by operations without a resource payload.
type MessageResponse struct {
	Message string `json:"message" example:"Done"`
}

// Handler serves the HTTP API. Every dependency is injected by main.
type Handler struct {
	Accounts      *account.Service
	Profiles      *profile.Service
	Relationships *relationship.Engine
	Messages      *messaging.Channel
	Reports       *report.Service
	Hub           *hub.Hub
	Log           *zap.Logger

	UploadMaxBytes int64
	LiveBufferSize int
}

// Middlewares guards the routes that need an identity.
type Middlewares struct {
	Auth  gin.HandlerFunc
	Admin gin.HandlerFunc
}

// RegisterRoutes mounts every API route on r.
func (h *Handler) RegisterRoutes(r gin.IRouter, mw Middlewares) {
	// Accounts
	r.POST("/register/user", h.RegisterUser)
	r.POST("/login/user", h.LoginUser)
	r.PUT("/user/:id", h.UpdateUser)
	r.DELETE("/delete/user/:id", h.DeleteUser)

	// Profiles
	profiles := r.Group("/profiles")
	{
		profiles.GET("/users", h.ListProfiles)
		profiles.GET("/user/:id", h.GetProfile)
		profiles.PUT("/user/:id", h.UpdateProfile)
	}
	r.POST("/upload", h.UploadPhoto)
	r.GET("/file/:userId", h.GetPhoto)

	// Friendship
	friends := r.Group("/friends")
	{
		friends.POST("/user", h.SendRequest)
		friends.PUT("/user", h.UpdateRequest)
		friends.DELETE("/user", h.DeleteRelation)
		for _, status := range []models.RelationshipStatus{models.StatusAccepted, models.StatusRefused, models.StatusPending} {
			friends.GET("/"+string(status)+"/user/:id", h.ListFriends(status))
		}
	}

	// Messages
	r.GET("/messages/conversation/:a/:b", h.GetConversation)
	r.GET("/conversation/:a/:b", h.GetConversation)
	r.POST("/send", h.SendMessage)
	r.PUT("/edit/:messageId", h.EditMessage)

	// Reports
	r.POST("/signalement", h.CreateReport)
	r.GET("/signalements", mw.Auth, mw.Admin, h.ListReports)

	// Live events for clients without Socket.IO
	r.GET("/events/:userId", h.StreamEvents)
}

// respondError writes err as {message, error}. Internal causes are logged, never returned.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		h.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(apperr.HTTPStatus(kind), ErrorResponse{Message: apperr.Message(err), Error: string(kind)})
}

// bindJSON answers 400 when the body does not match input.
func (h *Handler) bindJSON(c *gin.Context, input interface{}, message string) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		h.respondError(c, apperr.Wrap(err, apperr.KindInvalidInput, message))
		return false
	}
	return true
}

// Ping godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
