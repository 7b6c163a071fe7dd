package handler

import (
	"net/http"

	"campusconnect/backend/internal/account"
	"campusconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required" example:"Joe"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Email     string `json:"email" binding:"required,email" example:"joe@example.com"`
	Password  string `json:"password" binding:"required" example:"password123"`
	Sexe      string `json:"sexe" binding:"required" example:"m"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required" example:"joe@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UpdateUserInput holds the account fields that may change. Omitted fields are kept.
type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email" example:"joe.doe@example.com"`
	Password *string `json:"password" example:"newpassword"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"userId"`
}

// LoginResponse carries the profile and a bearer token.
type LoginResponse struct {
	Message string         `json:"message" example:"Login successful"`
	Profile models.Profile `json:"profile"`
	Token   string         `json:"token"`
}

// DeleteUserResponse reports what the cascading delete removed.
type DeleteUserResponse struct {
	Message                   string `json:"message" example:"User deleted successfully"`
	DeletedProfilesCount      int64  `json:"deletedProfilesCount"`
	DeletedRelationshipsCount int64  `json:"deletedRelationshipsCount"`
	DeletedMessagesCount      int64  `json:"deletedMessagesCount"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates an account and its default profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  RegisterResponse
// @Failure      400  {object}  ErrorResponse "Missing field or email already in use"
// @Failure      500  {object}  ErrorResponse
// @Router       /register/user [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if !h.bindJSON(c, &input, "firstName, lastName, email, password and sexe are required") {
		return
	}

	userID, err := h.Accounts.Register(c.Request.Context(), account.Registration{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Sexe:      input.Sexe,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered successfully", UserID: userID})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password; returns the profile and a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /login/user [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if !h.bindJSON(c, &input, "email and password are required") {
		return
	}

	session, err := h.Accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", Profile: session.Profile, Token: session.Token})
}

// endregion

// region --- User Handlers ---

// UpdateUser godoc
// @Summary      Update account credentials
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "User ID"
// @Param        input body      UpdateUserInput  true  "Fields to change"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /user/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var input UpdateUserInput
	if !h.bindJSON(c, &input, "Invalid account fields") {
		return
	}

	if err := h.Accounts.Update(c.Request.Context(), c.Param("id"), input.Email, input.Password); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User updated successfully"})
}

// DeleteUser godoc
// @Summary      Delete an account
// @Description  Deletes the account, its profile, every relationship and message referencing it, and its photo.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  DeleteUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /delete/user/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	res, err := h.Accounts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteUserResponse{
		Message:                   "User deleted successfully",
		DeletedProfilesCount:      res.Profiles,
		DeletedRelationshipsCount: res.Relationships,
		DeletedMessagesCount:      res.Messages,
	})
}

// endregion
