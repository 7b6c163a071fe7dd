package handler

import (
	"net/http"

	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/profile"
	"campusconnect/backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UpdateProfileInput holds the profile fields that may change. Interests are
// added to the existing set.
type UpdateProfileInput struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Sexe      *string  `json:"sexe"`
	Bio       *string  `json:"bio" example:"Second-year CS student"`
	Program   *string  `json:"program" example:"Computer Science"`
	Level     *string  `json:"level" example:"L2"`
	Campus    *string  `json:"campus" example:"Lyon"`
	IsTutor   *bool    `json:"isTutor"`
	Interests []string `json:"interests" example:"go,chess"`
}

type ProfileResponse struct {
	Message string         `json:"message" example:"Profile found"`
	Profile models.Profile `json:"profile"`
}

type ProfilesResponse struct {
	Message  string           `json:"message" example:"Profiles found"`
	Profiles []models.Profile `json:"profiles"`
	Meta     *PaginationMeta  `json:"meta,omitempty"`
}

type UploadResponse struct {
	Message string `json:"message" example:"Photo uploaded"`
	FileURL string `json:"fileUrl" example:"/file/4f1c2a9e-6d0b-4d8e-9a51-0c7a9a0f3b11"`
}

// endregion

// GetProfile godoc
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profiles/user/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.Profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Message: "Profile found", Profile: *p})
}

// ListProfiles godoc
// @Summary      List profiles
// @Description  Returns every profile, or one page of them when page is given.
// @Tags         profiles
// @Produce      json
// @Param        page  query     int  false  "Page number"
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200   {object}  ProfilesResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /profiles/users [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	page, limit, paged := pageParams(c)

	profiles, total, err := h.Profiles.List(c.Request.Context(), page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := ProfilesResponse{Message: "Profiles found", Profiles: profiles}
	if paged {
		meta := NewPaginationMeta(total, page, limit)
		resp.Meta = &meta
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfile godoc
// @Summary      Update a profile
// @Description  Partial update; interests are merged into the existing set without duplicates.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "User ID"
// @Param        input body      UpdateProfileInput  true  "Fields to change"
// @Success      200   {object}  ProfileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /profiles/user/{id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if !h.bindJSON(c, &input, "Invalid profile fields") {
		return
	}

	p, err := h.Profiles.Update(c.Request.Context(), c.Param("id"), profile.Update{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Sexe:      input.Sexe,
		Bio:       input.Bio,
		Program:   input.Program,
		Level:     input.Level,
		Campus:    input.Campus,
		IsTutor:   input.IsTutor,
		Interests: input.Interests,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Message: "Profile updated", Profile: *p})
}

// UploadPhoto godoc
// @Summary      Upload a profile photo
// @Description  Stores the file as the user's photo, replacing the previous one.
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true  "Photo"
// @Param        userId formData  string  true  "User ID"
// @Success      200    {object}  UploadResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /upload [post]
func (h *Handler) UploadPhoto(c *gin.Context) {
	// Leave room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.UploadMaxBytes+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, apperr.Wrap(err, apperr.KindInvalidInput, "No file received"))
		return
	}
	userID := c.PostForm("userId")
	if userID == "" {
		h.respondError(c, apperr.InvalidInput("userId is required"))
		return
	}
	if header.Size > h.UploadMaxBytes {
		h.respondError(c, apperr.InvalidInput("File is too large"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.respondError(c, apperr.Internal(err, "Failed to read upload"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Profiles.UploadPhoto(c.Request.Context(), userID, header.Filename, file, header.Size, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{Message: "Photo uploaded", FileURL: url})
}

// GetPhoto godoc
// @Summary      Download a profile photo
// @Tags         profiles
// @Produce      octet-stream
// @Param        userId path      string  true  "User ID"
// @Success      200    {file}    binary
// @Failure      404    {object}  ErrorResponse
// @Router       /file/{userId} [get]
func (h *Handler) GetPhoto(c *gin.Context) {
	obj, err := h.Profiles.OpenPhoto(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer obj.Close()

	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj, nil)
}
