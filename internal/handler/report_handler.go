package handler

import (
	"net/http"

	"campusconnect/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CreateReportInput struct {
	ReporterID string `json:"reporterId" binding:"required"`
	ReportedID string `json:"reportedId" binding:"required"`
	Reason     string `json:"reason" binding:"required" example:"Spam"`
}

type ReportResponse struct {
	Message string        `json:"message" example:"Report submitted"`
	Report  models.Report `json:"report"`
}

type ReportsResponse struct {
	Message string          `json:"message" example:"Reports found"`
	Reports []models.Report `json:"reports"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
}

// CreateReport godoc
// @Summary      Report a user
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        input body      CreateReportInput  true  "Report"
// @Success      201   {object}  ReportResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /signalement [post]
func (h *Handler) CreateReport(c *gin.Context) {
	var input CreateReportInput
	if !h.bindJSON(c, &input, "reporterId, reportedId and reason are required") {
		return
	}

	r, err := h.Reports.Create(c.Request.Context(), input.ReporterID, input.ReportedID, input.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ReportResponse{Message: "Report submitted", Report: *r})
}

// ListReports godoc
// @Summary      List reports
// @Description  Newest first. Admin only.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number"
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200   {object}  ReportsResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /signalements [get]
func (h *Handler) ListReports(c *gin.Context) {
	page, limit, paged := pageParams(c)

	reports, total, err := h.Reports.List(c.Request.Context(), page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := ReportsResponse{Message: "Reports found", Reports: reports}
	if paged {
		meta := NewPaginationMeta(total, page, limit)
		resp.Meta = &meta
	}
	c.JSON(http.StatusOK, resp)
}
