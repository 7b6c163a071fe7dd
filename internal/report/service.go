package report

import (
	"context"
	"strings"

	"campusconnect/backend/internal/database"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/pkg/apperr"

	"gorm.io/gorm"
)

// Service files and lists abuse reports. Reports are never modified.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, reporterID, reportedID, reason string) (*models.Report, error) {
	reporter, okA := models.NormalizeID(reporterID)
	reported, okB := models.NormalizeID(reportedID)
	reason = strings.TrimSpace(reason)
	if !okA || !okB || reason == "" {
		return nil, apperr.InvalidInput("reporterId, reportedId and reason are required")
	}

	r := &models.Report{ReporterID: reporter, ReportedID: reported, Reason: reason}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, apperr.Internal(err, "Failed to create report")
	}
	return r, nil
}

// List returns reports newest first. A page below 1 returns every report.
func (s *Service) List(ctx context.Context, page, limit int) ([]models.Report, int64, error) {
	reports, total, err := database.Paginate[models.Report](s.db.WithContext(ctx).Order("created_at DESC"), page, limit)
	if err != nil {
		return nil, 0, apperr.Internal(err, "Failed to fetch reports")
	}
	return reports, total, nil
}
