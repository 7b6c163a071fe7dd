package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"campusconnect/backend/internal/database"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/storage"
	"campusconnect/backend/pkg/apperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Update holds the fields of a partial profile update. Nil fields are left
// untouched; Interests are added to the existing set.
type Update struct {
	FirstName *string
	LastName  *string
	Sexe      *string
	Bio       *string
	Program   *string
	Level     *string
	Campus    *string
	IsTutor   *bool
	Interests []string
}

type Service struct {
	db     *gorm.DB
	photos storage.PhotoStore
	log    *zap.Logger
}

func NewService(db *gorm.DB, photos storage.PhotoStore, log *zap.Logger) *Service {
	return &Service{db: db, photos: photos, log: log}
}

func (s *Service) find(tx *gorm.DB, userID string) (*models.Profile, error) {
	id, ok := models.NormalizeID(userID)
	if !ok {
		return nil, apperr.InvalidInput("A valid user id is required")
	}

	var p models.Profile
	if err := tx.Where("user_id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Internal(err, "Failed to fetch profile")
	}
	return &p, nil
}

// Get returns the profile of userID.
func (s *Service) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.find(s.db.WithContext(ctx), userID)
}

// List returns profiles ordered by creation, one page at a time. A page below
// 1 returns every profile.
func (s *Service) List(ctx context.Context, page, limit int) ([]models.Profile, int64, error) {
	profiles, total, err := database.Paginate[models.Profile](s.db.WithContext(ctx).Order("created_at ASC"), page, limit)
	if err != nil {
		return nil, 0, apperr.Internal(err, "Failed to fetch profiles")
	}
	return profiles, total, nil
}

// Update applies u to the profile of userID and returns the stored result.
func (s *Service) Update(ctx context.Context, userID string, u Update) (*models.Profile, error) {
	var updated *models.Profile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.find(tx, userID)
		if err != nil {
			return err
		}

		setString(&p.FirstName, u.FirstName)
		setString(&p.LastName, u.LastName)
		setString(&p.Sexe, u.Sexe)
		setString(&p.Bio, u.Bio)
		setString(&p.Program, u.Program)
		setString(&p.Level, u.Level)
		setString(&p.Campus, u.Campus)
		if u.IsTutor != nil {
			p.IsTutor = *u.IsTutor
		}
		if len(u.Interests) > 0 {
			p.MergeInterests(u.Interests)
		}

		// photo_url belongs to UploadPhoto; the snapshot above may be stale.
		if err := tx.Omit("photo_url").Save(p).Error; err != nil {
			return apperr.Internal(err, "Failed to update profile")
		}
		if err := tx.First(p, "id = ?", p.ID).Error; err != nil {
			return apperr.Internal(err, "Failed to reload profile")
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// UploadPhoto stores a new profile photo for userID, replaces the previous one
// and returns the public URL it is served from.
func (s *Service) UploadPhoto(ctx context.Context, userID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	p, err := s.find(s.db.WithContext(ctx), userID)
	if err != nil {
		return "", err
	}

	name := PhotoName(p.FirstName, filename, time.Now())
	if err := s.photos.Put(ctx, name, r, size, contentType); err != nil {
		return "", apperr.Internal(err, "Failed to store photo")
	}

	previous := p.PhotoURL
	err = s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", p.ID).
		Update("photo_url", name).Error
	if err != nil {
		_ = s.photos.Delete(ctx, name)
		return "", apperr.Internal(err, "Failed to save photo reference")
	}

	if previous != "" && previous != name {
		if err := s.photos.Delete(ctx, previous); err != nil {
			s.log.Warn("failed to remove previous photo", zap.String("object", previous), zap.Error(err))
		}
	}
	return "/file/" + p.UserID, nil
}

// OpenPhoto returns the stored photo of userID. The caller closes it.
func (s *Service) OpenPhoto(ctx context.Context, userID string) (*storage.Object, error) {
	p, err := s.find(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	if p.PhotoURL == "" {
		return nil, apperr.NotFound("No photo for this user")
	}

	obj, err := s.photos.Open(ctx, p.PhotoURL)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.NotFound("Photo not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "Failed to open photo")
	}
	return obj, nil
}

// PhotoName builds the object name <firstName>-<unixMillis><ext>. Characters
// other than letters, digits, '-' and '_' are dropped from the first name.
func PhotoName(firstName, filename string, now time.Time) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, firstName)
	if clean == "" {
		clean = "photo"
	}
	return fmt.Sprintf("%s-%d%s", clean, now.UnixMilli(), strings.ToLower(filepath.Ext(filename)))
}
