// Package account manages login identities: registration with a default
// profile, password login, credential updates and the cascading delete.
package account

import (
	"context"
	"errors"
	"strings"

	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/relationship"
	"campusconnect/backend/internal/storage"
	"campusconnect/backend/pkg/apperr"
	"campusconnect/backend/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Registration is the input of Register. Every field is required.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Sexe      string
}

// Session is returned by a successful Login.
type Session struct {
	Profile models.Profile
	Token   string
}

// DeleteResult counts what an account deletion removed.
type DeleteResult struct {
	relationship.CascadeResult
	Profiles int64 `json:"deletedProfilesCount"`
}

// Cascader removes the relationships and messages of a deleted account inside
// the transaction that deletes the account.
type Cascader interface {
	CascadeOnAccountDeletionTx(tx *gorm.DB, accountID string) (relationship.CascadeResult, error)
}

type Service struct {
	db        *gorm.DB
	cascader  Cascader
	photos    storage.PhotoStore
	jwtSecret string
	log       *zap.Logger
}

func NewService(db *gorm.DB, cascader Cascader, photos storage.PhotoStore, jwtSecret string, log *zap.Logger) *Service {
	return &Service{db: db, cascader: cascader, photos: photos, jwtSecret: jwtSecret, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and its default profile in one transaction and
// returns the new account id.
func (s *Service) Register(ctx context.Context, r Registration) (string, error) {
	email := normalizeEmail(r.Email)
	if r.FirstName == "" || r.LastName == "" || email == "" || r.Password == "" || r.Sexe == "" {
		return "", apperr.InvalidInput("firstName, lastName, email, password and sexe are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperr.Internal(err, "Failed to hash password")
	}

	acc := models.Account{Email: email, PasswordHash: string(hash), Role: models.RoleUser}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return apperr.Internal(err, "Failed to check email")
		}
		if count > 0 {
			return apperr.Conflict("Email already in use")
		}

		if err := tx.Create(&acc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("Email already in use")
			}
			return apperr.Internal(err, "Failed to create account")
		}

		profile := models.Profile{
			UserID:    acc.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Sexe:      r.Sexe,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return apperr.Internal(err, "Failed to create profile")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return acc.ID, nil
}

// Login checks the credentials and returns the profile with a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.InvalidInput("email and password are required")
	}

	var acc models.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err, "Failed to fetch account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", acc.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Internal(err, "Failed to fetch profile")
	}

	token, err := jwt.GenerateToken(acc.ID, s.jwtSecret)
	if err != nil {
		return nil, apperr.Internal(err, "Failed to generate token")
	}
	return &Session{Profile: profile, Token: token}, nil
}

// Update changes the email and/or password of an account. Nil fields are kept.
func (s *Service) Update(ctx context.Context, id string, email, password *string) error {
	id, ok := models.NormalizeID(id)
	if !ok {
		return apperr.InvalidInput("A valid user id is required")
	}

	updates := map[string]interface{}{}
	if email != nil {
		e := normalizeEmail(*email)
		if e == "" {
			return apperr.InvalidInput("email cannot be empty")
		}
		updates["email"] = e
	}
	if password != nil {
		if *password == "" {
			return apperr.InvalidInput("password cannot be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Internal(err, "Failed to hash password")
		}
		updates["password_hash"] = string(hash)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acc models.Account
		if err := tx.First(&acc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("User not found")
			}
			return apperr.Internal(err, "Failed to fetch account")
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&acc).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("Email already in use")
			}
			return apperr.Internal(err, "Failed to update account")
		}
		return nil
	})
}

// Delete removes the account, its profile and every relationship and message
// referencing it in one transaction, then its stored photo.
func (s *Service) Delete(ctx context.Context, id string) (DeleteResult, error) {
	id, ok := models.NormalizeID(id)
	if !ok {
		return DeleteResult{}, apperr.InvalidInput("A valid user id is required")
	}

	var res DeleteResult
	var photo string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Account{})
		if result.Error != nil {
			return apperr.Internal(result.Error, "Failed to delete account")
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("User not found")
		}

		var profile models.Profile
		if err := tx.Where("user_id = ?", id).Limit(1).Find(&profile).Error; err != nil {
			return apperr.Internal(err, "Failed to fetch profile")
		}
		photo = profile.PhotoURL

		result = tx.Where("user_id = ?", id).Delete(&models.Profile{})
		if result.Error != nil {
			return apperr.Internal(result.Error, "Failed to delete profile")
		}
		res.Profiles = result.RowsAffected

		cascade, err := s.cascader.CascadeOnAccountDeletionTx(tx, id)
		if err != nil {
			return err
		}
		res.CascadeResult = cascade
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}

	if photo != "" {
		if err := s.photos.Delete(ctx, photo); err != nil {
			s.log.Warn("failed to remove photo of deleted account", zap.String("userID", id), zap.Error(err))
		}
	}
	return res, nil
}
