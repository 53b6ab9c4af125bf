package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts user. A taken email is a Conflict.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	err := s.db.WithContext(ctx).Create(user).Error
	if isUniqueViolation(err) {
		return apperr.Conflict("repository.CreateUser", "email already registered")
	}
	return translate("repository.CreateUser", err, "")
}

// Update writes the profile fields and password hash of user.
func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).
		Model(user).
		Select("Name", "Phone", "Field", "Password").
		Updates(user).Error
	return translate("repository.UpdateUser", err, "user not found")
}

func (s *UserStore) FindByID(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, translate("repository.FindUser", err, "user not found")
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, translate("repository.FindUserByEmail", err, "user not found")
	}
	return &user, nil
}
