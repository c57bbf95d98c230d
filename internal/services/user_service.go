package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/models"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

// UserService manages console accounts.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service requires database handle")
	}
	return &UserService{db: db}, nil
}

// CreateUserInput carries a new account.
type CreateUserInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin operator viewer"`
}

// UpdateUserInput carries a partial account update.
type UpdateUserInput struct {
	Name   string `json:"name"`
	Role   string `json:"role" validate:"omitempty,oneof=admin operator viewer"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Create inserts a new account. Duplicate emails are rejected.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	ctx = ensureContext(ctx)

	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to check existing users")
	}
	if existing > 0 {
		return nil, apperrors.New("USER_EXISTS", "A user with that email already exists", apperrors.ErrConflict.StatusCode)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleViewer
	}

	record := models.User{
		Name:   name,
		Email:  email,
		Role:   role,
		Status: "active",
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to create user")
	}
	return &record, nil
}

// List returns all accounts ordered by creation time.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	ctx = ensureContext(ctx)

	var records []models.User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	return records, nil
}

// Get fetches one account by id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	ctx = ensureContext(ctx)

	var record models.User
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load user")
	}
	return &record, nil
}

// Update applies a partial account update.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (*models.User, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.Name); name != "" {
		updates["name"] = name
	}
	if role := strings.TrimSpace(input.Role); role != "" {
		updates["role"] = role
	}
	if status := strings.TrimSpace(input.Status); status != "" {
		updates["status"] = status
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to update user")
	}
	return s.Get(ctx, id)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return nil
}
