package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/models"
	"github.com/quillhq/quill-console/internal/registry"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

// WidgetService manages dashboard widgets. Widget configs go through the same
// schema pipeline as connections and storage.
type WidgetService struct {
	db *gorm.DB
}

// NewWidgetService constructs a WidgetService.
func NewWidgetService(db *gorm.DB) (*WidgetService, error) {
	if db == nil {
		return nil, errors.New("widget service requires database handle")
	}
	return &WidgetService{db: db}, nil
}

// CreateWidgetInput carries a widget submission.
type CreateWidgetInput struct {
	WidgetType string         `json:"widget_type" validate:"required"`
	Config     map[string]any `json:"config"`
}

// UpdateWidgetInput carries a partial widget update. A nil Config leaves the
// stored configuration untouched; a nil Position leaves ordering alone.
type UpdateWidgetInput struct {
	Config   map[string]any `json:"config"`
	Position *int           `json:"position"`
}

// Create validates the widget config and appends the widget to the dashboard.
func (s *WidgetService) Create(ctx context.Context, input CreateWidgetInput) (*models.DashboardWidget, error) {
	ctx = ensureContext(ctx)

	config, err := validateConfig(registry.Widgets, input.WidgetType, input.Config)
	if err != nil {
		return nil, err
	}

	record := models.DashboardWidget{
		WidgetType: input.WidgetType,
		Config:     config,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.DashboardWidget{}).Count(&count).Error; err != nil {
			return err
		}
		record.Position = int(count)
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create widget")
	}
	return &record, nil
}

// List returns widgets in dashboard order.
func (s *WidgetService) List(ctx context.Context) ([]models.DashboardWidget, error) {
	ctx = ensureContext(ctx)

	var records []models.DashboardWidget
	if err := s.db.WithContext(ctx).Order("position ASC, created_at ASC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list widgets")
	}
	return records, nil
}

// Get fetches one widget by id.
func (s *WidgetService) Get(ctx context.Context, id string) (*models.DashboardWidget, error) {
	ctx = ensureContext(ctx)

	var record models.DashboardWidget
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load widget")
	}
	return &record, nil
}

// Update applies a partial widget update. A supplied Config is re-validated
// against the widget's type.
func (s *WidgetService) Update(ctx context.Context, id string, input UpdateWidgetInput) (*models.DashboardWidget, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Config != nil {
		config, err := validateConfig(registry.Widgets, record.WidgetType, input.Config)
		if err != nil {
			return nil, err
		}
		updates["config"] = config
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to update widget")
	}
	return s.Get(ctx, id)
}

// Delete removes a widget from the dashboard.
func (s *WidgetService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete widget")
	}
	return nil
}
