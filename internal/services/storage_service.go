package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/models"
	"github.com/quillhq/quill-console/internal/registry"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
	"github.com/quillhq/quill-console/pkg/logger"
	"github.com/quillhq/quill-console/pkg/metrics"
)

// StorageService manages configured storage back-ends. Exactly one config is
// the default at any time and the default can never be deleted.
type StorageService struct {
	db     *gorm.DB
	prober Prober
	log    *zap.Logger
}

// NewStorageService constructs a StorageService.
func NewStorageService(db *gorm.DB, prober Prober) (*StorageService, error) {
	if db == nil {
		return nil, errors.New("storage service requires database handle")
	}
	if prober == nil {
		return nil, errors.New("storage service requires a prober")
	}
	return &StorageService{db: db, prober: prober, log: logger.WithModule("storage")}, nil
}

// CreateStorageInput carries a storage configuration submission.
type CreateStorageInput struct {
	Name          string         `json:"name" validate:"required"`
	StorageType   string         `json:"storage_type" validate:"required"`
	Configuration map[string]any `json:"configuration"`
}

// UpdateStorageInput carries a partial storage update. A nil Configuration
// leaves the stored configuration untouched.
type UpdateStorageInput struct {
	Name          string         `json:"name"`
	Configuration map[string]any `json:"configuration"`
}

// Create validates the submission against the storage type's schema and
// persists it. The first configuration in the store becomes the default.
func (s *StorageService) Create(ctx context.Context, input CreateStorageInput) (*models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	configuration, err := validateConfig(registry.Storages, input.StorageType, input.Configuration)
	if err != nil {
		return nil, err
	}

	record := models.StorageConfig{
		Name:          name,
		StorageType:   strings.TrimSpace(input.StorageType),
		Configuration: configuration,
		Status:        models.StorageStatusPending,
		IsActive:      true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var defaults int64
		if err := tx.Model(&models.StorageConfig{}).Where("is_default = ?", true).Count(&defaults).Error; err != nil {
			return err
		}
		record.IsDefault = defaults == 0
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create storage configuration")
	}

	s.log.Info("storage configuration created",
		zap.String("storage_id", record.ID),
		zap.String("storage_type", record.StorageType),
		zap.Bool("is_default", record.IsDefault))
	return &record, nil
}

// List returns all storage configurations, default first then newest first.
func (s *StorageService) List(ctx context.Context) ([]models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	var records []models.StorageConfig
	err := s.db.WithContext(ctx).
		Order("is_default DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list storage configurations")
	}
	return records, nil
}

// Get fetches one storage configuration by id.
func (s *StorageService) Get(ctx context.Context, id string) (*models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	var record models.StorageConfig
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load storage configuration")
	}
	return &record, nil
}

// Update applies a partial update. A supplied Configuration is re-validated
// against the record's storage type.
func (s *StorageService) Update(ctx context.Context, id string, input UpdateStorageInput) (*models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.Name); name != "" {
		updates["name"] = name
	}
	if input.Configuration != nil {
		configuration, err := validateConfig(registry.Storages, record.StorageType, input.Configuration)
		if err != nil {
			return nil, err
		}
		updates["configuration"] = configuration
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to update storage configuration")
	}
	return s.Get(ctx, id)
}

// Delete removes a storage configuration. Deleting the default is rejected
// before any store work happens.
func (s *StorageService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if record.IsDefault {
		return apperrors.ErrDefaultStorageDelete
	}

	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete storage configuration")
	}

	s.log.Info("storage configuration deleted", zap.String("storage_id", id))
	return nil
}

// Test probes the storage back-end and records the outcome with a guarded
// UPDATE so a probe finishing after deletion updates nothing.
func (s *StorageService) Test(ctx context.Context, id string) (*TestOutcome, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.prober.Storage(ctx, record.StorageType, decodeConfig(record.Configuration))

	status := models.StorageStatusError
	outcome := "failure"
	if result.Success {
		status = models.StorageStatusActive
		outcome = "success"
	}
	metrics.ProbeResults.WithLabelValues("storage", outcome).Inc()

	now := time.Now()
	res := s.db.WithContext(ctx).
		Model(&models.StorageConfig{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           status,
			"last_tested_at":   now,
			"last_test_result": result.Message,
		})
	if res.Error != nil {
		return nil, apperrors.Wrap(res.Error, "failed to record test result")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return &TestOutcome{
		Success: result.Success,
		Message: result.Message,
		Latency: result.Latency,
		Status:  status,
	}, nil
}

// SetDefault makes the given configuration the single default. The previous
// default is cleared in the same transaction.
func (s *StorageService) SetDefault(ctx context.Context, id string) (*models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.StorageConfig{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.StorageConfig{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to set default storage")
	}

	s.log.Info("default storage changed", zap.String("storage_id", id))
	return s.Get(ctx, id)
}

// ToggleActive flips the active flag and moves status between active and
// inactive accordingly.
func (s *StorageService) ToggleActive(ctx context.Context, id string) (*models.StorageConfig, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	active := !record.IsActive
	status := models.StorageStatusInactive
	if active {
		status = models.StorageStatusActive
	}

	err = s.db.WithContext(ctx).Model(record).Updates(map[string]any{
		"is_active": active,
		"status":    status,
	}).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to toggle storage configuration")
	}

	return s.Get(ctx, id)
}
