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

// ConnectionService manages configured data-source connections: schema-driven
// creation and updates, lifecycle actions, and connectivity probes.
type ConnectionService struct {
	db     *gorm.DB
	prober Prober
	log    *zap.Logger
}

// NewConnectionService constructs a ConnectionService.
func NewConnectionService(db *gorm.DB, prober Prober) (*ConnectionService, error) {
	if db == nil {
		return nil, errors.New("connection service requires database handle")
	}
	if prober == nil {
		return nil, errors.New("connection service requires a prober")
	}
	return &ConnectionService{db: db, prober: prober, log: logger.WithModule("connections")}, nil
}

// CreateConnectionInput carries a connection submission. Config is the raw
// form values keyed by field name; it is validated against the source type's
// schema before anything touches the store.
type CreateConnectionInput struct {
	Name       string         `json:"name" validate:"required"`
	SourceType string         `json:"source_type" validate:"required"`
	Config     map[string]any `json:"config"`
}

// UpdateConnectionInput carries a partial connection update. A nil Config
// leaves the stored configuration untouched.
type UpdateConnectionInput struct {
	Name   string         `json:"name"`
	Config map[string]any `json:"config"`
}

// ListConnectionsOptions filters and paginates connection listings.
type ListConnectionsOptions struct {
	Status     string
	SourceType string
	Search     string
	Page       int
	PageSize   int
}

// Create validates the submission against the source type's schema and
// persists it. Validation failures return per-field messages and write
// nothing.
func (s *ConnectionService) Create(ctx context.Context, input CreateConnectionInput) (*models.Connection, error) {
	ctx = ensureContext(ctx)

	name, err := requireName(input.Name)
	if err != nil {
		return nil, err
	}

	config, err := validateConfig(registry.Sources, input.SourceType, input.Config)
	if err != nil {
		return nil, err
	}

	record := models.Connection{
		Name:       name,
		SourceType: strings.TrimSpace(input.SourceType),
		Config:     config,
		Status:     models.ConnectionStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to create connection")
	}

	s.log.Info("connection created",
		zap.String("connection_id", record.ID),
		zap.String("source_type", record.SourceType))
	return &record, nil
}

// List returns connections matching the options plus the unfiltered-by-page
// total.
func (s *ConnectionService) List(ctx context.Context, opts ListConnectionsOptions) ([]models.Connection, int64, error) {
	ctx = ensureContext(ctx)
	page, pageSize := normalizePagination(opts.Page, opts.PageSize)

	query := s.db.WithContext(ctx).Model(&models.Connection{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.SourceType != "" {
		query = query.Where("source_type = ?", opts.SourceType)
	}
	if opts.Search != "" {
		query = query.Where("name LIKE ?", "%"+opts.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count connections")
	}

	var records []models.Connection
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list connections")
	}

	return records, total, nil
}

// Get fetches one connection by id.
func (s *ConnectionService) Get(ctx context.Context, id string) (*models.Connection, error) {
	ctx = ensureContext(ctx)

	var record models.Connection
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to load connection")
	}
	return &record, nil
}

// Update applies a partial update. A supplied Config is re-validated against
// the connection's source type.
func (s *ConnectionService) Update(ctx context.Context, id string, input UpdateConnectionInput) (*models.Connection, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.Name); name != "" {
		updates["name"] = name
	}
	if input.Config != nil {
		config, err := validateConfig(registry.Sources, record.SourceType, input.Config)
		if err != nil {
			return nil, err
		}
		updates["config"] = config
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to update connection")
	}
	return s.Get(ctx, id)
}

// Delete removes a connection and, via the model hook, its recorded readings.
func (s *ConnectionService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return apperrors.Wrap(err, "failed to delete connection")
	}

	s.log.Info("connection deleted", zap.String("connection_id", id))
	return nil
}

// TestOutcome is returned by Test with the probe verdict and the status the
// record moved to.
type TestOutcome struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Latency time.Duration `json:"latency"`
	Status  string        `json:"status"`
}

// Test probes the connection's endpoint and records the outcome. The result
// write is a guarded UPDATE keyed on the id, so a probe that finishes after
// the connection was deleted updates nothing instead of resurrecting the row.
func (s *ConnectionService) Test(ctx context.Context, id string) (*TestOutcome, error) {
	ctx = ensureContext(ctx)

	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.prober.Connection(ctx, record.SourceType, decodeConfig(record.Config))

	status := models.ConnectionStatusError
	outcome := "failure"
	if result.Success {
		status = models.ConnectionStatusActive
		outcome = "success"
	}
	metrics.ProbeResults.WithLabelValues("connections", outcome).Inc()

	now := time.Now()
	res := s.db.WithContext(ctx).
		Model(&models.Connection{}).
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

	s.log.Info("connection tested",
		zap.String("connection_id", id),
		zap.Bool("success", result.Success),
		zap.Duration("latency", result.Latency))

	return &TestOutcome{
		Success: result.Success,
		Message: result.Message,
		Latency: result.Latency,
		Status:  status,
	}, nil
}

// Start marks a connection active and stamps its activity time.
func (s *ConnectionService) Start(ctx context.Context, id string) (*models.Connection, error) {
	return s.transition(ctx, id, models.ConnectionStatusActive)
}

// Stop marks a connection stopped.
func (s *ConnectionService) Stop(ctx context.Context, id string) (*models.Connection, error) {
	return s.transition(ctx, id, models.ConnectionStatusStopped)
}

func (s *ConnectionService) transition(ctx context.Context, id, status string) (*models.Connection, error) {
	ctx = ensureContext(ctx)

	updates := map[string]any{"status": status}
	if status == models.ConnectionStatusActive {
		updates["last_activity_at"] = time.Now()
	}

	res := s.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, apperrors.Wrap(res.Error, "failed to update connection status")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return s.Get(ctx, id)
}

// RefreshStatusGauge recomputes the per-status connection gauge.
func (s *ConnectionService) RefreshStatusGauge(ctx context.Context) error {
	ctx = ensureContext(ctx)

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&models.Connection{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return apperrors.Wrap(err, "failed to count connections by status")
	}

	counts := map[string]int64{
		models.ConnectionStatusPending: 0,
		models.ConnectionStatusActive:  0,
		models.ConnectionStatusStopped: 0,
		models.ConnectionStatusError:   0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	for status, count := range counts {
		metrics.ConnectionsByStatus.WithLabelValues(status).Set(float64(count))
	}
	return nil
}
