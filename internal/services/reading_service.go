package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/models"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
	"github.com/quillhq/quill-console/pkg/metrics"
)

// ReadingService records and serves ingested data points.
type ReadingService struct {
	db *gorm.DB
}

// NewReadingService constructs a ReadingService.
func NewReadingService(db *gorm.DB) (*ReadingService, error) {
	if db == nil {
		return nil, errors.New("reading service requires database handle")
	}
	return &ReadingService{db: db}, nil
}

// RecordInput carries one data point to record.
type RecordInput struct {
	ConnectionID string    `json:"connection_id" validate:"required"`
	Metric       string    `json:"metric" validate:"required"`
	Value        float64   `json:"value"`
	Unit         string    `json:"unit"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// Record stores one reading attributed to an existing connection. Readings
// for unknown or deleted connections are rejected, which lets the sampler
// discard points that raced a delete.
func (s *ReadingService) Record(ctx context.Context, input RecordInput) (*models.Reading, error) {
	ctx = ensureContext(ctx)

	var conn models.Connection
	if err := s.db.WithContext(ctx).First(&conn, "id = ?", input.ConnectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "failed to resolve connection")
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	record := models.Reading{
		ConnectionID: conn.ID,
		SourceType:   conn.SourceType,
		Metric:       input.Metric,
		Value:        input.Value,
		Unit:         input.Unit,
		RecordedAt:   recordedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to record reading")
	}

	metrics.ReadingsIngested.WithLabelValues(conn.SourceType).Inc()
	return &record, nil
}

// ListReadingsOptions filters reading queries.
type ListReadingsOptions struct {
	ConnectionID string
	Metric       string
	Since        time.Time
	Limit        int
}

// List returns readings newest first.
func (s *ReadingService) List(ctx context.Context, opts ListReadingsOptions) ([]models.Reading, error) {
	ctx = ensureContext(ctx)

	limit := opts.Limit
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	query := s.db.WithContext(ctx).Model(&models.Reading{})
	if opts.ConnectionID != "" {
		query = query.Where("connection_id = ?", opts.ConnectionID)
	}
	if opts.Metric != "" {
		query = query.Where("metric = ?", opts.Metric)
	}
	if !opts.Since.IsZero() {
		query = query.Where("recorded_at >= ?", opts.Since)
	}

	var records []models.Reading
	if err := query.Order("recorded_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to list readings")
	}
	return records, nil
}

// DashboardSummary aggregates the landing-page counters.
type DashboardSummary struct {
	TotalConnections  int64            `json:"total_connections"`
	ConnectionsByStat map[string]int64 `json:"connections_by_status"`
	TotalStorage      int64            `json:"total_storage_configs"`
	TotalUsers        int64            `json:"total_users"`
	TotalWidgets      int64            `json:"total_widgets"`
	ReadingsLastHour  int64            `json:"readings_last_hour"`
}

// Summary computes the dashboard counters in one pass.
func (s *ReadingService) Summary(ctx context.Context) (*DashboardSummary, error) {
	ctx = ensureContext(ctx)

	summary := &DashboardSummary{ConnectionsByStat: map[string]int64{}}

	if err := s.db.WithContext(ctx).Model(&models.Connection{}).Count(&summary.TotalConnections).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to count connections")
	}

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
		return nil, apperrors.Wrap(err, "failed to group connections by status")
	}
	for _, r := range rows {
		summary.ConnectionsByStat[r.Status] = r.Count
	}

	if err := s.db.WithContext(ctx).Model(&models.StorageConfig{}).Count(&summary.TotalStorage).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to count storage configurations")
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&summary.TotalUsers).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to count users")
	}
	if err := s.db.WithContext(ctx).Model(&models.DashboardWidget{}).Count(&summary.TotalWidgets).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to count widgets")
	}

	cutoff := time.Now().Add(-time.Hour)
	err = s.db.WithContext(ctx).
		Model(&models.Reading{}).
		Where("recorded_at >= ?", cutoff).
		Count(&summary.ReadingsLastHour).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count recent readings")
	}

	return summary, nil
}
