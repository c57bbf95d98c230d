package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-console/internal/models"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

func seedConnection(t *testing.T, svc *ConnectionService) *models.Connection {
	t.Helper()
	record, err := svc.Create(context.Background(), CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)
	return record
}

func TestReadingRecordAndList(t *testing.T) {
	db := openServiceDB(t)
	connections, err := NewConnectionService(db, &stubProber{})
	require.NoError(t, err)
	readings, err := NewReadingService(db)
	require.NoError(t, err)

	ctx := context.Background()
	conn := seedConnection(t, connections)

	first, err := readings.Record(ctx, RecordInput{
		ConnectionID: conn.ID,
		Metric:       "temperature",
		Value:        21.5,
		Unit:         "C",
		RecordedAt:   time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	require.Equal(t, "tcp", first.SourceType)

	_, err = readings.Record(ctx, RecordInput{ConnectionID: conn.ID, Metric: "pressure", Value: 1.2})
	require.NoError(t, err)

	all, err := readings.List(ctx, ListReadingsOptions{ConnectionID: conn.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "pressure", all[0].Metric) // newest first

	filtered, err := readings.List(ctx, ListReadingsOptions{Metric: "temperature"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	recent, err := readings.List(ctx, ListReadingsOptions{Since: time.Now().Add(-30 * time.Second)})
	require.NoError(t, err)
	require.Len(t, recent, 1)
}

func TestReadingRecordUnknownConnection(t *testing.T) {
	db := openServiceDB(t)
	readings, err := NewReadingService(db)
	require.NoError(t, err)

	_, err = readings.Record(context.Background(), RecordInput{ConnectionID: "gone", Metric: "temperature"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Reading{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDashboardSummary(t *testing.T) {
	db := openServiceDB(t)
	connections, err := NewConnectionService(db, &stubProber{})
	require.NoError(t, err)
	readings, err := NewReadingService(db)
	require.NoError(t, err)
	storage, err := NewStorageService(db, &stubProber{})
	require.NoError(t, err)

	ctx := context.Background()
	conn := seedConnection(t, connections)
	_, err = connections.Start(ctx, conn.ID)
	require.NoError(t, err)

	_, err = storage.Create(ctx, postgresInput("Primary DB"))
	require.NoError(t, err)

	_, err = readings.Record(ctx, RecordInput{ConnectionID: conn.ID, Metric: "temperature", Value: 20})
	require.NoError(t, err)

	summary, err := readings.Summary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, summary.TotalConnections)
	require.EqualValues(t, 1, summary.ConnectionsByStat[models.ConnectionStatusActive])
	require.EqualValues(t, 1, summary.TotalStorage)
	require.EqualValues(t, 1, summary.ReadingsLastHour)
}
