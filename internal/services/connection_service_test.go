package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill-console/internal/models"
	"github.com/quillhq/quill-console/internal/probe"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
)

func newConnectionService(t *testing.T) *ConnectionService {
	t.Helper()
	svc, err := NewConnectionService(openServiceDB(t), &stubProber{})
	require.NoError(t, err)
	return svc
}

func TestConnectionCreatePersistsOnlyDeclaredFields(t *testing.T) {
	svc := newConnectionService(t)

	record, err := svc.Create(context.Background(), CreateConnectionInput{
		Name:       "Plant MQTT",
		SourceType: "mqtt",
		Config: map[string]any{
			"brokerAddress": "mqtt.plant.local",
			"port":          float64(1883),
			"topic":         "sensors/#",
			"ghostField":    "should vanish",
		},
	})
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusPending, record.Status)
	require.NotEmpty(t, record.ID)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(record.Config, &stored))
	require.Equal(t, "mqtt.plant.local", stored["brokerAddress"])
	require.Equal(t, float64(1883), stored["port"])
	require.NotContains(t, stored, "ghostField")
}

func TestConnectionCreateUnknownType(t *testing.T) {
	svc := newConnectionService(t)

	_, err := svc.Create(context.Background(), CreateConnectionInput{
		Name:       "Mystery",
		SourceType: "bacnet",
		Config:     map[string]any{},
	})
	require.ErrorIs(t, err, apperrors.ErrUnknownType)
}

func TestConnectionCreateValidationFailureWritesNothing(t *testing.T) {
	svc := newConnectionService(t)

	_, err := svc.Create(context.Background(), CreateConnectionInput{
		Name:       "Broken",
		SourceType: "mqtt",
		Config:     map[string]any{"port": float64(1883)},
	})
	require.Error(t, err)

	appErr := apperrors.FromError(err)
	require.Equal(t, "VALIDATION_FAILED", appErr.Code)
	require.Contains(t, appErr.Fields, "brokerAddress")
	require.Contains(t, appErr.Fields, "topic")

	var count int64
	require.NoError(t, svc.db.Model(&models.Connection{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestConnectionListFilters(t *testing.T) {
	svc := newConnectionService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Gateway Feed",
		SourceType: "tcp",
		Config:     map[string]any{"host": "gw.local", "port": float64(9000)},
	})
	require.NoError(t, err)
	created, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Plant MQTT",
		SourceType: "mqtt",
		Config:     map[string]any{"brokerAddress": "mqtt.local", "port": float64(1883), "topic": "t"},
	})
	require.NoError(t, err)

	records, total, err := svc.List(ctx, ListConnectionsOptions{SourceType: "mqtt"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	require.Equal(t, created.ID, records[0].ID)

	records, total, err = svc.List(ctx, ListConnectionsOptions{Search: "Gateway"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Gateway Feed", records[0].Name)

	_, total, err = svc.List(ctx, ListConnectionsOptions{Status: models.ConnectionStatusPending})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

func TestConnectionUpdateRevalidatesConfig(t *testing.T) {
	svc := newConnectionService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, record.ID, UpdateConnectionInput{
		Config: map[string]any{"host": "edge.local", "port": float64(70000)},
	})
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.FromError(err).Code)

	updated, err := svc.Update(ctx, record.ID, UpdateConnectionInput{Name: "Edge TCP 2"})
	require.NoError(t, err)
	require.Equal(t, "Edge TCP 2", updated.Name)
}

func TestConnectionStartStop(t *testing.T) {
	svc := newConnectionService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	started, err := svc.Start(ctx, record.ID)
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusActive, started.Status)
	require.NotNil(t, started.LastActivityAt)

	stopped, err := svc.Stop(ctx, record.ID)
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusStopped, stopped.Status)

	_, err = svc.Start(ctx, "missing-id")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConnectionTestRecordsOutcome(t *testing.T) {
	db := openServiceDB(t)
	svc, err := NewConnectionService(db, &stubProber{
		connectionFn: func(_ context.Context, _ string, _ map[string]any) probe.Result {
			return probe.Result{Success: false, Message: "dial tcp: connection refused"}
		},
	})
	require.NoError(t, err)

	ctx := context.Background()
	record, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	outcome, err := svc.Test(ctx, record.ID)
	require.NoError(t, err)
	require.False(t, outcome.Success)
	require.Equal(t, models.ConnectionStatusError, outcome.Status)

	reloaded, err := svc.Get(ctx, record.ID)
	require.NoError(t, err)
	require.Equal(t, models.ConnectionStatusError, reloaded.Status)
	require.NotNil(t, reloaded.LastTestedAt)
	require.Equal(t, "dial tcp: connection refused", reloaded.LastTestResult)
}

func TestConnectionTestRacingDeleteDoesNotResurrect(t *testing.T) {
	db := openServiceDB(t)

	prober := &stubProber{
		connectionFn: func(_ context.Context, _ string, _ map[string]any) probe.Result {
			// Simulate a delete landing while the probe is in flight.
			var record models.Connection
			require.NoError(t, db.First(&record).Error)
			require.NoError(t, db.Delete(&record).Error)
			return probe.Result{Success: true, Message: "reached"}
		},
	}
	svc, err := NewConnectionService(db, prober)
	require.NoError(t, err)

	ctx := context.Background()
	record, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	_, err = svc.Test(ctx, record.ID)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Connection{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestConnectionDeleteRemovesReadings(t *testing.T) {
	db := openServiceDB(t)
	svc, err := NewConnectionService(db, &stubProber{})
	require.NoError(t, err)
	readings, err := NewReadingService(db)
	require.NoError(t, err)

	ctx := context.Background()
	record, err := svc.Create(ctx, CreateConnectionInput{
		Name:       "Edge TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "edge.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	_, err = readings.Record(ctx, RecordInput{ConnectionID: record.ID, Metric: "temperature", Value: 21.5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))

	var count int64
	require.NoError(t, db.Model(&models.Reading{}).Count(&count).Error)
	require.Zero(t, count)
}
