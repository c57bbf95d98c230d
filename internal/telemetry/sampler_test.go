package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quillhq/quill-console/internal/database/testutil"
	"github.com/quillhq/quill-console/internal/models"
	"github.com/quillhq/quill-console/internal/probe"
	"github.com/quillhq/quill-console/internal/services"
)

func newSampler(t *testing.T) (*Sampler, *services.ConnectionService, *gorm.DB) {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	connections, err := services.NewConnectionService(db, probe.New(0))
	require.NoError(t, err)
	readings, err := services.NewReadingService(db)
	require.NoError(t, err)
	sampler, err := NewSampler(connections, readings)
	require.NoError(t, err)
	return sampler, connections, db
}

func TestSampleOnceRecordsForActiveConnections(t *testing.T) {
	sampler, connections, db := newSampler(t)
	ctx := context.Background()

	active, err := connections.Create(ctx, services.CreateConnectionInput{
		Name:       "Plant MQTT",
		SourceType: "mqtt",
		Config:     map[string]any{"brokerAddress": "mqtt.local", "port": float64(1883), "topic": "t"},
	})
	require.NoError(t, err)
	_, err = connections.Start(ctx, active.ID)
	require.NoError(t, err)

	// Pending connections are not sampled.
	_, err = connections.Create(ctx, services.CreateConnectionInput{
		Name:       "Idle TCP",
		SourceType: "tcp",
		Config:     map[string]any{"host": "idle.local", "port": float64(9000)},
	})
	require.NoError(t, err)

	require.NoError(t, sampler.SampleOnce(ctx))

	var readings []models.Reading
	require.NoError(t, db.Find(&readings).Error)
	require.Len(t, readings, 1)
	require.Equal(t, active.ID, readings[0].ConnectionID)
	require.Equal(t, "temperature", readings[0].Metric)
}

func TestSampleOnceWithNoActiveConnections(t *testing.T) {
	sampler, _, db := newSampler(t)

	require.NoError(t, sampler.SampleOnce(context.Background()))

	var count int64
	require.NoError(t, db.Model(&models.Reading{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSimulatedMetricsPerSourceType(t *testing.T) {
	metric, unit, _ := simulate("mqtt")
	require.Equal(t, "temperature", metric)
	require.Equal(t, "C", unit)

	metric, _, value := simulate("modbus_tcp")
	require.Equal(t, "register_value", metric)
	require.Less(t, value, float64(4096))

	metric, unit, _ = simulate("tcp")
	require.Equal(t, "throughput", metric)
	require.Equal(t, "B/s", unit)
}
