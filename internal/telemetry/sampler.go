package telemetry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/quillhq/quill-console/internal/models"
	"github.com/quillhq/quill-console/internal/services"
	apperrors "github.com/quillhq/quill-console/pkg/errors"
	"github.com/quillhq/quill-console/pkg/logger"
)

// Sampler periodically records simulated readings for every active
// connection. A production deployment would replace it with real protocol
// drivers; the console only needs data flowing so dashboards and the data API
// have something to show.
type Sampler struct {
	connections *services.ConnectionService
	readings    *services.ReadingService
	scheduler   *cron.Cron
	log         *zap.Logger
}

// NewSampler constructs a Sampler over the given services.
func NewSampler(connections *services.ConnectionService, readings *services.ReadingService) (*Sampler, error) {
	if connections == nil || readings == nil {
		return nil, errors.New("sampler requires connection and reading services")
	}
	return &Sampler{
		connections: connections,
		readings:    readings,
		scheduler:   cron.New(cron.WithSeconds()),
		log:         logger.WithModule("telemetry"),
	}, nil
}

// Start schedules sampling on the supplied cron spec (seconds granularity)
// and starts the scheduler.
func (s *Sampler) Start(spec string) error {
	if _, err := s.scheduler.AddFunc(spec, s.sample); err != nil {
		return err
	}
	s.scheduler.Start()
	s.log.Info("telemetry sampler started", zap.String("schedule", spec))
	return nil
}

// Stop halts the scheduler and waits for an in-flight run to finish.
func (s *Sampler) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	s.log.Info("telemetry sampler stopped")
}

func (s *Sampler) sample() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.SampleOnce(ctx); err != nil {
		s.log.Warn("sampling run failed", zap.Error(err))
	}
}

// SampleOnce records one reading per active connection. Readings that race a
// connection delete are dropped silently.
func (s *Sampler) SampleOnce(ctx context.Context) error {
	active, _, err := s.connections.List(ctx, services.ListConnectionsOptions{
		Status:   models.ConnectionStatusActive,
		PageSize: 100,
	})
	if err != nil {
		return err
	}

	for _, conn := range active {
		metric, unit, value := simulate(conn.SourceType)
		_, err := s.readings.Record(ctx, services.RecordInput{
			ConnectionID: conn.ID,
			Metric:       metric,
			Value:        value,
			Unit:         unit,
			RecordedAt:   time.Now(),
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			s.log.Warn("failed to record reading",
				zap.String("connection_id", conn.ID),
				zap.Error(err))
		}
	}

	return s.connections.RefreshStatusGauge(ctx)
}

// simulate picks a plausible metric for the source type and a value in its
// typical range.
func simulate(sourceType string) (metric, unit string, value float64) {
	switch sourceType {
	case "mqtt", "iot":
		return "temperature", "C", 15 + rand.Float64()*20
	case "modbus_tcp", "modbus_rtu":
		return "register_value", "", float64(rand.Intn(4096))
	case "rest", "soap":
		return "response_time", "ms", 20 + rand.Float64()*480
	case "serial":
		return "voltage", "V", 3 + rand.Float64()*2
	default:
		return "throughput", "B/s", rand.Float64() * 10000
	}
}
