package pubsub

import (
	"context"
	"log/slog"

	"geoalert/internal/domain/service"
	"geoalert/internal/usecase"
)

// inProcessPublisher hands events straight to the fan-out usecase running in the same process.
type inProcessPublisher struct {
	fanout usecase.FanoutUsecase
	logger *slog.Logger
}

// NewInProcessPublisher creates a publisher that schedules fan-out locally.
func NewInProcessPublisher(fanout usecase.FanoutUsecase, logger *slog.Logger) service.EventPublisher {
	return &inProcessPublisher{fanout: fanout, logger: logger}
}

// PublishPointCreated schedules the fan-out and returns without waiting for it.
func (p *inProcessPublisher) PublishPointCreated(ctx context.Context, event *service.PointCreatedEvent) error {
	p.logger.Debug("[InProcessPubSub] Scheduling fan-out", slog.Int64("point_id", event.PointID))

	p.fanout.OnPointCreated(ctx, event.Point())

	return nil
}

func (p *inProcessPublisher) Close() error {
	return nil
}
