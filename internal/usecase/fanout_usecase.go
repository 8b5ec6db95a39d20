package usecase

import (
	"context"

	"geoalert/internal/domain/entity"
)

// FanoutUsecase notifies subscribers whose radius covers a newly created point.
type FanoutUsecase interface {
	// OnPointCreated schedules a fan-out for point and returns immediately.
	// Failures are logged and never reported to the caller.
	OnPointCreated(ctx context.Context, point *entity.Point)

	// Run performs one fan-out synchronously and reports what happened.
	Run(ctx context.Context, point *entity.Point) entity.RunSummary

	// Wait blocks until every scheduled fan-out has finished or ctx is done.
	// Events arriving once Wait has been called are dropped.
	Wait(ctx context.Context) error
}
