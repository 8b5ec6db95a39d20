package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/repository"
	"geoalert/internal/usecase"
)

// fanoutService implements the FanoutUsecase interface.
type fanoutService struct {
	store      repository.SubscriptionStore
	matcher    *Matcher
	dispatcher *Dispatcher
	pageSize   int
	logger     *slog.Logger

	mu       sync.Mutex
	draining bool
	drained  chan struct{}
	inflight sync.WaitGroup
}

// NewFanoutService is the constructor for fanoutService.
func NewFanoutService(
	store repository.SubscriptionStore,
	matcher *Matcher,
	dispatcher *Dispatcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FanoutUsecase {
	pageSize := 0
	if cfg.Fanout != nil {
		pageSize = cfg.Fanout.PageSize
	}
	if pageSize <= 0 {
		pageSize = 100
	}

	return &fanoutService{
		store:      store,
		matcher:    matcher,
		dispatcher: dispatcher,
		pageSize:   pageSize,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// OnPointCreated starts a run in the background. The run keeps the caller's values
// (request id, logger) but is not cancelled with it.
func (s *fanoutService) OnPointCreated(ctx context.Context, point *entity.Point) {
	if point == nil {
		s.log(ctx).Warn("[Fanout] Ignoring empty point-created event")

		return
	}

	snapshot := *point
	runCtx := context.WithoutCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draining {
		s.log(ctx).Warn("[Fanout] Shutting down, point-created event dropped", slog.Int64("point_id", point.ID))

		return
	}

	s.inflight.Go(func() {
		s.Run(runCtx, &snapshot)
	})
}

// Run pages through every subscription, matching and dispatching one page at a time.
func (s *fanoutService) Run(ctx context.Context, point *entity.Point) entity.RunSummary {
	started := time.Now()
	summary := entity.RunSummary{}

	if err := validatePoint(point); err != nil {
		s.log(ctx).Warn("[Fanout] Run skipped", slog.Any("error", err))
		summary.Duration = time.Since(started)

		return summary
	}

	summary.PointID = point.ID
	logger := s.log(ctx).With(slog.Int64("point_id", point.ID))
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Debug("[Fanout] Run started", slog.Int("page_size", s.pageSize))

	for page, err := range subscriptionPages(ctx, s.store, s.pageSize) {
		if err != nil {
			summary.Aborted = true
			logger.Error("[Fanout] Aborting run, remaining pages skipped",
				slog.Int("pages_done", summary.Pages),
				slog.Any("error", err),
			)

			break
		}

		summary.Pages++
		stats := &matchStats{}
		outcomes := s.dispatcher.DispatchAll(ctx, point, s.matcher.match(ctx, point, slices.Values(page), stats))

		summary.Scanned += stats.scanned
		summary.Skipped += stats.skipped
		summary.Matched += len(outcomes)
		for _, outcome := range outcomes {
			if outcome.Failed() {
				summary.Failed++
			} else {
				summary.Sent++
			}
		}
	}

	summary.Duration = time.Since(started)
	logger.Info("[Fanout] Run finished",
		slog.Int("pages", summary.Pages),
		slog.Int("scanned", summary.Scanned),
		slog.Int("matched", summary.Matched),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
		slog.Bool("aborted", summary.Aborted),
		slog.Duration("duration", summary.Duration),
	)

	return summary
}

// Wait stops accepting new runs and blocks until in-flight runs finish or ctx is done.
// It may be called again after a timeout.
func (s *fanoutService) Wait(ctx context.Context) error {
	s.mu.Lock()
	if !s.draining {
		drained := make(chan struct{})
		s.draining = true
		s.drained = drained
		go func() {
			s.inflight.Wait()
			close(drained)
		}()
	}
	done := s.drained
	s.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
