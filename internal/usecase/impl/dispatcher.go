package impl

import (
	"context"
	"fmt"
	"html"
	"iter"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"
	"geoalert/internal/errors"

	"golang.org/x/sync/errgroup"
)

const (
	// ViewOnMapText is the label of the action attached to every notification.
	ViewOnMapText = "📍 View on Map"

	messageHeader = "⚠️ <b>New danger point nearby!</b>"
)

var (
	errDispatchTimeout     = errors.New("dispatch timed out")
	errMissingSubscription = errors.New("match carries no subscription")
)

// Dispatcher delivers one notification per match through the injected channel.
// A failed delivery is classified and logged, never returned.
type Dispatcher struct {
	channel   service.DeliveryChannel
	webAppURL string
	timeout   time.Duration
	workers   int
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher bound to a delivery channel.
func NewDispatcher(channel service.DeliveryChannel, cfg *config.Config, logger *slog.Logger) *Dispatcher {
	fanout := cfg.Fanout
	if fanout == nil {
		fanout = &config.FanoutConfig{}
	}

	dispatcher := &Dispatcher{
		channel: channel,
		timeout: fanout.DispatchTimeout,
		workers: fanout.Workers,
		logger:  logger,
	}
	if cfg.Delivery != nil {
		dispatcher.webAppURL = cfg.Delivery.WebAppURL
	}
	if dispatcher.timeout <= 0 {
		dispatcher.timeout = 8 * time.Second
	}
	if dispatcher.workers <= 0 {
		dispatcher.workers = 1
	}

	return dispatcher
}

func (d *Dispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Deliver makes exactly one delivery attempt for match under the dispatch timeout.
func (d *Dispatcher) Deliver(ctx context.Context, match entity.MatchResult, point *entity.Point) entity.DeliveryOutcome {
	outcome := entity.DeliveryOutcome{
		SubscriptionID: match.SubscriptionID,
		DistanceKm:     match.DistanceKm,
	}

	if match.Subscription == nil {
		outcome.Status = entity.DeliveryStatusFailedPermanent
		outcome.Err = domainerrors.NewPermanentDeliveryError(errMissingSubscription)
		d.logOutcome(ctx, point, outcome)

		return outcome
	}

	text := FormatMessage(point, match.DistanceKm)
	action := service.ActionPayload{Text: ViewOnMapText, URL: d.webAppURL}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	err := d.channel.Send(callCtx, match.Subscription.OwnerRef, text, action)
	timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded)
	cancel()

	outcome.Status, outcome.Err = classifyDelivery(err, timedOut)
	d.logOutcome(ctx, point, outcome)

	return outcome
}

// DispatchAll delivers every match with at most the configured number of calls in flight.
// It returns once all deliveries have finished.
func (d *Dispatcher) DispatchAll(ctx context.Context, point *entity.Point, matches iter.Seq[entity.MatchResult]) []entity.DeliveryOutcome {
	var (
		group    errgroup.Group
		mu       sync.Mutex
		outcomes []entity.DeliveryOutcome
	)
	group.SetLimit(d.workers)

	for match := range matches {
		group.Go(func() error {
			outcome := d.Deliver(ctx, match, point)

			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	return outcomes
}

func (d *Dispatcher) logOutcome(ctx context.Context, point *entity.Point, outcome entity.DeliveryOutcome) {
	attrs := []any{
		slog.Int64("point_id", point.ID),
		slog.Int64("subscription_id", outcome.SubscriptionID),
		slog.Float64("distance_km", outcome.DistanceKm),
		slog.String("outcome", string(outcome.Status)),
	}

	if outcome.Err == nil {
		d.log(ctx).Info("[Fanout] Notification delivered", attrs...)

		return
	}

	d.log(ctx).Warn("[Fanout] Notification failed", append(attrs, slog.Any("error", outcome.Err))...)
}

// classifyDelivery maps a channel error onto the delivery taxonomy.
// Anything not explicitly permanent is treated as transient.
func classifyDelivery(err error, timedOut bool) (entity.DeliveryStatus, error) {
	switch {
	case err == nil:
		return entity.DeliveryStatusSent, nil
	case domainerrors.IsPermanentDelivery(err):
		return entity.DeliveryStatusFailedPermanent, err
	case domainerrors.IsTransientDelivery(err):
		return entity.DeliveryStatusFailedTransient, err
	case timedOut:
		return entity.DeliveryStatusFailedTransient, domainerrors.NewTransientDeliveryError(errors.Wrap(err, errDispatchTimeout.Error()))
	default:
		return entity.DeliveryStatusFailedTransient, domainerrors.NewTransientDeliveryError(err)
	}
}

// FormatMessage renders the HTML notification text for a point at distanceKm.
func FormatMessage(point *entity.Point, distanceKm float64) string {
	var text strings.Builder

	text.WriteString(messageHeader)
	text.WriteString("\n\n")
	text.WriteString(html.EscapeString(point.Description))
	if label := point.Type.Label(); label != "" {
		text.WriteString("\n🏷 ")
		text.WriteString(label)
	}
	text.WriteString("\n📏 ")
	text.WriteString(FormatDistance(distanceKm))
	text.WriteString(" km from your location")

	return text.String()
}

// FormatDistance rounds half away from zero to one decimal and always prints one decimal.
func FormatDistance(distanceKm float64) string {
	return fmt.Sprintf("%.1f", math.Round(distanceKm*10)/10)
}
