// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/geo"
)

// boundaryToleranceKm absorbs floating point noise so a point exactly on the radius still matches.
const boundaryToleranceKm = 1e-9

// Matcher filters subscriptions whose radius covers a point.
type Matcher struct {
	logger *slog.Logger
}

// matchStats counts what a single pass over subscriptions saw.
type matchStats struct {
	scanned int
	skipped int
}

// NewMatcher creates a matcher.
func NewMatcher(logger *slog.Logger) *Matcher {
	return &Matcher{logger: logger}
}

func (m *Matcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// Match lazily yields a MatchResult for every subscription within its radius of point.
// Subscriptions are pulled one at a time and never mutated.
func (m *Matcher) Match(ctx context.Context, point *entity.Point, subs iter.Seq[*entity.Subscription]) iter.Seq[entity.MatchResult] {
	return m.match(ctx, point, subs, nil)
}

func (m *Matcher) match(ctx context.Context, point *entity.Point, subs iter.Seq[*entity.Subscription], stats *matchStats) iter.Seq[entity.MatchResult] {
	return func(yield func(entity.MatchResult) bool) {
		if err := validatePoint(point); err != nil {
			m.log(ctx).Warn("[Fanout] Point skipped", slog.Any("error", err))

			return
		}

		for sub := range subs {
			if stats != nil {
				stats.scanned++
			}

			if err := validateSubscription(sub); err != nil {
				if stats != nil {
					stats.skipped++
				}
				m.log(ctx).Warn("[Fanout] Subscription skipped",
					slog.Int64("point_id", point.ID),
					slog.Any("error", err),
				)

				continue
			}

			distance := geo.DistanceKm(sub.Latitude, sub.Longitude, point.Latitude, point.Longitude)
			if distance > float64(sub.RadiusKm)+boundaryToleranceKm {
				continue
			}

			if !yield(entity.MatchResult{
				SubscriptionID: sub.ID,
				DistanceKm:     distance,
				Subscription:   sub,
			}) {
				return
			}
		}
	}
}

func validatePoint(point *entity.Point) error {
	if point == nil {
		return &domainerrors.InvalidCoordinateError{Subject: "point", Reason: "missing point"}
	}
	if !geo.ValidCoordinate(point.Latitude, point.Longitude) {
		return &domainerrors.InvalidCoordinateError{
			Subject:   "point",
			ID:        point.ID,
			Latitude:  point.Latitude,
			Longitude: point.Longitude,
			Reason:    "latitude or longitude out of range",
		}
	}

	return nil
}

func validateSubscription(sub *entity.Subscription) error {
	if sub == nil {
		return &domainerrors.InvalidCoordinateError{Subject: "subscription", Reason: "missing subscription"}
	}
	if !geo.ValidCoordinate(sub.Latitude, sub.Longitude) {
		return &domainerrors.InvalidCoordinateError{
			Subject:   "subscription",
			ID:        sub.ID,
			Latitude:  sub.Latitude,
			Longitude: sub.Longitude,
			Reason:    "latitude or longitude out of range",
		}
	}
	if sub.RadiusKm < entity.MinRadiusKm || sub.RadiusKm > entity.MaxRadiusKm {
		return &domainerrors.InvalidCoordinateError{
			Subject:   "subscription",
			ID:        sub.ID,
			Latitude:  sub.Latitude,
			Longitude: sub.Longitude,
			Reason:    fmt.Sprintf("radius %d km outside %d..%d", sub.RadiusKm, entity.MinRadiusKm, entity.MaxRadiusKm),
		}
	}

	return nil
}
