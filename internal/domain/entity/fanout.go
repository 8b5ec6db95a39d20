// Package entity contains the core business objects of the project.
package entity

import "time"

// MatchResult is an ephemeral pairing of a subscription with its distance to a point.
type MatchResult struct {
	SubscriptionID int64
	DistanceKm     float64
	Subscription   *Subscription
}

// DeliveryStatus is the outcome of a single delivery attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent            DeliveryStatus = "sent"
	DeliveryStatusFailedTransient DeliveryStatus = "failed_transient"
	DeliveryStatusFailedPermanent DeliveryStatus = "failed_permanent"
)

// DeliveryOutcome records what happened to one matched subscription.
type DeliveryOutcome struct {
	SubscriptionID int64
	DistanceKm     float64
	Status         DeliveryStatus
	Err            error
}

// Failed reports whether the attempt did not reach the recipient.
func (o DeliveryOutcome) Failed() bool {
	return o.Status != DeliveryStatusSent
}

// RunSummary aggregates the result of one fan-out run.
type RunSummary struct {
	PointID  int64
	Pages    int
	Scanned  int
	Matched  int
	Sent     int
	Failed   int
	Skipped  int
	Aborted  bool
	Duration time.Duration
}
