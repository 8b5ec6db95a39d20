// Package errors defines the error taxonomy of the notifier and the HTTP-facing AppError.
package errors

import (
	"fmt"

	"geoalert/internal/errors"
)

// TransientDeliveryError is a delivery failure that could succeed later:
// network blips, rate limits, upstream 5xx or a dispatch timeout.
type TransientDeliveryError struct {
	err error
}

// NewTransientDeliveryError wraps cause as a transient delivery failure.
func NewTransientDeliveryError(cause error) error {
	return &TransientDeliveryError{err: cause}
}

func (e *TransientDeliveryError) Error() string {
	return fmt.Sprintf("transient delivery failure: %v", e.err)
}

func (e *TransientDeliveryError) Unwrap() error {
	return e.err
}

// PermanentDeliveryError is a delivery failure that will not succeed for this recipient,
// e.g. the user blocked the bot or the token is unregistered.
type PermanentDeliveryError struct {
	err error
}

// NewPermanentDeliveryError wraps cause as a permanent delivery failure.
func NewPermanentDeliveryError(cause error) error {
	return &PermanentDeliveryError{err: cause}
}

func (e *PermanentDeliveryError) Error() string {
	return fmt.Sprintf("permanent delivery failure: %v", e.err)
}

func (e *PermanentDeliveryError) Unwrap() error {
	return e.err
}

// IsPermanentDelivery reports whether err is or wraps a PermanentDeliveryError.
// Everything else a channel returns is treated as transient.
func IsPermanentDelivery(err error) bool {
	_, ok := errors.AsType[*PermanentDeliveryError](err)

	return ok
}

// IsTransientDelivery reports whether err is or wraps a TransientDeliveryError.
func IsTransientDelivery(err error) bool {
	_, ok := errors.AsType[*TransientDeliveryError](err)

	return ok
}

// StoreUnavailableError means a subscription page could not be fetched.
type StoreUnavailableError struct {
	err error
}

// NewStoreUnavailableError wraps cause as a store failure.
func NewStoreUnavailableError(cause error) error {
	return &StoreUnavailableError{err: cause}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("subscription store unavailable: %v", e.err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// IsStoreUnavailable reports whether err is or wraps a StoreUnavailableError.
func IsStoreUnavailable(err error) bool {
	_, ok := errors.AsType[*StoreUnavailableError](err)

	return ok
}

// InvalidCoordinateError reports coordinates or a radius that cannot be matched.
type InvalidCoordinateError struct {
	Subject   string // "point" or "subscription"
	ID        int64
	Latitude  float64
	Longitude float64
	Reason    string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid %s %d coordinate (%v, %v): %s", e.Subject, e.ID, e.Latitude, e.Longitude, e.Reason)
}
