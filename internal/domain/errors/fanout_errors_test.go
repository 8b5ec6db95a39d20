package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryErrorClassification(t *testing.T) {
	cause := stderrors.New("connection reset")

	transient := NewTransientDeliveryError(cause)
	permanent := NewPermanentDeliveryError(cause)

	assert.True(t, IsTransientDelivery(transient))
	assert.False(t, IsPermanentDelivery(transient))
	assert.True(t, IsPermanentDelivery(permanent))
	assert.False(t, IsTransientDelivery(permanent))
	assert.ErrorIs(t, transient, cause)
	assert.ErrorIs(t, permanent, cause)

	wrapped := fmt.Errorf("chat 42: %w", permanent)
	assert.True(t, IsPermanentDelivery(wrapped))
}

func TestStoreUnavailableError(t *testing.T) {
	err := NewStoreUnavailableError(context.DeadlineExceeded)

	assert.True(t, IsStoreUnavailable(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "subscription store unavailable")
	assert.False(t, IsStoreUnavailable(context.Canceled))
}

func TestInvalidCoordinateError(t *testing.T) {
	err := &InvalidCoordinateError{Subject: "subscription", ID: 7, Latitude: 91, Longitude: 10, Reason: "out of range"}

	assert.Equal(t, "invalid subscription 7 coordinate (91, 10): out of range", err.Error())
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("latitude must be between -90 and 90")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "latitude")
}
