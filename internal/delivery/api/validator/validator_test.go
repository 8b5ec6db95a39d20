package validator

import (
	"testing"

	domainerrors "geoalert/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID       int64   `json:"id" validate:"gt=0"`
	Latitude float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Kind     string  `json:"kind,omitempty" validate:"omitempty,oneof=a b"`
	Note     string  `json:"note" validate:"max=3"`
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{ID: 1, Latitude: 90, Note: "abc"}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{ID: 0, Latitude: -91, Kind: "c", Note: "abcd"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 400, appErr.HTTPCode())

	details := appErr.Details()
	assert.Contains(t, details, "id must be greater than 0")
	assert.Contains(t, details, "latitude must be at least -90")
	assert.Contains(t, details, "kind must be one of [a b]")
	assert.Contains(t, details, "note must be at most 3 characters")
}
