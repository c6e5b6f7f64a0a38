package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("slot taken")

func TestConflictWrapsSentinel(t *testing.T) {
	err := fmt.Errorf("create: %w", apperrors.Conflict("slot just booked", errSentinel))

	require.ErrorIs(t, err, errSentinel)
	require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	require.False(t, apperrors.IsKind(err, apperrors.KindValidation))

	appErr := apperrors.AsAppError(err)
	require.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	require.True(t, appErr.Retriable())
}

func TestAsAppErrorFallsBackToInternal(t *testing.T) {
	appErr := apperrors.AsAppError(errors.New("boom"))

	require.Equal(t, apperrors.KindInternal, appErr.Kind)
	require.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	require.False(t, appErr.Retriable())
}

func TestValidationDetails(t *testing.T) {
	appErr := apperrors.Validation("bad input", map[string]any{"field": "partySize"})

	require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	require.Equal(t, "partySize", appErr.Details["field"])
	require.Equal(t, "VALIDATION_ERROR: bad input", appErr.Error())
}
