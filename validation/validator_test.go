package validation_test

import (
	"testing"

	"github.com/hanksha/venue-booking-backend/apperrors"
	"github.com/hanksha/venue-booking-backend/validation"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Email string `json:"email" validate:"required,email"`
}

type form struct {
	Name    string  `json:"name" validate:"required,max=5"`
	Size    int     `json:"size" validate:"min=1,max=24"`
	Kind    string  `json:"kind" validate:"omitempty,oneof=A B"`
	Start   string  `json:"start" validate:"omitempty,datetime=15:04"`
	Contact contact `json:"contact"`
	Ignored string  `json:"-" validate:"required"`
}

func TestStruct(t *testing.T) {
	v := validation.New()

	t.Run("valid", func(t *testing.T) {
		err := v.Struct(form{Name: "ok", Size: 2, Kind: "A", Start: "10:30", Contact: contact{Email: "a@b.co"}, Ignored: "x"})
		require.NoError(t, err)
	})

	t.Run("every failed field is reported by json path", func(t *testing.T) {
		err := v.Struct(form{Name: "too long", Size: 30, Kind: "C", Start: "25:00", Contact: contact{Email: "nope"}, Ignored: "x"})

		appErr := apperrors.AsAppError(err)
		require.Equal(t, apperrors.KindValidation, appErr.Kind)
		require.Equal(t, map[string]string{
			"name":          "must be at most 5",
			"size":          "must be at most 24",
			"kind":          "must be one of: A B",
			"start":         "must match the format 15:04",
			"contact.email": "must be a valid email address",
		}, appErr.Details["fields"])
	})

	t.Run("required", func(t *testing.T) {
		err := v.Struct(form{Size: 1, Ignored: "x"})

		fields := apperrors.AsAppError(err).Details["fields"].(map[string]string)
		require.Equal(t, "is required", fields["name"])
		require.Equal(t, "is required", fields["contact.email"])
	})
}

func TestID(t *testing.T) {
	v := validation.New()

	require.NoError(t, v.ID("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
	require.Error(t, v.ID(""))
	require.Error(t, v.ID("123"))
}
