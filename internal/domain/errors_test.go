package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrValidation, ErrUnavailable}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b, "sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{name: "with entity and ID", entity: "theme", id: "neon", expectedMsg: `theme "neon" not found`},
		{name: "with entity only", entity: "route", expectedMsg: "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "text",
			message:     "must not be empty",
			expectedMsg: "validation failed for text: must not be empty",
		},
		{
			name:        "without field",
			message:     "quotes file is empty",
			expectedMsg: "validation failed: quotes file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.True(t, IsValidation(err))
			assert.False(t, IsNotFound(err))
		})
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("quote-catalog", "no quotes loaded")

	assert.Equal(t, "quote-catalog unavailable: no quotes loaded", err.Error())
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("quote-catalog", "")
	assert.Equal(t, "quote-catalog unavailable", bare.Error())
}

func TestErrorHelpers_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("loading quotes: %w", NewValidationError("text", "must not be empty"))

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsUnavailable(wrapped))
	assert.False(t, IsNotFound(errors.New("plain")))
}
