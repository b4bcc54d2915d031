package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad input"), 400},
		{"auth", Auth("no token"), 401},
		{"forbidden", Forbidden("not yours"), 403},
		{"not found", NotFound("missing"), 404},
		{"conflict", Conflict("duplicate"), 409},
		{"persistence", Persistence(errors.New("db down")), 500},
		{"degraded", Degraded("model down", errors.New("timeout")), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	plain := Validation("bad input")
	assert.Equal(t, "bad input", plain.Error())

	cause := errors.New("connection refused")
	wrapped := Persistence(cause)
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsKind(t *testing.T) {
	err := NotFound("missing")
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindAuth))

	// Works through wrapping.
	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsKind(wrapped, KindNotFound))

	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "persistence", KindPersistence.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
