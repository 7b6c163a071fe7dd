package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("relationship not found"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(nil, KindNotFound))
}

func TestMessageHidesInternalCause(t *testing.T) {
	err := Internal(errors.New("dial tcp: connection refused"), "Failed to load profile")

	assert.Equal(t, "Failed to load profile", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Internal server error", Message(errors.New("raw")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindInvalidInput: http.StatusBadRequest,
		KindConflict:     http.StatusBadRequest,
		KindNotFound:     http.StatusNotFound,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
