package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("authenticate: %w", AccountLocked("account locked"))

	assert.True(t, errors.Is(err, ErrAccountLocked))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.False(t, errors.Is(err, AccountLocked("other message")), "only bare sentinels match by kind")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"duplicate", Duplicate("dup"), http.StatusBadRequest},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"missing reference", MissingReference("client not found"), http.StatusBadRequest},
		{"invalid credentials", InvalidCredentials("wrong"), http.StatusUnauthorized},
		{"locked", AccountLocked("locked"), http.StatusUnauthorized},
		{"inactive", InactiveAccount("inactive"), http.StatusUnauthorized},
		{"conflict", Conflict("in use"), http.StatusConflict},
		{"internal", Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("x")), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to load client", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load client: connection refused", err.Error())
}
