package errors

import (
	"net/http"
	"testing"

	"walletportal/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_HTTPCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       int
	}{
		{name: "unauthorized passes through", statusCode: http.StatusUnauthorized, want: http.StatusUnauthorized},
		{name: "not found passes through", statusCode: http.StatusNotFound, want: http.StatusNotFound},
		{name: "server error becomes bad gateway", statusCode: http.StatusInternalServerError, want: http.StatusBadGateway},
		{name: "no response becomes bad gateway", statusCode: 0, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError("get_wallet", tt.statusCode, "", "invalid token")
			assert.Equal(t, tt.want, err.HTTPCode())
		})
	}
}

func TestProviderError_MessageIsVerbatim(t *testing.T) {
	err := NewProviderError("get_wallet", http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")

	assert.Equal(t, "invalid token", err.Message())
	assert.Equal(t, "UNAUTHORIZED", err.Details())
	assert.Equal(t, "invalid token", UserMessage(errors.Wrap(err, "wallet viewer")))
}

func TestProviderTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewProviderTransportError("list_users", "Failed to fetch users", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to fetch users", err.Message())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, DefaultUserMessage, UserMessage(errors.New("boom")))
	assert.Equal(t, "Please enter a search value", UserMessage(ErrEmptySearchQuery))
	assert.Equal(t, "Unexpected response from the wallet provider",
		UserMessage(NewMalformedResponseError("complete_auth", "token: required")))
	assert.Equal(t, "No authentication token found.", UserMessage(ErrNoAuthToken.WrapMessage("wallet viewer")))
}

func TestBaseError_IsMatchesErrorCode(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("field: required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.ErrorIs(t, errors.Wrap(detailed, "bind request"), ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrInvalidView)
	assert.NotErrorIs(t, detailed, errors.New("Input validation failed"))
	assert.Equal(t, "field: required", detailed.Details())
}
