package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		category ErrorCategory
	}{
		{"validation", NewValidationError(domain.ErrMissingReceipt), http.StatusBadRequest, ErrCodeValidation, CategoryClientError},
		{"bare domain error", domain.NewInvalidAmountError("0"), http.StatusBadRequest, ErrCodeValidation, CategoryClientError},
		{"settings not found", domain.ErrSettingsNotFound, http.StatusInternalServerError, ErrCodeConfigMissing, CategoryConfiguration},
		{"config missing", NewConfigMissingError(errors.New("dial tcp: refused")), http.StatusInternalServerError, ErrCodeConfigMissing, CategoryConfiguration},
		{"missing credentials", &domain.MissingCredentialsError{Missing: []string{"k"}}, http.StatusInternalServerError, ErrCodeConfigIncomplete, CategoryConfiguration},
		{"upstream", NewUpstreamError(http.StatusUnauthorized, nil), http.StatusUnauthorized, ErrCodeUpstream, CategoryUpstream},
		{"raw gateway error", fmt.Errorf("wrapped: %w", &GatewayError{StatusCode: http.StatusBadGateway}), http.StatusBadGateway, ErrCodeUpstream, CategoryUpstream},
		{"dispatch failure", NewDispatchFailureError(), http.StatusInternalServerError, ErrCodeDispatchFailure, CategoryUpstream},
		{"deadline", context.DeadlineExceeded, http.StatusInternalServerError, ErrCodeInternal, CategoryUpstream},
		{"amount out of range", domain.NewAmountOutOfRangeError("1e30", "exceeds the largest payable amount"), http.StatusBadRequest, ErrCodeValidation, CategoryClientError},
		{"route not found", NewRouteNotFoundError("/nope"), http.StatusNotFound, ErrCodeNotFound, CategoryClientError},
		{"method not allowed", NewMethodNotAllowedError(http.MethodGet, "/create-order"), http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, CategoryClientError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternal, CategoryInfrastructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, ToErrorCode(tt.err))
			assert.Equal(t, tt.category, CategorizeError(tt.err))
		})
	}
}

func TestToHTTPStatus_Nil(t *testing.T) {
	assert.Equal(t, http.StatusOK, ToHTTPStatus(nil))
	assert.Equal(t, ErrorCategory(""), CategorizeError(nil))
}
