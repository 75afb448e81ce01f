package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// ErrorCategory groups errors for log severity and metrics labels.
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryConfiguration  ErrorCategory = "CONFIGURATION"
	CategoryUpstream       ErrorCategory = "UPSTREAM"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeValidation, ErrCodeNotFound, ErrCodeMethodNotAllowed:
			return CategoryClientError
		case ErrCodeConfigMissing, ErrCodeConfigIncomplete:
			return CategoryConfiguration
		case ErrCodeUpstream, ErrCodeDispatchFailure, ErrCodeTimeout:
			return CategoryUpstream
		}
		return CategoryInfrastructure
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == domain.ErrCodeSettingsNotFound {
			return CategoryConfiguration
		}
		return CategoryClientError
	}

	var missingErr *domain.MissingCredentialsError
	if errors.As(err, &missingErr) {
		return CategoryConfiguration
	}

	if _, ok := IsGatewayError(err); ok {
		return CategoryUpstream
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryUpstream
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Code != domain.ErrCodeSettingsNotFound {
		return http.StatusBadRequest
	}

	if gwErr, ok := IsGatewayError(err); ok {
		return gwErr.StatusCode
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == domain.ErrCodeSettingsNotFound {
			return ErrCodeConfigMissing
		}
		return ErrCodeValidation
	}

	var missingErr *domain.MissingCredentialsError
	if errors.As(err, &missingErr) {
		return ErrCodeConfigIncomplete
	}

	if _, ok := IsGatewayError(err); ok {
		return ErrCodeUpstream
	}

	return ErrCodeInternal
}
