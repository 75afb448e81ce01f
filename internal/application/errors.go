package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the single error shape handlers turn into a response.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	// Details is echoed to the caller, e.g. the gateway's own error body.
	Details any
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeConfigMissing    = "CONFIG_MISSING"
	ErrCodeConfigIncomplete = "CONFIG_INCOMPLETE"
	ErrCodeUpstream         = "UPSTREAM_ERROR"
	ErrCodeDispatchFailure  = "DISPATCH_FAILURE"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeTimeout          = "TIMEOUT"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

func NewValidationError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    err.Error(),
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

// NewConfigMissingError reports an unreachable settings store or one with
// none of the requested keys.
func NewConfigMissingError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfigMissing,
		Message:    "Payment gateway credentials not configured",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewConfigIncompleteError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfigIncomplete,
		Message:    "Payment gateway credentials incomplete",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewUpstreamError forwards the gateway's status code and body.
func NewUpstreamError(statusCode int, details any) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstream,
		Message:    "Failed to create payment order",
		HTTPStatus: statusCode,
		Details:    details,
	}
}

func NewDispatchFailureError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeDispatchFailure,
		Message:    "Failed to send email",
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewRouteNotFoundError(path string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("no route for %s", path),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewMethodNotAllowedError(method, path string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeMethodNotAllowed,
		Message:    fmt.Sprintf("method %s not allowed on %s", method, path),
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// GatewayError is a non-2xx answer from the payment gateway.
type GatewayError struct {
	StatusCode int
	Body       []byte
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, string(e.Body))
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
