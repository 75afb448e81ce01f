package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

const internalErrorMessage = "An internal error occurred"

// ErrorResponse is the envelope of every failed request.
type ErrorResponse = api.Error

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps err to its status and envelope and logs it once.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status, response := BuildErrorResponse(err)
	LogError(logger, err, status)
	WriteJSON(w, status, response)
}

// BuildErrorResponse maps err to its status and envelope. Unrecognised
// errors become 500 INTERNAL_ERROR without leaking their text.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	response := ErrorResponse{
		Error: errorMessage(err),
		Code:  application.ToErrorCode(err),
	}
	if svcErr, ok := application.IsServiceError(err); ok {
		response.Details = svcErr.Details
	}
	return application.ToHTTPStatus(err), response
}

func LogError(logger *slog.Logger, err error, status int) {
	attrs := []any{
		"status", status,
		"code", application.ToErrorCode(err),
		"category", application.CategorizeError(err),
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
	} else {
		logger.Warn("request failed", attrs...)
	}
}

func errorMessage(err error) string {
	if svcErr, ok := application.IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	var missingErr *domain.MissingCredentialsError
	if errors.As(err, &missingErr) {
		return missingErr.Error()
	}

	return internalErrorMessage
}
