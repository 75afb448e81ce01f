package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/getkin/kin-openapi/openapi3"
)

// RequireBodyFields answers 400 when a JSON object body omits, or sets to
// null, a top-level property the operation's request schema marks required.
// It runs before any typed decoding, so a missing field is reported even
// when other fields have the wrong type. Bodies that are not JSON objects
// pass through for the handler to reject.
func RequireBodyFields(doc *openapi3.T, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			required := requiredBodyFields(doc, r)
			if len(required) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(r.Body)
			if err != nil {
				rest.WriteError(w, application.NewInternalError(fmt.Errorf("read request body: %w", err)), rest.Logger(r.Context(), logger))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			var fields map[string]json.RawMessage
			if err := json.Unmarshal(raw, &fields); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			for _, name := range required {
				value, ok := fields[name]
				if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
					err := application.NewValidationError(domain.NewMissingRequiredFieldError(name))
					rest.WriteError(w, err, rest.Logger(r.Context(), logger))
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiredBodyFields(doc *openapi3.T, r *http.Request) []string {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	item := doc.Paths.Find(r.URL.Path)
	if item == nil {
		return nil
	}
	op := item.GetOperation(r.Method)
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil
	}
	return media.Schema.Value.Required
}
