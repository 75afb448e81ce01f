package mailer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *mailer.BrevoClient {
	return mailer.NewBrevoClient(config.EmailConfig{
		BaseURL:     baseURL,
		APIKey:      "xkeysib-test",
		SenderEmail: "orders@ficmart.test",
		SenderName:  "FicMart",
		Timeout:     2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBrevoClient_Send_Success(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/smtp/email", r.URL.Path)
		assert.Equal(t, "xkeysib-test", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@smtp-relay>"}`))
	}))
	defer server.Close()

	ok := newClient(server.URL).Send(context.Background(), "asha@example.com", "Your order", "<p>hi</p>")

	assert.True(t, ok)
	assert.Equal(t, map[string]any{
		"sender":      map[string]any{"name": "FicMart", "email": "orders@ficmart.test"},
		"to":          []any{map[string]any{"email": "asha@example.com"}},
		"subject":     "Your order",
		"htmlContent": "<p>hi</p>",
	}, body)
}

func TestBrevoClient_Send_EmptyBodyStillSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	assert.True(t, newClient(server.URL).Send(context.Background(), "a@b.co", "s", "h"))
}

func TestBrevoClient_Send_ProviderRejects(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"code":"invalid_parameter"}`))
			}))
			defer server.Close()

			assert.False(t, newClient(server.URL).Send(context.Background(), "a@b.co", "s", "h"))
		})
	}
}

func TestBrevoClient_Send_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	assert.False(t, newClient(url).Send(context.Background(), "a@b.co", "s", "h"))
}
