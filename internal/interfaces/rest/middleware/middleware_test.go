package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, X-Client-Info, Apikey", h.Get("Access-Control-Allow-Headers"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/create-order", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
	assertCORSHeaders(t, rec.Header())
}

func TestCORS_HeadersOnNormalResponses(t *testing.T) {
	handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send-order-email", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assertCORSHeaders(t, rec.Header())
}

func TestRecovery_PanicBecomesJSON500(t *testing.T) {
	handler := CORS()(Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-order", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertCORSHeaders(t, rec.Header())

	var body rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "An internal error occurred", body.Error)
}

func TestTimeout_SlowHandler(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	handler := CORS()(Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-order", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assertCORSHeaders(t, rec.Header())
	assert.JSONEq(t, `{"error":"Request timed out","code":"TIMEOUT"}`, rec.Body.String())
}

func TestTimeout_FastHandlerUnaffected(t *testing.T) {
	handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline)
		rest.WriteJSON(w, http.StatusOK, map[string]string{"ok": "yes"})
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

type observation struct {
	route  string
	method string
	status int
}

type fakeObserver struct {
	seen []observation
}

func (f *fakeObserver) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	f.seen = append(f.seen, observation{route: route, method: method, status: status})
}

func TestObservability_GeneratesRequestIDAndObserves(t *testing.T) {
	mux := http.NewServeMux()
	var seenID string
	mux.HandleFunc("POST /create-order", func(w http.ResponseWriter, r *http.Request) {
		seenID = rest.RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})
	observer := &fakeObserver{}
	handler := Observability(discardLogger(), mux, observer)(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-order", nil))

	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, seenID)
	assert.Equal(t, []observation{{route: "POST /create-order", method: http.MethodPost, status: http.StatusCreated}}, observer.seen)
}

func TestObservability_EchoesIncomingRequestID(t *testing.T) {
	handler := Observability(discardLogger(), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/send-order-email", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestObservability_UnmatchedRoute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create-order", func(w http.ResponseWriter, r *http.Request) {})
	observer := &fakeObserver{}
	handler := Observability(discardLogger(), mux, observer)(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Len(t, observer.seen, 1)
	assert.Equal(t, "unmatched", observer.seen[0].route)
	assert.Equal(t, http.StatusNotFound, observer.seen[0].status)
}

func TestObservability_ExtractsTraceParent(t *testing.T) {
	previous := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(previous) })

	var buf safeBuffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := Observability(logger, nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodPost, "/create-order", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", line["trace_id"])
	assert.Equal(t, "request completed", line["msg"])
}
