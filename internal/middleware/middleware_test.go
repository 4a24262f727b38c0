package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyboard/flightdeck/internal/auth"
	"skyboard/flightdeck/internal/metrics"
	"skyboard/flightdeck/internal/models/dtos"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse {
	t.Helper()
	var body dtos.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/flights", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id", seen)
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Get("/flights/{id}", okHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights/2f3a4b5c", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/flights/{id}", "GET", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPRequestsInFlight.WithLabelValues("/flights/{id}")))
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/flights/{id}", NormalizeEndpoint("/api/flights/2f3a4b5c"))
	assert.Equal(t, "/flights/{id}", NormalizeEndpoint("/flights/12345"))
	assert.Equal(t, "/flights/{id}", NormalizeEndpoint("/flights/123e4567-e89b-12d3-a456-426614174000"))
	assert.Equal(t, "/airports", NormalizeEndpoint("/airports"))
	assert.Equal(t, "/api/feed", NormalizeEndpoint("/api/feed"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Middleware(http.HandlerFunc(okHandler))

	call := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/flights", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001").Code)

	limited := call("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "Too many requests", decodeEnvelope(t, limited).Error)

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000").Code)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, call("127.0.0.1:5000").Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService([]byte("secret"))
	valid, err := tokens.Generate("ops", time.Hour)
	require.NoError(t, err)

	var claims *auth.AdminClaims
	h := AuthMiddleware(tokens)(IsAdminMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims = auth.GetAdminClaims(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/airports/import", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				body := decodeEnvelope(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, "Unauthorized", body.Error)
			}
		})
	}
	require.NotNil(t, claims)
	assert.Equal(t, "ops", claims.Subject)
}

func TestIsAdminMiddleware_WithoutClaims(t *testing.T) {
	h := IsAdminMiddleware()(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "boom", body.Error)
}

func TestRecoverMiddleware_ErrorValue(t *testing.T) {
	h := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("index out of range while mapping feed"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "index out of range while mapping feed", decodeEnvelope(t, rec).Error)
}

func TestPanicMessage_EmptyFallsBack(t *testing.T) {
	assert.Equal(t, "Internal server error", panicMessage(""))
	assert.Equal(t, "42", panicMessage(42))
}
