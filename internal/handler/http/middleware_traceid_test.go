package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
)

// TestWithTraceID_GeneratesID verifies that a request without a trace header
// gets a freshly generated UUID echoed back on the response.
func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	got := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

// TestWithTraceID_PropagatesIncomingID verifies that a caller-supplied trace
// id is reused instead of being replaced.
func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	const incoming = "trace-id-from-upstream"

	h := newTestHandler(t, &service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))
}
