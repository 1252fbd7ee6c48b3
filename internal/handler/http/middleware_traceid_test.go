package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adushkin/userdir/internal/logger"
)

func TestWithTraceID_GeneratesTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	middleware := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

func TestWithTraceID_ReusesIncomingTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	middleware := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(traceIDHeader, "trace-from-upstream")
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, "trace-from-upstream", rr.Header().Get(traceIDHeader))
}
