package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_InitializesAllCollectors(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)

	assert.NotNil(t, r.HTTPRequestsTotal)
	assert.NotNil(t, r.HTTPRequestDuration)
	assert.NotNil(t, r.HTTPRequestsInFlight)
	assert.NotNil(t, r.UsersTotal)
	assert.NotNil(t, r.registry)
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest(http.MethodGet, "/users", "200", 100*time.Millisecond)
	r.RecordHTTPRequest(http.MethodGet, "/users", "200", 50*time.Millisecond)
	r.RecordHTTPRequest(http.MethodPost, "/users", "201", 200*time.Millisecond)

	counter, err := r.HTTPRequestsTotal.GetMetricWithLabelValues(http.MethodGet, "/users", "200")
	require.NoError(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(counter))

	counter, err = r.HTTPRequestsTotal.GetMetricWithLabelValues(http.MethodPost, "/users", "201")
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}

func TestSetUsersTotal(t *testing.T) {
	r := NewRegistry()

	r.SetUsersTotal(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(r.UsersTotal))

	r.SetUsersTotal(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(r.UsersTotal))
}

func TestHandler_ServesScrapeEndpoint(t *testing.T) {
	r := NewRegistry()
	r.SetUsersTotal(3)

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "userdir_users_total 3")
}

func TestRegistries_AreIsolated(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()

	r1.SetUsersTotal(5)

	assert.Equal(t, float64(5), testutil.ToFloat64(r1.UsersTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(r2.UsersTotal))
}
