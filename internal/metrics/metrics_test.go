package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fave-tweets/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSync(t *testing.T) {
	m := New()

	m.ObserveSync("complete", models.SyncReport{Inserted: 3, Fetched: 5, Duration: time.Second})
	m.ObserveSync("complete", models.SyncReport{Inserted: 0, Fetched: 0})
	m.ObserveSync("upstream_error", models.SyncReport{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncRuns.WithLabelValues("upstream_error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.syncInserted))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.syncFetched))
}

func TestObserveHTTP(t *testing.T) {
	m := New()

	m.ObserveHTTP("/tweets/{id}", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP("/tweets/{id}", http.MethodGet, http.StatusNotFound, time.Millisecond)
	m.ObserveHTTP("/tweets/{id}", http.MethodGet, http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/tweets/{id}", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/tweets/{id}", "GET", "404")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveSync("complete", models.SyncReport{Inserted: 1})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `fave_tweets_sync_runs_total{outcome="complete"} 1`)
	assert.Contains(t, body, "fave_tweets_sync_inserted_tweets_total 1")
	assert.Contains(t, body, "go_goroutines")
}
