package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.ObserveCommand("today")
	m.ObserveCommand("today")
	m.ObserveCommand("week")
	m.ObserveFetch(nil, 120*time.Millisecond)
	m.ObserveFetch(errors.New("boom"), time.Second)
	m.ObserveBroadcast(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("today")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("week")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetches.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.broadcasts.WithLabelValues(ResultOK)))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "schedulebot_commands_total")
	assert.Contains(t, rec.Body.String(), "schedulebot_timetable_fetch_duration_seconds")
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveCommand("start")
	m.ObserveFetch(nil, time.Second)
	m.ObserveBroadcast(errors.New("boom"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
