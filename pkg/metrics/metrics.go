// Package metrics holds the Prometheus instrumentation of the bot.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "schedulebot"

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type Metrics struct {
	registry      *prometheus.Registry
	handler       http.Handler
	commands      *prometheus.CounterVec
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	broadcasts    *prometheus.CounterVec
}

// New registers the collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of handled chat commands",
	}, []string{"command"})

	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timetable_fetches_total",
		Help:      "Total number of requests to the timetable API",
	}, []string{"result"})

	fetchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "timetable_fetch_duration_seconds",
		Help:      "Duration of requests to the timetable API in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	broadcasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weekly_broadcasts_total",
		Help:      "Total number of weekly broadcasts per chat",
	}, []string{"result"})

	registry.MustRegister(
		commands,
		fetches,
		fetchDuration,
		broadcasts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:      registry,
		handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		commands:      commands,
		fetches:       fetches,
		fetchDuration: fetchDuration,
		broadcasts:    broadcasts,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.handler
}

func (m *Metrics) ObserveCommand(command string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command).Inc()
}

func (m *Metrics) ObserveFetch(err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result(err)).Inc()
	m.fetchDuration.Observe(duration.Seconds())
}

func (m *Metrics) ObserveBroadcast(err error) {
	if m == nil {
		return
	}
	m.broadcasts.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
