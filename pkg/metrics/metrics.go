// Package metrics defines prometheus collectors for the bot
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all bot collectors, kept apart from the default registry
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// PostsTotal counts post attempts by kind and outcome
var PostsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_posts_total",
	Help: "Post attempts by kind and outcome",
}, []string{"kind", "outcome"})

// StreamEvents counts inbound stream events by channel and event type
var StreamEvents = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_stream_events_total",
	Help: "Stream events received by channel and type",
}, []string{"channel", "type"})

// StreamParseErrors counts dropped undecodable stream messages
var StreamParseErrors = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_stream_parse_errors_total",
	Help: "Stream messages dropped because they could not be decoded",
}, []string{"channel"})

// StreamReconnects counts reconnect attempts per channel
var StreamReconnects = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_stream_reconnects_total",
	Help: "Stream reconnect attempts",
}, []string{"channel"})

// StreamConnected is 1 while a channel has a live connection
var StreamConnected = factory.NewGaugeVec(prometheus.GaugeOpts{
	Name: "astrolabe_stream_connected",
	Help: "Whether the stream channel is connected",
}, []string{"channel"})

// JobRuns counts scheduled job runs by job name and result
var JobRuns = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_job_runs_total",
	Help: "Scheduled job runs by name and result",
}, []string{"job", "result"})

// ReconcileChanges counts follow and unfollow calls issued by the reconciler
var ReconcileChanges = factory.NewCounterVec(prometheus.CounterOpts{
	Name: "astrolabe_reconcile_changes_total",
	Help: "Follow and unfollow operations by result",
}, []string{"op", "result"})

// Handler returns the http handler exposing the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
