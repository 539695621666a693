package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staycards", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "staycards", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staycards", Name: "source_requests_total", Help: "Listing source fetches."},
		[]string{"scheme", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "staycards", Name: "source_request_duration_seconds",
			Help:    "Listing source fetch duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"scheme"},
	)
	Loads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staycards", Name: "loads_total", Help: "Page loads by outcome."},
		[]string{"outcome"}, // success|http_status|decode|transport|container
	)
	CardsRendered = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "staycards", Name: "cards_rendered_total", Help: "Cards appended to a container."},
	)
	AmenitiesFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staycards", Name: "amenities_fallback_total", Help: "Records whose amenities needed a fallback."},
		[]string{"source"}, // comma_split|unsupported
	)
	ContainerEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "staycards", Name: "container_events_total", Help: "Container clears/appends."},
		[]string{"container", "event"}, // event: clear|append|error
	)
)

// Serve exposes reg on a separate listener in the background. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency,
		Loads, CardsRendered, AmenitiesFallbacks, ContainerEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records one source fetch. status 0 means no response.
func ObserveExternal(scheme string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(scheme, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(scheme).Observe(dur.Seconds())
}

func ObserveLoad(outcome string) { Loads.WithLabelValues(outcome).Inc() }

func ObserveCard() { CardsRendered.Inc() }

func ObserveAmenitiesFallback(source string) { AmenitiesFallbacks.WithLabelValues(source).Inc() }

func ObserveContainer(container, event string) { // event: clear|append|error
	ContainerEvents.WithLabelValues(container, event).Inc()
}
