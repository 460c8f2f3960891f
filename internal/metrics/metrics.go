package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docgw_http_requests_total",
		Help: "Total number of HTTP requests served by the gateway",
	}, []string{"method", "route", "status"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docgw_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
	}, []string{"method", "route"})

	EntriesStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docgw_entries_stored_total",
		Help: "Total number of entries written to the store",
	})

	EntriesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docgw_entries_fetched_total",
		Help: "Total number of documents returned by fetch",
	})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docgw_store_errors_total",
		Help: "Total number of failed store operations",
	}, []string{"operation"})

	// DatabaseUp is only exported once a connectivity probe is scheduled,
	// see RegisterDatabaseUp.
	DatabaseUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "docgw_database_up",
		Help: "1 if the last connectivity probe reached the database, 0 otherwise",
	})
)

// RegisterDatabaseUp adds DatabaseUp to reg. Registering twice is not an error.
func RegisterDatabaseUp(reg prometheus.Registerer) error {
	if err := reg.Register(DatabaseUp); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return err
	}
	return nil
}

func RecordRequest(method, route, status string, seconds float64) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPLatency.WithLabelValues(method, route).Observe(seconds)
}

func RecordStoreError(operation string) {
	StoreErrors.WithLabelValues(operation).Inc()
}

func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
		return
	}
	DatabaseUp.Set(0)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
