package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the person API
type Metrics struct {
	// HTTP traffic by method, matched route and status code
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Record lifecycle
	PeopleCreated prometheus.Counter
	PeopleDeleted prometheus.Counter
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "person_api_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "person_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		PeopleCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "person_api_people_created_total",
			Help: "Total number of person records created",
		}),

		PeopleDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "person_api_people_deleted_total",
			Help: "Total number of person records deleted",
		}),
	}
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// IncrementPeopleCreated increments the created counter by 1
func (m *Metrics) IncrementPeopleCreated() {
	if m != nil {
		m.PeopleCreated.Inc()
	}
}

// IncrementPeopleDeleted increments the deleted counter by 1
func (m *Metrics) IncrementPeopleDeleted() {
	if m != nil {
		m.PeopleDeleted.Inc()
	}
}
