package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exposed on the scrape endpoint.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	bookings     *prometheus.CounterVec
	payouts      *prometheus.CounterVec
}

func New(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "bookings_total",
			Help:      "Booking workflow outcomes by payment method.",
		}, []string{"method", "outcome"}),
		payouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "payouts_total",
			Help:      "Payout releases by resulting payout status.",
		}, []string{"status"}),
	}

	if reg != nil {
		reg.MustRegister(m.httpRequests, m.httpDuration, m.bookings, m.payouts)
	}
	return m
}

// NewNop returns collectors that are never registered.
func NewNop() *Metrics {
	return New("nop", nil)
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingOutcome(method, outcome string) {
	m.bookings.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) PayoutReleased(status string) {
	m.payouts.WithLabelValues(status).Inc()
}
