package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for client-side observability.
// A nil *Metrics is valid everywhere; every recorder is a no-op on nil so
// callers never have to guard their instrumentation.
type Metrics struct {
	// Cart
	CartAdds    *prometheus.CounterVec
	CartRemoves prometheus.Counter
	CartClears  prometheus.Counter
	CartValue   prometheus.Histogram

	// Checkout funnel
	OrdersPlaced prometheus.Counter
	OrdersFailed prometheus.Counter
	OrderValue   prometheus.Histogram

	// Order editing
	EditSessions prometheus.Counter
	EditSaves    *prometheus.CounterVec

	// Backend API performance
	APIRequests *prometheus.CounterVec
	APILatency  *prometheus.HistogramVec
}

// NewMetrics creates and registers all client metrics against reg.
// Pass prometheus.DefaultRegisterer in production wiring; tests pass a
// fresh registry so repeated construction doesn't collide.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "shopkit"
	}

	factory := promauto.With(reg)

	return &Metrics{
		CartAdds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_adds_total",
				Help:      "Total add-to-cart actions",
			},
			[]string{"product_id"},
		),
		CartRemoves: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_removes_total",
				Help:      "Total cart line removals",
			},
		),
		CartClears: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_clears_total",
				Help:      "Total cart clears",
			},
		),
		CartValue: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cart_value",
				Help:      "Cart total after each mutation",
				Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
			},
		),
		OrdersPlaced: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_placed_total",
				Help:      "Total orders placed successfully",
			},
		),
		OrdersFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_failed_total",
				Help:      "Total order submissions rejected by the backend",
			},
		),
		OrderValue: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_value",
				Help:      "Grand total of placed orders",
				Buckets:   []float64{100, 250, 500, 1000, 2500, 5000, 10000},
			},
		),
		EditSessions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_edit_sessions_total",
				Help:      "Total order edit sessions entered",
			},
		),
		EditSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_edit_saves_total",
				Help:      "Total order edit save attempts",
			},
			[]string{"outcome"}, // outcome: success, failure
		),
		APIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total backend API requests",
			},
			[]string{"method", "path", "status"},
		),
		APILatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Backend API request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}
}

// RecordCartAdd records an add-to-cart action and the resulting cart value.
func (m *Metrics) RecordCartAdd(productID string, cartTotal float64) {
	if m == nil {
		return
	}
	m.CartAdds.WithLabelValues(productID).Inc()
	m.CartValue.Observe(cartTotal)
}

// RecordCartRemove records a line removal and the resulting cart value.
func (m *Metrics) RecordCartRemove(cartTotal float64) {
	if m == nil {
		return
	}
	m.CartRemoves.Inc()
	m.CartValue.Observe(cartTotal)
}

// RecordCartClear records a cart clear.
func (m *Metrics) RecordCartClear() {
	if m == nil {
		return
	}
	m.CartClears.Inc()
	m.CartValue.Observe(0)
}

// RecordOrderPlaced records a successful checkout.
func (m *Metrics) RecordOrderPlaced(total float64) {
	if m == nil {
		return
	}
	m.OrdersPlaced.Inc()
	m.OrderValue.Observe(total)
}

// RecordOrderFailed records a checkout rejected by the backend.
func (m *Metrics) RecordOrderFailed() {
	if m == nil {
		return
	}
	m.OrdersFailed.Inc()
}

// RecordEditSession records entry into order edit mode.
func (m *Metrics) RecordEditSession() {
	if m == nil {
		return
	}
	m.EditSessions.Inc()
}

// RecordEditSave records an order edit save attempt.
func (m *Metrics) RecordEditSave(success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.EditSaves.WithLabelValues(outcome).Inc()
}

// RecordAPIRequest records one backend round-trip.
func (m *Metrics) RecordAPIRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(method, path, status).Inc()
	m.APILatency.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
